package thread

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/threadview/internal/core/analytics"
	corethread "github.com/colonyops/threadview/internal/core/thread"
)

// Modal coordination. At most one modal is active; while one is open it
// consumes all key input and the thread beneath it is inert.

func (v *View) modalActive() bool {
	return v.editModal != nil || v.deleteModal != nil || v.reportModal != nil ||
		v.confirmModal != nil
}

func (v *View) activeModal() Modal {
	switch {
	case v.editModal != nil:
		return v.editModal
	case v.deleteModal != nil:
		return v.deleteModal
	case v.reportModal != nil:
		return v.reportModal
	case v.confirmModal != nil:
		return v.confirmModal
	}
	return nil
}

func (v *View) closeModals() {
	v.editModal = nil
	v.deleteModal = nil
	v.reportModal = nil
	v.confirmModal = nil
	v.confirmAction = ""
}

func (v *View) openEdit(r *corethread.Reply) tea.Cmd {
	if !v.ownContent(r) && !v.viewerIsStaff {
		return nil
	}
	if r.Locked && !v.viewerIsStaff {
		return nil
	}
	v.editModal = NewEditModal(r, v.cfg.Edit, v.viewerIsStaff, v.width)
	if v.editModal.minutesLeft > 0 {
		return editLimitTickCmd(r.ID)
	}
	return nil
}

func (v *View) openDelete(r *corethread.Reply) {
	if !v.ownContent(r) && !v.viewerIsStaff {
		return
	}
	v.deleteModal = NewDeleteModal(r, v.cfg.Edit, v.viewerIsStaff, v.width)
}

func (v *View) openReport(r *corethread.Reply) {
	if v.ownContent(r) {
		return
	}
	v.reportModal = NewReportModal(r, v.width)
}

// updateModal routes input to the active modal and turns its submit state
// into host calls.
func (v *View) updateModal(msg tea.Msg) tea.Cmd {
	switch {
	case v.confirmModal != nil:
		m, cmd := v.confirmModal.Update(msg)
		v.confirmModal = &m
		if m.Confirmed() {
			action := v.confirmAction
			v.confirmModal = nil
			v.confirmAction = ""
			return tea.Batch(cmd, v.dispatchAction(action))
		}
		if m.Cancelled() {
			v.confirmModal = nil
			v.confirmAction = ""
		}
		return cmd

	case v.editModal != nil:
		m := v.editModal
		cmd := m.Update(msg)
		if m.Cancelled() {
			v.editModal = nil
			return cmd
		}
		if m.Submitting() && !v.editSubmitted {
			v.editSubmitted = true
			v.analytics.Emit(analytics.EventReplyEditAttempt, analytics.Payload{"reply_id": m.reply.ID})
			return tea.Batch(cmd, editCmd(v.host, m.reply.ID, m.Draft(), m.Reason(), false))
		}
		return cmd

	case v.deleteModal != nil:
		m := v.deleteModal
		cmd := m.Update(msg)
		if m.Cancelled() {
			v.deleteModal = nil
			return cmd
		}
		if m.Submitting() && !v.deleteSubmitted {
			v.deleteSubmitted = true
			v.analytics.Emit(analytics.EventReplyDeleteAttempt, analytics.Payload{
				"reply_id":  m.reply.ID,
				"permanent": m.Permanent(),
			})
			return tea.Batch(cmd, deleteCmd(v.host, m.reply.ID, m.Reason(), m.Permanent()))
		}
		return cmd

	case v.reportModal != nil:
		m := v.reportModal
		cmd := m.Update(msg)
		if m.Cancelled() {
			v.reportModal = nil
			return cmd
		}
		if m.Submitting() && !v.reportSubmitted {
			v.reportSubmitted = true
			return tea.Batch(cmd, reportCmd(v.host, m.reply.ID, m.Reason(), m.Details()))
		}
		return cmd
	}
	return nil
}

// handleEditResult reconciles a save acknowledgment with the edit session.
func (v *View) handleEditResult(msg editResultMsg) tea.Cmd {
	m := v.editModal
	if m == nil || m.reply.ID != msg.replyID {
		return nil
	}

	if msg.err != nil {
		m.MarkFailed()
		if !msg.autosave {
			v.editSubmitted = false
		}
		v.log.Warn().Str("reply_id", msg.replyID).Bool("autosave", msg.autosave).
			Err(msg.err).Msg("edit rejected")
		v.analytics.Emit(analytics.EventReplyEditFailure, analytics.Payload{
			"reply_id": msg.replyID,
			"autosave": msg.autosave,
		})
		// Autosave failures never block the session; only manual saves get
		// a user-facing notification.
		if !msg.autosave {
			v.notify.Errorf("edit failed: %v", msg.err)
		}
		return nil
	}

	m.MarkSaved(msg.content)
	v.analytics.Emit(analytics.EventReplyEditSuccess, analytics.Payload{
		"reply_id": msg.replyID,
		"autosave": msg.autosave,
	})
	if msg.autosave {
		return nil
	}

	// Mirror the confirmed edit into the local record so the thread shows
	// the new content immediately; the host remains the durable copy.
	r := m.reply
	r.EditHistory = append(r.EditHistory, corethread.EditHistoryEntry{
		EditedAt:        timeNow(),
		EditorID:        v.viewerID,
		Reason:          msg.reason,
		PreviousContent: r.Content,
	})
	r.Content = msg.content
	r.Edited = true
	v.bodies.Drop(r.ID)
	m.Finish()
	v.editModal = nil
	v.editSubmitted = false
	v.rebuild()
	return nil
}

func (v *View) handleDeleteResult(msg deleteResultMsg) tea.Cmd {
	m := v.deleteModal
	if m == nil || m.reply.ID != msg.replyID {
		return nil
	}

	if msg.err != nil {
		m.MarkFailed()
		v.deleteSubmitted = false
		v.log.Warn().Str("reply_id", msg.replyID).Err(msg.err).Msg("delete rejected")
		v.analytics.Emit(analytics.EventReplyDeleteFailure, analytics.Payload{"reply_id": msg.replyID})
		v.notify.Errorf("delete failed: %v", msg.err)
		return nil
	}

	v.analytics.Emit(analytics.EventReplyDeleteSuccess, analytics.Payload{
		"reply_id":  msg.replyID,
		"permanent": msg.permanent,
	})
	m.reply.Status = corethread.StatusDeleted
	m.Finish()
	v.deleteModal = nil
	v.deleteSubmitted = false
	v.rebuild()
	return nil
}

func (v *View) handleReportResult(msg reportResultMsg) tea.Cmd {
	m := v.reportModal
	if m == nil || m.reply.ID != msg.replyID {
		return nil
	}

	if msg.err != nil {
		m.MarkFailed()
		v.reportSubmitted = false
		v.log.Warn().Str("reply_id", msg.replyID).Err(msg.err).Msg("report rejected")
		v.notify.Errorf("report failed: %v", msg.err)
		return nil
	}

	v.analytics.Emit(analytics.EventReplyReport, analytics.Payload{
		"reply_id": msg.replyID,
		"reason":   m.Reason(),
	})
	m.Finish()
	v.reportModal = nil
	v.reportSubmitted = false
	v.notify.Infof("report submitted")
	return nil
}
