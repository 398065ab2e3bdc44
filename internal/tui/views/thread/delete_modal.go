package thread

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/threadview/internal/core/config"
	"github.com/colonyops/threadview/internal/core/host"
	"github.com/colonyops/threadview/internal/core/styles"
	corethread "github.com/colonyops/threadview/internal/core/thread"
	"github.com/colonyops/threadview/internal/tui/components/form"
)

// confirmToken must be typed, case-insensitively, before a permanent
// delete is enabled.
const confirmToken = "DELETE"

// DeleteModal is the confirmation flow for deleting one reply. Soft delete
// is the default; toggling permanent mode adds the typed confirmation gate.
type DeleteModal struct {
	reply *corethread.Reply

	permanent      bool
	reasonRequired bool
	descendants    int

	reason  *form.SelectFormField
	details *form.TextField
	confirm *form.TextField

	submitting bool
	done       bool
	cancelled  bool
	width      int
}

// NewDeleteModal opens a delete confirmation for the reply. A reply with
// descendants always requires a reason: the children go with it.
func NewDeleteModal(r *corethread.Reply, cfg config.EditConfig, actorIsStaff bool, width int) *DeleteModal {
	m := &DeleteModal{
		reply:          r,
		descendants:    corethread.DescendantCount(r),
		reasonRequired: cfg.RequireReason || actorIsStaff || r.HasEditHistory(),
		reason:         form.NewSelectFormField("Reason", host.DeleteReasons, host.ReasonDuplicate),
		details:        form.NewTextField("Details", "why is this being removed", ""),
		confirm:        form.NewTextField("Type DELETE to confirm", confirmToken, ""),
		width:          width,
	}
	if m.descendants > 0 {
		m.reasonRequired = true
	}
	if fs := m.fields(); len(fs) > 0 {
		fs[0].Focus()
	}
	return m
}

func (m *DeleteModal) Permanent() bool  { return m.permanent }
func (m *DeleteModal) Done() bool       { return m.done }
func (m *DeleteModal) Cancelled() bool  { return m.cancelled }
func (m *DeleteModal) Submitting() bool { return m.submitting }

// Reason returns the selected reason code, empty when none is required.
func (m *DeleteModal) Reason() string {
	if !m.reasonRequired {
		return ""
	}
	return m.reason.Value().(string)
}

func (m *DeleteModal) Details() string { return m.details.Value().(string) }

// ConfirmSatisfied reports whether the permanent-delete gate is open. Only
// the literal token, compared case-insensitively, opens it.
func (m *DeleteModal) ConfirmSatisfied() bool {
	if !m.permanent {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(m.confirm.Value().(string)), confirmToken)
}

// ValidationErr returns the blocking condition, empty when the delete can
// be submitted.
func (m *DeleteModal) ValidationErr() string {
	if m.reasonRequired && m.Reason() == "" {
		return "reason required"
	}
	if m.Reason() == host.ReasonOther && strings.TrimSpace(m.Details()) == "" {
		return "details required for \"other\""
	}
	if !m.ConfirmSatisfied() {
		return "type DELETE to confirm"
	}
	return ""
}

func (m *DeleteModal) fields() []form.Field {
	var fs []form.Field
	if m.reasonRequired {
		fs = append(fs, m.reason)
		if m.reason.Value().(string) == host.ReasonOther {
			fs = append(fs, m.details)
		}
	}
	if m.permanent {
		fs = append(fs, m.confirm)
	}
	return fs
}

func (m *DeleteModal) cycleFocus(delta int) tea.Cmd {
	fs := m.fields()
	if len(fs) == 0 {
		return nil
	}
	for i, f := range fs {
		if f.Focused() {
			f.Blur()
			next := (i + delta + len(fs)) % len(fs)
			return fs[next].Focus()
		}
	}
	return fs[0].Focus()
}

// Update handles one message. Ctrl+p toggles permanent mode; enter submits
// when the gate and reason rules are satisfied.
func (m *DeleteModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			m.cancelled = true
			return nil
		case "tab":
			return m.cycleFocus(1)
		case "shift+tab":
			return m.cycleFocus(-1)
		case "ctrl+p":
			m.permanent = !m.permanent
			if !m.permanent {
				m.confirm.Blur()
			}
			return nil
		case "enter":
			// The confirm field consumes enter only when invalid, so a
			// satisfied gate submits directly.
			if m.ValidationErr() == "" && !m.submitting {
				m.submitting = true
				return nil
			}
		}
	}

	var cmds []tea.Cmd
	for _, f := range m.fields() {
		if !f.Focused() {
			continue
		}
		_, cmd := f.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// MarkFailed reopens the modal after a rejected delete.
func (m *DeleteModal) MarkFailed() { m.submitting = false }

// Finish closes the modal after a confirmed delete.
func (m *DeleteModal) Finish() { m.done = true }

func (m *DeleteModal) View() string {
	var sections []string

	title := styles.IconDelete + " Delete reply"
	if m.permanent {
		title = styles.IconDelete + " Permanently delete reply"
	}
	sections = append(sections, styles.ModalTitleStyle.Render(title))

	if m.descendants > 0 {
		sections = append(sections, styles.TextWarningStyle.Render(
			fmt.Sprintf("This also deletes %d repl%s beneath it.",
				m.descendants, pluralIES(m.descendants))))
	}
	if m.permanent {
		sections = append(sections, styles.TextErrorStyle.Render("Permanent deletes cannot be undone."))
	}

	for _, f := range m.fields() {
		sections = append(sections, f.View())
	}

	if err := m.ValidationErr(); err != "" {
		sections = append(sections, styles.TextErrorStyle.Render(err))
	}

	help := "enter delete · ctrl+p toggle permanent · esc cancel"
	if m.submitting {
		help = "deleting…"
	}
	sections = append(sections, styles.ModalHelpStyle.Render(help))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return styles.ModalStyle.Width(min(m.width-4, 70)).Render(content)
}

func pluralIES(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
