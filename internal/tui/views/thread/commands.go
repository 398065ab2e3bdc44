package thread

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/threadview/internal/core/host"
	"github.com/colonyops/threadview/internal/core/logging"
)

// hostCallTimeout bounds every host mutation. The UI never blocks on it;
// this only keeps abandoned calls from leaking forever.
const hostCallTimeout = 30 * time.Second

// callContext builds the bounded, reply-tagged context every host call
// runs under.
func callContext(replyID string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), hostCallTimeout)
	return logging.WithReplyID(ctx, replyID), cancel
}

// mutationResultMsg reports completion of an optimistic interaction. The
// generation tag lets the view drop results for nodes that unmounted while
// the call was in flight.
type mutationResultMsg struct {
	replyID string
	kind    ActionKind
	action  string // concrete action for analytics: like, dislike, ...
	gen     int
	err     error
}

// translateResultMsg reports completion of an async translation.
type translateResultMsg struct {
	replyID string
	gen     int
	text    string
	err     error
}

// copiedResetMsg clears the transient "copied" affordance.
type copiedResetMsg struct {
	replyID string
	gen     int
}

// relativeTickMsg refreshes relative timestamps.
type relativeTickMsg time.Time

// editResultMsg reports completion of a save from the edit modal.
type editResultMsg struct {
	replyID  string
	content  string
	reason   string
	autosave bool
	err      error
}

// autosaveTickMsg fires a debounced autosave attempt. Seq guards against
// superseded debounce timers.
type autosaveTickMsg struct {
	replyID string
	seq     int
}

// editLimitTickMsg drives the edit-time-limit countdown.
type editLimitTickMsg struct {
	replyID string
}

// deleteResultMsg reports completion of a delete proposal.
type deleteResultMsg struct {
	replyID   string
	permanent bool
	err       error
}

// reportResultMsg reports completion of a report submission.
type reportResultMsg struct {
	replyID string
	err     error
}

func mutationCmd(replyID string, kind ActionKind, action string, gen int, call func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := callContext(replyID)
		defer cancel()
		return mutationResultMsg{
			replyID: replyID,
			kind:    kind,
			action:  action,
			gen:     gen,
			err:     call(ctx),
		}
	}
}

func translateCmd(h host.Mutations, replyID, lang string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := callContext(replyID)
		defer cancel()
		text, err := h.Translate(ctx, replyID, lang)
		return translateResultMsg{replyID: replyID, gen: gen, text: text, err: err}
	}
}

func editCmd(h host.Mutations, replyID, content, reason string, autosave bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := callContext(replyID)
		defer cancel()
		return editResultMsg{
			replyID:  replyID,
			content:  content,
			reason:   reason,
			autosave: autosave,
			err:      h.Edit(ctx, replyID, content, reason),
		}
	}
}

func deleteCmd(h host.Mutations, replyID, reason string, permanent bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := callContext(replyID)
		defer cancel()
		return deleteResultMsg{
			replyID:   replyID,
			permanent: permanent,
			err:       h.Delete(ctx, replyID, reason, permanent),
		}
	}
}

func reportCmd(h host.Mutations, replyID, reason, details string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := callContext(replyID)
		defer cancel()
		return reportResultMsg{
			replyID: replyID,
			err:     h.Report(ctx, replyID, reason, details),
		}
	}
}

func copiedResetCmd(replyID string, gen int) tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return copiedResetMsg{replyID: replyID, gen: gen}
	})
}

func relativeTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return relativeTickMsg(t)
	})
}

func autosaveTickCmd(replyID string, seq int, debounce time.Duration) tea.Cmd {
	return tea.Tick(debounce, func(time.Time) tea.Msg {
		return autosaveTickMsg{replyID: replyID, seq: seq}
	})
}

func editLimitTickCmd(replyID string) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return editLimitTickMsg{replyID: replyID}
	})
}
