package thread

import "github.com/colonyops/threadview/internal/tui/components"

// Modal interface for modal dialogs.
// This is a minimal interface for common modal operations.
type Modal interface {
	View() string
	Cancelled() bool
}

// Compile-time checks to ensure modals implement the Modal interface.
var (
	_ Modal = (*EditModal)(nil)
	_ Modal = (*DeleteModal)(nil)
	_ Modal = (*ReportModal)(nil)
	_ Modal = (*components.ConfirmModal)(nil)
)

// ActionKind identifies one optimistic interaction kind. Like and dislike
// share the vote kind: they mutate the same exclusive pair, so they also
// share the single-in-flight slot.
type ActionKind string

const (
	ActionVote     ActionKind = "vote"
	ActionBookmark ActionKind = "bookmark"
	ActionShare    ActionKind = "share"
	ActionHelpful  ActionKind = "helpful"
)
