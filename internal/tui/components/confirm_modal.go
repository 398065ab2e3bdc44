package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/threadview/internal/core/styles"
)

// ConfirmModal is the yes/no gate shown before keybindings configured with
// a confirm prompt, such as the default delete and block bindings.
type ConfirmModal struct {
	message   string
	confirmed bool
	cancelled bool
}

// NewConfirmModal creates a confirmation modal with the given prompt.
func NewConfirmModal(message string) ConfirmModal {
	return ConfirmModal{
		message: message,
	}
}

// Update handles input. y/enter confirms, n/esc cancels; everything else
// is ignored.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.confirmed = true
		return m, nil
	case "n", "N", "esc":
		m.cancelled = true
		return m, nil
	}

	return m, nil
}

// View renders the confirmation modal.
func (m ConfirmModal) View() string {
	message := styles.ConfirmMessageStyle.Render(m.message)
	prompt := styles.TextPrimaryBoldStyle.Render("Continue? (y/n)")

	return message + "\n" + prompt
}

// Confirmed reports whether the user accepted the prompt.
func (m ConfirmModal) Confirmed() bool {
	return m.confirmed
}

// Cancelled reports whether the user declined the prompt.
func (m ConfirmModal) Cancelled() bool {
	return m.cancelled
}
