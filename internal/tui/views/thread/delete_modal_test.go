package thread

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/threadview/internal/core/config"
	corethread "github.com/colonyops/threadview/internal/core/thread"
)

func deletableReply() *corethread.Reply {
	return &corethread.Reply{
		ID:      "r1",
		Content: "some reply content",
		User:    corethread.UserIdentity{ID: "u-author", DisplayName: "ana"},
	}
}

func TestDeleteModal_SoftDeleteNeedsNoConfirmation(t *testing.T) {
	m := NewDeleteModal(deletableReply(), config.EditConfig{}, false, 80)

	assert.False(t, m.Permanent())
	assert.True(t, m.ConfirmSatisfied())
	assert.Empty(t, m.ValidationErr())
	assert.Empty(t, m.Reason(), "leaf reply without edit history needs no reason")
}

func TestDeleteModal_ConfirmToken(t *testing.T) {
	tests := []struct {
		typed string
		open  bool
	}{
		{"DELETE", true},
		{"delete", true},
		{"DeLeTe", true},
		{"  delete  ", true},
		{"", false},
		{"DELET", false},
		{"yes", false},
		{"DELETE!", false},
	}
	for _, tt := range tests {
		t.Run("typed "+tt.typed, func(t *testing.T) {
			m := NewDeleteModal(deletableReply(), config.EditConfig{}, false, 80)
			m.Update(tea.KeyPressMsg(tea.Key{Code: 'p', Mod: tea.ModCtrl}))
			assert.True(t, m.Permanent())

			m.confirm.SetValue(tt.typed)
			assert.Equal(t, tt.open, m.ConfirmSatisfied())
			if !tt.open {
				assert.Equal(t, "type DELETE to confirm", m.ValidationErr())
			}
		})
	}
}

func TestDeleteModal_TogglePermanentBack(t *testing.T) {
	m := NewDeleteModal(deletableReply(), config.EditConfig{}, false, 80)

	m.Update(tea.KeyPressMsg(tea.Key{Code: 'p', Mod: tea.ModCtrl}))
	m.confirm.SetValue("nope")
	assert.NotEmpty(t, m.ValidationErr())

	// Dropping back to soft delete clears the gate.
	m.Update(tea.KeyPressMsg(tea.Key{Code: 'p', Mod: tea.ModCtrl}))
	assert.False(t, m.Permanent())
	assert.Empty(t, m.ValidationErr())
}

func TestDeleteModal_DescendantsForceReason(t *testing.T) {
	r := deletableReply()
	r.Children = []*corethread.Reply{{ID: "c1"}, {ID: "c2"}}

	m := NewDeleteModal(r, config.EditConfig{}, false, 80)
	assert.Equal(t, 2, m.descendants)
	assert.True(t, m.reasonRequired)
	assert.NotEmpty(t, m.Reason(), "default reason preselected")
}

func TestDeleteModal_SubmitOnlyWhenValid(t *testing.T) {
	m := NewDeleteModal(deletableReply(), config.EditConfig{}, false, 80)
	m.Update(tea.KeyPressMsg(tea.Key{Code: 'p', Mod: tea.ModCtrl}))

	m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	assert.False(t, m.Submitting(), "unsatisfied gate blocks submit")

	m.confirm.SetValue("delete")
	m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	assert.True(t, m.Submitting())

	m.MarkFailed()
	assert.False(t, m.Submitting())
	assert.False(t, m.Done())

	m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	m.Finish()
	assert.True(t, m.Done())
}

func TestDeleteModal_EscCancels(t *testing.T) {
	m := NewDeleteModal(deletableReply(), config.EditConfig{}, false, 80)
	m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
	assert.True(t, m.Cancelled())
}
