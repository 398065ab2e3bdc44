package thread

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/threadview/internal/core/config"
	"github.com/colonyops/threadview/internal/core/host"
	corethread "github.com/colonyops/threadview/internal/core/thread"
	"github.com/colonyops/threadview/pkg/tuitest"
)

func editCfg() config.EditConfig {
	return config.EditConfig{
		MinLength:          10,
		MaxLength:          100,
		AutosaveDebounceMs: 500,
	}
}

func editableReply() *corethread.Reply {
	return &corethread.Reply{
		ID:      "r1",
		Content: "original content here",
		User:    corethread.UserIdentity{ID: "u-author", DisplayName: "ana"},
	}
}

func TestEditModal_LengthBounds(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		valid bool
	}{
		{"below min", strings.Repeat("a", 9), false},
		{"at min", strings.Repeat("a", 10), true},
		{"at max", strings.Repeat("a", 100), true},
		{"above max", strings.Repeat("a", 101), false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewEditModal(editableReply(), editCfg(), false, 80)
			m.content.SetValue(tt.draft)
			if tt.valid {
				assert.Empty(t, m.ValidationErr())
			} else {
				assert.NotEmpty(t, m.ValidationErr())
			}
		})
	}
}

func TestEditModal_ReasonRequiredRules(t *testing.T) {
	r := editableReply()

	assert.False(t, NewEditModal(r, editCfg(), false, 80).reasonRequired,
		"plain first edit needs no reason")

	cfg := editCfg()
	cfg.RequireReason = true
	assert.True(t, NewEditModal(r, cfg, false, 80).reasonRequired)

	assert.True(t, NewEditModal(r, editCfg(), true, 80).reasonRequired,
		"staff always give a reason")

	edited := editableReply()
	edited.EditHistory = []corethread.EditHistoryEntry{{EditedAt: time.Now()}}
	assert.True(t, NewEditModal(edited, editCfg(), false, 80).reasonRequired,
		"prior history forces a reason")
}

func TestEditModal_OtherReasonNeedsDetails(t *testing.T) {
	cfg := editCfg()
	cfg.RequireReason = true
	m := NewEditModal(editableReply(), cfg, false, 80)
	m.content.SetValue("long enough new content")

	assert.Empty(t, m.ValidationErr(), "default reason is preselected")

	m.reason.Select(host.ReasonOther)
	assert.Contains(t, m.ValidationErr(), "details")
}

func TestEditModal_TimeLimit(t *testing.T) {
	cfg := editCfg()
	cfg.TimeLimitMinutes = 30

	fresh := editableReply()
	fresh.CreatedAt = time.Now().Add(-5 * time.Minute)
	m := NewEditModal(fresh, cfg, false, 80)
	assert.Equal(t, 25, m.minutesLeft)
	assert.Empty(t, m.ValidationErr())

	stale := editableReply()
	stale.CreatedAt = time.Now().Add(-2 * time.Hour)
	m = NewEditModal(stale, cfg, false, 80)
	assert.Equal(t, 0, m.minutesLeft)
	assert.Equal(t, "edit window expired", m.ValidationErr())
	assert.False(t, m.TickLimit(), "expired session has no live countdown")
}

func TestEditModal_NoLimitByDefault(t *testing.T) {
	m := NewEditModal(editableReply(), editCfg(), false, 80)
	assert.Equal(t, -1, m.minutesLeft)
	assert.False(t, m.TickLimit())
}

func TestEditModal_AutosaveGating(t *testing.T) {
	m := NewEditModal(editableReply(), editCfg(), false, 80)

	// Clean draft: a fired timer does nothing.
	assert.False(t, m.AutosaveReady(m.autosaveSeq))

	m.content.SetValue("a changed draft body")
	assert.True(t, m.AutosaveReady(m.autosaveSeq))

	// A superseded timer never fires.
	assert.False(t, m.AutosaveReady(m.autosaveSeq-1))

	// Invalid drafts are not autosaved.
	m.content.SetValue("short")
	assert.False(t, m.AutosaveReady(m.autosaveSeq))

	// In-flight saves block further autosaves.
	m.content.SetValue("a changed draft body")
	m.Save()
	assert.False(t, m.AutosaveReady(m.autosaveSeq))
}

func TestEditModal_DirtyTracksLastSaved(t *testing.T) {
	m := NewEditModal(editableReply(), editCfg(), false, 80)
	assert.False(t, m.Dirty())

	m.content.SetValue("a changed draft body")
	assert.True(t, m.Dirty())

	m.MarkSaved("a changed draft body")
	assert.False(t, m.Dirty(), "confirmed save quiets the draft")
	assert.False(t, m.Saving())
}

func TestEditModal_DiffPreview(t *testing.T) {
	m := NewEditModal(editableReply(), editCfg(), false, 80)
	assert.Empty(t, m.diffPreview(), "unchanged draft has no preview")

	m.content.SetValue("original content changed")
	// Styling wraps each removed rune in its own escape sequence, so strip
	// before asserting on the text.
	preview := tuitest.StripANSI(m.diffPreview())
	assert.Contains(t, preview, "here")
	assert.Contains(t, preview, "changed")
}
