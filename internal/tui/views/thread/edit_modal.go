package thread

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/threadview/internal/core/config"
	"github.com/colonyops/threadview/internal/core/diffing"
	"github.com/colonyops/threadview/internal/core/host"
	"github.com/colonyops/threadview/internal/core/styles"
	corethread "github.com/colonyops/threadview/internal/core/thread"
	"github.com/colonyops/threadview/internal/tui/components/form"
	"github.com/colonyops/threadview/pkg/timeutil"
)

// EditModal is the transient edit session for one reply. It owns the draft,
// inline validation, the word-diff preview, the autosave debounce, and the
// edit-time-limit countdown. The session is discarded on cancel; nothing
// here outlives the modal.
type EditModal struct {
	reply *corethread.Reply
	cfg   config.EditConfig

	// reasonRequired is fixed at open time: explicit config, a staff actor,
	// or prior edit history all force a reason.
	reasonRequired bool

	content *form.TextAreaField
	reason  *form.SelectFormField
	details *form.TextField

	validation form.FieldValidation

	// lastSaved tracks the host-confirmed content; autosave only fires when
	// the draft differs from it.
	original  string
	lastSaved string

	// autosaveSeq invalidates superseded debounce timers.
	autosaveSeq int

	// minutesLeft counts down to the edit deadline; -1 means no limit.
	minutesLeft int

	// saving means a host call is in flight; manual marks it as a user
	// submit rather than a debounced autosave.
	saving    bool
	manual    bool
	done      bool
	cancelled bool
	width     int
}

// NewEditModal opens an edit session seeded with the reply's current
// content.
func NewEditModal(r *corethread.Reply, cfg config.EditConfig, actorIsStaff bool, width int) *EditModal {
	m := &EditModal{
		reply:          r,
		cfg:            cfg,
		reasonRequired: cfg.RequireReason || actorIsStaff || r.HasEditHistory(),
		content:        form.NewTextAreaField("Content", "", r.Content),
		reason:         form.NewSelectFormField("Reason", host.EditReasons, host.ReasonTypo),
		details:        form.NewTextField("Details", "describe the change", ""),
		validation:     form.FieldValidation{Required: true, MinLength: cfg.MinLength, MaxLength: cfg.MaxLength},
		original:       r.Content,
		lastSaved:      r.Content,
		minutesLeft:    -1,
		width:          width,
	}
	if cfg.TimeLimitMinutes > 0 {
		m.minutesLeft = cfg.TimeLimitMinutes - timeutil.MinutesSince(r.LastEditedAt(), time.Now())
		if m.minutesLeft < 0 {
			m.minutesLeft = 0
		}
	}
	m.content.Focus()
	return m
}

// Draft returns the current draft content.
func (m *EditModal) Draft() string { return m.content.Value().(string) }

// Reason returns the selected reason code, empty when no reason is needed.
func (m *EditModal) Reason() string {
	if !m.reasonRequired {
		return ""
	}
	return m.reason.Value().(string)
}

func (m *EditModal) Details() string { return m.details.Value().(string) }

// ValidationErr returns the inline validation message, empty when the draft
// is saveable.
func (m *EditModal) ValidationErr() string {
	if msg := m.validation.ValidateText(m.Draft()); msg != "" {
		return msg
	}
	if m.reasonRequired && m.Reason() == "" {
		return "reason required"
	}
	if m.Reason() == host.ReasonOther && strings.TrimSpace(m.Details()) == "" {
		return "details required for \"other\""
	}
	if m.minutesLeft == 0 {
		return "edit window expired"
	}
	return ""
}

// Dirty reports whether the draft differs from the last saved content.
func (m *EditModal) Dirty() bool { return m.Draft() != m.lastSaved }

// MarkSaved records a host-confirmed save so autosave goes quiet until the
// draft changes again.
func (m *EditModal) MarkSaved(content string) {
	m.lastSaved = content
	m.saving = false
	m.manual = false
}

// MarkFailed clears the in-flight flag after a rejected save.
func (m *EditModal) MarkFailed() {
	m.saving = false
	m.manual = false
}

// TickLimit advances the countdown by one tick. Returns false once the
// session has no live countdown left.
func (m *EditModal) TickLimit() bool {
	if m.minutesLeft <= 0 {
		return false
	}
	m.minutesLeft = m.cfg.TimeLimitMinutes - timeutil.MinutesSince(m.reply.LastEditedAt(), time.Now())
	if m.minutesLeft < 0 {
		m.minutesLeft = 0
	}
	return m.minutesLeft > 0
}

// AutosaveReady reports whether a fired debounce timer should actually
// save: the timer must be current and the draft dirty and valid.
func (m *EditModal) AutosaveReady(seq int) bool {
	return seq == m.autosaveSeq && !m.saving && m.Dirty() && m.ValidationErr() == ""
}

func (m *EditModal) Done() bool      { return m.done }
func (m *EditModal) Cancelled() bool { return m.cancelled }
func (m *EditModal) Saving() bool    { return m.saving }

// Submitting reports whether the user requested a manual save. Debounced
// autosaves keep saving set without ever setting this.
func (m *EditModal) Submitting() bool { return m.saving && m.manual }

func (m *EditModal) fields() []form.Field {
	fs := []form.Field{m.content}
	if m.reasonRequired {
		fs = append(fs, m.reason)
		if m.reason.Value().(string) == host.ReasonOther {
			fs = append(fs, m.details)
		}
	}
	return fs
}

func (m *EditModal) cycleFocus(delta int) tea.Cmd {
	fs := m.fields()
	for i, f := range fs {
		if f.Focused() {
			f.Blur()
			next := (i + delta + len(fs)) % len(fs)
			return fs[next].Focus()
		}
	}
	return fs[0].Focus()
}

// Update handles one message. Esc cancels, tab cycles fields, ctrl+s saves.
// Every content keystroke re-arms the autosave debounce.
func (m *EditModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			m.cancelled = true
			return nil
		case "tab":
			return m.cycleFocus(1)
		case "shift+tab":
			return m.cycleFocus(-1)
		case "ctrl+s":
			if m.ValidationErr() != "" || m.saving {
				return nil
			}
			m.saving = true
			m.manual = true
			m.autosaveSeq++
			return nil
		}
	}

	var cmds []tea.Cmd
	before := m.Draft()
	for _, f := range m.fields() {
		if !f.Focused() {
			continue
		}
		_, cmd := f.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.content.Focused() && m.Draft() != before && m.cfg.AutosaveDebounceMs > 0 {
		m.autosaveSeq++
		cmds = append(cmds, autosaveTickCmd(m.reply.ID, m.autosaveSeq,
			time.Duration(m.cfg.AutosaveDebounceMs)*time.Millisecond))
	}
	return tea.Batch(cmds...)
}

// Save marks the session as submitting a manual save. The caller issues the
// host call.
func (m *EditModal) Save() {
	m.saving = true
	m.manual = true
	m.autosaveSeq++
}

// Finish closes the modal after a confirmed manual save.
func (m *EditModal) Finish() { m.done = true }

// diffPreview renders the word diff of the draft against the original.
func (m *EditModal) diffPreview() string {
	if m.Draft() == m.original {
		return ""
	}
	spans := diffing.Words(m.original, m.Draft())
	var b strings.Builder
	for i, span := range spans {
		if i > 0 {
			b.WriteString(" ")
		}
		switch span.Kind {
		case diffing.SpanAdded:
			b.WriteString(styles.DiffAddedStyle.Render(span.Text))
		case diffing.SpanRemoved:
			b.WriteString(styles.DiffRemovedStyle.Render(span.Text))
		default:
			b.WriteString(styles.DiffUnchangedStyle.Render(span.Text))
		}
	}
	return b.String()
}

func (m *EditModal) View() string {
	var sections []string
	sections = append(sections, styles.ModalTitleStyle.Render(styles.IconEdit+" Edit reply"))

	for _, f := range m.fields() {
		sections = append(sections, f.View())
	}

	count := fmt.Sprintf("%d/%d", len(m.Draft()), m.cfg.MaxLength)
	if err := m.ValidationErr(); err != "" {
		sections = append(sections, styles.TextErrorStyle.Render(err+"  "+count))
	} else {
		sections = append(sections, styles.TextMutedStyle.Render(count))
	}

	if diff := m.diffPreview(); diff != "" {
		sections = append(sections, styles.TextMutedStyle.Render("Changes:"), diff)
	}

	if m.minutesLeft >= 0 {
		line := fmt.Sprintf("%d min left to edit", m.minutesLeft)
		if m.minutesLeft == 0 {
			line = "edit window expired"
		}
		sections = append(sections, styles.TextWarningStyle.Render(line))
	}

	help := "tab next · ctrl+s save · esc cancel"
	if m.saving {
		help = "saving…"
	}
	sections = append(sections, styles.ModalHelpStyle.Render(help))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return styles.ModalStyle.Width(min(m.width-4, 80)).Render(content)
}
