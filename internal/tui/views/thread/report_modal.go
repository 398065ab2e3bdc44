package thread

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/threadview/internal/core/host"
	"github.com/colonyops/threadview/internal/core/styles"
	corethread "github.com/colonyops/threadview/internal/core/thread"
	"github.com/colonyops/threadview/internal/tui/components/form"
)

// ReportModal collects a report reason and optional details for one reply.
// Reports always require a reason; details become mandatory for "other".
type ReportModal struct {
	reply *corethread.Reply

	reason  *form.SelectFormField
	details *form.TextField

	submitting bool
	done       bool
	cancelled  bool
	width      int
}

func NewReportModal(r *corethread.Reply, width int) *ReportModal {
	m := &ReportModal{
		reply:   r,
		reason:  form.NewSelectFormField("Reason", host.ReportReasons, host.ReasonSpam),
		details: form.NewTextField("Details", "anything the moderators should know", ""),
		width:   width,
	}
	m.reason.Focus()
	return m
}

func (m *ReportModal) Reason() string  { return m.reason.Value().(string) }
func (m *ReportModal) Details() string { return m.details.Value().(string) }
func (m *ReportModal) Done() bool      { return m.done }
func (m *ReportModal) Cancelled() bool { return m.cancelled }

func (m *ReportModal) ValidationErr() string {
	if m.Reason() == "" {
		return "reason required"
	}
	if m.Reason() == host.ReasonOther && strings.TrimSpace(m.Details()) == "" {
		return "details required for \"other\""
	}
	return ""
}

func (m *ReportModal) fields() []form.Field {
	return []form.Field{m.reason, m.details}
}

func (m *ReportModal) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc":
			m.cancelled = true
			return nil
		case "tab", "shift+tab":
			fs := m.fields()
			for i, f := range fs {
				if f.Focused() {
					f.Blur()
					return fs[(i+1)%len(fs)].Focus()
				}
			}
			return fs[0].Focus()
		case "enter":
			if m.reason.Focused() {
				// Enter on the reason list moves on to details so the user
				// sees the optional field before submitting.
				m.reason.Blur()
				return m.details.Focus()
			}
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

func (m *ReportModal) Submitting() bool { return m.submitting }
func (m *ReportModal) MarkFailed()      { m.submitting = false }
func (m *ReportModal) Finish()          { m.done = true }

func (m *ReportModal) View() string {
	var sections []string
	sections = append(sections, styles.ModalTitleStyle.Render(styles.IconReport+" Report reply"))

	for _, f := range m.fields() {
		sections = append(sections, f.View())
	}

	if err := m.ValidationErr(); err != "" {
		sections = append(sections, styles.TextErrorStyle.Render(err))
	}

	help := "enter submit · tab next · esc cancel"
	if m.submitting {
		help = "reporting…"
	}
	sections = append(sections, styles.ModalHelpStyle.Render(help))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return styles.ModalStyle.Width(min(m.width-4, 70)).Render(content)
}
