// Package tui hosts the Bubble Tea program shell: the thread view, the
// toast overlay, and the notification plumbing between them.
package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/threadview/internal/core/analytics"
	"github.com/colonyops/threadview/internal/core/config"
	"github.com/colonyops/threadview/internal/core/host"
	corethread "github.com/colonyops/threadview/internal/core/thread"
	"github.com/colonyops/threadview/internal/tui/notify"
	"github.com/colonyops/threadview/internal/tui/views/thread"
)

// Options configures a Model.
type Options struct {
	Config    *config.Config
	Host      host.Host
	Analytics analytics.Sink
	Logger    zerolog.Logger

	Title         string
	Roots         []*corethread.Reply
	ViewerID      string
	ViewerIsStaff bool
	Query         string
}

// notificationMsg carries a notification from an async tea.Cmd into the
// Update loop.
type notificationMsg struct {
	notification notify.Notification
}

var _ tea.Model = (*Model)(nil)

// Model is the root program model.
type Model struct {
	threadView *thread.View

	notifyBus       *notify.Bus
	toastController *ToastController
	toastView       *ToastView

	width  int
	height int
}

// NewModel wires the thread view with the notification bus and toast
// overlay.
func NewModel(opts Options) *Model {
	bus := notify.NewBus()
	toastCtrl := NewToastController()
	toastView := NewToastView(toastCtrl)

	bus.Subscribe(func(n notify.Notification) {
		toastCtrl.Push(n)
	})

	tv := thread.New(opts.Config, opts.Host, opts.Analytics, bus, opts.Logger, opts.Roots, thread.Options{
		Title:         opts.Title,
		ViewerID:      opts.ViewerID,
		ViewerIsStaff: opts.ViewerIsStaff,
		Query:         opts.Query,
	})

	return &Model{
		threadView:      tv,
		notifyBus:       bus,
		toastController: toastCtrl,
		toastView:       toastView,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.threadView.Init()
}

// ensureToastTick starts the toast countdown if toasts exist and no tick
// is already scheduled.
func (m *Model) ensureToastTick() tea.Cmd {
	if m.toastController.HasToasts() && !m.toastController.Ticking() {
		m.toastController.SetTicking(true)
		return scheduleToastTick()
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.threadView.Update(msg)

	case toastTickMsg:
		m.toastController.Tick(toastTickInterval)
		if m.toastController.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toastController.SetTicking(false)
		return m, nil

	case notificationMsg:
		m.notifyBus.Publish(msg.notification)
		return m, m.ensureToastTick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.threadView.ModalActive() {
				return m, tea.Quit
			}
		case "x":
			if m.toastController.HasToasts() {
				m.toastController.Dismiss()
				return m, nil
			}
		}
	}

	cmd := m.threadView.Update(msg)
	// Interaction failures publish synchronously during the view update, so
	// the tick may need (re)starting here.
	return m, tea.Batch(cmd, m.ensureToastTick())
}

func (m *Model) View() tea.View {
	content := m.threadView.View()
	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, m.width, m.height)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}
