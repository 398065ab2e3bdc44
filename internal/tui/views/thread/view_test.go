package thread

import (
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/threadview/internal/core/analytics"
	"github.com/colonyops/threadview/internal/core/config"
	"github.com/colonyops/threadview/internal/core/host/hostmock"
	corethread "github.com/colonyops/threadview/internal/core/thread"
	"github.com/colonyops/threadview/internal/tui/notify"
	"github.com/colonyops/threadview/pkg/tuitest"
)

type viewHarness struct {
	view     *View
	mock     *hostmock.Mock
	recorder *analytics.Recorder
	notified []notify.Notification
}

func newHarness(t *testing.T, roots []*corethread.Reply, opts Options) *viewHarness {
	t.Helper()

	cfg, err := config.Load("", t.TempDir())
	require.NoError(t, err)

	h := &viewHarness{
		mock:     hostmock.New(),
		recorder: &analytics.Recorder{},
	}

	bus := notify.NewBus()
	bus.Subscribe(func(n notify.Notification) {
		h.notified = append(h.notified, n)
	})

	h.view = New(cfg, h.mock, h.recorder, bus, zerolog.Nop(), roots, opts)
	h.view.SetSize(100, 40)
	return h
}

// drain runs a returned command synchronously and feeds every resulting
// message back into the view, mimicking the Bubble Tea loop.
func (h *viewHarness) drain(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			h.drain(c)
		}
		return
	}
	h.drain(h.view.Update(msg))
}

func simpleThread() []*corethread.Reply {
	return []*corethread.Reply{{
		ID:        "r1",
		Content:   "This phone charger works great and survived two drops already.",
		CreatedAt: time.Now().Add(-time.Hour),
		User:      corethread.UserIdentity{ID: "u-author", DisplayName: "ana", TrustScore: 80},
		Counters:  corethread.Counters{Likes: 3, Dislikes: 1},
	}}
}

func TestLike_OptimisticThenConfirmed(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})
	r := h.view.items[0].Reply

	cmd := h.view.dispatchAction(config.ActionLike)
	require.NotNil(t, cmd)

	// The local state flips before the host answers.
	st := h.view.interactions.Get(r)
	assert.True(t, st.IsLiked)
	assert.Equal(t, 4, st.Counters.Likes)
	assert.Contains(t, h.view.pending, pendingKey{replyID: "r1", kind: ActionVote})
	assert.Equal(t, 0, h.mock.CallsTo("Like"))

	h.drain(cmd)

	assert.Equal(t, 1, h.mock.CallsTo("Like"))
	assert.NotContains(t, h.view.pending, pendingKey{replyID: "r1", kind: ActionVote})
	assert.True(t, st.IsLiked, "confirmed state sticks")
	assert.Contains(t, h.recorder.Names(), analytics.EventReplyLike)
}

func TestLike_RollsBackOnHostFailure(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})
	h.mock.FailWith("Like", errors.New("permission denied"))
	r := h.view.items[0].Reply

	h.drain(h.view.dispatchAction(config.ActionLike))

	st := h.view.interactions.Get(r)
	assert.False(t, st.IsLiked, "optimistic state reverted")
	assert.Equal(t, 3, st.Counters.Likes)
	assert.NotContains(t, h.recorder.Names(), analytics.EventReplyLike)

	require.NotEmpty(t, h.notified)
	assert.Equal(t, notify.LevelError, h.notified[len(h.notified)-1].Level)
}

func TestVote_SingleInFlightPerSlot(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})
	r := h.view.items[0].Reply

	first := h.view.dispatchAction(config.ActionLike)
	require.NotNil(t, first)

	// A second like and a dislike both hit the shared vote slot while the
	// first call is outstanding.
	assert.Nil(t, h.view.dispatchAction(config.ActionLike))
	assert.Nil(t, h.view.dispatchAction(config.ActionDislike))

	st := h.view.interactions.Get(r)
	assert.True(t, st.IsLiked)
	assert.Equal(t, 4, st.Counters.Likes, "blocked actions never mutate state")

	// Other kinds are independent slots.
	assert.NotNil(t, h.view.dispatchAction(config.ActionBookmark))
}

func TestVote_OwnContentSilentlyInert(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-author"})
	r := h.view.items[0].Reply

	assert.Nil(t, h.view.dispatchAction(config.ActionLike))
	assert.Nil(t, h.view.dispatchAction(config.ActionHelpful))

	st := h.view.interactions.Get(r)
	assert.False(t, st.IsLiked)
	assert.Empty(t, h.notified, "denied actions raise no error")
	assert.Equal(t, 0, h.mock.CallsTo("Like"))
}

func TestHelpfulVote_PassesDirection(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})

	h.drain(h.view.dispatchAction(config.ActionHelpful))

	require.Equal(t, 1, h.mock.CallsTo("HelpfulVote"))
	assert.Contains(t, h.recorder.Names(), analytics.EventReplyHelpfulVote)
}

func TestViewReported_OncePerMount(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})

	// SetSize already ran a visibility pass; run more and confirm no
	// duplicate reporting.
	h.view.visibilityPass()
	h.view.moveCursor(1)

	views := 0
	for _, name := range h.recorder.Names() {
		if name == analytics.EventReplyView {
			views++
		}
	}
	assert.Equal(t, 1, views)
}

func TestVisibilityProcessesContentLazily(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})

	bs := h.view.bodies.Get("r1")
	assert.True(t, bs.processed, "fully visible reply processes on first pass")
	assert.Equal(t, 10, bs.metrics.WordCount)
}

func TestKeybinding_DispatchesConfiguredAction(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})

	h.drain(h.view.Update(tuitest.KeyPress('l')))

	assert.Equal(t, 1, h.mock.CallsTo("Like"))
}

func TestShowThread_RerootsAndReturns(t *testing.T) {
	h := newHarness(t, chain(6), Options{ViewerID: "u-viewer"})

	require.Equal(t, ItemShowThread, h.view.items[3].Kind)
	h.view.cursor = 3
	h.view.dispatchAction(config.ActionShowThread)

	// Re-rooted at "c": the previously truncated levels now render.
	assert.Equal(t, "c", h.view.items[0].Reply.ID)
	assert.Greater(t, len(h.view.items), 1)
	assert.Contains(t, h.recorder.Names(), analytics.EventThreadShowMore)

	h.view.popRoot()
	assert.Equal(t, "a", h.view.items[0].Reply.ID)
}

func TestStaleMutationResultDropped(t *testing.T) {
	roots := []*corethread.Reply{{
		ID:        "p",
		Content:   "parent reply with enough words to look realistic here",
		CreatedAt: time.Now(),
		User:      corethread.UserIdentity{ID: "u-a", DisplayName: "ana"},
		Children: []*corethread.Reply{{
			ID:        "child",
			Content:   "child reply body",
			CreatedAt: time.Now(),
			User:      corethread.UserIdentity{ID: "u-b", DisplayName: "bo"},
		}},
	}}
	h := newHarness(t, roots, Options{ViewerID: "u-viewer"})

	h.view.cursor = 1
	cmd := h.view.dispatchAction(config.ActionLike)
	require.NotNil(t, cmd)

	// Collapsing the parent unmounts the child while its like is in
	// flight; the late result must not resurrect state or emit analytics.
	h.view.toggleCollapse(roots[0])
	h.drain(cmd)

	assert.NotContains(t, h.recorder.Names(), analytics.EventReplyLike)
}

func TestTranslate_ToggleLifecycle(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})
	h.mock.Translations = map[string]string{"r1": "translated text"}

	cmd := h.view.toggleTranslate(h.view.items[0].Reply)
	require.NotNil(t, cmd)

	bs := h.view.bodies.Get("r1")
	assert.True(t, bs.translating)

	// In flight, the toggle is inert.
	assert.Nil(t, h.view.toggleTranslate(h.view.items[0].Reply))

	h.drain(cmd)
	assert.False(t, bs.translating)
	assert.True(t, bs.translated)
	assert.Equal(t, "translated text", bs.translatedText)
	assert.Contains(t, h.recorder.Names(), analytics.EventReplyTranslate)

	// Toggling back shows the original without another host call.
	h.view.toggleTranslate(h.view.items[0].Reply)
	assert.False(t, bs.translated)
	assert.Equal(t, 1, h.mock.CallsTo("Translate"))
}

func TestTranslate_FailureKeepsOriginal(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})
	h.mock.FailWith("Translate", errors.New("service down"))

	h.drain(h.view.toggleTranslate(h.view.items[0].Reply))

	bs := h.view.bodies.Get("r1")
	assert.False(t, bs.translated, "toggle remains in its prior state")
	assert.False(t, bs.translating)
	assert.Contains(t, h.recorder.Names(), analytics.EventReplyTranslateFail)
	require.NotEmpty(t, h.notified)
}

func TestKeybindingConfirm_GatesAction(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-author"})

	// The default delete binding carries a confirm prompt.
	h.view.Update(tuitest.KeyPress('d'))
	require.NotNil(t, h.view.confirmModal)
	assert.True(t, h.view.ModalActive())

	h.view.Update(tuitest.KeyPress('n'))
	assert.Nil(t, h.view.confirmModal)
	assert.Nil(t, h.view.deleteModal, "declining never dispatches")

	h.view.Update(tuitest.KeyPress('d'))
	h.view.Update(tuitest.KeyPress('y'))
	assert.Nil(t, h.view.confirmModal)
	require.NotNil(t, h.view.deleteModal)
}

func TestUserActions_FireNavigationCallbacks(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})

	h.view.Update(tuitest.KeyPress('u'))
	assert.Equal(t, 1, h.mock.CallsTo("UserClicked"))
	assert.Contains(t, h.recorder.Names(), analytics.EventReplyUserClick)

	h.view.Update(tuitest.KeyPress('p'))
	assert.Equal(t, 1, h.mock.CallsTo("ViewProfile"))
	assert.Contains(t, h.recorder.Names(), analytics.EventReplyProfileView)

	h.view.Update(tuitest.KeyPress('f'))
	assert.Equal(t, 1, h.mock.CallsTo("Follow"))
	assert.Contains(t, h.recorder.Names(), analytics.EventReplyUserFollow)

	// Blocking sits behind a confirm prompt by default.
	h.view.Update(tuitest.KeyPress('B'))
	assert.Equal(t, 0, h.mock.CallsTo("Block"))
	require.NotNil(t, h.view.confirmModal)

	h.view.Update(tuitest.KeyPress('y'))
	assert.Equal(t, 1, h.mock.CallsTo("Block"))
	assert.Contains(t, h.recorder.Names(), analytics.EventReplyUserBlock)
}

func TestUserActions_OwnContentInert(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-author"})

	h.view.Update(tuitest.KeyPress('f'))
	assert.Equal(t, 0, h.mock.CallsTo("Follow"))

	h.view.dispatchAction(config.ActionBlockUser)
	assert.Equal(t, 0, h.mock.CallsTo("Block"))
}

func TestEditAutosave_KeystrokeDoesNotSubmit(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-author"})

	h.view.Update(tuitest.KeyPress('e'))
	m := h.view.editModal
	require.NotNil(t, m)

	m.content.SetValue("This charger still works great after three drops now.")
	inflight := h.view.Update(autosaveTickMsg{replyID: "r1", seq: m.autosaveSeq})
	require.NotNil(t, inflight)
	assert.True(t, m.Saving())

	// Typing while the debounced autosave is in flight must stay a draft
	// change, never a manual submit.
	h.view.Update(tuitest.KeyPress('z'))
	assert.False(t, h.view.editSubmitted)
	assert.NotContains(t, h.recorder.Names(), analytics.EventReplyEditAttempt)
	require.NotNil(t, h.view.editModal)

	h.drain(inflight)

	assert.Equal(t, 1, h.mock.CallsTo("Edit"))
	require.NotNil(t, h.view.editModal, "autosave ack leaves the session open")
	assert.False(t, m.Saving())
}

func TestRelativeTick_RefreshesAndReschedules(t *testing.T) {
	h := newHarness(t, simpleThread(), Options{ViewerID: "u-viewer"})

	later := time.Now().Add(5 * time.Minute)
	cmd := h.view.Update(relativeTickMsg(later))

	assert.Equal(t, later, h.view.now)
	assert.NotNil(t, cmd, "clock keeps ticking")
}
