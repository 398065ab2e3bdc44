package thread

import (
	"github.com/colonyops/threadview/internal/core/content"
	corethread "github.com/colonyops/threadview/internal/core/thread"
)

// InteractionState is the client-local optimistic interaction state for one
// reply. Invariant: IsLiked and IsDisliked are never both true.
type InteractionState struct {
	IsLiked      bool
	IsDisliked   bool
	IsBookmarked bool
	VotedHelpful bool
	Counters     corethread.Counters
}

// interactionStore holds optimistic state per reply ID, created lazily from
// the host-confirmed record. Session-scoped; discarded with the view.
type interactionStore struct {
	states map[string]*InteractionState
}

func newInteractionStore() *interactionStore {
	return &interactionStore{states: make(map[string]*InteractionState)}
}

// Get returns the state for a reply, seeding it from the record's confirmed
// counters on first access.
func (s *interactionStore) Get(r *corethread.Reply) *InteractionState {
	if st, ok := s.states[r.ID]; ok {
		return st
	}
	st := &InteractionState{Counters: r.Counters}
	s.states[r.ID] = st
	return st
}

// snapshot returns a copy used for rollback on host failure.
func (st *InteractionState) snapshot() InteractionState {
	return *st
}

// restore reverts to a previously taken snapshot.
func (st *InteractionState) restore(snap InteractionState) {
	*st = snap
}

// ToggleLike applies the optimistic like transition. Setting like clears an
// existing dislike and decrements its counter by exactly one.
func (st *InteractionState) ToggleLike() {
	if st.IsLiked {
		st.IsLiked = false
		st.Counters.Likes--
		return
	}
	if st.IsDisliked {
		st.IsDisliked = false
		st.Counters.Dislikes--
	}
	st.IsLiked = true
	st.Counters.Likes++
}

// ToggleDislike mirrors ToggleLike for the dislike side.
func (st *InteractionState) ToggleDislike() {
	if st.IsDisliked {
		st.IsDisliked = false
		st.Counters.Dislikes--
		return
	}
	if st.IsLiked {
		st.IsLiked = false
		st.Counters.Likes--
	}
	st.IsDisliked = true
	st.Counters.Dislikes++
}

// ToggleBookmark flips the bookmark flag and counter.
func (st *InteractionState) ToggleBookmark() {
	if st.IsBookmarked {
		st.IsBookmarked = false
		st.Counters.Bookmarks--
		return
	}
	st.IsBookmarked = true
	st.Counters.Bookmarks++
}

// RecordShare bumps the share counter; shares have no toggle state.
func (st *InteractionState) RecordShare() {
	st.Counters.Shares++
}

// ToggleHelpful flips the helpful vote.
func (st *InteractionState) ToggleHelpful() {
	if st.VotedHelpful {
		st.VotedHelpful = false
		st.Counters.Helpful--
		return
	}
	st.VotedHelpful = true
	st.Counters.Helpful++
}

// bodyState is the client-local presentation state for one reply body.
// Created on first visibility; discarded with the view.
type bodyState struct {
	// Lazy content processing. Segments and metrics are only computed once
	// the node has crossed the visibility threshold.
	processed bool
	segments  []content.Segment
	metrics   content.Metrics

	// Height overflow handling.
	expanded  bool
	overflows bool

	// Translation toggle.
	translated     bool
	translating    bool
	translatedText string

	// Transient copy affordance.
	copied bool

	// Interactive segment focus; -1 when nothing focused.
	focusSegment int

	// View reporting happens exactly once per mount.
	viewed bool
}

// bodyStore holds body state per reply ID.
type bodyStore struct {
	states map[string]*bodyState
}

func newBodyStore() *bodyStore {
	return &bodyStore{states: make(map[string]*bodyState)}
}

func (s *bodyStore) Get(id string) *bodyState {
	if st, ok := s.states[id]; ok {
		return st
	}
	st := &bodyState{focusSegment: -1}
	s.states[id] = st
	return st
}

// Drop forgets the state for a reply, resetting its per-mount lifecycle.
func (s *bodyStore) Drop(id string) {
	delete(s.states, id)
}

// pendingKey identifies one in-flight mutation slot.
type pendingKey struct {
	replyID string
	kind    ActionKind
}
