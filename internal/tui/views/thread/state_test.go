package thread

import (
	"testing"

	"github.com/stretchr/testify/assert"

	corethread "github.com/colonyops/threadview/internal/core/thread"
)

func TestToggleLike_ClearsDislike(t *testing.T) {
	st := &InteractionState{
		IsDisliked: true,
		Counters:   corethread.Counters{Likes: 10, Dislikes: 4},
	}

	st.ToggleLike()

	assert.True(t, st.IsLiked)
	assert.False(t, st.IsDisliked)
	assert.Equal(t, 11, st.Counters.Likes)
	assert.Equal(t, 3, st.Counters.Dislikes, "dislike counter decrements by exactly one")
}

func TestToggleDislike_ClearsLike(t *testing.T) {
	st := &InteractionState{
		IsLiked:  true,
		Counters: corethread.Counters{Likes: 10, Dislikes: 4},
	}

	st.ToggleDislike()

	assert.False(t, st.IsLiked)
	assert.True(t, st.IsDisliked)
	assert.Equal(t, 9, st.Counters.Likes)
	assert.Equal(t, 5, st.Counters.Dislikes)
}

func TestToggleLike_UntoggleDecrements(t *testing.T) {
	st := &InteractionState{IsLiked: true, Counters: corethread.Counters{Likes: 1}}

	st.ToggleLike()

	assert.False(t, st.IsLiked)
	assert.Equal(t, 0, st.Counters.Likes)
}

func TestToggleBookmark(t *testing.T) {
	st := &InteractionState{}

	st.ToggleBookmark()
	assert.True(t, st.IsBookmarked)
	assert.Equal(t, 1, st.Counters.Bookmarks)

	st.ToggleBookmark()
	assert.False(t, st.IsBookmarked)
	assert.Equal(t, 0, st.Counters.Bookmarks)
}

func TestRecordShare_NoToggle(t *testing.T) {
	st := &InteractionState{}

	st.RecordShare()
	st.RecordShare()

	assert.Equal(t, 2, st.Counters.Shares)
}

func TestSnapshotRestore(t *testing.T) {
	st := &InteractionState{Counters: corethread.Counters{Likes: 7}}
	snap := st.snapshot()

	st.ToggleLike()
	st.ToggleBookmark()
	st.restore(snap)

	assert.False(t, st.IsLiked)
	assert.False(t, st.IsBookmarked)
	assert.Equal(t, corethread.Counters{Likes: 7}, st.Counters)
}

func TestInteractionStore_SeedsFromRecordCounters(t *testing.T) {
	store := newInteractionStore()
	r := &corethread.Reply{ID: "r1", Counters: corethread.Counters{Likes: 42, Helpful: 3}}

	st := store.Get(r)
	assert.Equal(t, 42, st.Counters.Likes)
	assert.Equal(t, 3, st.Counters.Helpful)

	// Subsequent gets return the same state, not a reseed.
	st.ToggleLike()
	assert.Equal(t, 43, store.Get(r).Counters.Likes)
}

func TestBodyStore_DropResetsMountLifecycle(t *testing.T) {
	store := newBodyStore()

	bs := store.Get("r1")
	bs.viewed = true
	bs.processed = true

	store.Drop("r1")

	fresh := store.Get("r1")
	assert.False(t, fresh.viewed)
	assert.False(t, fresh.processed)
	assert.Equal(t, -1, fresh.focusSegment)
}
