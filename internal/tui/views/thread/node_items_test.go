package thread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	corethread "github.com/colonyops/threadview/internal/core/thread"
)

func chain(depth int) []*corethread.Reply {
	// A single path of replies depth levels deep: r0 -> r1 -> ... .
	var root, cur *corethread.Reply
	for i := range depth {
		r := &corethread.Reply{ID: string(rune('a' + i))}
		if cur == nil {
			root = r
		} else {
			cur.Children = []*corethread.Reply{r}
		}
		cur = r
	}
	return []*corethread.Reply{root}
}

func itemIDs(items []NodeItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Reply.ID)
	}
	return ids
}

func TestFlatten_DepthBound(t *testing.T) {
	items := Flatten(chain(6), FlattenOptions{MaxDepth: 3})

	// Levels a, b, c render; d and beyond collapse into one show-thread
	// affordance under c.
	require.Len(t, items, 4)
	assert.Equal(t, []string{"a", "b", "c", "c"}, itemIDs(items))
	assert.Equal(t, ItemShowThread, items[3].Kind)
	assert.Equal(t, 3, items[3].DescendantCount)

	// Indentation never exceeds the bound regardless of data depth.
	assert.LessOrEqual(t, MaxIndent(items), 2)
}

func TestFlatten_IndentClampedNotDropped(t *testing.T) {
	items := Flatten(chain(10), FlattenOptions{MaxDepth: 2})

	for _, item := range items {
		assert.LessOrEqual(t, item.IndentDepth, 1)
	}
}

func TestFlatten_CollapseHidesSubtree(t *testing.T) {
	roots := []*corethread.Reply{{
		ID: "root",
		Children: []*corethread.Reply{
			{ID: "c1", Children: []*corethread.Reply{{ID: "c1a"}}},
			{ID: "c2"},
		},
	}}

	expanded := Flatten(roots, FlattenOptions{MaxDepth: 5})
	require.Len(t, expanded, 4)

	collapsed := Flatten(roots, FlattenOptions{MaxDepth: 5, Collapsed: map[string]bool{"root": true}})
	require.Len(t, collapsed, 1)
	assert.Equal(t, ItemCollapsedSummary, collapsed[0].Kind)
	assert.Equal(t, 3, collapsed[0].DescendantCount)

	// Expanding again restores the identical item sequence.
	reexpanded := Flatten(roots, FlattenOptions{MaxDepth: 5, Collapsed: map[string]bool{}})
	assert.Equal(t, itemIDs(expanded), itemIDs(reexpanded))
}

func TestFlatten_DeletedSubtreeDisappears(t *testing.T) {
	roots := []*corethread.Reply{{
		ID:     "gone",
		Status: corethread.StatusDeleted,
		Children: []*corethread.Reply{
			{ID: "orphan"},
		},
	}, {ID: "kept"}}

	items := Flatten(roots, FlattenOptions{MaxDepth: 3})

	require.Len(t, items, 1)
	assert.Equal(t, "kept", items[0].Reply.ID)
}

func TestFlatten_HiddenVisibleOnlyToStaff(t *testing.T) {
	roots := []*corethread.Reply{
		{ID: "h", Status: corethread.StatusHidden},
		{ID: "ok"},
	}

	regular := Flatten(roots, FlattenOptions{MaxDepth: 3})
	require.Len(t, regular, 1)
	assert.Equal(t, "ok", regular[0].Reply.ID)

	staff := Flatten(roots, FlattenOptions{MaxDepth: 3, ViewerIsStaff: true})
	assert.Len(t, staff, 2)
}

func TestFlatten_ParentIDs(t *testing.T) {
	roots := []*corethread.Reply{{
		ID:       "p",
		Children: []*corethread.Reply{{ID: "c"}},
	}}

	items := Flatten(roots, FlattenOptions{MaxDepth: 3})

	require.Len(t, items, 2)
	assert.Equal(t, "", items[0].ParentID)
	assert.Equal(t, "p", items[1].ParentID)
}
