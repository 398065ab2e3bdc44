package thread

import (
	"iter"

	corethread "github.com/colonyops/threadview/internal/core/thread"
)

// ItemKind discriminates flattened thread items.
type ItemKind int

const (
	// ItemReply is a fully rendered reply node.
	ItemReply ItemKind = iota
	// ItemCollapsedSummary stands in for a collapsed node and its entire
	// subtree: one summary line, one expand control.
	ItemCollapsedSummary
	// ItemShowThread is the affordance rendered in place of children that
	// sit at or beyond the depth bound.
	ItemShowThread
)

// NodeItem is one visual row group of the flattened thread.
type NodeItem struct {
	Reply    *corethread.Reply
	ParentID string
	Kind     ItemKind

	// Depth is the node's depth in the data; IndentDepth is the depth used
	// for visual indentation, clamped to the configured bound.
	Depth       int
	IndentDepth int

	// DescendantCount is populated for summary and show-thread items.
	DescendantCount int
}

// FlattenOptions controls which nodes of the tree materialize as items.
type FlattenOptions struct {
	MaxDepth      int
	Collapsed     map[string]bool
	ViewerIsStaff bool
}

// Flatten walks the reply forest and produces the ordered item list the
// view renders. Rules, in order:
//
//   - deleted replies produce nothing, including their subtrees;
//   - hidden replies produce nothing unless the viewer is staff;
//   - a collapsed reply produces exactly one summary item and skips its
//     subtree;
//   - children at depth >= MaxDepth are not descended into; their parent
//     gets a single show-thread item instead.
//
// The data is never mutated: truncation and collapse are render concerns.
func Flatten(roots []*corethread.Reply, opts FlattenOptions) []NodeItem {
	if opts.MaxDepth < 1 {
		opts.MaxDepth = 1
	}
	var items []NodeItem

	var visit func(r *corethread.Reply, parentID string, depth int)
	visit = func(r *corethread.Reply, parentID string, depth int) {
		if r == nil || !r.IsVisibleTo(opts.ViewerIsStaff) {
			return
		}

		indent := depth
		if indent > opts.MaxDepth-1 {
			indent = opts.MaxDepth - 1
		}

		if opts.Collapsed[r.ID] {
			items = append(items, NodeItem{
				Reply:           r,
				ParentID:        parentID,
				Kind:            ItemCollapsedSummary,
				Depth:           depth,
				IndentDepth:     indent,
				DescendantCount: corethread.DescendantCount(r),
			})
			return
		}

		items = append(items, NodeItem{
			Reply:       r,
			ParentID:    parentID,
			Kind:        ItemReply,
			Depth:       depth,
			IndentDepth: indent,
		})

		if len(r.Children) == 0 {
			return
		}
		if depth+1 >= opts.MaxDepth {
			items = append(items, NodeItem{
				Reply:           r,
				ParentID:        parentID,
				Kind:            ItemShowThread,
				Depth:           depth + 1,
				IndentDepth:     opts.MaxDepth - 1,
				DescendantCount: corethread.DescendantCount(r),
			})
			return
		}
		for _, child := range r.Children {
			visit(child, r.ID, depth+1)
		}
	}

	for _, root := range roots {
		visit(root, "", 0)
	}
	return items
}

// Replies yields only the ItemReply items together with their index.
func Replies(items []NodeItem) iter.Seq2[int, NodeItem] {
	return func(yield func(int, NodeItem) bool) {
		for i, item := range items {
			if item.Kind != ItemReply {
				continue
			}
			if !yield(i, item) {
				return
			}
		}
	}
}

// MaxIndent returns the deepest indent level present in items, in levels
// (0-based). Used by tests to assert the render bound.
func MaxIndent(items []NodeItem) int {
	deepest := 0
	for _, item := range items {
		if item.IndentDepth > deepest {
			deepest = item.IndentDepth
		}
	}
	return deepest
}
