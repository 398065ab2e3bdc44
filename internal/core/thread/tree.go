package thread

import "iter"

// Node pairs a reply with its parent ID and depth during traversal. Depth is
// relative to the walked roots (roots are depth 0).
type Node struct {
	Reply    *Reply
	ParentID string
	Depth    int
}

// Walk yields every reply in the forest depth-first, pre-order, together
// with its parent ID and depth. The walk visits data beyond any display
// depth bound; render-side truncation is the caller's concern.
func Walk(roots []*Reply) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(r *Reply, parentID string, depth int) bool
		visit = func(r *Reply, parentID string, depth int) bool {
			if r == nil {
				return true
			}
			if !yield(Node{Reply: r, ParentID: parentID, Depth: depth}) {
				return false
			}
			for _, child := range r.Children {
				if !visit(child, r.ID, depth+1) {
					return false
				}
			}
			return true
		}
		for _, root := range roots {
			if !visit(root, "", 0) {
				return
			}
		}
	}
}

// Find returns the reply with the given ID, or nil if absent.
func Find(roots []*Reply, id string) *Reply {
	for node := range Walk(roots) {
		if node.Reply.ID == id {
			return node.Reply
		}
	}
	return nil
}

// DescendantCount returns the number of replies beneath r, excluding r.
func DescendantCount(r *Reply) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, child := range r.Children {
		n += 1 + DescendantCount(child)
	}
	return n
}

// MaxDataDepth returns the deepest level present in the forest, counting
// roots as level 1. An empty forest has depth 0.
func MaxDataDepth(roots []*Reply) int {
	deepest := 0
	for node := range Walk(roots) {
		if node.Depth+1 > deepest {
			deepest = node.Depth + 1
		}
	}
	return deepest
}
