package commands

import (
	"time"

	"github.com/google/uuid"

	"github.com/colonyops/threadview/internal/core/thread"
)

// Fixture is the on-disk thread format the CLI loads. A fixture holds the
// full forest plus the viewer context a real host would provide.
type Fixture struct {
	Title         string          `json:"title"`
	ViewerID      string          `json:"viewer_id"`
	ViewerIsStaff bool            `json:"viewer_is_staff"`
	Replies       []*thread.Reply `json:"replies"`
}

// normalize fills in the fields optional in hand-written fixtures: missing
// IDs get generated, missing timestamps get plausible recent ones.
func (f *Fixture) normalize() {
	now := time.Now()
	var visit func(r *thread.Reply, age time.Duration)
	visit = func(r *thread.Reply, age time.Duration) {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if r.User.ID == "" {
			r.User.ID = uuid.NewString()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now.Add(-age)
		}
		for i, child := range r.Children {
			visit(child, age-time.Duration(i+1)*time.Minute)
		}
	}
	for i, root := range f.Replies {
		visit(root, time.Duration(i+1)*time.Hour)
	}
}

// merge folds another fixture's replies into this one. Used when a thread
// is sharded across files.
func (f *Fixture) merge(other Fixture) {
	if f.Title == "" {
		f.Title = other.Title
	}
	if f.ViewerID == "" {
		f.ViewerID = other.ViewerID
	}
	f.ViewerIsStaff = f.ViewerIsStaff || other.ViewerIsStaff
	f.Replies = append(f.Replies, other.Replies...)
}
