// Package thread defines the reply-tree data model shared by the TUI core.
// Records are created and owned by the host application; this package only
// describes their shape and provides read-side tree helpers.
package thread

import "time"

// ModerationStatus is the host-assigned visibility state of a reply.
type ModerationStatus string

const (
	StatusApproved ModerationStatus = "approved"
	StatusPending  ModerationStatus = "pending"
	StatusFlagged  ModerationStatus = "flagged"
	StatusHidden   ModerationStatus = "hidden"
	StatusDeleted  ModerationStatus = "deleted"
)

// Role is the author's role within the storefront.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
	RoleMerchant  Role = "merchant"
)

// IsStaff reports whether the role carries moderation privileges.
func (r Role) IsStaff() bool {
	return r == RoleModerator || r == RoleAdmin
}

// Badge is a display-only accolade attached to a user identity.
type Badge struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// UserIdentity is a read-only snapshot of the author at render time.
// The host owns the canonical record; never mutate these fields.
type UserIdentity struct {
	ID              string  `json:"id"`
	DisplayName     string  `json:"display_name"`
	AvatarURL       string  `json:"avatar_url,omitempty"`
	Verified        bool    `json:"verified"`
	TrustScore      float64 `json:"trust_score"`
	ReputationScore int     `json:"reputation_score"`
	Role            Role    `json:"role"`
	Location        string  `json:"location,omitempty"`
	Badges          []Badge `json:"badges,omitempty"`
}

// AnnotationKind discriminates the annotation span types a reply may carry.
type AnnotationKind string

const (
	AnnotationMention AnnotationKind = "mention"
	AnnotationHashtag AnnotationKind = "hashtag"
	AnnotationLink    AnnotationKind = "link"
)

// Annotation marks a character-offset range of reply content as a mention,
// hashtag, or link. Offsets are byte indexes into the raw content; ranges
// that fall outside the content are ignored at render time, not rejected.
type Annotation struct {
	Kind  AnnotationKind `json:"kind"`
	Start int            `json:"start"`
	End   int            `json:"end"`

	// Kind-specific metadata. Exactly one group is meaningful per kind.
	UserID string `json:"user_id,omitempty"` // mention
	Tag    string `json:"tag,omitempty"`     // hashtag
	LinkID string `json:"link_id,omitempty"` // link
	URL    string `json:"url,omitempty"`     // link
}

// Attachment is a host-hosted media reference on a reply.
type Attachment struct {
	ID   string `json:"id"`
	Kind string `json:"kind"` // image, video, file
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// Counters holds the host-confirmed interaction tallies for a reply.
type Counters struct {
	Likes     int `json:"likes"`
	Dislikes  int `json:"dislikes"`
	Shares    int `json:"shares"`
	Bookmarks int `json:"bookmarks"`
	Reports   int `json:"reports"`
	Views     int `json:"views"`
	Helpful   int `json:"helpful"`
	Unhelpful int `json:"unhelpful"`
}

// EditHistoryEntry is one append-only record of a prior edit. Entries are
// created by the host on every confirmed edit and are never mutated or
// reordered by this client.
type EditHistoryEntry struct {
	EditedAt        time.Time `json:"edited_at"`
	EditorID        string    `json:"editor_id"`
	Reason          string    `json:"reason,omitempty"`
	PreviousContent string    `json:"previous_content"`
}

// Reply is one node of the thread tree. Children are ordered as the host
// delivered them. A reply references its author by snapshot, never by
// back-pointer; tree traversal carries parent IDs explicitly.
type Reply struct {
	ID          string           `json:"id"`
	User        UserIdentity     `json:"user"`
	Content     string           `json:"content"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Edited      bool             `json:"edited"`
	Pinned      bool             `json:"pinned"`
	Highlighted bool             `json:"highlighted"`
	Locked      bool             `json:"locked"`
	Status      ModerationStatus `json:"status"`
	Language    string           `json:"language,omitempty"`

	Annotations []Annotation       `json:"annotations,omitempty"`
	Attachments []Attachment       `json:"attachments,omitempty"`
	Counters    Counters           `json:"counters"`
	EditHistory []EditHistoryEntry `json:"edit_history,omitempty"`

	Children []*Reply `json:"children,omitempty"`
}

// LastEditedAt returns the timestamp of the most recent edit, or the
// creation time when the reply has never been edited.
func (r *Reply) LastEditedAt() time.Time {
	if n := len(r.EditHistory); n > 0 {
		return r.EditHistory[n-1].EditedAt
	}
	return r.CreatedAt
}

// HasEditHistory reports whether the reply has at least one prior edit.
func (r *Reply) HasEditHistory() bool {
	return len(r.EditHistory) > 0
}

// IsVisibleTo reports whether the reply should render for the given viewer.
// Deleted replies render for nobody; hidden replies render only for staff.
func (r *Reply) IsVisibleTo(viewerIsStaff bool) bool {
	switch r.Status {
	case StatusDeleted:
		return false
	case StatusHidden:
		return viewerIsStaff
	default:
		return true
	}
}
