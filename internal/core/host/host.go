// Package host declares the callback contract between the thread UI core
// and the surrounding application. The host owns all durable state: the core
// only proposes mutations through these methods and reconciles their
// results. Every method may be slow; implementations are called off the UI
// loop and must honor the passed context.
package host

import "context"

// Reason codes shared by edit, delete, and report flows. "other" requires
// free-text details wherever it is selectable.
const (
	ReasonTypo          = "typo"
	ReasonClarification = "clarification"
	ReasonFactual       = "factual_correction"
	ReasonSpam          = "spam"
	ReasonHarassment    = "harassment"
	ReasonOffTopic      = "off_topic"
	ReasonDuplicate     = "duplicate"
	ReasonOther         = "other"
)

// EditReasons is the selectable taxonomy for edit flows.
var EditReasons = []string{ReasonTypo, ReasonClarification, ReasonFactual, ReasonOther}

// DeleteReasons is the selectable taxonomy for delete flows.
var DeleteReasons = []string{ReasonSpam, ReasonDuplicate, ReasonOffTopic, ReasonOther}

// ReportReasons is the selectable taxonomy for report flows.
var ReportReasons = []string{ReasonSpam, ReasonHarassment, ReasonOffTopic, ReasonOther}

// Mutations covers every durable write the UI can propose. A nil error is
// the host's acknowledgment that the mutation was accepted.
type Mutations interface {
	Like(ctx context.Context, replyID string) error
	Dislike(ctx context.Context, replyID string) error
	Bookmark(ctx context.Context, replyID string) error
	Share(ctx context.Context, replyID string) error
	HelpfulVote(ctx context.Context, replyID string, helpful bool) error

	Edit(ctx context.Context, replyID, newContent, reason string) error
	Delete(ctx context.Context, replyID, reason string, permanent bool) error
	Report(ctx context.Context, replyID, reason, details string) error

	// Translate returns the reply content translated to the target language.
	Translate(ctx context.Context, replyID, targetLang string) (string, error)
}

// Navigation covers identity and annotation activation. These are
// fire-and-forget from the UI's perspective.
type Navigation interface {
	UserClicked(userID string)
	MentionClicked(userID string)
	HashtagClicked(tag string)
	LinkClicked(linkID, url string)
	ViewProfile(userID string)
	Block(userID string)
	Follow(userID string)
}

// Host is the full contract a surrounding application implements.
type Host interface {
	Mutations
	Navigation
}
