// Package analytics defines the fixed telemetry vocabulary emitted by the
// thread UI and the sink contract the host plugs into. Event names are part
// of the host contract: downstream pipelines match on them verbatim, so
// never rename an existing event.
package analytics

import "github.com/rs/zerolog"

// Event names. Keep list sorted A-Z.
const (
	EventReplyBookmark      = "reply.bookmark"
	EventReplyCollapse      = "reply.collapse"
	EventReplyCopy          = "reply.copy"
	EventReplyDeleteAttempt = "reply.delete_attempt"
	EventReplyDeleteFailure = "reply.delete_failure"
	EventReplyDeleteSuccess = "reply.delete_success"
	EventReplyDislike       = "reply.dislike"
	EventReplyEditAttempt   = "reply.edit_attempt"
	EventReplyEditFailure   = "reply.edit_failure"
	EventReplyEditSuccess   = "reply.edit_success"
	EventReplyExpand        = "reply.expand"
	EventReplyHashtagClick  = "reply.hashtag_click"
	EventReplyHelpfulVote   = "reply.helpful_vote"
	EventReplyLike          = "reply.like"
	EventReplyLinkClick     = "reply.link_click"
	EventReplyMentionClick  = "reply.mention_click"
	EventReplyProfileView   = "reply.profile_view"
	EventReplyReport        = "reply.report"
	EventReplyShare         = "reply.share"
	EventReplyTranslate     = "reply.translate"
	EventReplyTranslateFail = "reply.translate_failure"
	EventReplyUserBlock     = "reply.user_block"
	EventReplyUserClick     = "reply.user_click"
	EventReplyUserFollow    = "reply.user_follow"
	EventReplyView          = "reply.view"
	EventThreadShowMore     = "thread.show_more"
)

// Payload carries event context. Keys are free-form but stable per event.
type Payload map[string]any

// Sink receives every user-observable action. Implementations must be cheap
// and non-blocking; they run inline on the UI loop.
type Sink interface {
	Emit(event string, payload Payload)
}

// Logger is a Sink that writes events to a zerolog logger at debug level.
type Logger struct {
	log zerolog.Logger
}

// NewLogger wraps a zerolog logger as an analytics sink.
func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Emit(event string, payload Payload) {
	l.log.Debug().Str("event", event).Fields(map[string]any(payload)).Msg("analytics")
}

// Recorder is an in-memory Sink for tests.
type Recorder struct {
	Events []RecordedEvent
}

// RecordedEvent is one captured emit.
type RecordedEvent struct {
	Name    string
	Payload Payload
}

func (r *Recorder) Emit(event string, payload Payload) {
	r.Events = append(r.Events, RecordedEvent{Name: event, Payload: payload})
}

// Names returns the captured event names in emit order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Events))
	for i, e := range r.Events {
		names[i] = e.Name
	}
	return names
}

// Nop discards all events.
type Nop struct{}

func (Nop) Emit(string, Payload) {}
