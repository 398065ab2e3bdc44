// Package hostmock provides a scriptable in-memory Host used by tests and
// the demo CLI. Calls are recorded in order; individual methods can be
// primed to fail or to delay, which is how the optimistic-rollback and
// busy-indicator paths are exercised.
package hostmock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/colonyops/threadview/internal/core/host"
)

var _ host.Host = (*Mock)(nil)

// Call is one recorded host invocation.
type Call struct {
	Method  string
	ReplyID string
	Args    []string
}

// Mock implements host.Host. The zero value acks every mutation
// immediately.
type Mock struct {
	mu    sync.Mutex
	calls []Call

	// Errs primes a method name to return an error.
	Errs map[string]error
	// Latency delays every mutation before returning, simulating transport.
	Latency time.Duration
	// Translations maps replyID to canned translated content. Missing
	// entries fall back to a tagged placeholder.
	Translations map[string]string
}

// New returns an empty mock.
func New() *Mock {
	return &Mock{}
}

// FailWith primes method to return err. Method names match the host.Host
// method names, e.g. "Like".
func (m *Mock) FailWith(method string, err error) *Mock {
	if m.Errs == nil {
		m.Errs = map[string]error{}
	}
	m.Errs[method] = err
	return m
}

// Calls returns a copy of the recorded calls.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns how many recorded calls hit the given method.
func (m *Mock) CallsTo(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (m *Mock) record(ctx context.Context, method, replyID string, args ...string) error {
	if m.Latency > 0 {
		select {
		case <-time.After(m.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	m.mu.Lock()
	m.calls = append(m.calls, Call{Method: method, ReplyID: replyID, Args: args})
	err := m.Errs[method]
	m.mu.Unlock()
	return err
}

func (m *Mock) Like(ctx context.Context, replyID string) error {
	return m.record(ctx, "Like", replyID)
}

func (m *Mock) Dislike(ctx context.Context, replyID string) error {
	return m.record(ctx, "Dislike", replyID)
}

func (m *Mock) Bookmark(ctx context.Context, replyID string) error {
	return m.record(ctx, "Bookmark", replyID)
}

func (m *Mock) Share(ctx context.Context, replyID string) error {
	return m.record(ctx, "Share", replyID)
}

func (m *Mock) HelpfulVote(ctx context.Context, replyID string, helpful bool) error {
	return m.record(ctx, "HelpfulVote", replyID, fmt.Sprintf("%t", helpful))
}

func (m *Mock) Edit(ctx context.Context, replyID, newContent, reason string) error {
	return m.record(ctx, "Edit", replyID, newContent, reason)
}

func (m *Mock) Delete(ctx context.Context, replyID, reason string, permanent bool) error {
	return m.record(ctx, "Delete", replyID, reason, fmt.Sprintf("%t", permanent))
}

func (m *Mock) Report(ctx context.Context, replyID, reason, details string) error {
	return m.record(ctx, "Report", replyID, reason, details)
}

func (m *Mock) Translate(ctx context.Context, replyID, targetLang string) (string, error) {
	if err := m.record(ctx, "Translate", replyID, targetLang); err != nil {
		return "", err
	}
	if t, ok := m.Translations[replyID]; ok {
		return t, nil
	}
	return fmt.Sprintf("[%s] translated content for %s", targetLang, replyID), nil
}

func (m *Mock) UserClicked(userID string)     { _ = m.record(context.Background(), "UserClicked", userID) }
func (m *Mock) MentionClicked(userID string)  { _ = m.record(context.Background(), "MentionClicked", userID) }
func (m *Mock) HashtagClicked(tag string)     { _ = m.record(context.Background(), "HashtagClicked", tag) }
func (m *Mock) ViewProfile(userID string)     { _ = m.record(context.Background(), "ViewProfile", userID) }
func (m *Mock) Block(userID string)           { _ = m.record(context.Background(), "Block", userID) }
func (m *Mock) Follow(userID string)          { _ = m.record(context.Background(), "Follow", userID) }

func (m *Mock) LinkClicked(linkID, url string) {
	_ = m.record(context.Background(), "LinkClicked", linkID, url)
}
