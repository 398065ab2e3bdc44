package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelative(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"just under an hour", now.Add(-59 * time.Minute), "59m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"days ago", now.Add(-48 * time.Hour), "2d ago"},
		{"29 days stays relative", now.Add(-29 * 24 * time.Hour), "29d ago"},
		{"older than 30 days goes absolute", now.Add(-31 * 24 * time.Hour), "Feb 12, 2026 12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Relative(tt.t, now))
		})
	}
}

func TestAbsolute(t *testing.T) {
	ts := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "Jan 2, 2026 15:04", Absolute(ts))
}

func TestMinutesSince(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, MinutesSince(now, now))
	assert.Equal(t, 90, MinutesSince(now.Add(-90*time.Minute), now))
	assert.Equal(t, 0, MinutesSince(now.Add(10*time.Minute), now), "future timestamps floor at zero")
	assert.Equal(t, 1, MinutesSince(now.Add(-99*time.Second), now), "partial minutes floor")
}
