// Package timeutil formats timestamps for the thread UI.
package timeutil

import (
	"fmt"
	"time"
)

// Relative renders t relative to now: "just now", "5m ago", "3h ago",
// "2d ago". Anything older than 30 days falls back to the absolute date.
func Relative(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return Absolute(t)
	}
}

// Absolute renders t as a locale-neutral timestamp.
func Absolute(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}

// MinutesSince returns whole minutes elapsed from t to now, floored at zero.
func MinutesSince(t, now time.Time) int {
	m := int(now.Sub(t).Minutes())
	if m < 0 {
		return 0
	}
	return m
}
