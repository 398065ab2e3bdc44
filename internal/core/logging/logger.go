package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component derives a logger tagged with the given component name under the
// "cmp" key. The TUI shell, analytics sink, and CLI commands each get one.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
