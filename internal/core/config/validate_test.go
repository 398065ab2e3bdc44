package config

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)
	return cfg
}

func TestValidate_ThreadBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Thread.MaxDepth = 0
	cfg.Thread.VisibleFraction = 2

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Equal(t, "thread.max_depth", fieldErrs[0].Field)
	assert.Equal(t, "thread.visible_fraction", fieldErrs[1].Field)
}

func TestValidate_EditBounds(t *testing.T) {
	cfg := validConfig()
	cfg.Edit.MinLength = 100
	cfg.Edit.MaxLength = 50

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Err.Error(), "min_length")
}

func TestValidate_NegativeTimeLimit(t *testing.T) {
	cfg := validConfig()
	cfg.Edit.TimeLimitMinutes = -5

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "edit.time_limit_minutes", fieldErrs[0].Field)
}

func TestValidate_UnknownKeybindingAction(t *testing.T) {
	cfg := validConfig()
	cfg.Keybindings["z"] = Keybinding{Action: "explode"}

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Field, "keybindings")
	assert.Contains(t, fieldErrs[0].Err.Error(), "explode")
}

func TestValidate_UnknownTheme(t *testing.T) {
	cfg := validConfig()
	cfg.TUI.Theme = "neon-zebra"

	err := cfg.Validate()
	require.Error(t, err)
}
