package config

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/threadview/internal/core/styles"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateThread(),
		c.validateEdit(),
		c.validateKeybindings(),
		c.validateTUI(),
	)
}

func (c *Config) validateTUI() error {
	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return criterio.NewFieldErrors("tui.theme",
			fmt.Errorf("unknown theme %q (available: %s)", c.TUI.Theme, strings.Join(styles.ThemeNames(), ", ")))
	}
	return nil
}

func (c *Config) validateThread() error {
	var errs criterio.FieldErrorsBuilder

	if c.Thread.MaxDepth < 1 {
		errs = errs.Append("thread.max_depth", fmt.Errorf("must be at least 1"))
	}
	if c.Thread.CollapseHeight < 1 {
		errs = errs.Append("thread.collapse_height", fmt.Errorf("must be at least 1"))
	}
	if c.Thread.VisibleFraction <= 0 || c.Thread.VisibleFraction > 1 {
		errs = errs.Append("thread.visible_fraction", fmt.Errorf("must be in (0, 1], got %v", c.Thread.VisibleFraction))
	}
	if c.Thread.RelativeTickSeconds < 1 {
		errs = errs.Append("thread.relative_tick_seconds", fmt.Errorf("must be at least 1"))
	}

	return errs.ToError()
}

func (c *Config) validateEdit() error {
	var errs criterio.FieldErrorsBuilder

	if c.Edit.MinLength < 1 {
		errs = errs.Append("edit.min_length", fmt.Errorf("must be at least 1"))
	}
	if c.Edit.MaxLength < c.Edit.MinLength {
		errs = errs.Append("edit.max_length", fmt.Errorf("must be >= min_length (%d)", c.Edit.MinLength))
	}
	if c.Edit.TimeLimitMinutes < 0 {
		errs = errs.Append("edit.time_limit_minutes", fmt.Errorf("cannot be negative"))
	}
	if c.Edit.AutosaveDebounceMs < 0 {
		errs = errs.Append("edit.autosave_debounce_ms", fmt.Errorf("cannot be negative"))
	}

	return errs.ToError()
}

func (c *Config) validateKeybindings() error {
	var errs criterio.FieldErrorsBuilder

	for key, kb := range c.Keybindings {
		if kb.Action == "" {
			errs = errs.Append(fmt.Sprintf("keybindings[%q]", key), fmt.Errorf("action is required"))
			continue
		}
		if !isValidAction(kb.Action) {
			errs = errs.Append(fmt.Sprintf("keybindings[%q]", key), fmt.Errorf("invalid action %q", kb.Action))
		}
	}

	return errs.ToError()
}
