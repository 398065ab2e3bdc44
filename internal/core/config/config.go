// Package config handles configuration loading and validation for
// threadview.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Thread      ThreadConfig          `yaml:"thread"`
	Edit        EditConfig            `yaml:"edit"`
	TUI         TUIConfig             `yaml:"tui"`
	Keybindings map[string]Keybinding `yaml:"keybindings"`
	DataDir     string                `yaml:"-"` // set by caller, not from config file
}

// ThreadConfig controls tree rendering and visibility behavior.
type ThreadConfig struct {
	// MaxDepth bounds visual nesting. Replies at or beyond the bound render
	// a "show thread" affordance instead of descending.
	MaxDepth int `yaml:"max_depth"`
	// CollapseHeight is the body line count above which a reply starts
	// collapsed with a "show more" affordance.
	CollapseHeight int `yaml:"collapse_height"`
	// VisibleFraction is the fraction of a reply's lines that must be inside
	// the viewport before lazy work (content processing, view reporting)
	// runs. Range (0, 1].
	VisibleFraction float64 `yaml:"visible_fraction"`
	// RelativeTickSeconds is the refresh interval for relative timestamps.
	RelativeTickSeconds int `yaml:"relative_tick_seconds"`
	// TranslateTo is the target language tag for on-demand translation.
	TranslateTo string `yaml:"translate_to"`
}

// EditConfig controls the edit flow.
type EditConfig struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
	// TimeLimitMinutes disables saving once this many minutes have passed
	// since the last edit. Zero means no limit.
	TimeLimitMinutes int `yaml:"time_limit_minutes"`
	// AutosaveDebounceMs debounces draft auto-saves. Zero disables autosave.
	AutosaveDebounceMs int `yaml:"autosave_debounce_ms"`
	// RequireReason forces reason selection for every edit regardless of
	// actor role or prior history.
	RequireReason bool `yaml:"require_reason"`
}

// TUIConfig holds presentation options.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// Keybinding maps a key to a built-in action, optionally gated behind a
// confirmation prompt.
type Keybinding struct {
	Action  string `yaml:"action"`
	Help    string `yaml:"help"`
	Confirm string `yaml:"confirm"`
}

// Built-in action names for keybindings.
const (
	ActionLike        = "like"
	ActionDislike     = "dislike"
	ActionBookmark    = "bookmark"
	ActionShare       = "share"
	ActionHelpful     = "helpful"
	ActionEdit        = "edit"
	ActionDelete      = "delete"
	ActionReport      = "report"
	ActionTranslate   = "translate"
	ActionCopy        = "copy"
	ActionCollapse    = "collapse"
	ActionExpandBody  = "expand-body"
	ActionShowThread  = "show-thread"
	ActionViewProfile = "view-profile"
	ActionOpenUser    = "open-user"
	ActionFollowUser  = "follow-user"
	ActionBlockUser   = "block-user"
)

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]Keybinding{
	"l":     {Action: ActionLike, Help: "like"},
	"L":     {Action: ActionDislike, Help: "dislike"},
	"b":     {Action: ActionBookmark, Help: "bookmark"},
	"s":     {Action: ActionShare, Help: "share"},
	"h":     {Action: ActionHelpful, Help: "helpful"},
	"e":     {Action: ActionEdit, Help: "edit"},
	"d":     {Action: ActionDelete, Help: "delete", Confirm: "Delete this reply?"},
	"R":     {Action: ActionReport, Help: "report"},
	"t":     {Action: ActionTranslate, Help: "translate"},
	"y":     {Action: ActionCopy, Help: "copy"},
	"c":     {Action: ActionCollapse, Help: "collapse"},
	"o":     {Action: ActionExpandBody, Help: "show more"},
	"enter": {Action: ActionShowThread, Help: "show thread"},
	"p":     {Action: ActionViewProfile, Help: "profile"},
	"u":     {Action: ActionOpenUser, Help: "open user"},
	"f":     {Action: ActionFollowUser, Help: "follow"},
	"B":     {Action: ActionBlockUser, Help: "block", Confirm: "Block this user?"},
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Thread: ThreadConfig{
			MaxDepth:            3,
			CollapseHeight:      8,
			VisibleFraction:     0.5,
			RelativeTickSeconds: 60,
			TranslateTo:         "en",
		},
		Edit: EditConfig{
			MinLength:          10,
			MaxLength:          2000,
			TimeLimitMinutes:   0,
			AutosaveDebounceMs: 1500,
		},
		TUI:         TUIConfig{Theme: "tokyo-night"},
		Keybindings: map[string]Keybinding{},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Thread.MaxDepth == 0 {
		c.Thread.MaxDepth = defaults.Thread.MaxDepth
	}
	if c.Thread.CollapseHeight == 0 {
		c.Thread.CollapseHeight = defaults.Thread.CollapseHeight
	}
	if c.Thread.VisibleFraction == 0 {
		c.Thread.VisibleFraction = defaults.Thread.VisibleFraction
	}
	if c.Thread.RelativeTickSeconds == 0 {
		c.Thread.RelativeTickSeconds = defaults.Thread.RelativeTickSeconds
	}
	if c.Thread.TranslateTo == "" {
		c.Thread.TranslateTo = defaults.Thread.TranslateTo
	}
	if c.Edit.MinLength == 0 {
		c.Edit.MinLength = defaults.Edit.MinLength
	}
	if c.Edit.MaxLength == 0 {
		c.Edit.MaxLength = defaults.Edit.MaxLength
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key.
func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range user {
		result[k] = v
	}
	return result
}

func isValidAction(action string) bool {
	switch action {
	case ActionLike, ActionDislike, ActionBookmark, ActionShare, ActionHelpful,
		ActionEdit, ActionDelete, ActionReport, ActionTranslate, ActionCopy,
		ActionCollapse, ActionExpandBody, ActionShowThread, ActionViewProfile,
		ActionOpenUser, ActionFollowUser, ActionBlockUser:
		return true
	default:
		return false
	}
}
