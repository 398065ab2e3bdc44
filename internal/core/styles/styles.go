// Package styles provides shared lipgloss v2 styles for CLI and TUI
// components.
package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// Shared modal styles.
	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style
	ConfirmMessageStyle      lipgloss.Style

	// Text styles.
	TextPrimaryStyle     lipgloss.Style
	TextPrimaryBoldStyle lipgloss.Style
	TextForegroundStyle  lipgloss.Style
	TextMutedStyle       lipgloss.Style
	TextErrorStyle       lipgloss.Style
	TextSuccessStyle     lipgloss.Style
	TextWarningStyle     lipgloss.Style

	// Form styles.
	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style

	SelectFieldItemSelectedStyle lipgloss.Style

	// Reply identity styles.
	AuthorNameStyle    lipgloss.Style
	AuthorRoleStyle    lipgloss.Style
	TierBasicStyle     lipgloss.Style
	TierTrustedStyle   lipgloss.Style
	TierPremiumStyle   lipgloss.Style
	TierEliteStyle     lipgloss.Style
	TierExpertStyle    lipgloss.Style
	TimestampStyle     lipgloss.Style
	AvatarInitialStyle lipgloss.Style

	// Reply body styles.
	MentionStyle     lipgloss.Style
	HashtagStyle     lipgloss.Style
	LinkStyle        lipgloss.Style
	SearchHitStyle   lipgloss.Style
	SegmentFocused   lipgloss.Style
	PinnedStyle      lipgloss.Style
	HighlightedStyle lipgloss.Style
	LockedStyle      lipgloss.Style
	MetricsStyle     lipgloss.Style
	CopiedStyle      lipgloss.Style

	// Interaction footer styles.
	ActionStyle        lipgloss.Style
	ActionActiveStyle  lipgloss.Style
	ActionPendingStyle lipgloss.Style
	CounterStyle       lipgloss.Style

	// Tree styles.
	IndentGuideStyle    lipgloss.Style
	CollapsedSummary    lipgloss.Style
	ShowThreadStyle     lipgloss.Style
	SelectedItemStyle   lipgloss.Style
	DiffAddedStyle      lipgloss.Style
	DiffRemovedStyle    lipgloss.Style
	DiffUnchangedStyle  lipgloss.Style
	ToastInfoStyle      lipgloss.Style
	ToastWarningStyle   lipgloss.Style
	ToastErrorStyle     lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	ConfirmMessageStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)

	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	SelectFieldItemSelectedStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	AuthorNameStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	AuthorRoleStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	TierBasicStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TierTrustedStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	TierPremiumStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TierEliteStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TierExpertStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	TimestampStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	AvatarInitialStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorForeground).
		Padding(0, 1).
		Bold(true)

	MentionStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	HashtagStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	LinkStyle = lipgloss.NewStyle().Foreground(ColorSecondary).Underline(true)
	SearchHitStyle = lipgloss.NewStyle().Background(ColorWarning).Foreground(ColorBackground)
	SegmentFocused = lipgloss.NewStyle().Reverse(true)
	PinnedStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	HighlightedStyle = lipgloss.NewStyle().Background(ColorSurface)
	LockedStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	MetricsStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	CopiedStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	ActionStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ActionActiveStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	ActionPendingStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	CounterStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	IndentGuideStyle = lipgloss.NewStyle().Foreground(ColorSurface)
	CollapsedSummary = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	ShowThreadStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Underline(true)
	SelectedItemStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	DiffAddedStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	DiffRemovedStyle = lipgloss.NewStyle().Foreground(ColorError).Strikethrough(true)
	DiffUnchangedStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	ToastInfoStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ToastWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ToastErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
