package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/threadview/internal/core/config"
	"github.com/colonyops/threadview/internal/core/styles"
)

type InitCmd struct {
	flags *Flags
	force bool
}

// NewInitCmd creates the init command.
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application.
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "init",
		Usage:       "Create a config file interactively",
		UsageText:   "threadview init [options]",
		Description: "Walks through the common settings and writes a config file to the config path.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "overwrite an existing config file",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()

	var (
		theme         = cfg.TUI.Theme
		maxDepth      = strconv.Itoa(cfg.Thread.MaxDepth)
		translateTo   = cfg.Thread.TranslateTo
		requireReason = cfg.Edit.RequireReason
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(huh.NewOptions(styles.ThemeNames()...)...).
			Value(&theme),
		huh.NewInput().
			Title("Maximum visible thread depth").
			Validate(func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil || n < 1 {
					return fmt.Errorf("must be a positive integer")
				}
				return nil
			}).
			Value(&maxDepth),
		huh.NewInput().
			Title("Translation target language").
			Description("BCP 47 tag, e.g. en, de, ja").
			Value(&translateTo),
		huh.NewConfirm().
			Title("Require a reason for every edit?").
			Value(&requireReason),
	))

	if err := form.Run(); err != nil {
		return fmt.Errorf("run wizard: %w", err)
	}

	cfg.TUI.Theme = theme
	cfg.Thread.MaxDepth, _ = strconv.Atoi(maxDepth)
	cfg.Thread.TranslateTo = translateTo
	cfg.Edit.RequireReason = requireReason

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "wrote %s\n", path)
	return nil
}
