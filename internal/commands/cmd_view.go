package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/threadview/internal/core/analytics"
	"github.com/colonyops/threadview/internal/core/host/hostmock"
	"github.com/colonyops/threadview/internal/core/logging"
	"github.com/colonyops/threadview/internal/tui"
	"github.com/colonyops/threadview/pkg/iojson"
)

type ViewCmd struct {
	flags *Flags

	reader  iojson.FileReader[Fixture]
	glob    string
	query   string
	latency time.Duration
}

// NewViewCmd creates the view command.
func NewViewCmd(flags *Flags) *ViewCmd {
	return &ViewCmd{flags: flags}
}

// Register adds the view command to the application.
func (cmd *ViewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "view",
		Usage:     "Browse a reply thread interactively",
		UsageText: "threadview view [options]",
		Description: `Loads a thread fixture and opens the interactive browser against a
mock host. Mutations are recorded, not persisted; this is the harness a real
host integration is developed against.`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:        "glob",
				Usage:       "doublestar pattern of fixture shards (overrides -f)",
				Destination: &cmd.glob,
			},
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "highlight matches of this search term",
				Destination: &cmd.query,
			},
			&cli.DurationFlag{
				Name:        "latency",
				Usage:       "simulated host latency for every mutation",
				Value:       300 * time.Millisecond,
				Destination: &cmd.latency,
			},
		}, cmd.reader.Flag()),
		Action: cmd.run,
	})
	return app
}

func (cmd *ViewCmd) run(ctx context.Context, c *cli.Command) error {
	fixture, err := cmd.load()
	if err != nil {
		return err
	}
	fixture.normalize()
	if len(fixture.Replies) == 0 {
		return fmt.Errorf("fixture contains no replies")
	}
	if fixture.Title == "" {
		fixture.Title = "Reviews"
	}

	mock := hostmock.New()
	mock.Latency = cmd.latency

	m := tui.NewModel(tui.Options{
		Config:        cmd.flags.Config,
		Host:          mock,
		Analytics:     analytics.NewLogger(logging.Component("analytics")),
		Logger:        logging.Component("tui"),
		Title:         fixture.Title,
		Roots:         fixture.Replies,
		ViewerID:      fixture.ViewerID,
		ViewerIsStaff: fixture.ViewerIsStaff,
		Query:         cmd.query,
	})

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	log.Info().Int("host_calls", len(mock.Calls())).Msg("session ended")
	return nil
}

func (cmd *ViewCmd) load() (Fixture, error) {
	if cmd.glob == "" {
		return cmd.reader.Read()
	}

	shards, err := iojson.ReadGlob[Fixture](cmd.glob)
	if err != nil {
		return Fixture{}, err
	}
	var merged Fixture
	for _, shard := range shards {
		merged.merge(shard)
	}
	return merged, nil
}
