package commands

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/threadview/internal/core/content"
	"github.com/colonyops/threadview/internal/core/identity"
	"github.com/colonyops/threadview/internal/core/thread"
	"github.com/colonyops/threadview/pkg/iojson"
)

type MetricsCmd struct {
	flags  *Flags
	reader iojson.FileReader[Fixture]
}

// NewMetricsCmd creates the metrics command.
func NewMetricsCmd(flags *Flags) *MetricsCmd {
	return &MetricsCmd{flags: flags}
}

// replyMetrics is one row of metrics output.
type replyMetrics struct {
	ID          string          `json:"id"`
	Author      string          `json:"author"`
	Tier        identity.Tier   `json:"tier"`
	Depth       int             `json:"depth"`
	Descendants int             `json:"descendants"`
	Metrics     content.Metrics `json:"metrics"`
}

// Register adds the metrics command to the application.
func (cmd *MetricsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "metrics",
		Usage:       "Compute content metrics for a thread fixture",
		UsageText:   "threadview metrics [options]",
		Description: "Walks the fixture tree and prints word count, character count, and reading time per reply as JSON.",
		Flags:       []cli.Flag{cmd.reader.Flag()},
		Action:      cmd.run,
	})
	return app
}

func (cmd *MetricsCmd) run(ctx context.Context, c *cli.Command) error {
	fixture, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	var rows []replyMetrics
	for node := range thread.Walk(fixture.Replies) {
		rows = append(rows, replyMetrics{
			ID:          node.Reply.ID,
			Author:      node.Reply.User.DisplayName,
			Tier:        identity.VerificationTier(node.Reply.User),
			Depth:       node.Depth,
			Descendants: thread.DescendantCount(node.Reply),
			Metrics:     content.Measure(node.Reply.Content),
		})
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
