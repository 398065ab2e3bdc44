package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates the config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "threadview config validate [options]",
				Description: "Validates the configuration file, checking thread bounds, edit limits, and keybinding actions.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})
	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.Validate()

	var fieldErrs criterio.FieldErrors
	if err != nil && !errors.As(err, &fieldErrs) {
		return err
	}

	if cmd.format == "json" {
		out := struct {
			Valid  bool              `json:"valid"`
			Errors map[string]string `json:"errors,omitempty"`
		}{Valid: err == nil}
		if err != nil {
			out.Errors = make(map[string]string, len(fieldErrs))
			for _, fe := range fieldErrs {
				out.Errors[fe.Field] = fe.Err.Error()
			}
		}
		enc := json.NewEncoder(c.Root().Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if err == nil {
		fmt.Fprintln(c.Root().Writer, "configuration is valid")
		return nil
	}

	for _, fe := range fieldErrs {
		fmt.Fprintf(c.Root().Writer, "%s: %v\n", fe.Field, fe.Err)
	}
	return cli.Exit(fmt.Sprintf("%d error(s) found", len(fieldErrs)), 1)
}
