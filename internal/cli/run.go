package cli

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formsheet/pkg/form"
	"github.com/goliatone/go-formsheet/pkg/renderers/tui"
)

func cmdRun(a *app) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Fill the sheet interactively in the terminal",
		Action: func(ctx context.Context, c *cli.Command) error {
			controller, err := a.controller(form.WithConsumer(form.LogConsumer{Logger: a.logger}))
			if err != nil {
				return err
			}

			session, err := tui.New(controller,
				tui.WithLogger(a.logger),
				tui.WithOutputFormat(a.outputFormat()),
				tui.WithTheme(tui.Theme{
					InfoPrefix:  color.GreenString("✔ "),
					ErrorPrefix: color.RedString("✘ "),
				}),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to start session")
			}

			color.New(color.Bold).Fprintln(a.stdout, controller.Sheet().Title)
			if err := session.Run(ctx); err != nil {
				if errors.Is(err, tui.ErrAborted) {
					a.logger.Info("session aborted by user")
					return nil
				}
				return goerr.Wrap(err, "session failed")
			}
			return nil
		},
	}
}
