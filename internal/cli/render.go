package cli

import (
	"context"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/goliatone/go-formsheet/pkg/form"
	"github.com/goliatone/go-formsheet/pkg/renderers/html"
	"github.com/goliatone/go-formsheet/pkg/widgets"
)

func cmdRender(a *app) *cli.Command {
	var (
		inputs    []string
		checks    []string
		open      string
		validate  bool
		save      bool
		output    string
		templates string
		template  string
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render the sheet as HTML after applying edits",

		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "set",
				Usage:       "Type into a text input (name=value, repeatable)",
				Destination: &inputs,
			},
			&cli.StringSliceFlag{
				Name:        "check",
				Usage:       "Check a dropdown option (dropdown=value, repeatable)",
				Destination: &checks,
			},
			&cli.StringFlag{
				Name:        "open",
				Usage:       "Leave the named dropdown open",
				Destination: &open,
			},
			&cli.BoolFlag{
				Name:        "validate",
				Usage:       "Run validation before rendering",
				Destination: &validate,
			},
			&cli.BoolFlag{
				Name:        "save",
				Usage:       "Run the save action before rendering",
				Destination: &save,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file (stdout if empty)",
				Destination: &output,
			},
			&cli.StringFlag{
				Name:        "templates",
				Usage:       "Template directory overriding the embedded templates",
				Destination: &templates,
			},
			&cli.StringFlag{
				Name:        "template",
				Usage:       "Template name to render",
				Destination: &template,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			controller, err := a.controller(
				form.WithConsumer(form.LogConsumer{Logger: a.logger}),
				form.WithStatusDisplay(statusPrinter(a.stderr)),
			)
			if err != nil {
				return err
			}

			for _, raw := range inputs {
				name, value, err := splitAssignment(raw)
				if err != nil {
					return err
				}
				if !controller.SetInput(name, value) {
					return goerr.New("unknown input", goerr.V("name", name))
				}
			}
			for _, raw := range checks {
				name, value, err := splitAssignment(raw)
				if err != nil {
					return err
				}
				if !controller.Check(name, value, true) {
					return goerr.New("unknown dropdown option", goerr.V("dropdown", name), goerr.V("value", value))
				}
			}

			switch {
			case save:
				if _, _, err := controller.Save(ctx); err != nil {
					return goerr.Wrap(err, "save failed")
				}
			case validate:
				controller.Validate()
			}
			if open != "" {
				controller.Click(widgets.ToggleClick(open))
			}

			var options []html.Option
			if templates != "" {
				options = append(options, html.WithFS(os.DirFS(templates)))
			}
			if template != "" {
				options = append(options, html.WithTemplate(template))
			}
			renderer, err := html.New(options...)
			if err != nil {
				return goerr.Wrap(err, "failed to create renderer")
			}
			out, err := renderer.Render(controller.Snapshot())
			if err != nil {
				return goerr.Wrap(err, "failed to render sheet")
			}

			if output == "" {
				_, err := a.stdout.Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write output", goerr.V("path", output))
			}
			a.logger.Info("sheet rendered", zap.String("path", output))
			return nil
		},
	}
}

func splitAssignment(raw string) (string, string, error) {
	name, value, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", goerr.New("expected name=value", goerr.V("argument", raw))
	}
	return name, value, nil
}
