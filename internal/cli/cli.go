package cli

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/goliatone/go-formsheet"
	"github.com/goliatone/go-formsheet/internal/config"
	"github.com/goliatone/go-formsheet/internal/logging"
	"github.com/goliatone/go-formsheet/pkg/form"
	"github.com/goliatone/go-formsheet/pkg/payload"
	"github.com/goliatone/go-formsheet/pkg/status"
)

// Run executes the formsheet command line.
func Run(ctx context.Context, args []string, version string) error {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.command(version).Run(ctx, args); err != nil {
		a.logger.Error("failed to run app", zap.Error(err))
		color.New(color.FgRed).Fprintf(a.stderr, "formsheet: %v\n", err)
		return err
	}
	return nil
}

type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath       string
	sheetPath        string
	sheetID          string
	format           string
	logPath          string
	logLevel         string
	equipmentTypeKey string

	cfg    config.Config
	logger *zap.Logger
	closer func()
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		logger: zap.NewNop(),
	}
}

func (a *app) command(version string) *cli.Command {
	return &cli.Command{
		Name:      "formsheet",
		Usage:     "Fill, validate and render equipment data sheets",
		Version:   version,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags:     a.flags(),

		DisableSliceFlagSeparator: true,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := a.configure(c); err != nil {
				return ctx, err
			}
			a.logger.Info("Starting formsheet",
				zap.String("sheet_path", a.cfg.Sheet.Path),
				zap.String("sheet_id", a.cfg.Sheet.ID),
				zap.String("format", a.cfg.Output.Format),
			)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if a.closer != nil {
				a.closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdRun(a),
			cmdRender(a),
			cmdSchema(a),
			cmdValidate(a),
		},
	}
}

func (a *app) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a TOML config file",
			Sources:     cli.EnvVars(config.EnvPrefix + "_CONFIG"),
			Destination: &a.configPath,
		},
		&cli.StringFlag{
			Name:        "sheet",
			Usage:       "Sheet declaration file or directory (embedded sheet when empty)",
			Destination: &a.sheetPath,
		},
		&cli.StringFlag{
			Name:        "sheet-id",
			Usage:       "Sheet id to load when the source holds several sheets",
			Destination: &a.sheetID,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Payload output format: json, form or pretty",
			Destination: &a.format,
		},
		&cli.StringFlag{
			Name:        "log-path",
			Usage:       "Log file path (empty disables logging)",
			Destination: &a.logPath,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level: debug, info, warn or error",
			Destination: &a.logLevel,
		},
		&cli.StringFlag{
			Name:        "equipment-type-key",
			Usage:       "Field read into application.equipmentType",
			Destination: &a.equipmentTypeKey,
		},
	}
}

// configure loads the config file and lets explicit flags win over it.
func (a *app) configure(c *cli.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return goerr.Wrap(err, "failed to load config")
	}

	override := func(flag string, dst *string, value string) {
		if c.IsSet(flag) {
			*dst = value
		}
	}
	override("sheet", &cfg.Sheet.Path, a.sheetPath)
	override("sheet-id", &cfg.Sheet.ID, a.sheetID)
	override("format", &cfg.Output.Format, a.format)
	override("log-path", &cfg.Log.Path, a.logPath)
	override("log-level", &cfg.Log.Level, a.logLevel)
	override("equipment-type-key", &cfg.Payload.EquipmentTypeKey, a.equipmentTypeKey)

	if _, err := payload.ParseFormat(cfg.Output.Format); err != nil {
		return goerr.Wrap(err, "invalid output format", goerr.V("format", cfg.Output.Format))
	}

	logger, closer, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level})
	if err != nil {
		return goerr.Wrap(err, "failed to configure logger", goerr.V("path", cfg.Log.Path))
	}

	a.cfg = cfg
	a.logger = logger
	a.closer = closer
	return nil
}

func (a *app) outputFormat() payload.Format {
	format, err := payload.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return payload.FormatPretty
	}
	return format
}

func (a *app) controller(options ...form.Option) (*form.Controller, error) {
	base := []form.Option{
		form.WithLogger(a.logger),
		form.WithBuilderOptions(payload.WithEquipmentTypeKey(a.cfg.Payload.EquipmentTypeKey)),
	}
	c, err := formsheet.NewController(formsheet.Request{
		Path: a.cfg.Sheet.Path,
		ID:   a.cfg.Sheet.ID,
	}, append(base, options...)...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build form controller",
			goerr.V("sheet_path", a.cfg.Sheet.Path),
			goerr.V("sheet_id", a.cfg.Sheet.ID),
		)
	}
	return c, nil
}

// statusPrinter shows status messages in colour. Clears print nothing.
func statusPrinter(w io.Writer) status.Display {
	info := color.New(color.FgGreen)
	failure := color.New(color.FgRed, color.Bold)
	return status.DisplayFunc(func(msg status.Message) {
		switch msg.Level {
		case status.LevelInfo:
			info.Fprintln(w, msg.Text)
		case status.LevelError:
			failure.Fprintln(w, msg.Text)
		}
	})
}
