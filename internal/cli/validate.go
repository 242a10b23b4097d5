package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formsheet"
	"github.com/goliatone/go-formsheet/pkg/payload"
	"github.com/goliatone/go-formsheet/pkg/sheet"
)

func cmdValidate(a *app) *cli.Command {
	var payloadPath string

	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate sheet declarations and optionally a saved payload",
		ArgsUsage: "[declaration files or directories]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "payload",
				Usage:       "JSON payload file checked against the payload schema",
				Destination: &payloadPath,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ok := color.New(color.FgGreen)

			paths := c.Args().Slice()
			if len(paths) == 0 {
				doc, err := formsheet.LoadSheet(formsheet.Request{Path: a.cfg.Sheet.Path, ID: a.cfg.Sheet.ID})
				if err != nil {
					return goerr.Wrap(err, "sheet validation failed")
				}
				ok.Fprintf(a.stdout, "ok %s (%d widgets, %d inputs)\n", doc.ID, len(doc.Widgets), len(doc.Inputs))
			}
			for _, path := range paths {
				docs, err := loadDeclarations(path)
				if err != nil {
					return goerr.Wrap(err, "sheet validation failed", goerr.V("path", path))
				}
				for _, doc := range docs {
					ok.Fprintf(a.stdout, "ok %s (%d widgets, %d inputs)\n", doc.ID, len(doc.Widgets), len(doc.Inputs))
				}
			}

			if payloadPath == "" {
				return nil
			}
			data, err := os.ReadFile(payloadPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read payload", goerr.V("path", payloadPath))
			}
			var values map[string]any
			if err := json.Unmarshal(data, &values); err != nil {
				return goerr.Wrap(err, "payload is not a JSON object", goerr.V("path", payloadPath))
			}
			if err := payload.ValidateShape(values); err != nil {
				return goerr.Wrap(err, "payload does not match schema", goerr.V("path", payloadPath))
			}
			ok.Fprintf(a.stdout, "ok payload %s\n", payloadPath)
			return nil
		},
	}
}

func loadDeclarations(path string) ([]sheet.Sheet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		doc, err := sheet.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return []sheet.Sheet{doc}, nil
	}

	store, err := sheet.LoadFS(os.DirFS(path))
	if err != nil {
		return nil, err
	}
	docs := make([]sheet.Sheet, 0, len(store.IDs()))
	for _, id := range store.IDs() {
		doc, err := store.Sheet(id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
