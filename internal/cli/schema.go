package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/goliatone/go-formsheet/pkg/payload"
)

func cmdSchema(a *app) *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the OpenAPI schema of the saved payload",
		Action: func(ctx context.Context, c *cli.Command) error {
			data, err := json.MarshalIndent(payload.Schema(), "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode schema")
			}
			_, err = fmt.Fprintln(a.stdout, string(data))
			return err
		},
	}
}
