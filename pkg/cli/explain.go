package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/faultline/pkg/diagnostic"
	"github.com/secmon-lab/faultline/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdExplain() *cli.Command {
	return &cli.Command{
		Name:      "explain",
		Aliases:   []string{"e"},
		Usage:     "Show the diagnostic for a framework failure kind",
		ArgsUsage: "<kind>",
		Action: func(ctx context.Context, c *cli.Command) error {
			kind := types.Kind(c.Args().First())
			if !kind.IsValid() {
				return goerr.New("unknown failure kind",
					goerr.V("kind", kind),
					goerr.V("valid_kinds", types.AllKinds()))
			}

			r, ok := diagnostic.ForKind(kind)
			if !ok {
				return goerr.New("no diagnostic available for this kind",
					goerr.V("kind", kind),
					goerr.V("base", kind.Base()))
			}

			color.New(color.Bold).Fprintf(os.Stdout, "%s\n", r.Title)
			fmt.Fprintln(os.Stdout, r.Render())
			return nil
		},
	}
}
