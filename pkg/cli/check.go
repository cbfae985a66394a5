package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/faultline/pkg/cli/config"
	"github.com/secmon-lab/faultline/pkg/domain/model"
	"github.com/secmon-lab/faultline/pkg/service/inspect"
	"github.com/secmon-lab/faultline/pkg/utils/logging"
	"github.com/secmon-lab/faultline/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var schemaPath string
	var inputPath string
	var outputPath string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "schema",
			Aliases:     []string{"s"},
			Usage:       "Attribute schema file (TOML)",
			Required:    true,
			Sources:     cli.EnvVars("FAULTLINE_SCHEMA"),
			Destination: &schemaPath,
		},
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Document file to check (TOML)",
			Required:    true,
			Sources:     cli.EnvVars("FAULTLINE_INPUT"),
			Destination: &inputPath,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Write the failure report to a file instead of stdout",
			Destination: &outputPath,
		},
	}

	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Check a document against an attribute schema",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)

			schema, err := config.LoadSchema(schemaPath)
			if err != nil {
				return goerr.Wrap(err, "schema loading failed")
			}
			logger.Info("Schema loaded",
				"path", schemaPath,
				"attribute_count", len(schema.Attributes),
				"section_count", len(schema.Sections),
			)

			doc, err := config.LoadDocument(inputPath)
			if err != nil {
				return goerr.Wrap(err, "document loading failed")
			}

			col, err := inspect.New(schema).Inspect(doc)
			if err != nil {
				return goerr.Wrap(err, "inspection failed")
			}

			if col.IsEmpty() {
				logger.Info("Document passed", "path", inputPath)
				return nil
			}

			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return goerr.Wrap(err, "failed to create report file",
						goerr.V("path", outputPath))
				}
				defer safe.Close(ctx, f)
				safe.Write(ctx, f, []byte(plainReport(col)))
			} else {
				printReport(col)
			}

			return fmt.Errorf("found %d validation failure(s)", col.Size())
		},
	}
}

// printReport writes the failure report to stdout, grouped by attribute
func printReport(col *model.ErrorCollection) {
	header := color.New(color.Bold)
	failure := color.New(color.FgRed)

	for _, attr := range col.Attributes() {
		header.Printf("%s:\n", attr)
		for _, e := range col.Entries(attr) {
			failure.Printf("  - %s\n", col.FullMessage(attr, e.Message))
		}
	}
}

// plainReport renders the report without color for file output
func plainReport(col *model.ErrorCollection) string {
	var b strings.Builder
	for _, attr := range col.Attributes() {
		fmt.Fprintf(&b, "%s:\n", attr)
		for _, e := range col.Entries(attr) {
			fmt.Fprintf(&b, "  - %s\n", col.FullMessage(attr, e.Message))
		}
	}
	return b.String()
}
