package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mzaglia/passmint/internal/breach"
	"github.com/mzaglia/passmint/internal/config"
	"github.com/mzaglia/passmint/internal/errors"
	"github.com/mzaglia/passmint/internal/history"
	"github.com/mzaglia/passmint/internal/ops"
	"github.com/mzaglia/passmint/internal/password"
	"github.com/mzaglia/passmint/internal/strength"
)

// newCLIApp creates the CLI application with all commands.
// The store is per-process: export flags on generate and the import/export
// command pair are how records leave the process.
func newCLIApp(store *history.Store, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "passmint",
		Usage:   "Password generation, strength scoring, and history export",
		Version: Version,
		Commands: []*cli.Command{
			generateCmd(store, cfg),
			evaluateCmd(cfg),
			historyCmd(store),
			exportCmd(store),
			importCmd(store),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// generateItem is one generated password, optionally with its evaluation.
type generateItem struct {
	ops.GenerateOutput
	Strength *strength.Result `json:"strength,omitempty"`
}

// generateResult is the generate command's JSON output.
type generateResult struct {
	Generated int               `json:"generated"`
	Passwords []generateItem    `json:"passwords"`
	Export    *ops.ExportOutput `json:"export,omitempty"`
}

// generateCmd creates the generate command.
func generateCmd(store *history.Store, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate one or more random passwords",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "length", Aliases: []string{"l"}, Usage: "Password length (8-128)"},
			&cli.IntFlag{Name: "count", Aliases: []string{"c"}, Value: 1, Usage: "Number of passwords to generate"},
			&cli.BoolFlag{Name: "no-uppercase", Usage: "Exclude uppercase letters"},
			&cli.BoolFlag{Name: "no-numbers", Usage: "Exclude digits"},
			&cli.BoolFlag{Name: "no-special", Usage: "Exclude special characters"},
			&cli.BoolFlag{Name: "strength", Aliases: []string{"s"}, Usage: "Evaluate each generated password"},
			&cli.BoolFlag{Name: "no-breach", Usage: "Skip the online breach lookup when evaluating"},
			&cli.StringFlag{Name: "export", Aliases: []string{"e"}, Usage: "Export the generated records: json|csv"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Export file path (default: passwords_<timestamp>.<ext>)"},
		},
		Action: func(c *cli.Context) error {
			criteria := password.Criteria{
				Length:    c.Int("length"),
				Uppercase: !c.Bool("no-uppercase"),
				Numbers:   !c.Bool("no-numbers"),
				Special:   !c.Bool("no-special"),
			}
			if criteria.Length == 0 {
				criteria.Length = cfg.DefaultLength
			}

			batch, err := ops.GenerateMany(store, ops.GenerateManyInput{
				Count:    c.Int("count"),
				Criteria: criteria,
			})
			if err != nil {
				return outputError(err)
			}

			var checker breach.Checker
			if c.Bool("strength") && !c.Bool("no-breach") {
				checker = cfg.Checker()
			}

			result := generateResult{Generated: batch.Generated}
			for _, pw := range batch.Passwords {
				item := generateItem{GenerateOutput: pw}
				if c.Bool("strength") {
					eval, err := ops.Evaluate(ops.EvaluateInput{Password: pw.Password}, checker)
					if err != nil {
						return outputError(err)
					}
					item.Strength = eval
				}
				result.Passwords = append(result.Passwords, item)
			}

			if format := c.String("export"); format != "" {
				exported, err := ops.Export(store, ops.ExportInput{Format: format, Path: c.String("out")})
				if err != nil {
					return outputError(err)
				}
				result.Export = exported
			}

			return outputJSON(result)
		},
	}
}

// evaluateCmd creates the evaluate command.
func evaluateCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "evaluate",
		Usage:     "Score a password's strength (argument or stdin)",
		ArgsUsage: "[password]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-breach", Usage: "Skip the online breach lookup"},
		},
		Action: func(c *cli.Context) error {
			pw := c.Args().First()
			if pw == "" && stdinHasData() {
				var err error
				pw, err = readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
			}
			if pw == "" {
				return outputError(errors.NewInvalidRequest("password must be given as an argument or piped via stdin"))
			}

			var checker breach.Checker
			if !c.Bool("no-breach") {
				checker = cfg.Checker()
			}

			result, err := ops.Evaluate(ops.EvaluateInput{Password: pw}, checker)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(result)
		},
	}
}

// historyCmd creates the history command.
func historyCmd(store *history.Store) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List the passwords generated in this session",
		Action: func(c *cli.Context) error {
			result, err := ops.List(store)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(result)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(store *history.Store) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the session history to a JSON or CSV file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "json", Usage: "Export format: json|csv"},
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: passwords_<timestamp>.<ext>)"},
		},
		Action: func(c *cli.Context) error {
			result, err := ops.Export(store, ops.ExportInput{
				Format: c.String("format"),
				Path:   c.String("path"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(result)
		},
	}
}

// importCmd creates the import command.
func importCmd(store *history.Store) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import records from a JSON or CSV export file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Required: true, Usage: "Import file path"},
		},
		Action: func(c *cli.Context) error {
			result, err := ops.Import(store, ops.ImportInput{Path: c.String("path")})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(result)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if perr, ok := err.(*errors.Error); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", perr.Code, perr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
