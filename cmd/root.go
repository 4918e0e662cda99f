package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/changereport-go/config"
	"github.com/masmgr/changereport-go/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "changereport",
		Usage:     "Preview uncommitted changes in a Git working tree",
		Version:   "1.0.0",
		ArgsUsage: "[repository path]",
		Commands: []*cli.Command{
			ReportCmd(),
			CheckCmd(),
			ConfigCmd(),
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log every git invocation to stderr",
			},
		}, reportFlags()...),
		Action: defaultAction,
	}
}

// reportFlags are the flags accepted by the report command and the root action.
func reportFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.IntFlag{
			Name:    "max-files",
			Aliases: []string{"n"},
			Usage:   "Number of changed files to preview (default: from config or 3)",
		},
		&cli.IntFlag{
			Name:  "preview-lines",
			Usage: "Diff lines shown per file (default: from config or 5)",
		},
		&cli.IntFlag{
			Name:  "line-width",
			Usage: "Characters kept per preview line (default: from config or 60)",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "Git backend (cli, gogit)",
		},
		&cli.StringFlag{
			Name:  "git-bin",
			Usage: "Path to the git binary",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.BoolFlag{
			Name:  "quiet-banner",
			Usage: "Omit the title banner and closing notes",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyFlagOverrides(c, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyFlagOverrides copies explicitly set flags over the loaded configuration.
func applyFlagOverrides(c *cli.Context, cfg *config.Config) {
	if c.IsSet("max-files") {
		cfg.Report.MaxFiles = c.Int("max-files")
	}
	if c.IsSet("preview-lines") {
		cfg.Report.PreviewLines = c.Int("preview-lines")
	}
	if c.IsSet("line-width") {
		cfg.Report.LineWidth = c.Int("line-width")
	}
	if c.Bool("quiet-banner") {
		cfg.Report.Banner = false
	}
	if backend := c.String("backend"); backend != "" {
		cfg.Git.Backend = backend
	}
	if bin := c.String("git-bin"); bin != "" {
		cfg.Git.Binary = bin
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
}

// resolveRepoPath prefers the first positional argument over --repo.
func resolveRepoPath(c *cli.Context) string {
	if c.NArg() > 0 {
		return c.Args().Get(0)
	}
	if repo := c.String("repo"); repo != "" {
		return repo
	}
	return "."
}

// defaultAction runs the report when no subcommand is given.
func defaultAction(c *cli.Context) error {
	return reportAction(c)
}

// Run executes the CLI application.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := App().RunContext(ctx, os.Args); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
