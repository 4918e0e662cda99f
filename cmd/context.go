package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/masmgr/changereport-go/config"
	"github.com/masmgr/changereport-go/internal/git"
	"github.com/masmgr/changereport-go/internal/logging"
	"github.com/masmgr/changereport-go/internal/output"
	"github.com/masmgr/changereport-go/internal/report"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Logger   *zap.Logger
	VCS      git.VCS
}

// NewCommandContext creates a context from CLI flags.
// It loads configuration, sets up logging and selects the git backend.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logger := logging.New(c.App.ErrWriter, c.Bool("verbose"))
	repoPath := resolveRepoPath(c)

	runner := git.NewExecRunner(cfg.Git.Binary, logger)
	vcs, err := git.New(git.Options{
		Backend: git.Backend(cfg.Git.Backend),
		Include: cfg.Filters.Include,
		Exclude: cfg.Filters.Exclude,
	}, runner)
	if err != nil {
		return nil, fmt.Errorf("failed to set up git backend: %w", err)
	}

	logger.Debug("command context ready",
		zap.String("repo", repoPath),
		zap.String("backend", cfg.Git.Backend),
		zap.String("git", cfg.Git.Binary),
		zap.Strings("include", cfg.Filters.Include),
		zap.Strings("exclude", cfg.Filters.Exclude),
	)

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Logger:   logger,
		VCS:      vcs,
	}, nil
}

// ReportOptions derives report limits from the loaded configuration.
func (ctx *CommandContext) ReportOptions() report.Options {
	return report.Options{
		RepoPath:     ctx.RepoPath,
		MaxFiles:     ctx.Config.Report.MaxFiles,
		PreviewLines: ctx.Config.Report.PreviewLines,
		LineWidth:    ctx.Config.Report.LineWidth,
	}
}

// OutputOptions creates OutputOptions from CLI flags and configuration.
func (ctx *CommandContext) OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
		Banner:     ctx.Config.Report.Banner,
	}
}
