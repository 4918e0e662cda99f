package cmd

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/masmgr/changereport-go/internal/report"
)

// ReportCmd creates the report command.
func ReportCmd() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Preview the status and diff of changed files",
		ArgsUsage: "[repository path]",
		Flags:     reportFlags(),
		Action:    reportAction,
	}
}

func reportAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Logger.Sync() }()

	r, err := report.Build(c.Context, ctx.VCS, ctx.ReportOptions())
	if err != nil {
		return err
	}

	ctx.Logger.Debug("report built",
		zap.String("outcome", string(r.Outcome)),
		zap.Int("total", r.TotalFiles),
		zap.Int("shown", len(r.Files)),
	)

	return writeReport(c, ctx, r)
}
