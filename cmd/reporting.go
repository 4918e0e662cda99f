package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/changereport-go/internal/output"
	"github.com/masmgr/changereport-go/internal/report"
)

func writeReport(c *cli.Context, ctx *CommandContext, r *report.Report) error {
	opts := ctx.OutputOptions(c)
	writer := output.NewReportWriter(opts.Format)
	return writer.Write(r, opts)
}
