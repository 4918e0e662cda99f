package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/masmgr/changereport-go/internal/report"
)

const (
	consoleTitle = "Step 1.2b: Change Analyzer - Part 1"
	ruleWidth    = 50
)

var lessons = []string{
	"git diff for actual change content",
	"git diff --name-status for change type",
	"Parsing git output",
}

// ConsoleWriter writes change reports for a terminal.
type ConsoleWriter struct{}

// Write outputs the change report to the console.
func (w *ConsoleWriter) Write(r *report.Report, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	colorTitle := color.New(color.FgGreen).Add(color.Bold)
	colorError := color.New(color.FgRed)
	colorInfo := color.New(color.FgYellow)
	colorFile := color.New(color.FgCyan)
	colorDone := color.New(color.FgGreen)
	if file != nil {
		for _, c := range []*color.Color{colorTitle, colorError, colorInfo, colorFile, colorDone} {
			c.DisableColor()
		}
	}

	rule := strings.Repeat("=", ruleWidth)

	if options.Banner {
		colorTitle.Fprintln(out, consoleTitle)
		fmt.Fprintln(out, rule)
	}

	switch r.Outcome {
	case report.OutcomeNotRepository:
		colorError.Fprintln(out, "❌ Not a git repository")
		return nil
	case report.OutcomeNoChanges:
		colorInfo.Fprintln(out, "📝 No changed files to analyze")
		return nil
	}

	colorInfo.Fprintf(out, "📝 Analyzing %d changed file(s):\n\n", r.TotalFiles)

	for _, f := range r.Files {
		colorFile.Fprintf(out, "File: %s\n", f.Path)
		fmt.Fprintf(out, "  Status: %s\n", f.Status)
		fmt.Fprintf(out, "  Diff lines: %d lines\n", f.DiffLines)
		if len(f.Preview) > 0 {
			fmt.Fprintln(out, "  Preview:")
			for _, line := range f.Preview {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
		fmt.Fprintln(out)
	}

	if n := r.Remaining(); n > 0 {
		fmt.Fprintf(out, "... and %d more files\n", n)
	}

	fmt.Fprintln(out, rule)
	colorDone.Fprintln(out, "✅ Change analysis working!")

	if options.Banner {
		fmt.Fprintln(out, "\nWhat we learned:")
		for _, l := range lessons {
			fmt.Fprintf(out, "  - %s\n", l)
		}
	}

	return nil
}
