package output

import (
	"fmt"
	"strings"

	"github.com/masmgr/changereport-go/internal/report"
)

// MarkdownWriter writes change reports as Markdown.
type MarkdownWriter struct{}

// Write outputs the change report as Markdown.
func (w *MarkdownWriter) Write(r *report.Report, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Change Report")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", escapeMarkdown(r.RepoPath))

	switch r.Outcome {
	case report.OutcomeNotRepository:
		fmt.Fprintln(out, "❌ Not a git repository")
		return nil
	case report.OutcomeNoChanges:
		fmt.Fprintln(out, "📝 No changed files to analyze")
		return nil
	}

	fmt.Fprintf(out, "**Changed files:** %d\n\n", r.TotalFiles)

	for _, f := range r.Files {
		fmt.Fprintf(out, "## `%s`\n\n", f.Path)
		fmt.Fprintf(out, "- **Status:** %s\n", statusLabel(f.Status))
		fmt.Fprintf(out, "- **Diff lines:** %d\n\n", f.DiffLines)
		if len(f.Preview) > 0 {
			fmt.Fprintln(out, "```diff")
			fmt.Fprintln(out, strings.Join(f.Preview, "\n"))
			fmt.Fprintln(out, "```")
			fmt.Fprintln(out)
		}
	}

	if n := r.Remaining(); n > 0 {
		fmt.Fprintf(out, "_... and %d more files_\n", n)
	}

	return nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
