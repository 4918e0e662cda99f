package output

import (
	"strings"
	"testing"

	"github.com/masmgr/changereport-go/internal/report"
)

func TestConsoleWriter_Changes(t *testing.T) {
	out := writeToTemp(t, &ConsoleWriter{}, exampleReport(), true)

	for _, want := range []string{
		"Step 1.2b: Change Analyzer - Part 1\n" + strings.Repeat("=", 50) + "\n",
		"📝 Analyzing 4 changed file(s):\n\n",
		"File: a.txt\n  Status: M\n  Diff lines: 6 lines\n  Preview:\n    diff --git a/a.txt b/a.txt\n    -old\n    +new\n\n",
		"File: b.py\n  Status: A\n  Diff lines: 0 lines\n\n",
		"File: c.md\n",
		"... and 1 more files\n",
		"✅ Change analysis working!\n",
		"What we learned:\n  - git diff for actual change content\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}

	if strings.Contains(out, "\x1b[") {
		t.Error("file output should not contain ANSI escapes")
	}
	if strings.Count(out, "File: ") != 3 {
		t.Errorf("expected 3 file blocks, got %d", strings.Count(out, "File: "))
	}
}

func TestConsoleWriter_NoRemainderLine(t *testing.T) {
	r := exampleReport()
	r.TotalFiles = 3

	out := writeToTemp(t, &ConsoleWriter{}, r, false)
	if strings.Contains(out, "more files") {
		t.Errorf("unexpected remainder line:\n%s", out)
	}
	if strings.Contains(out, "Step 1.2b") || strings.Contains(out, "What we learned") {
		t.Errorf("banner printed with banner disabled:\n%s", out)
	}
	if !strings.Contains(out, "✅ Change analysis working!") {
		t.Errorf("closing summary missing:\n%s", out)
	}
}

func TestConsoleWriter_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		outcome report.Outcome
		want    string
	}{
		{name: "Not repository", outcome: report.OutcomeNotRepository, want: "❌ Not a git repository\n"},
		{name: "No changes", outcome: report.OutcomeNoChanges, want: "📝 No changed files to analyze\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &report.Report{RepoPath: "/x", Outcome: tt.outcome}
			out := writeToTemp(t, &ConsoleWriter{}, r, true)
			if !strings.HasSuffix(out, tt.want) {
				t.Errorf("output should end with %q, got:\n%s", tt.want, out)
			}
			if strings.Contains(out, "File:") || strings.Contains(out, "✅") {
				t.Errorf("unexpected report body:\n%s", out)
			}
		})
	}
}
