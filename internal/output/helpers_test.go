package output

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masmgr/changereport-go/internal/git"
	"github.com/masmgr/changereport-go/internal/report"
)

// exampleReport mirrors a repository with four changed files of which three are shown.
func exampleReport() *report.Report {
	return &report.Report{
		RepoPath:    "/test/repo",
		Outcome:     report.OutcomeChanges,
		TotalFiles:  4,
		GeneratedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		Files: []report.FileEntry{
			{Path: "a.txt", Status: git.ChangeStatus("M"), DiffLines: 6, Preview: []string{"diff --git a/a.txt b/a.txt", "-old", "+new"}},
			{Path: "b.py", Status: git.ChangeStatus("A"), DiffLines: 0},
			{Path: "c.md", Status: git.ChangeStatus("M"), DiffLines: 2, Preview: []string{"-x", "+y"}},
		},
	}
}

// writeToTemp runs w against r and returns what it wrote.
func writeToTemp(t *testing.T, w ReportWriter, r *report.Report, banner bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	if err := w.Write(r, OutputOptions{OutputPath: path, Banner: banner}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}

func gitStatus(s string) git.ChangeStatus {
	return git.ChangeStatus(s)
}
