package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// requireGit skips integration tests in short mode or without a git binary.
func requireGit(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v: %s", args, err, string(out))
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// newChangedRepo creates a repository with one commit followed by a modified,
// a deleted, a staged new and an untracked file.
func newChangedRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	writeFile(t, dir, "base.go", "package main\n")
	writeFile(t, dir, "keep.md", "# keep\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "initial commit")

	writeFile(t, dir, "base.go", "package main\n// modified\n")
	if err := os.Remove(filepath.Join(dir, "keep.md")); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "new.go", "package added\n")
	runGit(t, dir, "add", "new.go")
	writeFile(t, dir, "untracked.txt", "scratch\n")

	return dir
}
