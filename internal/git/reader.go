package git

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
)

// GoGitVCS answers repository and status queries with go-git.
// Diff text is produced by the git CLI, which go-git cannot render for a
// working tree.
//
// The worktree status read by ListChanged is kept per repository path and
// reused by StatusOf until the next ListChanged. A GoGitVCS is not safe for
// concurrent use.
type GoGitVCS struct {
	diff   *CLIVCS
	status map[string]git.Status
}

// NewGoGitVCS creates a go-git backed VCS that delegates diffs to runner.
func NewGoGitVCS(runner Runner) *GoGitVCS {
	return &GoGitVCS{
		diff:   NewCLIVCS(runner),
		status: make(map[string]git.Status),
	}
}

// IsRepository reports whether path or one of its parents holds a .git directory.
func (v *GoGitVCS) IsRepository(_ context.Context, path string) bool {
	repo, err := openRepository(path)
	if err != nil {
		return false
	}
	_, err = repo.Worktree()
	return err == nil
}

// ListChanged returns tracked files that differ from HEAD, sorted by path.
func (v *GoGitVCS) ListChanged(_ context.Context, path string) ([]string, error) {
	status, err := worktreeStatus(path)
	if err != nil {
		delete(v.status, path)
		return nil, err
	}
	v.status[path] = status

	files := make([]string, 0, len(status))
	for file, st := range status {
		if statusCode(st) == "" {
			continue
		}
		files = append(files, file)
	}
	sort.Strings(files)
	return files, nil
}

// StatusOf returns the porcelain-style status letter of file.
func (v *GoGitVCS) StatusOf(_ context.Context, path, file string) (ChangeStatus, error) {
	status, ok := v.status[path]
	if !ok {
		var err error
		if status, err = worktreeStatus(path); err != nil {
			return "", err
		}
	}
	st, found := status[file]
	if !found {
		return "", nil
	}
	return ChangeStatus(statusCode(st)), nil
}

// DiffOf returns the unified diff of file against HEAD.
func (v *GoGitVCS) DiffOf(ctx context.Context, path, file string) (string, error) {
	return v.diff.DiffOf(ctx, path, file)
}

func openRepository(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}

func worktreeStatus(path string) (git.Status, error) {
	repo, err := openRepository(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree %s: %w", path, err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status %s: %w", path, err)
	}
	return status, nil
}

// statusCode collapses staged and unstaged states into the letter
// `git diff --name-status HEAD` would print. Untracked files yield "".
func statusCode(st *git.FileStatus) string {
	if st == nil {
		return ""
	}
	if st.Staging == git.Untracked {
		return ""
	}
	if st.Worktree == git.Deleted {
		if st.Staging == git.Added {
			return ""
		}
		return "D"
	}
	switch st.Staging {
	case git.Added:
		return "A"
	case git.Deleted:
		return "D"
	case git.Renamed:
		return "R"
	case git.Copied:
		return "C"
	case git.Modified:
		return "M"
	case git.UpdatedButUnmerged:
		return "U"
	}
	switch st.Worktree {
	case git.Modified:
		return "M"
	case git.UpdatedButUnmerged:
		return "U"
	}
	return ""
}
