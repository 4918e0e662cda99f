package git

import (
	"context"
	"fmt"
	"strings"
)

// CLIVCS answers change queries by invoking the git binary.
type CLIVCS struct {
	runner Runner
}

// NewCLIVCS creates a git CLI backed VCS.
func NewCLIVCS(runner Runner) *CLIVCS {
	return &CLIVCS{runner: runner}
}

// IsRepository reports whether path is inside a git working tree.
func (v *CLIVCS) IsRepository(ctx context.Context, path string) bool {
	out, err := v.runner.Run(ctx, "-C", path, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "true"
}

// ListChanged lists files that differ from HEAD, staged or not.
func (v *CLIVCS) ListChanged(ctx context.Context, path string) ([]string, error) {
	base := v.diffBase(ctx, path)
	out, err := v.runner.Run(ctx, "-C", path, "diff", "--name-only", "-z", base)
	if err != nil {
		return nil, fmt.Errorf("list changed files: %w", err)
	}
	return parseNameOnly(out), nil
}

// StatusOf returns the name-status code git reports for file.
// A file without differences yields an empty status.
func (v *CLIVCS) StatusOf(ctx context.Context, path, file string) (ChangeStatus, error) {
	base := v.diffBase(ctx, path)
	out, err := v.runner.Run(ctx, "-C", path, "diff", "--name-status", "-z", base, "--", topPathspec(file))
	if err != nil {
		return "", fmt.Errorf("status of %s: %w", file, err)
	}
	entries, err := parseDiffNameStatus(out)
	if err != nil {
		return "", fmt.Errorf("status of %s: %w", file, err)
	}
	if len(entries) == 0 {
		return "", nil
	}
	return entries[0].Status, nil
}

// DiffOf returns the unified diff of file against HEAD.
func (v *CLIVCS) DiffOf(ctx context.Context, path, file string) (string, error) {
	base := v.diffBase(ctx, path)
	out, err := v.runner.Run(ctx, "-C", path, "diff", "--no-color", "--no-ext-diff", base, "--", topPathspec(file))
	if err != nil {
		return "", fmt.Errorf("diff of %s: %w", file, err)
	}
	return string(out), nil
}

// diffBase returns HEAD, or the empty tree when the repository has no commits.
func (v *CLIVCS) diffBase(ctx context.Context, path string) string {
	if _, err := v.runner.Run(ctx, "-C", path, "rev-parse", "--verify", "--quiet", "HEAD"); err != nil {
		return emptyTreeHash
	}
	return "HEAD"
}

// topPathspec anchors file at the repository root so that paths reported by
// git resolve correctly when path is a subdirectory of the working tree.
func topPathspec(file string) string {
	return ":(top)" + file
}
