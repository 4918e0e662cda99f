package git

import (
	"context"
	"fmt"
)

// VCS is the narrow set of version-control queries the change report needs.
// Implementations shell out to git, use go-git, or return canned data in tests.
type VCS interface {
	// IsRepository reports whether path is a working tree. Failures count as false.
	IsRepository(ctx context.Context, path string) bool
	// ListChanged returns files with uncommitted differences, in the tool's order.
	ListChanged(ctx context.Context, path string) ([]string, error)
	// StatusOf returns the change status of a single file.
	StatusOf(ctx context.Context, path, file string) (ChangeStatus, error)
	// DiffOf returns the diff text of a single file. It may be empty.
	DiffOf(ctx context.Context, path, file string) (string, error)
}

// Compile-time interface conformance checks.
var (
	_ VCS = (*CLIVCS)(nil)
	_ VCS = (*GoGitVCS)(nil)
	_ VCS = (*FilteredVCS)(nil)
	_ VCS = (*MockVCS)(nil)
)

// New builds the VCS selected by opts.
func New(opts Options, runner Runner) (VCS, error) {
	var vcs VCS
	switch opts.Backend {
	case BackendCLI, "":
		vcs = NewCLIVCS(runner)
	case BackendGoGit:
		vcs = NewGoGitVCS(runner)
	default:
		return nil, fmt.Errorf("unknown backend %q (expected cli or gogit)", opts.Backend)
	}

	if len(opts.Include) == 0 && len(opts.Exclude) == 0 {
		return vcs, nil
	}
	return NewFilteredVCS(vcs, opts.Include, opts.Exclude)
}
