package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FilteredVCS narrows the changed-file listing of another VCS with
// include/exclude glob patterns.
type FilteredVCS struct {
	VCS
	include []string
	exclude []string
}

// NewFilteredVCS wraps inner with include/exclude patterns.
// Patterns are validated up front.
func NewFilteredVCS(inner VCS, include, exclude []string) (*FilteredVCS, error) {
	for _, p := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid glob pattern %q", p)
		}
	}
	return &FilteredVCS{VCS: inner, include: include, exclude: exclude}, nil
}

// ListChanged returns the inner listing minus filtered paths, preserving order.
func (f *FilteredVCS) ListChanged(ctx context.Context, path string) ([]string, error) {
	files, err := f.VCS.ListChanged(ctx, path)
	if err != nil {
		return nil, err
	}
	kept := make([]string, 0, len(files))
	for _, file := range files {
		if f.matches(file) {
			kept = append(kept, file)
		}
	}
	return kept, nil
}

// matches checks if a path matches the include/exclude filters.
func (f *FilteredVCS) matches(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range f.exclude {
		if doublestar.MatchUnvalidated(pattern, path) {
			return false
		}
	}

	if len(f.include) == 0 {
		return true
	}

	for _, pattern := range f.include {
		if doublestar.MatchUnvalidated(pattern, path) {
			return true
		}
	}
	return false
}
