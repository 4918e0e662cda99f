package git

import "strings"

// ChangeStatus is the raw status code git reports for a changed file
// (e.g. "M", "A", "D", "R100").
type ChangeStatus string

// Kind maps the status code to a ChangeKind.
func (s ChangeStatus) Kind() ChangeKind {
	kind, _ := diffStatusToChangeKind(string(s))
	return kind
}

// Code returns the single-letter status, dropping any similarity score.
func (s ChangeStatus) Code() string {
	trimmed := strings.TrimSpace(string(s))
	if trimmed == "" {
		return ""
	}
	return trimmed[:1]
}

// ChangeKind represents the type of change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindModified
	ChangeKindDeleted
	ChangeKindRenamed
	ChangeKindUnknown
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "added"
	case ChangeKindModified:
		return "modified"
	case ChangeKindDeleted:
		return "deleted"
	case ChangeKindRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Backend selects the VCS implementation.
type Backend string

const (
	BackendCLI   Backend = "cli"
	BackendGoGit Backend = "gogit"
)

// Options configures a VCS implementation.
type Options struct {
	Backend Backend
	Include []string // Glob patterns to include
	Exclude []string // Glob patterns to exclude
}
