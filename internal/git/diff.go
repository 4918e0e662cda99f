package git

import (
	"bytes"
	"fmt"
	"strings"
)

// emptyTreeHash is the well-known hash of git's empty tree, used as the diff base
// in repositories that have no commits yet.
const emptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// DiffFileEntry represents a file reported by `git diff --name-status`.
type DiffFileEntry struct {
	Path    string
	Status  ChangeStatus
	OldPath string // non-empty for renames
}

// parseDiffNameStatus parses NUL-delimited `git diff --name-status -z` output.
// Format: STATUS\0PATH\0 (or STATUS\0OLDPATH\0NEWPATH\0 for renames/copies)
func parseDiffNameStatus(data []byte) ([]DiffFileEntry, error) {
	parts := bytes.Split(data, []byte{0x00})

	entries := make([]DiffFileEntry, 0, len(parts)/2)
	i := 0

	for i < len(parts) {
		status := strings.TrimSpace(string(parts[i]))
		if status == "" {
			i++
			continue
		}

		if i+1 >= len(parts) {
			break
		}

		_, isRename := diffStatusToChangeKind(status)

		if isRename {
			// Rename/Copy: STATUS\0OLDPATH\0NEWPATH
			if i+2 >= len(parts) {
				return nil, fmt.Errorf("unexpected diff output: rename entry missing new path")
			}
			entries = append(entries, DiffFileEntry{
				Path:    string(parts[i+2]),
				Status:  ChangeStatus(status),
				OldPath: string(parts[i+1]),
			})
			i += 3
		} else {
			entries = append(entries, DiffFileEntry{
				Path:   string(parts[i+1]),
				Status: ChangeStatus(status),
			})
			i += 2
		}
	}

	return entries, nil
}

// parseNameOnly parses NUL-delimited `git diff --name-only -z` output,
// keeping git's order.
func parseNameOnly(data []byte) []string {
	parts := bytes.Split(data, []byte{0x00})
	files := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		files = append(files, string(p))
	}
	return files
}

// diffStatusToChangeKind converts a git diff status letter to ChangeKind.
// Returns the kind and whether it's a rename/copy (which has two paths).
func diffStatusToChangeKind(status string) (ChangeKind, bool) {
	if len(status) == 0 {
		return ChangeKindUnknown, false
	}
	switch status[0] {
	case 'A':
		return ChangeKindAdded, false
	case 'M', 'T':
		return ChangeKindModified, false
	case 'D':
		return ChangeKindDeleted, false
	case 'R':
		return ChangeKindRenamed, true
	case 'C':
		// Copy is treated like Added for our purposes, but has two paths
		return ChangeKindAdded, true
	default:
		return ChangeKindUnknown, false
	}
}
