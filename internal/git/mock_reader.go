package git

import (
	"context"
	"fmt"
	"strings"
)

// MockVCS is a test double for VCS.
// It returns predefined answers without needing a real Git repository and
// records every call so tests can assert which queries were made.
type MockVCS struct {
	Repository bool
	Files      []string
	Statuses   map[string]ChangeStatus
	Diffs      map[string]string
	Error      error

	Calls []string
}

// NewMockVCS creates a MockVCS for a repository with the given files and statuses.
// statuses is matched to files by index.
func NewMockVCS(files []string, statuses []ChangeStatus) *MockVCS {
	m := &MockVCS{
		Repository: true,
		Files:      files,
		Statuses:   make(map[string]ChangeStatus, len(files)),
		Diffs:      make(map[string]string, len(files)),
	}
	for i, f := range files {
		if i < len(statuses) {
			m.Statuses[f] = statuses[i]
		}
	}
	return m
}

// IsRepository returns the predefined repository answer.
func (m *MockVCS) IsRepository(_ context.Context, path string) bool {
	m.record("IsRepository", path)
	return m.Repository
}

// ListChanged returns the predefined files or error.
func (m *MockVCS) ListChanged(_ context.Context, path string) ([]string, error) {
	m.record("ListChanged", path)
	if m.Error != nil {
		return nil, m.Error
	}
	return m.Files, nil
}

// StatusOf returns the predefined status of file.
func (m *MockVCS) StatusOf(_ context.Context, _ string, file string) (ChangeStatus, error) {
	m.record("StatusOf", file)
	if m.Error != nil {
		return "", m.Error
	}
	return m.Statuses[file], nil
}

// DiffOf returns the predefined diff of file.
func (m *MockVCS) DiffOf(_ context.Context, _ string, file string) (string, error) {
	m.record("DiffOf", file)
	if m.Error != nil {
		return "", m.Error
	}
	return m.Diffs[file], nil
}

// CallCount returns how many times method was called.
func (m *MockVCS) CallCount(method string) int {
	n := 0
	for _, c := range m.Calls {
		if strings.HasPrefix(c, method+"(") {
			n++
		}
	}
	return n
}

func (m *MockVCS) record(method, arg string) {
	m.Calls = append(m.Calls, fmt.Sprintf("%s(%s)", method, arg))
}
