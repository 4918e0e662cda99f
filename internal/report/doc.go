// Package report builds the change report: it asks a git.VCS whether a path is
// a repository, which files changed, and what their status and diff are, and
// keeps a bounded preview of the first few files.
package report
