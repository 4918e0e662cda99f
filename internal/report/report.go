package report

import (
	"context"
	"fmt"
	"time"

	"github.com/masmgr/changereport-go/internal/git"
)

const (
	DefaultMaxFiles     = 3
	DefaultPreviewLines = 5
	DefaultLineWidth    = 60
)

// Outcome classifies how a report run ended.
type Outcome string

const (
	OutcomeNotRepository Outcome = "not-repository"
	OutcomeNoChanges     Outcome = "no-changes"
	OutcomeChanges       Outcome = "changes"
)

// Options controls which repository is reported on and how much is shown.
type Options struct {
	RepoPath     string
	MaxFiles     int
	PreviewLines int
	LineWidth    int
}

// DefaultOptions returns options for repoPath with the default limits.
func DefaultOptions(repoPath string) Options {
	return Options{
		RepoPath:     repoPath,
		MaxFiles:     DefaultMaxFiles,
		PreviewLines: DefaultPreviewLines,
		LineWidth:    DefaultLineWidth,
	}
}

// Validate checks that the options describe a runnable report.
func (o Options) Validate() error {
	if o.RepoPath == "" {
		return fmt.Errorf("repository path is required")
	}
	if o.MaxFiles <= 0 {
		return fmt.Errorf("max files must be positive, got %d", o.MaxFiles)
	}
	if o.PreviewLines < 0 {
		return fmt.Errorf("preview lines must not be negative, got %d", o.PreviewLines)
	}
	if o.LineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %d", o.LineWidth)
	}
	return nil
}

// FileEntry is the reported view of one changed file.
type FileEntry struct {
	Path      string
	Status    git.ChangeStatus
	DiffLines int
	Preview   []string
}

// Report is the result of a single run.
type Report struct {
	RepoPath    string
	Outcome     Outcome
	TotalFiles  int
	Files       []FileEntry
	GeneratedAt time.Time
}

// Remaining returns how many changed files were not shown.
func (r *Report) Remaining() int {
	if n := r.TotalFiles - len(r.Files); n > 0 {
		return n
	}
	return 0
}

// Build runs the report against vcs.
//
// A path that is not a repository and a repository without changes are normal
// outcomes, not errors; in both cases no per-file queries are made. Errors
// from the version-control tool are wrapped with the operation and file they
// concern.
func Build(ctx context.Context, vcs git.VCS, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		RepoPath:    opts.RepoPath,
		GeneratedAt: time.Now(),
	}

	if !vcs.IsRepository(ctx, opts.RepoPath) {
		report.Outcome = OutcomeNotRepository
		return report, nil
	}

	files, err := vcs.ListChanged(ctx, opts.RepoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list changed files: %w", err)
	}
	report.TotalFiles = len(files)
	if len(files) == 0 {
		report.Outcome = OutcomeNoChanges
		return report, nil
	}

	report.Outcome = OutcomeChanges
	shown := files
	if len(shown) > opts.MaxFiles {
		shown = shown[:opts.MaxFiles]
	}

	report.Files = make([]FileEntry, 0, len(shown))
	for _, file := range shown {
		status, err := vcs.StatusOf(ctx, opts.RepoPath, file)
		if err != nil {
			return nil, fmt.Errorf("failed to get status of %s: %w", file, err)
		}
		diff, err := vcs.DiffOf(ctx, opts.RepoPath, file)
		if err != nil {
			return nil, fmt.Errorf("failed to get diff of %s: %w", file, err)
		}

		report.Files = append(report.Files, FileEntry{
			Path:      file,
			Status:    status,
			DiffLines: CountLines(diff),
			Preview:   PreviewLines(diff, opts.PreviewLines, opts.LineWidth),
		})
	}

	return report, nil
}
