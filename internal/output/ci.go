package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/masmgr/changereport-go/internal/report"
)

// CIWriter writes change reports as NDJSON (one JSON object per line) for CI pipelines.
type CIWriter struct{}

// CISummary is the first line of CI output.
type CISummary struct {
	Type       string `json:"type"`
	Repo       string `json:"repo"`
	Outcome    string `json:"outcome"`
	TotalFiles int    `json:"totalFiles"`
	Shown      int    `json:"shown"`
	Remaining  int    `json:"remaining"`
}

// CIFileEntry represents a single file entry in CI output.
type CIFileEntry struct {
	Type      string `json:"type"`
	Path      string `json:"path"`
	Status    string `json:"status"`
	Kind      string `json:"kind"`
	DiffLines int    `json:"diffLines"`
}

// Write outputs the change report as NDJSON.
func (w *CIWriter) Write(r *report.Report, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	summary := CISummary{
		Type:       "summary",
		Repo:       r.RepoPath,
		Outcome:    string(r.Outcome),
		TotalFiles: r.TotalFiles,
		Shown:      len(r.Files),
		Remaining:  r.Remaining(),
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, f := range r.Files {
		entry := CIFileEntry{
			Type:      "file",
			Path:      f.Path,
			Status:    string(f.Status),
			Kind:      f.Status.Kind().String(),
			DiffLines: f.DiffLines,
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
