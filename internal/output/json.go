package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/masmgr/changereport-go/internal/report"
)

// JSONWriter writes change reports as JSON.
type JSONWriter struct{}

// JSONReport is the JSON output structure for a change report.
type JSONReport struct {
	RepoPath    string          `json:"repo"`
	Outcome     string          `json:"outcome"`
	GeneratedAt string          `json:"generatedAt"`
	TotalFiles  int             `json:"totalFiles"`
	Remaining   int             `json:"remaining"`
	Files       []JSONFileEntry `json:"files"`
}

// JSONFileEntry is the JSON output structure for a single changed file.
type JSONFileEntry struct {
	Path      string   `json:"path"`
	Status    string   `json:"status"`
	Kind      string   `json:"kind"`
	DiffLines int      `json:"diffLines"`
	Preview   []string `json:"preview"`
}

// Write outputs the change report as JSON.
func (w *JSONWriter) Write(r *report.Report, options OutputOptions) error {
	files := make([]JSONFileEntry, len(r.Files))
	for i, f := range r.Files {
		preview := f.Preview
		if preview == nil {
			preview = []string{}
		}
		files[i] = JSONFileEntry{
			Path:      f.Path,
			Status:    string(f.Status),
			Kind:      f.Status.Kind().String(),
			DiffLines: f.DiffLines,
			Preview:   preview,
		}
	}

	return writeJSON(JSONReport{
		RepoPath:    r.RepoPath,
		Outcome:     string(r.Outcome),
		GeneratedAt: r.GeneratedAt.Format(reportDateTimeLayout),
		TotalFiles:  r.TotalFiles,
		Remaining:   r.Remaining(),
		Files:       files,
	}, options.OutputPath)
}

func writeJSON(data interface{}, outputPath string) error {
	encoder := json.NewEncoder(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		encoder = json.NewEncoder(file)
	}

	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
