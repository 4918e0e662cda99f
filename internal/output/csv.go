package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/masmgr/changereport-go/internal/report"
)

// CSVWriter writes the shown files of a change report as CSV.
type CSVWriter struct{}

// Write outputs one row per shown file. Reports without changes produce only
// the header.
func (w *CSVWriter) Write(r *report.Report, options OutputOptions) error {
	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	if err := writer.Write([]string{"Path", "Status", "Kind", "DiffLines", "Preview"}); err != nil {
		return err
	}

	for _, f := range r.Files {
		row := []string{
			f.Path,
			string(f.Status),
			f.Status.Kind().String(),
			strconv.Itoa(f.DiffLines),
			strings.Join(f.Preview, "\n"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return nil, nil, err
		}
		return csv.NewWriter(file), file, nil
	}
	return csv.NewWriter(os.Stdout), nil, nil
}
