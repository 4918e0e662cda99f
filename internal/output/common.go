package output

import (
	"io"
	"os"

	"github.com/masmgr/changereport-go/internal/git"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// statusLabel renders a status with its kind, e.g. "M (modified)".
func statusLabel(status git.ChangeStatus) string {
	if status == "" {
		return "? (unknown)"
	}
	return string(status) + " (" + status.Kind().String() + ")"
}
