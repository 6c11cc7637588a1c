// Package output renders summarization reports in the supported formats.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mkbv/specsum/internal/summarize"
)

// Writer renders a report to the given destination.
type Writer interface {
	Write(w io.Writer, report *summarize.Report) error
}

// GetWriter returns the Writer for the named format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s (supported: text, json, markdown)", format)
	}
}

// WriteReport renders the report in the given format to outPath, or to
// stdout when outPath is empty.
func WriteReport(report *summarize.Report, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	if outPath == "" {
		return writer.Write(os.Stdout, report)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	return writer.Write(f, report)
}
