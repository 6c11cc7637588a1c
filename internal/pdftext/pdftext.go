package pdftext

import (
	"fmt"
	"os/exec"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Extractor implements specdoc.Extractor for PDF files.
type Extractor struct {
	// FallbackPdftotext shells out to `pdftotext -layout` when the Go
	// library fails (scanned or oddly encoded PDFs).
	FallbackPdftotext bool
}

// ExtractText returns the document's visible text in reading order,
// page by page.
func (e *Extractor) ExtractText(path string) (string, error) {
	text, err := extractWithLib(path)
	if err != nil && e.FallbackPdftotext {
		text, err = extractWithPdftotext(path)
	}
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return text, nil
}

func extractWithLib(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func extractWithPdftotext(path string) (string, error) {
	out, err := exec.Command("pdftotext", "-layout", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}
