package specdoc

import (
	"errors"
	"fmt"
	"os"
)

// ErrDocumentUnavailable is returned when the specification can be obtained
// neither from the text cache nor by extraction from the source document.
// It is fatal to the run: there is no partial indexing.
var ErrDocumentUnavailable = errors.New("specification document unavailable")

// Extractor produces the plain text content of a binary document, in reading
// order. It is treated as a black box; extraction cost is why Load memoizes.
type Extractor interface {
	ExtractText(path string) (string, error)
}

// Load returns the specification as plain text. If cachePath exists its
// contents are returned verbatim (the fast path on every run after the
// first); otherwise the source document is extracted once and the result is
// written to cachePath for future runs.
//
// The cache is a pure memoization, not a synchronized copy: freshness is
// never validated against the source. If the source document changes, the
// operator deletes the cache by hand.
func Load(sourcePath, cachePath string, ex Extractor) (string, error) {
	data, err := os.ReadFile(cachePath)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("%w: reading cache %s: %v", ErrDocumentUnavailable, cachePath, err)
	}

	text, err := ex.ExtractText(sourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: extracting %s: %v", ErrDocumentUnavailable, sourcePath, err)
	}

	if err := os.WriteFile(cachePath, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing spec text cache: %w", err)
	}
	return text, nil
}
