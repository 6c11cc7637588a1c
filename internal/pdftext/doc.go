// Package pdftext extracts plain text from PDF specification documents.
//
// It reads the document page by page with github.com/ledongthuc/pdf and can
// fall back to the pdftotext binary (poppler-utils) for PDFs the Go library
// cannot handle. The result is a linearized text dump suitable for
// specdoc.Build; extraction happens at most once per document because
// specdoc.Load memoizes it to a flat text cache.
package pdftext
