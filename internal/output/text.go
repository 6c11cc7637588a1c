package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkbv/specsum/internal/summarize"
)

// TextWriter renders a human-readable terminal report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *summarize.Report) error {
	title := report.PR.Title
	if title == "" {
		title = report.PR.Mode
	}
	fmt.Fprintf(w, "=== PR Review Summary: %s ===\n", title)
	if report.PR.URL != "" {
		fmt.Fprintf(w, "URL: %s\n", report.PR.URL)
	}
	fmt.Fprintf(w, "Provider: %s (%s)\n\n", report.Provider, report.Model)

	for _, s := range report.Summaries {
		fmt.Fprintf(w, "--- %s", s.Filename)
		if s.Cached {
			fmt.Fprint(w, " (cached)")
		}
		fmt.Fprintln(w, " ---")

		if s.Skipped {
			fmt.Fprintf(w, "skipped: %s\n\n", s.Reason)
			continue
		}
		if s.Section != nil {
			fmt.Fprintf(w, "Spec match: Section %s %s\n", s.Section.Number, s.Section.Title)
		} else {
			fmt.Fprintln(w, "Spec match: none")
		}
		fmt.Fprintf(w, "%s\n\n", strings.TrimRight(s.Summary, "\n"))
	}

	summarized := 0
	for _, s := range report.Summaries {
		if !s.Skipped {
			summarized++
		}
	}
	fmt.Fprintf(w, "%d file(s) summarized, %d skipped (%dms total, %dms in LLM)\n",
		summarized, len(report.Summaries)-summarized, report.Timing.TotalMs, report.Timing.LLMMs)
	return nil
}
