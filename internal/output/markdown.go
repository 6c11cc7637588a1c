package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkbv/specsum/internal/summarize"
)

// MarkdownWriter renders the report as a markdown document suitable for
// saving alongside the PR or posting as a review comment.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *summarize.Report) error {
	title := report.PR.Title
	if title == "" {
		title = report.PR.Mode
	}
	fmt.Fprintf(w, "# PR Review: %s\n\n", title)
	if report.PR.URL != "" {
		fmt.Fprintf(w, "URL: %s\n\n", report.PR.URL)
	}

	for _, s := range report.Summaries {
		fmt.Fprintf(w, "### File: `%s`\n\n", s.Filename)

		if s.Skipped {
			fmt.Fprintf(w, "_Skipped: %s_\n\n", s.Reason)
			fmt.Fprintln(w, "---")
			fmt.Fprintln(w)
			continue
		}

		fmt.Fprintln(w, "#### Relevant Spec")
		fmt.Fprintln(w)
		if s.Section != nil {
			fmt.Fprintf(w, "Section %s %s:\n", s.Section.Number, s.Section.Title)
			fmt.Fprintln(w, "```")
			fmt.Fprintln(w, strings.Join(s.Section.Excerpt, "\n"))
			fmt.Fprintln(w, "```")
		} else {
			fmt.Fprintln(w, "No relevant section found")
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, "#### LLM Summary")
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.TrimRight(s.Summary, "\n"))
		fmt.Fprintln(w)
		fmt.Fprintln(w, "---")
		fmt.Fprintln(w)
	}
	return nil
}
