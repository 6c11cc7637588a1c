package summarize

import (
	"fmt"
	"strings"

	"github.com/mkbv/specsum/internal/specdoc"
)

// noSectionText is used in prompts and reports when the index found nothing.
const noSectionText = "No relevant section found"

// FormatSectionInfo renders the matched section as it appears in the prompt:
// the header line followed by the first excerptLines content lines, or the
// no-match placeholder.
func FormatSectionInfo(sec specdoc.Section, ok bool, excerptLines int) string {
	if !ok {
		return noSectionText
	}
	return fmt.Sprintf("%s:\n%s", sec.Ref(), strings.Join(sec.FirstLines(excerptLines), "\n"))
}

// BuildPrompt constructs the reviewer prompt for a single changed file.
func BuildPrompt(filename, patch, sectionInfo string) string {
	var b strings.Builder

	b.WriteString("You are reviewing a pull request for a project governed by a technical specification.\n\n")
	fmt.Fprintf(&b, "File Changed: %s\n\n", filename)
	fmt.Fprintf(&b, "Patch:\n%s\n\n", patch)
	fmt.Fprintf(&b, "Relevant Spec Section:\n%s\n\n", sectionInfo)
	b.WriteString("Please generate a structured, reviewer-friendly summary for this change, referencing the specification where appropriate.\n")

	return b.String()
}
