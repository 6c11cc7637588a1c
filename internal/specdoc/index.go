package specdoc

import (
	"regexp"
	"strings"
)

// headerRe recognizes section headings: an optional "Section" prefix, a
// dotted-decimal number, whitespace, then the title. Applied to trimmed lines.
var headerRe = regexp.MustCompile(`^(?:Section\s*)?(\d+(?:\.\d+)*)\s+(.+)$`)

// Index holds the specification's sections in document order. It is built
// once per run and safe for concurrent queries; nothing mutates after Build.
type Index struct {
	sections []Section
}

// Build parses spec text into an Index. It folds over lines with a single
// "section under construction" cursor: a header match closes the current
// section and opens a new one, any other line accumulates into the open
// section, and lines before the first header are dropped. Build cannot fail:
// malformed headers are just body lines.
func Build(text string) *Index {
	var sections []Section
	var cur *Section

	for _, line := range strings.Split(text, "\n") {
		m := headerRe.FindStringSubmatch(strings.TrimSpace(line))
		if m != nil {
			if cur != nil {
				sections = append(sections, *cur)
			}
			cur = &Section{Number: m[1], Title: strings.TrimSpace(m[2])}
			continue
		}
		if cur != nil {
			cur.Content = append(cur.Content, line)
		}
	}
	if cur != nil {
		sections = append(sections, *cur)
	}

	return &Index{sections: sections}
}

// Len returns the number of indexed sections.
func (ix *Index) Len() int {
	return len(ix.sections)
}

// Sections returns the indexed sections in document order.
func (ix *Index) Sections() []Section {
	return ix.sections
}

// FindBestSection returns the section scoring highest against the keyword
// set, or ok=false if no keyword occurs anywhere. A keyword found as a
// substring of the lowercased "number title" header counts 3, a substring
// of the lowercased joined body counts 1. Ties go to the earlier section:
// replacement requires a strictly greater score.
func (ix *Index) FindBestSection(keywords map[string]struct{}) (Section, bool) {
	var best Section
	bestScore := 0

	for _, sec := range ix.sections {
		header := strings.ToLower(sec.Number + " " + sec.Title)
		body := strings.ToLower(strings.Join(sec.Content, " "))

		score := 0
		for kw := range keywords {
			if strings.Contains(header, kw) {
				score += 3
			}
			if strings.Contains(body, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = sec
		}
	}

	if bestScore == 0 {
		return Section{}, false
	}
	return best, true
}
