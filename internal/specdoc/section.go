package specdoc

import "fmt"

// Section is a numbered, titled span of the specification document.
// It is immutable once the index is built.
type Section struct {
	// Number is the dotted-decimal identifier (e.g. "3.2.1"). It is a
	// display label only; sections are never ordered or compared by it.
	Number string
	// Title is the heading text following the number on its defining line.
	Title string
	// Content holds the section's body lines in document order, raw and
	// untrimmed, terminated by the next recognized header or end of text.
	Content []string
}

// Ref returns the section's display reference, e.g. "Section 3.2 Memory Model".
func (s Section) Ref() string {
	return fmt.Sprintf("Section %s %s", s.Number, s.Title)
}

// FirstLines returns up to n leading content lines, for inclusion in a
// downstream prompt or report excerpt.
func (s Section) FirstLines(n int) []string {
	if n <= 0 || len(s.Content) == 0 {
		return nil
	}
	if n > len(s.Content) {
		n = len(s.Content)
	}
	return s.Content[:n]
}
