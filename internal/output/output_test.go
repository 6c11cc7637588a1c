package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mkbv/specsum/internal/summarize"
)

func sampleReport() *summarize.Report {
	return &summarize.Report{
		Tool:     "specsum",
		Version:  "test",
		RunID:    "abc123",
		Provider: "groq",
		Model:    "llama3-8b-8192",
		PR: summarize.PRInfo{
			Number: 42,
			Title:  "Add reduction support",
			URL:    "https://github.com/acme/proj/pull/42",
			Mode:   "pr",
		},
		Summaries: []summarize.FileSummary{
			{
				Filename: "src/reduce.c",
				Section: &summarize.SectionRef{
					Number:  "2.19",
					Title:   "Reduction Clauses",
					Excerpt: []string{"The reduction clause specifies an operator."},
				},
				Summary: "Implements the reduction combiner.",
			},
			{
				Filename: "assets/logo.png",
				Skipped:  true,
				Reason:   "no patch (binary or too large)",
			},
		},
		Timing: summarize.Timing{SpecMs: 1, LLMMs: 200, TotalMs: 205},
	}
}

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json", "markdown", "md", ""} {
		if _, err := GetWriter(format); err != nil {
			t.Errorf("GetWriter(%q) error: %v", format, err)
		}
	}
	if _, err := GetWriter("xml"); err == nil {
		t.Error("GetWriter(xml) should fail")
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Add reduction support",
		"Section 2.19 Reduction Clauses",
		"Implements the reduction combiner.",
		"skipped: no patch",
		"1 file(s) summarized, 1 skipped",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var decoded summarize.Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.PR.Number != 42 || len(decoded.Summaries) != 2 {
		t.Errorf("decoded report = %+v", decoded)
	}
	if decoded.Summaries[0].Section.Number != "2.19" {
		t.Errorf("section number = %q", decoded.Summaries[0].Section.Number)
	}
}

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, sampleReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# PR Review: Add reduction support",
		"URL: https://github.com/acme/proj/pull/42",
		"### File: `src/reduce.c`",
		"#### Relevant Spec",
		"Section 2.19 Reduction Clauses:",
		"#### LLM Summary",
		"Implements the reduction combiner.",
		"_Skipped: no patch",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestMarkdownWriter_NoSection(t *testing.T) {
	report := sampleReport()
	report.Summaries[0].Section = nil

	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "No relevant section found") {
		t.Error("markdown output missing no-section placeholder")
	}
}

func TestWriteReport_ToFile(t *testing.T) {
	path := t.TempDir() + "/report.md"
	if err := WriteReport(sampleReport(), "markdown", path); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if string(data) != buf.String() {
		t.Error("file content differs from direct writer output")
	}
}
