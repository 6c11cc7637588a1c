package summarize

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

// FileChange is one changed file to summarize, source-agnostic: GitHub PR
// files and local git patches both reduce to this.
type FileChange struct {
	Filename string
	Patch    string
}

// PRInfo identifies what was reviewed.
type PRInfo struct {
	Number int    `json:"number,omitempty"`
	Title  string `json:"title,omitempty"`
	URL    string `json:"url,omitempty"`
	Repo   string `json:"repo,omitempty"`
	Mode   string `json:"mode"`
}

// SectionRef is the matched spec section carried into the report: the
// display fields plus the excerpt lines used in the prompt.
type SectionRef struct {
	Number  string   `json:"number"`
	Title   string   `json:"title"`
	Excerpt []string `json:"excerpt,omitempty"`
}

// FileSummary is the per-file result.
type FileSummary struct {
	Filename string      `json:"filename"`
	Section  *SectionRef `json:"section,omitempty"`
	Summary  string      `json:"summary,omitempty"`
	Skipped  bool        `json:"skipped,omitempty"`
	Reason   string      `json:"reason,omitempty"`
	Cached   bool        `json:"cached,omitempty"`
}

// Timing records where the run spent its time.
type Timing struct {
	SpecMs  int64 `json:"specMs"`
	LLMMs   int64 `json:"llmMs"`
	TotalMs int64 `json:"totalMs"`
}

// Report is the full result of one summarization run.
type Report struct {
	Tool      string        `json:"tool"`
	Version   string        `json:"version"`
	RunID     string        `json:"runId"`
	PR        PRInfo        `json:"pr"`
	Provider  string        `json:"provider"`
	Model     string        `json:"model"`
	Summaries []FileSummary `json:"summaries"`
	Timing    Timing        `json:"timing"`
}

// codeExtensions marks files treated as code when the codeOnly filter is on.
var codeExtensions = []string{
	".c", ".cpp", ".cc", ".cxx", ".h", ".hpp", ".py", ".f90", ".f", ".F", ".F90",
	".rs", ".java", ".js", ".ts", ".go",
}

func isCodeFile(filename string) bool {
	for _, ext := range codeExtensions {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

func generateRunID() string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%d", time.Now().UnixNano())))
	return fmt.Sprintf("%x", h[:16])
}
