package summarize

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mkbv/specsum/internal/cache"
	"github.com/mkbv/specsum/internal/config"
	"github.com/mkbv/specsum/internal/providers"
	"github.com/mkbv/specsum/internal/redact"
	"github.com/mkbv/specsum/internal/specdoc"
)

// Engine drives one summarization run over a set of file changes.
type Engine struct {
	Config     config.Config
	Index      *specdoc.Index
	Summarizer providers.Summarizer
	Cache      *cache.Cache
	Version    string

	// Progress receives per-file status lines. Nil discards them.
	Progress io.Writer
}

// temperature matches the value the prompt was tuned with.
const temperature = 0.4

// Run summarizes each file change in order and assembles the report.
// Provider errors abort the run; skips are recorded per file instead.
func (e *Engine) Run(ctx context.Context, pr PRInfo, files []FileChange) (*Report, error) {
	start := time.Now()
	report := &Report{
		Tool:      "specsum",
		Version:   e.Version,
		RunID:     generateRunID(),
		PR:        pr,
		Provider:  e.Summarizer.Name(),
		Model:     e.Config.Model,
		Summaries: make([]FileSummary, 0, len(files)),
	}

	var specDur, llmDur time.Duration
	for _, fc := range files {
		if skip, reason := e.shouldSkip(fc); skip {
			e.progressf("  skip %s (%s)\n", fc.Filename, reason)
			report.Summaries = append(report.Summaries, FileSummary{
				Filename: fc.Filename,
				Skipped:  true,
				Reason:   reason,
			})
			continue
		}

		patch := fc.Patch
		if e.Config.Privacy.RedactSecrets {
			patch = redact.Secrets(patch)
		}
		if max := e.Config.MaxPatchBytes; max > 0 && len(patch) > max {
			patch = patch[:max] + "\n... [patch truncated]"
		}

		specStart := time.Now()
		sec, found := e.Index.FindBestSection(specdoc.Keywords(patch))
		sectionInfo := FormatSectionInfo(sec, found, e.Config.ExcerptLines)
		specDur += time.Since(specStart)

		var ref *SectionRef
		if found {
			ref = &SectionRef{
				Number:  sec.Number,
				Title:   sec.Title,
				Excerpt: sec.FirstLines(e.Config.ExcerptLines),
			}
		}

		key := cache.BuildSummaryKey(e.Summarizer.Name(), e.Config.Model, fc.Filename, patch, sec.Ref())
		if cached, ok := e.Cache.Get(key); ok {
			e.progressf("  %s (cached)\n", fc.Filename)
			report.Summaries = append(report.Summaries, FileSummary{
				Filename: fc.Filename,
				Section:  ref,
				Summary:  cached,
				Cached:   true,
			})
			continue
		}

		e.progressf("  %s\n", fc.Filename)
		llmStart := time.Now()
		resp, err := e.Summarizer.Summarize(ctx, providers.SummaryRequest{
			Prompt:      BuildPrompt(fc.Filename, patch, sectionInfo),
			Temperature: temperature,
		})
		llmDur += time.Since(llmStart)
		if err != nil {
			return nil, fmt.Errorf("summarizing %s: %w", fc.Filename, err)
		}

		if err := e.Cache.Put(key, resp.Content); err != nil {
			e.progressf("  warning: caching summary for %s: %v\n", fc.Filename, err)
		}
		report.Summaries = append(report.Summaries, FileSummary{
			Filename: fc.Filename,
			Section:  ref,
			Summary:  resp.Content,
		})
	}

	report.Timing = Timing{
		SpecMs:  specDur.Milliseconds(),
		LLMMs:   llmDur.Milliseconds(),
		TotalMs: time.Since(start).Milliseconds(),
	}
	return report, nil
}

func (e *Engine) shouldSkip(fc FileChange) (bool, string) {
	if fc.Patch == "" {
		return true, "no patch (binary or too large)"
	}
	if e.Config.CodeOnly && !isCodeFile(fc.Filename) {
		return true, "not a code file"
	}
	if redact.ShouldRedactPath(fc.Filename, e.Config.Privacy.RedactPaths) {
		return true, "matches redact path"
	}
	return false, ""
}

func (e *Engine) progressf(format string, args ...any) {
	if e.Progress != nil {
		fmt.Fprintf(e.Progress, format, args...)
	}
}
