package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mkbv/specsum/internal/cache"
	"github.com/mkbv/specsum/internal/config"
	"github.com/mkbv/specsum/internal/github"
	"github.com/mkbv/specsum/internal/gitctx"
	"github.com/mkbv/specsum/internal/output"
	"github.com/mkbv/specsum/internal/pdftext"
	"github.com/mkbv/specsum/internal/providers"
	"github.com/mkbv/specsum/internal/specdoc"
	"github.com/mkbv/specsum/internal/summarize"
	"github.com/spf13/cobra"
)

// Shared summarize flags
var (
	flagProvider      string
	flagModel         string
	flagFormat        string
	flagOut           string
	flagSpec          string
	flagSpecCache     string
	flagExcerptLines  int
	flagMaxPatchBytes int
	flagCodeOnly      bool
	flagExclude       string
	flagNoRedact      bool
	flagNoCache       bool
)

// pr-specific flags
var (
	flagOwner  string
	flagRepo   string
	flagPost   bool
	flagDryRun bool
)

func addSummarizeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (groq, anthropic, ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json, markdown)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flagSpec, "spec", "", "Specification document path (PDF or plain text)")
	cmd.Flags().StringVar(&flagSpecCache, "spec-cache", "", "Extracted spec text cache path")
	cmd.Flags().IntVar(&flagExcerptLines, "excerpt-lines", 0, "Spec section lines included in prompts")
	cmd.Flags().IntVar(&flagMaxPatchBytes, "max-patch-bytes", 0, "Maximum patch size sent to the provider")
	cmd.Flags().BoolVar(&flagCodeOnly, "code-only", false, "Only summarize recognized code files")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "Exclude file path globs (comma-separated)")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the summary cache")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagSpec != "" {
		m["specPath"] = flagSpec
	}
	if flagSpecCache != "" {
		m["specCache"] = flagSpecCache
	}
	if flagExcerptLines > 0 {
		m["excerptLines"] = strconv.Itoa(flagExcerptLines)
	}
	if flagMaxPatchBytes > 0 {
		m["maxPatchBytes"] = strconv.Itoa(flagMaxPatchBytes)
	}
	if flagCodeOnly {
		m["codeOnly"] = "true"
	}
	return m
}

func splitComma(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

var prCmd = &cobra.Command{
	Use:   "pr <number>",
	Short: "Summarize a GitHub pull request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prNumber, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid PR number: %s", args[0])
		}

		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		owner, repo := flagOwner, flagRepo
		if owner == "" || repo == "" {
			owner, repo, err = github.DetectRepo()
			if err != nil {
				return fmt.Errorf("use --owner and --repo: %w", err)
			}
		}

		ctx := context.Background()
		client := github.NewClient()

		fmt.Fprintf(os.Stderr, "Fetching %s/%s#%d...\n", owner, repo, prNumber)
		pr, err := client.GetPR(ctx, owner, repo, prNumber)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		prFiles, err := client.GetPRFiles(ctx, owner, repo, prNumber)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		files := make([]summarize.FileChange, 0, len(prFiles))
		for _, f := range prFiles {
			files = append(files, summarize.FileChange{Filename: f.Filename, Patch: f.Patch})
		}

		info := summarize.PRInfo{
			Number: pr.Number,
			Title:  pr.Title,
			URL:    pr.HTMLURL,
			Repo:   owner + "/" + repo,
			Mode:   "pr",
		}
		report := runSummarize(ctx, cfg, info, files)
		if report == nil {
			return nil
		}

		if flagPost && !flagDryRun {
			var buf bytes.Buffer
			if err := (&output.MarkdownWriter{}).Write(&buf, report); err != nil {
				fmt.Fprintf(os.Stderr, "Error rendering comment: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			if err := client.PostComment(ctx, owner, repo, prNumber, buf.String()); err != nil {
				fmt.Fprintf(os.Stderr, "Error posting comment: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			fmt.Fprintln(os.Stderr, "Posted summary comment.")
		}
		return nil
	},
}

// runSummarize loads the spec index, runs the engine, and writes the report.
// On failure it sets exitCode and returns nil.
func runSummarize(ctx context.Context, cfg config.Config, info summarize.PRInfo, files []summarize.FileChange) *summarize.Report {
	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}
	if flagExclude != "" {
		cfg.Exclude = append(cfg.Exclude, splitComma(flagExclude)...)
	}

	index, err := loadSpecIndex(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}
	fmt.Fprintf(os.Stderr, "Spec index: %d sections\n", index.Len())

	summarizer, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsAuthError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		return nil
	}

	c, err := cache.New(cfg.Cache.Enabled && !flagNoCache, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}

	files = filterExcluded(files, cfg.Exclude)
	if flagDryRun {
		fmt.Fprintf(os.Stderr, "Dry run: %d file(s) would be summarized with %s (%s)\n",
			len(files), summarizer.Name(), cfg.Model)
		return nil
	}

	engine := &summarize.Engine{
		Config:     cfg,
		Index:      index,
		Summarizer: summarizer,
		Cache:      c,
		Version:    version,
		Progress:   os.Stderr,
	}

	fmt.Fprintf(os.Stderr, "Summarizing %d file(s) with %s (%s)...\n", len(files), summarizer.Name(), cfg.Model)
	report, err := engine.Run(ctx, info, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if providers.IsAuthError(err) {
			exitCode = ExitAuthError
		} else {
			exitCode = ExitRuntimeError
		}
		return nil
	}

	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return nil
	}
	return report
}

// loadSpecIndex loads the spec text (cache or extraction) and builds the
// section index. PDFs go through the extractor; anything else is read as
// plain text.
func loadSpecIndex(cfg config.Config) (*specdoc.Index, error) {
	if cfg.SpecPath == "" {
		return nil, fmt.Errorf("no spec document configured (set specPath or pass --spec)")
	}
	var ex specdoc.Extractor
	if strings.EqualFold(filepath.Ext(cfg.SpecPath), ".pdf") {
		ex = &pdftext.Extractor{FallbackPdftotext: true}
	} else {
		ex = plainTextExtractor{}
	}
	text, err := specdoc.Load(cfg.SpecPath, cfg.EffectiveSpecCache(), ex)
	if err != nil {
		return nil, err
	}
	return specdoc.Build(text), nil
}

type plainTextExtractor struct{}

func (plainTextExtractor) ExtractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func filterExcluded(files []summarize.FileChange, exclude []string) []summarize.FileChange {
	if len(exclude) == 0 {
		return files
	}
	var kept []summarize.FileChange
	for _, f := range files {
		if !gitctx.MatchesAny(f.Filename, exclude) {
			kept = append(kept, f)
		}
	}
	return kept
}

func init() {
	addSummarizeFlags(prCmd)
	prCmd.Flags().StringVar(&flagOwner, "owner", "", "Repository owner (default: from git remote)")
	prCmd.Flags().StringVar(&flagRepo, "repo", "", "Repository name (default: from git remote)")
	prCmd.Flags().BoolVar(&flagPost, "post", false, "Post the markdown summary as a PR comment")
	prCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Show what would be summarized without calling the provider")
}
