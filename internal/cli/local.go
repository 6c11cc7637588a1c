package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mkbv/specsum/internal/config"
	"github.com/mkbv/specsum/internal/gitctx"
	"github.com/mkbv/specsum/internal/summarize"
	"github.com/spf13/cobra"
)

var flagStaged bool

var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Summarize local uncommitted changes",
	Long:  "Summarizes the working tree diff (or the staged diff with --staged) without touching GitHub.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		var patches []gitctx.FilePatch
		mode := "local-unstaged"
		if flagStaged {
			mode = "local-staged"
			patches, err = gitctx.Staged(cfg.Exclude)
		} else {
			patches, err = gitctx.Unstaged(cfg.Exclude)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		if len(patches) == 0 {
			fmt.Fprintln(os.Stderr, "No changes to summarize.")
			return nil
		}

		files := make([]summarize.FileChange, 0, len(patches))
		for _, p := range patches {
			files = append(files, summarize.FileChange{Filename: p.Path, Patch: p.Patch})
		}

		info := summarize.PRInfo{Mode: mode}
		if meta, err := gitctx.GetRepoMeta(); err == nil {
			info.Title = meta.Branch
		}

		runSummarize(context.Background(), cfg, info, files)
		return nil
	},
}

func init() {
	addSummarizeFlags(localCmd)
	localCmd.Flags().BoolVar(&flagStaged, "staged", false, "Summarize staged changes instead of the working tree")
}
