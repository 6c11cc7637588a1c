package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mkbv/specsum/internal/config"
	"github.com/mkbv/specsum/internal/specdoc"
	"github.com/spf13/cobra"
)

var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Inspect the specification index",
}

var specSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List indexed spec sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		index, err := loadSpecIndex(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		for _, sec := range index.Sections() {
			fmt.Fprintf(os.Stdout, "%-10s %s (%d lines)\n", sec.Number, sec.Title, len(sec.Content))
		}
		fmt.Fprintf(os.Stderr, "%d section(s)\n", index.Len())
		return nil
	},
}

var specMatchCmd = &cobra.Command{
	Use:   "match <text>...",
	Short: "Show which spec section a piece of text matches",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		index, err := loadSpecIndex(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		text := strings.Join(args, " ")
		keywords := specdoc.Keywords(text)
		sec, found := index.FindBestSection(keywords)
		if !found {
			fmt.Fprintln(os.Stdout, "No relevant section found")
			return nil
		}

		excerpt := cfg.ExcerptLines
		fmt.Fprintf(os.Stdout, "%s:\n%s\n", sec.Ref(), strings.Join(sec.FirstLines(excerpt), "\n"))
		return nil
	},
}

func init() {
	addSummarizeFlags(specSectionsCmd)
	addSummarizeFlags(specMatchCmd)
	specCmd.AddCommand(specSectionsCmd)
	specCmd.AddCommand(specMatchCmd)
}
