package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenpick/tokenpick-terminal/internal/cli"
	"github.com/tokenpick/tokenpick-terminal/pkg/files"
	"github.com/tokenpick/tokenpick-terminal/pkg/recent"
	"github.com/tokenpick/tokenpick-terminal/pkg/registry"
)

// RecentResult represents the output structure for recent command
type RecentResult struct {
	Tokens []string `json:"tokens" yaml:"tokens"`
	Count  int      `json:"count" yaml:"count"`
}

var (
	recentOutput string
	recentClear  bool
)

// NewRecentCommand creates the recent command
func NewRecentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show or clear the recently inserted tokens",
		Long: `Show the persisted list of recently inserted tokens, most recent
first. The list is capped at ` + fmt.Sprint(recent.MaxEntries) + ` entries.

Examples:
  tokenpick recent
  tokenpick recent -o json
  tokenpick recent --clear`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !files.ProjectExists() {
				return fmt.Errorf("no %s directory found. Run 'tokenpick init' first", files.TokenpickDir)
			}
			return cli.ValidateOutputFormat(recentOutput)
		},
		RunE: runRecent,
	}

	cmd.Flags().StringVarP(&recentOutput, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&recentClear, "clear", false, "Clear the recent-tokens list")

	return cmd
}

func runRecent(cmd *cobra.Command, args []string) error {
	tracker := recent.NewTracker(recent.NewFileStore(files.RecentPath()))

	if recentClear {
		tracker.Clear()
		fmt.Println("✓ Cleared recent tokens")
		return nil
	}

	result := RecentResult{Tokens: tracker.Tokens(), Count: tracker.Len()}

	if cli.OutputFormat(recentOutput) != cli.FormatText {
		return cli.OutputResults(os.Stdout, recentOutput, result)
	}

	if result.Count == 0 {
		fmt.Println("No recent tokens yet")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("#", "TOKEN", "NAME")
	for i, token := range result.Tokens {
		table.Row(fmt.Sprintf("%d", i+1), token, registry.AnnotateToken(token).Name)
	}
	table.Flush()

	return nil
}
