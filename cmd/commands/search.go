package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokenpick/tokenpick-terminal/internal/cli"
	"github.com/tokenpick/tokenpick-terminal/pkg/models"
	"github.com/tokenpick/tokenpick-terminal/pkg/registry"
)

// SearchResult represents the output structure for search command
type SearchResult struct {
	Query   string        `json:"query" yaml:"query"`
	Matches []SearchMatch `json:"matches" yaml:"matches"`
	Count   int           `json:"count" yaml:"count"`
}

// SearchMatch is one matching token with its category
type SearchMatch struct {
	Category models.CategoryID `json:"category" yaml:"category"`
	models.Token `yaml:",inline"`
}

var searchOutput string

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tokens by text, name or description",
		Long: `Search all token categories with a case-insensitive substring match
against the literal token text, display name and description.

Examples:
  # Find everything mentioning output
  tokenpick search output

  # Multi-word queries need quotes
  tokenpick search "phase name"

  # Machine-readable results
  tokenpick search char -o json`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(searchOutput)
		},
		RunE: runSearch,
	}

	cmd.Flags().StringVarP(&searchOutput, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	result := SearchResult{Query: query}
	for _, id := range registry.CategoryIDs() {
		for _, tok := range registry.FilterTokens(registry.CategoryTokens(id), query) {
			result.Matches = append(result.Matches, SearchMatch{Category: id, Token: tok})
		}
	}
	result.Count = len(result.Matches)

	if cli.OutputFormat(searchOutput) != cli.FormatText {
		return cli.OutputResults(os.Stdout, searchOutput, result)
	}

	if result.Count == 0 {
		fmt.Printf("No tokens match %q\n", query)
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("TOKEN", "NAME", "CATEGORY")
	for _, m := range result.Matches {
		table.Row(m.Token.Token, m.Name, string(m.Category))
	}
	table.Flush()
	suffix := "es"
	if result.Count == 1 {
		suffix = ""
	}
	fmt.Printf("\n%d match%s\n", result.Count, suffix)

	return nil
}
