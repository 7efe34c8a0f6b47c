package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenpick/tokenpick-terminal/internal/cli"
	"github.com/tokenpick/tokenpick-terminal/pkg/models"
	"github.com/tokenpick/tokenpick-terminal/pkg/registry"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Categories []CategoryListing `json:"categories" yaml:"categories"`
	Count      int               `json:"count" yaml:"count"`
}

// CategoryListing is one category with its tokens
type CategoryListing struct {
	models.Category `yaml:",inline"`
	Tokens          []models.Token `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

var (
	listOutput     string
	listShowTokens bool
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List token categories and their tokens",
		Long: `List the built-in token categories, optionally restricted to one
category, with their placeholder tokens.

Examples:
  # List all categories
  tokenpick list

  # List one category with its tokens
  tokenpick list phase

  # List everything with tokens as JSON
  tokenpick list --tokens -o json`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(listOutput)
		},
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listOutput, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&listShowTokens, "tokens", false, "Include tokens for every category")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ids := registry.CategoryIDs()
	withTokens := listShowTokens

	if len(args) == 1 {
		id := models.CategoryID(args[0])
		if !registry.IsKnownCategory(id) {
			return fmt.Errorf("unknown category %q (run 'tokenpick list' to see them)", args[0])
		}
		ids = []models.CategoryID{id}
		withTokens = true
	}

	result := ListResult{}
	for _, id := range ids {
		listing := CategoryListing{Category: registry.CategoryByID(id)}
		tokens := registry.CategoryTokens(id)
		result.Count += len(tokens)
		if withTokens {
			listing.Tokens = tokens
		}
		result.Categories = append(result.Categories, listing)
	}

	if cli.OutputFormat(listOutput) != cli.FormatText {
		return cli.OutputResults(os.Stdout, listOutput, result)
	}

	table := cli.NewTableFormatter(os.Stdout)
	if withTokens {
		table.Header("TOKEN", "NAME", "DESCRIPTION")
		for _, listing := range result.Categories {
			table.Row(fmt.Sprintf("%s %s", listing.Icon, listing.Name), "", "")
			for _, tok := range listing.Tokens {
				table.Row("  "+tok.Token, tok.Name, tok.Description)
			}
		}
	} else {
		table.Header("CATEGORY", "ID", "TOKENS", "DESCRIPTION")
		for _, listing := range result.Categories {
			table.Row(
				fmt.Sprintf("%s %s", listing.Icon, listing.Name),
				string(listing.ID),
				fmt.Sprintf("%d", len(registry.CategoryTokens(listing.ID))),
				listing.Description,
			)
		}
	}
	table.Flush()
	fmt.Printf("\n%d token%s total\n", result.Count, cli.Pluralize(result.Count))

	return nil
}
