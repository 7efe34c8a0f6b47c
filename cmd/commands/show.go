package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenpick/tokenpick-terminal/internal/cli"
	"github.com/tokenpick/tokenpick-terminal/pkg/models"
	"github.com/tokenpick/tokenpick-terminal/pkg/registry"
)

// ShowResult represents the output structure for show command
type ShowResult struct {
	models.Token `yaml:",inline"`
	Category     models.CategoryID `json:"category,omitempty" yaml:"category,omitempty"`
	Registered   bool              `json:"registered" yaml:"registered"`
}

var showOutput string

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <token>",
		Short: "Show the details of a single token",
		Long: `Show name, description and category of a token. The braces are
optional on the command line.

Examples:
  tokenpick show phase.output
  tokenpick show "{{char}}"
  tokenpick show pipeline.id -o yaml`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(showOutput)
		},
		RunE: runShow,
	}

	cmd.Flags().StringVarP(&showOutput, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	token := cli.NormalizeToken(args[0])

	result := ShowResult{Token: registry.AnnotateToken(token)}
	if _, ok := registry.Lookup(token); ok {
		result.Registered = true
		result.Category = categoryOf(token)
	}

	if cli.OutputFormat(showOutput) != cli.FormatText {
		return cli.OutputResults(os.Stdout, showOutput, result)
	}

	fmt.Printf("Token:       %s\n", result.Token.Token)
	fmt.Printf("Name:        %s\n", result.Name)
	fmt.Printf("Description: %s\n", result.Description)
	if result.Registered {
		meta := registry.CategoryByID(result.Category)
		fmt.Printf("Category:    %s %s\n", meta.Icon, meta.Name)
	} else {
		fmt.Println("Category:    (not in the catalog)")
	}

	return nil
}

// categoryOf finds the category a registered token belongs to.
func categoryOf(token string) models.CategoryID {
	for _, id := range registry.CategoryIDs() {
		for _, tok := range registry.CategoryTokens(id) {
			if tok.Token == token {
				return id
			}
		}
	}
	return ""
}
