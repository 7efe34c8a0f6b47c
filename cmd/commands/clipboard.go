package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tokenpick/tokenpick-terminal/internal/cli"
	"github.com/tokenpick/tokenpick-terminal/pkg/registry"
)

var clipboardForce bool

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clipboard <token>",
		Short:   "Copy a token to the system clipboard",
		Aliases: []string{"clip", "copy"},
		Long: `Copy the literal placeholder text of a token to the system
clipboard, ready to be pasted into a template.

Examples:
  tokenpick clipboard char
  tokenpick copy "{{phase.output}}"

  # Copy a token that is not in the catalog
  tokenpick clipboard my.custom --force`,
		Args: cobra.ExactArgs(1),
		RunE: runClipboard,
	}

	cmd.Flags().BoolVarP(&clipboardForce, "force", "f", false, "Copy even if the token is not in the catalog")

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	token := cli.NormalizeToken(args[0])

	if _, ok := registry.Lookup(token); !ok && !clipboardForce {
		return fmt.Errorf("token %q is not in the catalog (use --force to copy it anyway)", token)
	}

	if err := clipboard.WriteAll(token); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	fmt.Printf("✓ Copied %s to clipboard\n", token)
	return nil
}
