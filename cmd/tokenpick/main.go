package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tokenpick/tokenpick-terminal/cmd/commands"
	"github.com/tokenpick/tokenpick-terminal/pkg/files"
	"github.com/tokenpick/tokenpick-terminal/pkg/models"
	"github.com/tokenpick/tokenpick-terminal/pkg/recent"
	"github.com/tokenpick/tokenpick-terminal/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tokenpick",
	Short: "Terminal token picker for template placeholders",
	Long: `Tokenpick is a terminal tool for browsing a catalog of template
placeholder tokens ({{char}}, {{pipeline.id}}, ...), searching them and
inserting them into text at the caret. The bare command opens a demo
editor with the picker attached; subcommands expose the catalog
directly.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := files.ReadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
			settings = models.DefaultSettings()
		}

		// Without a project directory the recent list lives only for
		// this session.
		var store recent.Store
		if files.ProjectExists() {
			store = recent.NewFileStore(files.RecentPath())
		} else {
			store = recent.NewMemoryStore()
		}
		tracker := recent.NewTracker(store)

		app := tui.NewApp(settings, tracker)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new tokenpick project",
	Long:  `Creates the .tokenpick folder with a default settings file, enabling persistence of the recent-tokens list`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing tokenpick project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .tokenpick folder")
		fmt.Println("✓ Recent tokens will now persist across sessions")
		fmt.Println("\nRun 'tokenpick' to open the picker.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tokenpick",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tokenpick version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewRecentCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
