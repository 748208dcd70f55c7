// Package commands wires the ccexport CLI: export, list, init, hook, and
// config management, all thin wrappers over the internal packages.
package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/strrl/ccexport/internal/logger"
)

var (
	configFlag  string
	verboseMode bool
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// NewRootCommand creates the root command. Running ccexport without a
// subcommand exports today's sessions.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ccexport",
		Short: "Export Claude Code conversation history as Markdown",
		Long: `ccexport reads Claude Code session logs and writes daily Markdown
digests of your conversations, grouped by project.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A project-local .env may carry CCEXPORT_CONFIG; absence is fine.
			_ = godotenv.Load()
			logger.SetVerbose(verboseMode)
		},
		RunE: runExport,
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseMode, "verbose", "v", false, "Output detailed logs")
	addExportFlags(rootCmd)

	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewInitCommand())
	rootCmd.AddCommand(NewHookCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
