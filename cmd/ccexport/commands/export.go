package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/strrl/ccexport/internal/config"
	"github.com/strrl/ccexport/internal/export"
)

var (
	exportDate    string
	exportProject string
	exportOutput  string
	exportDryRun  bool
)

// NewExportCommand creates the export command; the root command runs the
// same action when invoked without a subcommand.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export conversation history for one date",
		RunE:  runExport,
	}
	addExportFlags(cmd)
	return cmd
}

func addExportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&exportDate, "date", "d", "", "Target date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&exportProject, "project", "p", "", "Only export sessions of this project path")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().BoolVar(&exportDryRun, "dry-run", false, "Render without writing files")
}

func parseTargetDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return date, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.Path(configFlag))
	if err != nil {
		return fmt.Errorf("failed to load configuration (run 'ccexport init' first): %w", err)
	}

	date, err := parseTargetDate(exportDate)
	if err != nil {
		return err
	}

	markdown, written, err := export.Run(cfg, export.Options{
		Date:          date,
		OutputDir:     exportOutput,
		ProjectFilter: exportProject,
		DryRun:        exportDryRun,
	})
	if err != nil {
		return err
	}

	switch {
	case markdown == "":
		fmt.Println(warnStyle.Render("No sessions to export"))
	case exportDryRun:
		fmt.Print(markdown)
	default:
		fmt.Println(successStyle.Render("✅ Export completed"))
		for _, path := range written {
			fmt.Printf("   %s\n", path)
		}
	}

	return nil
}
