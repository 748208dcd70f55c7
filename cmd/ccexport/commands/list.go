package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strrl/ccexport/internal/logger"
	"github.com/strrl/ccexport/internal/sessions"
	"github.com/strrl/ccexport/internal/stats"
)

var listDate string

// NewListCommand creates the list command: a non-interactive view of which
// projects have exportable activity on a date.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects with session activity for a date",
		RunE:  runList,
	}
	cmd.Flags().StringVarP(&listDate, "date", "d", "", "Target date (YYYY-MM-DD, default today)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	date, err := parseTargetDate(listDate)
	if err != nil {
		return err
	}

	projectsDir, err := sessions.ProjectsDir()
	if err != nil {
		return fmt.Errorf("failed to locate projects directory: %w", err)
	}

	projects, err := stats.FetchProjectStats(projectsDir, date)
	if err != nil {
		logger.Log.Debug().Err(err).Msg("DuckDB aggregation unavailable, using discovery walk")
		projects = stats.FallbackProjectStats(projectsDir, date)
	}

	if len(projects) == 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("No sessions on %s", date.Format("2006-01-02"))))
		return nil
	}

	fmt.Printf("Projects with sessions on %s:\n\n", date.Format("2006-01-02"))
	for _, p := range projects {
		fmt.Printf("  %-30s %3d session(s)  last activity %s\n",
			p.Name, p.SessionCount, p.LastActivity.Format("15:04"))
	}

	return nil
}
