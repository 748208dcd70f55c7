package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strrl/ccexport/internal/config"
	"github.com/strrl/ccexport/internal/tui"
)

var initForce bool

// NewInitCommand creates the init command, an interactive first-time setup.
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file interactively",
		RunE:  runInit,
	}
	cmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := config.Path(configFlag)

	if !initForce {
		if _, err := os.Stat(configPath); err == nil {
			fmt.Println(warnStyle.Render(fmt.Sprintf("Config file already exists: %s", configPath)))
			fmt.Println("Use --force to overwrite")
			return nil
		}
	}

	cfg, confirmed, err := tui.RunInitForm(config.Default())
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println(warnStyle.Render("Cancelled"))
		return nil
	}

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✅ Created config file: %s", configPath)))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  ccexport hook install   # Export automatically when a session ends")
	return nil
}
