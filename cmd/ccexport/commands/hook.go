package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strrl/ccexport/internal/hook"
)

// NewHookCommand creates the hook command group.
func NewHookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage the Claude Code session-end hook",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "install",
		Short: "Install the hook into Claude Code settings",
		RunE:  runHookInstall,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "uninstall",
		Short: "Remove the hook from Claude Code settings",
		RunE:  runHookUninstall,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether the hook is installed",
		RunE:  runHookStatus,
	})

	return cmd
}

// hookCommand returns the shell command registered in settings.json,
// preferring the resolved binary path over a bare name.
func hookCommand() string {
	if exe, err := os.Executable(); err == nil {
		return exe + " export"
	}
	return "ccexport export"
}

func runHookInstall(cmd *cobra.Command, args []string) error {
	settingsPath, err := hook.DefaultSettingsPath()
	if err != nil {
		return err
	}

	if err := hook.Install(settingsPath, hookCommand()); err != nil {
		return err
	}

	fmt.Println(successStyle.Render("✅ Claude Code hook configured"))
	fmt.Printf("   Settings: %s\n", settingsPath)
	fmt.Println("   ccexport will run after every session ends")
	return nil
}

func runHookUninstall(cmd *cobra.Command, args []string) error {
	settingsPath, err := hook.DefaultSettingsPath()
	if err != nil {
		return err
	}

	if err := hook.Uninstall(settingsPath); err != nil {
		return err
	}

	fmt.Println(successStyle.Render("✅ Hook removed"))
	return nil
}

func runHookStatus(cmd *cobra.Command, args []string) error {
	settingsPath, err := hook.DefaultSettingsPath()
	if err != nil {
		return err
	}

	status, err := hook.GetStatus(settingsPath)
	if err != nil {
		return err
	}

	if status.Installed {
		fmt.Println(successStyle.Render("✅ Hook is installed"))
		fmt.Printf("   Trigger: %s\n", status.Trigger)
		fmt.Printf("   Command: %s\n", status.Command)
	} else {
		fmt.Println(warnStyle.Render("Hook is not installed"))
		fmt.Println("  Run: ccexport hook install")
	}
	return nil
}
