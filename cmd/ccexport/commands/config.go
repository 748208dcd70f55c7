package commands

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/strrl/ccexport/internal/config"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and edit the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		RunE:  runConfigShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.Path(configFlag))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one configuration value",
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Open the config file in $EDITOR",
		RunE:  runConfigEdit,
	})

	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.Path(configFlag))
	if err != nil {
		return err
	}

	fmt.Printf("output_dir = %q\n", cfg.OutputDir)
	fmt.Printf("filename_format = %q\n", cfg.FilenameFormat)
	fmt.Printf("git_commit = %v\n", cfg.GitCommit)
	fmt.Printf("project_mode = %q\n", cfg.ProjectMode)
	fmt.Printf("speaker_user = %q\n", cfg.SpeakerUser)
	fmt.Printf("speaker_assistant = %q\n", cfg.SpeakerAssistant)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	configPath := config.Path(configFlag)
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "output_dir":
		cfg.OutputDir = value
	case "filename_format":
		cfg.FilenameFormat = value
	case "git_commit":
		cfg.GitCommit = value == "true"
	case "project_mode":
		if value != config.ModeMerge && value != config.ModeSeparate {
			return fmt.Errorf("project_mode must be %q or %q", config.ModeMerge, config.ModeSeparate)
		}
		cfg.ProjectMode = value
	case "speaker_user":
		cfg.SpeakerUser = value
	case "speaker_assistant":
		cfg.SpeakerAssistant = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := config.Save(configPath, cfg); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("✅ Updated %s", key)))
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	edit := exec.Command(editor, config.Path(configFlag))
	edit.Stdin = os.Stdin
	edit.Stdout = os.Stdout
	edit.Stderr = os.Stderr
	return edit.Run()
}
