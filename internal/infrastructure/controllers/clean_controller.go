package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/npmtoys/internal/domain/commands"
	"github.com/rios0rios0/npmtoys/internal/domain/entities"
)

// CleanController handles the "clean" subcommand.
type CleanController struct {
	command commands.Clean
}

// NewCleanController creates a new CleanController.
func NewCleanController(command commands.Clean) *CleanController {
	return &CleanController{command: command}
}

// GetBind returns the Cobra command metadata for the clean controller.
func (it *CleanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "clean [path]",
		Short: "Find and delete node_modules directories",
		Long: `Walk the given directory (default: current directory), list every
node_modules directory below it and delete the ones you select.

Nested node_modules inside a found directory are not listed separately.`,
	}
}

// Execute runs the clean flow rooted at the optional path argument.
func (it *CleanController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	assumeYes, _ := cmd.Flags().GetBool("yes")

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings, entities.CleanOptions{
		Root:      root,
		DryRun:    dryRun,
		Verbose:   verbose,
		AssumeYes: assumeYes,
	})
}

// AddFlags adds the clean-specific flags to the given Cobra command.
func (it *CleanController) AddFlags(cmd *cobra.Command) {
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.Flags().BoolP("yes", "y", false, "Delete every directory found without prompting")
	cmd.Flags().Bool("dry-run", false, "List what would be deleted without deleting it")
}
