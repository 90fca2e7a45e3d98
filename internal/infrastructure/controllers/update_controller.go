package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/npmtoys/internal/domain/commands"
	"github.com/rios0rios0/npmtoys/internal/domain/entities"
)

// UpdateController handles the "update" subcommand.
type UpdateController struct {
	command commands.Update
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update) *UpdateController {
	return &UpdateController{command: command}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update",
		Short: "Update package.json dependencies to their latest versions",
		Long: `Read package.json, look up the latest published version of every
dependency and devDependency, and let you pick which ones to bump.

Selected entries are rewritten in place keeping their range prefix,
e.g. "^1.2.3" becomes "^1.4.0". Nothing is installed: run your package
manager afterwards to apply the updates.`,
	}
}

// Execute runs the update flow for the manifest in --dir.
func (it *UpdateController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	dir, _ := cmd.Flags().GetString("dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	assumeYes, _ := cmd.Flags().GetBool("yes")

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings, entities.UpdateOptions{
		Dir:       dir,
		DryRun:    dryRun,
		Verbose:   verbose,
		AssumeYes: assumeYes,
	})
}

// AddFlags adds the update-specific flags to the given Cobra command.
func (it *UpdateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("dir", "d", ".", "Directory containing the manifest")
	cmd.Flags().BoolP("yes", "y", false, "Update every outdated package without prompting")
	cmd.Flags().Bool("dry-run", false, "Show what would be updated without writing the manifest")
}
