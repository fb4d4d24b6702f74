package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/iacreport/internal/domain/commands"
	"github.com/rios0rios0/iacreport/internal/domain/entities"
)

// ResolveController handles the "resolve" subcommand.
type ResolveController struct {
	command commands.Resolve
}

// NewResolveController creates a new ResolveController.
func NewResolveController(command commands.Resolve) *ResolveController {
	return &ResolveController{command: command}
}

// GetBind returns the Cobra command metadata for the resolve controller.
func (it *ResolveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "resolve",
		Short: "Find the GitHub username of a person",
	}
}

// Execute resolves and prints the username.
func (it *ResolveController) Execute(cmd *cobra.Command, _ []string) {
	search, _ := cmd.Flags().GetString("search")
	company, _ := cmd.Flags().GetString("company")

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	if runErr := it.command.Execute(context.Background(), settings, commands.ResolveOptions{
		Search:  search,
		Company: company,
		Output:  cmd.OutOrStdout(),
	}); runErr != nil {
		logger.Errorf("Resolve failed: %v", runErr)
	}
}

// AddFlags adds the resolve-specific flags to the given Cobra command.
func (it *ResolveController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("search", "s", "", "Full name of the person to look up")
	cmd.Flags().String("company", "", "Company the profile must mention")
}
