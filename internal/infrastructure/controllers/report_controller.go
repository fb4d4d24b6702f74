package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/iacreport/internal/domain/commands"
	"github.com/rios0rios0/iacreport/internal/domain/entities"
)

// ReportController handles the "report" subcommand (full pipeline).
type ReportController struct {
	command commands.Report
}

// NewReportController creates a new ReportController.
func NewReportController(command commands.Report) *ReportController {
	return &ReportController{command: command}
}

// GetBind returns the Cobra command metadata for the report controller.
func (it *ReportController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "report",
		Short: "Generate Terraform quality reports for an engineer",
		Long: `Resolve a person to a GitHub account, crawl its most recently updated
HCL repositories, fetch their .tf files and write one Markdown report per
repository plus an engineer summary to the reports directory.

Without an LLM API key the reports are built offline from the static analysis.`,
	}
}

// Execute runs the report pipeline.
func (it *ReportController) Execute(cmd *cobra.Command, _ []string) {
	search, _ := cmd.Flags().GetString("search")
	username, _ := cmd.Flags().GetString("username")
	company, _ := cmd.Flags().GetString("company")

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	if runErr := it.command.Execute(context.Background(), settings, commands.ReportOptions{
		Search:   search,
		Username: username,
		Company:  company,
	}); runErr != nil {
		logger.Errorf("Report failed: %v", runErr)
	}
}

// AddFlags adds the report-specific flags to the given Cobra command.
func (it *ReportController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("search", "s", "", "Full name of the engineer to look up")
	cmd.Flags().StringP("username", "u", "", "GitHub username (skips the name search)")
	cmd.Flags().String("company", "", "Company the engineer's profile must mention")
}
