package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/iacreport/internal/domain/commands"
	"github.com/rios0rios0/iacreport/internal/domain/entities"
)

// ScanController handles the "scan" subcommand.
type ScanController struct {
	command commands.Scan
}

// NewScanController creates a new ScanController.
func NewScanController(command commands.Scan) *ScanController {
	return &ScanController{command: command}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan",
		Short: "Crawl and analyze an account's Terraform files",
		Long: `Crawl the most recently updated HCL repositories of an account, fetch
their .tf files and print the static analysis of each file. No report is
generated and no LLM is called.`,
	}
}

// Execute runs the scan.
func (it *ScanController) Execute(cmd *cobra.Command, _ []string) {
	search, _ := cmd.Flags().GetString("search")
	username, _ := cmd.Flags().GetString("username")
	company, _ := cmd.Flags().GetString("company")
	format, _ := cmd.Flags().GetString("output")
	includeContent, _ := cmd.Flags().GetBool("include-content")

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	if runErr := it.command.Execute(context.Background(), settings, commands.ScanOptions{
		Search:         search,
		Username:       username,
		Company:        company,
		Format:         format,
		IncludeContent: includeContent,
		Output:         cmd.OutOrStdout(),
	}); runErr != nil {
		logger.Errorf("Scan failed: %v", runErr)
	}
}

// AddFlags adds the scan-specific flags to the given Cobra command.
func (it *ScanController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("search", "s", "", "Full name of the engineer to look up")
	cmd.Flags().StringP("username", "u", "", "GitHub username (skips the name search)")
	cmd.Flags().String("company", "", "Company the engineer's profile must mention")
	cmd.Flags().StringP("output", "o", commands.FormatText, "Output format (text, yaml)")
	cmd.Flags().Bool("include-content", false, "Include file contents in the YAML output")
}
