package main

import (
	"os"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/iacreport/internal"
	"github.com/rios0rios0/iacreport/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "iacreport",
		Short: "Terraform code quality reports for GitHub accounts",
		Long: `Finds the GitHub account of an engineer, crawls the Terraform (HCL)
repositories it owns under strict request budgets, and writes Markdown
quality reports scored against a Terraform style guide.

Usage:
  iacreport report --search "Jane Doe"   Full pipeline, one report per repository
  iacreport scan --username janedoe      Crawl and analyze only
  iacreport resolve --search "Jane Doe"  Print the GitHub username`,
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("debug", "d", false,
		"Enable debug output")
	cmd.PersistentFlags().Int("max-repos", 0,
		"Maximum repositories to crawl (default from config)")
	cmd.PersistentFlags().Int("max-files-per-repo", 0,
		"Maximum .tf files collected per repository (default from config)")
	cmd.PersistentFlags().Int("max-depth-per-repo", -1,
		"Maximum directory depth below the repository root (default from config)")
	cmd.PersistentFlags().Int("max-contents-per-repo", -1,
		"Maximum files fetched per repository (default from config)")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if binder, ok := ctrl.(entities.FlagBinder); ok {
			binder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'iacreport': %s", err)
	}
}
