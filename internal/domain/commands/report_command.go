package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
	"github.com/rios0rios0/iacreport/internal/domain/services"
	infraRepos "github.com/rios0rios0/iacreport/internal/infrastructure/repositories"
)

const (
	summaryReportName = "engineer-summary"
	staticGenerator   = "static"
)

// Report is the interface for the report command (full pipeline).
type Report interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReportOptions) error
}

// ReportOptions holds runtime options for a single report run.
type ReportOptions struct {
	Search   string // Full name of the person to report on
	Username string // If set, skips username resolution
	Company  string // If set, overrides resolver.company
}

// ReportCommand orchestrates the full report flow:
// resolve username -> gather repositories -> analyze -> generate and write reports.
type ReportCommand struct {
	hostingRegistry   *infraRepos.HostingRegistry
	generatorRegistry *infraRepos.GeneratorRegistry
	analyzer          repositories.AnalyzerRepository
	storage           repositories.ReportStorageRepository
}

// NewReportCommand creates a new ReportCommand.
func NewReportCommand(
	hostingRegistry *infraRepos.HostingRegistry,
	generatorRegistry *infraRepos.GeneratorRegistry,
	analyzer repositories.AnalyzerRepository,
	storage repositories.ReportStorageRepository,
) *ReportCommand {
	return &ReportCommand{
		hostingRegistry:   hostingRegistry,
		generatorRegistry: generatorRegistry,
		analyzer:          analyzer,
		storage:           storage,
	}
}

// Execute runs the report pipeline. Crawl failures only degrade the reports; an
// error is returned when no username can be determined, no generator can be
// created, or the summary cannot be produced.
func (it *ReportCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReportOptions,
) error {
	hosting, err := it.hostingRegistry.Get(settings.GitHub)
	if err != nil {
		return fmt.Errorf("failed to initialize hosting %q: %w", settings.GitHub.Type, err)
	}

	username, err := resolveUsername(ctx, hosting, settings, opts.Search, opts.Username, opts.Company)
	if err != nil {
		return err
	}

	generator, err := it.selectGenerator(ctx, settings.LLM)
	if err != nil {
		return err
	}

	diagnostics := &entities.Diagnostics{}
	gatherer := services.NewGatherer(hosting, *settings, entities.ChainProgress(diagnostics.Record, logProgress))
	result := gatherer.Gather(ctx, username)
	logDiagnostics(diagnostics, len(result.Bundles), countFiles(result.Bundles))

	styleGuide, err := it.storage.ReadStyleGuide(settings.Reports.StyleGuide)
	if err != nil {
		logger.Warnf("Using an empty style guide: %v", err)
		styleGuide = ""
	}

	reports := make([]entities.RepositoryReport, 0, len(result.Bundles))
	for _, bundle := range result.Bundles {
		report, reportErr := it.generateRepositoryReport(ctx, generator, settings, styleGuide, bundle)
		if reportErr != nil {
			logger.Errorf("Failed to generate report for %s: %v", bundle.FullName, reportErr)
			continue
		}
		reports = append(reports, report)
	}

	logger.Info("Generating User Summary Report")
	summary, err := generator.GenerateUserSummary(ctx, entities.UserSummaryInput{
		Owner:   username,
		Reports: reports,
	})
	if err != nil {
		return fmt.Errorf("failed to generate user summary: %w", err)
	}
	path, err := it.storage.WriteReport(settings.Reports.Dir, summaryReportName, summary)
	if err != nil {
		return err
	}

	logger.Infof(
		"Report complete: %d of %d repositories reported, summary written to %s",
		len(reports), len(result.Bundles), path,
	)
	return nil
}

func (it *ReportCommand) generateRepositoryReport(
	ctx context.Context,
	generator repositories.ReportGeneratorRepository,
	settings *entities.Settings,
	styleGuide string,
	bundle entities.RepositoryContentBundle,
) (entities.RepositoryReport, error) {
	logger.Infof("Generating report for %s", bundle.FullName)

	content, err := generator.GenerateRepositoryReport(ctx, entities.RepositoryReportInput{
		Owner:      bundle.Owner,
		Name:       bundle.Name,
		FullName:   bundle.FullName,
		StyleGuide: styleGuide,
		Files:      bundle.Files,
		Analysis:   analyzeBundle(it.analyzer, bundle),
	})
	if err != nil {
		return entities.RepositoryReport{}, err
	}

	path, err := it.storage.WriteReport(settings.Reports.Dir, bundle.Name, content)
	if err != nil {
		return entities.RepositoryReport{}, err
	}
	logger.Infof("Report for %s written to %s", bundle.FullName, path)

	return entities.RepositoryReport{
		Name:     bundle.Name,
		FullName: bundle.FullName,
		Content:  content,
	}, nil
}

// selectGenerator returns the configured generator, falling back to the static one
// when the LLM provider has no API key.
func (it *ReportCommand) selectGenerator(
	ctx context.Context,
	settings entities.LLMSettings,
) (repositories.ReportGeneratorRepository, error) {
	name := settings.Provider
	if name != staticGenerator && settings.APIKey == "" {
		logger.Warnf("No API key configured for %q, using the %s report generator", name, staticGenerator)
		name = staticGenerator
	}

	generator, err := it.generatorRegistry.Get(ctx, name, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report generator %q: %w", name, err)
	}
	return generator, nil
}

// resolveUsername returns username when given, otherwise resolves search to an account.
func resolveUsername(
	ctx context.Context,
	hosting repositories.HostingRepository,
	settings *entities.Settings,
	search, username, company string,
) (string, error) {
	if username != "" {
		return username, nil
	}
	if search == "" {
		return "", errors.New("either a search name or a username is required")
	}
	if company == "" {
		company = settings.Resolver.Company
	}

	logger.Infof("Search: %s", search)
	user, err := services.NewUsernameResolver(hosting, settings.Resolver.MaxAttempts).Resolve(ctx, search, company)
	if err != nil {
		if services.IsUsernameNotFound(err) {
			return "", fmt.Errorf("could not find Github username for %q: %w", search, err)
		}
		return "", err
	}

	logger.Infof("Github username found: %s", user.Username)
	return user.Username, nil
}
