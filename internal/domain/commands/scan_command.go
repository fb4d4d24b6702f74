package commands

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
	"github.com/rios0rios0/iacreport/internal/domain/services"
	infraRepos "github.com/rios0rios0/iacreport/internal/infrastructure/repositories"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Scan is the interface for the scan command (crawl and analyze only).
type Scan interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ScanOptions) error
}

// ScanOptions holds runtime options for a scan.
type ScanOptions struct {
	Search         string
	Username       string
	Company        string
	Format         string // "text" or "yaml"
	IncludeContent bool   // YAML only
	Output         io.Writer
}

// scanRepository is the YAML document of one scanned repository.
type scanRepository struct {
	Owner    string                   `yaml:"owner"`
	Name     string                   `yaml:"name"`
	FullName string                   `yaml:"full_name"`
	Files    []entities.FileContent   `yaml:"files,omitempty"`
	Analysis []entities.FileAnalysis  `yaml:"analysis"`
}

type scanDocument struct {
	Username     string           `yaml:"username"`
	Repositories []scanRepository `yaml:"repositories"`
}

// ScanCommand gathers and analyzes an account's repositories without generating reports.
type ScanCommand struct {
	hostingRegistry *infraRepos.HostingRegistry
	analyzer        repositories.AnalyzerRepository
}

// NewScanCommand creates a new ScanCommand.
func NewScanCommand(
	hostingRegistry *infraRepos.HostingRegistry,
	analyzer repositories.AnalyzerRepository,
) *ScanCommand {
	return &ScanCommand{hostingRegistry: hostingRegistry, analyzer: analyzer}
}

// Execute gathers the repositories and writes the result to opts.Output.
func (it *ScanCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ScanOptions,
) error {
	hosting, err := it.hostingRegistry.Get(settings.GitHub)
	if err != nil {
		return fmt.Errorf("failed to initialize hosting %q: %w", settings.GitHub.Type, err)
	}

	username, err := resolveUsername(ctx, hosting, settings, opts.Search, opts.Username, opts.Company)
	if err != nil {
		return err
	}

	diagnostics := &entities.Diagnostics{}
	result := services.NewGatherer(hosting, *settings, entities.ChainProgress(diagnostics.Record, logProgress)).
		Gather(ctx, username)
	logDiagnostics(diagnostics, len(result.Bundles), countFiles(result.Bundles))

	document := scanDocument{Username: username, Repositories: make([]scanRepository, 0, len(result.Bundles))}
	for _, bundle := range result.Bundles {
		repo := scanRepository{
			Owner:    bundle.Owner,
			Name:     bundle.Name,
			FullName: bundle.FullName,
			Analysis: analyzeBundle(it.analyzer, bundle).Files,
		}
		if opts.IncludeContent {
			repo.Files = bundle.Files
		}
		document.Repositories = append(document.Repositories, repo)
	}

	switch opts.Format {
	case FormatYAML:
		encoder := yaml.NewEncoder(opts.Output)
		defer encoder.Close()
		if encodeErr := encoder.Encode(document); encodeErr != nil {
			return fmt.Errorf("failed to encode scan result: %w", encodeErr)
		}
		return nil
	case FormatText, "":
		return writeText(opts.Output, document)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func writeText(out io.Writer, document scanDocument) error {
	if _, err := fmt.Fprintf(out, "🔍 %s\n\n", document.Username); err != nil {
		return err
	}

	total := 0
	for _, repo := range document.Repositories {
		fmt.Fprintf(out, "📁 %s\n", repo.FullName)
		for _, file := range repo.Analysis {
			status := "ok"
			switch {
			case file.Missing:
				status = "content unavailable"
			case file.HasFindings():
				status = "findings"
			}
			fmt.Fprintf(out, "   └─ %s (%s)\n", file.Path, status)
			total++
		}
		fmt.Fprintln(out)
	}

	_, err := fmt.Fprintf(out, "✅ Found %d files across %d repositories\n", total, len(document.Repositories))
	return err
}
