//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
)

// SettingsBuilder helps create test settings starting from the defaults, with
// secrets cleared so that no environment leaks into tests.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates a new settings builder.
func NewSettingsBuilder() *SettingsBuilder {
	settings := entities.DefaultSettings()
	settings.GitHub.Token = ""
	settings.LLM.APIKey = ""
	return &SettingsBuilder{BaseBuilder: testkit.NewBaseBuilder(), settings: settings}
}

// WithLimits sets every crawl limit.
func (b *SettingsBuilder) WithLimits(maxRepos, maxFiles, maxDepth, maxContents int) *SettingsBuilder {
	b.settings.Limits = entities.Limits{
		MaxRepos:           maxRepos,
		MaxFilesPerRepo:    maxFiles,
		MaxDepthPerRepo:    maxDepth,
		MaxContentsPerRepo: maxContents,
	}
	return b
}

// WithConcurrency sets the number of repositories processed in parallel.
func (b *SettingsBuilder) WithConcurrency(concurrency int) *SettingsBuilder {
	b.settings.Concurrency = concurrency
	return b
}

// WithLLM sets the report generator provider and API key.
func (b *SettingsBuilder) WithLLM(provider, apiKey string) *SettingsBuilder {
	b.settings.LLM.Provider = provider
	b.settings.LLM.APIKey = apiKey
	return b
}

// WithReportsDir sets the output directory of the reports.
func (b *SettingsBuilder) WithReportsDir(dir string) *SettingsBuilder {
	b.settings.Reports.Dir = dir
	return b
}

// WithCompany sets the resolver's default company.
func (b *SettingsBuilder) WithCompany(company string) *SettingsBuilder {
	b.settings.Resolver.Company = company
	return b
}

// WithMaxAttempts sets the resolver's attempt cap.
func (b *SettingsBuilder) WithMaxAttempts(attempts int) *SettingsBuilder {
	b.settings.Resolver.MaxAttempts = attempts
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates a pointer to the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := b.settings
	return &settings
}
