//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/iacreport/internal/domain/commands"
	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
	builders "github.com/rios0rios0/iacreport/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/iacreport/test/infrastructure/repositorydoubles"
)

func TestReportCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should write one report per repository and the engineer summary", func(t *testing.T) {
		t.Parallel()

		// given
		generator := &doubles.SpyReportGeneratorRepository{GeneratorName: "gemini"}
		storage := &doubles.SpyReportStorageRepository{StyleGuide: "# Style"}
		analyzer := &doubles.StubAnalyzerRepository{}
		cmd := commands.NewReportCommand(
			hostingRegistryFor(newAccount()),
			generatorRegistryFor(map[string]repositories.ReportGeneratorRepository{"gemini": generator}),
			analyzer,
			storage,
		)
		settings := builders.NewSettingsBuilder().WithLLM("gemini", "key").WithReportsDir("out").BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ReportOptions{Search: "Octo Cat"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"network", "cluster", "engineer-summary"}, storage.WrittenNames())
		assert.Equal(t, "out", storage.Writes[0].Dir)
		assert.Equal(t, "report of octo/network", storage.Writes[0].Content)

		require.Len(t, generator.RepositoryInputs, 2)
		first := generator.RepositoryInputs[0]
		assert.Equal(t, "octo", first.Owner)
		assert.Equal(t, "# Style", first.StyleGuide)
		assert.Len(t, first.Files, 2)
		assert.Len(t, first.Analysis.Files, 2)

		require.Len(t, generator.SummaryInputs, 1)
		assert.Equal(t, "octo", generator.SummaryInputs[0].Owner)
		assert.Len(t, generator.SummaryInputs[0].Reports, 2)
		assert.Equal(t, []string{"main.tf", "outputs.tf", "main.tf"}, analyzer.AnalyzedPaths)
	})

	t.Run("should skip the search when a username is given", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := newAccount()
		cmd := commands.NewReportCommand(
			hostingRegistryFor(hosting),
			generatorRegistryFor(map[string]repositories.ReportGeneratorRepository{
				"static": &doubles.SpyReportGeneratorRepository{},
			}),
			&doubles.StubAnalyzerRepository{},
			&doubles.SpyReportStorageRepository{},
		)
		settings := builders.NewSettingsBuilder().WithLLM("static", "").BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ReportOptions{Username: "octo"})

		// then
		require.NoError(t, err)
		assert.Empty(t, hosting.SearchCalls)
	})

	t.Run("should fall back to the static generator without an API key", func(t *testing.T) {
		t.Parallel()

		// given
		gemini := &doubles.SpyReportGeneratorRepository{GeneratorName: "gemini"}
		static := &doubles.SpyReportGeneratorRepository{GeneratorName: "static"}
		cmd := commands.NewReportCommand(
			hostingRegistryFor(newAccount()),
			generatorRegistryFor(map[string]repositories.ReportGeneratorRepository{
				"gemini": gemini,
				"static": static,
			}),
			&doubles.StubAnalyzerRepository{},
			&doubles.SpyReportStorageRepository{},
		)
		settings := builders.NewSettingsBuilder().WithLLM("gemini", "").BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ReportOptions{Username: "octo"})

		// then
		require.NoError(t, err)
		assert.Empty(t, gemini.RepositoryInputs)
		assert.Len(t, static.RepositoryInputs, 2)
	})

	t.Run("should continue when one repository report fails", func(t *testing.T) {
		t.Parallel()

		// given
		generator := &doubles.SpyReportGeneratorRepository{
			RepositoryErrs: map[string]error{"octo/network": errors.New("quota exceeded")},
		}
		storage := &doubles.SpyReportStorageRepository{}
		cmd := commands.NewReportCommand(
			hostingRegistryFor(newAccount()),
			generatorRegistryFor(map[string]repositories.ReportGeneratorRepository{"static": generator}),
			&doubles.StubAnalyzerRepository{},
			storage,
		)
		settings := builders.NewSettingsBuilder().WithLLM("static", "").BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ReportOptions{Username: "octo"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"cluster", "engineer-summary"}, storage.WrittenNames())
		require.Len(t, generator.SummaryInputs, 1)
		assert.Len(t, generator.SummaryInputs[0].Reports, 1)
	})

	t.Run("should use an empty style guide when it cannot be read", func(t *testing.T) {
		t.Parallel()

		// given
		generator := &doubles.SpyReportGeneratorRepository{}
		cmd := commands.NewReportCommand(
			hostingRegistryFor(newAccount()),
			generatorRegistryFor(map[string]repositories.ReportGeneratorRepository{"static": generator}),
			&doubles.StubAnalyzerRepository{},
			&doubles.SpyReportStorageRepository{StyleGuideErr: errors.New("no such file")},
		)
		settings := builders.NewSettingsBuilder().WithLLM("static", "").BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ReportOptions{Username: "octo"})

		// then
		require.NoError(t, err)
		require.NotEmpty(t, generator.RepositoryInputs)
		assert.Empty(t, generator.RepositoryInputs[0].StyleGuide)
	})

	t.Run("should fail when the username cannot be resolved", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := newAccount()
		hosting.SearchResults = nil
		storage := &doubles.SpyReportStorageRepository{}
		cmd := commands.NewReportCommand(
			hostingRegistryFor(hosting),
			generatorRegistryFor(map[string]repositories.ReportGeneratorRepository{
				"static": &doubles.SpyReportGeneratorRepository{},
			}),
			&doubles.StubAnalyzerRepository{},
			storage,
		)
		settings := builders.NewSettingsBuilder().WithLLM("static", "").BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ReportOptions{Search: "Nobody"})

		// then
		require.ErrorIs(t, err, entities.ErrUsernameNotFound)
		assert.Empty(t, hosting.ListedPages)
		assert.Empty(t, storage.Writes)
	})

	t.Run("should fail when neither search nor username is given", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewReportCommand(
			hostingRegistryFor(newAccount()),
			generatorRegistryFor(nil),
			&doubles.StubAnalyzerRepository{},
			&doubles.SpyReportStorageRepository{},
		)
		settings := builders.NewSettingsBuilder().BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ReportOptions{})

		// then
		require.Error(t, err)
	})

	t.Run("should fail when the generator is not registered", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewReportCommand(
			hostingRegistryFor(newAccount()),
			generatorRegistryFor(nil),
			&doubles.StubAnalyzerRepository{},
			&doubles.SpyReportStorageRepository{},
		)
		settings := builders.NewSettingsBuilder().WithLLM("openai", "key").BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ReportOptions{Username: "octo"})

		// then
		require.ErrorIs(t, err, entities.ErrUnknownProvider)
	})

	t.Run("should fail when the summary cannot be generated", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewReportCommand(
			hostingRegistryFor(newAccount()),
			generatorRegistryFor(map[string]repositories.ReportGeneratorRepository{
				"static": &doubles.SpyReportGeneratorRepository{SummaryErr: errors.New("boom")},
			}),
			&doubles.StubAnalyzerRepository{},
			&doubles.SpyReportStorageRepository{},
		)
		settings := builders.NewSettingsBuilder().WithLLM("static", "").BuildSettings()

		// when
		err := cmd.Execute(context.Background(), settings, commands.ReportOptions{Username: "octo"})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to generate user summary")
	})
}
