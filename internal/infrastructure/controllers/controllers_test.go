//go:build unit

package controllers_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/iacreport/internal/domain/commands"
	"github.com/rios0rios0/iacreport/internal/infrastructure/controllers"
	doubles "github.com/rios0rios0/iacreport/test/domain/commanddoubles"
)

// newCommand builds a subcommand carrying the root flags plus the controller flags.
func newCommand(t *testing.T, binder interface{ AddFlags(cmd *cobra.Command) }) *cobra.Command {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "iacreport.yaml")
	content := "github:\n  token: ghp_test\nllm:\n  api_key: test-key\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o600))

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", cfgFile, "")
	cmd.Flags().Bool("debug", false, "")
	cmd.Flags().Int("max-repos", 0, "")
	cmd.Flags().Int("max-files-per-repo", 0, "")
	cmd.Flags().Int("max-depth-per-repo", -1, "")
	cmd.Flags().Int("max-contents-per-repo", -1, "")
	binder.AddFlags(cmd)
	return cmd
}

func TestReportControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the flags and the loaded settings to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubReportCommand{}
		controller := controllers.NewReportController(stub)
		cmd := newCommand(t, controller)
		require.NoError(t, cmd.Flags().Set("search", "Jane Doe"))
		require.NoError(t, cmd.Flags().Set("company", "acme"))
		require.NoError(t, cmd.Flags().Set("max-repos", "7"))
		require.NoError(t, cmd.Flags().Set("max-depth-per-repo", "0"))

		// when
		controller.Execute(cmd, nil)

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, commands.ReportOptions{Search: "Jane Doe", Company: "acme"}, stub.LastOpts)
		assert.Equal(t, "ghp_test", stub.LastSettings.GitHub.Token)
		assert.Equal(t, "test-key", stub.LastSettings.LLM.APIKey)
		assert.Equal(t, 7, stub.LastSettings.Limits.MaxRepos)
		assert.Equal(t, 0, stub.LastSettings.Limits.MaxDepthPerRepo)
		assert.Equal(t, 5, stub.LastSettings.Limits.MaxFilesPerRepo)
	})

	t.Run("should not run the command when the config cannot be loaded", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubReportCommand{}
		controller := controllers.NewReportController(stub)
		cmd := newCommand(t, controller)
		require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")))

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should swallow command errors", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubReportCommand{ExecuteErr: errors.New("boom")}
		controller := controllers.NewReportController(stub)
		cmd := newCommand(t, controller)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "report", controller.GetBind().Use)
	})
}

func TestScanControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the output options to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubScanCommand{}
		controller := controllers.NewScanController(stub)
		cmd := newCommand(t, controller)
		require.NoError(t, cmd.Flags().Set("username", "octo"))
		require.NoError(t, cmd.Flags().Set("output", "yaml"))
		require.NoError(t, cmd.Flags().Set("include-content", "true"))

		// when
		controller.Execute(cmd, nil)

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "octo", stub.LastOpts.Username)
		assert.Equal(t, commands.FormatYAML, stub.LastOpts.Format)
		assert.True(t, stub.LastOpts.IncludeContent)
		assert.NotNil(t, stub.LastOpts.Output)
	})
}

func TestResolveControllerExecute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the search to the command", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &doubles.StubResolveCommand{}
		controller := controllers.NewResolveController(stub)
		cmd := newCommand(t, controller)
		require.NoError(t, cmd.Flags().Set("search", "Jane Doe"))

		// when
		controller.Execute(cmd, nil)

		// then
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "Jane Doe", stub.LastOpts.Search)
	})
}
