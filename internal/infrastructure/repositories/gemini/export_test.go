package gemini

// RenderRepositoryPrompt exports renderRepositoryPrompt for testing.
var RenderRepositoryPrompt = renderRepositoryPrompt //nolint:gochecknoglobals // test export

// RenderSummaryPrompt exports renderSummaryPrompt for testing.
var RenderSummaryPrompt = renderSummaryPrompt //nolint:gochecknoglobals // test export
