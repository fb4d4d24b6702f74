package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

const providerName = "gemini"

// errEmptyResponse is returned when the model produced no text.
var errEmptyResponse = errors.New("empty model response")

// ReportGeneratorRepository generates reports with the Gemini API.
type ReportGeneratorRepository struct {
	client          *genai.Client
	repositoryModel string
	summaryModel    string
}

// NewReportGeneratorRepository creates a Gemini-backed generator.
func NewReportGeneratorRepository(
	ctx context.Context,
	settings entities.LLMSettings,
) (repositories.ReportGeneratorRepository, error) {
	if settings.APIKey == "" {
		return nil, errors.New("gemini API key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  settings.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &ReportGeneratorRepository{
		client:          client,
		repositoryModel: settings.RepositoryModel,
		summaryModel:    settings.SummaryModel,
	}, nil
}

func (it *ReportGeneratorRepository) Name() string { return providerName }

// GenerateRepositoryReport asks the repository model to review one repository.
func (it *ReportGeneratorRepository) GenerateRepositoryReport(
	ctx context.Context,
	input entities.RepositoryReportInput,
) (string, error) {
	prompt, err := renderRepositoryPrompt(input)
	if err != nil {
		return "", fmt.Errorf("failed to render repository prompt: %w", err)
	}
	logger.Debugf("[gemini] Repository prompt for %s: %d bytes", input.FullName, len(prompt))
	return it.generate(ctx, it.repositoryModel, prompt)
}

// GenerateUserSummary asks the summary model to condense every repository report.
func (it *ReportGeneratorRepository) GenerateUserSummary(
	ctx context.Context,
	input entities.UserSummaryInput,
) (string, error) {
	prompt, err := renderSummaryPrompt(input)
	if err != nil {
		return "", fmt.Errorf("failed to render summary prompt: %w", err)
	}
	return it.generate(ctx, it.summaryModel, prompt)
}

func (it *ReportGeneratorRepository) generate(ctx context.Context, model, prompt string) (string, error) {
	temperature := float32(0)
	resp, err := it.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{Temperature: &temperature},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content with %s: %w", model, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errEmptyResponse
	}
	return sb.String(), nil
}
