package static

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

const (
	providerName = "static"
	maxScore     = 10.0

	parseErrorPenalty     = 6.0
	unformattedPenalty    = 1.0
	undocumentedPenalty   = 0.5
	maxUndocumentedCost   = 3.0
	unpinnedModulePenalty = 1.0
)

// totalScorePattern matches the total score line of a repository report.
var totalScorePattern = regexp.MustCompile(`\*\*Total Score:\*\*\s*([0-9]+(?:\.[0-9]+)?)\s*/10`)

// ReportGeneratorRepository renders reports from the static analysis alone, without
// any network access. It is used when no LLM is configured.
type ReportGeneratorRepository struct {
	repositoryTemplate *template.Template
	summaryTemplate    *template.Template
}

// NewReportGeneratorRepository creates the offline generator. The settings are ignored.
func NewReportGeneratorRepository(
	_ context.Context,
	_ entities.LLMSettings,
) (repositories.ReportGeneratorRepository, error) {
	return &ReportGeneratorRepository{
		repositoryTemplate: template.Must(template.New("repository").Funcs(funcs).Parse(repositoryTemplateText)),
		summaryTemplate:    template.Must(template.New("summary").Funcs(funcs).Parse(summaryTemplateText)),
	}, nil
}

func (it *ReportGeneratorRepository) Name() string { return providerName }

type scoredFile struct {
	entities.FileAnalysis
	Score float64
}

type repositoryView struct {
	Owner string
	Name  string
	Files []scoredFile
	Total float64
}

// GenerateRepositoryReport scores every analyzed file and renders the repository report.
func (it *ReportGeneratorRepository) GenerateRepositoryReport(
	_ context.Context,
	input entities.RepositoryReportInput,
) (string, error) {
	view := repositoryView{Owner: input.Owner, Name: input.Name}
	for _, file := range input.Analysis.Files {
		view.Files = append(view.Files, scoredFile{FileAnalysis: file, Score: ScoreFile(file)})
		view.Total += view.Files[len(view.Files)-1].Score
	}
	if len(view.Files) > 0 {
		view.Total /= float64(len(view.Files))
	}

	var sb strings.Builder
	if err := it.repositoryTemplate.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to render repository report: %w", err)
	}
	return sb.String(), nil
}

type summaryLine struct {
	Name  string
	Score string
}

type summaryView struct {
	Owner string
	Lines []summaryLine
	Total string
}

// GenerateUserSummary lists every repository with the total score found in its report.
func (it *ReportGeneratorRepository) GenerateUserSummary(
	_ context.Context,
	input entities.UserSummaryInput,
) (string, error) {
	view := summaryView{Owner: input.Owner, Total: "n/a"}

	sum, scored := 0.0, 0
	for _, report := range input.Reports {
		line := summaryLine{Name: report.Name, Score: "n/a"}
		if score, ok := ExtractScore(report.Content); ok {
			line.Score = formatScore(score)
			sum += score
			scored++
		}
		view.Lines = append(view.Lines, line)
	}
	if scored > 0 {
		view.Total = formatScore(sum / float64(scored))
	}

	var sb strings.Builder
	if err := it.summaryTemplate.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("failed to render summary report: %w", err)
	}
	return sb.String(), nil
}

// ScoreFile derives a 0-10 score from the static findings of a file.
func ScoreFile(file entities.FileAnalysis) float64 {
	if file.Missing {
		return 0
	}

	score := maxScore
	if len(file.ParseErrors) > 0 {
		score -= parseErrorPenalty
	} else if !file.Formatted {
		score -= unformattedPenalty
	}

	undocumented := float64(len(file.UndocumentedVariables)+len(file.UndocumentedOutputs)) * undocumentedPenalty
	score -= min(undocumented, maxUndocumentedCost)
	score -= float64(len(file.UnpinnedModules)) * unpinnedModulePenalty

	return max(score, 0)
}

// ExtractScore reads the "**Total Score:** x/10" line of a report.
func ExtractScore(report string) (float64, bool) {
	matches := totalScorePattern.FindStringSubmatch(report)
	if len(matches) < 2 {
		return 0, false
	}
	score, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, false
	}
	return score, true
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}
