//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// SpyReportGeneratorRepository implements repositories.ReportGeneratorRepository as a
// configurable spy. Reports are "report of <full name>" unless configured.
type SpyReportGeneratorRepository struct {
	GeneratorName string

	// --- GenerateRepositoryReport ---
	RepositoryReports map[string]string // full name -> report
	RepositoryErrs    map[string]error  // full name -> error
	RepositoryInputs  []entities.RepositoryReportInput

	// --- GenerateUserSummary ---
	Summary       string
	SummaryErr    error
	SummaryInputs []entities.UserSummaryInput
}

var _ repositories.ReportGeneratorRepository = (*SpyReportGeneratorRepository)(nil)

func (s *SpyReportGeneratorRepository) Name() string { return s.GeneratorName }

func (s *SpyReportGeneratorRepository) GenerateRepositoryReport(
	_ context.Context,
	input entities.RepositoryReportInput,
) (string, error) {
	s.RepositoryInputs = append(s.RepositoryInputs, input)
	if err, ok := s.RepositoryErrs[input.FullName]; ok {
		return "", err
	}
	if report, ok := s.RepositoryReports[input.FullName]; ok {
		return report, nil
	}
	return "report of " + input.FullName, nil
}

func (s *SpyReportGeneratorRepository) GenerateUserSummary(
	_ context.Context,
	input entities.UserSummaryInput,
) (string, error) {
	s.SummaryInputs = append(s.SummaryInputs, input)
	if s.SummaryErr != nil {
		return "", s.SummaryErr
	}
	if s.Summary != "" {
		return s.Summary, nil
	}
	return fmt.Sprintf("summary of %s (%d reports)", input.Owner, len(input.Reports)), nil
}

// WriteCall records a single invocation of WriteReport.
type WriteCall struct {
	Dir     string
	Name    string
	Content string
}

// SpyReportStorageRepository implements repositories.ReportStorageRepository in memory.
type SpyReportStorageRepository struct {
	// --- ReadStyleGuide ---
	StyleGuide    string
	StyleGuideErr error
	ReadPaths     []string

	// --- WriteReport ---
	WriteErr error
	Writes   []WriteCall
}

var _ repositories.ReportStorageRepository = (*SpyReportStorageRepository)(nil)

func (s *SpyReportStorageRepository) ReadStyleGuide(path string) (string, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	if s.StyleGuideErr != nil {
		return "", s.StyleGuideErr
	}
	return s.StyleGuide, nil
}

func (s *SpyReportStorageRepository) WriteReport(dir, name, content string) (string, error) {
	if s.WriteErr != nil {
		return "", s.WriteErr
	}
	s.Writes = append(s.Writes, WriteCall{Dir: dir, Name: name, Content: content})
	return filepath.Join(dir, name+".md"), nil
}

// WrittenNames returns the report names written so far, in order.
func (s *SpyReportStorageRepository) WrittenNames() []string {
	names := make([]string, 0, len(s.Writes))
	for _, w := range s.Writes {
		names = append(names, w.Name)
	}
	return names
}

// StubAnalyzerRepository implements repositories.AnalyzerRepository. It marks empty
// files as missing and records every analyzed path.
type StubAnalyzerRepository struct {
	AnalyzedPaths []string
}

var _ repositories.AnalyzerRepository = (*StubAnalyzerRepository)(nil)

func (s *StubAnalyzerRepository) AnalyzeFile(path, content string) entities.FileAnalysis {
	s.AnalyzedPaths = append(s.AnalyzedPaths, path)
	return entities.FileAnalysis{Path: path, Missing: content == "", Formatted: content != ""}
}
