package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// logProgress renders crawl progress events as log entries.
func logProgress(event entities.ProgressEvent) {
	if event.Failed() {
		return // failures are logged where they happen
	}
	switch event.Stage {
	case entities.StageRepositoryPage:
		logger.Debugf("Listed %d repositories of %q", event.Count, event.Repository)
	case entities.StageDirectory:
		logger.Debugf("Listed %d entries in %s:/%s", event.Count, event.Repository, event.Path)
	case entities.StageContent:
		logger.Debugf("Fetched %d bytes from %s/%s", event.Count, event.Repository, event.Path)
	}
}

// logDiagnostics prints the outcome counters of a run.
func logDiagnostics(diagnostics *entities.Diagnostics, repositories, files int) {
	entry := logger.WithFields(logger.Fields{
		"repositories":     repositories,
		"files":            files,
		"files_fetched":    diagnostics.FilesFetched,
		"list_errors":      diagnostics.ListErrors,
		"directory_errors": diagnostics.DirectoryErrors,
		"content_errors":   diagnostics.ContentErrors,
		"decode_errors":    diagnostics.DecodeErrors,
	})
	if diagnostics.Failures() > 0 {
		entry.Warn("Crawl finished with failures")
		return
	}
	entry.Info("Crawl finished")
}

// analyzeBundle runs the analyzer over every file of a bundle, keeping file order.
func analyzeBundle(
	analyzer repositories.AnalyzerRepository,
	bundle entities.RepositoryContentBundle,
) entities.RepositoryAnalysis {
	analysis := entities.RepositoryAnalysis{
		FullName: bundle.FullName,
		Files:    make([]entities.FileAnalysis, 0, len(bundle.Files)),
	}
	for _, file := range bundle.Files {
		analysis.Files = append(analysis.Files, analyzer.AnalyzeFile(file.Path, file.Content))
	}
	return analysis
}

func countFiles(bundles []entities.RepositoryContentBundle) int {
	total := 0
	for _, bundle := range bundles {
		total += len(bundle.Files)
	}
	return total
}
