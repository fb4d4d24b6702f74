package repositories

import "github.com/rios0rios0/iacreport/internal/domain/entities"

// AnalyzerRepository performs static checks on a single configuration file.
type AnalyzerRepository interface {
	AnalyzeFile(path, content string) entities.FileAnalysis
}
