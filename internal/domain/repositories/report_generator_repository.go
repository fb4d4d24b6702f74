package repositories

import (
	"context"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
)

// ReportGeneratorRepository turns gathered repository data into Markdown reports.
type ReportGeneratorRepository interface {
	Name() string
	GenerateRepositoryReport(ctx context.Context, input entities.RepositoryReportInput) (string, error)
	GenerateUserSummary(ctx context.Context, input entities.UserSummaryInput) (string, error)
}
