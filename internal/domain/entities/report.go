package entities

// RepositoryReportInput is everything a generator needs to review one repository.
type RepositoryReportInput struct {
	Owner      string
	Name       string
	FullName   string
	StyleGuide string
	Files      []FileContent
	Analysis   RepositoryAnalysis
}

// RepositoryReport is a generated per-repository Markdown report.
type RepositoryReport struct {
	Name     string
	FullName string
	Content  string
}

// UserSummaryInput is the input of the aggregate engineer summary.
type UserSummaryInput struct {
	Owner   string
	Reports []RepositoryReport
}
