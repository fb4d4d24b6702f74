package repositories

// ReportStorageRepository reads the style guide and persists generated reports.
type ReportStorageRepository interface {
	ReadStyleGuide(path string) (string, error)
	// WriteReport stores content as <dir>/<name>.md and returns the written path.
	WriteReport(dir, name, content string) (string, error)
}
