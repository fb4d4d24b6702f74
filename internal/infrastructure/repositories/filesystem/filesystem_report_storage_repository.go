package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ReportStorageRepository reads and writes reports on the local filesystem.
type ReportStorageRepository struct{}

// NewReportStorageRepository creates a filesystem-backed report storage.
func NewReportStorageRepository() repositories.ReportStorageRepository {
	return &ReportStorageRepository{}
}

// ReadStyleGuide returns the content of the style guide at path.
func (it *ReportStorageRepository) ReadStyleGuide(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read style guide %q: %w", path, err)
	}
	return string(data), nil
}

// WriteReport writes content to <dir>/<name>.md, creating dir when missing.
// Only the base of name is used so a report can never escape dir.
func (it *ReportStorageRepository) WriteReport(dir, name, content string) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("invalid report name %q", name)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create reports directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, base+".md")
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("failed to write report %q: %w", path, err)
	}
	return path, nil
}
