package services

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// ContentFetcher downloads and decodes file contents.
type ContentFetcher struct {
	hosting  repositories.HostingRepository
	progress entities.ProgressFunc
}

// NewContentFetcher creates a fetcher backed by hosting.
func NewContentFetcher(hosting repositories.HostingRepository, progress entities.ProgressFunc) *ContentFetcher {
	return &ContentFetcher{hosting: hosting, progress: progress}
}

// FetchContents fetches the first limit paths in order. Every attempted path is
// recorded; a failed fetch leaves its Content empty.
func (it *ContentFetcher) FetchContents(
	ctx context.Context,
	fullName string,
	paths []string,
	limit int,
) []entities.FileContent {
	if limit < 0 {
		limit = 0
	}
	if len(paths) < limit {
		limit = len(paths)
	}

	files := make([]entities.FileContent, 0, limit)
	for _, path := range paths[:limit] {
		content, err := it.hosting.GetFileContent(ctx, fullName, path)
		if err != nil {
			if errors.Is(err, entities.ErrContentDecode) {
				logger.Warnf("Error decoding file content %s/%s: %v", fullName, path, err)
			} else {
				logger.Warnf("Error fetching file content %s/%s: %v", fullName, path, err)
			}
			content = ""
		} else {
			logger.Infof("Getting content for file: %s/%s", fullName, path)
		}

		it.emit(entities.ProgressEvent{
			Stage:      entities.StageContent,
			Repository: fullName,
			Path:       path,
			Count:      len(content),
			Err:        err,
		})
		files = append(files, entities.FileContent{Path: path, Content: content})
	}

	return files
}

func (it *ContentFetcher) emit(event entities.ProgressEvent) {
	if it.progress != nil {
		it.progress(event)
	}
}
