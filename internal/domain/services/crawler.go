package services

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// FileTreeCrawler walks a repository's directory tree through the hosting API and
// collects the paths of files with a given extension.
//
// The walk is bounded twice. maxDepth limits how far below the starting path
// directories are listed (0 lists only the starting directory). maxFiles is a
// budget shared by the whole walk: once it is spent no further listings are
// requested. The result is therefore always the first maxFiles matching paths of a
// pre-order traversal in listing order.
type FileTreeCrawler struct {
	hosting   repositories.HostingRepository
	extension string
	progress  entities.ProgressFunc
}

// NewFileTreeCrawler creates a crawler matching files that end with extension.
func NewFileTreeCrawler(
	hosting repositories.HostingRepository,
	extension string,
	progress entities.ProgressFunc,
) *FileTreeCrawler {
	return &FileTreeCrawler{hosting: hosting, extension: extension, progress: progress}
}

// Crawl returns the matching file paths below path in owner/repo.
// Listing failures are reported and produce an empty result for that subtree only.
func (it *FileTreeCrawler) Crawl(
	ctx context.Context,
	owner, repo, path string,
	maxFiles, maxDepth int,
) []string {
	budget := maxFiles
	return it.walk(ctx, owner, repo, path, maxDepth, &budget)
}

func (it *FileTreeCrawler) walk(
	ctx context.Context,
	owner, repo, path string,
	depth int,
	budget *int,
) []string {
	found := make([]string, 0)
	if depth < 0 || *budget <= 0 {
		return found
	}

	entries, err := it.hosting.ListDirectory(ctx, owner, repo, path)
	if err != nil {
		logger.Warnf("Error fetching contents of %s/%s at %q: %v", owner, repo, path, err)
		it.emit(entities.ProgressEvent{
			Stage:      entities.StageDirectory,
			Repository: owner + "/" + repo,
			Path:       path,
			Err:        err,
		})
		return found
	}
	it.emit(entities.ProgressEvent{
		Stage:      entities.StageDirectory,
		Repository: owner + "/" + repo,
		Path:       path,
		Count:      len(entries),
	})

	for _, entry := range entries {
		if *budget <= 0 {
			break
		}
		switch {
		case entry.IsFile() && strings.HasSuffix(entry.Name, it.extension):
			found = append(found, entry.Path)
			*budget--
		case entry.IsDir() && depth > 0:
			found = append(found, it.walk(ctx, owner, repo, entry.Path, depth-1, budget)...)
		}
	}

	return found
}

func (it *FileTreeCrawler) emit(event entities.ProgressEvent) {
	if it.progress != nil {
		it.progress(event)
	}
}
