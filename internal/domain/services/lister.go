package services

import (
	"context"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// RepositoryLister pages through an account's repositories and keeps the
// non-fork ones whose primary language is the target language.
type RepositoryLister struct {
	hosting  repositories.HostingRepository
	language string
	progress entities.ProgressFunc
}

// NewRepositoryLister creates a lister for language. progress may be nil.
func NewRepositoryLister(
	hosting repositories.HostingRepository,
	language string,
	progress entities.ProgressFunc,
) *RepositoryLister {
	return &RepositoryLister{hosting: hosting, language: language, progress: progress}
}

// ListRepositories returns at most maxRepos matching repositories, most recently
// updated first. A failed page stops pagination; what was collected so far is
// still returned.
func (it *RepositoryLister) ListRepositories(
	ctx context.Context,
	username string,
	maxRepos int,
) []entities.RepositoryDescriptor {
	matched := make([]entities.RepositoryDescriptor, 0)

	page := 0
	for {
		result, err := it.hosting.ListUserRepositories(ctx, username, page)
		if err != nil {
			logger.Warnf("Error fetching repositories for %q: %v", username, err)
			it.emit(entities.ProgressEvent{Stage: entities.StageRepositoryPage, Repository: username, Err: err})
			break
		}
		it.emit(entities.ProgressEvent{
			Stage:      entities.StageRepositoryPage,
			Repository: username,
			Count:      len(result.Repositories),
		})

		for _, repo := range result.Repositories {
			if repo.IsFork {
				continue
			}
			if repo.PrimaryLanguage != it.language {
				continue
			}
			matched = append(matched, repo)
		}

		// a next page that does not advance would loop forever
		if result.NextPage <= page {
			break
		}
		page = result.NextPage
	}

	// sorted once over every page, not per page
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
	})

	logger.Infof("%s repositories of %q:", it.language, username)
	for _, repo := range matched {
		logger.Infof("- %s", repo.FullName)
	}

	if maxRepos < 0 {
		maxRepos = 0
	}
	if len(matched) > maxRepos {
		matched = matched[:maxRepos]
	}
	return matched
}

func (it *RepositoryLister) emit(event entities.ProgressEvent) {
	if it.progress != nil {
		it.progress(event)
	}
}
