package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// Gatherer runs lister, crawler and fetcher for one account and aggregates the
// results into content bundles in lister order.
type Gatherer struct {
	lister      *RepositoryLister
	crawler     *FileTreeCrawler
	fetcher     *ContentFetcher
	limits      entities.Limits
	concurrency int
}

// GatherResult is the output of a gather run.
type GatherResult struct {
	Repositories []entities.RepositoryDescriptor
	FileSets     []entities.RepositoryFileSet
	Bundles      []entities.RepositoryContentBundle
}

// NewGatherer wires the crawl components from settings. progress may be nil.
func NewGatherer(
	hosting repositories.HostingRepository,
	settings entities.Settings,
	progress entities.ProgressFunc,
) *Gatherer {
	concurrency := settings.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &Gatherer{
		lister:      NewRepositoryLister(hosting, settings.Language, progress),
		crawler:     NewFileTreeCrawler(hosting, settings.Extension, progress),
		fetcher:     NewContentFetcher(hosting, progress),
		limits:      settings.Limits,
		concurrency: concurrency,
	}
}

// Gather collects the content bundles of username's repositories. Repositories are
// processed independently and each result is written to its own slot, so a parallel
// run yields exactly what a sequential one does.
func (it *Gatherer) Gather(ctx context.Context, username string) GatherResult {
	repos := it.lister.ListRepositories(ctx, username, it.limits.MaxRepos)

	sets := make([]entities.RepositoryFileSet, len(repos))
	contents := make([][]entities.FileContent, len(repos))

	process := func(i int) {
		repo := repos[i]
		paths := it.crawler.Crawl(ctx, repo.Owner, repo.Name, "", it.limits.MaxFilesPerRepo, it.limits.MaxDepthPerRepo)
		sets[i] = NewFileSet(repo, paths)
		contents[i] = it.fetcher.FetchContents(ctx, repo.FullName, paths, it.limits.MaxContentsPerRepo)
	}

	if it.concurrency == 1 {
		for i := range repos {
			process(i)
		}
	} else {
		var group errgroup.Group
		group.SetLimit(it.concurrency)
		for i := range repos {
			group.Go(func() error {
				process(i)
				return nil
			})
		}
		_ = group.Wait() // process never fails
	}

	return GatherResult{
		Repositories: repos,
		FileSets:     sets,
		Bundles:      Aggregate(sets, contents),
	}
}
