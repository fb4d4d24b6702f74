//go:build unit

package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/services"
	doubles "github.com/rios0rios0/iacreport/test/infrastructure/repositorydoubles"
)

const testRepo = "octo/infra"

// nestedTree is {a.tf, README.md, sub/b.tf, sub/deep/c.tf}.
func nestedTree() *doubles.StubHostingRepository {
	return doubles.NewStubHostingRepository().
		WithDirectory(testRepo, "",
			doubles.FileEntry("a.tf"),
			doubles.FileEntry("README.md"),
			doubles.DirEntry("sub"),
		).
		WithDirectory(testRepo, "sub",
			doubles.FileEntry("sub/b.tf"),
			doubles.DirEntry("sub/deep"),
		).
		WithDirectory(testRepo, "sub/deep",
			doubles.FileEntry("sub/deep/c.tf"),
		)
}

func TestFileTreeCrawlerCrawl(t *testing.T) {
	t.Parallel()

	t.Run("should exclude files below the depth limit", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := nestedTree()
		crawler := services.NewFileTreeCrawler(hosting, ".tf", nil)

		// when
		paths := crawler.Crawl(context.Background(), "octo", "infra", "", 5, 1)

		// then
		assert.Equal(t, []string{"a.tf", "sub/b.tf"}, paths)
		assert.NotContains(t, hosting.ListedDirectories, doubles.Key(testRepo, "sub/deep"))
	})

	t.Run("should collect the whole tree in pre-order when the depth allows it", func(t *testing.T) {
		t.Parallel()

		// given
		crawler := services.NewFileTreeCrawler(nestedTree(), ".tf", nil)

		// when
		paths := crawler.Crawl(context.Background(), "octo", "infra", "", 5, 2)

		// then
		assert.Equal(t, []string{"a.tf", "sub/b.tf", "sub/deep/c.tf"}, paths)
	})

	t.Run("should only list the starting directory when depth is zero", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := nestedTree()
		crawler := services.NewFileTreeCrawler(hosting, ".tf", nil)

		// when
		paths := crawler.Crawl(context.Background(), "octo", "infra", "", 5, 0)

		// then
		assert.Equal(t, []string{"a.tf"}, paths)
		assert.Equal(t, []string{doubles.Key(testRepo, "")}, hosting.ListedDirectories)
	})

	t.Run("should return empty without any request when depth is negative", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := nestedTree()
		crawler := services.NewFileTreeCrawler(hosting, ".tf", nil)

		// when
		paths := crawler.Crawl(context.Background(), "octo", "infra", "", 5, -1)

		// then
		assert.Empty(t, paths)
		assert.Empty(t, hosting.ListedDirectories)
	})

	t.Run("should return the first files in listing order when the budget is smaller", func(t *testing.T) {
		t.Parallel()

		// given
		entries := make([]entities.DirectoryEntry, 0, 10)
		for i := range 10 {
			entries = append(entries, doubles.FileEntry(fmt.Sprintf("f%02d.tf", i)))
		}
		hosting := doubles.NewStubHostingRepository().WithDirectory(testRepo, "", entries...)
		crawler := services.NewFileTreeCrawler(hosting, ".tf", nil)

		// when
		paths := crawler.Crawl(context.Background(), "octo", "infra", "", 5, 3)

		// then
		assert.Equal(t, []string{"f00.tf", "f01.tf", "f02.tf", "f03.tf", "f04.tf"}, paths)
	})

	t.Run("should keep sibling results when a subtree listing fails", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := nestedTree()
		hosting.DirectoryErrs[doubles.Key(testRepo, "sub/deep")] = fmt.Errorf(
			"%w: 502 bad gateway", entities.ErrHostingRequest,
		)
		var events []entities.ProgressEvent
		crawler := services.NewFileTreeCrawler(hosting, ".tf", func(event entities.ProgressEvent) {
			events = append(events, event)
		})

		// when
		paths := crawler.Crawl(context.Background(), "octo", "infra", "", 5, 3)

		// then
		assert.Equal(t, []string{"a.tf", "sub/b.tf"}, paths)
		failed := 0
		for _, event := range events {
			if event.Failed() {
				failed++
				assert.Equal(t, "sub/deep", event.Path)
			}
		}
		assert.Equal(t, 1, failed)
	})

	t.Run("should return empty when the root listing fails", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := doubles.NewStubHostingRepository()
		crawler := services.NewFileTreeCrawler(hosting, ".tf", nil)

		// when
		paths := crawler.Crawl(context.Background(), "octo", "infra", "", 5, 3)

		// then
		assert.NotNil(t, paths)
		assert.Empty(t, paths)
	})

	t.Run("should stop listing directories once the budget is spent", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := doubles.NewStubHostingRepository().
			WithDirectory(testRepo, "",
				doubles.FileEntry("a.tf"),
				doubles.FileEntry("b.tf"),
				doubles.DirEntry("modules"),
			).
			WithDirectory(testRepo, "modules", doubles.FileEntry("modules/c.tf"))
		crawler := services.NewFileTreeCrawler(hosting, ".tf", nil)

		// when
		paths := crawler.Crawl(context.Background(), "octo", "infra", "", 2, 3)

		// then
		assert.Equal(t, []string{"a.tf", "b.tf"}, paths)
		assert.Equal(t, []string{doubles.Key(testRepo, "")}, hosting.ListedDirectories)
	})

	t.Run("should share the budget across subtrees", func(t *testing.T) {
		t.Parallel()

		// given
		hosting := doubles.NewStubHostingRepository().
			WithDirectory(testRepo, "",
				doubles.DirEntry("one"),
				doubles.DirEntry("two"),
			).
			WithDirectory(testRepo, "one",
				doubles.FileEntry("one/a.tf"),
				doubles.FileEntry("one/b.tf"),
			).
			WithDirectory(testRepo, "two",
				doubles.FileEntry("two/c.tf"),
				doubles.FileEntry("two/d.tf"),
			)
		crawler := services.NewFileTreeCrawler(hosting, ".tf", nil)

		// when
		paths := crawler.Crawl(context.Background(), "octo", "infra", "", 3, 3)

		// then
		assert.Equal(t, []string{"one/a.tf", "one/b.tf", "two/c.tf"}, paths)
	})

	t.Run("should return the same paths on repeated crawls", func(t *testing.T) {
		t.Parallel()

		// given
		crawler := services.NewFileTreeCrawler(nestedTree(), ".tf", nil)

		// when
		first := crawler.Crawl(context.Background(), "octo", "infra", "", 5, 3)
		second := crawler.Crawl(context.Background(), "octo", "infra", "", 5, 3)

		// then
		assert.Equal(t, first, second)
	})

	t.Run("should start from a sub path", func(t *testing.T) {
		t.Parallel()

		// given
		crawler := services.NewFileTreeCrawler(nestedTree(), ".tf", nil)

		// when
		paths := crawler.Crawl(context.Background(), "octo", "infra", "sub", 5, 0)

		// then
		assert.Equal(t, []string{"sub/b.tf"}, paths)
	})
}
