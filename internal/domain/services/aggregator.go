package services

import "github.com/rios0rios0/iacreport/internal/domain/entities"

// NewFileSet binds crawled paths to the repository they were found in.
func NewFileSet(repo entities.RepositoryDescriptor, paths []string) entities.RepositoryFileSet {
	if paths == nil {
		paths = []string{}
	}
	return entities.RepositoryFileSet{
		Owner:     repo.Owner,
		Name:      repo.Name,
		FullName:  repo.FullName,
		FilePaths: paths,
	}
}

// NewContentBundle binds fetched contents to the file set they were derived from.
func NewContentBundle(set entities.RepositoryFileSet, files []entities.FileContent) entities.RepositoryContentBundle {
	if files == nil {
		files = []entities.FileContent{}
	}
	return entities.RepositoryContentBundle{
		Owner:    set.Owner,
		Name:     set.Name,
		FullName: set.FullName,
		Files:    files,
	}
}

// Aggregate pairs file sets with their fetched contents, index by index, keeping
// the file set order. Sets without contents get an empty file list.
func Aggregate(sets []entities.RepositoryFileSet, contents [][]entities.FileContent) []entities.RepositoryContentBundle {
	bundles := make([]entities.RepositoryContentBundle, 0, len(sets))
	for i, set := range sets {
		var files []entities.FileContent
		if i < len(contents) {
			files = contents[i]
		}
		bundles = append(bundles, NewContentBundle(set, files))
	}
	return bundles
}
