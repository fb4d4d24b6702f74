package entities

import "time"

const (
	// EntryTypeFile is the directory listing type of a regular file.
	EntryTypeFile = "file"
	// EntryTypeDir is the directory listing type of a sub-directory.
	EntryTypeDir = "dir"
)

// RepositoryDescriptor identifies a repository returned by the hosting API.
// It is used as a filter/sort key and as the identity for subsequent calls.
type RepositoryDescriptor struct {
	Owner           string
	Name            string
	FullName        string
	PrimaryLanguage string
	IsFork          bool
	UpdatedAt       time.Time
}

// RepositoryPage is one page of an account's repository listing.
// NextPage is zero when the listing is exhausted.
type RepositoryPage struct {
	Repositories []RepositoryDescriptor
	NextPage     int
}

// DirectoryEntry is a file or directory returned by a directory listing.
type DirectoryEntry struct {
	Name string
	Path string
	Type string // "file" or "dir"
}

func (e DirectoryEntry) IsFile() bool { return e.Type == EntryTypeFile }
func (e DirectoryEntry) IsDir() bool  { return e.Type == EntryTypeDir }

// RepositoryFileSet holds the matching file paths found while crawling a repository.
type RepositoryFileSet struct {
	Owner     string   `yaml:"owner"`
	Name      string   `yaml:"name"`
	FullName  string   `yaml:"full_name"`
	FilePaths []string `yaml:"file_paths"`
}

// FileContent is a repository-relative path and its decoded text.
// An empty Content records a failed fetch.
type FileContent struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

// RepositoryContentBundle is the per-repository record consumed by report generation.
type RepositoryContentBundle struct {
	Owner    string        `yaml:"owner"`
	Name     string        `yaml:"name"`
	FullName string        `yaml:"full_name"`
	Files    []FileContent `yaml:"files"`
}
