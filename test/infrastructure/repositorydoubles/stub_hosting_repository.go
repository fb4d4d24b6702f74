//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// Key builds the lookup key of a path inside a repository.
func Key(fullName, filePath string) string {
	return fullName + ":" + filePath
}

// FileEntry returns a file directory entry for filePath.
func FileEntry(filePath string) entities.DirectoryEntry {
	return entities.DirectoryEntry{Name: path.Base(filePath), Path: filePath, Type: entities.EntryTypeFile}
}

// DirEntry returns a directory entry for dirPath.
func DirEntry(dirPath string) entities.DirectoryEntry {
	return entities.DirectoryEntry{Name: path.Base(dirPath), Path: dirPath, Type: entities.EntryTypeDir}
}

// SearchCall records a single invocation of SearchUsers.
type SearchCall struct {
	Query string
	Limit int
}

// StubHostingRepository is an in-memory hosting API. Directories and contents are
// keyed with Key; missing entries answer with entities.ErrHostingRequest. It is
// safe for concurrent use.
type StubHostingRepository struct {
	mu sync.Mutex

	// --- ListUserRepositories ---
	Pages       map[int]entities.RepositoryPage
	PageErrs    map[int]error
	ListedPages []int

	// --- ListDirectory ---
	Directories       map[string][]entities.DirectoryEntry
	DirectoryErrs     map[string]error
	ListedDirectories []string

	// --- GetFileContent ---
	Contents       map[string]string
	ContentErrs    map[string]error
	FetchedContent []string

	// --- SearchUsers ---
	SearchResults []string
	SearchErr     error
	SearchCalls   []SearchCall

	// --- GetUser ---
	Users     map[string]entities.GitHubUser
	UserErrs  map[string]error
	UserCalls []string
}

var _ repositories.HostingRepository = (*StubHostingRepository)(nil)

// NewStubHostingRepository creates an empty stub.
func NewStubHostingRepository() *StubHostingRepository {
	return &StubHostingRepository{
		Pages:         map[int]entities.RepositoryPage{},
		PageErrs:      map[int]error{},
		Directories:   map[string][]entities.DirectoryEntry{},
		DirectoryErrs: map[string]error{},
		Contents:      map[string]string{},
		ContentErrs:   map[string]error{},
		Users:         map[string]entities.GitHubUser{},
		UserErrs:      map[string]error{},
	}
}

// WithFile registers the content of filePath.
func (s *StubHostingRepository) WithFile(fullName, filePath, content string) *StubHostingRepository {
	s.Contents[Key(fullName, filePath)] = content
	return s
}

// WithDirectory registers the entries listed for dirPath.
func (s *StubHostingRepository) WithDirectory(
	fullName, dirPath string,
	entries ...entities.DirectoryEntry,
) *StubHostingRepository {
	s.Directories[Key(fullName, dirPath)] = entries
	return s
}

func (s *StubHostingRepository) Name() string { return "stub" }

func (s *StubHostingRepository) ListUserRepositories(
	_ context.Context,
	_ string,
	page int,
) (entities.RepositoryPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ListedPages = append(s.ListedPages, page)
	if err, ok := s.PageErrs[page]; ok {
		return entities.RepositoryPage{}, err
	}
	return s.Pages[page], nil
}

func (s *StubHostingRepository) ListDirectory(
	_ context.Context,
	owner, repo, dirPath string,
) ([]entities.DirectoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key(owner+"/"+repo, dirPath)
	s.ListedDirectories = append(s.ListedDirectories, key)
	if err, ok := s.DirectoryErrs[key]; ok {
		return nil, err
	}
	entries, ok := s.Directories[key]
	if !ok {
		return nil, fmt.Errorf("%w: directory %q not found", entities.ErrHostingRequest, key)
	}
	return entries, nil
}

func (s *StubHostingRepository) GetFileContent(_ context.Context, fullName, filePath string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key(fullName, filePath)
	s.FetchedContent = append(s.FetchedContent, key)
	if err, ok := s.ContentErrs[key]; ok {
		return "", err
	}
	content, ok := s.Contents[key]
	if !ok {
		return "", fmt.Errorf("%w: file %q not found", entities.ErrHostingRequest, key)
	}
	return content, nil
}

func (s *StubHostingRepository) SearchUsers(_ context.Context, query string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SearchCalls = append(s.SearchCalls, SearchCall{Query: query, Limit: limit})
	if s.SearchErr != nil {
		return nil, s.SearchErr
	}
	return s.SearchResults, nil
}

func (s *StubHostingRepository) GetUser(_ context.Context, login string) (entities.GitHubUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.UserCalls = append(s.UserCalls, login)
	if err, ok := s.UserErrs[login]; ok {
		return entities.GitHubUser{}, err
	}
	user, ok := s.Users[login]
	if !ok {
		return entities.GitHubUser{}, fmt.Errorf("%w: user %q not found", entities.ErrHostingRequest, login)
	}
	return user, nil
}
