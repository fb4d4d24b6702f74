package repositories

import (
	"context"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
)

// HostingRepository abstracts the Git hosting REST API the crawler reads from.
// Implementations return errors wrapping entities.ErrHostingRequest for transport
// and HTTP failures and entities.ErrContentDecode for undecodable file content.
type HostingRepository interface {
	Name() string

	// ListUserRepositories returns one page of the account's public repositories.
	// page 0 requests the first page.
	ListUserRepositories(ctx context.Context, username string, page int) (entities.RepositoryPage, error)

	// ListDirectory returns the entries of path ("" is the repository root).
	ListDirectory(ctx context.Context, owner, repo, path string) ([]entities.DirectoryEntry, error)

	// GetFileContent returns the decoded text of the file at path in fullName ("owner/repo").
	GetFileContent(ctx context.Context, fullName, path string) (string, error)

	// SearchUsers returns up to limit account logins matching query.
	SearchUsers(ctx context.Context, query string, limit int) ([]string, error)

	// GetUser returns the public profile of login.
	GetUser(ctx context.Context, login string) (entities.GitHubUser, error)
}
