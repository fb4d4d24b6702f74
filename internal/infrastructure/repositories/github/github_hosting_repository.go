package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	gh "github.com/google/go-github/v66/github"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

const (
	providerName   = "github"
	defaultAPIURL  = "https://api.github.com"
	defaultPerPage = 100
	maxPerPage     = 100
	cacheSize      = 1024
	rateBurst      = 5
)

// HostingRepository implements repositories.HostingRepository for the GitHub REST API.
// Every request waits on a shared rate limiter; directory listings and file contents
// are cached for the lifetime of the instance, which is a single run.
type HostingRepository struct {
	client      *gh.Client
	limiter     *rate.Limiter
	perPage     int
	directories *lru.Cache[string, []entities.DirectoryEntry]
	contents    *lru.Cache[string, string]
}

// NewHostingRepository creates a GitHub client from settings. An empty token sends
// unauthenticated requests; it is not validated here.
func NewHostingRepository(settings entities.GitHubSettings) (repositories.HostingRepository, error) {
	var httpClient *http.Client
	if settings.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: settings.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	client := gh.NewClient(httpClient)
	if err := applyBaseURL(client, settings.BaseURL); err != nil {
		return nil, err
	}

	limit := rate.Inf
	if settings.RequestsPerSecond > 0 {
		limit = rate.Limit(settings.RequestsPerSecond)
	}

	perPage := settings.PerPage
	if perPage <= 0 || perPage > maxPerPage {
		perPage = defaultPerPage
	}

	directories, err := lru.New[string, []entities.DirectoryEntry](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory cache: %w", err)
	}
	contents, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create content cache: %w", err)
	}

	return &HostingRepository{
		client:      client,
		limiter:     rate.NewLimiter(limit, rateBurst),
		perPage:     perPage,
		directories: directories,
		contents:    contents,
	}, nil
}

func (it *HostingRepository) Name() string { return providerName }

// ListUserRepositories lists one page of /users/{username}/repos. The next page is
// taken from the Link header.
func (it *HostingRepository) ListUserRepositories(
	ctx context.Context,
	username string,
	page int,
) (entities.RepositoryPage, error) {
	if err := it.wait(ctx); err != nil {
		return entities.RepositoryPage{}, err
	}

	opts := &gh.RepositoryListByUserOptions{
		Type:        "owner",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{Page: page, PerPage: it.perPage},
	}
	repos, resp, err := it.client.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return entities.RepositoryPage{}, fmt.Errorf(
			"%w: failed to list repositories of %q: %w", entities.ErrHostingRequest, username, err,
		)
	}

	result := entities.RepositoryPage{
		Repositories: make([]entities.RepositoryDescriptor, 0, len(repos)),
	}
	for _, r := range repos {
		result.Repositories = append(result.Repositories, entities.RepositoryDescriptor{
			Owner:           r.GetOwner().GetLogin(),
			Name:            r.GetName(),
			FullName:        r.GetFullName(),
			PrimaryLanguage: r.GetLanguage(),
			IsFork:          r.GetFork(),
			UpdatedAt:       r.GetUpdatedAt().Time,
		})
	}
	if resp != nil {
		result.NextPage = resp.NextPage
	}
	return result, nil
}

// ListDirectory lists path through the contents API.
func (it *HostingRepository) ListDirectory(
	ctx context.Context,
	owner, repo, path string,
) ([]entities.DirectoryEntry, error) {
	key := owner + "/" + repo + "/" + path
	if cached, ok := it.directories.Get(key); ok {
		return cached, nil
	}

	if err := it.wait(ctx); err != nil {
		return nil, err
	}

	fileContent, dirContent, _, err := it.client.Repositories.GetContents(
		ctx, owner, repo, path, &gh.RepositoryContentGetOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: failed to list %q in %s/%s: %w", entities.ErrHostingRequest, path, owner, repo, err,
		)
	}
	if fileContent != nil {
		return nil, fmt.Errorf("%w: path %q is a file, not a directory", entities.ErrHostingRequest, path)
	}

	entries := make([]entities.DirectoryEntry, 0, len(dirContent))
	for _, c := range dirContent {
		entries = append(entries, entities.DirectoryEntry{
			Name: c.GetName(),
			Path: c.GetPath(),
			Type: c.GetType(),
		})
	}

	it.directories.Add(key, entries)
	return entries, nil
}

// GetFileContent fetches and base64-decodes a file. The decoded bytes must be UTF-8.
func (it *HostingRepository) GetFileContent(ctx context.Context, fullName, path string) (string, error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" {
		return "", fmt.Errorf("%w: invalid repository full name %q", entities.ErrHostingRequest, fullName)
	}

	key := fullName + "/" + path
	if cached, found := it.contents.Get(key); found {
		return cached, nil
	}

	if err := it.wait(ctx); err != nil {
		return "", err
	}

	fileContent, _, _, err := it.client.Repositories.GetContents(
		ctx, owner, repo, path, &gh.RepositoryContentGetOptions{},
	)
	if err != nil {
		return "", fmt.Errorf("%w: failed to get file %q: %w", entities.ErrHostingRequest, path, err)
	}
	if fileContent == nil {
		return "", fmt.Errorf("%w: path %q is a directory, not a file", entities.ErrHostingRequest, path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("%w: failed to decode file %q: %w", entities.ErrContentDecode, path, err)
	}
	if !utf8.ValidString(content) {
		return "", fmt.Errorf("%w: file %q is not valid UTF-8", entities.ErrContentDecode, path)
	}

	it.contents.Add(key, content)
	return content, nil
}

// SearchUsers runs a user search and returns at most limit logins in ranking order.
func (it *HostingRepository) SearchUsers(ctx context.Context, query string, limit int) ([]string, error) {
	if err := it.wait(ctx); err != nil {
		return nil, err
	}

	perPage := limit
	if perPage <= 0 || perPage > maxPerPage {
		perPage = maxPerPage
	}
	result, _, err := it.client.Search.Users(ctx, query, &gh.SearchOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to search users: %w", entities.ErrHostingRequest, err)
	}

	logins := make([]string, 0, len(result.Users))
	for _, u := range result.Users {
		if limit > 0 && len(logins) >= limit {
			break
		}
		logins = append(logins, u.GetLogin())
	}
	return logins, nil
}

// GetUser returns the public profile of login.
func (it *HostingRepository) GetUser(ctx context.Context, login string) (entities.GitHubUser, error) {
	if err := it.wait(ctx); err != nil {
		return entities.GitHubUser{}, err
	}

	user, _, err := it.client.Users.Get(ctx, login)
	if err != nil {
		return entities.GitHubUser{}, fmt.Errorf(
			"%w: failed to get user %q: %w", entities.ErrHostingRequest, login, err,
		)
	}

	return entities.GitHubUser{
		Username: user.GetLogin(),
		Name:     user.GetName(),
		Company:  user.GetCompany(),
		Bio:      user.GetBio(),
	}, nil
}

func (it *HostingRepository) wait(ctx context.Context) error {
	if err := it.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %w", entities.ErrHostingRequest, err)
	}
	return nil
}

func applyBaseURL(client *gh.Client, baseURL string) error {
	if baseURL == "" || baseURL == defaultAPIURL {
		return nil
	}
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return fmt.Errorf("failed to parse GitHub base URL %q: %w", baseURL, err)
	}
	client.BaseURL = u
	return nil
}
