package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// UsernameResolver finds the hosting account of a person by searching for their
// name and verifying each candidate's profile. At most maxAttempts profiles are
// verified per call.
type UsernameResolver struct {
	hosting     repositories.HostingRepository
	maxAttempts int
}

// NewUsernameResolver creates a resolver with a hard cap on verified candidates.
func NewUsernameResolver(hosting repositories.HostingRepository, maxAttempts int) *UsernameResolver {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &UsernameResolver{hosting: hosting, maxAttempts: maxAttempts}
}

// Resolve returns the first candidate whose profile verifies against fullName and,
// when given, company. With a company the company is the proof of identity; without
// one the profile name must match fullName.
func (it *UsernameResolver) Resolve(ctx context.Context, fullName, company string) (entities.GitHubUser, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return entities.GitHubUser{}, fmt.Errorf("%w: empty name", entities.ErrUsernameNotFound)
	}

	query := fmt.Sprintf("%q in:name type:user", fullName)
	logins, err := it.hosting.SearchUsers(ctx, query, it.maxAttempts)
	if err != nil {
		return entities.GitHubUser{}, fmt.Errorf("failed to search users for %q: %w", fullName, err)
	}

	attempts := 0
	for _, login := range logins {
		if attempts >= it.maxAttempts {
			break
		}
		attempts++

		user, userErr := it.hosting.GetUser(ctx, login)
		if userErr != nil {
			logger.Warnf("Failed to get details of %q: %v", login, userErr)
			continue
		}
		if verifies(user, fullName, company) {
			logger.Debugf("Github username found: %s", user.Username)
			return user, nil
		}
		logger.Debugf("Candidate %q does not match %q (company %q)", login, fullName, company)
	}

	return entities.GitHubUser{}, fmt.Errorf(
		"%w: %q after %d attempts", entities.ErrUsernameNotFound, fullName, attempts,
	)
}

func verifies(user entities.GitHubUser, fullName, company string) bool {
	if user.Username == "" {
		return false
	}
	company = normalizeCompany(company)
	if company != "" {
		return strings.Contains(normalizeCompany(user.Company), company)
	}
	return strings.EqualFold(strings.TrimSpace(user.Name), fullName)
}

func normalizeCompany(company string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(company), "@"))
}

// IsUsernameNotFound reports whether err means no account could be verified.
func IsUsernameNotFound(err error) bool {
	return errors.Is(err, entities.ErrUsernameNotFound)
}
