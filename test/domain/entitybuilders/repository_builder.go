//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
)

// RepositoryBuilder helps create test repository descriptors with a fluent interface.
type RepositoryBuilder struct {
	*testkit.BaseBuilder
	owner     string
	name      string
	language  string
	isFork    bool
	updatedAt time.Time
}

// NewRepositoryBuilder creates a new repository builder with sensible defaults.
func NewRepositoryBuilder() *RepositoryBuilder {
	return &RepositoryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		owner:       "octo",
		name:        "infra",
		language:    "HCL",
		updatedAt:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithOwner sets the owner login.
func (b *RepositoryBuilder) WithOwner(owner string) *RepositoryBuilder {
	b.owner = owner
	return b
}

// WithName sets the repository name.
func (b *RepositoryBuilder) WithName(name string) *RepositoryBuilder {
	b.name = name
	return b
}

// WithLanguage sets the primary language.
func (b *RepositoryBuilder) WithLanguage(language string) *RepositoryBuilder {
	b.language = language
	return b
}

// AsFork marks the repository as a fork.
func (b *RepositoryBuilder) AsFork() *RepositoryBuilder {
	b.isFork = true
	return b
}

// WithUpdatedAt sets the last update time.
func (b *RepositoryBuilder) WithUpdatedAt(updatedAt time.Time) *RepositoryBuilder {
	b.updatedAt = updatedAt
	return b
}

// UpdatedDaysAgo sets the last update time relative to the builder's reference date.
func (b *RepositoryBuilder) UpdatedDaysAgo(days int) *RepositoryBuilder {
	b.updatedAt = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)
	return b
}

// Build creates the repository (satisfies testkit.Builder interface).
func (b *RepositoryBuilder) Build() interface{} {
	return b.BuildRepository()
}

// BuildRepository creates the repository with a concrete return type.
func (b *RepositoryBuilder) BuildRepository() entities.RepositoryDescriptor {
	return entities.RepositoryDescriptor{
		Owner:           b.owner,
		Name:            b.name,
		FullName:        b.owner + "/" + b.name,
		PrimaryLanguage: b.language,
		IsFork:          b.isFork,
		UpdatedAt:       b.updatedAt,
	}
}
