package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	domainRepos "github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// HostingFactory creates a HostingRepository from the hosting settings.
type HostingFactory func(settings entities.GitHubSettings) (domainRepos.HostingRepository, error)

// HostingRegistry manages all registered Git hosting implementations.
type HostingRegistry struct {
	factories map[string]HostingFactory
}

// NewHostingRegistry creates an empty hosting registry.
func NewHostingRegistry() *HostingRegistry {
	return &HostingRegistry{
		factories: make(map[string]HostingFactory),
	}
}

// Register adds a hosting factory under the given name (e.g. "github").
func (r *HostingRegistry) Register(name string, factory HostingFactory) {
	r.factories[name] = factory
}

// Get returns a configured hosting instance for settings.Type.
func (r *HostingRegistry) Get(settings entities.GitHubSettings) (domainRepos.HostingRepository, error) {
	factory, ok := r.factories[settings.Type]
	if !ok {
		return nil, fmt.Errorf("%w: hosting type %q", entities.ErrUnknownProvider, settings.Type)
	}
	return factory(settings)
}

// Names returns the sorted list of registered hosting names.
func (r *HostingRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
