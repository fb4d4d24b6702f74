package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	domainRepos "github.com/rios0rios0/iacreport/internal/domain/repositories"
)

// GeneratorFactory creates a ReportGeneratorRepository from the LLM settings.
type GeneratorFactory func(ctx context.Context, settings entities.LLMSettings) (domainRepos.ReportGeneratorRepository, error)

// GeneratorRegistry manages all registered report generators.
type GeneratorRegistry struct {
	factories map[string]GeneratorFactory
}

// NewGeneratorRegistry creates an empty generator registry.
func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{
		factories: make(map[string]GeneratorFactory),
	}
}

// Register adds a generator factory under the given name (e.g. "gemini").
func (r *GeneratorRegistry) Register(name string, factory GeneratorFactory) {
	r.factories[name] = factory
}

// Get returns a configured generator for name.
func (r *GeneratorRegistry) Get(
	ctx context.Context,
	name string,
	settings entities.LLMSettings,
) (domainRepos.ReportGeneratorRepository, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: report generator %q", entities.ErrUnknownProvider, name)
	}
	return factory(ctx, settings)
}

// Names returns the sorted list of registered generator names.
func (r *GeneratorRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
