//go:build unit

package commands_test

import (
	"context"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	"github.com/rios0rios0/iacreport/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/iacreport/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/iacreport/test/infrastructure/repositorydoubles"
)

// newAccount builds the "octo" account with two HCL repositories and one fork.
func newAccount() *doubles.StubHostingRepository {
	hosting := doubles.NewStubHostingRepository().
		WithDirectory("octo/network", "", doubles.FileEntry("main.tf"), doubles.FileEntry("outputs.tf")).
		WithDirectory("octo/cluster", "", doubles.FileEntry("main.tf")).
		WithFile("octo/network", "main.tf", `resource "aws_vpc" "this" {}`).
		WithFile("octo/network", "outputs.tf", `output "id" {}`).
		WithFile("octo/cluster", "main.tf", `module "eks" {}`)
	hosting.Pages[0] = entities.RepositoryPage{Repositories: []entities.RepositoryDescriptor{
		{Owner: "octo", Name: "network", FullName: "octo/network", PrimaryLanguage: "HCL"},
		{Owner: "octo", Name: "cluster", FullName: "octo/cluster", PrimaryLanguage: "HCL"},
		{Owner: "octo", Name: "upstream", FullName: "octo/upstream", PrimaryLanguage: "HCL", IsFork: true},
	}}
	hosting.SearchResults = []string{"octo"}
	hosting.Users["octo"] = entities.GitHubUser{Username: "octo", Name: "Octo Cat", Company: "Acme"}
	return hosting
}

func hostingRegistryFor(hosting repositories.HostingRepository) *infraRepos.HostingRegistry {
	registry := infraRepos.NewHostingRegistry()
	registry.Register("github", func(_ entities.GitHubSettings) (repositories.HostingRepository, error) {
		return hosting, nil
	})
	return registry
}

func generatorRegistryFor(generators map[string]repositories.ReportGeneratorRepository) *infraRepos.GeneratorRegistry {
	registry := infraRepos.NewGeneratorRegistry()
	for name, generator := range generators {
		registry.Register(name, func(
			_ context.Context,
			_ entities.LLMSettings,
		) (repositories.ReportGeneratorRepository, error) {
			return generator, nil
		})
	}
	return registry
}
