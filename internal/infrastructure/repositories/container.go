package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/iacreport/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/iacreport/internal/infrastructure/repositories/filesystem"
	gmRepo "github.com/rios0rios0/iacreport/internal/infrastructure/repositories/gemini"
	ghRepo "github.com/rios0rios0/iacreport/internal/infrastructure/repositories/github"
	stRepo "github.com/rios0rios0/iacreport/internal/infrastructure/repositories/static"
	tfRepo "github.com/rios0rios0/iacreport/internal/infrastructure/repositories/terraform"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register hosting registry with all hosting factories
	if err := container.Provide(func() *HostingRegistry {
		reg := NewHostingRegistry()
		reg.Register("github", ghRepo.NewHostingRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register generator registry with all report generators
	if err := container.Provide(func() *GeneratorRegistry {
		reg := NewGeneratorRegistry()
		reg.Register("gemini", gmRepo.NewReportGeneratorRepository)
		reg.Register("static", stRepo.NewReportGeneratorRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.AnalyzerRepository {
		return tfRepo.NewAnalyzerRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.ReportStorageRepository {
		return fsRepo.NewReportStorageRepository()
	}); err != nil {
		return err
	}

	return nil
}
