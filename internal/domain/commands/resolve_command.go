package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rios0rios0/iacreport/internal/domain/entities"
	infraRepos "github.com/rios0rios0/iacreport/internal/infrastructure/repositories"
)

// Resolve is the interface for the resolve command.
type Resolve interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ResolveOptions) error
}

// ResolveOptions holds runtime options for a username resolution.
type ResolveOptions struct {
	Search  string
	Company string
	Output  io.Writer
}

// ResolveCommand resolves a person's full name to a hosting username.
type ResolveCommand struct {
	hostingRegistry *infraRepos.HostingRegistry
}

// NewResolveCommand creates a new ResolveCommand.
func NewResolveCommand(hostingRegistry *infraRepos.HostingRegistry) *ResolveCommand {
	return &ResolveCommand{hostingRegistry: hostingRegistry}
}

// Execute writes the resolved username to opts.Output.
func (it *ResolveCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ResolveOptions,
) error {
	hosting, err := it.hostingRegistry.Get(settings.GitHub)
	if err != nil {
		return fmt.Errorf("failed to initialize hosting %q: %w", settings.GitHub.Type, err)
	}

	username, err := resolveUsername(ctx, hosting, settings, opts.Search, "", opts.Company)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(opts.Output, username)
	return err
}
