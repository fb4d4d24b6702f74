package services

import "go.uber.org/dig"

// RegisterProviders registers all service providers with the DIG container.
func RegisterProviders(_ *dig.Container) error {
	return nil // services need per-run settings and a hosting repository, built by commands
}
