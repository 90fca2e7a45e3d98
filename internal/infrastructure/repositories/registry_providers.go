package repositories

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rios0rios0/npmtoys/internal/domain/entities"
	domainRepos "github.com/rios0rios0/npmtoys/internal/domain/repositories"
)

// RegistryFactory is a constructor function that creates a RegistryRepository from its settings.
type RegistryFactory func(settings entities.RegistrySettings) domainRepos.RegistryRepository

// RegistryProviders manages all registered package registry implementations.
type RegistryProviders struct {
	factories map[string]RegistryFactory
}

// NewRegistryProviders creates an empty registry provider set.
func NewRegistryProviders() *RegistryProviders {
	return &RegistryProviders{
		factories: make(map[string]RegistryFactory),
	}
}

// Register adds a registry factory under the given type (e.g. "npm").
func (r *RegistryProviders) Register(registryType string, factory RegistryFactory) {
	r.factories[registryType] = factory
}

// Get returns a configured registry client for the type named in the settings.
func (r *RegistryProviders) Get(settings entities.RegistrySettings) (domainRepos.RegistryRepository, error) {
	factory, ok := r.factories[settings.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)",
			entities.ErrUnknownRegistry, settings.Type, strings.Join(r.Types(), ", "))
	}
	return factory(settings), nil
}

// Types returns the registered registry types, sorted.
func (r *RegistryProviders) Types() []string {
	types := make([]string, 0, len(r.factories))
	for registryType := range r.factories {
		types = append(types, registryType)
	}
	slices.Sort(types)
	return types
}
