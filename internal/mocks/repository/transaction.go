package repository

import (
	"context"

	domainrepo "pantry/internal/domain/repository"
)

// StubTransactionManager runs the callback against a fixed factory without a
// real transaction, so use case tests can exercise transactional sections
// with plain mocks.
type StubTransactionManager struct {
	Factory domainrepo.RepositoryFactory
}

func (m *StubTransactionManager) Execute(_ context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// StubRepositoryFactory hands out the repositories it was built with.
type StubRepositoryFactory struct {
	TemplateRepo domainrepo.TemplateRepository
	LocationRepo domainrepo.LocationRepository
}

func (f *StubRepositoryFactory) NewTemplateRepository() domainrepo.TemplateRepository {
	return f.TemplateRepo
}

func (f *StubRepositoryFactory) NewLocationRepository() domainrepo.LocationRepository {
	return f.LocationRepo
}
