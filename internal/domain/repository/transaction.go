package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so a load-mutate-save section observes a consistent pool.
type RepositoryFactory interface {
	// NewTemplateRepository returns a TemplateRepository bound to the current transaction.
	NewTemplateRepository() TemplateRepository

	// NewLocationRepository returns a LocationRepository bound to the current transaction.
	NewLocationRepository() LocationRepository
}
