package repository

import (
	"context"
)

// RepositoryFactory creates repository instances bound to a specific
// transaction so that all operations inside a unit of work share the same
// database session.
type RepositoryFactory interface {
	// NewCatalogRepository creates a transaction-bound catalog repository.
	NewCatalogRepository() CatalogRepository

	// NewCartRepository creates a transaction-bound cart repository.
	NewCartRepository() CartRepository

	// NewOrderRepository creates a transaction-bound order repository.
	NewOrderRepository() OrderRepository

	// NewPaymentRepository creates a transaction-bound payment repository.
	NewPaymentRepository() PaymentRepository
}

// TransactionManager manages database transactions across repositories.
type TransactionManager interface {
	// Execute runs the given function within a single database transaction.
	// The function receives a RepositoryFactory whose repositories all share
	// the transaction. Any error returned by fn rolls the transaction back;
	// a nil return commits it.
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}
