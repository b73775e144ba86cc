package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Events recorded by the
// aggregates it saw are published only after Commit succeeds.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and publishes collected events.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and any collected events.
	Rollback(ctx context.Context) error

	// JobRepository returns a repository bound to the current transaction.
	JobRepository() JobRepository

	// ProviderRepository returns a repository bound to the current transaction.
	ProviderRepository() ProviderRepository
}
