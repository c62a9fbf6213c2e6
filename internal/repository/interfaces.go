package repository

import (
	"context"

	"github.com/BarkinBalci/aml-portal-bridge/internal/domain"
)

// Counts holds per-entity-class row counts of the portal store
type Counts struct {
	Clients      int64
	RiskResults  int64
	Addresses    int64
	Phones       int64
	Logins       int64
	Transactions int64
	Cases        int64
	Alerts       int64
}

// PortalRepository defines the interface for portal store operations.
// Each Insert call is one entity-class batch; wrapping the calls in
// RunInTransaction gives the run its all-or-nothing guarantee.
type PortalRepository interface {
	// InitSchema initializes the portal schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// RunInTransaction runs fn against a transaction-bound repository.
	// An error from fn rolls back everything fn wrote.
	RunInTransaction(ctx context.Context, fn func(PortalRepository) error) error

	// Reset deletes all prior rows of every migrated entity class,
	// children before parents (full-refresh semantics)
	Reset(ctx context.Context) error

	// InsertClients inserts clients together with their derived risk results
	InsertClients(ctx context.Context, clients []domain.Client, risks []domain.RiskResult) (int, error)

	// InsertAddresses inserts a batch of address history rows
	InsertAddresses(ctx context.Context, batch []domain.AddressHistory) (int, error)

	// InsertPhones inserts a batch of phone history rows
	InsertPhones(ctx context.Context, batch []domain.PhoneHistory) (int, error)

	// InsertLogins inserts a batch of login activity rows
	InsertLogins(ctx context.Context, batch []domain.LoginActivity) (int, error)

	// InsertTransactions inserts a batch of transaction rows
	InsertTransactions(ctx context.Context, batch []domain.Transaction) (int, error)

	// InsertCases inserts a batch of case rows
	InsertCases(ctx context.Context, batch []domain.Case) (int, error)

	// InsertAlerts inserts a batch of alert rows
	InsertAlerts(ctx context.Context, batch []domain.Alert) (int, error)

	// Counts reports the current per-entity-class row counts
	Counts(ctx context.Context) (Counts, error)

	// Ping checks if the portal store is reachable
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}
