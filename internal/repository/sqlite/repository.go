package sqlite

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BarkinBalci/aml-portal-bridge/internal/domain"
	"github.com/BarkinBalci/aml-portal-bridge/internal/repository"
)

// Repository implements PortalRepository for the SQLite portal store
type Repository struct {
	db        *gorm.DB
	batchSize int
	log       *zap.Logger
}

// NewRepository creates a SQLite portal repository. batchSize bounds
// the rows per INSERT statement; atomicity is still per entity class.
func NewRepository(client *Client, batchSize int, log *zap.Logger) *Repository {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &Repository{
		db:        client.DB(),
		batchSize: batchSize,
		log:       log,
	}
}

// InitSchema creates the portal tables if they don't exist
func (r *Repository) InitSchema(ctx context.Context) error {
	err := r.db.WithContext(ctx).AutoMigrate(
		&domain.Client{},
		&domain.RiskResult{},
		&domain.AddressHistory{},
		&domain.PhoneHistory{},
		&domain.LoginActivity{},
		&domain.Transaction{},
		&domain.Case{},
		&domain.Alert{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate portal schema: %w", err)
	}

	r.log.Info("Portal schema initialized successfully")
	return nil
}

// RunInTransaction runs fn against a transaction-bound repository, so
// reset and every entity-class load commit or roll back together
func (r *Repository) RunInTransaction(ctx context.Context, fn func(repository.PortalRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bound := &Repository{db: tx, batchSize: r.batchSize, log: r.log}
		return fn(bound)
	})
}

// Reset deletes all prior portal rows, children before parents
func (r *Repository) Reset(ctx context.Context) error {
	models := []interface{}{
		&domain.Alert{},
		&domain.Case{},
		&domain.LoginActivity{},
		&domain.Transaction{},
		&domain.PhoneHistory{},
		&domain.AddressHistory{},
		&domain.RiskResult{},
		&domain.Client{},
	}

	for _, model := range models {
		if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to reset portal table: %w", err)
		}
	}

	r.log.Info("Portal store reset for full refresh")
	return nil
}

// InsertClients inserts clients together with their derived risk
// results; the pair persists as one batch
func (r *Repository) InsertClients(ctx context.Context, clients []domain.Client, risks []domain.RiskResult) (int, error) {
	if len(clients) == 0 {
		return 0, nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(clients, r.batchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to insert clients: %w", err)
	}
	if err := r.db.WithContext(ctx).CreateInBatches(risks, r.batchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to insert risk results: %w", err)
	}

	return len(clients), nil
}

// InsertAddresses inserts a batch of address history rows
func (r *Repository) InsertAddresses(ctx context.Context, batch []domain.AddressHistory) (int, error) {
	return insertBatch(ctx, r, "address history", batch)
}

// InsertPhones inserts a batch of phone history rows
func (r *Repository) InsertPhones(ctx context.Context, batch []domain.PhoneHistory) (int, error) {
	return insertBatch(ctx, r, "phone history", batch)
}

// InsertLogins inserts a batch of login activity rows
func (r *Repository) InsertLogins(ctx context.Context, batch []domain.LoginActivity) (int, error) {
	return insertBatch(ctx, r, "login activity", batch)
}

// InsertTransactions inserts a batch of transaction rows
func (r *Repository) InsertTransactions(ctx context.Context, batch []domain.Transaction) (int, error) {
	return insertBatch(ctx, r, "transactions", batch)
}

// InsertCases inserts a batch of case rows
func (r *Repository) InsertCases(ctx context.Context, batch []domain.Case) (int, error) {
	return insertBatch(ctx, r, "cases", batch)
}

// InsertAlerts inserts a batch of alert rows
func (r *Repository) InsertAlerts(ctx context.Context, batch []domain.Alert) (int, error) {
	return insertBatch(ctx, r, "alerts", batch)
}

func insertBatch[T any](ctx context.Context, r *Repository, name string, batch []T) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(batch, r.batchSize).Error; err != nil {
		return 0, fmt.Errorf("failed to insert %s: %w", name, err)
	}

	return len(batch), nil
}

// Counts reports the current per-entity-class row counts
func (r *Repository) Counts(ctx context.Context) (repository.Counts, error) {
	var counts repository.Counts

	for _, c := range []struct {
		model interface{}
		dest  *int64
	}{
		{&domain.Client{}, &counts.Clients},
		{&domain.RiskResult{}, &counts.RiskResults},
		{&domain.AddressHistory{}, &counts.Addresses},
		{&domain.PhoneHistory{}, &counts.Phones},
		{&domain.LoginActivity{}, &counts.Logins},
		{&domain.Transaction{}, &counts.Transactions},
		{&domain.Case{}, &counts.Cases},
		{&domain.Alert{}, &counts.Alerts},
	} {
		if err := r.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return counts, fmt.Errorf("failed to count portal rows: %w", err)
		}
	}

	return counts, nil
}

// Ping checks if the portal store is reachable
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access portal store connection: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close is a no-op; the owning Client closes the shared connection
func (r *Repository) Close() error {
	return nil
}
