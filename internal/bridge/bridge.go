// Package bridge sequences the migration run: extract every source
// entity class, transform row by row, and load the portal store in
// dependency order inside one transaction. Strictly sequential, no
// retries; a scheduler that wants retries wraps the process.
package bridge

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BarkinBalci/aml-portal-bridge/internal/domain"
	"github.com/BarkinBalci/aml-portal-bridge/internal/repository"
	"github.com/BarkinBalci/aml-portal-bridge/internal/source"
	"github.com/BarkinBalci/aml-portal-bridge/internal/transform"
)

// SkippedRow records one source row the run refused to migrate
type SkippedRow struct {
	Entity string
	Index  int
	Reason string
}

// Summary reports what one run loaded and what it skipped
type Summary struct {
	Counts  repository.Counts
	Skipped []SkippedRow
}

// SkippedByEntity groups the skip tally per entity class
func (s *Summary) SkippedByEntity() map[string]int {
	out := make(map[string]int)
	for _, skip := range s.Skipped {
		out[skip.Entity]++
	}
	return out
}

// extract holds the fully materialized source rows of one run
type extract struct {
	clients   []source.Row
	addresses []source.Row
	phones    []source.Row
	ipLogs    []source.Row
	txs       []source.Row
	cases     []source.Row
	alerts    []source.Row
}

// Bridge orchestrates one full-refresh migration run
type Bridge struct {
	reader      source.Reader
	repo        repository.PortalRepository
	transformer *transform.Transformer
	log         *zap.Logger
}

// New creates a bridge with explicit collaborators and policy options
func New(reader source.Reader, repo repository.PortalRepository, opts transform.Options, log *zap.Logger) *Bridge {
	return &Bridge{
		reader:      reader,
		repo:        repo,
		transformer: transform.New(opts),
		log:         log,
	}
}

// Run executes the migration: init schema, extract everything, then
// reset and load every entity class inside a single transaction.
// Clients and their risk results load first; children follow in fixed
// order. A store failure anywhere rolls the portal back untouched.
func (b *Bridge) Run(ctx context.Context) (*Summary, error) {
	if err := b.repo.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare portal schema: %w", err)
	}

	ext, err := b.extractAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}

	err = b.repo.RunInTransaction(ctx, func(repo repository.PortalRepository) error {
		if err := repo.Reset(ctx); err != nil {
			return err
		}
		return b.loadAll(ctx, repo, ext, summary)
	})
	if err != nil {
		return nil, fmt.Errorf("migration run failed: %w", err)
	}

	counts, err := b.repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count loaded rows: %w", err)
	}
	summary.Counts = counts

	b.log.Info("Migration run complete",
		zap.Int64("clients", counts.Clients),
		zap.Int64("transactions", counts.Transactions),
		zap.Int64("alerts", counts.Alerts),
		zap.Int64("cases", counts.Cases),
		zap.Int("skipped_rows", len(summary.Skipped)))

	return summary, nil
}

func (b *Bridge) extractAll(ctx context.Context) (*extract, error) {
	var ext extract

	for _, step := range []struct {
		entity string
		dest   *[]source.Row
		read   func(context.Context) ([]source.Row, error)
	}{
		{"clients", &ext.clients, b.reader.Clients},
		{"addresses", &ext.addresses, b.reader.Addresses},
		{"phones", &ext.phones, b.reader.Phones},
		{"ip_logs", &ext.ipLogs, b.reader.IPLogs},
		{"transactions", &ext.txs, b.reader.Transactions},
		{"cases", &ext.cases, b.reader.Cases},
		{"alerts", &ext.alerts, b.reader.Alerts},
	} {
		rows, err := step.read(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to extract %s: %w", step.entity, err)
		}
		*step.dest = rows
	}

	return &ext, nil
}

func (b *Bridge) loadAll(ctx context.Context, repo repository.PortalRepository, ext *extract, summary *Summary) error {
	clients, risks := b.transformClients(ext.clients, summary)
	loaded, err := repo.InsertClients(ctx, clients, risks)
	if err != nil {
		return err
	}
	b.log.Info("Loaded entity class", zap.String("entity", "clients"), zap.Int("row_count", loaded))

	addresses := transformRows(b, "addresses", ext.addresses, summary, b.transformer.Address)
	if _, err := repo.InsertAddresses(ctx, addresses); err != nil {
		return err
	}

	phones := transformRows(b, "phones", ext.phones, summary, b.transformer.Phone)
	if _, err := repo.InsertPhones(ctx, phones); err != nil {
		return err
	}

	logins := transformRows(b, "logins", ext.ipLogs, summary, b.transformer.Login)
	if _, err := repo.InsertLogins(ctx, logins); err != nil {
		return err
	}

	txs := transformRows(b, "transactions", ext.txs, summary, b.transformer.Transaction)
	if _, err := repo.InsertTransactions(ctx, txs); err != nil {
		return err
	}

	cases := transformRows(b, "cases", ext.cases, summary, b.transformer.Case)
	if _, err := repo.InsertCases(ctx, cases); err != nil {
		return err
	}

	alerts := transformRows(b, "alerts", ext.alerts, summary, b.transformer.Alert)
	if _, err := repo.InsertAlerts(ctx, alerts); err != nil {
		return err
	}

	return nil
}

// transformClients keeps the client/risk-result pairing intact: both
// records of a pair exist or neither does.
func (b *Bridge) transformClients(rows []source.Row, summary *Summary) ([]domain.Client, []domain.RiskResult) {
	clients := make([]domain.Client, 0, len(rows))
	risks := make([]domain.RiskResult, 0, len(rows))

	for i, row := range rows {
		client, risk, err := b.transformer.Client(row)
		if err != nil {
			b.skip(summary, "clients", i, err)
			continue
		}
		clients = append(clients, *client)
		risks = append(risks, *risk)
	}

	return clients, risks
}

// transformRows transforms one child entity class, skipping rows that
// lack their client linkage instead of failing the run
func transformRows[T any](b *Bridge, entity string, rows []source.Row, summary *Summary, fn func(source.Row) (*T, error)) []T {
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		record, err := fn(row)
		if err != nil {
			b.skip(summary, entity, i, err)
			continue
		}
		out = append(out, *record)
	}
	return out
}

func (b *Bridge) skip(summary *Summary, entity string, index int, err error) {
	summary.Skipped = append(summary.Skipped, SkippedRow{
		Entity: entity,
		Index:  index,
		Reason: err.Error(),
	})
	b.log.Warn("Skipping source row",
		zap.String("entity", entity),
		zap.Int("row_index", index),
		zap.String("reason", err.Error()))
}
