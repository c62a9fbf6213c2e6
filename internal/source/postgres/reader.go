package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BarkinBalci/aml-portal-bridge/internal/source"
)

// Reader implements source.Reader against a Postgres source database.
// The source schema is fixed and given; every query names its columns
// explicitly so a schema drift fails loudly instead of migrating
// garbage.
type Reader struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewReader connects to the source database with the given DSN
func NewReader(dsn string, log *zap.Logger) (*Reader, error) {
	log.Info("Connecting to source database")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to source database: %w", err)
	}

	log.Info("Source database connection established")

	return &Reader{db: db, log: log}, nil
}

const clientsQuery = `
	SELECT
	  c.client_id,
	  c.full_name,
	  c.dob,
	  c.gender,
	  c.country,
	  c.city,
	  c.segment,
	  c.occupation,
	  c.annual_income,
	  c.account_open_date,
	  c.pep_flag,
	  c.sanctions_flag,
	  c.profile_text,
	  c.risk_rating
	FROM client_information c
`

const addressesQuery = `
	SELECT
	  a.client_id,
	  a.address_line,
	  a.city,
	  a.country,
	  a.from_date,
	  a.to_date
	FROM address a
`

const phonesQuery = `
	SELECT
	  p.client_id,
	  p.phone,
	  p.from_date,
	  p.to_date
	FROM phone p
`

const ipLogsQuery = `
	SELECT
	  l.log_id,
	  l.client_id,
	  l.ip_address,
	  l.ip_country,
	  l.status,
	  l.channel,
	  l.logged_in_at
	FROM ip_log l
`

const transactionsQuery = `
	SELECT
	  t.tx_id,
	  t.client_id,
	  t.counterparty_id,
	  t.tx_type,
	  t.direction,
	  t.amount,
	  t.currency,
	  t.channel,
	  t.country,
	  t.timestamp,
	  t.typology_tags
	FROM transactions t
`

// case is a reserved word, so the table name is quoted
const casesQuery = `
	SELECT
	  c.case_id,
	  c.client_id,
	  c.status,
	  c.opened_at,
	  c.closed_at,
	  c.title
	FROM "case" c
`

const alertsQuery = `
	SELECT
	  a.alert_id,
	  a.client_id,
	  a.case_id,
	  a.severity,
	  a.status,
	  a.created_at,
	  a.description
	FROM alert a
`

// Clients reads all rows from client_information
func (r *Reader) Clients(ctx context.Context) ([]source.Row, error) {
	return r.query(ctx, "client_information", clientsQuery)
}

// Addresses reads all rows from address
func (r *Reader) Addresses(ctx context.Context) ([]source.Row, error) {
	return r.query(ctx, "address", addressesQuery)
}

// Phones reads all rows from phone
func (r *Reader) Phones(ctx context.Context) ([]source.Row, error) {
	return r.query(ctx, "phone", phonesQuery)
}

// IPLogs reads all rows from ip_log
func (r *Reader) IPLogs(ctx context.Context) ([]source.Row, error) {
	return r.query(ctx, "ip_log", ipLogsQuery)
}

// Transactions reads all rows from transactions
func (r *Reader) Transactions(ctx context.Context) ([]source.Row, error) {
	return r.query(ctx, "transactions", transactionsQuery)
}

// Cases reads all rows from case
func (r *Reader) Cases(ctx context.Context) ([]source.Row, error) {
	return r.query(ctx, "case", casesQuery)
}

// Alerts reads all rows from alert
func (r *Reader) Alerts(ctx context.Context) ([]source.Row, error) {
	return r.query(ctx, "alert", alertsQuery)
}

func (r *Reader) query(ctx context.Context, table, sql string) ([]source.Row, error) {
	var rows []source.Row
	if err := r.db.WithContext(ctx).Raw(sql).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	r.log.Info("Extracted source rows",
		zap.String("table", table),
		zap.Int("row_count", len(rows)))

	return rows, nil
}

// Ping checks if the source connection is alive
func (r *Reader) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access source connection: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the source connection
func (r *Reader) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access source connection: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close source connection: %w", err)
	}
	r.log.Info("Source database connection closed")
	return nil
}
