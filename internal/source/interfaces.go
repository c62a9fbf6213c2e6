package source

import "context"

// Row is one raw source record, column name to raw value, exactly as
// the driver returned it. Coercion happens downstream.
type Row = map[string]interface{}

// Reader defines the extraction interface over the fixed source
// schema. Each method reads one entity class in full; there is no
// paging, so memory is bounded by the largest table.
type Reader interface {
	// Clients reads all rows from client_information
	Clients(ctx context.Context) ([]Row, error)

	// Addresses reads all rows from address
	Addresses(ctx context.Context) ([]Row, error)

	// Phones reads all rows from phone
	Phones(ctx context.Context) ([]Row, error)

	// IPLogs reads all rows from ip_log
	IPLogs(ctx context.Context) ([]Row, error)

	// Transactions reads all rows from transactions
	Transactions(ctx context.Context) ([]Row, error)

	// Cases reads all rows from case
	Cases(ctx context.Context) ([]Row, error)

	// Alerts reads all rows from alert
	Alerts(ctx context.Context) ([]Row, error)

	// Ping checks if the source connection is alive
	Ping(ctx context.Context) error

	// Close closes the reader and releases resources
	Close() error
}
