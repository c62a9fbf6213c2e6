package bridge

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BarkinBalci/aml-portal-bridge/internal/config"
	"github.com/BarkinBalci/aml-portal-bridge/internal/domain"
	"github.com/BarkinBalci/aml-portal-bridge/internal/repository/sqlite"
	"github.com/BarkinBalci/aml-portal-bridge/internal/source"
)

// stubReader serves canned source rows for end-to-end runs
type stubReader struct {
	clients   []source.Row
	addresses []source.Row
	phones    []source.Row
	ipLogs    []source.Row
	txs       []source.Row
	cases     []source.Row
	alerts    []source.Row
}

func (s *stubReader) Clients(context.Context) ([]source.Row, error)      { return s.clients, nil }
func (s *stubReader) Addresses(context.Context) ([]source.Row, error)    { return s.addresses, nil }
func (s *stubReader) Phones(context.Context) ([]source.Row, error)       { return s.phones, nil }
func (s *stubReader) IPLogs(context.Context) ([]source.Row, error)       { return s.ipLogs, nil }
func (s *stubReader) Transactions(context.Context) ([]source.Row, error) { return s.txs, nil }
func (s *stubReader) Cases(context.Context) ([]source.Row, error)        { return s.cases, nil }
func (s *stubReader) Alerts(context.Context) ([]source.Row, error)       { return s.alerts, nil }
func (s *stubReader) Ping(context.Context) error                         { return nil }
func (s *stubReader) Close() error                                       { return nil }

func TestRun_EndToEnd(t *testing.T) {
	cfg := &config.Config{TargetDBPath: filepath.Join(t.TempDir(), "portal.db")}
	log := zap.NewNop()

	client, err := sqlite.NewClient(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, client.Close()) })

	repo := sqlite.NewRepository(client, 100, log)

	reader := &stubReader{
		clients: []source.Row{
			{"client_id": 7, "risk_rating": "High Risk"},
		},
		txs: []source.Row{
			{"client_id": 7, "amount": nil, "currency": nil},
		},
		cases: []source.Row{
			{"client_id": 7, "case_id": nil},
		},
	}

	b := New(reader, repo, testOptions(), log)

	summary, err := b.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Counts.Clients)
	assert.Equal(t, int64(1), summary.Counts.RiskResults)
	assert.Equal(t, int64(1), summary.Counts.Transactions)
	assert.Equal(t, int64(1), summary.Counts.Cases)
	assert.Empty(t, summary.Skipped)

	db := client.DB()

	var migrated domain.Client
	require.NoError(t, db.First(&migrated).Error)
	assert.Equal(t, "C0000007", migrated.ClientID)

	var risk domain.RiskResult
	require.NoError(t, db.First(&risk).Error)
	assert.Equal(t, "C0000007", risk.ClientID)
	assert.Equal(t, 75.0, risk.RiskScore)

	var tx domain.Transaction
	require.NoError(t, db.First(&tx).Error)
	assert.Equal(t, "C0000007", tx.ClientID)
	assert.Equal(t, 0.0, tx.Amount)
	assert.Equal(t, "USD", tx.Currency)

	var c domain.Case
	require.NoError(t, db.First(&c).Error)
	assert.True(t, strings.HasPrefix(c.CaseID, "CASE-"))
	assert.Equal(t, "Open", c.Status)
}

func TestRun_TwiceYieldsIdenticalCounts(t *testing.T) {
	cfg := &config.Config{TargetDBPath: filepath.Join(t.TempDir(), "portal.db")}
	log := zap.NewNop()

	client, err := sqlite.NewClient(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, client.Close()) })

	repo := sqlite.NewRepository(client, 100, log)

	reader := &stubReader{
		clients: []source.Row{
			{"client_id": 1}, {"client_id": 2},
		},
		alerts: []source.Row{
			{"client_id": 1, "alert_id": "AL-KNOWN"},
			{"client_id": 2}, // alert id synthesized each run
		},
	}

	b := New(reader, repo, testOptions(), log)

	first, err := b.Run(context.Background())
	require.NoError(t, err)
	second, err := b.Run(context.Background())
	require.NoError(t, err)

	// full refresh: re-running against an unchanged source never
	// duplicates rows
	assert.Equal(t, first.Counts, second.Counts)
	assert.Equal(t, int64(2), second.Counts.Clients)
	assert.Equal(t, int64(2), second.Counts.Alerts)
}
