package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BarkinBalci/aml-portal-bridge/internal/config"
	"github.com/BarkinBalci/aml-portal-bridge/internal/domain"
	"github.com/BarkinBalci/aml-portal-bridge/internal/repository"
)

func testRepository(t *testing.T) *Repository {
	t.Helper()

	cfg := &config.Config{TargetDBPath: filepath.Join(t.TempDir(), "portal.db")}
	log := zap.NewNop()

	client, err := NewClient(cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, client.Close())
	})

	repo := NewRepository(client, 100, log)
	require.NoError(t, repo.InitSchema(context.Background()))
	return repo
}

func testClient(id string) domain.Client {
	return domain.Client{
		ClientID:        id,
		FullName:        "Test Client",
		DOB:             time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		Gender:          "X",
		Country:         "Unknown",
		City:            "Unknown",
		Segment:         "retail",
		Occupation:      "unknown",
		AccountOpenDate: time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC),
		RiskRating:      "Standard",
	}
}

func testRisk(id string) domain.RiskResult {
	return domain.RiskResult{
		ClientID:    id,
		RiskScore:   35.0,
		RuleHits:    map[string]any{},
		ModelReason: "Imported from production source",
		LastUpdated: time.Now().UTC(),
	}
}

func TestRepository_InsertAndCount(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	loaded, err := repo.InsertClients(ctx,
		[]domain.Client{testClient("C0000001"), testClient("C0000002")},
		[]domain.RiskResult{testRisk("C0000001"), testRisk("C0000002")})
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)

	loaded, err = repo.InsertCases(ctx, []domain.Case{{
		CaseID:   "CASE-1",
		ClientID: "C0000001",
		Status:   "Open",
		OpenedAt: time.Now().UTC(),
		Title:    "Imported case",
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)

	counts, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Clients)
	assert.Equal(t, int64(2), counts.RiskResults)
	assert.Equal(t, int64(1), counts.Cases)
}

func TestRepository_ResetClearsEverything(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	_, err := repo.InsertClients(ctx,
		[]domain.Client{testClient("C0000001")},
		[]domain.RiskResult{testRisk("C0000001")})
	require.NoError(t, err)

	_, err = repo.InsertAlerts(ctx, []domain.Alert{{
		AlertID:     "AL-1",
		ClientID:    "C0000001",
		Severity:    "Medium",
		Status:      "Open",
		CreatedAt:   time.Now().UTC(),
		Description: "Imported alert",
	}})
	require.NoError(t, err)

	require.NoError(t, repo.Reset(ctx))

	counts, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.Counts{}, counts)
}

func TestRepository_FullRefreshKeepsCountsStable(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	load := func() repository.Counts {
		require.NoError(t, repo.Reset(ctx))
		_, err := repo.InsertClients(ctx,
			[]domain.Client{testClient("C0000001")},
			[]domain.RiskResult{testRisk("C0000001")})
		require.NoError(t, err)

		counts, err := repo.Counts(ctx)
		require.NoError(t, err)
		return counts
	}

	first := load()
	second := load()
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), second.Clients)
}

func TestRepository_RunInTransactionRollsBack(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	_, err := repo.InsertClients(ctx,
		[]domain.Client{testClient("C0000001")},
		[]domain.RiskResult{testRisk("C0000001")})
	require.NoError(t, err)

	failed := errors.New("load failed midway")
	err = repo.RunInTransaction(ctx, func(bound repository.PortalRepository) error {
		if err := bound.Reset(ctx); err != nil {
			return err
		}
		if _, err := bound.InsertClients(ctx,
			[]domain.Client{testClient("C0000009")},
			[]domain.RiskResult{testRisk("C0000009")}); err != nil {
			return err
		}
		return failed
	})
	assert.ErrorIs(t, err, failed)

	// the failed run left the prior contents untouched
	counts, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Clients)
}

func TestRepository_InsertEmptyBatchIsNoOp(t *testing.T) {
	repo := testRepository(t)
	ctx := context.Background()

	loaded, err := repo.InsertTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded)

	loaded, err = repo.InsertClients(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded)
}
