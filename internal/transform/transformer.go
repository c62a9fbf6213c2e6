// Package transform maps raw source rows onto portal records, one
// transformer method per entity class. Malformed field values never
// fail a row; they degrade to the entity's defaults. The only
// rejection is a row with no client_id at all, which loses its primary
// linkage and is skipped by the orchestrator with a recorded reason.
package transform

import (
	"errors"
	"strings"

	"github.com/BarkinBalci/aml-portal-bridge/internal/coerce"
	"github.com/BarkinBalci/aml-portal-bridge/internal/domain"
	"github.com/BarkinBalci/aml-portal-bridge/internal/identity"
	"github.com/BarkinBalci/aml-portal-bridge/internal/source"
)

// ErrMissingClientID marks a source row without its primary linkage
var ErrMissingClientID = errors.New("source row has no client_id")

// Transformer converts raw source rows into portal records
type Transformer struct {
	opts Options
}

// New creates a transformer with the given policy options
func New(opts Options) *Transformer {
	return &Transformer{opts: opts}
}

// Client transforms one client_information row into a Client plus its
// derived RiskResult. The pair is inseparable: a risk result exists
// for exactly one client and is created alongside it.
func (t *Transformer) Client(row source.Row) (*domain.Client, *domain.RiskResult, error) {
	cid, err := clientID(row)
	if err != nil {
		return nil, nil, err
	}

	client := &domain.Client{
		ClientID:        cid,
		FullName:        coerce.String(row["full_name"], "Unknown Client", 120),
		DOB:             coerce.Date(row["dob"], t.opts.DefaultDOB),
		Gender:          coerce.String(row["gender"], "X", 16),
		Country:         coerce.String(row["country"], "Unknown", 64),
		City:            coerce.String(row["city"], "Unknown", 64),
		Segment:         coerce.String(row["segment"], "retail", 40),
		Occupation:      coerce.String(row["occupation"], "unknown", 80),
		AnnualIncome:    coerce.Float(row["annual_income"]),
		AccountOpenDate: coerce.Date(row["account_open_date"], t.opts.today()),
		PEPFlag:         coerce.Flag(row["pep_flag"]),
		SanctionsFlag:   coerce.Flag(row["sanctions_flag"]),
		ProfileText:     coerce.String(row["profile_text"], "", 0),
		RiskRating:      coerce.String(row["risk_rating"], "Standard", 16),
	}

	risk := &domain.RiskResult{
		ClientID:    cid,
		RiskScore:   t.opts.riskScore(client.RiskRating),
		RuleHits:    map[string]any{},
		ModelReason: "Imported from production source",
		LastUpdated: t.opts.now(),
	}

	return client, risk, nil
}

// clientID extracts and normalizes the required primary linkage. An
// absent or nil client_id column rejects the row.
func clientID(row source.Row) (string, error) {
	v, ok := row["client_id"]
	if !ok || v == nil {
		return "", ErrMissingClientID
	}
	return identity.ClientID(v), nil
}

func startsWithHigh(riskRating string) bool {
	return strings.HasPrefix(strings.ToLower(riskRating), "high")
}
