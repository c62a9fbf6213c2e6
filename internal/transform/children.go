package transform

import (
	"time"

	"github.com/BarkinBalci/aml-portal-bridge/internal/coerce"
	"github.com/BarkinBalci/aml-portal-bridge/internal/domain"
	"github.com/BarkinBalci/aml-portal-bridge/internal/identity"
	"github.com/BarkinBalci/aml-portal-bridge/internal/source"
)

// Address transforms one address row into an AddressHistory record
func (t *Transformer) Address(row source.Row) (*domain.AddressHistory, error) {
	cid, err := clientID(row)
	if err != nil {
		return nil, err
	}

	return &domain.AddressHistory{
		ClientID:    cid,
		AddressLine: coerce.String(row["address_line"], "", 160),
		City:        coerce.String(row["city"], "Unknown", 64),
		Country:     coerce.String(row["country"], "Unknown", 64),
		FromDate:    coerce.Date(row["from_date"], t.opts.today()),
		ToDate:      t.optionalDate(row["to_date"]),
	}, nil
}

// Phone transforms one phone row into a PhoneHistory record
func (t *Transformer) Phone(row source.Row) (*domain.PhoneHistory, error) {
	cid, err := clientID(row)
	if err != nil {
		return nil, err
	}

	return &domain.PhoneHistory{
		ClientID: cid,
		Phone:    coerce.String(row["phone"], "", 40),
		FromDate: coerce.Date(row["from_date"], t.opts.today()),
		ToDate:   t.optionalDate(row["to_date"]),
	}, nil
}

// Login transforms one ip_log row into a LoginActivity record
func (t *Transformer) Login(row source.Row) (*domain.LoginActivity, error) {
	cid, err := clientID(row)
	if err != nil {
		return nil, err
	}

	return &domain.LoginActivity{
		LoginID:    identity.LoginID(row["log_id"]),
		ClientID:   cid,
		IPAddress:  coerce.String(row["ip_address"], "0.0.0.0", 64),
		IPCountry:  coerce.String(row["ip_country"], "UNK", 8),
		Status:     coerce.String(row["status"], "success", 16),
		Channel:    coerce.String(row["channel"], "web", 24),
		LoggedInAt: coerce.DateTime(row["logged_in_at"], t.opts.now()),
	}, nil
}

// Transaction transforms one transactions row into a Transaction record
func (t *Transformer) Transaction(row source.Row) (*domain.Transaction, error) {
	cid, err := clientID(row)
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		TxID:           identity.TxID(row["tx_id"]),
		ClientID:       cid,
		CounterpartyID: coerce.String(row["counterparty_id"], "CP000000", 24),
		TxType:         coerce.String(row["tx_type"], "wire", 16),
		Direction:      coerce.String(row["direction"], "outgoing", 16),
		Amount:         coerce.Float(row["amount"]),
		Currency:       coerce.String(row["currency"], "USD", 8),
		Channel:        coerce.String(row["channel"], "web", 24),
		Country:        coerce.String(row["country"], "Unknown", 64),
		Timestamp:      coerce.DateTime(row["timestamp"], t.opts.now()),
		TypologyTags:   coerce.Tags(row["typology_tags"]),
	}, nil
}

// Case transforms one case row into a Case record
func (t *Transformer) Case(row source.Row) (*domain.Case, error) {
	cid, err := clientID(row)
	if err != nil {
		return nil, err
	}

	return &domain.Case{
		CaseID:   identity.CaseID(row["case_id"]),
		ClientID: cid,
		Status:   coerce.String(row["status"], "Open", 20),
		OpenedAt: coerce.DateTime(row["opened_at"], t.opts.now()),
		ClosedAt: t.optionalDateTime(row["closed_at"]),
		Title:    coerce.String(row["title"], "Imported case", 180),
	}, nil
}

// Alert transforms one alert row into an Alert record. The case link
// stays nil when the source has none; a real value is normalized the
// same way Case keys are, so the linkage survives the migration.
func (t *Transformer) Alert(row source.Row) (*domain.Alert, error) {
	cid, err := clientID(row)
	if err != nil {
		return nil, err
	}

	var caseID *string
	if v := row["case_id"]; v != nil && v != "" {
		normalized := identity.CaseID(v)
		caseID = &normalized
	}

	return &domain.Alert{
		AlertID:     identity.AlertID(row["alert_id"]),
		ClientID:    cid,
		CaseID:      caseID,
		Severity:    coerce.String(row["severity"], "Medium", 16),
		Status:      coerce.String(row["status"], "Open", 16),
		CreatedAt:   coerce.DateTime(row["created_at"], t.opts.now()),
		Description: coerce.String(row["description"], "Imported alert", 0),
	}, nil
}

func (t *Transformer) optionalDate(v any) *time.Time {
	if v == nil || v == "" {
		return nil
	}
	d := coerce.Date(v, t.opts.DefaultDOB)
	return &d
}

func (t *Transformer) optionalDateTime(v any) *time.Time {
	if v == nil || v == "" {
		return nil
	}
	d := coerce.DateTime(v, t.opts.now())
	return &d
}
