package transform

import "time"

// Options enumerates every policy knob of the transformation, so runs
// are reproducible in tests without touching the process environment.
type Options struct {
	// DefaultDOB substitutes a missing or unparseable date of birth.
	DefaultDOB time.Time

	// HighRiskScore is assigned when the coerced risk rating starts
	// with "high" (case-insensitive); StandardRiskScore otherwise.
	// This banding is a placeholder heuristic, not a scored model.
	HighRiskScore     float64
	StandardRiskScore float64

	// RiskScoreFor, when set, replaces the banding entirely.
	RiskScoreFor func(riskRating string) float64

	// Now supplies the clock used for "defaults to now/today" fields.
	Now func() time.Time
}

// DefaultOptions returns the reference policy values
func DefaultOptions() Options {
	return Options{
		DefaultDOB:        time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		HighRiskScore:     75.0,
		StandardRiskScore: 35.0,
	}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now().UTC()
}

func (o Options) today() time.Time {
	t := o.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (o Options) riskScore(riskRating string) float64 {
	if o.RiskScoreFor != nil {
		return o.RiskScoreFor(riskRating)
	}
	if startsWithHigh(riskRating) {
		return o.HighRiskScore
	}
	return o.StandardRiskScore
}
