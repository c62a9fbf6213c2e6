// Package identity maps source identifiers onto the portal's canonical
// key formats, synthesizing prefixed replacements when the source has
// none. Normalization is deterministic and idempotent; synthesis is
// deliberately not, and its prefixes (CASE-, LG-, AL-) are disjoint
// from real source identifiers so backfilled records stay
// distinguishable.
package identity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	clientIDPrefix = "C"
	clientIDDigits = 7

	caseIDMax  = 40
	loginIDMax = 40
	txIDMax    = 32
	alertIDMax = 40
)

// ClientID normalizes a raw client identifier to the canonical
// C-prefixed, zero-padded form. An already-canonical value is returned
// unchanged, so re-application never diverges.
func ClientID(v any) string {
	s := strings.TrimSpace(stringify(v))
	if strings.HasPrefix(s, clientIDPrefix) {
		return s
	}
	return clientIDPrefix + zeroPad(s, clientIDDigits)
}

// CaseID normalizes a raw case identifier, synthesizing a fresh
// CASE-prefixed one when the source value is empty or absent.
func CaseID(v any) string {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return "CASE-" + hexToken(20)
	}
	return truncate(s, caseIDMax)
}

// LoginID normalizes a raw login identifier, synthesizing an
// LG-prefixed one when absent.
func LoginID(v any) string {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return "LG-" + hexToken(24)
	}
	return truncate(s, loginIDMax)
}

// TxID normalizes a raw transaction identifier, synthesizing a bare
// hex token when absent.
func TxID(v any) string {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return hexToken(32)
	}
	return truncate(s, txIDMax)
}

// AlertID normalizes a raw alert identifier, synthesizing an
// AL-prefixed one when absent.
func AlertID(v any) string {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return "AL-" + hexToken(22)
	}
	return truncate(s, alertIDMax)
}

// hexToken returns n hex characters of a fresh random UUID, the
// uniqueness source for every synthesized identifier in a run.
func hexToken(n int) string {
	h := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n < len(h) {
		return h[:n]
	}
	return h
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprintf("%v", v)
	}
}
