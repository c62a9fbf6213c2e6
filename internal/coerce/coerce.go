// Package coerce converts loosely-typed source values into the strict
// types the portal store expects. Every function is pure and total:
// any input, including nil or a wrongly-typed value, yields a
// well-typed result. Malformed input degrades to the caller-supplied
// fallback instead of erroring; the lossy substitution is part of the
// migration contract.
package coerce

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date coerces v to a calendar date (midnight UTC). time.Time values
// pass through with the time-of-day dropped; strings parse as ISO-8601
// dates or date-times; anything else yields fallback.
func Date(v any, fallback time.Time) time.Time {
	if v == nil {
		return midnight(fallback)
	}
	if t, ok := v.(time.Time); ok {
		return midnight(t)
	}
	if t, ok := parseDateTime(v); ok {
		return midnight(t)
	}
	return midnight(fallback)
}

// DateTime coerces v to a timestamp. time.Time values pass through;
// strings parse as ISO-8601 date-times, tolerating the trailing Z
// designator and bare dates; anything else yields fallback.
func DateTime(v any, fallback time.Time) time.Time {
	if v == nil {
		return fallback
	}
	if t, ok := v.(time.Time); ok {
		return t
	}
	if t, ok := parseDateTime(v); ok {
		return t
	}
	return fallback
}

// String coerces v to a bounded string: nil or empty yields fallback,
// and the result is silently truncated to max bytes. Truncation
// reports no error; the tail is deliberately dropped.
func String(v any, fallback string, max int) string {
	s := stringify(v)
	if s == "" {
		s = fallback
	}
	return Truncate(s, max)
}

// Truncate cuts s to at most max bytes. A non-positive max means
// unbounded.
func Truncate(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}

// Float coerces v to a float64, treating nil, absent, and unparseable
// values as zero.
func Float(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Flag coerces v to a 0/1 integer, treating nil, absent, and
// unparseable values as 0.
func Flag(v any) int {
	switch b := v.(type) {
	case nil:
		return 0
	case bool:
		if b {
			return 1
		}
		return 0
	default:
		if Float(v) != 0 {
			return 1
		}
		return 0
	}
}

// Tags coerces v to a mapping. Maps pass through, JSON object strings
// and raw bytes decode, everything else yields an empty map. The inner
// structure is not validated.
func Tags(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		if m == nil {
			return map[string]any{}
		}
		return m
	case string:
		return decodeTags([]byte(m))
	case []byte:
		return decodeTags(m)
	default:
		return map[string]any{}
	}
}

func decodeTags(raw []byte) map[string]any {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

func parseDateTime(v any) (time.Time, bool) {
	s := strings.TrimSpace(stringify(v))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
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
