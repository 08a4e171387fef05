package core

import (
	"fmt"
	"time"
)

// DateLayout is the only date format the ledger accepts.
const DateLayout = "2006-01-02"

const monthKeyLayout = "2006-01"

// IsValidDate reports whether s is a real calendar date in strict
// YYYY-MM-DD form. time.Parse already rejects out-of-range components
// (month 13, February 30th); the round-trip comparison additionally
// rejects anything it parses leniently, such as unpadded fields.
func IsValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// ParseDate parses a strict YYYY-MM-DD string. Failures wrap
// ErrMalformedDate so aggregation callers can tell a corrupted record
// apart from an empty result.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}

// MonthKey returns the YYYY-MM bucket for a parsed date. Lexicographic
// order on the key matches calendar order.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// DaySpan returns the number of whole days from first to last. Both
// arguments come from ParseDate, so they sit at UTC midnight and the
// division is exact. Second arithmetic avoids the Duration range cap,
// which a span of a few centuries would exceed.
func DaySpan(first, last time.Time) int {
	return int((last.Unix() - first.Unix()) / 86400)
}
