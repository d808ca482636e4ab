package rentroll

import (
	"errors"
	"math"
	"strings"
	"time"
)

var errUnknownDateFormat = errors.New("unknown date format")

// parseLeaseDate accepts the two unit-level date forms seen across
// vendors: ISO (YYYY-MM-DD) and US (MM/DD/YYYY). The zero time means
// unparsable.
func parseLeaseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("1/2/2006", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// parseExpireDate normalizes '.', '_' and '-' separators to '/', infers
// which positional group holds the 4-digit year, and parses accordingly.
// Two-digit years are promoted to 20YY.
func parseExpireDate(s string) (time.Time, error) {
	normalized := strings.NewReplacer(".", "/", "_", "/", "-", "/").Replace(strings.TrimSpace(s))
	parts := strings.Split(normalized, "/")
	if len(parts) != 3 {
		return time.Time{}, errUnknownDateFormat
	}
	switch {
	case len(parts[0]) == 4:
		return time.Parse("2006/1/2", normalized)
	case len(parts[2]) == 4:
		return time.Parse("1/2/2006", normalized)
	case len(parts[2]) == 2:
		return time.Parse("1/2/06", normalized)
	default:
		return time.Time{}, errUnknownDateFormat
	}
}

// parseAsOfDate parses the MM/DD/YYYY as-of string; false covers both the
// DateNotFound sentinel and malformed values.
func parseAsOfDate(asOf string) (time.Time, bool) {
	if asOf == "" || asOf == DateNotFound {
		return time.Time{}, false
	}
	t, err := time.Parse("1/2/2006", asOf)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// sortDate picks the date the lease-activity reports rank units by:
// move-in when present, lease start otherwise.
func sortDate(moveIn, leaseStart string) (time.Time, bool) {
	if t, ok := parseLeaseDate(moveIn); ok {
		return t, true
	}
	return parseLeaseDate(leaseStart)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
