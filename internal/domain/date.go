package domain

import (
	"fmt"
	"strings"
	"time"
)

// Wire layouts for dates. Games and reviews render dates differently; both
// formats are kept as they are published by the API.
const (
	// ISODateLayout is the canonical input layout (YYYY-MM-DD).
	ISODateLayout = "2006-01-02"

	// GameDateLayout renders a game's releaseDate as M/D/YYYY.
	GameDateLayout = "1/2/2006"

	// ReviewDateLayout renders a review's reviewDate as YYYY-M-D.
	ReviewDateLayout = "2006-1-2"
)

// acceptedDateLayouts are tried in order when parsing client input, so a
// value previously returned by the API can be sent back unchanged.
var acceptedDateLayouts = []string{
	ISODateLayout,
	time.RFC3339,
	GameDateLayout,
	ReviewDateLayout,
}

// ParseDate parses a calendar date in any of the accepted layouts.
// The result is truncated to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	for _, layout := range acceptedDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
