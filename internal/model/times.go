package model

import (
	"errors"
	"time"
)

// Time layouts shared by handlers, repositories and the seed tool.
// WireTime is what clients send and receive (Python isoformat-style,
// no timezone).  DBTime is what the database stores; it sorts
// lexicographically in chronological order, which the day-range
// queries rely on.
const (
	WireTime = "2006-01-02T15:04:05"
	DBTime   = "2006-01-02 15:04:05"
	Date     = "2006-01-02"
)

// dateTimeLayouts lists the accepted input formats for set times, most
// specific first.  The original accepted anything datetime.fromisoformat
// does, so both the T and space separators parse, with or without an
// offset.
var dateTimeLayouts = []string{
	WireTime,
	DBTime,
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ErrBadDateTime reports an input that none of the accepted datetime
// layouts match.
var ErrBadDateTime = errors.New("invalid datetime format")

// ErrBadDate reports an input that is not an ISO calendar date.
var ErrBadDate = errors.New("invalid date format")

// ParseDateTime parses an ISO-8601-like datetime string.  Any offset
// present is dropped rather than converted: the system works in
// floating local time, exactly like the original store.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	return time.Time{}, ErrBadDateTime
}

// ParseDate parses a calendar date in ISO form ("2006-01-02").
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(Date, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

// DayLabel renders a calendar day the way the client shows festival
// days, e.g. "Saturday, April 26, 2025".
func DayLabel(day time.Time) string {
	return day.Format("Monday, January 2, 2006")
}
