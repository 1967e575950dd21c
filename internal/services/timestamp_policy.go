package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrTimestampInvalid = errors.New("invalid timestamp")
	ErrTimestampFuture  = errors.New("timestamp in the future")
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts the ISO-8601 shapes clients send. Offsets are
// honored and the result is normalized to UTC; layouts without an offset
// are taken as already UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, ErrTimestampInvalid
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, ErrTimestampInvalid
}

// ValidateNotFuture rejects retrospective-log timestamps ahead of now,
// with a minute of slack for client clock skew.
func ValidateNotFuture(value time.Time, now time.Time) error {
	if value.After(now.Add(time.Minute)) {
		return ErrTimestampFuture
	}
	return nil
}

// DayOf truncates a timestamp to midnight UTC, the granularity used for
// per-day uniqueness.
func DayOf(value time.Time) time.Time {
	utc := value.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
