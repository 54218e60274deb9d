package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockToMinutes converts a 24h "HH:MM" string to minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, errors.New("clock time out of range")
	}
	return h*60 + m, nil
}

// ClockHour returns the hour component of an "HH:MM" string.
func ClockHour(clock string) (int, error) {
	mins, err := ClockToMinutes(clock)
	if err != nil {
		return 0, err
	}
	return mins / 60, nil
}

// IsLateNightHour reports whether a local hour falls in the late-night
// eating window: 20:00–23:59 or 00:00–03:59.
func IsLateNightHour(hour int) bool {
	return hour >= 20 || hour < 4
}

// DayKey buckets a timestamp into its calendar date.
func DayKey(t time.Time) string { return t.Format("2006-01-02") }

func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
