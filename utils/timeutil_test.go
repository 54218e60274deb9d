package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockToMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{" 07:15 ", 435, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"noon", 0, true},
		{"1200", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ClockToMinutes(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestClockHour(t *testing.T) {
	h, err := ClockHour("20:45")
	require.NoError(t, err)
	assert.Equal(t, 20, h)

	_, err = ClockHour("25:00")
	assert.Error(t, err)
}

func TestIsLateNightHour(t *testing.T) {
	for _, h := range []int{20, 21, 23, 0, 2, 3} {
		assert.True(t, IsLateNightHour(h), "hour %d", h)
	}
	for _, h := range []int{4, 7, 12, 19} {
		assert.False(t, IsLateNightHour(h), "hour %d", h)
	}
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2026, 3, 9, 23, 15, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-09", DayKey(ts))
	assert.Equal(t, DayKey(ts), DayKey(ts.Add(-23*time.Hour)))

	start := DayStart(ts)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, ts.Day(), start.Day())
}
