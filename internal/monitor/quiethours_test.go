package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clock(t *testing.T, hhmm string) time.Time {
	t.Helper()

	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		t.Fatalf("bad test clock %q: %v", hhmm, err)
	}

	return parsed
}

func TestInQuietHours_SameDayWindow(t *testing.T) {
	testCases := []struct {
		name   string
		start  string
		end    string
		now    string
		inside bool
	}{
		{"before window", "09:00", "17:00", "08:59", false},
		{"at start", "09:00", "17:00", "09:00", true},
		{"inside", "09:00", "17:00", "12:30", true},
		{"just before end", "09:00", "17:00", "16:59", true},
		{"at end is outside", "09:00", "17:00", "17:00", false},
		{"after window", "09:00", "17:00", "23:00", false},
		{"empty window never matches", "10:00", "10:00", "10:00", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := InQuietHours(tc.start, tc.end, clock(t, tc.now))
			assert.Equal(t, tc.inside, got)
		})
	}
}

func TestInQuietHours_MidnightWrappingWindow(t *testing.T) {
	testCases := []struct {
		name   string
		start  string
		end    string
		now    string
		inside bool
	}{
		{"late evening", "22:00", "07:00", "23:30", true},
		{"early morning", "22:00", "07:00", "06:59", true},
		{"midday", "22:00", "07:00", "12:00", false},
		{"at start", "22:00", "07:00", "22:00", true},
		{"at end is outside", "22:00", "07:00", "07:00", false},
		{"just before start", "22:00", "07:00", "21:59", false},
		{"midnight", "22:00", "07:00", "00:00", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := InQuietHours(tc.start, tc.end, clock(t, tc.now))
			assert.Equal(t, tc.inside, got)
		})
	}
}
