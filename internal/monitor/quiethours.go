package monitor

import (
	"time"
)

// InQuietHours reports whether now falls inside the do-not-disturb window
// given by start and end, both local HH:MM strings. Well-formed input is a
// caller precondition, it is validated at the settings form edge.
//
// All three times are compared as minutes since midnight. A window with
// start <= end covers the same day, a window with start > end wraps
// midnight (e.g. 22:00 to 07:00).
func InQuietHours(start, end string, now time.Time) bool {
	var (
		startMin = clockMinutes(start)
		endMin   = clockMinutes(end)
		nowMin   = now.Hour()*60 + now.Minute()
	)

	if startMin > endMin {
		return nowMin >= startMin || nowMin < endMin
	}

	return nowMin >= startMin && nowMin < endMin
}

// clockMinutes converts an HH:MM string to minutes since midnight.
func clockMinutes(clock string) int {
	if len(clock) < 5 {
		return 0
	}

	h := int(clock[0]-'0')*10 + int(clock[1]-'0')
	m := int(clock[3]-'0')*10 + int(clock[4]-'0')

	return h*60 + m
}
