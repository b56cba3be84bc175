// Package mission contains the pure domain model for tracked work units.
// No I/O happens here; persistence lives in the adapters.
package mission

import "time"

// DefaultListLimit bounds a listing when the caller gives no limit.
const DefaultListLimit = 10

// Mission is a trackable unit of work with a name and a time span.
// A nil EndDate means the mission is ongoing.
type Mission struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   *time.Time
}

// Ongoing reports whether the mission has no recorded end.
func (m Mission) Ongoing() bool {
	return m.EndDate == nil
}

// Elapsed returns the time spent on the mission: end minus start if closed,
// otherwise now minus start. Truncated to whole seconds so repeated status
// calls render stably.
func (m Mission) Elapsed(now time.Time) time.Duration {
	end := now
	if m.EndDate != nil {
		end = *m.EndDate
	}
	return end.Sub(m.StartDate).Truncate(time.Second)
}
