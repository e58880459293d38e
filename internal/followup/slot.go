package followup

import "time"

// Slot is a resolved start/end pair in the follow-up timezone.
type Slot struct {
	Start time.Time
	End   time.Time
}

// ResolveSlot shifts now by daysFromNow calendar days in loc and resets
// the wall clock to hour:minute. The date arithmetic happens in loc, so
// the slot lands on the expected local day even across DST boundaries.
// Slots in the past are returned as-is; the calendar accepts them.
func ResolveSlot(now time.Time, loc *time.Location, daysFromNow, hour, minute, durationMin int) Slot {
	t := now.In(loc).AddDate(0, 0, daysFromNow)
	start := time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, loc)
	return Slot{
		Start: start,
		End:   start.Add(time.Duration(durationMin) * time.Minute),
	}
}
