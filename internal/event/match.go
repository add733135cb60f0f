package event

import "time"

// SameCivilDate reports whether a and b fall on the same calendar day in loc.
func SameCivilDate(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// FirstOnDate returns the first event in input order whose resolved start
// time falls on the same calendar day as target in loc. Events without a
// resolved start time are skipped. When several events share the date, the
// first encountered wins; no secondary tie-break is applied.
//
// Returns nil if no event matches.
func FirstOnDate(events []*Event, target time.Time, loc *time.Location) *Event {
	for _, evt := range events {
		if !evt.HasSchedule() {
			continue
		}
		if SameCivilDate(evt.StartsAt, target, loc) {
			return evt
		}
	}
	return nil
}
