package schedule

import "time"

// reentryWindow suppresses a second authorization within the same trigger
// minute caused by host jitter.
const reentryWindow = time.Minute

// Gate authorizes at most one run per day at the configured local time.
//
// The last-fired timestamp lives only for the process lifetime. A restart at
// or after the target minute can therefore cause a duplicate run; this is a
// documented risk, not mitigated here.
type Gate struct {
	hour        int
	minute      int
	loc         *time.Location
	lastFiredAt time.Time
}

// NewGate creates a gate that fires at hour:minute in loc.
func NewGate(hour, minute int, loc *time.Location) *Gate {
	return &Gate{hour: hour, minute: minute, loc: loc}
}

// ShouldRun reports whether the business logic should execute for this tick.
// True only when now falls exactly on the target hour and minute in the
// gate's timezone and no run was authorized within the last minute.
func (g *Gate) ShouldRun(now time.Time) bool {
	local := now.In(g.loc)
	if local.Hour() != g.hour || local.Minute() != g.minute {
		return false
	}

	if !g.lastFiredAt.IsZero() && now.Sub(g.lastFiredAt) < reentryWindow {
		return false
	}

	return true
}

// MarkFired records an authorized run. Callers invoke it immediately after a
// true ShouldRun result, before starting business logic, so a second tick in
// the same minute is suppressed even while the run is still in flight.
func (g *Gate) MarkFired(now time.Time) {
	g.lastFiredAt = now
}

// LastFiredAt returns when the gate last authorized a run; zero if never.
func (g *Gate) LastFiredAt() time.Time {
	return g.lastFiredAt
}
