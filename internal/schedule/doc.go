// Package schedule decides whether a given host tick should trigger a check.
//
// The host fires once per minute; the gate authorizes exactly one run per day
// by comparing the tick's wall-clock time against a configured hour and
// minute, and suppresses re-entry within the same trigger window when the
// host delivers jittered duplicate ticks.
package schedule
