package event

import "time"

// Availability describes the ticket state of a performance.
type Availability int

const (
	// Unknown means no availability signal was found in the markup.
	Unknown Availability = iota
	// Available means remaining tickets (Restkarten) were advertised.
	Available
	// SoldOut means the performance was marked Ausverkauft.
	SoldOut
)

// String returns a human-readable name for the availability state.
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case SoldOut:
		return "sold_out"
	default:
		return "unknown"
	}
}

// Event represents one performance extracted from the event listing.
//
// All fields except Title are optional: the extractor fills in whatever the
// markup yields and leaves the rest at zero values. StartsAt is non-zero only
// when both RawDate and RawTime were found and parsed successfully.
type Event struct {
	ID           string       `json:"id,omitempty"`
	Title        string       `json:"title"`
	Author       string       `json:"author,omitempty"`
	RawDate      string       `json:"raw_date,omitempty"`
	RawTime      string       `json:"raw_time,omitempty"`
	StartsAt     time.Time    `json:"starts_at,omitempty"`
	Availability Availability `json:"availability"`
}

// HasSchedule reports whether the performance carries a resolved start time.
func (e *Event) HasSchedule() bool {
	return !e.StartsAt.IsZero()
}
