package checker

import (
	"time"

	"github.com/mhofer/staatsoper-watch/internal/event"
	"github.com/mhofer/staatsoper-watch/internal/logger"
	"github.com/mhofer/staatsoper-watch/internal/notifier"
	"github.com/mhofer/staatsoper-watch/internal/telegram"
)

// Outcome is the terminal state of one check run.
type Outcome int

const (
	// FetchFailed means the listing could not be retrieved.
	FetchFailed Outcome = iota
	// NoEvents means the page parsed to zero events.
	NoEvents
	// NoMatch means no performance is scheduled for the target date.
	NoMatch
	// NotAvailable means tomorrow's performance has no actionable tickets.
	NotAvailable
	// Notified means the availability notification was delivered.
	Notified
	// NotifyFailed means tickets are available but delivery failed.
	NotifyFailed
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case FetchFailed:
		return "fetch_failed"
	case NoEvents:
		return "no_events"
	case NoMatch:
		return "no_match"
	case NotAvailable:
		return "not_available"
	case Notified:
		return "notified"
	case NotifyFailed:
		return "notify_failed"
	default:
		return "unknown"
	}
}

// EventSource supplies the parsed event listing. Implemented by
// scraper.Scraper in production.
type EventSource interface {
	FetchEvents() ([]*event.Event, error)
	URL() string
}

// Checker runs the fetch-parse-match-notify pipeline once per authorized tick.
type Checker struct {
	source   EventSource
	notifier notifier.Notifier
	loc      *time.Location
}

// New creates a Checker. Target dates are computed in loc.
func New(source EventSource, n notifier.Notifier, loc *time.Location) *Checker {
	return &Checker{source: source, notifier: n, loc: loc}
}

// Run performs one availability check. The target date is the civil date one
// day after now in the checker's timezone. Run never returns an error: every
// failure is logged and folded into the outcome, so the host keeps ticking.
func (c *Checker) Run(now time.Time) Outcome {
	events, err := c.source.FetchEvents()
	if err != nil {
		logger.Error("Fetching event listing failed", logger.Fields{
			"url": c.source.URL(),
		}, err)
		return FetchFailed
	}

	if len(events) == 0 {
		logger.Warn("No events found on the listing page", logger.Fields{
			"url": c.source.URL(),
		})
		return NoEvents
	}

	target := now.In(c.loc).AddDate(0, 0, 1)
	targetDate := target.Format("02.01.2006")

	match := event.FirstOnDate(events, target, c.loc)
	if match == nil {
		logger.Info("No show scheduled for tomorrow", logger.Fields{
			"target_date": targetDate,
			"events":      len(events),
		})
		return NoMatch
	}

	if match.Availability != event.Available {
		logger.Info("Tomorrow's show has no tickets", logger.Fields{
			"title":        match.Title,
			"target_date":  targetDate,
			"availability": match.Availability.String(),
		})
		return NotAvailable
	}

	message := telegram.FormatTicketAlert(match, c.source.URL())
	if err := c.notifier.Send(message); err != nil {
		logger.Error("Failed to send availability notification", logger.Fields{
			"title": match.Title,
		}, err)
		return NotifyFailed
	}

	logger.Info("Sent availability notification", logger.Fields{
		"title":       match.Title,
		"event_id":    match.ID,
		"target_date": targetDate,
	})
	return Notified
}
