package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhofer/staatsoper-watch/internal/event"
)

const (
	// EventListURL is the public Wiener Staatsoper event listing.
	EventListURL = "https://tickets.wiener-staatsoper.at/webshop/webticket/eventlist"

	// UserAgent mimics a desktop browser; the webshop serves an empty shell
	// to obvious bots.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// Timeout bounds the listing fetch.
	Timeout = 30 * time.Second
)

// Scraper fetches and parses the Staatsoper event listing.
type Scraper struct {
	client *http.Client
	url    string
	loc    *time.Location
}

// New creates a Scraper for the given listing URL. Performance dates are
// resolved in loc.
func New(url string, loc *time.Location) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
		loc: loc,
	}
}

// URL returns the listing URL this scraper reads from.
func (s *Scraper) URL() string {
	return s.url
}

// FetchEvents fetches the listing page and extracts all performances from it.
func (s *Scraper) FetchEvents() ([]*event.Event, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseEvents(resp.Body)
}

// parseEvents extracts performances from the listing HTML. Individual
// fragments that cannot be turned into an event are dropped; partial results
// are valid output.
func (s *Scraper) parseEvents(r io.Reader) ([]*event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	containers := discoverContainers(doc)

	events := make([]*event.Event, 0, len(containers))
	for _, container := range containers {
		if evt := safeExtract(container, s.loc); evt != nil {
			events = append(events, evt)
		}
	}

	return events, nil
}

// safeExtract shields the parse from a wholly malformed fragment: a panic
// inside extraction skips that fragment instead of failing the whole run.
func safeExtract(sel *goquery.Selection, loc *time.Location) (evt *event.Event) {
	defer func() {
		if r := recover(); r != nil {
			evt = nil
		}
	}()
	return extractEvent(sel, loc)
}
