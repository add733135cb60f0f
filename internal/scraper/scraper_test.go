package scraper

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/mhofer/staatsoper-watch/internal/event"
)

func TestParseEvents_Fixture(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/eventlist_sample.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	s := New(EventListURL, vienna(t))
	events, err := s.parseEvents(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parseEvents failed: %v", err)
	}

	// The fixture carries two well-formed fragments and one garbled one.
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	first := events[0]
	if first.Title != "Die Zauberflöte" {
		t.Errorf("Title = %q, want %q", first.Title, "Die Zauberflöte")
	}
	if first.Author != "Wolfgang Amadeus Mozart" {
		t.Errorf("Author = %q, want %q", first.Author, "Wolfgang Amadeus Mozart")
	}
	if first.ID != "11553" {
		t.Errorf("ID = %q, want %q", first.ID, "11553")
	}
	if first.Availability != event.Available {
		t.Errorf("Availability = %v, want %v", first.Availability, event.Available)
	}
	if !first.HasSchedule() {
		t.Error("first event should have a resolved start time")
	}

	second := events[1]
	if second.Title != "Tosca" {
		t.Errorf("Title = %q, want %q", second.Title, "Tosca")
	}
	if second.Availability != event.SoldOut {
		t.Errorf("Availability = %v, want %v", second.Availability, event.SoldOut)
	}
}

func TestParseEvents_GarbledFragmentIsSkipped(t *testing.T) {
	s := New(EventListURL, vienna(t))

	// One well-formed fragment, one yielding no usable signal.
	html := `
		<div class="event-item">
			<h2>Die Zauberflöte</h2>
			<span>18.01.2026</span>
			<span>19:00</span>
			<a class="btn" href="/x?eventId=11553">Restkarten</a>
		</div>
		<div class="event-item">
			<a class="btn" href="/x"></a>
		</div>`

	events, err := s.parseEvents(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parseEvents failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want exactly 1", len(events))
	}
	if events[0].Title != "Die Zauberflöte" {
		t.Errorf("Title = %q, want %q", events[0].Title, "Die Zauberflöte")
	}
}

func TestParseEvents_EmptyDocument(t *testing.T) {
	s := New(EventListURL, vienna(t))

	events, err := s.parseEvents(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("parseEvents failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestFetchEvents(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/eventlist_sample.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write(data)
	}))
	defer server.Close()

	s := New(server.URL, vienna(t))
	events, err := s.FetchEvents()
	if err != nil {
		t.Fatalf("FetchEvents failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
	if gotUserAgent != UserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUserAgent, UserAgent)
	}
}

func TestFetchEvents_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := New(server.URL, vienna(t))
	if _, err := s.FetchEvents(); err == nil {
		t.Error("FetchEvents should fail on non-200 status")
	}
}

func TestNew_Defaults(t *testing.T) {
	loc := vienna(t)
	s := New(EventListURL, loc)

	if s.URL() != EventListURL {
		t.Errorf("URL = %q, want %q", s.URL(), EventListURL)
	}
	if s.client.Timeout != Timeout {
		t.Errorf("client timeout = %v, want %v", s.client.Timeout, Timeout)
	}
}
