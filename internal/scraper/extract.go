package scraper

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mhofer/staatsoper-watch/internal/event"
)

const (
	soldOutMarker   = "Ausverkauft"
	availableMarker = "Restkarten"
)

// composerHints is the conservative author heuristic: a text line is accepted
// as the composer only if it contains one of these substrings. False
// negatives are fine, false positives are not.
var composerHints = []string{
	"Mozart", "Beethoven", "Verdi", "Wagner", "Puccini", "Strauss", "von", "by",
}

// extractEvent mines one candidate container for performance fields. Every
// sub-rule is independently fallible: a field that cannot be derived is left
// at its zero value and never blocks the others. Returns nil when the
// fragment yields no title at all, the one field every event must have.
func extractEvent(sel *goquery.Selection, loc *time.Location) *event.Event {
	evt := &event.Event{}

	action := findAction(sel)

	if action != nil {
		evt.ID = extractEventID(action)
	}

	evt.Availability = extractAvailability(sel, action)

	lines := textLines(sel)

	evt.Title = extractTitle(sel, lines)
	if evt.Title == "" {
		return nil
	}

	evt.Author = extractAuthor(sel, lines)

	text := strings.Join(lines, "\n")
	evt.RawDate = datePattern.FindString(text)
	evt.RawTime = timePattern.FindString(text)
	if evt.RawDate != "" && evt.RawTime != "" {
		if starts, ok := event.ResolveDateTime(evt.RawDate, evt.RawTime, loc); ok {
			evt.StartsAt = starts
		}
	}

	return evt
}

// findAction returns the fragment's primary action link: the first anchor
// styled as a button. Nil when the fragment has none.
func findAction(sel *goquery.Selection) *goquery.Selection {
	var action *goquery.Selection
	sel.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if classContainsAny(a, "btn") {
			action = a
			return false
		}
		return true
	})
	return action
}

// extractEventID pulls the eventId query parameter out of the action href,
// e.g. "/webshop/webticket/selectseat?eventId=11553&el=true" -> "11553".
func extractEventID(action *goquery.Selection) string {
	href, ok := action.Attr("href")
	if !ok {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return u.Query().Get("eventId")
}

// extractAvailability applies the precedence rules for the availability
// signals: a small-text "Ausverkauft" note is tentative and the action link's
// own text overrides it either way.
func extractAvailability(sel *goquery.Selection, action *goquery.Selection) event.Availability {
	availability := event.Unknown

	small := sel.Find("div.text-small").First()
	if small.Length() > 0 && strings.Contains(small.Text(), soldOutMarker) {
		availability = event.SoldOut
	}

	if action != nil {
		actionText := strings.TrimSpace(action.Text())
		if strings.Contains(actionText, availableMarker) {
			availability = event.Available
		} else if strings.Contains(actionText, soldOutMarker) {
			availability = event.SoldOut
		}
	}

	return availability
}

// extractTitle tries heading elements, then title-classed elements, then
// falls back to the first non-empty line of the fragment text.
func extractTitle(sel *goquery.Selection, lines []string) string {
	for _, tag := range []string{"h2", "h3", "strong"} {
		if title := strings.TrimSpace(sel.Find(tag).First().Text()); title != "" {
			return title
		}
	}

	if titled := findByClass(sel, "title"); titled != nil {
		if title := strings.TrimSpace(titled.Text()); title != "" {
			return title
		}
	}

	if len(lines) > 0 {
		return lines[0]
	}
	return ""
}

// extractAuthor looks for an author/composer-classed element and otherwise
// inspects the second text line, accepting it only on a composer hint.
func extractAuthor(sel *goquery.Selection, lines []string) string {
	if authored := findByClass(sel, "author", "composer"); authored != nil {
		if author := strings.TrimSpace(authored.Text()); author != "" {
			return author
		}
	}

	if len(lines) > 1 {
		candidate := lines[1]
		for _, hint := range composerHints {
			if strings.Contains(candidate, hint) {
				return candidate
			}
		}
	}

	return ""
}

// findByClass returns the first descendant whose class attribute contains any
// of the given substrings, case-insensitive. Nil when none match.
func findByClass(sel *goquery.Selection, substrings ...string) *goquery.Selection {
	var found *goquery.Selection
	sel.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if classContainsAny(s, substrings...) {
			found = s
			return false
		}
		return true
	})
	return found
}

// textLines flattens the fragment into its non-empty text nodes in document
// order, one trimmed line per node.
func textLines(sel *goquery.Selection) []string {
	var lines []string
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				if text := strings.TrimSpace(c.Text()); text != "" {
					lines = append(lines, text)
				}
				return
			}
			walk(c)
		})
	}
	walk(sel)
	return lines
}
