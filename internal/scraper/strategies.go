package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// datePattern and timePattern match the Austrian date/time tokens embedded in
// listing text, e.g. "18.01.2026" and "19:00".
var (
	datePattern = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
	timePattern = regexp.MustCompile(`\d{2}:\d{2}`)
)

// A containerStrategy proposes candidate event containers from a document.
// Strategies are pure: same document, same result.
type containerStrategy struct {
	name string
	find func(doc *goquery.Document) []*goquery.Selection
}

// containerStrategies is the discovery cascade. Order matters: discovery
// commits to the first strategy that yields at least one container, later
// strategies are never combined with earlier ones.
var containerStrategies = []containerStrategy{
	{
		name: "event-class divs",
		find: func(doc *goquery.Document) []*goquery.Selection {
			return filterByClass(doc.Find("div"), "event", "show", "performance")
		},
	},
	{
		name: "articles",
		find: func(doc *goquery.Document) []*goquery.Selection {
			return collect(doc.Find("article"))
		},
	},
	{
		name: "card divs",
		find: func(doc *goquery.Document) []*goquery.Selection {
			return filterByClass(doc.Find("div"), "card")
		},
	},
	{
		name: "event list items",
		find: func(doc *goquery.Document) []*goquery.Selection {
			return filterByClass(doc.Find("li"), "event", "show")
		},
	},
}

// discoverContainers runs the cascade and falls back to a generic scan when
// no strategy matches the markup.
func discoverContainers(doc *goquery.Document) []*goquery.Selection {
	for _, strategy := range containerStrategies {
		if containers := strategy.find(doc); len(containers) > 0 {
			return containers
		}
	}
	return fallbackScan(doc)
}

// fallbackScan finds block elements that look like events without relying on
// class names: the flattened text must contain both a date-shaped and a
// time-shaped token, and the element must carry an action link or a
// small-text note.
func fallbackScan(doc *goquery.Document) []*goquery.Selection {
	var containers []*goquery.Selection
	doc.Find("div, article, li").Each(func(_ int, sel *goquery.Selection) {
		text := sel.Text()
		if !datePattern.MatchString(text) || !timePattern.MatchString(text) {
			return
		}
		if findAction(sel) == nil && sel.Find("div.text-small").Length() == 0 {
			return
		}
		containers = append(containers, sel)
	})
	return containers
}

// filterByClass returns the elements of sel whose class attribute contains
// any of the given substrings, case-insensitive.
func filterByClass(sel *goquery.Selection, substrings ...string) []*goquery.Selection {
	var out []*goquery.Selection
	sel.Each(func(_ int, s *goquery.Selection) {
		if classContainsAny(s, substrings...) {
			out = append(out, s)
		}
	})
	return out
}

// collect splits a multi-element selection into per-element selections.
func collect(sel *goquery.Selection) []*goquery.Selection {
	out := make([]*goquery.Selection, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}

// classContainsAny reports whether the element's class attribute contains any
// of the given substrings, case-insensitive.
func classContainsAny(sel *goquery.Selection, substrings ...string) bool {
	class, ok := sel.Attr("class")
	if !ok {
		return false
	}
	class = strings.ToLower(class)
	for _, sub := range substrings {
		if strings.Contains(class, sub) {
			return true
		}
	}
	return false
}
