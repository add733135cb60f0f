// Package scraper provides HTTP fetching and HTML parsing for the Wiener
// Staatsoper event listing.
//
// The listing carries no stable schema, so candidate event containers are
// discovered through an ordered cascade of structural heuristics that commits
// to the first one yielding results. Each container is then mined for title,
// composer, event ID, ticket availability, and the performance date and time.
// Extraction is best-effort per field: a fragment that fails one heuristic
// still contributes whatever else it yields.
package scraper
