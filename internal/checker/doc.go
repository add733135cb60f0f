// Package checker orchestrates one availability check: fetch the listing,
// parse it, find tomorrow's performance, and notify if tickets are available.
//
// Every failure mode degrades to a logged outcome rather than an error. A
// missed notification costs one day; a crashed scheduler would cost all
// future days.
package checker
