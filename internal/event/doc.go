// Package event provides types and functions for Wiener Staatsoper performances.
//
// The event package handles performance representation, resolution of the
// Austrian "dd.mm.yyyy" / "hh:mm" date format into timezone-aware instants,
// and matching a performance against a target calendar date.
package event
