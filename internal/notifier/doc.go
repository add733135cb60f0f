// Package notifier provides the notification boundary for the checker.
//
// A Notifier takes a formatted message and delivers it somewhere: the
// Telegram chat in production, stdout in dry-run mode, or nowhere at all when
// credentials are missing from the environment.
package notifier
