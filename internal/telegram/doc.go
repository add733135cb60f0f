// Package telegram provides Telegram Bot API integration for ticket alerts.
//
// The package sends formatted availability notifications via the Bot API
// using simple HTTP requests. Authentication requires a bot token (from
// @BotFather) and a chat ID.
package telegram
