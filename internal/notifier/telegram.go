package notifier

import (
	"os"

	"github.com/mhofer/staatsoper-watch/internal/logger"
	"github.com/mhofer/staatsoper-watch/internal/telegram"
)

// Environment variables holding the Telegram credentials.
const (
	EnvToken  = "TELEGRAM_TOKEN"
	EnvChatID = "TELEGRAM_CHAT_ID"
)

// TelegramNotifier delivers messages to a Telegram chat.
type TelegramNotifier struct {
	client *telegram.Client
}

// NewTelegram creates a Telegram-backed notifier.
func NewTelegram(botToken, chatID string) (*TelegramNotifier, error) {
	client, err := telegram.NewClient(botToken, chatID)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{client: client}, nil
}

// Send delivers the message to the configured chat.
func (n *TelegramNotifier) Send(text string) error {
	return n.client.SendMessage(text)
}

// FromEnv builds a notifier from TELEGRAM_TOKEN and TELEGRAM_CHAT_ID.
// Missing credentials degrade to a warning no-op instead of an error: a
// misconfigured watcher should miss one notification, not crash the host
// and miss all future days.
func FromEnv() Notifier {
	token := os.Getenv(EnvToken)
	chatID := os.Getenv(EnvChatID)

	if token == "" || chatID == "" {
		return Noop{}
	}

	n, err := NewTelegram(token, chatID)
	if err != nil {
		logger.Warn("Invalid Telegram credentials, notifications disabled", logger.Fields{
			"error": err.Error(),
		})
		return Noop{}
	}
	return n
}

// Noop is the degraded notifier used when credentials are absent. Send logs
// a warning and reports success so the run completes normally.
type Noop struct{}

// Send logs the missing-credentials warning and drops the message.
func (Noop) Send(text string) error {
	logger.Warn("TELEGRAM_TOKEN or TELEGRAM_CHAT_ID not set, cannot send notification", nil)
	return nil
}
