package notifier

// Notifier delivers a formatted notification message.
type Notifier interface {
	// Send delivers the message; a nil error means it was accepted by the
	// transport.
	Send(text string) error
}
