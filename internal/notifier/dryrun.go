package notifier

import "fmt"

// DryRunNotifier prints what would be sent without performing any network I/O
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Send prints the message that would be delivered
func (n *DryRunNotifier) Send(text string) error {
	fmt.Println("--- Notification (dry run) ---")
	fmt.Println(text)
	fmt.Printf("\n(Length: %d characters)\n", len(text))
	return nil
}
