package telegram

import (
	"fmt"
	"strings"

	"github.com/mhofer/staatsoper-watch/internal/event"
)

// FormatTicketAlert formats an availability notification for one performance.
// The message uses Telegram HTML markup and links back to the listing page.
func FormatTicketAlert(evt *event.Event, listingURL string) string {
	author := evt.Author
	if author == "" {
		author = "Unknown Author"
	}

	var msg strings.Builder

	msg.WriteString("🎭 <b>Wiener Staatsoper - Tickets Available!</b>\n\n")
	msg.WriteString(fmt.Sprintf("<b>%s</b>\n", evt.Title))
	msg.WriteString(fmt.Sprintf("👤 %s\n", author))
	msg.WriteString(fmt.Sprintf("📅 %s %s\n\n", evt.RawDate, evt.RawTime))
	msg.WriteString("🎫 <b>Restkarten verfügbar!</b>\n\n")
	msg.WriteString(fmt.Sprintf("<a href=\"%s\">View Events</a>", listingURL))

	return msg.String()
}
