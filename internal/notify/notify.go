package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockwatch/internal/scrape"
)

// Event records a single availability flip for a tracked product.
type Event struct {
	Product string
	URL     string
	Old     scrape.Availability
	New     scrape.Availability
	Price   string
	At      time.Time
}

// Notifier delivers a stock-change event to one outbound channel.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}

func (e Event) Subject() string {
	if e.New == scrape.InStock {
		return fmt.Sprintf("Stock Alert: %s is back in stock", e.Product)
	}
	return fmt.Sprintf("Stock Alert: %s is out of stock", e.Product)
}

// Message renders the Telegram-flavored HTML body. Telegram's HTML parse
// mode keeps newlines, so the same text doubles as a readable plain body.
func (e Event) Message() string {
	var b strings.Builder
	b.WriteString("<b>Stock Alert</b>\n\n")
	fmt.Fprintf(&b, "<b>Product:</b> %s\n", e.Product)
	fmt.Fprintf(&b, "<b>URL:</b> %s\n", e.URL)
	fmt.Fprintf(&b, "<b>Status:</b> %s (was %s)\n", e.New, e.Old)
	if e.Price != "" {
		fmt.Fprintf(&b, "<b>Price:</b> %s\n", e.Price)
	}
	fmt.Fprintf(&b, "<b>Checked at:</b> %s\n", e.At.Format("2006-01-02 15:04:05"))
	if e.New == scrape.InStock {
		b.WriteString("\n<b>Product is now available! Hurry up!</b>")
	} else {
		b.WriteString("\n<b>Product is out of stock</b>")
	}
	return b.String()
}

var plainReplacer = strings.NewReplacer("<b>", "", "</b>", "")

// PlainMessage strips the formatting tags for channels without markup.
func (e Event) PlainMessage() string {
	return plainReplacer.Replace(e.Message())
}
