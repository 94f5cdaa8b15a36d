package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockwatch/internal/scrape"
)

func testEvent() Event {
	return Event{
		Product: "Amul Butter 500g",
		URL:     "https://www.amul.com/products/butter-500g",
		Old:     scrape.OutOfStock,
		New:     scrape.InStock,
		Price:   "₹275.00",
		At:      time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
	}
}

func TestSubject(t *testing.T) {
	require.Equal(t,
		"Stock Alert: Amul Butter 500g is back in stock",
		testEvent().Subject(),
	)

	gone := testEvent()
	gone.Old, gone.New = scrape.InStock, scrape.OutOfStock
	require.Equal(t,
		"Stock Alert: Amul Butter 500g is out of stock",
		gone.Subject(),
	)
}

func TestMessage(t *testing.T) {
	msg := testEvent().Message()
	require.Contains(t, msg, "<b>Product:</b> Amul Butter 500g")
	require.Contains(t, msg, "https://www.amul.com/products/butter-500g")
	require.Contains(t, msg, "in-stock (was out-of-stock)")
	require.Contains(t, msg, "<b>Price:</b> ₹275.00")
	require.Contains(t, msg, "2026-08-29 10:30:00")
	require.Contains(t, msg, "Hurry up!")
}

func TestMessageOmitsEmptyPrice(t *testing.T) {
	event := testEvent()
	event.Price = ""
	require.NotContains(t, event.Message(), "Price")
}

func TestPlainMessageStripsTags(t *testing.T) {
	plain := testEvent().PlainMessage()
	require.NotContains(t, plain, "<b>")
	require.NotContains(t, plain, "</b>")
	require.Contains(t, plain, "Product: Amul Butter 500g")
}
