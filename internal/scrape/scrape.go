package scrape

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Availability is the observed stock state of a product page.
type Availability string

const (
	InStock    Availability = "in-stock"
	OutOfStock Availability = "out-of-stock"
	Unknown    Availability = "unknown"
)

// Known reports whether the availability was actually observed, as
// opposed to a failed or ambiguous check.
func (a Availability) Known() bool {
	return a == InStock || a == OutOfStock
}

type Result struct {
	Availability Availability
	Price        string
}

// Storefronts rarely expose a machine-readable stock flag, so
// availability is keyed off marker phrases in the page text. An
// unavailability phrase always wins: "add to cart" often remains in the
// markup of sold-out pages as a disabled button.
var availableMarkers = []string{
	"add to cart",
	"buy now",
	"in stock",
	"available",
}

var unavailableMarkers = []string{
	"out of stock",
	"sold out",
	"unavailable",
	"notify when available",
	"coming soon",
}

// Page extracts the availability signal from a product page. selector is
// a per-product marker treated as an additional in-stock phrase,
// priceSelector an optional CSS selector for the displayed price.
func Page(body []byte, selector, priceSelector string) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Result{Availability: Unknown}, err
	}

	content := strings.ToLower(string(body))

	availability := OutOfStock
	markers := availableMarkers
	if selector != "" {
		markers = append(append([]string{}, availableMarkers...), strings.ToLower(selector))
	}
	for _, marker := range markers {
		if strings.Contains(content, marker) {
			availability = InStock
			break
		}
	}
	for _, marker := range unavailableMarkers {
		if strings.Contains(content, marker) {
			availability = OutOfStock
			break
		}
	}

	price := ""
	if availability == InStock && priceSelector != "" {
		price = strings.TrimSpace(doc.Find(priceSelector).First().Text())
	}

	return Result{Availability: availability, Price: price}, nil
}
