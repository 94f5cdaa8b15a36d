package monitor

import (
	"time"

	"stockwatch/internal/config"
	"stockwatch/internal/scrape"
)

// CheckResult is the outcome of probing one product page.
type CheckResult struct {
	Product config.Product
	Status  scrape.Availability
	Price   string
	Err     error
	Latency time.Duration
}

// Summary is what a run reports back to whoever scheduled it.
type Summary struct {
	Checked  int
	Changed  int
	Failed   int
	Notified int
}
