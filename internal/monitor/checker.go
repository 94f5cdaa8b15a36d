package monitor

import (
	"errors"
	"time"

	"stockwatch/internal/client"
	"stockwatch/internal/config"
	"stockwatch/internal/scrape"
)

// Checker probes a single product page for its current availability.
type Checker interface {
	Check(product config.Product) CheckResult
}

// pageChecker fetches pages through the TLS-fingerprinting client pool.
// The client is built lazily and rebuilt on a fresh proxy when the
// current one gets blocked.
type pageChecker struct {
	pool       *client.Pool
	httpClient *client.Client
}

func NewPageChecker(pool *client.Pool) Checker {
	return &pageChecker{pool: pool}
}

func (c *pageChecker) Check(product config.Product) CheckResult {
	if c.httpClient == nil {
		httpClient, err := c.pool.New()
		if err != nil {
			return CheckResult{Product: product, Status: scrape.Unknown, Err: err}
		}
		c.httpClient = httpClient
	}

	start := time.Now()
	body, err := client.Fetch(c.httpClient, product.URL)
	latency := time.Since(start)

	if errors.Is(err, client.ErrBlocked) {
		c.pool.Remove(c.httpClient.ProxyURL)
		c.httpClient = nil
	}
	if err != nil {
		return CheckResult{Product: product, Status: scrape.Unknown, Err: err, Latency: latency}
	}

	result, err := scrape.Page(body, product.Selector, product.PriceSelector)
	if err != nil {
		return CheckResult{Product: product, Status: scrape.Unknown, Err: err, Latency: latency}
	}

	return CheckResult{
		Product: product,
		Status:  result.Availability,
		Price:   result.Price,
		Latency: latency,
	}
}
