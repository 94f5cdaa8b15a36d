package client

import (
	"errors"
	"fmt"
	"io"

	http "github.com/bogdanfinn/fhttp"

	"stockwatch/internal/headers"
)

// ErrBlocked marks responses that look like bot mitigation rather than a
// genuine page state. Callers should rotate to a fresh client.
var ErrBlocked = errors.New("request blocked")

// Fetch retrieves a product page with a randomized browser header
// profile. Any non-2xx status is an error: availability must never be
// inferred from an error page.
func Fetch(c *Client, pageURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header = headers.ForPage(pageURL)

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusForbidden,
		resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d from %s", ErrBlocked, resp.StatusCode, pageURL)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, pageURL)
	}

	return body, nil
}
