package client

import (
	"sync"
	"sync/atomic"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// Client wraps a TLS-fingerprinting HTTP client together with the proxy
// it was built on, so a blocked proxy can be dropped from rotation.
type Client struct {
	tls_client.HttpClient
	ProxyURL string
}

// Pool hands out clients, rotating through a proxy list round-robin.
// An empty pool produces direct-connection clients.
type Pool struct {
	mu      sync.Mutex
	proxies []string
	counter uint32
}

func NewPool(proxies []string) *Pool {
	return &Pool{proxies: proxies}
}

// Remove drops a proxy from rotation and reports how many remain.
func (p *Pool) Remove(proxyURL string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if proxyURL != "" {
		for i, candidate := range p.proxies {
			if candidate == proxyURL {
				p.proxies = append(p.proxies[:i], p.proxies[i+1:]...)
				break
			}
		}
	}
	return len(p.proxies)
}

func (p *Pool) New() (*Client, error) {
	jar := tls_client.NewCookieJar()
	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(30),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithCookieJar(jar),
	}

	var proxyURL string
	p.mu.Lock()
	if len(p.proxies) > 0 {
		idx := atomic.AddUint32(&p.counter, 1)
		proxyURL = p.proxies[int(idx-1)%len(p.proxies)]
		options = append(options, tls_client.WithProxyUrl(proxyURL))
	}
	p.mu.Unlock()

	httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, err
	}

	return &Client{HttpClient: httpClient, ProxyURL: proxyURL}, nil
}
