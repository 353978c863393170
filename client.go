package rdapexpiry

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// IANADNSBootstrapURL is the published IANA directory mapping TLDs to their
// authoritative RDAP base URLs.
const IANADNSBootstrapURL = "https://data.iana.org/rdap/dns.json"

// Doer is the minimal http.Client interface we depend on (handy for tests/mocks).
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client performs the two network calls of a check run: the bootstrap fetch
// and the domain lookup. It is constructed explicitly at the start of the
// single pipeline pass; there is no ambient global state and no caching,
// so every invocation sees the registries fresh.
type Client struct {
	hc           Doer
	ua           string
	timeout      time.Duration
	bootstrapURL string
	log          *zap.Logger
}

// New returns a ready Client with good defaults.
func New(opts ...Option) *Client {
	c := &Client{
		hc:           defaultHTTPClient(),
		ua:           "check-rdap-expiry/0.1 (+https://github.com/datum-labs/check-rdap-expiry)",
		timeout:      15 * time.Second,
		bootstrapURL: IANADNSBootstrapURL,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func defaultHTTPClient() *http.Client { return &http.Client{Timeout: 15 * time.Second} }
