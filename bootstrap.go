package rdapexpiry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// BootstrapRegistry maps a TLD to the ordered RDAP base URLs serving it, as
// published in the IANA DNS bootstrap document. Fetched fresh every
// invocation and discarded at process exit.
type BootstrapRegistry struct {
	services map[string][]string
}

// URLs returns the RDAP base URLs registered for a TLD, case-insensitively.
func (r *BootstrapRegistry) URLs(tld string) []string {
	return r.services[strings.ToLower(strings.TrimPrefix(tld, "."))]
}

// Len reports how many TLDs carry a delegation.
func (r *BootstrapRegistry) Len() int { return len(r.services) }

// RDAPServer is the authoritative RDAP endpoint resolved for a TLD: the
// first base URL of the bootstrap entry, trailing slash trimmed.
type RDAPServer struct {
	TLD     string
	BaseURL string
}

// FetchBootstrap retrieves and parses the IANA DNS bootstrap document in a
// single attempt. Any fetch or parse failure is a dependency failure of the
// check, distinct from "domain not found".
func (c *Client) FetchBootstrap(ctx context.Context) (*BootstrapRegistry, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.bootstrapURL, nil)
	if err != nil {
		return nil, wrapCheckErrorf(FailureBootstrapUnreachable, err,
			"The bootstrap registry URL %s is invalid: %v", c.bootstrapURL, err)
	}
	req.Header.Set("User-Agent", c.ua)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, wrapCheckErrorf(FailureBootstrapUnreachable, err,
			"The bootstrap registry %s could not be fetched: %v", c.bootstrapURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, checkErrorf(FailureBootstrapUnreachable,
			"The bootstrap registry %s answered %s", c.bootstrapURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20)) // 2MB cap
	if err != nil {
		return nil, wrapCheckErrorf(FailureBootstrapUnreachable, err,
			"The bootstrap registry %s could not be read: %v", c.bootstrapURL, err)
	}

	var obj struct {
		Services [][]any `json:"services"`
	}
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, wrapCheckErrorf(FailureBootstrapUnreachable, err,
			"The bootstrap registry %s could not be parsed: %v", c.bootstrapURL, err)
	}

	reg := &BootstrapRegistry{services: make(map[string][]string, len(obj.Services))}
	for _, svc := range obj.Services {
		if len(svc) != 2 {
			continue
		}
		tlds := toStringSlice(svc[0])
		urls := toStringSlice(svc[1])
		if len(urls) == 0 {
			continue
		}
		for i, u := range urls {
			urls[i] = strings.TrimRight(u, "/")
		}
		for _, tld := range tlds {
			reg.services[strings.ToLower(tld)] = urls
		}
	}
	c.log.Debug("fetched bootstrap registry",
		zap.String("url", c.bootstrapURL), zap.Int("tlds", reg.Len()))
	return reg, nil
}

// ResolveServer fetches the bootstrap registry and returns the RDAP server
// for a TLD. A TLD without a delegation is a terminal condition, not
// something to retry.
func (c *Client) ResolveServer(ctx context.Context, tld string) (RDAPServer, error) {
	reg, err := c.FetchBootstrap(ctx)
	if err != nil {
		return RDAPServer{}, err
	}
	urls := reg.URLs(tld)
	if len(urls) == 0 {
		return RDAPServer{}, checkErrorf(FailureNoRDAPServer,
			"The TLD %s does not have an RDAP server", tld)
	}
	srv := RDAPServer{TLD: tld, BaseURL: urls[0]}
	c.log.Debug("resolved RDAP server",
		zap.String("tld", srv.TLD), zap.String("base", srv.BaseURL))
	return srv, nil
}
