package rdapexpiry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// LookupDomain performs the single RDAP domain query of a check run:
// GET <base>/domain/<ascii-name>. Outcomes are classified, never retried:
// a 404 means the domain is unknown to the registry, a transport error means
// the RDAP server is unreachable, and anything else non-2xx (or a body that
// is not RDAP JSON) is a protocol error. All three surface as UNKNOWN.
func (c *Client) LookupDomain(ctx context.Context, server RDAPServer, domain Domain) (*DomainResponse, error) {
	u := joinURL(server.BaseURL, "domain", domain.ASCII)

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u, nil)
	if err != nil {
		return nil, wrapCheckErrorf(FailureRDAPProtocol, err,
			"The RDAP lookup URL %s is invalid: %v", u, err)
	}
	req.Header.Set("Accept", "application/rdap+json, application/json;q=0.8, */*;q=0.1")
	req.Header.Set("User-Agent", c.ua)

	resp, err := c.hc.Do(req)
	if err != nil {
		host, port := hostPort(server.BaseURL)
		return nil, wrapCheckErrorf(FailureRDAPUnreachable, err,
			"The connection to the RDAP server %s (port %s) failed: %v", host, port, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, checkErrorf(FailureDomainNotFound,
			"The domain %s has not been found", domain.ASCII)
	case resp.StatusCode == http.StatusForbidden:
		return nil, checkErrorf(FailureRDAPProtocol,
			"Got %d, the RDAP server %s refused to reply", resp.StatusCode, server.BaseURL)
	case resp.StatusCode == http.StatusServiceUnavailable:
		return nil, checkErrorf(FailureRDAPProtocol,
			"Got %d, the RDAP server %s seems broken", resp.StatusCode, server.BaseURL)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, checkErrorf(FailureRDAPProtocol,
			"The RDAP server %s answered %s for %s", server.BaseURL, resp.Status, domain.ASCII)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, wrapCheckErrorf(FailureRDAPProtocol, err,
			"The RDAP response for %s could not be read: %v", domain.ASCII, err)
	}

	var dr DomainResponse
	if err := json.Unmarshal(body, &dr); err != nil {
		return nil, wrapCheckErrorf(FailureRDAPProtocol, err,
			"The RDAP response for %s is not valid JSON: %v", domain.ASCII, err)
	}

	c.log.Debug("fetched RDAP domain object",
		zap.String("url", u),
		zap.String("handle", dr.Handle),
		zap.Int("events", len(dr.Events)))
	return &dr, nil
}
