// Package rdapexpiry implements a Nagios-style check of how many days remain
// before a domain registration expires, with RDAP as the only data source.
// One call to Check.Run performs the whole pipeline: normalize the domain,
// resolve the authoritative RDAP server from the IANA bootstrap registry,
// query it, extract the expiration event, and classify the remaining days
// against warning/critical ranges.
package rdapexpiry

import (
	"context"
	"errors"
	"time"
)

// Check binds a Client to a Threshold for one pipeline run.
type Check struct {
	client    *Client
	threshold Threshold
	now       func() time.Time
}

// NewCheck returns a Check evaluating against th.
func NewCheck(client *Client, th Threshold) *Check {
	return &Check{client: client, threshold: th, now: time.Now}
}

// Run executes the pipeline for one domain and always returns a usable
// CheckResult: the first classified failure anywhere short-circuits to an
// UNKNOWN verdict carrying that failure's message. Nothing is retried and
// there is no partial success.
func (ck *Check) Run(ctx context.Context, rawDomain string) CheckResult {
	domain, err := NormalizeDomain(rawDomain)
	if err != nil {
		return ck.unknown(err)
	}

	server, err := ck.client.ResolveServer(ctx, domain.TLD())
	if err != nil {
		return ck.unknown(err)
	}

	resp, err := ck.client.LookupDomain(ctx, server, domain)
	if err != nil {
		return ck.unknown(err)
	}

	expiration, err := ExpirationTime(resp, domain)
	if err != nil {
		return ck.unknown(err)
	}

	return Evaluate(expiration, ck.now(), ck.threshold)
}

func (ck *Check) unknown(err error) CheckResult {
	msg := err.Error()
	var ce *CheckError
	if !errors.As(err, &ce) {
		msg = "unexpected failure: " + msg
	}
	return CheckResult{Status: StatusUnknown, Message: msg, Threshold: ck.threshold}
}
