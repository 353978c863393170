package rdapexpiry

import "time"

// eventActionExpiration is the standard RDAP event action tag for
// registration expiry (RFC 9083 §4.5).
const eventActionExpiration = "expiration"

// timestamp layouts accepted for eventDate: RDAP mandates full ISO-8601 with
// a zone offset, but some registries publish a bare date.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ExpirationTime scans a domain response for the expiration event and parses
// its timestamp. A response without one (non-compliant but seen in the wild)
// degrades to a classified failure, never a crash.
func ExpirationTime(resp *DomainResponse, domain Domain) (time.Time, error) {
	for _, ev := range resp.Events {
		if ev.EventAction != eventActionExpiration {
			continue
		}
		for _, layout := range eventDateLayouts {
			if t, err := time.Parse(layout, ev.EventDate); err == nil {
				return t, nil
			}
		}
		return time.Time{}, checkErrorf(FailureUnparsableTimestamp,
			"The expiration date %q for %s cannot be parsed", ev.EventDate, domain.ASCII)
	}
	return time.Time{}, checkErrorf(FailureNoExpirationEvent,
		"The RDAP record for %s does not have an expiration event", domain.ASCII)
}
