package rdapexpiry

import (
	"strings"

	"golang.org/x/net/idna"
)

// Domain is the normalized form of the user-supplied name: the raw input,
// its ASCII-compatible (punycode) encoding, and the dot-split labels.
// Built once per invocation and immutable afterwards.
type Domain struct {
	Raw    string
	ASCII  string
	Labels []string
}

// TLD returns the last label. The whole check treats this single label as
// the entire top-level domain; multi-label delegations such as co.uk are a
// documented limitation of the bootstrap lookup key.
func (d Domain) TLD() string { return d.Labels[len(d.Labels)-1] }

// NormalizeDomain converts a possibly-internationalized domain name into
// its lowercase ASCII lookup form. A name without at least two labels has
// no lookup target and is rejected.
func NormalizeDomain(raw string) (Domain, error) {
	name := strings.TrimSuffix(strings.TrimSpace(raw), ".")
	if name == "" || !strings.Contains(name, ".") {
		return Domain{}, checkErrorf(FailureInvalidDomain,
			"The name %q is not a checkable domain (need at least two labels)", raw)
	}

	ascii, err := idna.ToASCII(name)
	if err != nil {
		return Domain{}, wrapCheckErrorf(FailureInvalidDomain, err,
			"The name %q cannot be encoded for lookup: %v", raw, err)
	}
	ascii = strings.ToLower(ascii)

	labels := strings.Split(ascii, ".")
	for _, l := range labels {
		if l == "" {
			return Domain{}, checkErrorf(FailureInvalidDomain,
				"The name %q contains an empty label", raw)
		}
	}

	return Domain{Raw: raw, ASCII: ascii, Labels: labels}, nil
}
