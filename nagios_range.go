package rdapexpiry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is a parsed Nagios threshold range. The grammar is [@]start:end
// where start defaults to 0, "~" means unbounded below, a missing end means
// unbounded above, and a bare number n is shorthand for 0:n. Without the
// "@" prefix the alert zone is outside [start,end]; with it, inside.
type Range struct {
	spec   string
	inside bool
	lo     float64
	hi     float64
}

// ParseRange parses a Nagios range spec into a tagged Range.
func ParseRange(spec string) (Range, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Range{}, fmt.Errorf("empty range spec")
	}

	r := Range{spec: s, lo: 0, hi: math.Inf(1)}
	body := s
	if strings.HasPrefix(body, "@") {
		r.inside = true
		body = body[1:]
	}

	loPart, hiPart := "", body
	if i := strings.IndexByte(body, ':'); i >= 0 {
		loPart, hiPart = body[:i], body[i+1:]
	}

	switch loPart {
	case "":
		// keep 0
	case "~":
		r.lo = math.Inf(-1)
	default:
		v, err := strconv.ParseFloat(loPart, 64)
		if err != nil {
			return Range{}, fmt.Errorf("range %q: bad lower bound %q", s, loPart)
		}
		r.lo = v
	}

	if hiPart != "" {
		v, err := strconv.ParseFloat(hiPart, 64)
		if err != nil {
			return Range{}, fmt.Errorf("range %q: bad upper bound %q", s, hiPart)
		}
		r.hi = v
	}

	if r.lo > r.hi {
		return Range{}, fmt.Errorf("range %q: lower bound exceeds upper bound", s)
	}
	return r, nil
}

// MustParseRange is ParseRange for known-good literals.
func MustParseRange(spec string) Range {
	r, err := ParseRange(spec)
	if err != nil {
		panic(err)
	}
	return r
}

// Violated reports whether v triggers the alert this range describes.
func (r Range) Violated(v float64) bool {
	in := v >= r.lo && v <= r.hi
	if r.inside {
		return in
	}
	return !in
}

// String returns the spec text as supplied, which is also what perfdata and
// the "(outside range ...)" clause show.
func (r Range) String() string { return r.spec }
