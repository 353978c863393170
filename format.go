package rdapexpiry

import (
	"fmt"
	"strings"
)

// serviceName prefixes every status line; monitoring configs key on it.
const serviceName = "EXPIRATION"

// StatusLine renders the one line the plugin prints on stdout:
//
//	EXPIRATION OK - 113 days until domain expires | daystoexpiration=113d;@15:30;@~:15
//
// Results without a metric (the UNKNOWN failures) omit the perfdata segment.
func (r CheckResult) StatusLine() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s - %s", serviceName, r.Status, r.Message)
	if r.HasMetric {
		fmt.Fprintf(&b, " | daystoexpiration=%dd;%s;%s",
			r.Days, r.Threshold.Warning, r.Threshold.Critical)
	}
	return b.String()
}

// ExitCode maps the verdict to the Nagios plugin exit-code contract:
// OK=0, WARNING=1, CRITICAL=2, UNKNOWN=3.
func (r CheckResult) ExitCode() int { return int(r.Status) }
