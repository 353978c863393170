package rdapexpiry

import (
	"fmt"
	"math"
	"time"
)

// Default threshold ranges. The alert zones are inside-ranges: warn while
// 15..30 days remain, go critical at 15 days or less (so the two zones
// deliberately overlap at 15, where critical wins by precedence).
const (
	DefaultWarningRange  = "@15:30"
	DefaultCriticalRange = "@~:15"
)

// Threshold is the pair of ranges a check run evaluates against.
type Threshold struct {
	Warning  Range
	Critical Range
}

// NewThreshold parses the two range specs into a Threshold.
func NewThreshold(warning, critical string) (Threshold, error) {
	w, err := ParseRange(warning)
	if err != nil {
		return Threshold{}, fmt.Errorf("warning: %w", err)
	}
	c, err := ParseRange(critical)
	if err != nil {
		return Threshold{}, fmt.Errorf("critical: %w", err)
	}
	return Threshold{Warning: w, Critical: c}, nil
}

// DefaultThreshold returns the stock warning/critical pair.
func DefaultThreshold() Threshold {
	return Threshold{
		Warning:  MustParseRange(DefaultWarningRange),
		Critical: MustParseRange(DefaultCriticalRange),
	}
}

// Status is the Nagios plugin verdict. The numeric values are the process
// exit codes and must never change.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// CheckResult is the single outcome of a check run: a verdict, the status
// line message, and (for successful pipeline runs) the days metric plus the
// threshold it was evaluated against.
type CheckResult struct {
	Status    Status
	Message   string
	Days      int
	HasMetric bool
	Threshold Threshold
}

// DaysUntil computes signed whole days between now and the expiration
// instant, flooring so that 12 hours past expiry already reads as -1.
func DaysUntil(expiration, now time.Time) int {
	return int(math.Floor(expiration.Sub(now).Hours() / 24))
}

// Evaluate classifies days-to-expiration against the threshold. Critical is
// checked before warning so the more severe verdict wins where the zones
// overlap. Pure: same inputs, same result.
func Evaluate(expiration, now time.Time, th Threshold) CheckResult {
	days := DaysUntil(expiration, now)
	msg := fmt.Sprintf("%d days until domain expires", days)

	status := StatusOK
	switch {
	case th.Critical.Violated(float64(days)):
		status = StatusCritical
		msg += fmt.Sprintf(" (outside range %s)", th.Critical)
	case th.Warning.Violated(float64(days)):
		status = StatusWarning
		msg += fmt.Sprintf(" (outside range %s)", th.Warning)
	}

	return CheckResult{
		Status:    status,
		Message:   msg,
		Days:      days,
		HasMetric: true,
		Threshold: th,
	}
}
