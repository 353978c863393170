package rdapexpiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var evalNow = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func expiringIn(days int) time.Time {
	// One hour past the whole-day mark keeps the floor on the intended value.
	return evalNow.Add(time.Duration(days)*24*time.Hour + time.Hour)
}

func TestDaysUntil_FloorsTowardMinusInfinity(t *testing.T) {
	assert.Equal(t, 0, DaysUntil(evalNow.Add(12*time.Hour), evalNow))
	assert.Equal(t, 1, DaysUntil(evalNow.Add(24*time.Hour), evalNow))
	assert.Equal(t, -1, DaysUntil(evalNow.Add(-12*time.Hour), evalNow))
	assert.Equal(t, -31, DaysUntil(evalNow.Add(-31*24*time.Hour), evalNow))
	assert.Equal(t, -32, DaysUntil(evalNow.Add(-31*24*time.Hour-time.Hour), evalNow))
}

func TestEvaluate_DefaultThresholds(t *testing.T) {
	th := DefaultThreshold()

	cases := []struct {
		days    int
		status  Status
		message string
	}{
		{113, StatusOK, "113 days until domain expires"},
		{31, StatusOK, "31 days until domain expires"},
		{17, StatusWarning, "17 days until domain expires (outside range @15:30)"},
		{30, StatusWarning, "30 days until domain expires (outside range @15:30)"},
		// 15 sits in both zones; critical is checked first and wins.
		{15, StatusCritical, "15 days until domain expires (outside range @~:15)"},
		{0, StatusCritical, "0 days until domain expires (outside range @~:15)"},
		{-31, StatusCritical, "-31 days until domain expires (outside range @~:15)"},
	}
	for _, tc := range cases {
		res := Evaluate(expiringIn(tc.days), evalNow, th)
		assert.Equal(t, tc.status, res.Status, "days %d", tc.days)
		assert.Equal(t, tc.message, res.Message, "days %d", tc.days)
		assert.Equal(t, tc.days, res.Days, "days %d", tc.days)
		assert.True(t, res.HasMetric)
	}
}

func TestEvaluate_IsDeterministic(t *testing.T) {
	th := DefaultThreshold()
	exp := expiringIn(17)
	first := Evaluate(exp, evalNow, th)
	second := Evaluate(exp, evalNow, th)
	assert.Equal(t, first, second)
}

func TestEvaluate_CustomOutsideRanges(t *testing.T) {
	// Plain Nagios outside-semantics: acceptable is >= 45 days.
	th, err := NewThreshold("45:", "20:")
	require.NoError(t, err)

	assert.Equal(t, StatusOK, Evaluate(expiringIn(60), evalNow, th).Status)
	assert.Equal(t, StatusWarning, Evaluate(expiringIn(30), evalNow, th).Status)
	assert.Equal(t, StatusCritical, Evaluate(expiringIn(10), evalNow, th).Status)
}

func TestNewThreshold_BadSpecs(t *testing.T) {
	_, err := NewThreshold("nope", "@~:15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warning")

	_, err = NewThreshold("@15:30", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "critical")
}
