package internal

import (
	"math"
	"sort"
)

// Small numeric helpers shared by the aggregate views. Every function
// treats an empty input as "no value" rather than zero so that division
// guards stay explicit at the call sites.

// mean returns the arithmetic mean, false when values is empty.
func mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// median returns the middle value (average of the two middles for even
// counts), false when values is empty.
func median(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], true
	}
	return (sorted[mid-1] + sorted[mid]) / 2, true
}

// stddev returns the sample standard deviation, false for fewer than
// two values.
func stddev(values []float64) (float64, bool) {
	if len(values) < 2 {
		return 0, false
	}
	m, _ := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1)), true
}

// percentile returns the p-th percentile (p in [0,1]) using linear
// interpolation between closest ranks. This matches how the upstream
// exports were analyzed historically; nearest-rank would flip boundary
// hours in the peak-volume view.
func percentile(values []float64, p float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if len(sorted) == 1 {
		return sorted[0], true
	}
	if p <= 0 {
		return sorted[0], true
	}
	if p >= 1 {
		return sorted[len(sorted)-1], true
	}

	pos := p * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower], true
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower]), true
}

// distinctCount counts distinct non-empty strings.
func distinctCount(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// positiveValues collects the positive values from a set of optional
// fields. Nil, zero and negative entries are excluded, per the rule that
// invalid durations never enter an average.
func positiveValues(fields []*float64) []float64 {
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		if f != nil && *f > 0 {
			values = append(values, *f)
		}
	}
	return values
}

// presentValues collects the non-nil values from a set of optional fields.
func presentValues(fields []*float64) []float64 {
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		if f != nil {
			values = append(values, *f)
		}
	}
	return values
}

// round2 rounds to two decimal places, the precision the reports use.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
