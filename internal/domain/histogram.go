package domain

import (
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Hist splits [min, max] of the samples into n equal-width buckets and counts
// the samples falling in each. The last bucket includes max.
func (s Samples) Hist(n int) (Histogram, error) {
	if len(s) == 0 {
		return Histogram{}, ErrEmptyInput
	}
	if n < 1 {
		return Histogram{}, ErrInvalidBins
	}
	for _, v := range s {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Histogram{}, ErrNonFinite
		}
	}

	min, max := floats.Min(s), floats.Max(s)
	if min == max {
		return Histogram{
			Bins:   []float64{min},
			Counts: []int{len(s)},
		}, nil
	}

	dividers := make([]float64, n+1)
	floats.Span(dividers, min, max)
	// stat.Histogram treats the upper divider as exclusive.
	dividers[n] = math.Nextafter(max, math.Inf(1))

	sorted := slices.Clone(s)
	slices.Sort(sorted)
	counts := stat.Histogram(nil, dividers, sorted, nil)

	h := Histogram{
		Bins:   dividers[:n],
		Counts: make([]int, n),
		Width:  (max - min) / float64(n),
	}
	for i, c := range counts {
		h.Counts[i] = int(c)
	}
	return h, nil
}

// Table lays the histogram out as a header row and one row per bucket.
func (h Histogram) Table(format func(float64) string) Table {
	t := make(Table, 0, len(h.Bins)+1)
	t = append(t, []string{"bin", "count"})
	for i, b := range h.Bins {
		t = append(t, []string{format(b), strconv.Itoa(h.Counts[i])})
	}
	return t
}
