package domain

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes min, mean, max and population standard deviation of s.
func Summarize(s Samples) (Summary, error) {
	if len(s) == 0 {
		return Summary{}, ErrEmptyInput
	}

	sum := Summary{
		Count: len(s),
		Min:   floats.Min(s),
		Max:   floats.Max(s),
	}
	sum.Avg, sum.Std = stat.PopMeanStdDev(s, nil)

	// Rounding in the mean may step just outside [Min, Max].
	if sum.Avg < sum.Min {
		sum.Avg = sum.Min
	}
	if sum.Avg > sum.Max {
		sum.Avg = sum.Max
	}
	if sum.Min == sum.Max {
		sum.Std = 0
	} else if sum.Std == 0 {
		// Squared deviations of subnormal spreads underflow to zero.
		sum.Std = math.SmallestNonzeroFloat64
	}
	return sum, nil
}

// Table lays the summary out as a header row and a value row.
func (s Summary) Table(format func(float64) string) Table {
	return Table{
		{"Min", "Avg", "Max", "std"},
		{format(s.Min), format(s.Avg), format(s.Max), format(s.Std)},
	}
}
