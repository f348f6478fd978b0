package usecase

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInsufficientSample is returned when a statistic is undefined for the
// number of observations available (a mean of nothing, a sample standard
// deviation of fewer than two points, a ratio over an empty collection).
var ErrInsufficientSample = errors.New("insufficient sample")

// Mean is the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: mean of 0 observations", ErrInsufficientSample)
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// SampleStandardDeviation uses Bessel's correction: sqrt(Σ(x-mean)² / (N-1)).
func SampleStandardDeviation(xs []float64) (float64, error) {
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: standard deviation of %d observations", ErrInsufficientSample, len(xs))
	}
	mean, _ := Mean(xs)
	var squares float64
	for _, x := range xs {
		d := x - mean
		squares += d * d
	}
	return math.Sqrt(squares / float64(len(xs)-1)), nil
}

// Summary is the mean and sample standard deviation of one metric.
type Summary struct {
	Mean   float64
	StdDev float64
}

func Summarize(xs []float64) (Summary, error) {
	sd, err := SampleStandardDeviation(xs)
	if err != nil {
		return Summary{}, err
	}
	mean, _ := Mean(xs)
	return Summary{Mean: mean, StdDev: sd}, nil
}

// Above is the threshold mean + k·stddev.
func (s Summary) Above(k float64) float64 {
	return s.Mean + k*s.StdDev
}

// Below is the threshold mean − k·stddev.
func (s Summary) Below(k float64) float64 {
	return s.Mean - k*s.StdDev
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ints(counts []int) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c)
	}
	return out
}

func floats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out
}

// meanDecimal keeps money averages in fixed point.
func meanDecimal(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, fmt.Errorf("%w: mean of 0 amounts", ErrInsufficientSample)
	}
	return decimal.Sum(decimal.Zero, values...).Div(decimal.NewFromInt(int64(len(values)))), nil
}
