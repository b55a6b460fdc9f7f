package backend

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NormalizedSeries is the drawing-space view of a dataset. It is recomputed
// on every call to [Dataset.Normalized] and never stored.
type NormalizedSeries struct {
	Values  []float64
	Targets []float64
	// Scale is the divisor applied to both series.
	Scale float64
	// DomainMin and DomainMax bound the raw data. Targets only participate
	// when at least one target is non-zero.
	DomainMin, DomainMax float64
	// Range is the normalized vertical extent of the chart.
	Range            float64
	IsNegativeDomain bool
}

// Normalized computes every derived series of the dataset.
func (d *Dataset) Normalized() NormalizedSeries {
	values := d.Values()
	targets := d.Targets()
	scale := ScaleFactor(values, targets)
	dMin, dMax := DomainBounds(values, targets)
	return NormalizedSeries{
		Values:           NormalizeSeries(values, scale),
		Targets:          NormalizeSeries(targets, scale),
		Scale:            scale,
		DomainMin:        dMin,
		DomainMax:        dMax,
		Range:            NormalizedRange(values, targets),
		IsNegativeDomain: IsNegativeDomain(values),
	}
}

// maxOf and minOf reduce to zero over an empty slice so that an empty
// dataset renders as a flat line at zero.
func maxOf(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Max(s)
}

func minOf(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Min(s)
}

// maxAbs is the infinity norm of s.
func maxAbs(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Norm(s, math.Inf(1))
}

// ScaleFactor returns the divisor used to normalize both series. It is never
// smaller than one, which avoids dividing by zero and over-amplifying
// datasets whose magnitudes are all below one.
func ScaleFactor(values, targets []float64) float64 {
	return max(1.0, maxAbs(values), maxAbs(targets))
}

// NormalizeSeries divides each element of series by scale.
func NormalizeSeries(series []float64, scale float64) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = v / scale
	}
	return out
}

// TargetsPresent reports whether any target is non-zero. An all-zero target
// column is treated as absent.
func TargetsPresent(targets []float64) bool {
	for _, t := range targets {
		if t != 0 {
			return true
		}
	}
	return false
}

// DomainBounds returns the minimum and maximum of the raw data, taken over
// values and targets when targets are present and over values alone
// otherwise. Both are zero for an empty value series.
func DomainBounds(values, targets []float64) (dMin, dMax float64) {
	if len(values) == 0 {
		return 0, 0
	}
	dMin, dMax = minOf(values), maxOf(values)
	if TargetsPresent(targets) {
		dMin = min(dMin, minOf(targets))
		dMax = max(dMax, maxOf(targets))
	}
	return dMin, dMax
}

// NormalizedRange returns the distance from the lowest normalized point to
// the highest normalized value. Normalized targets only lower the floor, and
// only when targets are present.
func NormalizedRange(values, targets []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	scale := ScaleFactor(values, targets)
	nValues := NormalizeSeries(values, scale)
	floor := minOf(nValues)
	if TargetsPresent(targets) {
		floor = min(floor, minOf(NormalizeSeries(targets, scale)))
	}
	return maxOf(nValues) - floor
}

// IsNegativeDomain reports whether any primary value is strictly negative.
// Targets are ignored.
func IsNegativeDomain(values []float64) bool {
	return minOf(values) < 0
}
