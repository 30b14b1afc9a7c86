package level

import "math"

// Stats holds level statistics of one envelope cycle.
type Stats struct {
	Length   int
	Mean     float64
	RMS      float64
	Max      float64
	MaxPos   int
	Min      float64
	MinPos   int
	Range    float64 // max - min
	Energy   float64 // sum of squares
	Variance float64
	// CrestFactor is Max / RMS; 0 for an all-zero cycle.
	CrestFactor float64
}

// Calculate computes all statistics in a single pass. Mean and variance use
// Welford's online update. The first occurrence wins for MaxPos and MinPos.
func Calculate(values []float64) Stats {
	n := len(values)
	if n == 0 {
		return Stats{}
	}

	var (
		mean   float64
		m2     float64
		sumSq  float64
		maxVal = values[0]
		maxPos int
		minVal = values[0]
		minPos int
	)
	for i, x := range values {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	s := Stats{
		Length:   n,
		Mean:     mean,
		RMS:      math.Sqrt(sumSq / float64(n)),
		Max:      maxVal,
		MaxPos:   maxPos,
		Min:      minVal,
		MinPos:   minPos,
		Range:    maxVal - minVal,
		Energy:   sumSq,
		Variance: m2 / float64(n),
	}
	if s.RMS > 0 {
		s.CrestFactor = math.Abs(maxVal) / s.RMS
	}
	return s
}

// CalculateInts is Calculate for integer table samples.
func CalculateInts(values []int) Stats {
	f := make([]float64, len(values))
	for i, v := range values {
		f[i] = float64(v)
	}
	return Calculate(f)
}
