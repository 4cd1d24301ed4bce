package service

import "math"

// SnapPercentage snaps a slider percentage to the nearest value in
// discreteValues when within tolerance, and returns it unchanged otherwise.
//
// Discrete-unit sliders expose one stop per whole unit; the buffer zone
// around each stop lets imprecise drags land on the intended value. This is
// a pure function so rendering code stays out of the core.
func SnapPercentage(pct float64, discreteValues []float64, tolerance float64) float64 {
	if len(discreteValues) == 0 || tolerance < 0 {
		return pct
	}

	best := discreteValues[0]
	bestDist := math.Abs(pct - best)
	for _, v := range discreteValues[1:] {
		if d := math.Abs(pct - v); d < bestDist {
			best, bestDist = v, d
		}
	}

	if bestDist <= tolerance {
		return best
	}
	return pct
}

// DiscreteSliderStops returns the percentage positions for a discrete item
// with totalQuantity whole units: one stop per unit, ending at 100.
func DiscreteSliderStops(totalQuantity int) []float64 {
	if totalQuantity <= 0 {
		return nil
	}
	stops := make([]float64, totalQuantity)
	for i := 1; i <= totalQuantity; i++ {
		stops[i-1] = float64(i) / float64(totalQuantity) * 100
	}
	return stops
}
