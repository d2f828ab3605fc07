package vowel

import "math"

// Initial gate levels bias the first frames toward unvoiced until the
// moving averages settle.
const (
	initialUnder     = 1e-5
	initialAbove     = 1e-4
	initialThreshold = 1e-6

	gateKeep  = 0.99
	gateBlend = 0.01

	underWeight = 0.85
	aboveWeight = 0.15
)

// EnergyGate decides whether a frame carries enough energy to be worth
// spectral analysis. It tracks the typical silence and speech energy with
// two exponential moving averages and places the decision threshold
// between them.
type EnergyGate struct {
	under     float64
	above     float64
	threshold float64
}

// NewEnergyGate returns a gate in its initial state.
func NewEnergyGate() *EnergyGate {
	g := &EnergyGate{}
	g.Reset()
	return g
}

// Reset restores the initial levels.
func (g *EnergyGate) Reset() {
	g.under = initialUnder
	g.above = initialAbove
	g.threshold = initialThreshold
}

// Check compares volume (mean squared sample) against the current
// threshold, folds it into the matching average and recomputes the
// threshold. It returns true for voiced frames. A non-finite volume is
// unvoiced and leaves the levels untouched.
func (g *EnergyGate) Check(volume float64) bool {
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return false
	}
	voiced := volume >= g.threshold
	if voiced {
		g.above = gateKeep*g.above + gateBlend*volume
	} else {
		g.under = gateKeep*g.under + gateBlend*volume
	}
	g.threshold = underWeight*g.under + aboveWeight*g.above
	return voiced
}

// Levels returns the silence average, speech average and threshold.
func (g *EnergyGate) Levels() (under, above, threshold float64) {
	return g.under, g.above, g.threshold
}
