package vowel

import "math"

// Cluster is one vowel region in (F1, F2) space: an inclusive bounding box
// plus a centroid used to break ties between overlapping boxes.
type Cluster struct {
	Label    Label
	F1Min    float64
	F1Max    float64
	F2Min    float64
	F2Max    float64
	CenterF1 float64
	CenterF2 float64
}

// The boxes overlap and do not all contain their own centroid. They are
// tuned against the LPC envelope of this pipeline rather than a formant
// chart, so keep them as they are.
var clusters = [...]Cluster{
	{Label: LabelA, F1Min: 1200, F1Max: 2000, F2Min: 1800, F2Max: 2800, CenterF1: 750, CenterF2: 1180},
	{Label: LabelI, F1Min: 400, F1Max: 1000, F2Min: 3000, F2Max: 6000, CenterF1: 300, CenterF2: 2200},
	{Label: LabelU, F1Min: 200, F1Max: 600, F2Min: 1000, F2Max: 3200, CenterF1: 350, CenterF2: 1100},
	{Label: LabelE, F1Min: 800, F1Max: 1200, F2Min: 2000, F2Max: 4800, CenterF1: 520, CenterF2: 1900},
	{Label: LabelO, F1Min: 500, F1Max: 1500, F2Min: 900, F2Max: 2000, CenterF1: 480, CenterF2: 900},
}

// Clusters returns a copy of the vowel cluster table, indexed by
// Observation.
func Clusters() []Cluster {
	out := make([]Cluster, len(clusters))
	copy(out, clusters[:])
	return out
}

// Contains reports whether (f1, f2) belongs to the cluster: inside the
// box, or exactly on the centroid.
func (c Cluster) Contains(f1, f2 float64) bool {
	if f1 == c.CenterF1 && f2 == c.CenterF2 {
		return true
	}
	return f1 >= c.F1Min && f1 <= c.F1Max && f2 >= c.F2Min && f2 <= c.F2Max
}

// Distance returns the Euclidean distance in Hz from (f1, f2) to the
// centroid.
func (c Cluster) Distance(f1, f2 float64) float64 {
	return math.Hypot(f1-c.CenterF1, f2-c.CenterF2)
}

// Classify returns the index of the nearest-centroid cluster among those
// containing (f1, f2), or -1 when none does or both formants are zero.
func Classify(f1, f2 float64) int {
	if f1 == 0 && f2 == 0 {
		return -1
	}
	best := -1
	bestDist := math.Inf(1)
	for i, c := range clusters {
		if !c.Contains(f1, f2) {
			continue
		}
		if d := c.Distance(f1, f2); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// ClassifyLabel is Classify mapped to a label, with LabelNone for no match.
func ClassifyLabel(f1, f2 float64) Label {
	if i := Classify(f1, f2); i >= 0 {
		return clusters[i].Label
	}
	return LabelNone
}
