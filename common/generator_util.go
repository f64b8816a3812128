package common

// FirstMaxGenerator scans generators in order and returns the first one
// attaining the maximum dimension seen so far, short-circuiting the scan as
// soon as a generator of dimensionCutoff is found (when cutoff is provided).
// Returns the zero Generator and false for an empty sequence.
func FirstMaxGenerator(generators []Generator, dimensionCutoff *int) (Generator, bool) {
	var max Generator
	found := false

	for _, g := range generators {
		if dimensionCutoff != nil && g.Dimension == *dimensionCutoff {
			return g, true
		}
		if !found || max.Dimension < g.Dimension {
			max = g
			found = true
		}
	}

	return max, found
}
