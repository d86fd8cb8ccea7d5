package motion

// ScrubMap maps scroll progress in [0,1] to property values per element.
// It must be pure: the same progress always yields the same values.
type ScrubMap func(progress float64) map[string]PropertySet

// Range is a linear interpolation interval.
type Range struct {
	From, To float64
}

// At returns the value at progress p.
func (r Range) At(p float64) float64 {
	return r.From + (r.To-r.From)*p
}

// Lerp builds a ScrubMap that interpolates every listed property linearly.
func Lerp(ranges map[string]map[Property]Range) ScrubMap {
	return func(p float64) map[string]PropertySet {
		p = clamp01(p)
		out := make(map[string]PropertySet, len(ranges))
		for target, props := range ranges {
			set := make(PropertySet, len(props))
			for k, r := range props {
				set[k] = r.At(p)
			}
			out[target] = set
		}
		return out
	}
}

// Progress returns where scrollY sits between start and end, clamped to
// [0,1]. A zero-length range is a step at start.
func Progress(scrollY, start, end float64) float64 {
	if end <= start {
		if scrollY >= start {
			return 1
		}
		return 0
	}
	return clamp01((scrollY - start) / (end - start))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
