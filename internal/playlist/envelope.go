package playlist

import "sort"

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// 6x^5 - 15x^4 + 10x^3
func smootherstep(x float64) float64 {
	return x * x * x * (x*(x*6-15) + 10)
}

func easeApply(kind string, x float64) float64 {
	switch kind {
	case "smooth":
		return x * x * (3 - 2*x)
	case "cubic":
		return smootherstep(x)
	default:
		return x
	}
}

// ValidEase reports whether kind names a known easing; empty means linear.
func ValidEase(kind string) bool {
	switch kind {
	case "", "linear", "smooth", "cubic":
		return true
	}
	return false
}

// Sort orders the keys by time. Keys with equal T keep their order.
func (e *Envelope) Sort() {
	sort.SliceStable(e.Keys, func(i, j int) bool { return e.Keys[i].T < e.Keys[j].T })
}

// Eval returns the envelope's value at t seconds. No keys gives def; outside
// the keyed range the nearest end value holds.
func (e Envelope) Eval(t, def float64) float64 {
	n := len(e.Keys)
	switch {
	case n == 0:
		return def
	case n == 1, t <= e.Keys[0].T:
		return e.Keys[0].V
	case t >= e.Keys[n-1].T:
		return e.Keys[n-1].V
	}
	for i := 0; i < n-1; i++ {
		a, b := e.Keys[i], e.Keys[i+1]
		if t < a.T || t > b.T {
			continue
		}
		den := b.T - a.T
		if den <= 0 {
			return b.V
		}
		u := easeApply(a.Ease, clamp01((t-a.T)/den))
		return a.V + (b.V-a.V)*u
	}
	return e.Keys[n-1].V
}
