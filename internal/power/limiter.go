// Package power keeps a frame's estimated LED current inside a supply budget.
package power

import (
	"math"

	"github.com/coreman2200/funtimes-povwheel/internal/pixel"
	"github.com/coreman2200/funtimes-povwheel/internal/vec"
)

// Limiter applies two stages to a frame in place:
//  1. per-LED white cap: R+G+B (each as a fraction of full scale) is scaled
//     down to at most WhiteCap; 3 or more disables it
//  2. global budget: the frame's estimated current is compressed above
//     Knee*BudgetMA so that it never exceeds BudgetMA; 0 disables it
type Limiter struct {
	WhiteCap float32 `yaml:"white_cap"`
	ChanMA   float32 `yaml:"chan_ma"`
	BudgetMA float32 `yaml:"budget_ma"`
	Knee     float32 `yaml:"knee,omitempty"`
}

// Default matches a strip of WS2812-class LEDs with no budget set.
func Default() Limiter {
	return Limiter{WhiteCap: 3, ChanMA: 20, Knee: 0.9}
}

func (l Limiter) Enabled() bool {
	return (l.WhiteCap > 0 && l.WhiteCap < 3) || l.BudgetMA > 0
}

// Estimate is the current draw in mA for pix.
func (l Limiter) Estimate(pix []pixel.Color) float64 {
	var sum uint64
	for _, c := range pix {
		sum += uint64(c.R) + uint64(c.G) + uint64(c.B)
	}
	return float64(sum) / float64(pixel.Max) * float64(l.chanMA())
}

// Apply limits pix in place and returns the global scale it used (1 when the
// budget stage did nothing).
func (l Limiter) Apply(pix []pixel.Color) float32 {
	if l.WhiteCap > 0 && l.WhiteCap < 3 {
		capSum := l.WhiteCap * float32(pixel.Max)
		for i, c := range pix {
			s := float32(c.R) + float32(c.G) + float32(c.B)
			if s > capSum {
				pix[i] = c.Scale(capSum / s)
			}
		}
	}

	if l.BudgetMA <= 0 {
		return 1
	}
	total := l.Estimate(pix)
	if total <= 0 {
		return 1
	}
	s := float32(softKnee(total/float64(l.BudgetMA), float64(l.knee())))
	if s < 1 {
		vec.ScaleColors(pix, pix, s)
	}
	return s
}

// softKnee maps a load ratio to the scale that brings it under 1. Below the
// knee nothing changes; above it the ratio is compressed exponentially toward
// 1, with slope 1 at the knee.
func softKnee(ratio, knee float64) float64 {
	if ratio <= knee {
		return 1
	}
	span := 1 - knee
	out := knee + span*(1-math.Exp(-(ratio-knee)/span))
	return out / ratio
}

func (l Limiter) chanMA() float32 {
	if l.ChanMA > 0 {
		return l.ChanMA
	}
	return 20
}

func (l Limiter) knee() float32 {
	if l.Knee > 0 && l.Knee < 1 {
		return l.Knee
	}
	return 0.9
}
