// Package pick chooses one entry from a list of weighted options.
// It is used for character dialogue lines, where each line carries a
// relative chance and an optional side effect (a voiceline file).
package pick

import (
	"math"
	"math/rand/v2"
)

// Option is a single weighted candidate.
type Option struct {
	Text         string
	Weight       float64
	SideEffectID string // e.g. voiceline to play when chosen
}

// eligible reports whether the option has anything to show or play.
func (o Option) eligible() bool {
	return o.Text != "" || o.SideEffectID != ""
}

// weight returns the usable weight: negative and non-finite weights count as 0.
func (o Option) weight() float64 {
	w := o.Weight
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return 0
	}
	return w
}

// Source returns a uniform value in [0, 1).
type Source func() float64

// NewSource creates a deterministic source from a seed.
func NewSource(seed uint64) Source {
	rng := rand.New(rand.NewPCG(seed, seed>>16|7))
	return rng.Float64
}

// ZeroWeightPolicy decides what happens when no option carries weight.
type ZeroWeightPolicy uint8

const (
	// ZeroWeightUniform picks uniformly among options with text or a side effect.
	ZeroWeightUniform ZeroWeightPolicy = iota
	// ZeroWeightNone returns no option.
	ZeroWeightNone
)

// Selector picks options using an injected random source.
type Selector struct {
	src    Source
	policy ZeroWeightPolicy
}

// NewSelector creates a selector. A nil source falls back to math/rand/v2.
func NewSelector(src Source, policy ZeroWeightPolicy) *Selector {
	if src == nil {
		src = rand.Float64
	}
	return &Selector{src: src, policy: policy}
}

// Select returns one option, or false when the list is empty or nothing qualifies.
func (s *Selector) Select(options []Option) (Option, bool) {
	if len(options) == 0 {
		return Option{}, false
	}

	total := 0.0
	for _, o := range options {
		total += o.weight()
	}
	if total <= 0 {
		return s.selectUniform(options)
	}
	// Finite weights can still overflow the sum; walk them rescaled.
	div := 1.0
	if math.IsInf(total, 1) {
		for _, o := range options {
			div = math.Max(div, o.weight())
		}
		total = 0
		for _, o := range options {
			total += o.weight() / div
		}
	}

	r := s.draw() * total
	last := 0
	for i, o := range options {
		w := o.weight() / div
		if w > 0 {
			last = i
		}
		r -= w
		if r <= 0 {
			return o, true
		}
	}
	// Rounding can leave a sliver of r after the final subtraction.
	return options[last], true
}

func (s *Selector) selectUniform(options []Option) (Option, bool) {
	if s.policy == ZeroWeightNone {
		return Option{}, false
	}
	valid := make([]Option, 0, len(options))
	for _, o := range options {
		if o.eligible() {
			valid = append(valid, o)
		}
	}
	if len(valid) == 0 {
		return Option{}, false
	}
	idx := int(s.draw() * float64(len(valid)))
	if idx >= len(valid) {
		idx = len(valid) - 1
	}
	return valid[idx], true
}

// draw reads the source and clamps it into [0, 1).
func (s *Selector) draw() float64 {
	u := s.src()
	if math.IsNaN(u) || u < 0 {
		return 0
	}
	if u >= 1 {
		return math.Nextafter(1, 0)
	}
	return u
}

// Weighted is a convenience for a one-off pick with the uniform fallback.
func Weighted(options []Option, src Source) (Option, bool) {
	return NewSelector(src, ZeroWeightUniform).Select(options)
}
