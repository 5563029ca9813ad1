// Package ctb implements charge-turn-battle pacing: battler charge, the
// turn-end marker, turn order, the time-attack countdown and the animated
// indicators drawn over the battle scene.
package ctb

import "math"

// Speed returns the charge a battler gains per tick for an agility value.
func Speed(agility float64) float64 {
	if !(agility > 0) || math.IsInf(agility, 0) {
		return 0
	}
	return math.Pow(agility, 1.67) * 0.00125
}

// Pacing describes how fast something charges from Start to Full.
type Pacing struct {
	Agility float64
	Start   float64
	Full    float64
}

// TurnEndPacing is the synthetic battler that marks the end of a turn.
func TurnEndPacing() Pacing {
	return Pacing{Agility: 70, Start: 133, Full: 400}
}

// PerTick returns the charge gained per tick.
func (p Pacing) PerTick() float64 { return Speed(p.Agility) }

// Charge returns the charge after elapsed ticks.
func (p Pacing) Charge(elapsed float64) float64 {
	return p.Start + elapsed*p.PerTick()
}

// Ready reports whether the charge is full after elapsed ticks.
func (p Pacing) Ready(elapsed float64) bool {
	return p.Charge(elapsed) >= p.Full
}

// TicksToReady returns the ticks left until full charge. The small bias
// sorts the marker after a battler that becomes ready on the same tick.
func (p Pacing) TicksToReady(elapsed float64) float64 {
	per := p.PerTick()
	if per <= 0 {
		return math.Inf(1)
	}
	remain := math.Max(0, p.Full-p.Charge(elapsed))
	return remain/per + 0.0001
}

// TurnLength returns how many ticks a full turn lasts.
func (p Pacing) TurnLength() int {
	per := p.PerTick()
	if per <= 0 {
		return 0
	}
	return int(math.Ceil(math.Max(0, p.Full-p.Start) / per))
}
