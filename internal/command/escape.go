package command

import "github.com/haunter-rpg/battlehud/internal/pick"

// EscapeRatio is the base chance to flee given the average agility of both
// sides.
func EscapeRatio(partyAgility, troopAgility float64) float64 {
	if troopAgility <= 0 {
		return 1
	}
	return 0.5 * partyAgility / troopAgility
}

// EscapeOdds tracks the chance to flee for one battle. Every failure makes
// the next attempt more likely.
type EscapeOdds struct {
	ratio float64
	src   pick.Source
}

// NewEscapeOdds starts at ratio, drawing from src.
func NewEscapeOdds(ratio float64, src pick.Source) *EscapeOdds {
	return &EscapeOdds{ratio: ratio, src: src}
}

// Ratio returns the current success chance.
func (e *EscapeOdds) Ratio() float64 { return e.ratio }

// Try rolls one escape attempt.
func (e *EscapeOdds) Try() bool {
	if e.src() < e.ratio {
		return true
	}
	e.ratio += 0.1
	return false
}

// Escape runs an attempt from the actor menu. On failure the menu closes so
// the turn clock can resume without the actor's input.
func Escape(m *Menu, odds *EscapeOdds) bool {
	if odds.Try() {
		return true
	}
	m.Close()
	return false
}
