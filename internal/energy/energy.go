// Package energy tracks a slowly regenerating stamina pool that keeps
// filling while the game is closed.
package energy

import (
	"math"
	"time"
)

// FramesPerSecond is the tick rate used to convert wall time into frames.
const FramesPerSecond = 60

// Timer refills energy by Increment every FramesPerIncrement ticks up to Max.
type Timer struct {
	Max                int
	FramesPerIncrement int
	Increment          int

	Value  int
	frames int // ticks counted toward the next increment
}

// NewTimer returns a timer with the given limits, starting at value.
// Non-positive intervals and increments fall back to 1.
func NewTimer(maxEnergy, framesPerIncrement, increment, value int) *Timer {
	t := &Timer{
		Max:                max(0, maxEnergy),
		FramesPerIncrement: max(1, framesPerIncrement),
		Increment:          max(1, increment),
	}
	t.Set(value)
	return t
}

// Set stores a value clamped to [0, Max].
func (t *Timer) Set(v int) { t.Value = min(max(0, v), t.Max) }

// Spend removes n energy if enough is available.
func (t *Timer) Spend(n int) bool {
	if n < 0 || t.Value < n {
		return false
	}
	t.Value -= n
	return true
}

// Full reports whether the pool is at its maximum.
func (t *Timer) Full() bool { return t.Value >= t.Max }

// Tick counts one frame. It reports whether energy was added.
func (t *Timer) Tick() bool {
	if t.Full() {
		return false
	}
	t.frames++
	if t.frames < t.FramesPerIncrement {
		return false
	}
	t.frames = 0
	t.Set(t.Value + t.Increment)
	return true
}

// Progress returns how far the next increment is, in [0,1).
func (t *Timer) Progress() float64 {
	return float64(t.frames) / float64(t.FramesPerIncrement)
}

// Stamp is the persisted energy state.
type Stamp struct {
	Energy  int       `yaml:"energy"`
	SavedAt time.Time `yaml:"saved_at"`
}

// Stamp records the current value at now.
func (t *Timer) Stamp(now time.Time) Stamp {
	return Stamp{Energy: t.Value, SavedAt: now}
}

// Restore loads a stamp and credits the increments earned since it was saved.
// It returns the amount added.
func (t *Timer) Restore(s Stamp, now time.Time) int {
	t.Set(s.Energy)
	t.frames = 0
	return t.CatchUp(now.Sub(s.SavedAt))
}

// CatchUp credits whole increments for elapsed wall time and returns the
// amount added. Negative durations add nothing.
func (t *Timer) CatchUp(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	frames := elapsed.Seconds() * FramesPerSecond
	steps := math.Floor(frames / float64(t.FramesPerIncrement))
	if steps <= 0 {
		return 0
	}
	before := t.Value
	gain := steps * float64(t.Increment)
	if gain >= float64(t.Max) {
		t.Set(t.Max)
	} else {
		t.Set(t.Value + int(gain))
	}
	return t.Value - before
}
