package ctb

import (
	"cmp"
	"math"
	"slices"

	"github.com/mlange-42/ark/ecs"
)

// Side is the party a battler fights for.
type Side uint8

const (
	SideActor Side = iota
	SideEnemy
)

// Battler is the identity component of a combatant.
type Battler struct {
	Name    string
	Side    Side
	Agility float64
}

// Charge is the action gauge of a combatant.
type Charge struct {
	Value float64
}

// FullCharge is the gauge value at which a battler may act.
const FullCharge = 400

// Slot is one entry of the predicted turn order.
type Slot struct {
	Entity  ecs.Entity
	Name    string
	Side    Side
	TurnEnd bool
	Ticks   float64
}

// TickResult reports what one clock tick produced.
type TickResult struct {
	Ready     []ecs.Entity
	TurnEnded bool
}

// Roster holds the battlers of one battle and the turn clock.
type Roster struct {
	world    *ecs.World
	spawn    *ecs.Map2[Battler, Charge]
	battlers *ecs.Map[Battler]
	charges  *ecs.Map[Charge]
	filter   *ecs.Filter2[Battler, Charge]

	marker        Pacing
	markerEnabled bool
	elapsed       int
	turn          int
}

// NewRoster creates an empty roster. The marker paces turn ends.
func NewRoster(marker Pacing, showMarker bool) *Roster {
	w := ecs.NewWorld(64)
	return &Roster{
		world:         w,
		spawn:         ecs.NewMap2[Battler, Charge](w),
		battlers:      ecs.NewMap[Battler](w),
		charges:       ecs.NewMap[Charge](w),
		filter:        ecs.NewFilter2[Battler, Charge](w),
		marker:        marker,
		markerEnabled: showMarker,
		turn:          1,
	}
}

// Add spawns a battler with a starting charge.
func (r *Roster) Add(b Battler, charge float64) ecs.Entity {
	return r.spawn.NewEntity(&b, &Charge{Value: math.Max(0, charge)})
}

// Remove takes a battler out of the fight. Unknown entities are ignored.
func (r *Roster) Remove(e ecs.Entity) {
	if r.world.Alive(e) {
		r.world.RemoveEntity(e)
	}
}

// Battler returns the identity of e.
func (r *Roster) Battler(e ecs.Entity) (Battler, bool) {
	if !r.world.Alive(e) {
		return Battler{}, false
	}
	return *r.battlers.Get(e), true
}

// Act resets the charge of a battler that just took its action.
func (r *Roster) Act(e ecs.Entity) {
	if r.world.Alive(e) {
		r.charges.Get(e).Value = 0
	}
}

// Turn returns the current turn number, starting at 1.
func (r *Roster) Turn() int { return r.turn }

// Elapsed returns ticks spent in the current turn.
func (r *Roster) Elapsed() int { return r.elapsed }

// RemainingTicks returns the ticks left before the turn ends.
func (r *Roster) RemainingTicks() int {
	return max(0, r.marker.TurnLength()-r.elapsed)
}

// Ready returns battlers whose gauge is full, in query order.
func (r *Roster) Ready() []ecs.Entity {
	var ready []ecs.Entity
	q := r.filter.Query()
	for q.Next() {
		_, c := q.Get()
		if c.Value >= FullCharge {
			ready = append(ready, q.Entity())
		}
	}
	return ready
}

// Tick advances the clock by one step. The clock holds while any battler is
// ready so that battler can choose an action.
func (r *Roster) Tick() TickResult {
	if ready := r.Ready(); len(ready) > 0 {
		return TickResult{Ready: ready}
	}

	var res TickResult
	q := r.filter.Query()
	for q.Next() {
		b, c := q.Get()
		c.Value += Speed(b.Agility)
		if c.Value >= FullCharge {
			res.Ready = append(res.Ready, q.Entity())
		}
	}

	r.elapsed++
	if r.marker.Ready(float64(r.elapsed)) {
		r.turn++
		r.elapsed = 0
		res.TurnEnded = true
	}
	return res
}

// Order predicts who acts next, soonest first, with the turn-end marker
// placed among the battlers when enabled.
func (r *Roster) Order() []Slot {
	var slots []Slot
	q := r.filter.Query()
	for q.Next() {
		b, c := q.Get()
		ticks := math.Inf(1)
		if per := Speed(b.Agility); per > 0 {
			ticks = math.Max(0, FullCharge-c.Value) / per
		}
		slots = append(slots, Slot{Entity: q.Entity(), Name: b.Name, Side: b.Side, Ticks: ticks})
	}
	if r.markerEnabled {
		slots = append(slots, Slot{TurnEnd: true, Name: "Turn End", Ticks: r.marker.TicksToReady(float64(r.elapsed))})
	}
	slices.SortStableFunc(slots, func(a, b Slot) int {
		if c := cmp.Compare(a.Ticks, b.Ticks); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return slots
}
