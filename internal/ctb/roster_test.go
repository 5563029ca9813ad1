package ctb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeed(t *testing.T) {
	assert.Zero(t, Speed(0))
	assert.Zero(t, Speed(-5))
	assert.Zero(t, Speed(math.NaN()))
	assert.InDelta(t, math.Pow(70, 1.67)*0.00125, Speed(70), 1e-12)
	assert.Greater(t, Speed(71), Speed(70))
}

func TestTurnEndMarker(t *testing.T) {
	m := TurnEndPacing()
	per := m.PerTick()
	require.Greater(t, per, 0.0)

	assert.InDelta(t, 267/per+0.0001, m.TicksToReady(0), 1e-9)
	assert.InDelta(t, 0.0001, m.TicksToReady(1000), 1e-12)
	assert.Equal(t, int(math.Ceil(267/per)), m.TurnLength())
	assert.False(t, m.Ready(float64(m.TurnLength()-1)))
	assert.True(t, m.Ready(float64(m.TurnLength())))

	stalled := Pacing{Agility: 0, Start: 0, Full: 10}
	assert.True(t, math.IsInf(stalled.TicksToReady(0), 1))
	assert.Zero(t, stalled.TurnLength())
}

func TestRosterTurnEnds(t *testing.T) {
	r := NewRoster(TurnEndPacing(), true)
	r.Add(Battler{Name: "Reid", Agility: 70}, 0)

	length := TurnEndPacing().TurnLength()
	assert.Equal(t, length, r.RemainingTicks())
	for i := 1; i < length; i++ {
		res := r.Tick()
		require.False(t, res.TurnEnded, "tick %d", i)
		require.Empty(t, res.Ready, "tick %d", i)
	}
	assert.Equal(t, 1, r.RemainingTicks())

	res := r.Tick()
	assert.True(t, res.TurnEnded)
	assert.Equal(t, 2, r.Turn())
	assert.Zero(t, r.Elapsed())
	assert.Equal(t, length, r.RemainingTicks())
}

func TestRosterHoldsWhileReady(t *testing.T) {
	r := NewRoster(TurnEndPacing(), false)
	e := r.Add(Battler{Name: "Mira", Agility: 50}, FullCharge)

	res := r.Tick()
	assert.Equal(t, 1, len(res.Ready))
	assert.Equal(t, e, res.Ready[0])
	assert.Zero(t, r.Elapsed(), "clock must not run while a battler is ready")

	r.Act(e)
	res = r.Tick()
	assert.Empty(t, res.Ready)
	assert.Equal(t, 1, r.Elapsed())
}

func TestRosterOrder(t *testing.T) {
	r := NewRoster(TurnEndPacing(), true)
	slow := r.Add(Battler{Name: "Golem", Side: SideEnemy, Agility: 10}, 0)
	fast := r.Add(Battler{Name: "Reid", Agility: 100}, 300)

	order := r.Order()
	require.Len(t, order, 3)
	assert.Equal(t, fast, order[0].Entity)
	assert.True(t, order[1].TurnEnd)
	assert.Equal(t, slow, order[2].Entity)
	assert.Equal(t, SideEnemy, order[2].Side)

	r.Remove(fast)
	_, ok := r.Battler(fast)
	assert.False(t, ok)
	r.Remove(fast)
	assert.Len(t, r.Order(), 2)

	b, ok := r.Battler(slow)
	require.True(t, ok)
	assert.Equal(t, "Golem", b.Name)
}

func TestRosterOrderWithoutMarker(t *testing.T) {
	r := NewRoster(TurnEndPacing(), false)
	r.Add(Battler{Name: "Reid", Agility: 70}, 0)
	order := r.Order()
	require.Len(t, order, 1)
	assert.False(t, order[0].TurnEnd)
}

func TestTimeAttack(t *testing.T) {
	var ta TimeAttack
	assert.False(t, ta.Start(), "unarmed battle")
	assert.Nil(t, ta.Tick())

	ta.SetGoal(5)
	ta.SetWarning(2, 7)
	ta.SetGameOver(9)
	ta.Arm()
	require.True(t, ta.Start())
	assert.False(t, ta.Armed(), "arming is consumed by the battle")
	assert.Equal(t, 5, ta.Remaining())

	var got []Event
	for i := 0; i < 7; i++ {
		got = append(got, ta.Tick()...)
	}
	assert.Equal(t, []Event{
		{Kind: EventWarning, EventID: 7},
		{Kind: EventGameOver, EventID: 9},
	}, got)
	assert.Zero(t, ta.Remaining())
	assert.True(t, ta.Expired())

	ta.End()
	assert.False(t, ta.Active())
	assert.False(t, ta.Start(), "next battle is not armed")
}

func TestTimeAttackWithoutEvents(t *testing.T) {
	var ta TimeAttack
	ta.SetGoal(1)
	ta.Arm()
	ta.Start()
	assert.Empty(t, ta.Tick())
	assert.True(t, ta.Expired())
}
