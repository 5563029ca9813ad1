package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haunter-rpg/battlehud/internal/pick"
)

func fixed(u float64) pick.Source { return func() float64 { return u } }

func cast() []Character {
	return []Character{
		{ActorID: 2, Portrait: "MenuVincent", Phrases: []pick.Option{
			{Text: "Hi", Weight: 20, SideEffectID: "VincentTrick"},
			{Text: "Hum", Weight: 30, SideEffectID: "VincentHumming"},
		}},
		{ActorID: 3, Portrait: "MenuCamila", Phrases: []pick.Option{
			{Text: "La", Weight: 100},
		}},
		{ActorID: 9, Portrait: "MenuGhost"},
	}
}

func TestChoose(t *testing.T) {
	c, ok := Choose(cast(), []int{1, 3, 2}, fixed(0))
	require.True(t, ok)
	assert.Equal(t, 2, c.ActorID, "first present character for u=0")

	c, ok = Choose(cast(), []int{1, 3, 2}, fixed(0.99))
	require.True(t, ok)
	assert.Equal(t, 3, c.ActorID)

	_, ok = Choose(cast(), []int{1, 4}, fixed(0))
	assert.False(t, ok)
	_, ok = Choose(nil, []int{2}, fixed(0))
	assert.False(t, ok)
}

func TestSchedulerCycle(t *testing.T) {
	p := Params{MinInterval: 3, MaxInterval: 3, CharDelay: 2, DisplayDuration: 2}
	s := NewScheduler(p, cast()[0], fixed(0), pick.ZeroWeightUniform)

	for i := 0; i < 2; i++ {
		_, ok := s.Tick()
		require.False(t, ok)
	}
	ev, ok := s.Tick()
	require.True(t, ok)
	assert.Equal(t, Event{Kind: EventShow, Text: "Hi", Voice: "VincentTrick"}, ev)
	assert.True(t, s.Open())
	assert.Empty(t, s.Text())

	s.Tick()
	assert.Empty(t, s.Text())
	s.Tick()
	assert.Equal(t, "H", s.Text())
	s.Tick()
	s.Tick()
	assert.Equal(t, "Hi", s.Text())
	assert.True(t, s.Revealed())

	s.Tick()
	assert.True(t, s.Open(), "held for the display duration")
	ev, ok = s.Tick()
	require.True(t, ok)
	assert.Equal(t, EventStop, ev.Kind)
	assert.False(t, s.Open())
	assert.Equal(t, 3, s.Countdown(), "timer only runs while closed")
}

func TestFractionalCharDelay(t *testing.T) {
	p := Params{MinInterval: 1, MaxInterval: 1, CharDelay: 0.5, DisplayDuration: 10}
	s := NewScheduler(p, Character{Phrases: []pick.Option{{Text: "abcd", Weight: 1}}}, fixed(0), pick.ZeroWeightUniform)
	_, ok := s.Tick()
	require.True(t, ok)
	s.Tick()
	assert.Equal(t, "ab", s.Text())
	s.Tick()
	assert.Equal(t, "abcd", s.Text())
	assert.Equal(t, 2, RevealDuration("abcd", 0.5))
	assert.Zero(t, RevealDuration("abcd", 0))
}

func TestSchedulerNoPhrases(t *testing.T) {
	p := Params{MinInterval: 1, MaxInterval: 1, CharDelay: 1, DisplayDuration: 1}
	s := NewScheduler(p, cast()[2], fixed(0), pick.ZeroWeightUniform)
	for i := 0; i < 5; i++ {
		_, ok := s.Tick()
		assert.False(t, ok)
	}
	assert.False(t, s.Open())
}

func TestSchedulerInterval(t *testing.T) {
	s := NewScheduler(DefaultParams(), cast()[1], fixed(0.5), pick.ZeroWeightUniform)
	assert.Equal(t, 600, s.Countdown())

	inverted := Params{MinInterval: 50, MaxInterval: 10}
	s = NewScheduler(inverted, cast()[1], fixed(0.9), pick.ZeroWeightUniform)
	assert.Equal(t, 50, s.Countdown())
}

func TestDismiss(t *testing.T) {
	p := Params{MinInterval: 1, MaxInterval: 1, CharDelay: 2, DisplayDuration: 100}
	s := NewScheduler(p, cast()[1], fixed(0), pick.ZeroWeightUniform)
	_, ok := s.Dismiss()
	assert.False(t, ok)

	s.Tick()
	require.True(t, s.Open())
	ev, ok := s.Dismiss()
	require.True(t, ok)
	assert.Equal(t, EventStop, ev.Kind)
	assert.Empty(t, s.Text())
}
