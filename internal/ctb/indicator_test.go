package ctb

import (
	"image/color"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := NewCounter(10, 1)
	c.Set(25)
	var seen []int
	for c.Step() {
		seen = append(seen, c.Value())
	}
	assert.Equal(t, []int{10, 20, 25}, seen)

	c.Set(23)
	c.Step()
	assert.Equal(t, 24, c.Value())
	c.Step()
	assert.Equal(t, 23, c.Value())
	assert.False(t, c.Step())

	c.Jump(400)
	assert.Equal(t, 400, c.Value())
}

func TestBezier(t *testing.T) {
	assert.Zero(t, Bezier(0, 0, 1))
	assert.Equal(t, 1.0, Bezier(1, 0, 1))
	assert.InDelta(t, 0.5, Bezier(0.5, 0, 1), 1e-12)
	assert.InDelta(t, 0.3, Bezier(0.3, 1.0/3, 2.0/3), 1e-12)

	y1, y2, err := ParseBezier("0.42,0,0.58,1")
	require.NoError(t, err)
	assert.Zero(t, y1)
	assert.Equal(t, 1.0, y2)

	_, _, err = ParseBezier("0.42,0")
	assert.Error(t, err)
	_, _, err = ParseBezier("a,b,c,d")
	assert.Error(t, err)
}

func TestSpin(t *testing.T) {
	s := NewSpin(60, 0, 1)
	s.Start()
	s.Advance(30)
	assert.InDelta(t, math.Pi/2, s.Rotation(), 1e-9)
	assert.True(t, s.Spinning())

	s.Advance(30)
	assert.False(t, s.Spinning())
	assert.Equal(t, math.Pi, s.Rotation())

	s.Start()
	s.Advance(100)
	assert.Equal(t, 2*math.Pi, s.Rotation())
}

func TestColorFadeFinishes(t *testing.T) {
	f := NewColorFade(color.RGBA{A: 255}, 0.05)
	f.SetTarget(color.RGBA{R: 255, G: 1, B: 0, A: 255})
	steps := 0
	for !f.Done() && steps < 1000 {
		f.Step()
		steps++
	}
	assert.True(t, f.Done(), "fade stalled at %v", f.Current())
	assert.Less(t, steps, 200)
}

func TestColorFadeProperty(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("every fade terminates without overshoot", prop.ForAll(
		func(from, to uint8, speed float64) bool {
			f := NewColorFade(color.RGBA{R: from}, speed)
			f.SetTarget(color.RGBA{R: to})
			lo, hi := min(from, to), max(from, to)
			for i := 0; i < 300; i++ {
				f.Step()
				if r := f.Current().R; r < lo || r > hi {
					return false
				}
			}
			return f.Done()
		},
		gen.UInt8(),
		gen.UInt8(),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 128, A: 255}, c)

	c, err = ParseHex("#00000080")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.A)

	_, err = ParseHex("#zzz")
	assert.Error(t, err)
	_, err = ParseHex("#gg0000")
	assert.Error(t, err)
}

func TestImageSwap(t *testing.T) {
	s := NewImageSwap("turn_a", 30)
	s.Start("turn_a")
	assert.Equal(t, uint8(255), s.Opacity(), "same image does not swap")

	s.Start("turn_b")
	s.Advance(5)
	assert.Equal(t, "turn_a", s.Image())
	assert.Equal(t, uint8(170), s.Opacity())

	s.Advance(10)
	assert.Equal(t, "turn_b", s.Image())
	assert.Zero(t, s.Opacity())

	s.Advance(1)
	assert.Equal(t, uint8(17), s.Opacity())

	s.Advance(14)
	assert.Equal(t, uint8(255), s.Opacity())
	assert.Equal(t, "turn_b", s.Image())
}

func TestEase(t *testing.T) {
	for _, c := range []Curve{CurveLinear, CurveEaseOut, CurveEaseInOut} {
		assert.Zero(t, Ease(c, 0))
		assert.Equal(t, 1.0, Ease(c, 1))
		assert.Equal(t, 1.0, Ease(c, 3))
	}
	assert.Equal(t, 0.75, Ease(CurveEaseOut, 0.5))
	assert.Equal(t, 0.5, Ease(CurveEaseInOut, 0.5))
	assert.Equal(t, 0.125, Ease(CurveEaseInOut, 0.25))

	assert.Equal(t, CurveEaseOut, ParseCurve("easeOut"))
	assert.Equal(t, CurveEaseInOut, ParseCurve("EASEINOUT"))
	assert.Equal(t, CurveLinear, ParseCurve("bounce"))
}

func TestSlide(t *testing.T) {
	s := NewSlide(0, 0.2, CurveLinear)
	s.SetTarget(100)
	s.Step()
	assert.InDelta(t, 20, s.Value(), 1e-9)
	for i := 0; i < 10; i++ {
		s.Step()
	}
	assert.Equal(t, 100.0, s.Value())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Ticks: 120 | Turn: 3", FormatTicks("Ticks: %1 | Turn: %2", 120, 3))
	assert.Equal(t, "Turn 4 Start", TurnEndLabel("Turn %1 Start", 3))
}
