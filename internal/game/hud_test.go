package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haunter-rpg/battlehud/internal/config"
)

func TestTicksHUD(t *testing.T) {
	c := config.Default().CTB
	c.TurnColors = []string{"#ffffff", "#ff0000"}
	c.TurnImages = []string{"day", "night"}
	h, err := NewTicksHUD(c)
	require.NoError(t, err)

	h.Counter.Jump(178)
	assert.Equal(t, "Ticks: 178 | Turn: 1", h.Text())
	assert.Equal(t, "day", h.Icon.Image())

	h.TurnChanged(2)
	for i := 0; i < 300; i++ {
		h.Step()
	}
	assert.Equal(t, color.RGBA{R: 255, A: 255}, h.Tint.Current())
	assert.Equal(t, "night", h.Icon.Image())
	_, up := h.Banner()
	assert.False(t, up, "banner times out")

	h.Lower(true)
	for i := 0; i < 10; i++ {
		h.Step()
	}
	assert.Equal(t, c.Panel.Y+c.Panel.Height+8, h.Slide.Value())
	h.Lower(false)
	for i := 0; i < 10; i++ {
		h.Step()
	}
	assert.Equal(t, c.Panel.Y, h.Slide.Value())
}

func TestTicksHUDRejectsBadColor(t *testing.T) {
	c := config.Default().CTB
	c.TurnColors = []string{"teal"}
	_, err := NewTicksHUD(c)
	assert.Error(t, err)
}
