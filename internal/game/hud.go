package game

import (
	"fmt"
	"image/color"

	"github.com/haunter-rpg/battlehud/internal/config"
	"github.com/haunter-rpg/battlehud/internal/ctb"
)

// bannerDuration is how long the turn banner stays up (1.5 sec at 60 TPS).
const bannerDuration = 90

// TicksHUD is the animated turn panel: tick counter, spinning turn icon,
// turn tint, icon swap and vertical slide.
type TicksHUD struct {
	Counter *ctb.Counter
	Spin    *ctb.Spin
	Tint    *ctb.ColorFade
	Icon    *ctb.ImageSwap
	Slide   *ctb.Slide

	colors      []color.RGBA
	images      []string
	ticksFormat string
	bannerFmt   string

	turn   int
	banner string
	shown  int // ticks left for the banner
	restY  float64
	lowY   float64
}

// NewTicksHUD builds the panel from validated config.
func NewTicksHUD(c config.CTB) (*TicksHUD, error) {
	y1, y2, err := ctb.ParseBezier(c.SpinBezier)
	if err != nil {
		return nil, fmt.Errorf("turn icon spin: %w", err)
	}
	colors := make([]color.RGBA, 0, len(c.TurnColors))
	for _, hex := range c.TurnColors {
		col, err := ctb.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("turn tint: %w", err)
		}
		colors = append(colors, col)
	}
	if len(colors) == 0 {
		colors = append(colors, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	first := ""
	if len(c.TurnImages) > 0 {
		first = c.TurnImages[0]
	}
	return &TicksHUD{
		Counter:     ctb.NewCounter(c.CounterUp, c.CounterDown),
		Spin:        ctb.NewSpin(c.SpinDuration, y1, y2),
		Tint:        ctb.NewColorFade(colors[0], c.ColorChangeSpeed),
		Icon:        ctb.NewImageSwap(first, c.ImageDuration),
		Slide:       ctb.NewSlide(c.Panel.Y, c.SlideSpeed, ctb.ParseCurve(c.SlideCurve)),
		colors:      colors,
		images:      c.TurnImages,
		ticksFormat: c.TicksFormat,
		bannerFmt:   c.TurnEndLabel,
		turn:        1,
		restY:       c.Panel.Y,
		lowY:        c.Panel.Y + c.Panel.Height + 8,
	}, nil
}

// TurnChanged runs the turn transition into turn.
func (h *TicksHUD) TurnChanged(turn int) {
	prev := h.turn
	h.turn = turn
	if turn > 1 {
		h.Spin.Start()
	}
	h.Tint.SetTarget(h.colors[(turn-1)%len(h.colors)])
	if len(h.images) > 0 {
		h.Icon.Start(h.images[(turn-1)%len(h.images)])
	}
	h.banner = ctb.TurnEndLabel(h.bannerFmt, prev)
	h.shown = bannerDuration
}

// Lower moves the panel out of the way of the command menu.
func (h *TicksHUD) Lower(down bool) {
	if down {
		h.Slide.SetTarget(h.lowY)
		return
	}
	h.Slide.SetTarget(h.restY)
}

// Step advances every animation one tick.
func (h *TicksHUD) Step() {
	h.Counter.Step()
	h.Spin.Advance(1)
	h.Tint.Step()
	h.Icon.Advance(1)
	h.Slide.Step()
	if h.shown > 0 {
		h.shown--
	}
}

// Turn returns the turn shown.
func (h *TicksHUD) Turn() int { return h.turn }

// Text returns the counter line.
func (h *TicksHUD) Text() string {
	return ctb.FormatTicks(h.ticksFormat, h.Counter.Value(), h.turn)
}

// Banner returns the turn-end banner while it is up.
func (h *TicksHUD) Banner() (string, bool) {
	return h.banner, h.shown > 0
}
