package render

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/haunter-rpg/battlehud/internal/cards"
	"github.com/haunter-rpg/battlehud/internal/config"
	"github.com/haunter-rpg/battlehud/internal/game"
)

// Arrow float: ±4px on a sine with a 30-tick time constant.
const (
	arrowAmplitude = 4
	arrowPeriod    = 30
)

// CardRow draws a horizontally scrolling card list.
type CardRow struct {
	Atlas  *FontAtlas
	Images map[string]*ebiten.Image // card art by name; missing art draws the fallback card

	ArrowWidth  float64
	ArrowHeight float64
}

// NewCardRow creates a renderer using the arrow size from cfg.
func NewCardRow(atlas *FontAtlas, cfg config.Cards) *CardRow {
	return &CardRow{
		Atlas:       atlas,
		Images:      make(map[string]*ebiten.Image),
		ArrowWidth:  cfg.ArrowWidth,
		ArrowHeight: cfg.ArrowHeight,
	}
}

// ArrowFloat returns the shared vertical offset of both edge arrows.
func ArrowFloat(tick uint64) float64 {
	return math.Sin(float64(tick)/arrowPeriod) * arrowAmplitude
}

// Draw renders the visible cards of list inside win and the edge arrows.
func (r *CardRow) Draw(dst *ebiten.Image, list *cards.List, row []game.Card, win config.Window, tick uint64) {
	wx, wy := float32(win.X), float32(win.Y)
	vector.DrawFilledRect(dst, wx, wy, float32(win.Width), float32(win.Height), ColorPanel, false)
	vector.StrokeRect(dst, wx, wy, float32(win.Width), float32(win.Height), 1, ColorBorder, false)

	view := dst.SubImage(image.Rect(int(win.X), int(win.Y), int(win.X+win.Width), int(win.Y+win.Height))).(*ebiten.Image)
	vis := list.VisibleRange()
	for i := vis.First; i <= vis.Last && i < len(row); i++ {
		rect := list.ScreenRect(i)
		rect.X += win.X
		rect.Y += win.Y
		r.drawCard(view, row[i], rect, i == list.Selected())
	}

	lo := list.Layout()
	float := ArrowFloat(tick)
	ay := win.Y + lo.TopOffset + lo.CardHeight/2 - r.ArrowHeight/2 + float
	if list.CanScrollLeft() {
		r.drawArrow(dst, win.X+2, ay, -1)
	}
	if list.CanScrollRight() {
		r.drawArrow(dst, win.X+win.Width-r.ArrowWidth-2, ay, 1)
	}
}

func (r *CardRow) drawCard(dst *ebiten.Image, c game.Card, rect cards.Rect, selected bool) {
	x, y, w, h := float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H)
	border := ColorBorder
	if selected {
		border = ColorCardSelected
	}

	if img, ok := r.Images[c.Image]; ok && img != nil {
		b := img.Bounds()
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(rect.W/float64(b.Dx()), rect.H/float64(b.Dy()))
		op.GeoM.Translate(rect.X, rect.Y)
		dst.DrawImage(img, &op)
	} else {
		vector.DrawFilledRect(dst, x, y, w, h, ColorCard, false)
		tw := r.Atlas.Measure(c.Name, 1)
		r.Atlas.Text(dst, c.Name, rect.X+(rect.W-tw)/2, rect.Y+(rect.H-GlyphHeight)/2, 1, ColorText)
	}
	vector.StrokeRect(dst, x, y, w, h, 2, border, false)

	foot := rect.Y + rect.H - GlyphHeight - 4
	if c.Count > 0 {
		s := fmt.Sprintf("x%d", c.Count)
		r.Atlas.Text(dst, s, rect.X+rect.W-r.Atlas.Measure(s, 1)-6, foot, 1, ColorDim)
	}
	if c.Cost > 0 {
		r.Atlas.Text(dst, fmt.Sprintf("%d EN", c.Cost), rect.X+6, foot, 1, ColorEnergy)
	}
}

// drawArrow draws a chevron pointing left (dir < 0) or right.
func (r *CardRow) drawArrow(dst *ebiten.Image, x, y float64, dir int) {
	x0, x1 := float32(x+r.ArrowWidth*0.75), float32(x+r.ArrowWidth*0.25)
	if dir > 0 {
		x0, x1 = x1, x0
	}
	top, mid, bot := float32(y), float32(y+r.ArrowHeight/2), float32(y+r.ArrowHeight)
	vector.StrokeLine(dst, x0, top, x1, mid, 3, ColorText, true)
	vector.StrokeLine(dst, x1, mid, x0, bot, 3, ColorText, true)
}
