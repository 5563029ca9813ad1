package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/haunter-rpg/battlehud/internal/ctb"
	"github.com/haunter-rpg/battlehud/internal/game"
)

// Screen layout, in pixels.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	logX, logY, logLines     = 40, 16, 8
	orderX, orderY           = 1040, 200
	dialogX, dialogY         = 300, 180
	dialogW, dialogH         = 640, 84
	energyX, energyY         = 1040, 684
	energyW, energyH         = 224, 20
	iconSize                 = 32
	bannerY                  = 300
	bannerScale      float64 = 3
)

// HUD draws a battle session.
type HUD struct {
	Atlas *FontAtlas
	Row   *CardRow
	Icons map[string]*ebiten.Image // turn icons by name

	defaultIcon *ebiten.Image
}

// NewHUD creates the renderer. Card and icon art can be added to Row.Images
// and Icons before the first frame.
func NewHUD(atlas *FontAtlas, row *CardRow) *HUD {
	icon := ebiten.NewImage(iconSize, iconSize)
	vector.DrawFilledRect(icon, 4, 4, iconSize-8, iconSize-8, color.White, false)
	vector.DrawFilledRect(icon, iconSize/2-2, 0, 4, iconSize, color.White, false)
	return &HUD{
		Atlas:       atlas,
		Row:         row,
		Icons:       make(map[string]*ebiten.Image),
		defaultIcon: icon,
	}
}

// Draw renders every HUD element for the current frame.
func (h *HUD) Draw(dst *ebiten.Image, s *game.Sim) {
	dst.Fill(ColorBackdrop)
	h.drawLog(dst, s.Log)
	h.drawTicksPanel(dst, s)
	h.drawOrder(dst, s)
	h.drawEnergy(dst, s)
	if s.Menu != nil {
		h.drawMenu(dst, s)
	}
	if list, row, win, ok := s.OpenRow(); ok {
		h.Row.Draw(dst, list, row, win, s.Ticks)
	}
	if s.Dialogue != nil && s.Dialogue.Open() {
		h.drawDialogue(dst, s)
	}
	if text, ok := s.HUD.Banner(); ok {
		h.centered(dst, text, bannerY, bannerScale, ColorTurnEnd)
	}
	if s.Phase == game.PhaseEnded {
		h.centered(dst, "Battle over. Press Esc to quit.", bannerY+60, 2, ColorWarning)
	}
}

func (h *HUD) centered(dst *ebiten.Image, text string, y, scale float64, clr color.Color) {
	w := h.Atlas.Measure(text, scale)
	h.Atlas.Text(dst, text, (ScreenWidth-w)/2, y, scale, clr)
}

func (h *HUD) drawLog(dst *ebiten.Image, log *game.MessageLog) {
	for i, m := range log.Recent(logLines) {
		h.Atlas.Text(dst, m.Text, logX, logY+float64(i*GlyphHeight), 1, MessageColor(m.Priority))
	}
}

func (h *HUD) drawTicksPanel(dst *ebiten.Image, s *game.Sim) {
	p := s.Cfg.CTB.Panel
	y := s.HUD.Slide.Value()
	vector.DrawFilledRect(dst, float32(p.X), float32(y), float32(p.Width), float32(p.Height), ColorPanel, false)
	vector.StrokeRect(dst, float32(p.X), float32(y), float32(p.Width), float32(p.Height), 1, ColorBorder, false)

	icon := h.defaultIcon
	if img, ok := h.Icons[s.HUD.Icon.Image()]; ok {
		icon = img
	}
	b := icon.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(iconSize/float64(b.Dx()), iconSize/float64(b.Dy()))
	op.GeoM.Rotate(s.HUD.Spin.Rotation())
	op.GeoM.Translate(p.X+8+iconSize/2, y+p.Height/2)
	op.ColorScale.ScaleWithColor(s.HUD.Tint.Current())
	op.ColorScale.ScaleAlpha(float32(s.HUD.Icon.Opacity()) / 255)
	dst.DrawImage(icon, &op)

	clr := ColorText
	if s.TimeAttack.Active() {
		clr = ColorWarning
	}
	h.Atlas.Text(dst, s.HUD.Text(), p.X+iconSize+16, y+p.Height/2-GlyphHeight/2, 1, clr)
}

func (h *HUD) drawOrder(dst *ebiten.Image, s *game.Sim) {
	h.Atlas.Text(dst, "Order", orderX, orderY, 1, ColorDim)
	for i, slot := range s.Roster.Order() {
		clr, name := ColorText, slot.Name
		switch {
		case slot.TurnEnd:
			clr, name = ColorTurnEnd, ctb.TurnEndLabel(s.Cfg.CTB.TurnEndLabel, s.Roster.Turn())
		case slot.Side == ctb.SideEnemy:
			clr = ColorEnemy
		}
		line := fmt.Sprintf("%-12s %4.0f", name, slot.Ticks)
		h.Atlas.Text(dst, line, orderX, orderY+float64((i+1)*GlyphHeight), 1, clr)
	}
}

func (h *HUD) drawEnergy(dst *ebiten.Image, s *game.Sim) {
	e := s.Energy
	vector.DrawFilledRect(dst, energyX, energyY, energyW, energyH, ColorPanel, false)
	if e.Max > 0 {
		fill := float32(e.Value) / float32(e.Max) * energyW
		vector.DrawFilledRect(dst, energyX, energyY, fill, energyH, ColorEnergy, false)
	}
	vector.StrokeRect(dst, energyX, energyY, energyW, energyH, 1, ColorBorder, false)
	h.Atlas.Text(dst, fmt.Sprintf("Energy %d/%d", e.Value, e.Max), energyX+6, energyY+2, 1, ColorText)
}

func (h *HUD) drawMenu(dst *ebiten.Image, s *game.Sim) {
	cmds := s.Menu.Commands()
	height := float32(len(cmds) * game.MenuRowHeight)
	vector.DrawFilledRect(dst, game.MenuX, game.MenuY, game.MenuWidth, height, ColorPanel, false)
	vector.StrokeRect(dst, game.MenuX, game.MenuY, game.MenuWidth, height, 1, ColorBorder, false)
	h.Atlas.Text(dst, s.Menu.Actor().Name, game.MenuX, game.MenuY-GlyphHeight-4, 1, ColorAction)

	for i, c := range cmds {
		y := float64(game.MenuY + i*game.MenuRowHeight)
		if i == s.Menu.Index() && s.Phase == game.PhaseCommand {
			vector.StrokeRect(dst, game.MenuX+2, float32(y)+2, game.MenuWidth-4, game.MenuRowHeight-4, 2, ColorCardSelected, false)
		}
		clr := ColorText
		if !c.Enabled {
			clr = ColorDim
		}
		h.Atlas.Text(dst, c.Name, game.MenuX+12, y+(game.MenuRowHeight-GlyphHeight)/2, 1, clr)
	}
}

func (h *HUD) drawDialogue(dst *ebiten.Image, s *game.Sim) {
	vector.DrawFilledRect(dst, dialogX, dialogY, dialogW, dialogH, ColorPanel, false)
	vector.StrokeRect(dst, dialogX, dialogY, dialogW, dialogH, 1, ColorDialogue, false)
	h.Atlas.Text(dst, s.Speaker.Portrait, dialogX+12, dialogY+8, 1, ColorDialogue)
	h.Atlas.Text(dst, s.Dialogue.Text(), dialogX+12, dialogY+32, 1, ColorText)
}
