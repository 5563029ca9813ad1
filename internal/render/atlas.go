package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	GlyphWidth  = 8
	GlyphHeight = 16
	AtlasCols   = 16
	AtlasRows   = 8 // 128 ASCII codes
)

// FontAtlas holds the ASCII glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [128]*ebiten.Image
}

// NewFontAtlas renders printable ASCII with basicfont.Face7x13 at startup.
// Code 127 is a solid block used for gauges and the text cursor.
func NewFontAtlas() *FontAtlas {
	img := image.NewNRGBA(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	face := basicfont.Face7x13

	for code := 32; code < 128; code++ {
		cx := (code % AtlasCols) * GlyphWidth
		cy := (code / AtlasCols) * GlyphHeight
		if code == 127 {
			drawBlock(img, cx, cy)
			continue
		}
		drawFontGlyph(img, face, cx, cy, rune(code))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := 0; code < 128; code++ {
		x := (code % AtlasCols) * GlyphWidth
		y := (code / AtlasCols) * GlyphHeight
		a.glyphs[code] = eimg.SubImage(image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for an ASCII code. Anything else maps
// to '?'.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if r < 32 || r > 127 {
		r = '?'
	}
	return a.glyphs[r]
}

// Measure returns the pixel width of s at scale.
func (a *FontAtlas) Measure(s string, scale float64) float64 {
	n := 0
	for range s {
		n++
	}
	return float64(n*GlyphWidth) * scale
}

// Text draws s with its top-left corner at (x, y). Newlines start a new line.
func (a *FontAtlas) Text(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	var op ebiten.DrawImageOptions
	px, py := x, y
	for _, r := range s {
		if r == '\n' {
			px = x
			py += GlyphHeight * scale
			continue
		}
		if r != ' ' {
			op = ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(px, py)
			op.ColorScale.ScaleWithColor(clr)
			dst.DrawImage(a.Glyph(r), &op)
		}
		px += GlyphWidth * scale
	}
}

// drawFontGlyph renders a single character into the atlas.
// basicfont.Face7x13 glyphs are 7x13, baseline 2px above the cell bottom.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX, cellY+13),
	}
	d.DrawString(string(r))
}

func drawBlock(img *image.NRGBA, cellX, cellY int) {
	w := color.NRGBA{255, 255, 255, 255}
	for y := 2; y < GlyphHeight-2; y++ {
		for x := 0; x < GlyphWidth; x++ {
			img.SetNRGBA(cellX+x, cellY+y, w)
		}
	}
}
