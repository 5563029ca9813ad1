package ctb

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Counter is a displayed number that walks toward its target at different
// speeds up and down.
type Counter struct {
	Up, Down  int
	displayed int
	target    int
}

// NewCounter returns a counter that rises by up and falls by down per step.
func NewCounter(up, down int) *Counter {
	return &Counter{Up: max(1, up), Down: max(1, down)}
}

// Set changes the target value.
func (c *Counter) Set(target int) { c.target = target }

// Jump shows target immediately.
func (c *Counter) Jump(target int) { c.target, c.displayed = target, target }

// Value returns the displayed value.
func (c *Counter) Value() int { return c.displayed }

// Step moves the displayed value and reports whether it changed.
func (c *Counter) Step() bool {
	switch {
	case c.displayed < c.target:
		c.displayed = min(c.target, c.displayed+c.Up)
	case c.displayed > c.target:
		c.displayed = max(c.target, c.displayed-c.Down)
	default:
		return false
	}
	return true
}

// Bezier evaluates the y coordinate of a cubic bezier with fixed end points
// 0 and 1 and control points y1 and y2.
func Bezier(t, y1, y2 float64) float64 {
	t = math.Max(0, math.Min(1, t))
	u := 1 - t
	return 3*u*u*t*y1 + 3*u*t*t*y2 + t*t*t
}

// ParseBezier reads "x1,y1,x2,y2" and returns the two y values.
func ParseBezier(s string) (y1, y2 float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return 0, 0, fmt.Errorf("bezier %q: want 4 values, got %d", s, len(parts))
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("bezier %q: %w", s, err)
		}
	}
	return vals[1], vals[3], nil
}

// Spin rotates the turn icon by half a turn each time it is triggered.
type Spin struct {
	Duration int
	Y1, Y2   float64

	from     float64
	to       float64
	rotation float64
	elapsed  int
	spinning bool
}

// NewSpin returns an idle spin animation.
func NewSpin(duration int, y1, y2 float64) *Spin {
	return &Spin{Duration: max(1, duration), Y1: y1, Y2: y2}
}

// Start begins another half turn from the current resting angle.
func (s *Spin) Start() {
	s.from = s.to
	s.to += math.Pi
	s.elapsed = 0
	s.spinning = true
}

// Advance runs n animation ticks.
func (s *Spin) Advance(n int) {
	for ; n > 0 && s.spinning; n-- {
		s.elapsed++
		p := float64(s.elapsed) / float64(s.Duration)
		if p >= 1 {
			s.rotation = s.to
			s.spinning = false
			return
		}
		s.rotation = s.from + Bezier(p, s.Y1, s.Y2)*(s.to-s.from)
	}
}

// Rotation returns the current angle in radians.
func (s *Spin) Rotation() float64 { return s.rotation }

// Spinning reports whether the animation is running.
func (s *Spin) Spinning() bool { return s.spinning }

// ColorFade blends a tint toward its target a fraction per tick.
type ColorFade struct {
	Speed   float64
	current color.RGBA
	target  color.RGBA
}

// NewColorFade returns a fade resting at c.
func NewColorFade(c color.RGBA, speed float64) *ColorFade {
	return &ColorFade{Speed: speed, current: c, target: c}
}

// SetTarget starts fading toward c.
func (f *ColorFade) SetTarget(c color.RGBA) { f.target = c }

// Current returns the displayed tint.
func (f *ColorFade) Current() color.RGBA { return f.current }

// Done reports whether the tint reached its target.
func (f *ColorFade) Done() bool { return f.current == f.target }

// Step blends one tick. Each channel moves at least one unit so the fade
// always finishes.
func (f *ColorFade) Step() {
	f.current.R = fadeChannel(f.current.R, f.target.R, f.Speed)
	f.current.G = fadeChannel(f.current.G, f.target.G, f.Speed)
	f.current.B = fadeChannel(f.current.B, f.target.B, f.Speed)
	f.current.A = fadeChannel(f.current.A, f.target.A, f.Speed)
}

func fadeChannel(cur, target uint8, speed float64) uint8 {
	if cur == target {
		return cur
	}
	diff := float64(target) - float64(cur)
	step := math.Round(diff * speed)
	if step == 0 {
		step = math.Copysign(1, diff)
	}
	if math.Abs(step) > math.Abs(diff) {
		step = diff
	}
	return uint8(float64(cur) + step)
}

// ParseHex reads "#RRGGBB" or "#RRGGBBAA".
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ImageSwap cross-fades the turn icon: fade out, switch image, fade in.
type ImageSwap struct {
	Duration int
	current  string
	pending  string
	t        int
	active   bool
}

// NewImageSwap returns a swap showing name.
func NewImageSwap(name string, duration int) *ImageSwap {
	return &ImageSwap{Duration: max(2, duration), current: name}
}

// Start begins swapping to name. Swapping to the shown image is a no-op.
func (s *ImageSwap) Start(name string) {
	if name == s.current && !s.active {
		return
	}
	s.pending = name
	s.t = 0
	s.active = true
}

// Advance runs n ticks.
func (s *ImageSwap) Advance(n int) {
	for ; n > 0 && s.active; n-- {
		s.t++
		if s.t*2 >= s.Duration {
			s.current = s.pending
		}
		if s.t >= s.Duration {
			s.active = false
		}
	}
}

// Image returns the image currently shown.
func (s *ImageSwap) Image() string { return s.current }

// Opacity returns 0..255 for the shown image.
func (s *ImageSwap) Opacity() uint8 {
	if !s.active {
		return 255
	}
	p := float64(s.t) / float64(s.Duration)
	if p <= 0.5 {
		return uint8(math.Round(255 * (1 - 2*p)))
	}
	return uint8(math.Round(255 * (p - 0.5) * 2))
}

// Curve selects an easing shape.
type Curve uint8

const (
	CurveLinear Curve = iota
	CurveEaseOut
	CurveEaseInOut
)

// ParseCurve maps a config name to a curve. Unknown names are linear.
func ParseCurve(name string) Curve {
	switch strings.ToLower(name) {
	case "easeout":
		return CurveEaseOut
	case "easeinout":
		return CurveEaseInOut
	}
	return CurveLinear
}

// Ease maps t in [0,1] through the curve.
func Ease(c Curve, t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	switch c {
	case CurveEaseOut:
		return 1 - (1-t)*(1-t)
	case CurveEaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	}
	return t
}

// Slide moves a value toward a target by a fraction each tick, shaped by a
// curve. It drives the vertical position of the ticks panel.
type Slide struct {
	Speed float64
	Curve Curve
	value float64
	from  float64
	to    float64
	t     float64
}

// NewSlide returns a slide resting at v.
func NewSlide(v, speed float64, c Curve) *Slide {
	return &Slide{Speed: speed, Curve: c, value: v, from: v, to: v, t: 1}
}

// SetTarget starts moving toward v.
func (s *Slide) SetTarget(v float64) {
	if v == s.to {
		return
	}
	s.from, s.to, s.t = s.value, v, 0
}

// Step advances one tick.
func (s *Slide) Step() {
	if s.t >= 1 {
		return
	}
	s.t = math.Min(1, s.t+s.Speed)
	s.value = s.from + (s.to-s.from)*Ease(s.Curve, s.t)
}

// Value returns the current position.
func (s *Slide) Value() float64 { return s.value }

// FormatTicks fills %1 with ticks and %2 with the turn number.
func FormatTicks(format string, ticks, turn int) string {
	r := strings.NewReplacer("%1", strconv.Itoa(ticks), "%2", strconv.Itoa(turn))
	return r.Replace(format)
}

// TurnEndLabel fills %1 with the number of the turn that is about to start.
func TurnEndLabel(format string, turn int) string {
	return strings.ReplaceAll(format, "%1", strconv.Itoa(turn+1))
}
