// Package cards models a horizontally scrolling row of fixed-size cards:
// eased scrolling, cursor-driven targeting, drag scrolling, tap selection,
// hover lift and edge-arrow visibility. It draws nothing; a renderer reads
// the query methods every frame.
package cards

import "math"

// Layout holds the fixed geometry of one card row, in pixels.
type Layout struct {
	CardWidth  float64
	CardHeight float64
	Spacing    float64
	TopOffset  float64 // y of every card inside the viewport

	ViewportWidth  float64
	ViewportHeight float64
}

// Tuning holds the animation and gesture constants.
type Tuning struct {
	EasingDivisor  float64 // larger = slower ease
	SnapEpsilon    float64 // distance at which scrolling snaps to target
	MarginFraction float64 // viewport share kept between cursor card and edge
	DragThreshold  float64 // pixels a pointer must travel to count as a drag
	LiftTarget     float64 // vertical offset of the selected card
	LiftRate       float64 // fraction of the remaining lift covered per tick
	ArrowSlack     float64 // overflow tolerated before the right arrow shows
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		EasingDivisor:  8,
		SnapEpsilon:    0.5,
		MarginFraction: 0.3,
		DragThreshold:  5,
		LiftTarget:     -10,
		LiftRate:       0.2,
		ArrowSlack:     1,
	}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Range is an inclusive span of card indices. Empty when Last < First.
type Range struct {
	First, Last int
}

// Empty reports whether the range holds no index.
func (r Range) Empty() bool { return r.Last < r.First }

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Last - r.First + 1
}

type dragSession struct {
	active        bool
	moved         bool
	pointerX      float64
	scrollAtStart float64
}

// List is the scroll and interaction state of one card row.
type List struct {
	layout Layout
	tuning Tuning

	count    int
	scroll   float64
	target   float64
	selected int
	lift     []float64
	drag     dragSession
}

// New creates a list with count cards and nothing selected.
func New(layout Layout, tuning Tuning, count int) *List {
	l := &List{
		layout:   sanitizeLayout(layout),
		tuning:   sanitizeTuning(tuning),
		selected: -1,
	}
	l.SetItemCount(count)
	return l
}

func sanitizeLayout(lo Layout) Layout {
	lo.CardWidth = math.Max(finite(lo.CardWidth), 1)
	lo.CardHeight = math.Max(finite(lo.CardHeight), 1)
	lo.Spacing = math.Max(finite(lo.Spacing), 0)
	lo.TopOffset = finite(lo.TopOffset)
	lo.ViewportWidth = math.Max(finite(lo.ViewportWidth), 0)
	lo.ViewportHeight = math.Max(finite(lo.ViewportHeight), 0)
	return lo
}

func sanitizeTuning(tu Tuning) Tuning {
	def := DefaultTuning()
	if !(tu.EasingDivisor > 1) || math.IsInf(tu.EasingDivisor, 0) {
		tu.EasingDivisor = def.EasingDivisor
	}
	if !(tu.SnapEpsilon > 0) || math.IsInf(tu.SnapEpsilon, 0) {
		tu.SnapEpsilon = def.SnapEpsilon
	}
	tu.MarginFraction = clamp(finite(tu.MarginFraction), 0, 0.5)
	tu.DragThreshold = math.Max(finite(tu.DragThreshold), 0)
	tu.LiftTarget = finite(tu.LiftTarget)
	tu.LiftRate = clamp(finite(tu.LiftRate), 0, 1)
	tu.ArrowSlack = math.Max(finite(tu.ArrowSlack), 0)
	return tu
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Layout returns the sanitized geometry.
func (l *List) Layout() Layout { return l.layout }

// Count returns the number of cards.
func (l *List) Count() int { return l.count }

// ScrollOffset returns the current (animated) scroll position.
func (l *List) ScrollOffset() float64 { return l.scroll }

// TargetOffset returns the position the scroll eases toward.
func (l *List) TargetOffset() float64 { return l.target }

// Selected returns the focused card index, or -1.
func (l *List) Selected() int { return l.selected }

// Dragging reports whether a pointer gesture is in progress.
func (l *List) Dragging() bool { return l.drag.active }

func (l *List) unit() float64 { return l.layout.CardWidth + l.layout.Spacing }

// ContentWidth returns the width of all cards laid end to end.
func (l *List) ContentWidth() float64 {
	if l.count == 0 {
		return 0
	}
	return float64(l.count)*l.unit() - l.layout.Spacing
}

// MaxScroll returns the largest valid scroll offset.
func (l *List) MaxScroll() float64 {
	return math.Max(0, l.ContentWidth()-l.layout.ViewportWidth)
}

func (l *List) clampScroll(v float64) float64 {
	return clamp(finite(v), 0, l.MaxScroll())
}

// SetItemCount changes the number of cards, keeping selection and offsets valid.
func (l *List) SetItemCount(n int) {
	if n < 0 {
		n = 0
	}
	l.count = n
	if len(l.lift) > n {
		l.lift = l.lift[:n]
	}
	for len(l.lift) < n {
		l.lift = append(l.lift, 0)
	}
	if l.selected >= n {
		l.selected = n - 1
	}
	l.scroll = l.clampScroll(l.scroll)
	l.target = l.clampScroll(l.target)
}

// Resize changes the viewport, keeping offsets valid.
func (l *List) Resize(width, height float64) {
	l.layout.ViewportWidth = math.Max(finite(width), 0)
	l.layout.ViewportHeight = math.Max(finite(height), 0)
	l.scroll = l.clampScroll(l.scroll)
	l.target = l.clampScroll(l.target)
}

// Rect returns the content-space rectangle of card i, without scroll or lift.
func (l *List) Rect(i int) Rect {
	return Rect{
		X: float64(i) * l.unit(),
		Y: l.layout.TopOffset,
		W: l.layout.CardWidth,
		H: l.layout.CardHeight,
	}
}

// ScreenRect returns card i in viewport space with scroll and lift applied.
// Lift is rounded to whole pixels for drawing.
func (l *List) ScreenRect(i int) Rect {
	r := l.Rect(i)
	r.X -= l.scroll
	r.Y += math.Round(l.Lift(i))
	return r
}

// Lift returns the current hover offset of card i (negative is up).
func (l *List) Lift(i int) float64 {
	if i < 0 || i >= len(l.lift) {
		return 0
	}
	return l.lift[i]
}

// VisibleRange returns the cards that may intersect the viewport, padded by
// one card on each side. Renderers must draw only this span.
func (l *List) VisibleRange() Range {
	if l.count == 0 {
		return Range{First: 0, Last: -1}
	}
	left := l.scroll
	right := left + l.layout.ViewportWidth
	u := l.unit()
	first := max(0, int(math.Floor(left/u))-1)
	last := min(l.count-1, int(math.Ceil(right/u))+1)
	return Range{First: first, Last: last}
}

// CanScrollLeft reports whether content is hidden past the left edge.
func (l *List) CanScrollLeft() bool {
	return l.count > 0 && l.scroll > 0
}

// CanScrollRight reports whether the last card extends past the right edge.
func (l *List) CanScrollRight() bool {
	if l.count == 0 {
		return false
	}
	last := l.Rect(l.count - 1)
	return last.Right() > l.scroll+l.layout.ViewportWidth+l.tuning.ArrowSlack
}

// HitTest returns the card under the viewport point (x, y), or -1.
// Lifted cards are hit where ScreenRect draws them.
func (l *List) HitTest(x, y float64) int {
	if !l.insideViewport(x, y) {
		return -1
	}
	cx := x + l.scroll
	r := l.VisibleRange()
	for i := r.First; i <= r.Last; i++ {
		rect := l.Rect(i)
		rect.Y += math.Round(l.Lift(i))
		if rect.Contains(cx, y) {
			return i
		}
	}
	return -1
}

func (l *List) insideViewport(x, y float64) bool {
	return x >= 0 && x < l.layout.ViewportWidth && y >= 0 && y < l.layout.ViewportHeight
}
