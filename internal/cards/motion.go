package cards

import "math"

// Phase identifies the stage of a pointer gesture.
type Phase uint8

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

// PointerEvent is a mouse or touch sample in viewport coordinates.
type PointerEvent struct {
	X, Y  float64
	Phase Phase
}

// OutcomeKind says what a pointer gesture did.
type OutcomeKind uint8

const (
	OutcomeNone     OutcomeKind = iota
	OutcomeSelect               // a different card became selected
	OutcomeActivate             // the selected card was tapped again
)

// Outcome is the result of feeding one pointer event.
type Outcome struct {
	Kind  OutcomeKind
	Index int
}

// Advance runs n simulation ticks of scroll easing and hover lift.
func (l *List) Advance(n int) {
	for ; n > 0; n-- {
		l.stepScroll()
		l.stepLift()
	}
}

// stepScroll moves scroll a fixed fraction toward target and snaps once within
// epsilon. It never moves past target.
func (l *List) stepScroll() {
	if l.drag.active {
		return
	}
	diff := l.target - l.scroll
	if math.Abs(diff) <= l.tuning.SnapEpsilon {
		l.scroll = l.target
		return
	}
	l.scroll += diff / l.tuning.EasingDivisor
	if math.Abs(l.target-l.scroll) <= l.tuning.SnapEpsilon {
		l.scroll = l.target
	}
}

func (l *List) stepLift() {
	r := l.VisibleRange()
	for i := r.First; i <= r.Last; i++ {
		goal := 0.0
		if i == l.selected {
			goal = l.tuning.LiftTarget
		}
		l.lift[i] += (goal - l.lift[i]) * l.tuning.LiftRate
	}
}

// Select focuses card i (-1 clears). Out-of-range indices are clamped.
// Outside a drag the view re-targets so the card stays clear of the edges.
func (l *List) Select(i int) {
	if i < -1 {
		i = -1
	}
	if i >= l.count {
		i = l.count - 1
	}
	l.selected = i
	if !l.drag.active {
		l.ScrollToCursor()
	}
}

// Next moves the cursor one card right. It reports whether the cursor moved.
func (l *List) Next() bool {
	if l.count == 0 || l.selected >= l.count-1 {
		return false
	}
	l.Select(l.selected + 1)
	return true
}

// Prev moves the cursor one card left. It reports whether the cursor moved.
func (l *List) Prev() bool {
	if l.selected <= 0 {
		return false
	}
	l.Select(l.selected - 1)
	return true
}

// ScrollToCursor re-targets the scroll so the selected card sits inside the
// edge margins, clamped to the valid scroll range.
func (l *List) ScrollToCursor() {
	if l.selected < 0 {
		return
	}
	rect := l.Rect(l.selected)
	vw := l.layout.ViewportWidth
	margin := vw * l.tuning.MarginFraction

	target := l.target
	if rect.Right() > target+vw-margin {
		target = rect.Right() - vw + margin
	}
	if rect.X < target+margin {
		target = rect.X - margin
	}
	l.target = l.clampScroll(target)
}

// Pointer feeds one pointer event and reports any selection change.
func (l *List) Pointer(ev PointerEvent) Outcome {
	x, y := finite(ev.X), finite(ev.Y)
	switch ev.Phase {
	case PhaseStart:
		if l.insideViewport(x, y) {
			l.drag = dragSession{active: true, pointerX: x, scrollAtStart: l.scroll}
		}
	case PhaseMove:
		if l.drag.active {
			l.dragTo(x)
		}
	case PhaseEnd:
		if l.drag.active {
			l.dragTo(x)
			return l.release(x, y)
		}
	case PhaseCancel:
		l.drag = dragSession{}
	}
	return Outcome{Kind: OutcomeNone, Index: l.selected}
}

func (l *List) dragTo(x float64) {
	dx := x - l.drag.pointerX
	if math.Abs(dx) > l.tuning.DragThreshold {
		l.drag.moved = true
	}
	l.scroll = l.clampScroll(l.drag.scrollAtStart - dx)
	l.target = l.scroll
}

func (l *List) release(x, y float64) Outcome {
	moved := l.drag.moved
	l.drag = dragSession{}
	if moved {
		return Outcome{Kind: OutcomeNone, Index: l.selected}
	}
	hit := l.HitTest(x, y)
	switch {
	case hit < 0:
		return Outcome{Kind: OutcomeNone, Index: l.selected}
	case hit == l.selected:
		return Outcome{Kind: OutcomeActivate, Index: hit}
	default:
		l.Select(hit)
		return Outcome{Kind: OutcomeSelect, Index: hit}
	}
}
