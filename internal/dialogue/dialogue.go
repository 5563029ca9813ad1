// Package dialogue runs the idle chatter of the party member shown on the
// main menu: an interval timer, a weighted phrase pick and a typewriter box.
package dialogue

import (
	"math"
	"slices"

	"github.com/haunter-rpg/battlehud/internal/pick"
)

// Character is a party member that can appear on the menu.
type Character struct {
	ActorID  int
	Portrait string
	Phrases  []pick.Option
}

// Choose picks one character whose actor is in the party, uniformly.
func Choose(chars []Character, party []int, src pick.Source) (Character, bool) {
	var present []Character
	for _, c := range chars {
		if slices.Contains(party, c.ActorID) {
			present = append(present, c)
		}
	}
	if len(present) == 0 {
		return Character{}, false
	}
	return present[index(src, len(present))], true
}

func index(src pick.Source, n int) int {
	u := 0.0
	if src != nil {
		u = src()
	}
	if !(u >= 0) || u >= 1 {
		u = 0
	}
	return min(n-1, int(u*float64(n)))
}

// Params tunes the chatter pacing, in ticks.
type Params struct {
	MinInterval     int
	MaxInterval     int
	CharDelay       float64
	DisplayDuration int
}

// DefaultParams returns the stock pacing.
func DefaultParams() Params {
	return Params{MinInterval: 300, MaxInterval: 900, CharDelay: 2, DisplayDuration: 180}
}

// EventKind says what the host should do with audio.
type EventKind uint8

const (
	// EventShow opens the box with a new phrase. Stop any playing voice
	// and play Voice if set.
	EventShow EventKind = iota
	// EventStop closes the box. Stop any playing voice.
	EventStop
)

// Event is emitted when the box opens or closes.
type Event struct {
	Kind  EventKind
	Text  string
	Voice string
}

// Scheduler drives the dialogue box of one character.
type Scheduler struct {
	params Params
	char   Character
	sel    *pick.Selector
	src    pick.Source

	timer int
	open  bool
	text  []rune
	shown int
	acc   float64
	hold  int
}

// NewScheduler starts the interval timer for char. src feeds both the
// interval and the phrase pick.
func NewScheduler(p Params, char Character, src pick.Source, policy pick.ZeroWeightPolicy) *Scheduler {
	if p.MaxInterval < p.MinInterval {
		p.MaxInterval = p.MinInterval
	}
	s := &Scheduler{params: p, char: char, src: src, sel: pick.NewSelector(src, policy)}
	s.resetTimer()
	return s
}

func (s *Scheduler) resetTimer() {
	span := s.params.MaxInterval - s.params.MinInterval
	s.timer = s.params.MinInterval
	if span > 0 {
		s.timer += index(s.src, span)
	}
}

// Character returns the speaking character.
func (s *Scheduler) Character() Character { return s.char }

// Open reports whether the box is showing.
func (s *Scheduler) Open() bool { return s.open }

// Countdown returns ticks until the next phrase while closed.
func (s *Scheduler) Countdown() int { return s.timer }

// Text returns the revealed part of the current phrase.
func (s *Scheduler) Text() string {
	if !s.open {
		return ""
	}
	return string(s.text[:s.shown])
}

// Revealed reports whether the whole phrase is visible.
func (s *Scheduler) Revealed() bool { return s.shown >= len(s.text) }

// Tick advances one frame and returns an event when the box opens or closes.
func (s *Scheduler) Tick() (Event, bool) {
	if !s.open {
		return s.tickClosed()
	}

	if !s.Revealed() {
		if s.params.CharDelay <= 0 {
			s.shown = len(s.text)
		} else {
			s.acc++
			for s.acc >= s.params.CharDelay && !s.Revealed() {
				s.acc -= s.params.CharDelay
				s.shown++
			}
		}
	}
	if !s.Revealed() {
		return Event{}, false
	}
	if s.hold > 0 {
		s.hold--
		return Event{}, false
	}
	return s.Dismiss()
}

func (s *Scheduler) tickClosed() (Event, bool) {
	s.timer--
	if s.timer > 0 {
		return Event{}, false
	}
	s.resetTimer()
	phrase, ok := s.sel.Select(s.char.Phrases)
	if !ok {
		return Event{}, false
	}
	s.open = true
	s.text = []rune(phrase.Text)
	s.shown = 0
	s.acc = 0
	s.hold = max(0, s.params.DisplayDuration)
	return Event{Kind: EventShow, Text: phrase.Text, Voice: phrase.SideEffectID}, true
}

// Dismiss closes the box early. It reports false when nothing was open.
func (s *Scheduler) Dismiss() (Event, bool) {
	if !s.open {
		return Event{}, false
	}
	s.open = false
	s.text = nil
	s.shown = 0
	return Event{Kind: EventStop}, true
}

// RevealDuration returns the ticks needed to type out text.
func RevealDuration(text string, delay float64) int {
	if delay <= 0 {
		return 0
	}
	return int(math.Ceil(float64(len([]rune(text))) * delay))
}
