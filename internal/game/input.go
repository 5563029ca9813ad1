package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/haunter-rpg/battlehud/internal/cards"
	"github.com/haunter-rpg/battlehud/internal/command"
	"github.com/haunter-rpg/battlehud/internal/config"
)

// Input is a keyboard-style command.
type Input uint8

const (
	InputLeft Input = iota
	InputRight
	InputUp
	InputDown
	InputOK
	InputCancel
)

// Actor command menu geometry, in screen pixels.
const (
	MenuX         = 40
	MenuY         = 180
	MenuWidth     = 220
	MenuRowHeight = 36
)

// MenuRowAt returns the command row under a screen point, or -1.
func (s *Sim) MenuRowAt(x, y float64) int {
	if s.Menu == nil || x < MenuX || x >= MenuX+MenuWidth || y < MenuY {
		return -1
	}
	row := int((y - MenuY) / MenuRowHeight)
	if row >= len(s.Menu.Commands()) {
		return -1
	}
	return row
}

// Press routes a command to whatever is waiting for input.
func (s *Sim) Press(in Input) {
	switch s.Phase {
	case PhaseCTB:
		if in == InputCancel && s.Dialogue != nil {
			if _, ok := s.Dialogue.Dismiss(); ok {
				s.cue(Cue{Kind: CueStopVoice})
			}
		}
	case PhaseCommand:
		s.pressMenu(in)
	case PhaseItems, PhaseSkills:
		s.pressCards(in)
	}
}

func (s *Sim) pressMenu(in Input) {
	switch in {
	case InputUp, InputLeft:
		s.Menu.Prev()
		s.cue(Cue{Kind: CueCursor})
	case InputDown, InputRight:
		s.Menu.Next()
		s.cue(Cue{Kind: CueCursor})
	case InputOK:
		s.confirmCommand()
	case InputCancel:
		if !s.Menu.Cancel() {
			s.cue(Cue{Kind: CueBuzzer})
		}
	}
}

func (s *Sim) pressCards(in Input) {
	list := s.activeList()
	switch in {
	case InputLeft:
		if list.Prev() {
			s.cue(Cue{Kind: CueCursor})
		}
	case InputRight:
		if list.Next() {
			s.cue(Cue{Kind: CueCursor})
		}
	case InputOK:
		if list.Selected() < 0 {
			s.cue(Cue{Kind: CueBuzzer})
			return
		}
		s.activate(list.Selected())
	case InputCancel:
		s.dropDrags()
		s.Phase = PhaseCommand
		s.cue(Cue{Kind: CueCancel})
	}
}

// Pointer routes a mouse or touch sample in screen coordinates.
func (s *Sim) Pointer(x, y float64, phase cards.Phase) {
	switch s.Phase {
	case PhaseItems, PhaseSkills:
		win := s.activeWindow()
		out := s.activeList().Pointer(cards.PointerEvent{X: x - win.X, Y: y - win.Y, Phase: phase})
		switch out.Kind {
		case cards.OutcomeSelect:
			s.cue(Cue{Kind: CueCursor})
		case cards.OutcomeActivate:
			s.activate(out.Index)
		}
	case PhaseCommand:
		if phase != cards.PhaseEnd {
			return
		}
		row := s.MenuRowAt(x, y)
		switch {
		case row < 0:
		case row == s.Menu.Index():
			s.confirmCommand()
		default:
			s.Menu.Select(row)
			s.cue(Cue{Kind: CueCursor})
		}
	}
}

// OpenRow returns the card row on screen with its cards and window.
func (s *Sim) OpenRow() (*cards.List, []Card, config.Window, bool) {
	switch s.Phase {
	case PhaseItems:
		return s.Items, s.Inventory.Slots, s.Cfg.Cards.ItemWindow, true
	case PhaseSkills:
		return s.Skills, s.SkillCards, s.Cfg.Cards.SkillWindow, true
	}
	return nil, nil, config.Window{}, false
}

// dropDrags ends any gesture still held on a card row that is closing.
func (s *Sim) dropDrags() {
	s.Items.Pointer(cards.PointerEvent{Phase: cards.PhaseCancel})
	s.Skills.Pointer(cards.PointerEvent{Phase: cards.PhaseCancel})
}

func (s *Sim) activeList() *cards.List {
	if s.Phase == PhaseSkills {
		return s.Skills
	}
	return s.Items
}

func (s *Sim) activeWindow() config.Window {
	if s.Phase == PhaseSkills {
		return s.Cfg.Cards.SkillWindow
	}
	return s.Cfg.Cards.ItemWindow
}

func (s *Sim) actorName() string {
	if b, ok := s.Actor(); ok {
		return b.Name
	}
	return "Someone"
}

func (s *Sim) confirmCommand() {
	cmd, ok := s.Menu.Ok()
	if !ok {
		s.cue(Cue{Kind: CueBuzzer})
		return
	}
	s.cue(Cue{Kind: CueOK})
	name := s.actorName()

	switch cmd.Symbol {
	case command.SymAttack:
		s.finishAction(fmt.Sprintf("%s attacks %s.", name, s.enemyName()))
	case command.SymGuard:
		s.finishAction(fmt.Sprintf("%s guards.", name))
	case command.SymSpecial:
		s.finishAction(fmt.Sprintf("%s unleashes %s!", name, cmd.Name))
	case command.SymSkill:
		s.openCards(PhaseSkills, s.Skills, len(s.SkillCards), "No skills to use.")
	case command.SymItem:
		s.openCards(PhaseItems, s.Items, s.Inventory.Len(), "The bag is empty.")
	case command.SymEscape:
		s.tryEscape(name)
	}
}

func (s *Sim) openCards(phase Phase, list *cards.List, count int, empty string) {
	if count == 0 {
		s.cue(Cue{Kind: CueBuzzer})
		s.Log.Add(empty, MsgWarning)
		return
	}
	s.Phase = phase
	if list.Selected() < 0 {
		list.Select(0)
	}
}

func (s *Sim) tryEscape(name string) {
	ratio := s.escape.Ratio()
	if command.Escape(s.Menu, s.escape) {
		s.logger.Info("escape succeeded", zap.Float64("ratio", ratio))
		s.endBattle("The party escaped!", MsgInfo)
		return
	}
	s.logger.Info("escape failed", zap.Float64("ratio", ratio))
	s.finishAction(fmt.Sprintf("%s couldn't escape!", name))
}

func (s *Sim) enemyName() string {
	for _, e := range s.enemies {
		if b, ok := s.Roster.Battler(e); ok {
			return b.Name
		}
	}
	return "the air"
}

func (s *Sim) activate(idx int) {
	name := s.actorName()
	switch s.Phase {
	case PhaseItems:
		card, ok := s.Inventory.Use(idx)
		if !ok {
			s.cue(Cue{Kind: CueBuzzer})
			return
		}
		s.Items.SetItemCount(s.Inventory.Len())
		s.cue(Cue{Kind: CueOK})
		s.finishAction(fmt.Sprintf("%s uses %s.", name, card.Name))
	case PhaseSkills:
		if idx < 0 || idx >= len(s.SkillCards) {
			s.cue(Cue{Kind: CueBuzzer})
			return
		}
		card := s.SkillCards[idx]
		if !s.Energy.Spend(card.Cost) {
			s.cue(Cue{Kind: CueBuzzer})
			s.Log.Add(fmt.Sprintf("Not enough energy for %s.", card.Name), MsgWarning)
			return
		}
		s.cue(Cue{Kind: CueOK})
		s.finishAction(fmt.Sprintf("%s casts %s.", name, card.Name))
	}
}
