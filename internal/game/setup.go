package game

import (
	"strings"

	"github.com/haunter-rpg/battlehud/internal/cards"
	"github.com/haunter-rpg/battlehud/internal/command"
	"github.com/haunter-rpg/battlehud/internal/config"
	"github.com/haunter-rpg/battlehud/internal/ctb"
	"github.com/haunter-rpg/battlehud/internal/dialogue"
	"github.com/haunter-rpg/battlehud/internal/pick"
)

func cardLayout(c config.Cards, win config.Window) cards.Layout {
	return cards.Layout{
		CardWidth:      c.Width,
		CardHeight:     c.Height,
		Spacing:        c.Spacing,
		TopOffset:      c.TopOffset,
		ViewportWidth:  win.Width,
		ViewportHeight: win.Height,
	}
}

func cardTuning(c config.Cards) cards.Tuning {
	t := cards.DefaultTuning()
	t.EasingDivisor = c.ScrollSpeed
	t.SnapEpsilon = c.SnapEpsilon
	t.MarginFraction = c.Margin
	t.DragThreshold = c.DragThreshold
	t.LiftTarget = c.LiftTarget
	t.LiftRate = c.LiftRate
	return t
}

func markerPacing(c config.CTB) ctb.Pacing {
	return ctb.Pacing{Agility: c.TurnEndAgility, Start: c.TurnEndStart, Full: c.TurnEndFull}
}

func zeroPolicy(name string) pick.ZeroWeightPolicy {
	if strings.EqualFold(name, "none") {
		return pick.ZeroWeightNone
	}
	return pick.ZeroWeightUniform
}

func dialogueParams(c config.Dialogue) dialogue.Params {
	return dialogue.Params{
		MinInterval:     c.MinInterval,
		MaxInterval:     c.MaxInterval,
		CharDelay:       c.CharDelay,
		DisplayDuration: c.DisplayDuration,
	}
}

func characters(defs []config.Character) []dialogue.Character {
	out := make([]dialogue.Character, 0, len(defs))
	for _, d := range defs {
		ch := dialogue.Character{ActorID: d.ActorID, Portrait: d.Portrait}
		for _, p := range d.Phrases {
			ch.Phrases = append(ch.Phrases, pick.Option{Text: p.Text, Weight: p.Weight, SideEffectID: p.Voice})
		}
		out = append(out, ch)
	}
	return out
}

func itemCards(items []config.Item) []Card {
	out := make([]Card, 0, len(items))
	for _, it := range items {
		out = append(out, Card{ID: it.ID, Name: it.Name, Image: it.Image, Count: it.Count})
	}
	return out
}

// skillCards lists the skills member knows, minus the promoted one.
func skillCards(all []config.Skill, member config.PartyMember, special int) []Card {
	byID := make(map[int]config.Skill, len(all))
	known := make([]command.Skill, 0, len(member.Skills))
	for _, s := range all {
		byID[s.ID] = s
	}
	for _, id := range member.Skills {
		if s, ok := byID[id]; ok {
			known = append(known, command.Skill{ID: s.ID, Name: s.Name})
		}
	}
	var out []Card
	for _, s := range command.FilterSkills(known, special) {
		def := byID[s.ID]
		out = append(out, Card{ID: def.ID, Name: def.Name, Image: def.Image, Cost: def.Cost})
	}
	return out
}

func findSkill(all []config.Skill, id int) (config.Skill, bool) {
	for _, s := range all {
		if s.ID == id {
			return s, true
		}
	}
	return config.Skill{}, false
}

func escapeRatio(c config.Config) float64 {
	if c.Command.EscapeRatio > 0 {
		return c.Command.EscapeRatio
	}
	return command.EscapeRatio(averageAgility(c.Party), averageEnemyAgility(c.Enemies))
}

func averageAgility(party []config.PartyMember) float64 {
	if len(party) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range party {
		sum += m.Agility
	}
	return sum / float64(len(party))
}

func averageEnemyAgility(troop []config.Enemy) float64 {
	if len(troop) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range troop {
		sum += e.Agility
	}
	return sum / float64(len(troop))
}
