package game

import (
	"fmt"
	"time"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/haunter-rpg/battlehud/internal/cards"
	"github.com/haunter-rpg/battlehud/internal/command"
	"github.com/haunter-rpg/battlehud/internal/config"
	"github.com/haunter-rpg/battlehud/internal/ctb"
	"github.com/haunter-rpg/battlehud/internal/dialogue"
	"github.com/haunter-rpg/battlehud/internal/energy"
	"github.com/haunter-rpg/battlehud/internal/pick"
)

// Tick intervals (at 60 TPS)
const (
	enemyThinkDelay    = 30   // enemies pause half a second after acting
	energySaveInterval = 3600 // autosave energy every minute
)

// Phase is what the battle is waiting for.
type Phase uint8

const (
	PhaseCTB     Phase = iota // turn clock running
	PhaseCommand              // actor picking a command
	PhaseItems                // item card row open
	PhaseSkills               // skill card row open
	PhaseEnded
)

// CueKind tells the front end which sound or event to play.
type CueKind uint8

const (
	CueCursor CueKind = iota
	CueOK
	CueCancel
	CueBuzzer
	CueVoice
	CueStopVoice
	CueCommonEvent
)

// Cue is a side effect the front end should perform.
type Cue struct {
	Kind    CueKind
	Name    string // voice line for CueVoice
	EventID int    // common event for CueCommonEvent
}

// Sim is one battle session. It owns all HUD and battle state.
type Sim struct {
	Cfg   *config.Config
	Log   *MessageLog
	Ticks uint64
	Phase Phase

	Roster     *ctb.Roster
	TimeAttack *ctb.TimeAttack
	HUD        *TicksHUD
	Energy     *energy.Timer
	Dialogue   *dialogue.Scheduler // nil when no menu character is in the party
	Speaker    dialogue.Character
	Inventory  *Inventory
	Items      *cards.List
	Skills     *cards.List
	SkillCards []Card
	Menu       *command.Menu // nil outside actor input

	SavePath string
	Now      func() time.Time

	logger   *zap.Logger
	src      pick.Source
	escape   *command.EscapeOdds
	members  map[ecs.Entity]config.PartyMember
	enemies  []ecs.Entity
	actor    ecs.Entity
	hasActor bool
	pending  []ecs.Entity
	wait     int
	cues     []Cue
}

// NewSim sets up a battle from cfg. The seed drives every random choice.
func NewSim(cfg *config.Config, seed uint64, logger *zap.Logger) (*Sim, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	hud, err := NewTicksHUD(cfg.CTB)
	if err != nil {
		return nil, fmt.Errorf("build turn panel: %w", err)
	}

	s := &Sim{
		Cfg:        cfg,
		Log:        NewMessageLog(40, 52),
		Roster:     ctb.NewRoster(markerPacing(cfg.CTB), cfg.CTB.ShowTurnEnd),
		TimeAttack: &ctb.TimeAttack{},
		HUD:        hud,
		Energy:     energy.NewTimer(cfg.Energy.Max, cfg.Energy.FramesPerIncrement, cfg.Energy.Increment, cfg.Energy.Initial),
		Inventory:  NewInventory(itemCards(cfg.Items)),
		Now:        time.Now,
		logger:     logger,
		src:        pick.NewSource(seed),
		members:    make(map[ecs.Entity]config.PartyMember),
	}
	s.escape = command.NewEscapeOdds(escapeRatio(*cfg), s.src)

	tuning := cardTuning(cfg.Cards)
	s.Items = cards.New(cardLayout(cfg.Cards, cfg.Cards.ItemWindow), tuning, s.Inventory.Len())
	s.Skills = cards.New(cardLayout(cfg.Cards, cfg.Cards.SkillWindow), tuning, 0)

	partyIDs := make([]int, 0, len(cfg.Party))
	for _, m := range cfg.Party {
		e := s.Roster.Add(ctb.Battler{Name: m.Name, Side: ctb.SideActor, Agility: m.Agility}, m.Charge)
		s.members[e] = m
		partyIDs = append(partyIDs, m.ID)
	}
	for _, en := range cfg.Enemies {
		s.enemies = append(s.enemies, s.Roster.Add(ctb.Battler{Name: en.Name, Side: ctb.SideEnemy, Agility: en.Agility}, en.Charge))
	}

	if speaker, ok := dialogue.Choose(characters(cfg.Characters), partyIDs, s.src); ok {
		s.Speaker = speaker
		s.Dialogue = dialogue.NewScheduler(dialogueParams(cfg.Dialogue), speaker, s.src, zeroPolicy(cfg.Dialogue.ZeroWeight))
	}

	ta := cfg.TimeAttack
	s.TimeAttack.SetGoal(ta.Goal)
	s.TimeAttack.SetWarning(ta.WarningThreshold, ta.WarningEvent)
	s.TimeAttack.SetGameOver(ta.GameOverEvent)
	if ta.Armed {
		s.TimeAttack.Arm()
	}

	s.Log.Add("Enemies draw near!", MsgInfo)
	if s.TimeAttack.Start() {
		s.Log.Add(fmt.Sprintf("Time attack: %d ticks on the clock.", ta.Goal), MsgWarning)
	}
	s.HUD.Counter.Jump(s.displayTicks())

	logger.Info("battle started",
		zap.Int("party", len(cfg.Party)),
		zap.Int("enemies", len(cfg.Enemies)),
		zap.Bool("time_attack", s.TimeAttack.Active()),
		zap.Uint64("seed", seed))
	return s, nil
}

// Tick advances the simulation by one step.
func (s *Sim) Tick() {
	s.Ticks++
	if s.Energy.Tick() {
		s.logger.Debug("energy regenerated", zap.Int("energy", s.Energy.Value))
	}
	s.tickDialogue()
	s.Items.Advance(1)
	s.Skills.Advance(1)
	s.HUD.Step()

	switch s.Phase {
	case PhaseCTB:
		s.tickBattle()
	case PhaseCommand, PhaseItems, PhaseSkills:
		s.tickTimeAttack()
	}
	s.HUD.Counter.Set(s.displayTicks())

	if s.SavePath != "" && s.Ticks%energySaveInterval == 0 {
		if err := s.SaveEnergy(); err != nil {
			s.logger.Warn("energy autosave failed", zap.Error(err))
		}
	}
}

func (s *Sim) tickDialogue() {
	if s.Dialogue == nil {
		return
	}
	ev, ok := s.Dialogue.Tick()
	if !ok {
		return
	}
	switch ev.Kind {
	case dialogue.EventShow:
		s.cue(Cue{Kind: CueStopVoice})
		if ev.Voice != "" {
			s.cue(Cue{Kind: CueVoice, Name: ev.Voice})
		}
		s.logger.Debug("menu dialogue", zap.String("voice", ev.Voice))
	case dialogue.EventStop:
		s.cue(Cue{Kind: CueStopVoice})
	}
}

func (s *Sim) tickBattle() {
	if s.wait > 0 {
		s.wait--
		return
	}
	if len(s.pending) == 0 {
		res := s.Roster.Tick()
		s.tickTimeAttack()
		if s.Phase == PhaseEnded {
			return
		}
		if res.TurnEnded {
			turn := s.Roster.Turn()
			s.HUD.TurnChanged(turn)
			s.Log.Add(fmt.Sprintf("Turn %d begins.", turn), MsgInfo)
			s.logger.Info("turn ended", zap.Int("turn", turn))
		}
		s.pending = res.Ready
	}
	if len(s.pending) > 0 {
		e := s.pending[0]
		s.pending = s.pending[1:]
		s.takeTurn(e)
	}
}

func (s *Sim) tickTimeAttack() {
	for _, ev := range s.TimeAttack.Tick() {
		s.cue(Cue{Kind: CueCommonEvent, EventID: ev.EventID})
		switch ev.Kind {
		case ctb.EventWarning:
			s.Log.Add("Time is running out!", MsgWarning)
			s.logger.Info("time attack warning", zap.Int("remaining", s.TimeAttack.Remaining()))
		case ctb.EventGameOver:
			s.endBattle("Time's up. The battle is lost.", MsgCritical)
		}
	}
}

func (s *Sim) displayTicks() int {
	if s.TimeAttack.Active() {
		return s.TimeAttack.Remaining()
	}
	return s.Roster.RemainingTicks()
}

func (s *Sim) takeTurn(e ecs.Entity) {
	b, ok := s.Roster.Battler(e)
	if !ok {
		return
	}
	if b.Side == ctb.SideEnemy {
		target := "the party"
		if len(s.Cfg.Party) > 0 {
			target = s.Cfg.Party[index(s.src, len(s.Cfg.Party))].Name
		}
		s.Log.Add(fmt.Sprintf("%s attacks %s!", b.Name, target), MsgCritical)
		s.Roster.Act(e)
		s.wait = enemyThinkDelay
		return
	}

	member := s.members[e]
	opts := command.Options{CanEscape: s.Cfg.Command.CanEscape}
	if sk, ok := findSkill(s.Cfg.Skills, s.Cfg.Command.SpecialSkill); ok {
		opts.Special = command.Skill{ID: sk.ID, Name: sk.Name}
	}
	s.Menu = command.NewActorMenu(command.Actor{Name: member.Name, Skills: member.Skills}, opts)
	s.actor, s.hasActor = e, true
	s.SkillCards = skillCards(s.Cfg.Skills, member, s.Cfg.Command.SpecialSkill)
	s.Skills.SetItemCount(len(s.SkillCards))
	s.Skills.Select(-1)
	s.Phase = PhaseCommand
	s.HUD.Lower(true)
	s.cue(Cue{Kind: CueOK})
	s.Log.Add(fmt.Sprintf("%s is ready.", member.Name), MsgAction)
}

// Actor returns the battler choosing a command, if any.
func (s *Sim) Actor() (ctb.Battler, bool) {
	if !s.hasActor {
		return ctb.Battler{}, false
	}
	return s.Roster.Battler(s.actor)
}

func (s *Sim) finishAction(text string) {
	s.Log.Add(text, MsgAction)
	s.logger.Debug("action", zap.String("log", text))
	if s.hasActor {
		s.Roster.Act(s.actor)
	}
	s.clearActor()
}

func (s *Sim) clearActor() {
	s.dropDrags()
	if s.Menu != nil {
		s.Menu.Close()
	}
	s.Menu = nil
	s.hasActor = false
	s.Phase = PhaseCTB
	s.HUD.Lower(false)
}

func (s *Sim) endBattle(text string, priority MsgPriority) {
	s.clearActor()
	s.Phase = PhaseEnded
	s.pending = nil
	s.TimeAttack.End()
	s.Log.Add(text, priority)
	s.logger.Info("battle ended", zap.String("result", text), zap.Int("turn", s.Roster.Turn()))
}

func (s *Sim) cue(c Cue) { s.cues = append(s.cues, c) }

// DrainCues returns and clears pending sound and event cues.
func (s *Sim) DrainCues() []Cue {
	out := s.cues
	s.cues = nil
	return out
}

func index(src pick.Source, n int) int {
	u := src()
	if !(u >= 0) || u >= 1 {
		u = 0
	}
	return min(n-1, int(u*float64(n)))
}
