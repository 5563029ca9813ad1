package game

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/haunter-rpg/battlehud/internal/cards"
	"github.com/haunter-rpg/battlehud/internal/command"
	"github.com/haunter-rpg/battlehud/internal/config"
	"github.com/haunter-rpg/battlehud/internal/ctb"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Party = []config.PartyMember{{ID: 1, Name: "Will", Agility: 60, Charge: ctb.FullCharge, Skills: []int{1, 7}}}
	cfg.Enemies = []config.Enemy{{Name: "Wraith", Agility: 1}}
	cfg.Items = []config.Item{{ID: 1, Name: "Potion", Count: 2}, {ID: 2, Name: "Ether", Count: 1}}
	cfg.Skills = []config.Skill{{ID: 1, Name: "Slash"}, {ID: 7, Name: "Overdrive", Cost: 20}}
	cfg.Command.SpecialSkill = 7
	cfg.Cards.ItemWindow = config.Window{X: 40, Y: 470, Width: 1200, Height: 200}
	return &cfg
}

func newSim(t *testing.T, cfg *config.Config) *Sim {
	t.Helper()
	s, err := NewSim(cfg, 1, zap.NewNop())
	require.NoError(t, err)
	return s
}

// readySim returns a session with Will waiting in the command menu.
func readySim(t *testing.T, cfg *config.Config) *Sim {
	t.Helper()
	s := newSim(t, cfg)
	s.Tick()
	require.Equal(t, PhaseCommand, s.Phase)
	s.DrainCues()
	return s
}

func lastLine(s *Sim) string {
	recent := s.Log.Recent(1)
	if len(recent) == 0 {
		return ""
	}
	return recent[0].Text
}

func hasCue(cues []Cue, want Cue) bool {
	for _, c := range cues {
		if c == want {
			return true
		}
	}
	return false
}

func TestReadyActorOpensMenu(t *testing.T) {
	s := readySim(t, testConfig())

	b, ok := s.Actor()
	require.True(t, ok)
	assert.Equal(t, "Will", b.Name)

	var syms []command.Symbol
	for _, c := range s.Menu.Commands() {
		syms = append(syms, c.Symbol)
	}
	assert.Equal(t, []command.Symbol{
		command.SymAttack, command.SymSkill, command.SymGuard, command.SymItem,
		command.SymSpecial, command.SymEscape,
	}, syms)
	assert.Equal(t, []Card{{ID: 1, Name: "Slash"}}, s.SkillCards, "promoted skill is not a card")
	assert.Equal(t, 1, s.Skills.Count())
}

func TestAttackResumesClock(t *testing.T) {
	s := readySim(t, testConfig())
	s.Press(InputOK)

	assert.Equal(t, PhaseCTB, s.Phase)
	assert.Nil(t, s.Menu)
	assert.Equal(t, "Will attacks Wraith.", lastLine(s))
	assert.Empty(t, s.Roster.Ready(), "acting resets the gauge")
}

func TestCancelIsRefused(t *testing.T) {
	s := readySim(t, testConfig())
	s.Press(InputCancel)
	assert.Equal(t, PhaseCommand, s.Phase)
	assert.True(t, hasCue(s.DrainCues(), Cue{Kind: CueBuzzer}))
}

func TestUseItemWithKeys(t *testing.T) {
	s := readySim(t, testConfig())
	for i := 0; i < 3; i++ {
		s.Press(InputDown)
	}
	require.Equal(t, command.SymItem, s.Menu.Current().Symbol)
	s.Press(InputOK)
	require.Equal(t, PhaseItems, s.Phase)
	assert.Equal(t, 0, s.Items.Selected())

	s.Press(InputOK)
	assert.Equal(t, PhaseCTB, s.Phase)
	assert.Equal(t, 1, s.Inventory.Count(1))
	assert.Equal(t, "Will uses Potion.", lastLine(s))
}

func TestUseItemWithPointer(t *testing.T) {
	s := readySim(t, testConfig())
	s.Menu.Select(3)
	s.Press(InputOK)
	require.Equal(t, PhaseItems, s.Phase)

	// Card 1 spans x 190..370 and y 20..140 inside the item window at (40, 470).
	s.Pointer(240, 520, cards.PhaseStart)
	s.Pointer(240, 520, cards.PhaseEnd)
	assert.Equal(t, 1, s.Items.Selected())
	assert.Equal(t, PhaseItems, s.Phase)

	s.Pointer(240, 520, cards.PhaseStart)
	s.Pointer(240, 520, cards.PhaseEnd)
	assert.Equal(t, PhaseCTB, s.Phase)
	assert.Zero(t, s.Inventory.Count(2))
	assert.Equal(t, 1, s.Items.Count(), "emptied stack leaves the row")
}

func TestMenuPointer(t *testing.T) {
	s := readySim(t, testConfig())
	guard := float64(MenuY + 2*MenuRowHeight + 4)
	s.Pointer(MenuX+10, guard, cards.PhaseEnd)
	assert.Equal(t, command.SymGuard, s.Menu.Current().Symbol)
	s.Pointer(MenuX+10, guard, cards.PhaseEnd)
	assert.Equal(t, "Will guards.", lastLine(s))
	assert.Equal(t, -1, s.MenuRowAt(MenuX+10, guard))
}

func TestSkillNeedsEnergy(t *testing.T) {
	cfg := testConfig()
	cfg.Skills[0].Cost = 50
	cfg.Energy.Initial = 10
	s := readySim(t, cfg)

	s.Press(InputDown)
	s.Press(InputOK)
	require.Equal(t, PhaseSkills, s.Phase)
	s.Press(InputOK)
	assert.Equal(t, PhaseSkills, s.Phase)
	assert.Equal(t, "Not enough energy for Slash.", lastLine(s))
	assert.Equal(t, 10, s.Energy.Value)

	s.Press(InputCancel)
	assert.Equal(t, PhaseCommand, s.Phase, "card rows can be cancelled")
}

func TestEscape(t *testing.T) {
	t.Run("fails", func(t *testing.T) {
		cfg := testConfig()
		cfg.Command.EscapeRatio = 1e-12
		s := readySim(t, cfg)
		s.Press(InputUp)
		require.Equal(t, command.SymEscape, s.Menu.Current().Symbol)
		s.Press(InputOK)
		assert.Equal(t, PhaseCTB, s.Phase)
		assert.Nil(t, s.Menu)
		assert.Equal(t, "Will couldn't escape!", lastLine(s))
	})
	t.Run("succeeds", func(t *testing.T) {
		s := readySim(t, testConfig())
		s.Press(InputUp)
		s.Press(InputOK)
		assert.Equal(t, PhaseEnded, s.Phase)
	})
	t.Run("disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Command.CanEscape = false
		s := readySim(t, cfg)
		s.Press(InputUp)
		s.Press(InputOK)
		assert.Equal(t, PhaseCommand, s.Phase)
	})
}

func TestTimeAttackGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Party[0].Charge = 0
	cfg.Party[0].Agility = 1
	cfg.TimeAttack = config.TimeAttack{Armed: true, Goal: 3, GameOverEvent: 5}
	s := newSim(t, cfg)
	require.True(t, s.TimeAttack.Active())
	assert.Equal(t, 3, s.HUD.Counter.Value())

	for i := 0; i < 3; i++ {
		s.Tick()
	}
	assert.Equal(t, PhaseEnded, s.Phase)
	assert.True(t, hasCue(s.DrainCues(), Cue{Kind: CueCommonEvent, EventID: 5}))

	s.Tick()
	assert.Equal(t, PhaseEnded, s.Phase)
}

func TestTurnTransition(t *testing.T) {
	cfg := testConfig()
	cfg.Party[0].Charge = 0
	cfg.Party[0].Agility = 1
	s := newSim(t, cfg)

	length := ctb.TurnEndPacing().TurnLength()
	for i := 0; i < length; i++ {
		s.Tick()
	}
	assert.Equal(t, 2, s.Roster.Turn())
	assert.Equal(t, 2, s.HUD.Turn())
	banner, up := s.HUD.Banner()
	assert.True(t, up)
	assert.Equal(t, "Turn 2", banner)
	assert.True(t, s.HUD.Spin.Spinning())
}

func TestMenuDialogue(t *testing.T) {
	cfg := testConfig()
	cfg.Party[0].Charge = 0
	cfg.Characters = []config.Character{{ActorID: 1, Portrait: "MenuWill", Phrases: []config.Phrase{{Text: "Hi", Voice: "v1", Weight: 1}}}}
	cfg.Dialogue.MinInterval, cfg.Dialogue.MaxInterval = 1, 1
	s := newSim(t, cfg)
	require.NotNil(t, s.Dialogue)
	assert.Equal(t, "MenuWill", s.Speaker.Portrait)

	s.Tick()
	cues := s.DrainCues()
	assert.True(t, hasCue(cues, Cue{Kind: CueVoice, Name: "v1"}))
	assert.True(t, s.Dialogue.Open())

	s.Press(InputCancel)
	assert.False(t, s.Dialogue.Open())
	assert.True(t, hasCue(s.DrainCues(), Cue{Kind: CueStopVoice}))
}

func TestNoSpeakerOutsideParty(t *testing.T) {
	cfg := testConfig()
	cfg.Characters = []config.Character{{ActorID: 9}}
	s := newSim(t, cfg)
	assert.Nil(t, s.Dialogue)
}

func TestEnergyStamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "energy.yaml")
	t0 := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

	cfg := testConfig()
	cfg.Energy.Initial = 40
	s := newSim(t, cfg)
	s.SavePath = path
	s.Now = func() time.Time { return t0 }
	require.NoError(t, s.SaveEnergy())

	cfg.Energy.Initial = 0
	s2 := newSim(t, cfg)
	s2.SavePath = path
	s2.Now = func() time.Time { return t0.Add(10 * time.Minute) }
	added, err := s2.RestoreEnergy()
	require.NoError(t, err)
	assert.Equal(t, 10, added)
	assert.Equal(t, 50, s2.Energy.Value)

	s3 := newSim(t, cfg)
	s3.SavePath = filepath.Join(t.TempDir(), "none.yaml")
	added, err = s3.RestoreEnergy()
	assert.NoError(t, err)
	assert.Zero(t, added)
}

func TestOpenRow(t *testing.T) {
	s := readySim(t, testConfig())
	_, _, _, ok := s.OpenRow()
	assert.False(t, ok)

	s.Menu.Select(3)
	s.Press(InputOK)
	list, row, win, ok := s.OpenRow()
	require.True(t, ok)
	assert.Same(t, s.Items, list)
	assert.Len(t, row, 2)
	assert.Equal(t, s.Cfg.Cards.ItemWindow, win)
}

func TestClosingRowDropsHeldDrag(t *testing.T) {
	cfg := testConfig()
	cfg.Items = nil
	for i := 1; i <= 10; i++ {
		cfg.Items = append(cfg.Items, config.Item{ID: i, Name: "Potion", Count: 1})
	}
	cfg.Cards.ItemWindow = config.Window{X: 40, Y: 470, Width: 400, Height: 200}

	t.Run("cancel", func(t *testing.T) {
		s := readySim(t, cfg)
		s.Menu.Select(3)
		s.Press(InputOK)
		require.Equal(t, PhaseItems, s.Phase)

		s.Pointer(100, 520, cards.PhaseStart)
		require.True(t, s.Items.Dragging())
		s.Press(InputCancel)
		assert.False(t, s.Items.Dragging())
		s.Pointer(100, 520, cards.PhaseEnd)

		s.Press(InputOK)
		require.Equal(t, PhaseItems, s.Phase)
		for i := 0; i < 8; i++ {
			s.Press(InputRight)
		}
		for i := 0; i < 120; i++ {
			s.Tick()
		}
		require.Equal(t, 8, s.Items.Selected())
		r := s.Items.ScreenRect(8)
		assert.GreaterOrEqual(t, r.X, 0.0)
		assert.LessOrEqual(t, r.Right(), cfg.Cards.ItemWindow.Width)
	})
	t.Run("activate", func(t *testing.T) {
		s := readySim(t, cfg)
		s.Menu.Select(3)
		s.Press(InputOK)
		s.Pointer(100, 520, cards.PhaseStart)
		s.Press(InputOK)
		assert.Equal(t, PhaseCTB, s.Phase)
		assert.False(t, s.Items.Dragging())
	})
}
