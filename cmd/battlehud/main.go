package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/haunter-rpg/battlehud/internal/cards"
	"github.com/haunter-rpg/battlehud/internal/config"
	"github.com/haunter-rpg/battlehud/internal/game"
	"github.com/haunter-rpg/battlehud/internal/render"
	"github.com/haunter-rpg/battlehud/internal/sound"
)

const title = "Battle HUD"

var keyInputs = []struct {
	keys []ebiten.Key
	in   game.Input
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, game.InputLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, game.InputRight},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, game.InputUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, game.InputDown},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyZ}, game.InputOK},
	{[]ebiten.Key{ebiten.KeyX, ebiten.KeyBackspace}, game.InputCancel},
}

// pointer tracks the one mouse button or touch driving the card row.
type pointer struct {
	down    bool
	touch   ebiten.TouchID
	isTouch bool
	x, y    int
}

// Game is the Ebitengine game struct. It owns rendering and input.
// All battle state lives in sim.
type Game struct {
	sim    *game.Sim
	hud    *render.HUD
	sound  *sound.Player
	logger *zap.Logger
	ptr    pointer
}

func NewGame(cfg *config.Config, seed uint64, logger *zap.Logger) (*Game, error) {
	sim, err := game.NewSim(cfg, seed, logger)
	if err != nil {
		return nil, err
	}
	sim.SavePath = cfg.Energy.SaveFile
	if sim.SavePath != "" {
		added, err := sim.RestoreEnergy()
		if err != nil {
			logger.Warn("energy restore failed", zap.Error(err))
		} else if added > 0 {
			logger.Info("energy regenerated while away", zap.Int("added", added))
		}
	}

	atlas := render.NewFontAtlas()
	return &Game{
		sim:    sim,
		hud:    render.NewHUD(atlas, render.NewCardRow(atlas, cfg.Cards)),
		sound:  sound.NewPlayer(logger),
		logger: logger,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.quitOnEscape() {
			return ebiten.Termination
		}
		g.sim.Press(game.InputCancel)
	}
	for _, ki := range keyInputs {
		for _, k := range ki.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.sim.Press(ki.in)
				break
			}
		}
	}
	g.updatePointer()

	g.sim.Tick()
	g.sound.Play(g.sim.DrainCues())
	return nil
}

// quitOnEscape reports whether Escape should close the window rather than
// cancel something on screen.
func (g *Game) quitOnEscape() bool {
	switch g.sim.Phase {
	case game.PhaseEnded:
		return true
	case game.PhaseCTB:
		return g.sim.Dialogue == nil || !g.sim.Dialogue.Open()
	}
	return false
}

func (g *Game) updatePointer() {
	p := &g.ptr
	if !p.down {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p.down, p.isTouch = true, false
			p.x, p.y = ebiten.CursorPosition()
			g.send(cards.PhaseStart)
			return
		}
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			p.down, p.isTouch, p.touch = true, true, ids[0]
			p.x, p.y = ebiten.TouchPosition(p.touch)
			g.send(cards.PhaseStart)
		}
		return
	}

	if p.isTouch {
		if inpututil.IsTouchJustReleased(p.touch) {
			p.down = false
			g.send(cards.PhaseEnd)
			return
		}
		x, y := ebiten.TouchPosition(p.touch)
		g.move(x, y)
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.down = false
		g.send(cards.PhaseEnd)
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.down = false
		g.send(cards.PhaseCancel)
		return
	}
	g.move(ebiten.CursorPosition())
}

func (g *Game) move(x, y int) {
	if x == g.ptr.x && y == g.ptr.y {
		return
	}
	g.ptr.x, g.ptr.y = x, y
	g.send(cards.PhaseMove)
}

func (g *Game) send(phase cards.Phase) {
	g.sim.Pointer(float64(g.ptr.x), float64(g.ptr.y), phase)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.hud.Draw(screen, g.sim)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenWidth, render.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "HUD config YAML (default: embedded demo)")
	seed := flag.Uint64("seed", 0, "random seed (0: time based)")
	debug := flag.Bool("debug", false, "development logging")
	flag.Parse()

	var logger *zap.Logger
	var err error
	if *debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	var cfg *config.Config
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	g, err := NewGame(cfg, *seed, logger)
	if err != nil {
		logger.Fatal("start battle", zap.Error(err))
	}

	ebiten.SetWindowSize(render.ScreenWidth, render.ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
	if g.sim.SavePath != "" {
		if err := g.sim.SaveEnergy(); err != nil {
			logger.Warn("energy save failed", zap.Error(err))
		}
	}
}
