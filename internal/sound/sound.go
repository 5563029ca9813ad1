// Package sound plays the HUD cue sounds. Effects are short synthesized
// tones so the demo needs no audio assets.
package sound

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/haunter-rpg/battlehud/internal/game"
)

// SampleRate of the audio context.
const SampleRate = 44100

// Tone is a decaying sine blip.
type Tone struct {
	Freq   float64 // Hz
	Millis int
	Volume float64 // 0..1
}

var cueTones = map[game.CueKind]Tone{
	game.CueCursor: {Freq: 880, Millis: 40, Volume: 0.25},
	game.CueOK:     {Freq: 1320, Millis: 80, Volume: 0.3},
	game.CueCancel: {Freq: 440, Millis: 80, Volume: 0.3},
	game.CueBuzzer: {Freq: 110, Millis: 160, Volume: 0.35},
	game.CueVoice:  {Freq: 330, Millis: 400, Volume: 0.3},
}

// PCM renders t as 16-bit little-endian stereo at SampleRate.
func PCM(t Tone) []byte {
	n := SampleRate * max(t.Millis, 0) / 1000
	vol := math.Min(math.Max(t.Volume, 0), 1)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*t.Freq*float64(i)/SampleRate) * env * vol * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// Player turns session cues into sound.
type Player struct {
	ctx    *audio.Context
	logger *zap.Logger
	pcm    map[game.CueKind][]byte
	voice  *audio.Player
}

// NewPlayer creates the audio context and renders every cue tone.
func NewPlayer(logger *zap.Logger) *Player {
	p := &Player{
		ctx:    audio.NewContext(SampleRate),
		logger: logger,
		pcm:    make(map[game.CueKind][]byte, len(cueTones)),
	}
	for kind, t := range cueTones {
		p.pcm[kind] = PCM(t)
	}
	return p
}

// Play handles a frame's cues in order.
func (p *Player) Play(cues []game.Cue) {
	for _, c := range cues {
		switch c.Kind {
		case game.CueStopVoice:
			if p.voice != nil {
				p.voice.Pause()
				p.voice = nil
			}
		case game.CueCommonEvent:
			p.logger.Info("common event", zap.Int("event", c.EventID))
		default:
			pl := p.start(c.Kind)
			if c.Kind == game.CueVoice {
				p.voice = pl
			}
		}
	}
}

func (p *Player) start(kind game.CueKind) *audio.Player {
	data, ok := p.pcm[kind]
	if !ok {
		return nil
	}
	pl, err := p.ctx.NewPlayer(bytes.NewReader(data))
	if err != nil {
		p.logger.Warn("sound failed", zap.Error(err))
		return nil
	}
	pl.Play()
	return pl
}
