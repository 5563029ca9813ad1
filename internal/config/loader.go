package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/haunter-rpg/battlehud/assets"
	"github.com/haunter-rpg/battlehud/internal/ctb"
)

// ErrInvalid marks a configuration that parsed but cannot be used.
var ErrInvalid = errors.New("invalid config")

// Load parses YAML over the defaults and validates the result.
func Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses a config file.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Load(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault parses the embedded HUD config.
func LoadDefault() (*Config, error) {
	b, err := assets.Data.ReadFile("data/hud.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded config: %w", err)
	}
	return Load(b)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

// Validate reports every unusable value, joined.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, invalid(format, args...))
		}
	}

	check(c.Cards.Width > 0, "cards.width %v must be positive", c.Cards.Width)
	check(c.Cards.Height > 0, "cards.height %v must be positive", c.Cards.Height)
	check(c.Cards.Spacing >= 0, "cards.spacing %v must not be negative", c.Cards.Spacing)
	check(c.Cards.ScrollSpeed >= 1, "cards.scroll_speed %v must be at least 1", c.Cards.ScrollSpeed)
	check(c.Cards.Margin >= 0 && c.Cards.Margin < 0.5, "cards.margin %v must be in [0, 0.5)", c.Cards.Margin)
	check(c.Cards.LiftRate >= 0 && c.Cards.LiftRate <= 1, "cards.lift_rate %v must be in [0, 1]", c.Cards.LiftRate)

	check(c.Dialogue.MinInterval >= 0, "dialogue.min_interval %d must not be negative", c.Dialogue.MinInterval)
	check(c.Dialogue.MaxInterval >= c.Dialogue.MinInterval, "dialogue.max_interval %d is below min_interval %d", c.Dialogue.MaxInterval, c.Dialogue.MinInterval)
	switch strings.ToLower(c.Dialogue.ZeroWeight) {
	case "", "uniform", "none":
	default:
		errs = append(errs, invalid("dialogue.zero_weight %q must be uniform or none", c.Dialogue.ZeroWeight))
	}

	check(c.Energy.Max > 0, "energy.max %d must be positive", c.Energy.Max)
	check(c.Energy.FramesPerIncrement > 0, "energy.frames_per_increment %d must be positive", c.Energy.FramesPerIncrement)
	check(c.Energy.Increment > 0, "energy.increment %d must be positive", c.Energy.Increment)

	check(c.CTB.TurnEndAgility > 0, "ctb.turn_end_agility %v must be positive", c.CTB.TurnEndAgility)
	check(c.CTB.TurnEndFull > c.CTB.TurnEndStart, "ctb.turn_end_full %v must exceed turn_end_start %v", c.CTB.TurnEndFull, c.CTB.TurnEndStart)
	check(c.CTB.SpinDuration > 0, "ctb.spin_duration %d must be positive", c.CTB.SpinDuration)
	if _, _, err := ctb.ParseBezier(c.CTB.SpinBezier); err != nil {
		errs = append(errs, invalid("ctb.spin_bezier: %v", err))
	}
	for i, hex := range c.CTB.TurnColors {
		if _, err := ctb.ParseHex(hex); err != nil {
			errs = append(errs, invalid("ctb.turn_colors[%d]: %v", i, err))
		}
	}

	check(c.TimeAttack.Goal >= 0, "time_attack.goal %d must not be negative", c.TimeAttack.Goal)

	for i, ch := range c.Characters {
		check(ch.ActorID > 0, "characters[%d].actor_id must be positive", i)
		for j, p := range ch.Phrases {
			check(p.Weight >= 0, "characters[%d].phrases[%d].weight %v must not be negative", i, j, p.Weight)
		}
	}
	seen := make(map[int]bool)
	for i, m := range c.Party {
		check(m.ID > 0 && !seen[m.ID], "party[%d].id %d must be positive and unique", i, m.ID)
		seen[m.ID] = true
	}
	for i, it := range c.Items {
		check(it.Name != "", "items[%d].name is empty", i)
	}
	for i, sk := range c.Skills {
		check(sk.ID > 0 && sk.Name != "", "skills[%d] needs an id and a name", i)
	}
	return errors.Join(errs...)
}
