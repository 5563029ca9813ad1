package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/haunter-rpg/battlehud/internal/energy"
)

// SaveStamp writes an energy stamp as YAML.
func SaveStamp(path string, st energy.Stamp) error {
	b, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode energy stamp: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write energy stamp: %w", err)
	}
	return nil
}

// LoadStamp reads an energy stamp written by SaveStamp.
func LoadStamp(path string) (energy.Stamp, error) {
	var st energy.Stamp
	b, err := os.ReadFile(path)
	if err != nil {
		return st, fmt.Errorf("read energy stamp: %w", err)
	}
	if err := yaml.Unmarshal(b, &st); err != nil {
		return st, fmt.Errorf("parse energy stamp %s: %w", path, err)
	}
	return st, nil
}

// SaveEnergy stamps the current energy to SavePath.
func (s *Sim) SaveEnergy() error {
	if s.SavePath == "" {
		return nil
	}
	return SaveStamp(s.SavePath, s.Energy.Stamp(s.Now()))
}

// RestoreEnergy loads SavePath and credits the energy earned while the game
// was closed. A missing file is not an error.
func (s *Sim) RestoreEnergy() (int, error) {
	if s.SavePath == "" {
		return 0, nil
	}
	st, err := LoadStamp(s.SavePath)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	added := s.Energy.Restore(st, s.Now())
	if added > 0 {
		s.Log.Add(fmt.Sprintf("Recovered %d energy while away.", added), MsgInfo)
	}
	s.logger.Info("energy restored",
		zap.Int("energy", s.Energy.Value),
		zap.Int("added", added),
		zap.Time("saved_at", st.SavedAt))
	return added, nil
}
