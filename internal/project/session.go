// Package project persists solve sessions as JSON files.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/tilefit/internal/engine"
	"github.com/piwi3910/tilefit/internal/model"
)

// Session captures one solve run for later reload: where the puzzle came
// from, the settings used, and the per-region outcomes.
type Session struct {
	Name     string               `json:"name"`
	Source   string               `json:"source"`
	Settings engine.Settings      `json:"settings"`
	Shapes   []model.Shape        `json:"shapes"`
	Results  []model.RegionResult `json:"results"`
	SavedAt  time.Time            `json:"saved_at"`
}

// DefaultSessionPath returns the default file path for the session file,
// located at ~/.tilefit/session.json.
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".tilefit", "session.json"), nil
}

// SaveSession writes the session to the specified JSON file, creating
// parent directories if they do not exist.
func SaveSession(path string, s Session) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	s.SavedAt = time.Now().UTC()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSession reads a session from the specified JSON file.
func LoadSession(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}
