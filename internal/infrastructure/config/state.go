package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ersonp/flightdesk/internal/domain/entities"
)

// State holds values remembered between runs (read/write).
type State struct {
	Airport AirportState `yaml:"airport,omitempty"`
}

// AirportState is the airport the boards show when none is given.
type AirportState struct {
	ID    entities.ID `yaml:"id,omitempty"`
	Label string      `yaml:"label,omitempty"`
}

// LoadState loads the state file from the .flightdesk directory. A missing
// file yields an empty state.
func LoadState(basePath string) (*State, error) {
	data, err := os.ReadFile(StateFilePath(basePath))
	if os.IsNotExist(err) {
		return &State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var st State
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}

	return &st, nil
}

// Save writes the state to the state file.
func (s *State) Save(basePath string) error {
	if err := os.MkdirAll(filepath.Join(basePath, DefaultConfigDir), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}

	if err := os.WriteFile(StateFilePath(basePath), data, 0600); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}

	return nil
}

// SetAirport remembers the default airport.
func (s *State) SetAirport(a entities.Airport) {
	s.Airport = AirportState{ID: a.ID, Label: a.Label()}
}

// ClearAirport forgets the default airport.
func (s *State) ClearAirport() {
	s.Airport = AirportState{}
}
