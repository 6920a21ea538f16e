package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	History   historySchema   `toml:"history"`
	Estimator estimatorSchema `toml:"estimator"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported settings schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type historySchema struct {
	Max int `toml:"max,omitempty"`
}

type estimatorSchema struct {
	WindowSize  int          `toml:"window_size,omitempty"`
	MinRequired int          `toml:"min_required,omitempty"`
	Prior       *priorSchema `toml:"prior,omitempty"`
}

type priorSchema struct {
	Player float64 `toml:"player"`
	Banker float64 `toml:"banker"`
	Tie    float64 `toml:"tie"`
}
