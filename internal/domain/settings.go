package domain

import "fmt"

// Settings are the tunables shared by the store and the estimator.
type Settings struct {
	MaxHistory  int
	WindowSize  int
	MinRequired int
	Prior       Prior
}

func DefaultSettings() Settings {
	opts := DefaultPredictOptions()
	return Settings{
		MaxHistory:  MaxHistory,
		WindowSize:  opts.WindowSize,
		MinRequired: opts.MinRequired,
		Prior:       opts.Prior,
	}
}

func (s Settings) PredictOptions() PredictOptions {
	return PredictOptions{
		WindowSize:  s.WindowSize,
		MinRequired: s.MinRequired,
		Prior:       s.Prior,
	}
}

func (s Settings) Validate() error {
	if s.MaxHistory <= 0 {
		return fmt.Errorf("%w: max history must be positive, got %d", ErrInvalidSettings, s.MaxHistory)
	}
	if err := s.PredictOptions().Validate(); err != nil {
		return err
	}
	if s.MinRequired > s.MaxHistory {
		return fmt.Errorf("%w: minimum required %d exceeds max history %d", ErrInvalidSettings, s.MinRequired, s.MaxHistory)
	}
	return nil
}

// WithDefaults fills zero fields from DefaultSettings.
func (s Settings) WithDefaults() Settings {
	def := DefaultSettings()
	if s.MaxHistory == 0 {
		s.MaxHistory = def.MaxHistory
	}
	if s.WindowSize == 0 {
		s.WindowSize = def.WindowSize
	}
	if s.MinRequired == 0 {
		s.MinRequired = def.MinRequired
	}
	if len(s.Prior) == 0 {
		s.Prior = def.Prior
	}
	return s
}
