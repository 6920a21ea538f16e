package application

import (
	"time"

	"github.com/bnema/baccarat-tracker/internal/domain"
)

type StatsReport struct {
	Key              domain.SessionKey
	SessionID        string
	Stats            domain.Stats
	MinForPrediction int
	AsOf             time.Time
}

// Ready reports whether enough results exist for a prediction.
func (r StatsReport) Ready() bool {
	return r.Stats.Total >= r.MinForPrediction
}

type PredictionReport struct {
	Key        domain.SessionKey
	Prediction domain.Prediction
	Total      int
	AsOf       time.Time
}

// Basis is the number of results the estimate was computed from.
func (r PredictionReport) Basis() int {
	return len(r.Prediction.Window)
}
