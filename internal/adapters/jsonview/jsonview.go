// Package jsonview holds the JSON shapes shared by the HTTP API and the
// JSON output mode of the terminal front end.
package jsonview

import (
	"strings"

	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/bnema/baccarat-tracker/internal/ports"
)

type Stats struct {
	Total       int                `json:"total"`
	Empty       bool               `json:"empty"`
	Counts      map[string]int     `json:"counts"`
	Percentages map[string]float64 `json:"percentages,omitempty"`
	Streak      *Streak            `json:"streak,omitempty"`
	Recent      string             `json:"recent"`
}

type Streak struct {
	Outcome string `json:"outcome"`
	Length  int    `json:"length"`
}

type Prediction struct {
	Basis         int                `json:"basis"`
	Window        string             `json:"window"`
	Probabilities map[string]float64 `json:"probabilities"`
	Pick          string             `json:"pick"`
}

type Insufficient struct {
	Count    int `json:"count"`
	Required int `json:"required"`
	Missing  int `json:"missing"`
}

type Reply struct {
	Kind         string        `json:"kind"`
	Outcome      string        `json:"outcome,omitempty"`
	Total        *int          `json:"total,omitempty"`
	Input        string        `json:"input,omitempty"`
	Stats        *Stats        `json:"stats,omitempty"`
	Prediction   *Prediction   `json:"prediction,omitempty"`
	Insufficient *Insufficient `json:"insufficient,omitempty"`
}

// Key is the JSON object key for a symbol, e.g. "player".
func Key(symbol domain.Symbol) string {
	return strings.ToLower(symbol.Name())
}

func FromStats(stats domain.Stats) Stats {
	out := Stats{
		Total:  stats.Total,
		Empty:  stats.Empty,
		Counts: make(map[string]int, 3),
		Recent: domain.Join(stats.Recent),
	}
	for _, symbol := range domain.Symbols() {
		out.Counts[Key(symbol)] = stats.Counts[symbol]
	}
	if stats.Empty {
		return out
	}

	out.Percentages = make(map[string]float64, 3)
	for _, symbol := range domain.Symbols() {
		out.Percentages[Key(symbol)] = stats.Percentages[symbol]
	}
	out.Streak = &Streak{Outcome: stats.StreakSymbol.String(), Length: stats.StreakLength}
	return out
}

func FromPrediction(prediction domain.Prediction) Prediction {
	out := Prediction{
		Basis:         len(prediction.Window),
		Window:        domain.Join(prediction.Window),
		Probabilities: make(map[string]float64, 3),
		Pick:          prediction.Pick.String(),
	}
	for _, symbol := range domain.Symbols() {
		out.Probabilities[Key(symbol)] = prediction.Probabilities[symbol]
	}
	return out
}

func FromInsufficient(err *domain.InsufficientDataError) Insufficient {
	return Insufficient{Count: err.Count, Required: err.Required, Missing: err.Missing()}
}

func FromReply(reply ports.Reply) Reply {
	out := Reply{
		Kind:    string(reply.Kind),
		Outcome: reply.Symbol.String(),
		Input:   reply.Input,
	}

	switch reply.Kind {
	case ports.ReplyAdded:
		total := reply.Total
		out.Total = &total
	case ports.ReplyStats:
		if reply.Stats != nil {
			stats := FromStats(*reply.Stats)
			out.Stats = &stats
		}
	case ports.ReplyPrediction:
		if reply.Prediction != nil {
			prediction := FromPrediction(*reply.Prediction)
			out.Prediction = &prediction
		}
	case ports.ReplyInsufficient:
		insufficient := FromInsufficient(&domain.InsufficientDataError{Count: reply.Total, Required: reply.MinRequired})
		out.Insufficient = &insufficient
	}
	return out
}
