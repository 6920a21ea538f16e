package ports

import (
	"context"

	"github.com/bnema/baccarat-tracker/internal/domain"
)

type ReplyKind string

const (
	ReplyWelcome       ReplyKind = "welcome"
	ReplyHelp          ReplyKind = "help"
	ReplyAdded         ReplyKind = "added"
	ReplyUndone        ReplyKind = "undone"
	ReplyNothingToUndo ReplyKind = "nothing_to_undo"
	ReplyReset         ReplyKind = "reset"
	ReplyStats         ReplyKind = "stats"
	ReplyPrediction    ReplyKind = "prediction"
	ReplyInsufficient  ReplyKind = "insufficient"
	ReplyUnrecognized  ReplyKind = "unrecognized"
)

// Reply is what the tracker has to say back to one conversation. Only the
// fields relevant to Kind are set.
type Reply struct {
	Kind        ReplyKind
	Symbol      domain.Symbol
	Total       int
	MinRequired int
	WindowSize  int
	Input       string
	Stats       *domain.Stats
	Prediction  *domain.Prediction
	Keyboard    [][]string
}

// Notifier delivers replies to the messaging front end.
type Notifier interface {
	Notify(ctx context.Context, key domain.SessionKey, reply Reply) error
}
