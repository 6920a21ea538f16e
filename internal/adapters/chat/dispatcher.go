package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/baccarat-tracker/internal/application"
	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/bnema/baccarat-tracker/internal/ports"
)

type action int

const (
	actionAdd action = iota
	actionWelcome
	actionHelp
	actionStats
	actionNext
	actionUndo
	actionReset
)

var commands = map[string]action{
	"/start":    actionWelcome,
	"/help":     actionHelp,
	"/stats":    actionStats,
	"/next":     actionNext,
	"/undo":     actionUndo,
	"/reset":    actionReset,
	ButtonHelp:  actionHelp,
	ButtonStats: actionStats,
	ButtonNext:  actionNext,
	ButtonUndo:  actionUndo,
	ButtonReset: actionReset,
}

var addButtons = map[string]string{
	ButtonAddPlayer: "P",
	ButtonAddBanker: "B",
	ButtonAddTie:    "T",
}

// Dispatcher turns one incoming message into a tracker call and a reply.
type Dispatcher struct {
	tracker  *application.Tracker
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewDispatcher(tracker *application.Tracker, notifier ports.Notifier, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Dispatcher{
		tracker:  tracker,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle routes text from the conversation key and notifies the reply.
// Unrecognized input is answered, not returned as an error.
func (d *Dispatcher) Handle(ctx context.Context, key domain.SessionKey, text string) error {
	reply, err := d.reply(ctx, key, text)
	if err != nil {
		return err
	}

	settings := d.tracker.Settings()
	reply.MinRequired = settings.MinRequired
	reply.WindowSize = settings.WindowSize
	reply.Keyboard = Keyboard()

	if err := d.notifier.Notify(ctx, key, reply); err != nil {
		return fmt.Errorf("notify %s reply: %w", reply.Kind, err)
	}
	return nil
}

func (d *Dispatcher) reply(ctx context.Context, key domain.SessionKey, text string) (ports.Reply, error) {
	text = strings.TrimSpace(text)
	act, text := route(text)

	switch act {
	case actionWelcome:
		return ports.Reply{Kind: ports.ReplyWelcome}, nil
	case actionHelp:
		return ports.Reply{Kind: ports.ReplyHelp}, nil
	case actionStats:
		report, err := d.tracker.Stats(ctx, key)
		if err != nil {
			return ports.Reply{}, err
		}
		return ports.Reply{Kind: ports.ReplyStats, Stats: &report.Stats, Total: report.Stats.Total}, nil
	case actionNext:
		report, err := d.tracker.Predict(ctx, key)
		var insufficient *domain.InsufficientDataError
		if errors.As(err, &insufficient) {
			return ports.Reply{Kind: ports.ReplyInsufficient, Total: insufficient.Count}, nil
		}
		if err != nil {
			return ports.Reply{}, err
		}
		return ports.Reply{Kind: ports.ReplyPrediction, Prediction: &report.Prediction, Total: report.Total}, nil
	case actionUndo:
		removed, err := d.tracker.Undo(ctx, key)
		if errors.Is(err, domain.ErrEmptyHistory) {
			return ports.Reply{Kind: ports.ReplyNothingToUndo}, nil
		}
		if err != nil {
			return ports.Reply{}, err
		}
		return ports.Reply{Kind: ports.ReplyUndone, Symbol: removed}, nil
	case actionReset:
		if err := d.tracker.Reset(ctx, key); err != nil {
			return ports.Reply{}, err
		}
		return ports.Reply{Kind: ports.ReplyReset}, nil
	}

	result, err := d.tracker.AddText(ctx, key, text)
	if errors.Is(err, domain.ErrUnrecognizedInput) {
		d.logger.DebugContext(ctx, "unrecognized input", slog.String("session", string(key)), slog.String("text", text))
		return ports.Reply{Kind: ports.ReplyUnrecognized, Input: text}, nil
	}
	if err != nil {
		return ports.Reply{}, err
	}
	return ports.Reply{Kind: ports.ReplyAdded, Symbol: result.Symbol, Total: result.Total}, nil
}

// route maps a message onto an action. Commands may carry a "@botname"
// suffix as sent by group chats.
func route(text string) (action, string) {
	if symbol, ok := addButtons[text]; ok {
		return actionAdd, symbol
	}

	name := text
	if strings.HasPrefix(name, "/") {
		name = strings.ToLower(strings.Fields(name + " ")[0])
		if at := strings.IndexByte(name, '@'); at > 0 {
			name = name[:at]
		}
	}
	if act, ok := commands[name]; ok {
		return act, text
	}
	return actionAdd, text
}
