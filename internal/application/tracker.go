package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/bnema/baccarat-tracker/internal/ports"
)

// Tracker records outcomes per session and answers stats and prediction
// queries from the session history.
type Tracker struct {
	store    ports.SessionStore
	settings domain.Settings
	clock    ports.Clock
	logger   *slog.Logger
}

func NewTracker(store ports.SessionStore, settings domain.Settings, clock ports.Clock, logger *slog.Logger) *Tracker {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Tracker{
		store:    store,
		settings: settings.WithDefaults(),
		clock:    clock,
		logger:   logger,
	}
}

func (t *Tracker) Settings() domain.Settings {
	return t.settings
}

func (t *Tracker) Add(ctx context.Context, key domain.SessionKey, symbol domain.Symbol) (AddResult, error) {
	if !symbol.Valid() {
		return AddResult{}, fmt.Errorf("add outcome %q: %w", symbol, domain.ErrUnrecognizedInput)
	}

	view, err := t.store.Append(ctx, key, symbol)
	if err != nil {
		return AddResult{}, fmt.Errorf("append outcome: %w", err)
	}

	total := len(view.History)
	result := AddResult{
		Symbol:   symbol,
		Total:    total,
		Capacity: view.Capacity,
	}
	t.logger.DebugContext(ctx, "outcome added",
		slog.String("session", string(key)),
		slog.String("outcome", symbol.String()),
		slog.Int("total", total),
	)
	return result, nil
}

// AddText normalizes free-form input before appending it. Unrecognized
// text never reaches the store.
func (t *Tracker) AddText(ctx context.Context, key domain.SessionKey, text string) (AddResult, error) {
	symbol, err := domain.ParseSymbol(text)
	if err != nil {
		return AddResult{}, err
	}
	return t.Add(ctx, key, symbol)
}

func (t *Tracker) Undo(ctx context.Context, key domain.SessionKey) (domain.Symbol, error) {
	removed, err := t.store.Undo(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyHistory) {
			return "", err
		}
		return "", fmt.Errorf("undo outcome: %w", err)
	}

	t.logger.DebugContext(ctx, "outcome removed",
		slog.String("session", string(key)),
		slog.String("outcome", removed.String()),
	)
	return removed, nil
}

func (t *Tracker) Reset(ctx context.Context, key domain.SessionKey) error {
	if err := t.store.Reset(ctx, key); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}

	t.logger.InfoContext(ctx, "session reset", slog.String("session", string(key)))
	return nil
}

// Stats summarizes the session. An unseen key is created on the fly and
// reported as empty.
func (t *Tracker) Stats(ctx context.Context, key domain.SessionKey) (StatsReport, error) {
	view, err := t.store.GetOrCreate(ctx, key)
	if err != nil {
		return StatsReport{}, fmt.Errorf("get session: %w", err)
	}

	return StatsReport{
		Key:              key,
		SessionID:        view.ID,
		Stats:            domain.Summarize(view.History, domain.RecentLen),
		MinForPrediction: t.settings.MinRequired,
		AsOf:             t.clock.Now(),
	}, nil
}

// Predict estimates the next outcome. Short histories yield
// *domain.InsufficientDataError.
func (t *Tracker) Predict(ctx context.Context, key domain.SessionKey) (PredictionReport, error) {
	history, err := t.store.Snapshot(ctx, key)
	if err != nil {
		return PredictionReport{}, fmt.Errorf("snapshot session: %w", err)
	}

	prediction, err := domain.Predict(history, t.settings.PredictOptions())
	if err != nil {
		return PredictionReport{}, err
	}

	t.logger.DebugContext(ctx, "prediction computed",
		slog.String("session", string(key)),
		slog.Int("basis", len(prediction.Window)),
		slog.String("pick", prediction.Pick.String()),
	)
	return PredictionReport{
		Key:        key,
		Prediction: prediction,
		Total:      len(history),
		AsOf:       t.clock.Now(),
	}, nil
}

func (t *Tracker) Sessions(ctx context.Context) ([]domain.SessionKey, error) {
	keys, err := t.store.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return keys, nil
}
