package ports

import (
	"context"

	"github.com/bnema/baccarat-tracker/internal/domain"
)

// SessionStore keeps one bounded history per session key. Mutations on the
// same key are serialized; different keys never contend.
type SessionStore interface {
	GetOrCreate(ctx context.Context, key domain.SessionKey) (domain.SessionView, error)
	Append(ctx context.Context, key domain.SessionKey, symbol domain.Symbol) (domain.SessionView, error)
	Undo(ctx context.Context, key domain.SessionKey) (domain.Symbol, error)
	Reset(ctx context.Context, key domain.SessionKey) error
	Snapshot(ctx context.Context, key domain.SessionKey) ([]domain.Symbol, error)
	Keys(ctx context.Context) ([]domain.SessionKey, error)
}
