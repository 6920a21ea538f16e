package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/baccarat-tracker/internal/adapters/store/memory"
	"github.com/bnema/baccarat-tracker/internal/application"
	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/bnema/baccarat-tracker/internal/ports"
	"github.com/bnema/baccarat-tracker/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recorder collects replies in order.
type recorder struct {
	replies []ports.Reply
}

func (r *recorder) Notify(_ context.Context, _ domain.SessionKey, reply ports.Reply) error {
	r.replies = append(r.replies, reply)
	return nil
}

func (r *recorder) last() ports.Reply {
	return r.replies[len(r.replies)-1]
}

func newTestDispatcher() (*Dispatcher, *recorder) {
	tracker := application.NewTracker(memory.New(0, nil), domain.DefaultSettings(), nil, nil)
	rec := &recorder{}
	return NewDispatcher(tracker, rec, nil), rec
}

func TestDispatcherRoutesCommandsAndButtons(t *testing.T) {
	tests := []struct {
		text string
		want ports.ReplyKind
	}{
		{text: "/start", want: ports.ReplyWelcome},
		{text: "/help", want: ports.ReplyHelp},
		{text: ButtonHelp, want: ports.ReplyHelp},
		{text: "/stats", want: ports.ReplyStats},
		{text: ButtonStats, want: ports.ReplyStats},
		{text: "/stats@tracker_bot", want: ports.ReplyStats},
		{text: "/next", want: ports.ReplyInsufficient},
		{text: ButtonNext, want: ports.ReplyInsufficient},
		{text: "/undo", want: ports.ReplyNothingToUndo},
		{text: ButtonUndo, want: ports.ReplyNothingToUndo},
		{text: "/reset", want: ports.ReplyReset},
		{text: ButtonReset, want: ports.ReplyReset},
		{text: "maybe", want: ports.ReplyUnrecognized},
		{text: "/unknown", want: ports.ReplyUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			dispatcher, rec := newTestDispatcher()

			require.NoError(t, dispatcher.Handle(context.Background(), "chat-1", tt.text))
			assert.Equal(t, tt.want, rec.last().Kind)
			assert.Equal(t, Keyboard(), rec.last().Keyboard)
			assert.Equal(t, domain.DefaultMinRequired, rec.last().MinRequired)
		})
	}
}

func TestDispatcherAddsFromTextAndButtons(t *testing.T) {
	ctx := context.Background()
	dispatcher, rec := newTestDispatcher()

	for _, text := range []string{ButtonAddPlayer, "banker", " t ", ButtonAddBanker} {
		require.NoError(t, dispatcher.Handle(ctx, "chat-1", text))
	}

	assert.Equal(t, ports.ReplyAdded, rec.last().Kind)
	assert.Equal(t, domain.SymbolBanker, rec.last().Symbol)
	assert.Equal(t, 4, rec.last().Total)

	require.NoError(t, dispatcher.Handle(ctx, "chat-1", "/stats"))
	require.NotNil(t, rec.last().Stats)
	assert.Equal(t, "PBTB", domain.Join(rec.last().Stats.Recent))
}

func TestDispatcherUndoAfterAdd(t *testing.T) {
	ctx := context.Background()
	dispatcher, rec := newTestDispatcher()

	require.NoError(t, dispatcher.Handle(ctx, "chat-1", "T"))
	require.NoError(t, dispatcher.Handle(ctx, "chat-1", ButtonUndo))

	assert.Equal(t, ports.ReplyUndone, rec.last().Kind)
	assert.Equal(t, domain.SymbolTie, rec.last().Symbol)
}

func TestDispatcherPredictsOnceEnoughData(t *testing.T) {
	ctx := context.Background()
	dispatcher, rec := newTestDispatcher()

	for _, text := range []string{"P", "P", "B", "B", "B", "T"} {
		require.NoError(t, dispatcher.Handle(ctx, "chat-1", text))
	}
	require.NoError(t, dispatcher.Handle(ctx, "chat-1", "/next"))
	assert.Equal(t, ports.ReplyInsufficient, rec.last().Kind)
	assert.Equal(t, 6, rec.last().Total)

	for _, text := range []string{"B", "B", "B", "B"} {
		require.NoError(t, dispatcher.Handle(ctx, "chat-1", text))
	}
	require.NoError(t, dispatcher.Handle(ctx, "chat-1", ButtonNext))

	reply := rec.last()
	require.Equal(t, ports.ReplyPrediction, reply.Kind)
	require.NotNil(t, reply.Prediction)
	assert.Equal(t, domain.SymbolBanker, reply.Prediction.Pick)
	assert.Equal(t, 10, reply.Total)
}

func TestDispatcherSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	dispatcher, rec := newTestDispatcher()

	require.NoError(t, dispatcher.Handle(ctx, "chat-1", "P"))
	require.NoError(t, dispatcher.Handle(ctx, "chat-2", "B"))
	require.NoError(t, dispatcher.Handle(ctx, "chat-2", "B"))

	require.NoError(t, dispatcher.Handle(ctx, "chat-1", "/stats"))
	assert.Equal(t, 1, rec.last().Stats.Total)
}

func TestDispatcherReturnsNotifierError(t *testing.T) {
	notifier := mocks.NewMockNotifier(t)
	tracker := application.NewTracker(memory.New(0, nil), domain.DefaultSettings(), nil, nil)
	dispatcher := NewDispatcher(tracker, notifier, nil)

	sendErr := errors.New("send failed")
	notifier.EXPECT().
		Notify(mock.Anything, domain.SessionKey("chat-1"), mock.MatchedBy(func(reply ports.Reply) bool {
			return reply.Kind == ports.ReplyHelp
		})).
		Return(sendErr)

	err := dispatcher.Handle(context.Background(), "chat-1", "/help")
	require.ErrorIs(t, err, sendErr)
	assert.ErrorContains(t, err, "notify help reply")
}
