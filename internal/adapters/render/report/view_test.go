package report

import (
	"testing"

	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/bnema/baccarat-tracker/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSequence(t *testing.T, text string) []domain.Symbol {
	t.Helper()

	seq, err := domain.ParseSequence(text)
	require.NoError(t, err)
	return seq
}

func TestRenderStats(t *testing.T) {
	stats := domain.Summarize(mustSequence(t, "PPPPPPPBBBBBTTT"), domain.RecentLen)

	output, err := Render(ports.Reply{Kind: ports.ReplyStats, Stats: &stats, MinRequired: 10}, RenderOptions{Plain: true})

	require.NoError(t, err)
	assert.Contains(t, output, "📊 Stats")
	assert.Contains(t, output, "Total results: 15")
	assert.Contains(t, output, "Player: 7 (46.7%)")
	assert.Contains(t, output, "Banker: 5 (33.3%)")
	assert.Contains(t, output, "Tie: 3 (20.0%)")
	assert.Contains(t, output, "Current streak: Tie x 3")
	assert.Contains(t, output, "Last 20: PPPPPPPBBBBBTTT")
	assert.Contains(t, output, "10 or more results")
}

func TestRenderStatsEmpty(t *testing.T) {
	stats := domain.Summarize(nil, domain.RecentLen)

	output, err := Render(ports.Reply{Kind: ports.ReplyStats, Stats: &stats}, RenderOptions{Plain: true})

	require.NoError(t, err)
	assert.Contains(t, output, "No data yet")
	assert.NotContains(t, output, "%")
}

func TestRenderPrediction(t *testing.T) {
	prediction, err := domain.Predict(mustSequence(t, "PPPPPPPBBBBBTTT"), domain.DefaultPredictOptions())
	require.NoError(t, err)

	output, err := Render(ports.Reply{Kind: ports.ReplyPrediction, Prediction: &prediction}, RenderOptions{Plain: true, BarWidth: 18})

	require.NoError(t, err)
	assert.Contains(t, output, "Basis: last 15 results")
	assert.Contains(t, output, "Sequence: PPPPPPPBBBBBTTT")
	assert.Contains(t, output, "P(Player) ≈ 44.4%")
	assert.Contains(t, output, "P(Banker) ≈ 33.3%")
	assert.Contains(t, output, "P(Tie) ≈ 22.2%")
	assert.Contains(t, output, "[========----------]")
	assert.Contains(t, output, "Highest estimate: Player")
	assert.Contains(t, output, "not a guarantee")
}

func TestRenderPredictionStyledUsesProgressBars(t *testing.T) {
	prediction, err := domain.Predict(mustSequence(t, "BBBBBBBBBB"), domain.DefaultPredictOptions())
	require.NoError(t, err)

	output, err := Render(ports.Reply{Kind: ports.ReplyPrediction, Prediction: &prediction}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Highest estimate: Banker")
	assert.NotContains(t, output, "[====")
}

func TestRenderInsufficientData(t *testing.T) {
	output, err := Render(ports.Reply{Kind: ports.ReplyInsufficient, Total: 6, MinRequired: 10}, RenderOptions{Plain: true})

	require.NoError(t, err)
	assert.Contains(t, output, "Need at least 10 results")
	assert.Contains(t, output, "Currently: 6")
}

func TestRenderShortReplies(t *testing.T) {
	tests := []struct {
		name  string
		reply ports.Reply
		want  []string
	}{
		{
			name:  "added",
			reply: ports.Reply{Kind: ports.ReplyAdded, Symbol: domain.SymbolBanker, Total: 12, MinRequired: 10, WindowSize: 15},
			want:  []string{"Added ✅ B (total: 12)", "10-15 results"},
		},
		{
			name:  "undone",
			reply: ports.Reply{Kind: ports.ReplyUndone, Symbol: domain.SymbolTie},
			want:  []string{"Undo ✅ (removed: T)"},
		},
		{
			name:  "nothing to undo",
			reply: ports.Reply{Kind: ports.ReplyNothingToUndo},
			want:  []string{"Nothing to undo."},
		},
		{
			name:  "reset",
			reply: ports.Reply{Kind: ports.ReplyReset},
			want:  []string{"Reset ✅ History cleared."},
		},
		{
			name:  "unrecognized",
			reply: ports.Reply{Kind: ports.ReplyUnrecognized, Input: "hello"},
			want:  []string{"Unrecognized input.", "P/B/T"},
		},
		{
			name:  "welcome",
			reply: ports.Reply{Kind: ports.ReplyWelcome, MinRequired: 10, WindowSize: 15},
			want:  []string{"Enter round results: P, B or T.", "10-15 results"},
		},
		{
			name:  "help",
			reply: ports.Reply{Kind: ports.ReplyHelp, MinRequired: 10},
			want:  []string{"Help", "• Input: P / B / T", "at least 10 results"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := Render(tt.reply, RenderOptions{Plain: true})
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestRenderKeyboard(t *testing.T) {
	reply := ports.Reply{
		Kind:     ports.ReplyReset,
		Keyboard: [][]string{{"➕ P", "➕ B"}, {"📊 Stats"}},
	}

	output, err := Render(reply, RenderOptions{Plain: true, ShowKeyboard: true})
	require.NoError(t, err)
	assert.Contains(t, output, "➕ P ➕ B")
	assert.Contains(t, output, "📊 Stats")

	output, err = Render(reply, RenderOptions{Plain: true})
	require.NoError(t, err)
	assert.NotContains(t, output, "📊 Stats")
}
