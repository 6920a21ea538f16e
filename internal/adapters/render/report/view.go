package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/baccarat-tracker/internal/domain"
	"github.com/bnema/baccarat-tracker/internal/ports"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBarWidth = 24
	barFillColor    = "#87d7ff"
)

type RenderOptions struct {
	// Plain drops colors, borders and the gradient bars.
	Plain        bool
	ShowKeyboard bool
	BarWidth     int
}

func renderView(reply ports.Reply, opts RenderOptions, s styles) string {
	var lines []string
	switch reply.Kind {
	case ports.ReplyWelcome:
		lines = welcomeLines(reply, s)
	case ports.ReplyHelp:
		lines = helpLines(reply, s)
	case ports.ReplyAdded:
		lines = []string{
			fmt.Sprintf("%s %s (total: %s)", s.ok.Render("Added ✅"), s.symbol(reply.Symbol.String()), s.value.Render(fmt.Sprint(reply.Total))),
			s.header.Render(readyHint(reply)),
		}
	case ports.ReplyUndone:
		lines = []string{fmt.Sprintf("%s (removed: %s)", s.ok.Render("Undo ✅"), s.symbol(reply.Symbol.String()))}
	case ports.ReplyNothingToUndo:
		lines = []string{s.empty.Render("Nothing to undo.")}
	case ports.ReplyReset:
		lines = []string{s.ok.Render("Reset ✅") + " History cleared."}
	case ports.ReplyStats:
		lines = statsLines(reply, s)
	case ports.ReplyPrediction:
		lines = predictionLines(reply, opts, s)
	case ports.ReplyInsufficient:
		lines = []string{
			s.warning.Render(fmt.Sprintf("Not enough data. Need at least %d results.", reply.MinRequired)),
			fmt.Sprintf("Currently: %s", s.value.Render(fmt.Sprint(reply.Total))),
		}
	case ports.ReplyUnrecognized:
		lines = []string{s.warning.Render("Unrecognized input.") + " Send P/B/T."}
	default:
		lines = []string{s.empty.Render(fmt.Sprintf("unknown reply %q", reply.Kind))}
	}

	if opts.ShowKeyboard && len(reply.Keyboard) > 0 {
		lines = append(lines, s.section.Render(renderKeyboard(reply.Keyboard, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func welcomeLines(reply ports.Reply, s styles) []string {
	return []string{
		fmt.Sprintf("Enter round results: %s, %s or %s.", s.symbol("P"), s.symbol("B"), s.symbol("T")),
		fmt.Sprintf("Once you have %s, press %s for an estimate of the next round.",
			s.value.Render(readyRange(reply)), s.title.Render("▶️ Next Prediction")),
		s.header.Render("Buttons are on the keyboard below."),
	}
}

func helpLines(reply ports.Reply, s styles) []string {
	return []string{
		s.title.Render("Help"),
		"• Input: P / B / T",
		fmt.Sprintf("• With at least %d results, press ▶️ Next Prediction", reply.MinRequired),
		"• Reset clears the history",
	}
}

func statsLines(reply ports.Reply, s styles) []string {
	stats := reply.Stats
	if stats == nil || stats.Empty {
		return []string{s.empty.Render("No data yet. Enter P/B/T first.")}
	}

	lines := []string{
		s.title.Render("📊 Stats"),
		fmt.Sprintf("Total results: %s", s.value.Render(fmt.Sprint(stats.Total))),
	}
	for _, symbol := range domain.Symbols() {
		lines = append(lines, fmt.Sprintf("%s: %s (%s)",
			symbol.Name(),
			s.value.Render(fmt.Sprint(stats.Counts[symbol])),
			formatPercent(stats.Percentages[symbol]),
		))
	}

	lines = append(lines,
		s.section.Render(fmt.Sprintf("Current streak: %s x %s",
			s.value.Render(stats.StreakSymbol.Name()), s.value.Render(fmt.Sprint(stats.StreakLength)))),
		fmt.Sprintf("Last %d: %s", domain.RecentLen, renderSequence(stats.Recent, s)),
		s.section.Render(s.header.Render(fmt.Sprintf("Press ▶️ Next Prediction once you have %d or more results.", reply.MinRequired))),
	)
	return lines
}

func predictionLines(reply ports.Reply, opts RenderOptions, s styles) []string {
	prediction := reply.Prediction
	if prediction == nil {
		return []string{s.empty.Render("No prediction available.")}
	}

	lines := []string{
		s.title.Render("▶️ Next Prediction"),
		fmt.Sprintf("Basis: last %s results", s.value.Render(fmt.Sprint(len(prediction.Window)))),
		fmt.Sprintf("Sequence: %s", renderSequence(prediction.Window, s)),
		s.section.Render(s.title.Render("Estimated next-round probabilities (smoothed)")),
	}

	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}
	for _, symbol := range domain.Symbols() {
		prob := prediction.Probabilities[symbol]
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			fmt.Sprintf("P(%s) ≈ %s", symbol.Name(), s.value.Render(formatPercent(prob*100))),
			" ",
			renderProbabilityBar(prob, width, opts.Plain, s),
		))
	}

	lines = append(lines,
		s.section.Render(fmt.Sprintf("Highest estimate: %s", s.pick.Render(prediction.Pick.Name()))),
		s.note.Render("Note: this is an estimate from the input window, not a guarantee for the next round."),
	)
	return lines
}

func renderKeyboard(rows [][]string, s styles) string {
	rendered := make([]string, 0, len(rows))
	for _, row := range rows {
		buttons := make([]string, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, s.button.Render(label))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Center, joinWith(buttons, " ")...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func joinWith(items []string, sep string) []string {
	if len(items) < 2 {
		return items
	}
	out := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, item)
	}
	return out
}

func renderSequence(seq []domain.Symbol, s styles) string {
	if len(seq) == 0 {
		return s.empty.Render("-")
	}

	var b strings.Builder
	for _, symbol := range seq {
		b.WriteString(s.symbol(symbol.String()))
	}
	return s.sequence.Render(b.String())
}

// renderProbabilityBar draws prob (0..1) as a bar. Plain output keeps an
// ASCII bar so it stays readable in logs and pipes.
func renderProbabilityBar(prob float64, width int, plain bool, s styles) string {
	if width <= 0 {
		return ""
	}
	prob = clampUnit(prob)

	if !plain {
		bar := progress.New(
			progress.WithSolidFill(barFillColor),
			progress.WithWidth(width),
			progress.WithoutPercentage(),
		)
		return bar.ViewAs(prob)
	}

	filled := int(math.Round(float64(width) * prob))
	filled = max(0, min(filled, width))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func readyHint(reply ports.Reply) string {
	return fmt.Sprintf("Once you have %s, press ▶️ Next Prediction.", readyRange(reply))
}

func readyRange(reply ports.Reply) string {
	if reply.WindowSize > reply.MinRequired {
		return fmt.Sprintf("%d-%d results", reply.MinRequired, reply.WindowSize)
	}
	return fmt.Sprintf("%d results", reply.MinRequired)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
