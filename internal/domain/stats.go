package domain

// RecentLen is how many of the newest results a summary shows.
const RecentLen = 20

// Stats summarizes a history snapshot. Percentages and the streak are only
// set when Empty is false.
type Stats struct {
	Total        int
	Empty        bool
	Counts       Counts
	Percentages  map[Symbol]float64
	StreakSymbol Symbol
	StreakLength int
	Recent       []Symbol
}

// Summarize builds Stats for seq, keeping the newest recent entries.
func Summarize(seq []Symbol, recent int) Stats {
	stats := Stats{
		Total:  len(seq),
		Counts: CountSymbols(seq),
	}

	pct, err := Percentages(seq)
	if err != nil {
		stats.Empty = true
		stats.Recent = []Symbol{}
		return stats
	}
	stats.Percentages = pct
	stats.StreakSymbol, stats.StreakLength = Streak(seq)

	if recent < 0 {
		recent = 0
	}
	start := max(len(seq)-recent, 0)
	stats.Recent = append([]Symbol{}, seq[start:]...)

	return stats
}
