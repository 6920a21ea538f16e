package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	value      lipgloss.Style
	detail     lipgloss.Style
	sequence   lipgloss.Style
	pick       lipgloss.Style
	warning    lipgloss.Style
	ok         lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	note       lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	button     lipgloss.Style
	symbols    map[string]lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		base := lipgloss.NewStyle()
		return styles{
			title:      base,
			header:     base,
			value:      base,
			detail:     base,
			sequence:   base,
			pick:       base,
			warning:    base,
			ok:         base,
			section:    base.MarginTop(1),
			empty:      base,
			note:       base,
			barBracket: base,
			barFill:    base,
			barEmpty:   base,
			button:     base,
			symbols:    map[string]lipgloss.Style{},
		}
	}

	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		value:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		sequence:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		pick:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ok:         lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		note:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		symbols: map[string]lipgloss.Style{
			"P": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
			"B": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
			"T": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		},
	}
}

// symbol colors a single outcome letter; unknown letters pass through.
func (s styles) symbol(letter string) string {
	if style, ok := s.symbols[letter]; ok {
		return style.Render(letter)
	}
	return letter
}
