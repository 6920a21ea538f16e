package domain

import (
	"fmt"
	"strings"
)

// Symbol is one of the three outcomes of a round.
type Symbol string

const (
	SymbolPlayer Symbol = "P"
	SymbolBanker Symbol = "B"
	SymbolTie    Symbol = "T"
)

// Symbols returns every symbol in pick priority order.
func Symbols() []Symbol {
	return []Symbol{SymbolPlayer, SymbolBanker, SymbolTie}
}

func (s Symbol) Valid() bool {
	switch s {
	case SymbolPlayer, SymbolBanker, SymbolTie:
		return true
	default:
		return false
	}
}

func (s Symbol) String() string {
	return string(s)
}

func (s Symbol) Name() string {
	switch s {
	case SymbolPlayer:
		return "Player"
	case SymbolBanker:
		return "Banker"
	case SymbolTie:
		return "Tie"
	default:
		return "-"
	}
}

// ParseSymbol maps free text to a symbol. Matching is case-insensitive and
// ignores surrounding whitespace.
func ParseSymbol(text string) (Symbol, error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "P", "PLAYER":
		return SymbolPlayer, nil
	case "B", "BANKER":
		return SymbolBanker, nil
	case "T", "TIE":
		return SymbolTie, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedInput, text)
	}
}

// ParseSequence parses either separate tokens ("P", "banker") or compact
// runs ("PBBT") into symbols.
func ParseSequence(tokens ...string) ([]Symbol, error) {
	symbols := make([]Symbol, 0, len(tokens))
	for _, token := range tokens {
		for _, field := range strings.FieldsFunc(token, isSeparator) {
			if symbol, err := ParseSymbol(field); err == nil {
				symbols = append(symbols, symbol)
				continue
			}

			for _, r := range field {
				symbol, err := ParseSymbol(string(r))
				if err != nil {
					return nil, fmt.Errorf("%w: %q in %q", ErrUnrecognizedInput, string(r), field)
				}
				symbols = append(symbols, symbol)
			}
		}
	}

	return symbols, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ';'
}

// Join renders a sequence in its compact form, e.g. "PBBT".
func Join(symbols []Symbol) string {
	var b strings.Builder
	b.Grow(len(symbols))
	for _, symbol := range symbols {
		b.WriteString(string(symbol))
	}
	return b.String()
}
