package application

import "github.com/bnema/baccarat-tracker/internal/domain"

// AddResult describes the session right after an append.
type AddResult struct {
	Symbol   domain.Symbol
	Total    int
	Capacity int
}
