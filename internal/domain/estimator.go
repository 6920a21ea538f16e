package domain

import "fmt"

const (
	DefaultWindowSize  = 15
	DefaultMinRequired = 10
)

type Counts map[Symbol]int

func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

type Probabilities map[Symbol]float64

func (p Probabilities) Sum() float64 {
	sum := 0.0
	for _, v := range p {
		sum += v
	}
	return sum
}

// Prior holds the pseudocount added to each symbol before normalizing.
type Prior map[Symbol]float64

// UniformPrior is add-one smoothing.
func UniformPrior() Prior {
	return Prior{SymbolPlayer: 1, SymbolBanker: 1, SymbolTie: 1}
}

func (p Prior) Total() float64 {
	total := 0.0
	for _, symbol := range Symbols() {
		total += p[symbol]
	}
	return total
}

func (p Prior) Validate() error {
	for _, symbol := range Symbols() {
		if p[symbol] < 0 {
			return fmt.Errorf("%w: prior for %s is negative", ErrInvalidSettings, symbol.Name())
		}
	}
	if p.Total() <= 0 {
		return fmt.Errorf("%w: prior must have a positive total", ErrInvalidSettings)
	}
	return nil
}

// Streak returns the newest symbol and the length of the run ending at it.
// An empty sequence yields ("", 0).
func Streak(seq []Symbol) (Symbol, int) {
	if len(seq) == 0 {
		return "", 0
	}

	last := seq[len(seq)-1]
	n := 1
	for i := len(seq) - 2; i >= 0 && seq[i] == last; i-- {
		n++
	}
	return last, n
}

// CountSymbols tallies every symbol; absent symbols map to zero.
func CountSymbols(seq []Symbol) Counts {
	counts := Counts{SymbolPlayer: 0, SymbolBanker: 0, SymbolTie: 0}
	for _, symbol := range seq {
		counts[symbol]++
	}
	return counts
}

// Percentages returns 100*count/len per symbol. Callers get ErrEmptyHistory
// instead of a division by zero.
func Percentages(seq []Symbol) (map[Symbol]float64, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyHistory
	}

	counts := CountSymbols(seq)
	pct := make(map[Symbol]float64, len(counts))
	for _, symbol := range Symbols() {
		pct[symbol] = 100 * float64(counts[symbol]) / float64(len(seq))
	}
	return pct, nil
}

// SmoothedProbabilities is the Dirichlet posterior mean over window:
// (prior[s] + count(s)) / (sum(prior) + len(window)). A nil prior means
// UniformPrior. The window is treated as an exchangeable sample.
func SmoothedProbabilities(window []Symbol, prior Prior) Probabilities {
	if prior == nil {
		prior = UniformPrior()
	}

	counts := CountSymbols(window)
	denom := prior.Total() + float64(len(window))
	probs := make(Probabilities, 3)
	for _, symbol := range Symbols() {
		probs[symbol] = (prior[symbol] + float64(counts[symbol])) / denom
	}
	return probs
}

// Pick returns the symbol with the highest probability. Exact ties go to
// the earlier symbol in Symbols() order.
func Pick(probs Probabilities) Symbol {
	var (
		best     Symbol
		bestProb = -1.0
	)
	for _, symbol := range Symbols() {
		if p := probs[symbol]; p > bestProb {
			best, bestProb = symbol, p
		}
	}
	return best
}

type PredictOptions struct {
	WindowSize  int
	MinRequired int
	Prior       Prior
}

func DefaultPredictOptions() PredictOptions {
	return PredictOptions{
		WindowSize:  DefaultWindowSize,
		MinRequired: DefaultMinRequired,
		Prior:       UniformPrior(),
	}
}

func (o PredictOptions) Validate() error {
	if o.WindowSize <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %d", ErrInvalidSettings, o.WindowSize)
	}
	if o.MinRequired <= 0 {
		return fmt.Errorf("%w: minimum required must be positive, got %d", ErrInvalidSettings, o.MinRequired)
	}
	if o.Prior != nil {
		return o.Prior.Validate()
	}
	return nil
}

type Prediction struct {
	Window        []Symbol
	Probabilities Probabilities
	Pick          Symbol
}

// Predict estimates the next outcome from the newest WindowSize entries of
// history. Below MinRequired entries it returns *InsufficientDataError.
func Predict(history []Symbol, opts PredictOptions) (Prediction, error) {
	if err := opts.Validate(); err != nil {
		return Prediction{}, err
	}
	if len(history) < opts.MinRequired {
		return Prediction{}, &InsufficientDataError{Count: len(history), Required: opts.MinRequired}
	}

	size := min(opts.WindowSize, len(history))
	window := make([]Symbol, size)
	copy(window, history[len(history)-size:])

	probs := SmoothedProbabilities(window, opts.Prior)
	return Prediction{
		Window:        window,
		Probabilities: probs,
		Pick:          Pick(probs),
	}, nil
}
