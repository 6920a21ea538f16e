package domain

// MaxHistory is the default number of results kept per session.
const MaxHistory = 300

// History is a bounded sequence of symbols. Once full, each push evicts the
// oldest entry. It is not safe for concurrent use.
type History struct {
	buf   []Symbol
	head  int
	count int
}

// NewHistory returns an empty history holding at most capacity symbols.
// A non-positive capacity falls back to MaxHistory.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = MaxHistory
	}
	return &History{buf: make([]Symbol, capacity)}
}

func (h *History) Len() int {
	return h.count
}

func (h *History) Cap() int {
	return len(h.buf)
}

// Push appends a symbol at the tail and reports the evicted head, if any.
func (h *History) Push(symbol Symbol) (evicted Symbol, ok bool) {
	if h.count == len(h.buf) {
		evicted = h.buf[h.head]
		h.buf[h.head] = symbol
		h.head = (h.head + 1) % len(h.buf)
		return evicted, true
	}

	h.buf[(h.head+h.count)%len(h.buf)] = symbol
	h.count++
	return "", false
}

// Pop removes and returns the newest symbol.
func (h *History) Pop() (Symbol, error) {
	if h.count == 0 {
		return "", ErrEmptyHistory
	}

	idx := (h.head + h.count - 1) % len(h.buf)
	symbol := h.buf[idx]
	h.buf[idx] = ""
	h.count--
	if h.count == 0 {
		h.head = 0
	}
	return symbol, nil
}

func (h *History) Clear() {
	clear(h.buf)
	h.head = 0
	h.count = 0
}

// Snapshot copies the history, oldest first.
func (h *History) Snapshot() []Symbol {
	return h.Last(h.count)
}

// Last copies the newest n symbols, oldest first.
func (h *History) Last(n int) []Symbol {
	if n > h.count {
		n = h.count
	}
	if n <= 0 {
		return []Symbol{}
	}

	out := make([]Symbol, n)
	start := h.head + h.count - n
	for i := range out {
		out[i] = h.buf[(start+i)%len(h.buf)]
	}
	return out
}
