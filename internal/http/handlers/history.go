package handlers

import (
	"sync"

	"github.com/xpmourad/cutout/internal/removal"
)

// History keeps a bounded, append-only list of recent results so the UI can
// show past submissions. Results are stored as returned by the pipeline and
// never mutated; when the bound is reached the oldest entries fall off.
type History struct {
	mu    sync.Mutex
	limit int
	items []removal.Result
}

// NewHistory creates a history bounded to limit entries. A limit of zero or
// less disables accumulation.
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Add appends a result, evicting the oldest entry when full.
func (h *History) Add(res removal.Result) {
	if h.limit <= 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append(h.items, res)
	if len(h.items) > h.limit {
		h.items = h.items[len(h.items)-h.limit:]
	}
}

// Recent returns the stored results, newest first.
func (h *History) Recent() []removal.Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]removal.Result, 0, len(h.items))
	for i := len(h.items) - 1; i >= 0; i-- {
		out = append(out, h.items[i])
	}
	return out
}
