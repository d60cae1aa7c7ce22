// Package feed moves live prices from a producer goroutine to the goroutine
// that owns a candle series.
package feed

import (
	"errors"
	"sync"

	"github.com/rustyeddy/tradecharts/market"
)

// ErrNoCandle is returned by Apply when a price arrived but the series has
// no candle to update yet.
var ErrNoCandle = errors.New("no candle to update")

// Handoff is a single-slot mailbox holding the newest price. A producer
// publishes as often as it likes; the consumer only ever sees the latest
// value, and sees each value at most once.
type Handoff struct {
	mu      sync.Mutex
	price   float64
	pending bool
	seq     uint64
}

func NewHandoff() *Handoff {
	return &Handoff{}
}

// Publish replaces any unconsumed price.
func (h *Handoff) Publish(price float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.price = price
	h.pending = true
	h.seq++
}

// Take returns the newest unseen price.
func (h *Handoff) Take() (float64, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.pending {
		return 0, false
	}
	h.pending = false
	return h.price, true
}

// Published is the number of prices published so far.
func (h *Handoff) Published() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.seq
}

// StartWorker publishes every price received on ch until ch is closed. The
// returned channel is closed once the worker exits.
func (h *Handoff) StartWorker(ch <-chan float64) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range ch {
			h.Publish(p)
		}
	}()
	return done
}

// Apply moves a pending price into the last candle of s. It must run on the
// goroutine that owns s. It returns false with a nil error when nothing was
// pending, and ErrNoCandle when s is empty; the price is dropped in that case.
func (h *Handoff) Apply(s *market.Series) (bool, error) {
	p, ok := h.Take()
	if !ok {
		return false, nil
	}
	if !s.UpdateLast(p) {
		return false, ErrNoCandle
	}
	return true, nil
}
