package feed

import (
	"sync"
	"testing"

	"github.com/rustyeddy/tradecharts/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandoff_TakeOnce(t *testing.T) {
	t.Parallel()

	h := NewHandoff()
	_, ok := h.Take()
	assert.False(t, ok)

	h.Publish(1.5)
	h.Publish(2.5)

	p, ok := h.Take()
	require.True(t, ok)
	assert.Equal(t, 2.5, p)

	_, ok = h.Take()
	assert.False(t, ok)
	assert.Equal(t, uint64(2), h.Published())
}

func TestHandoff_Apply(t *testing.T) {
	t.Parallel()

	h := NewHandoff()
	s := market.NewSeriesFrom([]market.Candle{market.NewCandleOHLC(10, 12, 9, 11)})

	applied, err := h.Apply(s)
	assert.NoError(t, err)
	assert.False(t, applied)

	h.Publish(13)
	applied, err = h.Apply(s)
	require.NoError(t, err)
	assert.True(t, applied)

	last, _ := s.Last()
	assert.Equal(t, 13.0, last.Close)
	assert.Equal(t, 13.0, last.High)
}

func TestHandoff_ApplyEmptySeries(t *testing.T) {
	t.Parallel()

	h := NewHandoff()
	s := market.NewSeries()

	h.Publish(5)
	applied, err := h.Apply(s)
	assert.ErrorIs(t, err, ErrNoCandle)
	assert.False(t, applied)
	assert.Equal(t, 0, s.Len())

	// the price was consumed
	_, ok := h.Take()
	assert.False(t, ok)
}

func TestHandoff_StartWorker(t *testing.T) {
	t.Parallel()

	h := NewHandoff()
	ch := make(chan float64)
	done := h.StartWorker(ch)

	for i := 1; i <= 100; i++ {
		ch <- float64(i)
	}
	close(ch)
	<-done

	p, ok := h.Take()
	require.True(t, ok)
	assert.Equal(t, 100.0, p)
	assert.Equal(t, uint64(100), h.Published())
}

func TestHandoff_ConcurrentProducer(t *testing.T) {
	t.Parallel()

	h := NewHandoff()
	s := market.NewSeriesFrom([]market.Candle{market.NewCandleOHLC(50, 50, 50, 50)})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			h.Publish(float64(i % 100))
		}
	}()

	for range 1000 {
		_, err := h.Apply(s)
		require.NoError(t, err)
	}
	wg.Wait()
	_, err := h.Apply(s)
	require.NoError(t, err)

	last, _ := s.Last()
	assert.Equal(t, 99.0, last.Close)
	assert.LessOrEqual(t, last.Low, last.Close)
	assert.GreaterOrEqual(t, last.High, last.Close)
}
