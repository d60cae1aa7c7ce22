package market

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

// ErrOutOfOrder is returned by AppendChecked when a candle starts before the
// current last candle.
var ErrOutOfOrder = errors.New("candle out of order")

// Series is an ordered run of candles sharing one bucket duration. Only the
// last candle may be changed after it is appended.
//
// A Series is not safe for concurrent use. Live prices produced on another
// goroutine should reach it through feed.Handoff.
type Series struct {
	candles        []Candle
	bucketDuration time.Duration
}

// NewSeries returns an empty series with a zero bucket duration.
func NewSeries() *Series {
	return &Series{}
}

// NewSeriesFrom adopts candles. The bucket duration is taken from the first
// candle, or zero when candles is empty.
func NewSeriesFrom(candles []Candle) *Series {
	s := &Series{candles: candles}
	if len(candles) > 0 {
		s.bucketDuration = candles[0].Duration
	}
	return s
}

// NewSeriesWithDuration adopts candles with an explicit bucket duration,
// for sequences whose per-candle durations are not authoritative.
func NewSeriesWithDuration(candles []Candle, d time.Duration) *Series {
	return &Series{candles: candles, bucketDuration: d}
}

func (s *Series) Len() int                      { return len(s.candles) }
func (s *Series) BucketDuration() time.Duration { return s.bucketDuration }

// Append adds c to the end of the series as-is. Time order is not checked.
func (s *Series) Append(c Candle) {
	s.candles = append(s.candles, c)
}

// AppendOHLCV appends a candle that takes the series' bucket duration.
func (s *Series) AppendOHLCV(open, high, low, close float64, volume int64, date Date, clock Clock) {
	s.candles = append(s.candles, NewCandle(open, high, low, close, volume, date, clock, s.bucketDuration))
}

// AppendChecked appends c unless both it and the last candle carry a start
// anchor and c starts before the last candle.
func (s *Series) AppendChecked(c Candle) error {
	if last, ok := s.Last(); ok && c.Start.Before(last.Start) {
		return fmt.Errorf("%w: %s before %s", ErrOutOfOrder, c.Start, last.Start)
	}
	s.candles = append(s.candles, c)
	return nil
}

// UpdateLast applies a live price to the newest candle: close becomes price
// and high/low widen to include it. It reports false, changing nothing, when
// the series is empty.
func (s *Series) UpdateLast(price float64) bool {
	if len(s.candles) == 0 {
		return false
	}

	c := &s.candles[len(s.candles)-1]
	c.Close = price
	c.High = max(c.High, price)
	c.Low = min(c.Low, price)
	return true
}

// At returns the candle at idx.
func (s *Series) At(idx int) (Candle, bool) {
	if idx < 0 || idx >= len(s.candles) {
		return Candle{}, false
	}
	return s.candles[idx], true
}

func (s *Series) Last() (Candle, bool) {
	return s.At(len(s.candles) - 1)
}

// Candles returns a copy of the underlying candles.
func (s *Series) Candles() []Candle {
	cp := make([]Candle, len(s.candles))
	copy(cp, s.candles)
	return cp
}

// All walks every candle in order.
func (s *Series) All() iter.Seq2[int, Candle] {
	return s.Window(0, len(s.candles))
}

// Window walks the candles with index in [start, end). Bounds outside the
// series are clipped, so an oversized window yields fewer candles rather
// than failing.
func (s *Series) Window(start, end int) iter.Seq2[int, Candle] {
	start = max(start, 0)
	end = min(end, len(s.candles))
	return func(yield func(int, Candle) bool) {
		for i := start; i < end; i++ {
			if !yield(i, s.candles[i]) {
				return
			}
		}
	}
}

type Iterator struct {
	s   *Series
	idx int
}

func (s *Series) Iterator() *Iterator {
	return &Iterator{
		s:   s,
		idx: -1,
	}
}

func (it *Iterator) Next() bool {
	if it.idx >= len(it.s.candles) {
		return false
	}
	it.idx++
	return it.idx < len(it.s.candles)
}

func (it *Iterator) Candle() Candle {
	return it.s.candles[it.idx]
}

func (it *Iterator) Index() int {
	return it.idx
}

// Time is the start time of the current candle, zero if it has no anchor.
func (it *Iterator) Time() time.Time {
	return it.s.candles[it.idx].Start.Time()
}
