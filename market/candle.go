package market

import (
	"math"
	"time"
)

// Candle represents OHLCV (Open, High, Low, Close, Volume) data for one
// time bucket. Callers that mutate a candle must keep Low <= min(Open, Close)
// and High >= max(Open, Close).
type Candle struct {
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64

	Start    Anchor        // bucket start, unset when not given
	Duration time.Duration // bucket length
}

// NewCandle returns a candle with every field given.
func NewCandle(open, high, low, close float64, volume int64, date Date, clock Clock, duration time.Duration) Candle {
	return Candle{
		Open:     open,
		High:     high,
		Low:      low,
		Close:    close,
		Volume:   volume,
		Start:    NewAnchor(date, clock),
		Duration: duration,
	}
}

// NewCandleNoTime returns a candle with no start anchor and zero duration.
func NewCandleNoTime(open, high, low, close float64, volume int64) Candle {
	return Candle{Open: open, High: high, Low: low, Close: close, Volume: volume}
}

// NewCandleOHLC returns a candle with zero volume, no start anchor and zero
// duration.
func NewCandleOHLC(open, high, low, close float64) Candle {
	return Candle{Open: open, High: high, Low: low, Close: close}
}

// Mid is the midpoint of the body.
func (c Candle) Mid() float64 {
	return (c.Open + c.Close) / 2
}

// Body is the absolute open/close distance.
func (c Candle) Body() float64 {
	return math.Abs(c.Open - c.Close)
}

// Range is the absolute high/low distance.
func (c Candle) Range() float64 {
	return math.Abs(c.High - c.Low)
}

func (c Candle) Bullish() bool {
	return c.Open < c.Close
}
