package chart

import (
	"fmt"
	"math"

	"github.com/rustyeddy/tradecharts/market"
)

// Direction tells a backend which fill to use for a candle.
type Direction int

const (
	Bearish Direction = iota // open >= close
	Bullish                  // open < close
)

func DirectionOf(c market.Candle) Direction {
	if c.Bullish() {
		return Bullish
	}
	return Bearish
}

func (d Direction) String() string {
	switch d {
	case Bullish:
		return "bullish"
	case Bearish:
		return "bearish"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "bullish":
		*d = Bullish
	case "bearish":
		*d = Bearish
	default:
		return fmt.Errorf("unknown direction %q", b)
	}
	return nil
}

// Rect is an axis-aligned rectangle placed the way most 2D backends place
// shapes: (X, Y) is where the origin point lands, and the origin is measured
// from the rectangle's top-left corner. Y grows downward.
type Rect struct {
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	OriginX float64 `json:"origin_x" yaml:"origin_x"`
	OriginY float64 `json:"origin_y" yaml:"origin_y"`
}

func (r Rect) Left() float64   { return r.X - r.OriginX }
func (r Rect) Top() float64    { return r.Y - r.OriginY }
func (r Rect) Right() float64  { return r.Left() + r.Width }
func (r Rect) Bottom() float64 { return r.Top() + r.Height }

// DrawCommand is everything a backend needs to paint one candle.
type DrawCommand struct {
	Index     int       `json:"index" yaml:"index"`
	Body      Rect      `json:"body" yaml:"body"`
	Wick      Rect      `json:"wick" yaml:"wick"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// Geometry computes the draw command for candle c sitting at index idx.
// Heights are absolute so degenerate candles still produce drawable shapes.
func (l Layout) Geometry(idx int, c market.Candle) DrawCommand {
	mid := c.Mid()
	x := l.X(idx)
	y := -mid * l.PixelsPerPriceUnit

	bodyHeight := c.Body() * l.PixelsPerPriceUnit
	wickHeight := c.Range() * l.PixelsPerPriceUnit
	top := math.Max(c.High, c.Low)

	return DrawCommand{
		Index: idx,
		Body: Rect{
			X:       x,
			Y:       y,
			Width:   l.BodyWidth,
			Height:  bodyHeight,
			OriginX: l.BodyWidth / 2,
			OriginY: bodyHeight / 2,
		},
		Wick: Rect{
			X:       x,
			Y:       y,
			Width:   l.WickWidth,
			Height:  wickHeight,
			OriginX: l.WickWidth / 2,
			OriginY: (top - mid) * l.PixelsPerPriceUnit,
		},
		Direction: DirectionOf(c),
	}
}
