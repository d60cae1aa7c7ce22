package chart

import (
	"errors"
	"fmt"
)

var ErrInvalidLayout = errors.New("invalid chart layout")

// Layout holds the chart-local drawing constants. Width and Height are the
// nominal chart size and do not limit what is drawn; the visible region is
// passed on every call.
type Layout struct {
	PixelsPerPriceUnit float64 `json:"pixels_per_price_unit" yaml:"pixels_per_price_unit"`
	CandleSpacing      float64 `json:"candle_spacing" yaml:"candle_spacing"`
	BodyWidth          float64 `json:"body_width" yaml:"body_width"`
	WickWidth          float64 `json:"wick_width" yaml:"wick_width"`
	Width              float64 `json:"width" yaml:"width"`
	Height             float64 `json:"height" yaml:"height"`
}

// DefaultLayout returns the stock layout for a 1200x900 chart.
func DefaultLayout() Layout {
	return Layout{
		PixelsPerPriceUnit: 10,
		CandleSpacing:      5,
		BodyWidth:          9,
		WickWidth:          3,
		Width:              1200,
		Height:             900,
	}
}

// Slot is the horizontal distance between neighbouring candle centres.
func (l Layout) Slot() float64 {
	return l.BodyWidth + l.CandleSpacing
}

// X is the horizontal centre of the candle at idx.
func (l Layout) X(idx int) float64 {
	return float64(idx) * l.Slot()
}

func (l Layout) Validate() error {
	if l.PixelsPerPriceUnit <= 0 {
		return fmt.Errorf("%w: pixels_per_price_unit must be positive", ErrInvalidLayout)
	}
	if l.BodyWidth < 0 || l.WickWidth < 0 || l.CandleSpacing < 0 {
		return fmt.Errorf("%w: widths and spacing must not be negative", ErrInvalidLayout)
	}
	if l.Slot() <= 0 {
		return fmt.Errorf("%w: body_width + candle_spacing must be positive", ErrInvalidLayout)
	}
	if l.Width < 0 || l.Height < 0 {
		return fmt.Errorf("%w: width and height must not be negative", ErrInvalidLayout)
	}
	return nil
}
