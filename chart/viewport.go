package chart

import (
	"fmt"
	"iter"
	"math"

	"github.com/rustyeddy/tradecharts/market"
)

// IndexRange is the half-open range of candle indices [Start, End).
// Start <= End always holds; Start == End means nothing is visible.
type IndexRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (r IndexRange) Len() int    { return r.End - r.Start }
func (r IndexRange) Empty() bool { return r.End <= r.Start }
func (r IndexRange) Last() int   { return r.End - 1 }
func (r IndexRange) String() string {
	if r.Empty() {
		return "[]"
	}
	return fmt.Sprintf("[%d..%d]", r.Start, r.Last())
}

// Renderer is a drawing backend. It is handed visible candles in ascending
// index order.
type Renderer interface {
	DrawCandle(cmd DrawCommand) error
}

// Viewport maps a horizontal pixel window onto the candles of a series it
// owns. It keeps no pan or zoom state; the caller passes the window edges.
type Viewport struct {
	series *market.Series
	layout Layout
}

// NewViewport takes ownership of series and uses the default layout with
// the given nominal size.
func NewViewport(series *market.Series, width, height float64) *Viewport {
	l := DefaultLayout()
	l.Width = width
	l.Height = height
	return &Viewport{series: series, layout: l}
}

func NewViewportWithLayout(series *market.Series, l Layout) (*Viewport, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &Viewport{series: series, layout: l}, nil
}

func (v *Viewport) Series() *market.Series { return v.series }
func (v *Viewport) Layout() Layout         { return v.layout }

// VisibleRange returns the candles to draw for the window [viewLeft,
// viewRight]. One extra slot is included on the right so a candle straddling
// the edge is kept. A window that runs past the data is truncated, and a
// window entirely outside it yields an empty range.
func (v *Viewport) VisibleRange(viewLeft, viewRight float64) IndexRange {
	n := v.series.Len()
	slot := v.layout.Slot()
	if n == 0 || slot <= 0 || math.IsNaN(viewLeft) || math.IsNaN(viewRight) {
		return IndexRange{}
	}

	// Stay in float64 until the bounds are clamped so huge views cannot
	// overflow the int conversion.
	left := 0.0
	if viewLeft >= 0 {
		left = math.Floor(viewLeft / slot)
	}
	right := min(math.Floor(viewRight/slot)+1, float64(n-1))
	if left > right {
		return IndexRange{}
	}
	return IndexRange{Start: int(left), End: int(right) + 1}
}

// Visible lazily yields the draw command for each visible candle. The
// sequence is computed on every iteration, so ranging over it again after
// the series changes reflects the change.
func (v *Viewport) Visible(viewLeft, viewRight float64) iter.Seq2[int, DrawCommand] {
	return func(yield func(int, DrawCommand) bool) {
		r := v.VisibleRange(viewLeft, viewRight)
		for i, c := range v.series.Window(r.Start, r.End) {
			if !yield(i, v.layout.Geometry(i, c)) {
				return
			}
		}
	}
}

// DrawCommands collects Visible into a slice.
func (v *Viewport) DrawCommands(viewLeft, viewRight float64) []DrawCommand {
	out := make([]DrawCommand, 0, v.VisibleRange(viewLeft, viewRight).Len())
	for _, cmd := range v.Visible(viewLeft, viewRight) {
		out = append(out, cmd)
	}
	return out
}

// Render hands every visible candle to r and returns the number drawn. It
// stops at the first backend error.
func (v *Viewport) Render(r Renderer, viewLeft, viewRight float64) (int, error) {
	drawn := 0
	for i, cmd := range v.Visible(viewLeft, viewRight) {
		if err := r.DrawCandle(cmd); err != nil {
			return drawn, fmt.Errorf("draw candle %d: %w", i, err)
		}
		drawn++
	}
	return drawn, nil
}
