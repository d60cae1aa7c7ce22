package chart

import (
	"testing"

	"github.com/rustyeddy/tradecharts/market"
	"github.com/stretchr/testify/assert"
)

func TestNewCamera(t *testing.T) {
	t.Parallel()

	c := NewCamera(1200, 900)
	left, right := c.Bounds()
	assert.Equal(t, 0.0, left)
	assert.Equal(t, 1200.0, right)
	assert.Equal(t, -450.0, c.CenterY)

	zx, zy := c.ZoomLevel()
	assert.Equal(t, 1.0, zx)
	assert.Equal(t, 1.0, zy)
}

func TestCamera_Zoom(t *testing.T) {
	t.Parallel()

	c := NewCamera(1200, 900)
	c.Zoom(true)
	left, right := c.Bounds()
	assert.InDelta(t, 60.0, left, 1e-9)
	assert.InDelta(t, 1140.0, right, 1e-9)

	c.Zoom(false)
	zx, zy := c.ZoomLevel()
	assert.InDelta(t, 0.99, zx, 1e-9)
	assert.InDelta(t, 0.99, zy, 1e-9)
}

func TestCamera_PanScalesWithZoom(t *testing.T) {
	t.Parallel()

	c := NewCamera(1200, 900)
	c.Pan(100, 0)
	left, right := c.Bounds()
	assert.Equal(t, 100.0, left)
	assert.Equal(t, 1300.0, right)

	c = NewCamera(1200, 900)
	c.Zoom(true)
	c.Pan(100, -10)
	left, _ = c.Bounds()
	assert.InDelta(t, 150.0, left, 1e-9)
	assert.InDelta(t, -459.0, c.CenterY, 1e-9)
}

func TestCamera_Drag(t *testing.T) {
	t.Parallel()

	c := NewCamera(1200, 900)
	// pulling the content right reveals what is left of the origin
	c.Drag(500, 300, 800, 300)
	left, right := c.Bounds()
	assert.Equal(t, -300.0, left)
	assert.Equal(t, 900.0, right)
}

func TestCamera_DrivesViewport(t *testing.T) {
	t.Parallel()

	v := sampleViewport()
	c := NewCamera(1200, 900)
	c.Drag(0, 0, 1000, 0)

	left, right := c.Bounds()
	r := v.VisibleRange(left, right)
	assert.Equal(t, 0, r.Start)
	assert.Equal(t, 16, r.End)

	for range 30 {
		c.Zoom(false)
	}
	left, right = c.Bounds()
	assert.Equal(t, 50, v.VisibleRange(left, right).Len())

	empty := NewViewport(market.NewSeries(), 1200, 900)
	assert.True(t, empty.VisibleRange(left, right).Empty())
}
