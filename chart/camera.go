package chart

const (
	zoomInFactor  = 0.9
	zoomOutFactor = 1.1
)

// Camera tracks pan and zoom for a chart window and turns it into the view
// bounds a Viewport consumes. It knows nothing about input devices.
type Camera struct {
	CenterX float64 `json:"center_x" yaml:"center_x"`
	CenterY float64 `json:"center_y" yaml:"center_y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`

	baseWidth  float64
	baseHeight float64
}

// NewCamera returns a camera showing the rectangle (0, -height, width,
// height): price zero sits on the bottom edge and the first candle on the
// left edge.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		CenterX:    width / 2,
		CenterY:    -height / 2,
		Width:      width,
		Height:     height,
		baseWidth:  width,
		baseHeight: height,
	}
}

// ZoomLevel is the current view size relative to the base window size.
func (c *Camera) ZoomLevel() (x, y float64) {
	if c.baseWidth == 0 || c.baseHeight == 0 {
		return 1, 1
	}
	return c.Width / c.baseWidth, c.Height / c.baseHeight
}

// Zoom shrinks the view by 10% when in is true, otherwise grows it by 10%.
// The centre stays put.
func (c *Camera) Zoom(in bool) {
	f := zoomOutFactor
	if in {
		f = zoomInFactor
	}
	c.Width *= f
	c.Height *= f
}

// Pan moves the view by a screen-pixel delta, scaled by the zoom level so a
// drag covers the same on-screen distance at any zoom.
func (c *Camera) Pan(dx, dy float64) {
	zx, zy := c.ZoomLevel()
	c.CenterX += dx * zx
	c.CenterY += dy * zy
}

// Drag pans by the movement of a grab point from (fromX, fromY) to (toX, toY).
// The content follows the pointer, so the view moves the opposite way.
func (c *Camera) Drag(fromX, fromY, toX, toY float64) {
	c.Pan(fromX-toX, fromY-toY)
}

// Bounds returns the left and right edges of the view.
func (c *Camera) Bounds() (left, right float64) {
	return c.CenterX - c.Width/2, c.CenterX + c.Width/2
}
