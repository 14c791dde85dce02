package systems

import (
	"floormaker/components"
)

// Camera is the top-left map cell of the viewport
type Camera struct {
	X, Y           int
	ViewportWidth  int // Viewport width in tiles
	ViewportHeight int // Viewport height in tiles
	mapWidth       int
	mapHeight      int
}

// NewCamera creates a camera for a viewport of the given size in tiles
func NewCamera(viewportWidth, viewportHeight int) *Camera {
	return &Camera{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
}

// SetMapSize sets the bounds the camera is clamped to
func (c *Camera) SetMapSize(width, height int) {
	c.mapWidth = width
	c.mapHeight = height
	c.clamp()
}

// Move scrolls the camera by (dx, dy) tiles
func (c *Camera) Move(dx, dy int) {
	c.X += dx
	c.Y += dy
	c.clamp()
}

// CenterOn centres the viewport on a map cell
func (c *Camera) CenterOn(p components.Point) {
	c.X = p.X - c.ViewportWidth/2
	c.Y = p.Y - c.ViewportHeight/2
	c.clamp()
}

// ScreenToMap converts a viewport tile position to a map cell
func (c *Camera) ScreenToMap(x, y int) components.Point {
	return components.Point{X: x + c.X, Y: y + c.Y}
}

// clamp keeps the viewport inside the map. Maps smaller than the viewport are pinned at 0.
func (c *Camera) clamp() {
	maxX := max(0, c.mapWidth-c.ViewportWidth)
	maxY := max(0, c.mapHeight-c.ViewportHeight)
	c.X = min(max(c.X, 0), maxX)
	c.Y = min(max(c.Y, 0), maxY)
}
