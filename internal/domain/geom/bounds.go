package geom

import "fmt"

// Bounded is anything that can report an axis-aligned bounding box
type Bounded interface {
	Bound() BoundingBox
}

// BoundingBox is an axis-aligned rectangle in world units (y grows downward).
// Well-formed boxes have Left <= Right and Top <= Bottom; this is not enforced.
type BoundingBox struct {
	Top    float32 `json:"top" msgpack:"t"`
	Right  float32 `json:"right" msgpack:"r"`
	Bottom float32 `json:"bottom" msgpack:"b"`
	Left   float32 `json:"left" msgpack:"l"`
}

// CenteredBox builds the box of a width x height rectangle centered on c
func CenteredBox(c Vector2, width, height float32) BoundingBox {
	return BoundingBox{
		Top:    c.Y - height/2,
		Right:  c.X + width/2,
		Bottom: c.Y + height/2,
		Left:   c.X - width/2,
	}
}

// Translate returns the box moved by d
func (b BoundingBox) Translate(d Vector2) BoundingBox {
	return BoundingBox{
		Top:    b.Top + d.Y,
		Right:  b.Right + d.X,
		Bottom: b.Bottom + d.Y,
		Left:   b.Left + d.X,
	}
}

// Intersects reports whether the two boxes overlap with positive area.
// Boxes that only share an edge do not intersect.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return !(b.Left >= o.Right ||
		o.Left >= b.Right ||
		b.Bottom <= o.Top ||
		o.Bottom <= b.Top)
}

// Contains reports whether p lies strictly inside the box
func (b BoundingBox) Contains(p Vector2) bool {
	return b.ContainsX(p) && p.Y > b.Top && p.Y < b.Bottom
}

// ContainsX reports whether p lies strictly inside the horizontal extent,
// ignoring Y.
func (b BoundingBox) ContainsX(p Vector2) bool {
	return p.X > b.Left && p.X < b.Right
}

// Width returns Right - Left
func (b BoundingBox) Width() float32 {
	return b.Right - b.Left
}

// Height returns Bottom - Top
func (b BoundingBox) Height() float32 {
	return b.Bottom - b.Top
}

// Center returns the midpoint of the box
func (b BoundingBox) Center() Vector2 {
	return Vector2{
		X: b.Left + (b.Right-b.Left)/2,
		Y: b.Top + (b.Bottom-b.Top)/2,
	}
}

// Corners returns top-left, top-right, bottom-right, bottom-left
func (b BoundingBox) Corners() [4]Vector2 {
	return [4]Vector2{
		{X: b.Left, Y: b.Top},
		{X: b.Right, Y: b.Top},
		{X: b.Right, Y: b.Bottom},
		{X: b.Left, Y: b.Bottom},
	}
}

// Expand grows the box by m on every side
func (b BoundingBox) Expand(m float32) BoundingBox {
	return BoundingBox{
		Top:    b.Top - m,
		Right:  b.Right + m,
		Bottom: b.Bottom + m,
		Left:   b.Left - m,
	}
}

// String implements fmt.Stringer
func (b BoundingBox) String() string {
	return fmt.Sprintf("top: %g, right: %g, bottom: %g, left: %g", b.Top, b.Right, b.Bottom, b.Left)
}
