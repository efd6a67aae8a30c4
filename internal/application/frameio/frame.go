// Package frameio is the boundary between the simulation and whatever
// presents it: an input Source feeds InputState in, and a Frame carries a
// framework-free draw list out.
package frameio

import (
	"image/color"

	"github.com/younwookim/fluxrunner/internal/application/system"
	"github.com/younwookim/fluxrunner/internal/domain/geom"
)

// Source yields one InputState per tick
type Source interface {
	Poll() system.InputState
}

// SourceFunc adapts a function to Source
type SourceFunc func() system.InputState

// Poll implements Source
func (f SourceFunc) Poll() system.InputState {
	return f()
}

// Sink presents a finished frame
type Sink interface {
	Present(f *Frame)
}

// DrawKind selects how a DrawCommand is rendered
type DrawKind uint8

const (
	KindFillRect DrawKind = iota
	KindStrokeRect
	KindLine
	KindText
)

// String implements fmt.Stringer
func (k DrawKind) String() string {
	switch k {
	case KindFillRect:
		return "fill"
	case KindStrokeRect:
		return "stroke"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawCommand is one primitive. Rects and lines are in world space unless
// Screen is set; text is always placed in screen space.
type DrawCommand struct {
	Kind   DrawKind
	Rect   geom.BoundingBox
	From   geom.Vector2
	To     geom.Vector2
	Text   string
	Color  color.RGBA
	Width  float32
	Screen bool
}

// Frame is an ordered draw list plus the camera it is viewed through
type Frame struct {
	Width      int
	Height     int
	Camera     geom.Vector2 // world position of the viewport's top-left
	Background color.RGBA
	Commands   []DrawCommand
}

// NewFrame creates an empty frame of the given screen size
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height}
}

// Reset clears the draw list and keeps its capacity
func (f *Frame) Reset() {
	f.Commands = f.Commands[:0]
	f.Camera = geom.Zero()
}

// FillRect queues a filled world-space rectangle
func (f *Frame) FillRect(box geom.BoundingBox, c color.RGBA) {
	f.Commands = append(f.Commands, DrawCommand{Kind: KindFillRect, Rect: box, Color: c})
}

// StrokeRect queues a rectangle outline in world space
func (f *Frame) StrokeRect(box geom.BoundingBox, c color.RGBA, width float32) {
	f.Commands = append(f.Commands, DrawCommand{Kind: KindStrokeRect, Rect: box, Color: c, Width: width})
}

// Line queues a world-space line segment
func (f *Frame) Line(from, to geom.Vector2, c color.RGBA, width float32) {
	f.Commands = append(f.Commands, DrawCommand{Kind: KindLine, From: from, To: to, Color: c, Width: width})
}

// Overlay queues a filled screen-space rectangle
func (f *Frame) Overlay(box geom.BoundingBox, c color.RGBA) {
	f.Commands = append(f.Commands, DrawCommand{Kind: KindFillRect, Rect: box, Color: c, Screen: true})
}

// Text queues debug text at a screen position
func (f *Frame) Text(at geom.Vector2, s string) {
	f.Commands = append(f.Commands, DrawCommand{Kind: KindText, From: at, Text: s, Screen: true})
}

// ToScreen converts a world position to screen space
func (f *Frame) ToScreen(p geom.Vector2) geom.Vector2 {
	return p.Sub(f.Camera)
}

// ScreenRect returns the command's rect in screen space
func (f *Frame) ScreenRect(cmd DrawCommand) geom.BoundingBox {
	if cmd.Screen {
		return cmd.Rect
	}
	return cmd.Rect.Translate(f.Camera.Scale(-1))
}

// Visible reports whether a world-space box overlaps the viewport
func (f *Frame) Visible(box geom.BoundingBox) bool {
	view := geom.BoundingBox{
		Top:    f.Camera.Y,
		Left:   f.Camera.X,
		Bottom: f.Camera.Y + float32(f.Height),
		Right:  f.Camera.X + float32(f.Width),
	}
	return view.Intersects(box)
}

// ScreenBox returns the full screen as a screen-space box
func (f *Frame) ScreenBox() geom.BoundingBox {
	return geom.BoundingBox{Right: float32(f.Width), Bottom: float32(f.Height)}
}
