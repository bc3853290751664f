// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world units.
// World space is centered on the origin with +Y pointing up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// LenSq returns the squared Euclidean length.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box is an axis-aligned box described by its center and half extents.
type Box struct {
	Center Vec2
	Half   Vec2
}

// NewBox creates a box centered at c with the given half extents.
func NewBox(c Vec2, halfW, halfH float64) Box {
	return Box{Center: c, Half: Vec2{X: halfW, Y: halfH}}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// ClosestPoint returns the point inside the box nearest to p.
func (b Box) ClosestPoint(p Vec2) Vec2 {
	lo, hi := b.Min(), b.Max()
	return Vec2{
		X: ClampF(p.X, lo.X, hi.X),
		Y: ClampF(p.Y, lo.Y, hi.Y),
	}
}

// Circle is a bounding circle in world units.
type Circle struct {
	Center Vec2
	Radius float64
}

// EnclosingCircle returns the circle whose diameter is the diagonal of a
// w x h rectangle centered at c.
func EnclosingCircle(c Vec2, w, h float64) Circle {
	return Circle{Center: c, Radius: math.Hypot(w, h) / 2}
}

// IntersectsBox reports whether the circle overlaps the box.
// The circle center is clamped into the box and the squared distance to
// that point is compared against the squared radius. Touching counts.
func (c Circle) IntersectsBox(b Box) bool {
	d := c.Center.Sub(b.ClosestPoint(c.Center))
	return d.LenSq() <= c.Radius*c.Radius
}

// Viewport is the visible area in world units, centered on the origin.
type Viewport struct {
	W, H float64
}

// HalfW returns half the viewport width.
func (v Viewport) HalfW() float64 {
	return v.W / 2
}

// HalfH returns half the viewport height.
func (v Viewport) HalfH() float64 {
	return v.H / 2
}

// Floor returns the lowest playable y coordinate.
func (v Viewport) Floor() float64 {
	return -v.H / 2
}

// Rect is an integer cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
