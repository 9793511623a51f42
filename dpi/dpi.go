// Copyright (c) 2026, The Wind Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dpi provides logical and physical pixel geometry and the
// scale-factor conversions between them. Backends report physical
// (device pixel) coordinates; applications usually reason in logical
// coordinates that are independent of the monitor's pixel density.
package dpi

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// ValidScaleFactor reports whether the given scale factor is usable:
// finite and strictly positive. Backends have been observed to report
// zero or NaN scale factors transiently during monitor changes.
func ValidScaleFactor(scale float32) bool {
	return scale > 0 && !math32.IsNaN(scale) && !math32.IsInf(scale, 0)
}

// Vector is a 2D float32 vector, used for scroll deltas and other
// sub-pixel quantities.
type Vector struct {
	X float32
	Y float32
}

// Vec returns a new [Vector] with the given components.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of the two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y}
}

// MulScalar returns the vector scaled by s.
func (v Vector) MulScalar(s float32) Vector {
	return Vector{v.X * s, v.Y * s}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// PhysicalPosition is a position in physical (device) pixels.
type PhysicalPosition struct {
	X int
	Y int
}

// PhysicalPos returns a new [PhysicalPosition].
func PhysicalPos(x, y int) PhysicalPosition {
	return PhysicalPosition{X: x, Y: y}
}

// Point returns the position as an [image.Point].
func (p PhysicalPosition) Point() image.Point {
	return image.Pt(p.X, p.Y)
}

// ToLogical converts to a [LogicalPosition] using the given scale factor.
func (p PhysicalPosition) ToLogical(scale float32) LogicalPosition {
	return LogicalPosition{X: float32(p.X) / scale, Y: float32(p.Y) / scale}
}

func (p PhysicalPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// LogicalPosition is a position in scale-independent logical pixels.
type LogicalPosition struct {
	X float32
	Y float32
}

// ToPhysical converts to a [PhysicalPosition] using the given scale
// factor, rounding to the nearest device pixel.
func (p LogicalPosition) ToPhysical(scale float32) PhysicalPosition {
	return PhysicalPosition{
		X: int(math32.Round(p.X * scale)),
		Y: int(math32.Round(p.Y * scale)),
	}
}

func (p LogicalPosition) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// PhysicalSize is a size in physical (device) pixels.
type PhysicalSize struct {
	W int
	H int
}

// PhysicalSz returns a new [PhysicalSize].
func PhysicalSz(w, h int) PhysicalSize {
	return PhysicalSize{W: w, H: h}
}

// Point returns the size as an [image.Point].
func (s PhysicalSize) Point() image.Point {
	return image.Pt(s.W, s.H)
}

// ToLogical converts to a [LogicalSize] using the given scale factor.
func (s PhysicalSize) ToLogical(scale float32) LogicalSize {
	return LogicalSize{W: float32(s.W) / scale, H: float32(s.H) / scale}
}

func (s PhysicalSize) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// LogicalSize is a size in scale-independent logical pixels.
type LogicalSize struct {
	W float32
	H float32
}

// ToPhysical converts to a [PhysicalSize] using the given scale factor,
// rounding to the nearest device pixel.
func (s LogicalSize) ToPhysical(scale float32) PhysicalSize {
	return PhysicalSize{
		W: int(math32.Round(s.W * scale)),
		H: int(math32.Round(s.H * scale)),
	}
}

func (s LogicalSize) String() string {
	return fmt.Sprintf("%gx%g", s.W, s.H)
}
