// Copyright (c) 2025, The Arnis Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xzbbox provides bounding boxes of blocks on the XZ plane,
// used to describe the extent of a generated world.
//
// A [BBox] has one of the [Shapes]. Every shape has a circumscribing
// [Rect], which drives the MinX, MaxX, MinZ, MaxZ accessors and point
// iteration. All types are plain values: copying a box copies its corners,
// and [BBox.Points] may be ranged over repeatedly without changing the box.
package xzbbox

import (
	"fmt"
	"iter"
	"math"

	"github.com/arnisgo/arnis/coords/cartesian"
)

// BBox is a bounding box of blocks on the XZ plane with one of the [Shapes].
// The zero value is a [Rectangle] box containing only the origin.
type BBox struct {
	shape Shapes

	// rect is the payload of a [Rectangle] box.
	rect Rect
}

// FromRect returns a [Rectangle] box covering the given rectangle.
func FromRect(r Rect) BBox {
	return BBox{shape: Rectangle, rect: r}
}

// RectFromXZLengths returns a [Rectangle] box for a world that is lengthX
// blocks long along x and lengthZ blocks long along z, starting at the origin.
// The lengths are truncated, and the box spans from (0, 0) to
// (int(lengthX), int(lengthZ)) inclusive, so it always has one more block
// than the integer part of the length along each axis.
//
// The lengths are checked in this order, and the first failure is returned:
// lengthX >= 0, lengthZ >= 0 (both wrapping [ErrNegativeLength]), then
// lengthX <= math.MaxInt32, lengthZ <= math.MaxInt32 (both wrapping
// [ErrLengthOverflow]). NaN lengths are reported as negative.
func RectFromXZLengths(lengthX, lengthZ float64) (BBox, error) {
	if !(lengthX >= 0) {
		return BBox{}, fmt.Errorf("%w: length x must be non-negative, but got %v", ErrNegativeLength, lengthX)
	}
	if !(lengthZ >= 0) {
		return BBox{}, fmt.Errorf("%w: length z must be non-negative, but got %v", ErrNegativeLength, lengthZ)
	}
	if lengthX > math.MaxInt32 {
		return BBox{}, fmt.Errorf("%w: length x is too large: %v", ErrLengthOverflow, lengthX)
	}
	if lengthZ > math.MaxInt32 {
		return BBox{}, fmt.Errorf("%w: length z is too large: %v", ErrLengthOverflow, lengthZ)
	}
	r, err := NewRect(cartesian.XZ(0, 0), cartesian.XZ(int32(lengthX), int32(lengthZ)))
	if err != nil {
		return BBox{}, err
	}
	return FromRect(r), nil
}

// Shape returns the shape of this box.
func (b BBox) Shape() Shapes {
	return b.shape
}

// Contains returns whether the given block is covered by this box.
func (b BBox) Contains(p cartesian.XZPoint) bool {
	switch b.shape {
	case Rectangle:
		return b.rect.Contains(p)
	default:
		panic("xzbbox: unknown shape: " + b.shape.String())
	}
}

// BoundingRect returns the smallest rectangle that covers this box.
// For a [Rectangle] box that is the rectangle itself.
func (b BBox) BoundingRect() Rect {
	switch b.shape {
	case Rectangle:
		return b.rect
	default:
		panic("xzbbox: unknown shape: " + b.shape.String())
	}
}

// MinX returns the minimum x of all covered blocks.
func (b BBox) MinX() int32 {
	return b.BoundingRect().Min().X
}

// MaxX returns the maximum x of all covered blocks.
func (b BBox) MaxX() int32 {
	return b.BoundingRect().Max().X
}

// MinZ returns the minimum z of all covered blocks.
func (b BBox) MinZ() int32 {
	return b.BoundingRect().Min().Z
}

// MaxZ returns the maximum z of all covered blocks.
func (b BBox) MaxZ() int32 {
	return b.BoundingRect().Max().Z
}

// Add returns this box translated by the given vector.
// The shape of the box is preserved.
func (b BBox) Add(v cartesian.XZVector) BBox {
	b.SetAdd(v)
	return b
}

// Sub returns this box translated by the negation of the given vector.
// The shape of the box is preserved.
func (b BBox) Sub(v cartesian.XZVector) BBox {
	b.SetSub(v)
	return b
}

// SetAdd translates this box by the given vector (i.e., += or plus-equals).
func (b *BBox) SetAdd(v cartesian.XZVector) {
	switch b.shape {
	case Rectangle:
		b.rect.SetAdd(v)
	default:
		panic("xzbbox: unknown shape: " + b.shape.String())
	}
}

// SetSub translates this box by the negation of the given vector
// (i.e., -= or minus-equals).
func (b *BBox) SetSub(v cartesian.XZVector) {
	switch b.shape {
	case Rectangle:
		b.rect.SetSub(v)
	default:
		panic("xzbbox: unknown shape: " + b.shape.String())
	}
}

// Points returns a sequence of every block in [MinX, MaxX] x [MinZ, MaxZ],
// with x in the outer loop and z in the inner loop, both ascending.
// The bounds are captured when Points is called, so translating the box
// afterwards does not affect the sequence. The sequence is lazy and can be
// ranged over any number of times.
func (b BBox) Points() iter.Seq[cartesian.XZPoint] {
	return b.BoundingRect().Points()
}

// String returns the shape of this box followed by its payload,
// for example "Rectangle Rect{min: (0, 0), max: (1, 1)}".
func (b BBox) String() string {
	switch b.shape {
	case Rectangle:
		return b.shape.String() + " " + b.rect.String()
	default:
		panic("xzbbox: unknown shape: " + b.shape.String())
	}
}
