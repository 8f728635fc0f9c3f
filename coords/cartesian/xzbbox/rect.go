// Copyright (c) 2025, The Arnis Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xzbbox

import (
	"fmt"
	"iter"
	"math"
	"math/bits"

	"github.com/arnisgo/arnis/coords/cartesian"
)

// Rect is an axis-aligned rectangle of blocks on the XZ plane, defined by
// the block with minimum coordinates and the block with maximum coordinates.
// Both corners are inside the rectangle. The zero value is the single block
// at the origin.
type Rect struct {
	min cartesian.XZPoint
	max cartesian.XZPoint
}

// NewRect returns the rectangle spanning min to max inclusive.
// It returns an error wrapping [ErrInvalidBounds] if min is greater
// than max on either axis.
func NewRect(min, max cartesian.XZPoint) (Rect, error) {
	if min.X > max.X || min.Z > max.Z {
		return Rect{}, fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidBounds, min, max)
	}
	return Rect{min: min, max: max}, nil
}

// Min returns the corner with minimum coordinates.
func (r Rect) Min() cartesian.XZPoint {
	return r.min
}

// Max returns the corner with maximum coordinates.
func (r Rect) Max() cartesian.XZPoint {
	return r.max
}

// Contains returns whether the given block is inside this rectangle.
func (r Rect) Contains(p cartesian.XZPoint) bool {
	return p.X >= r.min.X && p.X <= r.max.X &&
		p.Z >= r.min.Z && p.Z <= r.max.Z
}

// TotalBlocksX returns the number of blocks along the x axis.
func (r Rect) TotalBlocksX() int64 {
	return int64(r.max.X) - int64(r.min.X) + 1
}

// TotalBlocksZ returns the number of blocks along the z axis.
func (r Rect) TotalBlocksZ() int64 {
	return int64(r.max.Z) - int64(r.min.Z) + 1
}

// TotalBlocks returns the number of blocks covered by this rectangle.
// Any box made by [RectFromXZLengths] has at most 2^62 blocks. Rectangles
// spanning more than math.MaxInt64 blocks, which needs both sides to be
// longer than 2^31 blocks, report math.MaxInt64 instead of wrapping around.
func (r Rect) TotalBlocks() int64 {
	hi, lo := bits.Mul64(uint64(r.TotalBlocksX()), uint64(r.TotalBlocksZ()))
	if hi != 0 || lo > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(lo)
}

// Add returns this rectangle translated by the given vector.
func (r Rect) Add(v cartesian.XZVector) Rect {
	return Rect{min: r.min.Add(v), max: r.max.Add(v)}
}

// Sub returns this rectangle translated by the negation of the given vector.
func (r Rect) Sub(v cartesian.XZVector) Rect {
	return Rect{min: r.min.Sub(v), max: r.max.Sub(v)}
}

// SetAdd translates this rectangle by the given vector (i.e., += or plus-equals).
func (r *Rect) SetAdd(v cartesian.XZVector) {
	r.min.SetAdd(v)
	r.max.SetAdd(v)
}

// SetSub translates this rectangle by the negation of the given vector
// (i.e., -= or minus-equals).
func (r *Rect) SetSub(v cartesian.XZVector) {
	r.min.SetSub(v)
	r.max.SetSub(v)
}

// Points returns a sequence of every block in this rectangle, with x
// in the outer loop and z in the inner loop, both ascending.
// The sequence is lazy and can be ranged over any number of times.
func (r Rect) Points() iter.Seq[cartesian.XZPoint] {
	return points(int64(r.min.X), int64(r.max.X), int64(r.min.Z), int64(r.max.Z))
}

// points ranges over [minX, maxX] x [minZ, maxZ]. The counters are int64
// so that a bound of math.MaxInt32 does not wrap around.
func points(minX, maxX, minZ, maxZ int64) iter.Seq[cartesian.XZPoint] {
	return func(yield func(cartesian.XZPoint) bool) {
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				if !yield(cartesian.XZ(int32(x), int32(z))) {
					return
				}
			}
		}
	}
}

// String returns the rectangle as "Rect{min: (x, z), max: (x, z)}".
func (r Rect) String() string {
	return fmt.Sprintf("Rect{min: %v, max: %v}", r.min, r.max)
}
