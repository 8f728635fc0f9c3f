// Copyright (c) 2025, The Arnis Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cartesian

import "fmt"

// XZPoint is a block position on the XZ plane with int32 components.
type XZPoint struct {
	X int32
	Z int32
}

// XZ returns a new [XZPoint] with the given x and z components.
func XZ(x, z int32) XZPoint {
	return XZPoint{X: x, Z: z}
}

// Add returns this point moved by the given vector.
func (p XZPoint) Add(v XZVector) XZPoint {
	return XZPoint{p.X + v.DX, p.Z + v.DZ}
}

// Sub returns this point moved by the negation of the given vector.
func (p XZPoint) Sub(v XZVector) XZPoint {
	return XZPoint{p.X - v.DX, p.Z - v.DZ}
}

// SetAdd moves this point by the given vector (i.e., += or plus-equals).
func (p *XZPoint) SetAdd(v XZVector) {
	p.X += v.DX
	p.Z += v.DZ
}

// SetSub moves this point by the negation of the given vector
// (i.e., -= or minus-equals).
func (p *XZPoint) SetSub(v XZVector) {
	p.X -= v.DX
	p.Z -= v.DZ
}

// VectorTo returns the vector that moves this point onto other.
func (p XZPoint) VectorTo(other XZPoint) XZVector {
	return XZVector{other.X - p.X, other.Z - p.Z}
}

// String returns the point as "(x, z)".
func (p XZPoint) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Z)
}
