// Copyright (c) 2025, The Arnis Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cartesian

import "fmt"

// XZVector is a displacement on the XZ plane with int32 components.
type XZVector struct {
	DX int32
	DZ int32
}

// Vec returns a new [XZVector] with the given x and z deltas.
func Vec(dx, dz int32) XZVector {
	return XZVector{DX: dx, DZ: dz}
}

// Add adds other vector to this one and returns result in a new vector.
func (v XZVector) Add(other XZVector) XZVector {
	return XZVector{v.DX + other.DX, v.DZ + other.DZ}
}

// Sub subtracts other vector from this one and returns result in new vector.
func (v XZVector) Sub(other XZVector) XZVector {
	return XZVector{v.DX - other.DX, v.DZ - other.DZ}
}

// Negate returns vector with each component negated.
func (v XZVector) Negate() XZVector {
	return XZVector{-v.DX, -v.DZ}
}

// IsZero returns whether both deltas are zero.
func (v XZVector) IsZero() bool {
	return v.DX == 0 && v.DZ == 0
}

// String returns the vector as "<dx, dz>".
func (v XZVector) String() string {
	return fmt.Sprintf("<%d, %d>", v.DX, v.DZ)
}
