// Copyright (c) 2025, The Arnis Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cartesian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXZPoint(t *testing.T) {
	assert.Equal(t, XZPoint{5, -10}, XZ(5, -10))

	p := XZ(3, 4)
	v := Vec(-1, 7)
	assert.Equal(t, XZ(2, 11), p.Add(v))
	assert.Equal(t, XZ(4, -3), p.Sub(v))
	assert.Equal(t, p, p.Add(v).Sub(v))
	assert.Equal(t, XZ(3, 4), p, "Add and Sub must not modify the receiver")

	p.SetAdd(v)
	assert.Equal(t, XZ(2, 11), p)
	p.SetSub(v)
	assert.Equal(t, XZ(3, 4), p)

	assert.Equal(t, Vec(7, -2), XZ(1, 2).VectorTo(XZ(8, 0)))
	assert.Equal(t, XZ(8, 0), XZ(1, 2).Add(XZ(1, 2).VectorTo(XZ(8, 0))))

	assert.Equal(t, "(3, 4)", p.String())
	assert.Equal(t, "(-2147483648, 2147483647)", XZ(math.MinInt32, math.MaxInt32).String())
}

func TestXZVector(t *testing.T) {
	assert.Equal(t, XZVector{2, 3}, Vec(2, 3))
	assert.Equal(t, Vec(3, 1), Vec(2, 3).Add(Vec(1, -2)))
	assert.Equal(t, Vec(1, 5), Vec(2, 3).Sub(Vec(1, -2)))
	assert.Equal(t, Vec(-2, 3), Vec(2, -3).Negate())
	assert.True(t, Vec(0, 0).IsZero())
	assert.True(t, Vec(4, 9).Add(Vec(4, 9).Negate()).IsZero())
	assert.False(t, Vec(0, 1).IsZero())
	assert.Equal(t, "<2, -3>", Vec(2, -3).String())
}
