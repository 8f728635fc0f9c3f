// Copyright (c) 2025, The Arnis Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xzbbox

//go:generate core generate

// Shapes are the kinds of shape a [BBox] can have.
type Shapes int32 //enums:enum

const (
	// Rectangle is an axis-aligned rectangle of blocks, stored as a [Rect].
	Rectangle Shapes = iota
)
