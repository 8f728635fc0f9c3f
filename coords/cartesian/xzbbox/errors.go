// Copyright (c) 2025, The Arnis Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xzbbox

import "cogentcore.org/core/base/errors"

var (
	// ErrNegativeLength is wrapped by the error returned when a world
	// length is below zero (or NaN).
	ErrNegativeLength = errors.New("xzbbox: negative length")

	// ErrLengthOverflow is wrapped by the error returned when a world
	// length does not fit in an int32.
	ErrLengthOverflow = errors.New("xzbbox: length overflows int32")

	// ErrInvalidBounds is wrapped by the error returned when a minimum
	// corner exceeds the maximum corner on some axis.
	ErrInvalidBounds = errors.New("xzbbox: invalid bounds")
)
