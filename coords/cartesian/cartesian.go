// Copyright (c) 2025, The Arnis Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cartesian provides integer points and vectors on the
// horizontal XZ plane of a block world.
package cartesian
