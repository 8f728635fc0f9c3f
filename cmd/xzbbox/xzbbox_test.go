// Copyright (c) 2025, The Arnis Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/arnisgo/arnis/coords/cartesian/xzbbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestInfo(t *testing.T) {
	buf := captureOutput(t)
	require.NoError(t, Info(&Config{LengthX: 123.4, LengthZ: 322.5}))
	want := "Rectangle Rect{min: (0, 0), max: (123, 322)}\n" +
		"x: 0 to 123 (124 blocks)\n" +
		"z: 0 to 322 (323 blocks)\n" +
		"total: 40052 blocks\n"
	assert.Equal(t, want, buf.String())
}

func TestInfoTranslated(t *testing.T) {
	buf := captureOutput(t)
	require.NoError(t, Info(&Config{LengthX: 1, LengthZ: 1, DX: -1, DZ: 5}))
	assert.Contains(t, buf.String(), "Rect{min: (-1, 5), max: (0, 6)}")
	assert.Contains(t, buf.String(), "total: 4 blocks")
}

func TestInfoError(t *testing.T) {
	buf := captureOutput(t)
	err := Info(&Config{LengthX: -1, LengthZ: 1})
	assert.ErrorIs(t, err, xzbbox.ErrNegativeLength)
	assert.Empty(t, buf.String())
}

func TestPoints(t *testing.T) {
	buf := captureOutput(t)
	require.NoError(t, Points(&Config{LengthX: 2, LengthZ: 1}))
	assert.Equal(t, "(0, 0)\n(0, 1)\n(1, 0)\n(1, 1)\n(2, 0)\n(2, 1)\n", buf.String())

	buf.Reset()
	require.NoError(t, Points(&Config{LengthX: 1000, LengthZ: 1000, Limit: 3}))
	assert.Equal(t, "(0, 0)\n(0, 1)\n(0, 2)\n", buf.String())
}

func TestContains(t *testing.T) {
	buf := captureOutput(t)
	require.NoError(t, Contains(&Config{LengthX: 4, LengthZ: 4, X: 4, Z: 0}))
	assert.Equal(t, "(4, 0) in Rectangle Rect{min: (0, 0), max: (4, 4)}: true\n", buf.String())

	buf.Reset()
	require.NoError(t, Contains(&Config{LengthX: 4, LengthZ: 4, DX: 1, X: 0, Z: 0}))
	assert.Equal(t, "(0, 0) in Rectangle Rect{min: (1, 0), max: (5, 4)}: false\n", buf.String())

	_, err := (&Config{LengthX: 0, LengthZ: 1e12}).Box()
	assert.ErrorIs(t, err, xzbbox.ErrLengthOverflow)
}
