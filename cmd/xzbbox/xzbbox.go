// Copyright (c) 2025, The Arnis Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xzbbox builds the bounding box of a world from its x and z
// lengths in blocks, and inspects it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/cli"
	"github.com/arnisgo/arnis/coords/cartesian"
	"github.com/arnisgo/arnis/coords/cartesian/xzbbox"
)

// Config is the configuration information for the xzbbox cli.
type Config struct {

	// LengthX is the length of the world along x, in blocks.
	LengthX float64 `posarg:"0"`

	// LengthZ is the length of the world along z, in blocks.
	LengthZ float64 `posarg:"1"`

	// DX is the x offset the box is translated by before use.
	DX int32 `flag:"dx"`

	// DZ is the z offset the box is translated by before use.
	DZ int32 `flag:"dz"`

	// X is the x coordinate of the block to test.
	X int32 `cmd:"contains" flag:"x"`

	// Z is the z coordinate of the block to test.
	Z int32 `cmd:"contains" flag:"z"`

	// Limit is the maximum number of blocks printed by points.
	// 0 prints every block.
	Limit int `cmd:"points" default:"64"`
}

// stdout is where command results are written.
var stdout io.Writer = os.Stdout

func main() {
	opts := cli.DefaultOptions("xzbbox", "Xzbbox builds the bounding box of a world from its x and z lengths and inspects it.")
	opts.DefaultFiles = []string{"xzbbox.toml"}
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Info, Name: "info", Doc: "Info prints the box, its bounds and its block counts.", Root: true},
		&cli.Cmd[*Config]{Func: Points, Name: "points", Doc: "Points prints the blocks covered by the box."},
		&cli.Cmd[*Config]{Func: Contains, Name: "contains", Doc: "Contains reports whether the box covers the given block."},
	)
}

// Box returns the box for the configured lengths, translated by the
// configured offset.
func (c *Config) Box() (xzbbox.BBox, error) {
	b, err := xzbbox.RectFromXZLengths(c.LengthX, c.LengthZ)
	if err != nil {
		return b, err
	}
	if off := cartesian.Vec(c.DX, c.DZ); !off.IsZero() {
		b.SetAdd(off)
		slog.Debug("translated box", "offset", off, "box", b)
	}
	return b, nil
}

// Info prints the box, its bounds and its block counts.
func Info(c *Config) error {
	b, err := c.Box()
	if err != nil {
		return err
	}
	r := b.BoundingRect()
	fmt.Fprintln(stdout, b)
	fmt.Fprintf(stdout, "x: %d to %d (%d blocks)\n", b.MinX(), b.MaxX(), r.TotalBlocksX())
	fmt.Fprintf(stdout, "z: %d to %d (%d blocks)\n", b.MinZ(), b.MaxZ(), r.TotalBlocksZ())
	fmt.Fprintf(stdout, "total: %d blocks\n", r.TotalBlocks())
	return nil
}

// Points prints the blocks covered by the box, one per line,
// stopping after [Config.Limit] blocks if it is positive.
func Points(c *Config) error {
	b, err := c.Box()
	if err != nil {
		return err
	}
	n := 0
	for p := range b.Points() {
		if c.Limit > 0 && n == c.Limit {
			slog.Warn("xzbbox: stopped printing points at limit", "limit", c.Limit, "total", b.BoundingRect().TotalBlocks())
			break
		}
		fmt.Fprintln(stdout, p)
		n++
	}
	return nil
}

// Contains prints whether the box covers the block at [Config.X], [Config.Z].
func Contains(c *Config) error {
	b, err := c.Box()
	if err != nil {
		return err
	}
	p := cartesian.XZ(c.X, c.Z)
	fmt.Fprintf(stdout, "%v in %v: %t\n", p, b, b.Contains(p))
	return nil
}
