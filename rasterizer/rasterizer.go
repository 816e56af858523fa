// This file is part of gputrace.
//
// gputrace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gputrace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gputrace.  If not, see <https://www.gnu.org/licenses/>.

package rasterizer

import (
	"iter"

	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/surface"
)

// Access is the kind of pixel access being rasterized.
type Access int

// List of valid Access values.
const (
	Read Access = iota
	Write
)

func (a Access) String() string {
	switch a {
	case Read:
		return "read"
	case Write:
		return "write"
	}
	return "unknown"
}

// Triangle is three points in VRAM pixel coordinates.
type Triangle [3]surface.Point

func tri(x1, y1, x2, y2, x3, y3 int) Triangle {
	return Triangle{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}
}

// Quad returns the two triangles covering the rectangle.
func Quad(x, y, w, h int) iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		if !yield(tri(x, y, x+w, y, x+w, y+h)) {
			return
		}
		yield(tri(x+w, y+h, x, y+h, x, y))
	}
}

// Line returns the two triangles covering a one pixel thick line between the
// two points. Coincident points produce a one pixel square.
func Line(x1, y1, x2, y2 int) iter.Seq[Triangle] {
	dx := x2 - x1
	dy := y2 - y1

	if dx == 0 && dy == 0 {
		return Quad(x1, y1, 1, 1)
	}

	var xOffset, yOffset int
	if abs(dx) > abs(dy) {
		// x-major
		yOffset = 1
		if dx > 0 {
			x2++
		} else {
			x1++
		}
	} else {
		// y-major
		xOffset = 1
		if dy > 0 {
			y2++
		} else {
			y1++
		}
	}

	return func(yield func(Triangle) bool) {
		if !yield(tri(x1, y1, x2, y2, x2+xOffset, y2+yOffset)) {
			return
		}
		yield(tri(x2+xOffset, y2+yOffset, x1+xOffset, y1+yOffset, x1, y1))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func none(func(Triangle) bool) {}

// Coverage returns the triangles covering the pixels accessed by the command
// for the access kind. Commands that do not access VRAM for the access kind
// return an empty sequence.
func Coverage(cmd *gpu.Command, access Access) iter.Seq[Triangle] {
	if cmd == nil {
		return none
	}

	switch d := cmd.Detail.(type) {
	case gpu.FastFill:
		if access == Write {
			return Quad(d.X, d.Y, d.W, d.H)
		}
	case gpu.BlitVramVram:
		switch access {
		case Read:
			return Quad(d.SX, d.SY, d.W, d.H)
		case Write:
			return Quad(d.DX, d.DY, d.W, d.H)
		}
	case gpu.BlitRamVram:
		if access == Write {
			return Quad(d.X, d.Y, d.W, d.H)
		}
	case gpu.BlitVramRam:
		if access == Read {
			return Quad(d.X, d.Y, d.W, d.H)
		}
	}

	return none
}

// Draw the coverage of the command to the surface as a single batch. Nothing
// is sent to the surface if the command has no coverage for the access kind.
func Draw(s surface.Surface, cmd *gpu.Command, access Access) {
	cov := Coverage(cmd, access)

	began := false
	for t := range cov {
		if !began {
			s.Begin()
			began = true
		}
		s.Triangle(t[0], t[1], t[2])
	}
	if began {
		s.End()
	}
}
