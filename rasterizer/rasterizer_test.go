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

package rasterizer_test

import (
	"slices"
	"testing"

	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/rasterizer"
	"github.com/jetsetilly/gputrace/surface"
	"github.com/jetsetilly/gputrace/test"
)

func tri(x1, y1, x2, y2, x3, y3 int) rasterizer.Triangle {
	return rasterizer.Triangle{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}
}

func TestQuad(t *testing.T) {
	tris := slices.Collect(rasterizer.Quad(10, 20, 30, 40))
	test.DemandEquality(t, len(tris), 2)
	test.ExpectEquality(t, tris[0], tri(10, 20, 40, 20, 40, 60))
	test.ExpectEquality(t, tris[1], tri(40, 60, 10, 60, 10, 20))
}

func TestDegenerateLine(t *testing.T) {
	tris := slices.Collect(rasterizer.Line(5, 5, 5, 5))
	test.DemandEquality(t, len(tris), 2)
	test.ExpectEquality(t, tris[0], tri(5, 5, 6, 5, 6, 6))
	test.ExpectEquality(t, tris[1], tri(6, 6, 5, 6, 5, 5))
}

func TestXMajorLine(t *testing.T) {
	tris := slices.Collect(rasterizer.Line(0, 0, 4, 1))
	test.DemandEquality(t, len(tris), 2)

	// the end point is extended by one pixel and the line is one pixel tall
	test.ExpectEquality(t, tris[0], tri(0, 0, 5, 1, 5, 2))
	test.ExpectEquality(t, tris[1], tri(5, 2, 0, 1, 0, 0))

	// right to left moves the start point instead
	tris = slices.Collect(rasterizer.Line(4, 1, 0, 0))
	test.ExpectEquality(t, tris[0], tri(5, 1, 0, 0, 0, 1))
	test.ExpectEquality(t, tris[1], tri(0, 1, 5, 2, 5, 1))
}

func TestYMajorLine(t *testing.T) {
	tris := slices.Collect(rasterizer.Line(2, 2, 3, 8))
	test.DemandEquality(t, len(tris), 2)
	test.ExpectEquality(t, tris[0], tri(2, 2, 3, 9, 4, 9))
	test.ExpectEquality(t, tris[1], tri(4, 9, 3, 2, 2, 2))

	// equal deltas are treated as y-major
	tris = slices.Collect(rasterizer.Line(0, 0, 3, 3))
	test.ExpectEquality(t, tris[0], tri(0, 0, 3, 4, 4, 4))
}

func TestRestartable(t *testing.T) {
	seq := rasterizer.Line(0, 0, 4, 1)
	a := slices.Collect(seq)
	b := slices.Collect(seq)
	test.ExpectEquality(t, slices.Equal(a, b), true)

	// stopping early is allowed
	n := 0
	for range seq {
		n++
		break
	}
	test.ExpectEquality(t, n, 1)
}

func TestCoveragePolicy(t *testing.T) {
	fill := gpu.NewCommand(gpu.FastFill{X: 16, Y: 32, W: 16, H: 2}, nil)
	test.ExpectEquality(t, len(slices.Collect(rasterizer.Coverage(fill, rasterizer.Write))), 2)
	test.ExpectEquality(t, len(slices.Collect(rasterizer.Coverage(fill, rasterizer.Read))), 0)

	upload := gpu.NewCommand(gpu.BlitRamVram{X: 0, Y: 0, W: 4, H: 4}, nil)
	test.ExpectEquality(t, len(slices.Collect(rasterizer.Coverage(upload, rasterizer.Write))), 2)
	test.ExpectEquality(t, len(slices.Collect(rasterizer.Coverage(upload, rasterizer.Read))), 0)

	download := gpu.NewCommand(gpu.BlitVramRam{X: 0, Y: 0, W: 4, H: 4}, nil)
	test.ExpectEquality(t, len(slices.Collect(rasterizer.Coverage(download, rasterizer.Write))), 0)
	test.ExpectEquality(t, len(slices.Collect(rasterizer.Coverage(download, rasterizer.Read))), 2)

	blit := gpu.NewCommand(gpu.BlitVramVram{SX: 1, SY: 2, DX: 3, DY: 4, W: 5, H: 6}, nil)
	rd := slices.Collect(rasterizer.Coverage(blit, rasterizer.Read))
	wr := slices.Collect(rasterizer.Coverage(blit, rasterizer.Write))
	test.DemandEquality(t, len(rd), 2)
	test.DemandEquality(t, len(wr), 2)
	test.ExpectEquality(t, rd[0], tri(1, 2, 6, 2, 6, 8))
	test.ExpectEquality(t, wr[0], tri(3, 4, 8, 4, 8, 10))

	for _, d := range []gpu.Detail{gpu.ClearCache{}, gpu.TexturePage{}, gpu.CtrlReset{}, gpu.CtrlDisplayMode{}} {
		cmd := gpu.NewCommand(d, nil)
		test.ExpectEquality(t, len(slices.Collect(rasterizer.Coverage(cmd, rasterizer.Write))), 0, d.Name())
		test.ExpectEquality(t, len(slices.Collect(rasterizer.Coverage(cmd, rasterizer.Read))), 0, d.Name())
	}

	test.ExpectEquality(t, len(slices.Collect(rasterizer.Coverage(nil, rasterizer.Write))), 0)
}

type recorder struct {
	begins    int
	ends      int
	triangles int
}

func (r *recorder) Begin() { r.begins++ }
func (r *recorder) Triangle(_, _, _ surface.Point) { r.triangles++ }
func (r *recorder) End() { r.ends++ }
func (r *recorder) Clear() {}
func (r *recorder) Size() (int, int) { return gpu.VRAMWidth, gpu.VRAMHeight }

func TestDraw(t *testing.T) {
	var r recorder
	fill := gpu.NewCommand(gpu.FastFill{W: 16, H: 1}, nil)

	rasterizer.Draw(&r, fill, rasterizer.Write)
	test.ExpectEquality(t, r.begins, 1)
	test.ExpectEquality(t, r.ends, 1)
	test.ExpectEquality(t, r.triangles, 2)

	// no coverage means the surface is not touched
	rasterizer.Draw(&r, fill, rasterizer.Read)
	test.ExpectEquality(t, r.begins, 1)
	test.ExpectEquality(t, r.ends, 1)
	test.ExpectEquality(t, r.triangles, 2)
}
