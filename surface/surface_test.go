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

package surface_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/jetsetilly/gputrace/surface"
	"github.com/jetsetilly/gputrace/test"
)

func rect(s surface.Surface, x, y, w, h int) {
	s.Begin()
	s.Triangle(surface.Point{X: x, Y: y}, surface.Point{X: x + w, Y: y}, surface.Point{X: x + w, Y: y + h})
	s.Triangle(surface.Point{X: x + w, Y: y + h}, surface.Point{X: x, Y: y + h}, surface.Point{X: x, Y: y})
	s.End()
}

func sum(acc *surface.Accumulator) float64 {
	w, h := acc.Size()
	var s float64
	for y := range h {
		for x := range w {
			s += float64(acc.At(x, y))
		}
	}
	return s
}

func TestAccumulatorRect(t *testing.T) {
	acc := surface.NewAccumulator("test", 64, 64)
	rect(acc, 16, 32, 16, 2)

	test.ExpectApproximate(t, acc.At(16, 32), 1.0, 0.01)
	test.ExpectApproximate(t, acc.At(31, 33), 1.0, 0.01)
	test.ExpectApproximate(t, acc.At(24, 33), 1.0, 0.01)
	test.ExpectEquality(t, acc.At(15, 32), 0.0)
	test.ExpectEquality(t, acc.At(32, 32), 0.0)
	test.ExpectEquality(t, acc.At(16, 34), 0.0)
	test.ExpectApproximate(t, sum(acc), 32.0, 0.2)

	// coverage accumulates
	rect(acc, 16, 32, 16, 2)
	test.ExpectApproximate(t, acc.At(20, 32), 2.0, 0.02)
	test.ExpectApproximate(t, acc.Max(), 2.0, 0.02)

	acc.Clear()
	test.ExpectEquality(t, acc.Max(), 0.0)
}

func TestAccumulatorBatch(t *testing.T) {
	acc := surface.NewAccumulator("test", 16, 16)

	// two overlapping rectangles in the same batch are counted once
	acc.Begin()
	acc.Triangle(surface.Point{X: 0, Y: 0}, surface.Point{X: 4, Y: 0}, surface.Point{X: 4, Y: 4})
	acc.Triangle(surface.Point{X: 4, Y: 4}, surface.Point{X: 0, Y: 4}, surface.Point{X: 0, Y: 0})
	acc.Triangle(surface.Point{X: 0, Y: 0}, surface.Point{X: 4, Y: 0}, surface.Point{X: 4, Y: 4})
	acc.Triangle(surface.Point{X: 4, Y: 4}, surface.Point{X: 0, Y: 4}, surface.Point{X: 0, Y: 0})
	acc.End()
	test.ExpectApproximate(t, acc.At(1, 2), 1.0, 0.01)

	// a triangle outside of a batch is drawn immediately
	acc.Clear()
	acc.Triangle(surface.Point{X: 0, Y: 0}, surface.Point{X: 4, Y: 0}, surface.Point{X: 4, Y: 4})
	test.ExpectApproximate(t, acc.At(3, 0), 1.0, 0.01)
	test.ExpectEquality(t, acc.At(0, 3), 0.0)
}

func TestAccumulatorClipping(t *testing.T) {
	acc := surface.NewAccumulator("test", 16, 16)
	rect(acc, 12, 12, 8, 8)
	test.ExpectApproximate(t, acc.At(15, 15), 1.0, 0.01)
	test.ExpectApproximate(t, sum(acc), 16.0, 0.1)
	test.ExpectEquality(t, acc.At(16, 16), 0.0)
}

func TestAccumulatorLine(t *testing.T) {
	acc := surface.NewAccumulator("test", 16, 16)

	// parallelogram of (0,0), (5,1), (5,2), (0,1)
	acc.Begin()
	acc.Triangle(surface.Point{X: 0, Y: 0}, surface.Point{X: 5, Y: 1}, surface.Point{X: 5, Y: 2})
	acc.Triangle(surface.Point{X: 5, Y: 2}, surface.Point{X: 0, Y: 1}, surface.Point{X: 0, Y: 0})
	acc.End()
	test.ExpectApproximate(t, sum(acc), 5.0, 0.1)
}

func TestImage(t *testing.T) {
	acc := surface.NewAccumulator("test", 64, 64)
	img := acc.Image()
	test.ExpectEquality(t, img.GrayAt(0, 0).Y, uint8(0))

	rect(acc, 0, 0, 8, 8)
	rect(acc, 0, 0, 4, 4)
	img = acc.Image()
	test.ExpectEquality(t, img.GrayAt(3, 0).Y, uint8(255))
	test.ExpectApproximate(t, float64(img.GrayAt(7, 4).Y), 127, 1)
	test.ExpectEquality(t, img.GrayAt(9, 9).Y, uint8(0))
}

func TestWritePNG(t *testing.T) {
	acc := surface.NewAccumulator("test", 32, 16)
	rect(acc, 0, 0, 8, 8)

	var b bytes.Buffer
	test.DemandSuccess(t, acc.WritePNG(&b, 2))
	img, err := png.Decode(&b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 64)
	test.ExpectEquality(t, img.Bounds().Dy(), 32)

	test.ExpectFailure(t, acc.WritePNG(&b, 0))
}

func TestSoftwareFactory(t *testing.T) {
	s, err := surface.SoftwareFactory{}.NewSurface("written")
	test.DemandSuccess(t, err)
	w, h := s.Size()
	test.ExpectEquality(t, w, 1024)
	test.ExpectEquality(t, h, 512)
}
