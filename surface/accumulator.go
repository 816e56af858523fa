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

package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jetsetilly/gputrace/gpu"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Accumulator is a software Surface. Coverage is counted in a float32 per
// pixel.
type Accumulator struct {
	name   string
	width  int
	height int
	counts []float32

	// vertices of the triangles in the current batch
	batch  []Point
	active bool

	rast *vector.Rasterizer
	mask []uint8
}

// NewAccumulator is the preferred method of initialisation for the
// Accumulator type.
func NewAccumulator(name string, width, height int) *Accumulator {
	return &Accumulator{
		name:   name,
		width:  width,
		height: height,
		counts: make([]float32, width*height),
	}
}

func (acc *Accumulator) String() string {
	return acc.name
}

// Begin implements the Surface interface.
func (acc *Accumulator) Begin() {
	acc.batch = acc.batch[:0]
	acc.active = true
}

// Triangle implements the Surface interface. A triangle added outside of a
// Begin/End pair is a batch of its own.
func (acc *Accumulator) Triangle(a, b, c Point) {
	acc.batch = append(acc.batch, a, b, c)
	if !acc.active {
		acc.flush()
	}
}

// End implements the Surface interface.
func (acc *Accumulator) End() {
	acc.flush()
	acc.active = false
}

// Clear implements the Surface interface.
func (acc *Accumulator) Clear() {
	clear(acc.counts)
}

// Size implements the Surface interface.
func (acc *Accumulator) Size() (int, int) {
	return acc.width, acc.height
}

// rasterize the current batch into an alpha mask covering the bounding box of
// the batch and add the mask to the counts
func (acc *Accumulator) flush() {
	defer func() {
		acc.batch = acc.batch[:0]
	}()

	if len(acc.batch) < 3 {
		return
	}

	lo := acc.batch[0]
	hi := acc.batch[0]
	for _, p := range acc.batch[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	w := hi.X - lo.X
	h := hi.Y - lo.Y
	if w <= 0 || h <= 0 {
		return
	}

	if acc.rast == nil {
		acc.rast = vector.NewRasterizer(w, h)
	} else {
		acc.rast.Reset(w, h)
	}
	acc.rast.DrawOp = xdraw.Src

	for i := 0; i+2 < len(acc.batch); i += 3 {
		a, b, c := acc.batch[i], acc.batch[i+1], acc.batch[i+2]
		acc.rast.MoveTo(float32(a.X-lo.X), float32(a.Y-lo.Y))
		acc.rast.LineTo(float32(b.X-lo.X), float32(b.Y-lo.Y))
		acc.rast.LineTo(float32(c.X-lo.X), float32(c.Y-lo.Y))
		acc.rast.ClosePath()
	}

	if cap(acc.mask) < w*h {
		acc.mask = make([]uint8, w*h)
	}
	mask := &image.Alpha{
		Pix:    acc.mask[:w*h],
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
	acc.rast.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	for y := range h {
		sy := y + lo.Y
		if sy < 0 || sy >= acc.height {
			continue
		}
		for x := range w {
			sx := x + lo.X
			if sx < 0 || sx >= acc.width {
				continue
			}
			if a := mask.Pix[y*w+x]; a != 0 {
				acc.counts[sy*acc.width+sx] += float32(a) / 255
			}
		}
	}
}

// At returns the accumulated coverage for the pixel. Returns zero for
// coordinates outside the surface.
func (acc *Accumulator) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= acc.width || y >= acc.height {
		return 0
	}
	return acc.counts[y*acc.width+x]
}

// Max returns the largest accumulated coverage value.
func (acc *Accumulator) Max() float32 {
	var m float32
	for _, c := range acc.counts {
		m = max(m, c)
	}
	return m
}

// Image returns the accumulated coverage as a greyscale image, normalised so
// that the most covered pixel is white.
func (acc *Accumulator) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, acc.width, acc.height))
	m := acc.Max()
	if m == 0 {
		return img
	}
	for i, c := range acc.counts {
		img.Pix[i] = uint8(min(c/m, 1) * 255)
	}
	return img
}

// WritePNG writes the normalised image to w. The image is enlarged by the
// scale value, which must be at least one.
func (acc *Accumulator) WritePNG(w io.Writer, scale int) error {
	if scale < 1 {
		return fmt.Errorf("surface: illegal scale value (%d)", scale)
	}

	var img image.Image = acc.Image()
	if scale > 1 {
		scaled := image.NewGray(image.Rect(0, 0, acc.width*scale, acc.height*scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		img = scaled
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("surface: %w", err)
	}
	return nil
}

// SoftwareFactory creates Accumulator surfaces the size of VRAM. It never
// fails.
type SoftwareFactory struct{}

// NewSurface implements the Factory interface.
func (SoftwareFactory) NewSurface(name string) (Surface, error) {
	return NewAccumulator(name, gpu.VRAMWidth, gpu.VRAMHeight), nil
}
