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

package gpu

import "slices"

// VRAM is an image of the GPU's video memory. Pixels are stored row by row,
// VRAMWidth pixels per row.
type VRAM struct {
	Pixels []uint16
}

// NewVRAM returns a cleared VRAM image.
func NewVRAM() *VRAM {
	return &VRAM{
		Pixels: make([]uint16, VRAMWidth*VRAMHeight),
	}
}

// Clone returns a copy of the VRAM image.
func (v *VRAM) Clone() *VRAM {
	return &VRAM{
		Pixels: slices.Clone(v.Pixels),
	}
}

// Equal returns true if both images contain the same pixels.
func (v *VRAM) Equal(o *VRAM) bool {
	if v == nil || o == nil {
		return v == o
	}
	return slices.Equal(v.Pixels, o.Pixels)
}

// Pixel returns the pixel at the coordinates. Coordinates wrap around the
// edges of VRAM.
func (v *VRAM) Pixel(x, y int) uint16 {
	return v.Pixels[v.index(x, y)]
}

// SetPixel sets the pixel at the coordinates. Coordinates wrap around the
// edges of VRAM.
func (v *VRAM) SetPixel(x, y int, p uint16) {
	v.Pixels[v.index(x, y)] = p
}

func (v *VRAM) index(x, y int) int {
	x &= VRAMWidth - 1
	y &= VRAMHeight - 1
	return y*VRAMWidth + x
}

// Update copies a rectangle of pixel data into VRAM. Data is in row order and
// missing data is treated as zero.
func (v *VRAM) Update(x, y, w, h int, data []uint16) {
	i := 0
	for row := range h {
		for col := range w {
			var p uint16
			if i < len(data) {
				p = data[i]
			}
			v.SetPixel(x+col, y+row, p)
			i++
		}
	}
}

// VRAMProvider is implemented by the emulator's GPU and is used to take
// snapshots of VRAM.
type VRAMProvider interface {
	// AcquireVRAM returns a snapshot of VRAM. The snapshot is owned by the
	// caller until it is released.
	AcquireVRAM() *VRAM

	// ReleaseVRAM returns a snapshot that is no longer needed.
	ReleaseVRAM(*VRAM)
}

// Interpreter is implemented by the emulator's GPU and is used to replay
// logged commands.
type Interpreter interface {
	PartialUpdateVRAM(x, y, w, h int, data []uint16)
	Execute(cmd *Command)
	VBlank()
}
