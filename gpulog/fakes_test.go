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

package gpulog_test

import (
	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/surface"
)

// vramProvider is a gpu.VRAMProvider that counts acquisitions and releases.
// Each snapshot has the acquisition count written to the first pixel
type vramProvider struct {
	acquired int
	released int
}

func (p *vramProvider) AcquireVRAM() *gpu.VRAM {
	p.acquired++
	v := gpu.NewVRAM()
	v.SetPixel(0, 0, uint16(p.acquired))
	return v
}

func (p *vramProvider) ReleaseVRAM(_ *gpu.VRAM) {
	p.released++
}

type cpu struct {
	pc uint32
}

func (c *cpu) PC() uint32 {
	return c.pc
}

// interpreter is a minimal gpu.Interpreter. Only fills and uploads change
// the VRAM image
type interpreter struct {
	vram     *gpu.VRAM
	executed []string
	vblanks  int
}

func newInterpreter() *interpreter {
	return &interpreter{vram: gpu.NewVRAM()}
}

func (in *interpreter) PartialUpdateVRAM(x, y, w, h int, data []uint16) {
	in.vram.Update(x, y, w, h, data)
}

func (in *interpreter) Execute(cmd *gpu.Command) {
	in.executed = append(in.executed, cmd.Name())

	switch d := cmd.Detail.(type) {
	case gpu.FastFill:
		for y := range d.H {
			for x := range d.W {
				in.vram.SetPixel(d.X+x, d.Y+y, uint16(d.Color))
			}
		}
	case gpu.BlitRamVram:
		in.vram.Update(d.X, d.Y, d.W, d.H, d.Data)
	}
}

func (in *interpreter) VBlank() {
	in.vblanks++
}

// failingFactory fails to create the surface with the failOn name
type failingFactory struct {
	failOn string
}

func (f failingFactory) NewSurface(name string) (surface.Surface, error) {
	if name == f.failOn {
		return nil, surface.ErrUnavailable
	}
	return surface.SoftwareFactory{}.NewSurface(name)
}
