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

// Stats is an accumulation of the work done by a list of commands.
type Stats struct {
	Triangles         uint64
	TexturedTriangles uint64
	Rectangles        uint64
	Sprites           uint64
	PixelWrites       uint64
	PixelReads        uint64
	TexelReads        uint64
}

// Accumulate adds the work done by the command to the stats.
func (s *Stats) Accumulate(cmd *Command) {
	switch d := cmd.Detail.(type) {
	case FastFill:
		s.PixelWrites += uint64(d.W * d.H)
	case BlitVramVram:
		n := uint64(d.W * d.H)
		s.PixelWrites += n
		s.PixelReads += n
	case BlitRamVram:
		s.PixelWrites += uint64(d.W * d.H)
	case BlitVramRam:
		s.PixelReads += uint64(d.W * d.H)
	}
}
