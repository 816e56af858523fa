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

// Package rasterizer converts logged GPU commands into the triangles that
// cover the VRAM pixels read or written by the command.
//
// Coverage is returned as an iter.Seq of triangles. Sequences are lazy and
// can be ranged over any number of times. Draw() is a convenience function
// that sends the coverage of a command to a surface.Surface.
package rasterizer
