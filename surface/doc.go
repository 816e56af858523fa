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

// Package surface defines the drawing target used to accumulate command
// coverage. A surface counts how many times each VRAM pixel has been covered
// by the triangles drawn into it.
//
// Triangles are delivered between calls to Begin() and End(). All triangles
// in one Begin/End pair belong to the same command and are counted as a
// single batch, so a pixel covered by two triangles of the same command is
// only counted once.
//
// The Accumulator type is a software implementation of the Surface
// interface. The glsurface package provides an OpenGL implementation.
package surface
