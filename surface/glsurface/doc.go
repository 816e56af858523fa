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

// Package glsurface implements the surface.Surface interface with OpenGL
// framebuffers. Each surface is a single channel floating point texture
// attached to its own framebuffer. Triangles are drawn with additive
// blending so that the value of a texel is the number of triangles that
// covered it.
//
// An OpenGL 3.2 core context must be current on the calling goroutine for
// every function in the package, including NewFactory().
package glsurface
