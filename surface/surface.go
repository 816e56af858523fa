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

import "errors"

// ErrUnavailable is returned by a Factory when a surface can not be created.
var ErrUnavailable = errors.New("surface: unavailable")

// Point is a position on the surface in VRAM pixel coordinates.
type Point struct {
	X, Y int
}

// Surface is implemented by any type that can accumulate triangle coverage.
type Surface interface {
	// Begin a batch of triangles. The implementation should save any state
	// that will be changed by drawing
	Begin()

	// Triangle adds a triangle to the current batch
	Triangle(a, b, c Point)

	// End the batch and restore any state saved by Begin()
	End()

	// Clear all accumulated coverage
	Clear()

	// Size of the surface in pixels
	Size() (w, h int)
}

// Factory creates named surfaces. Returns an error wrapping ErrUnavailable if
// the surface can not be created.
type Factory interface {
	NewSurface(name string) (Surface, error)
}
