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

package glsurface

import (
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gputrace/surface"
)

// Surface is an OpenGL implementation of surface.Surface.
type Surface struct {
	name    string
	factory *Factory

	texture uint32
	fbo     uint32

	// vertex positions waiting to be drawn
	batch  []int32
	active bool

	// host state saved by Begin() and restored by End()
	host hostState
}

func (s *Surface) String() string {
	return s.name
}

// Texture returns the ID of the texture the surface draws into. The red
// channel of each texel is the accumulated count.
func (s *Surface) Texture() uint32 {
	return s.texture
}

// Destroy should be called when the Surface is no longer required.
func (s *Surface) Destroy() {
	gl.DeleteFramebuffers(1, &s.fbo)
	gl.DeleteTextures(1, &s.texture)
	s.fbo = 0
	s.texture = 0
}

// Begin implements the surface.Surface interface. The OpenGL state changed
// by drawing is saved and restored by End().
func (s *Surface) Begin() {
	if s.active {
		return
	}
	s.active = true

	a := s.factory.api
	s.host = saveState(a)

	a.BindFramebuffer(gl.DRAW_FRAMEBUFFER, s.fbo)
	a.Viewport(0, 0, s.factory.width, s.factory.height)
	a.Disable(gl.SCISSOR_TEST)
	a.Enable(gl.BLEND)
	a.BlendEquationSeparate(gl.FUNC_ADD, gl.FUNC_ADD)
	a.BlendFuncSeparate(gl.ONE, gl.ONE, gl.ONE, gl.ONE)

	a.UseProgram(s.factory.program)
	a.BindVertexArray(s.factory.vao)
	a.BindBuffer(gl.ARRAY_BUFFER, s.factory.vbo)
}

// Triangle implements the surface.Surface interface. A triangle added
// outside of a Begin()/End() pair is drawn immediately.
func (s *Surface) Triangle(a, b, c surface.Point) {
	if !s.active {
		s.Begin()
		defer s.End()
	}

	if len(s.batch)+6 > cap(s.batch) {
		s.flush()
	}
	s.batch = append(s.batch,
		int32(a.X), int32(a.Y),
		int32(b.X), int32(b.Y),
		int32(c.X), int32(c.Y),
	)
}

func (s *Surface) flush() {
	if len(s.batch) == 0 {
		return
	}
	a := s.factory.api
	a.BufferSubData(gl.ARRAY_BUFFER, 0, len(s.batch)*4, unsafe.Pointer(&s.batch[0]))
	a.DrawArrays(gl.TRIANGLES, 0, int32(len(s.batch)/2))
	s.batch = s.batch[:0]
}

// End implements the surface.Surface interface.
func (s *Surface) End() {
	if !s.active {
		return
	}
	s.flush()
	s.active = false
	s.host.restore(s.factory.api)
}

// Clear implements the surface.Surface interface.
func (s *Surface) Clear() {
	a := s.factory.api

	var prev int32
	a.GetIntegerv(gl.DRAW_FRAMEBUFFER_BINDING, &prev)

	var zero [4]float32
	s.batch = s.batch[:0]
	a.BindFramebuffer(gl.DRAW_FRAMEBUFFER, s.fbo)
	a.ClearBufferfv(gl.COLOR, 0, &zero[0])
	a.BindFramebuffer(gl.DRAW_FRAMEBUFFER, uint32(prev))
}

// Size implements the surface.Surface interface.
func (s *Surface) Size() (int, int) {
	return int(s.factory.width), int(s.factory.height)
}
