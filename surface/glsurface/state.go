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
)

// the OpenGL functions used when drawing to a surface
type api interface {
	GetIntegerv(pname uint32, data *int32)
	IsEnabled(capability uint32) bool
	Enable(capability uint32)
	Disable(capability uint32)
	BindFramebuffer(target uint32, fbo uint32)
	Viewport(x, y, w, h int32)
	BlendEquationSeparate(modeRGB, modeAlpha uint32)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	UseProgram(program uint32)
	BindVertexArray(vao uint32)
	BindBuffer(target uint32, buffer uint32)
	BufferSubData(target uint32, offset int, size int, data unsafe.Pointer)
	DrawArrays(mode uint32, first int32, count int32)
	ClearBufferfv(buffer uint32, drawbuffer int32, value *float32)
}

// glAPI calls the go-gl bindings
type glAPI struct{}

func (glAPI) GetIntegerv(pname uint32, data *int32)     { gl.GetIntegerv(pname, data) }
func (glAPI) IsEnabled(capability uint32) bool          { return gl.IsEnabled(capability) }
func (glAPI) Enable(capability uint32)                  { gl.Enable(capability) }
func (glAPI) Disable(capability uint32)                 { gl.Disable(capability) }
func (glAPI) BindFramebuffer(target uint32, fbo uint32) { gl.BindFramebuffer(target, fbo) }
func (glAPI) Viewport(x, y, w, h int32)                 { gl.Viewport(x, y, w, h) }
func (glAPI) UseProgram(program uint32)                 { gl.UseProgram(program) }
func (glAPI) BindVertexArray(vao uint32)                { gl.BindVertexArray(vao) }
func (glAPI) BindBuffer(target uint32, buffer uint32)   { gl.BindBuffer(target, buffer) }

func (glAPI) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	gl.BlendEquationSeparate(modeRGB, modeAlpha)
}

func (glAPI) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	gl.BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (glAPI) BufferSubData(target uint32, offset int, size int, data unsafe.Pointer) {
	gl.BufferSubData(target, offset, size, data)
}

func (glAPI) DrawArrays(mode uint32, first int32, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (glAPI) ClearBufferfv(buffer uint32, drawbuffer int32, value *float32) {
	gl.ClearBufferfv(buffer, drawbuffer, value)
}

// the host state changed by drawing to a surface
type hostState struct {
	fbo         int32
	viewport    [4]int32
	program     int32
	vao         int32
	arrayBuffer int32

	blend         bool
	scissor       bool
	blendSrcRGB   int32
	blendDstRGB   int32
	blendSrcAlpha int32
	blendDstAlpha int32
	blendEqRGB    int32
	blendEqAlpha  int32
}

func saveState(a api) hostState {
	var s hostState
	a.GetIntegerv(gl.DRAW_FRAMEBUFFER_BINDING, &s.fbo)
	a.GetIntegerv(gl.VIEWPORT, &s.viewport[0])
	a.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	a.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &s.vao)
	a.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &s.arrayBuffer)
	s.blend = a.IsEnabled(gl.BLEND)
	s.scissor = a.IsEnabled(gl.SCISSOR_TEST)
	a.GetIntegerv(gl.BLEND_SRC_RGB, &s.blendSrcRGB)
	a.GetIntegerv(gl.BLEND_DST_RGB, &s.blendDstRGB)
	a.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrcAlpha)
	a.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDstAlpha)
	a.GetIntegerv(gl.BLEND_EQUATION_RGB, &s.blendEqRGB)
	a.GetIntegerv(gl.BLEND_EQUATION_ALPHA, &s.blendEqAlpha)
	return s
}

func (s hostState) restore(a api) {
	a.BlendEquationSeparate(uint32(s.blendEqRGB), uint32(s.blendEqAlpha))
	a.BlendFuncSeparate(uint32(s.blendSrcRGB), uint32(s.blendDstRGB), uint32(s.blendSrcAlpha), uint32(s.blendDstAlpha))
	setCapability(a, gl.BLEND, s.blend)
	setCapability(a, gl.SCISSOR_TEST, s.scissor)
	a.BindVertexArray(uint32(s.vao))
	a.BindBuffer(gl.ARRAY_BUFFER, uint32(s.arrayBuffer))
	a.UseProgram(uint32(s.program))
	a.BindFramebuffer(gl.DRAW_FRAMEBUFFER, uint32(s.fbo))
	a.Viewport(s.viewport[0], s.viewport[1], s.viewport[2], s.viewport[3])
}

func setCapability(a api, capability uint32, enabled bool) {
	if enabled {
		a.Enable(capability)
	} else {
		a.Disable(capability)
	}
}
