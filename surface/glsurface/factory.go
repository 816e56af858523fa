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
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gputrace/surface"
)

//go:embed "heatmap.vert"
var vertexShader string

//go:embed "heatmap.frag"
var fragmentShader string

// the minimum number of texture units required by the inspector
const minTextureUnits = 5

// the number of vertices drawn in a single call to DrawArrays
const batchVertices = 3 * 1024

// ErrTextureUnits is returned by NewFactory() if the OpenGL implementation
// does not have enough texture units.
var ErrTextureUnits = errors.New("glsurface: not enough texture units")

// Factory creates OpenGL surfaces. The shader program and vertex buffers
// are shared by every surface created by the Factory.
type Factory struct {
	api api

	program uint32
	vao     uint32
	vbo     uint32

	width  int32
	height int32
}

// NewFactory is the preferred method of initialisation for the Factory
// type. Surfaces will be the size of VRAM.
func NewFactory() (*Factory, error) {
	var units int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &units)
	if units < minTextureUnits {
		return nil, fmt.Errorf("%w: %w: %d available", surface.ErrUnavailable, ErrTextureUnits, units)
	}

	f := &Factory{
		api:    glAPI{},
		width:  1024,
		height: 512,
	}

	var err error
	f.program, err = createProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", surface.ErrUnavailable, err)
	}

	gl.GenVertexArrays(1, &f.vao)
	gl.GenBuffers(1, &f.vbo)

	gl.BindVertexArray(f.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, f.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, batchVertices*2*4, nil, gl.STREAM_DRAW)
	gl.VertexAttribIPointer(0, 2, gl.INT, 2*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	return f, nil
}

// Destroy should be called when the Factory is no longer required. Surfaces
// created by the Factory must not be used after the Factory is destroyed.
func (f *Factory) Destroy() {
	gl.DeleteBuffers(1, &f.vbo)
	gl.DeleteVertexArrays(1, &f.vao)
	gl.DeleteProgram(f.program)
}

// NewSurface implements the surface.Factory interface.
func (f *Factory) NewSurface(name string) (surface.Surface, error) {
	s := &Surface{
		name:    name,
		factory: f,
		batch:   make([]int32, 0, batchVertices*2),
	}

	gl.GenTextures(1, &s.texture)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F, f.width, f.height, 0, gl.RED, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	var prev int32
	gl.GetIntegerv(gl.DRAW_FRAMEBUFFER_BINDING, &prev)

	gl.GenFramebuffers(1, &s.fbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, s.fbo)
	gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, s.texture, 0)
	status := gl.CheckFramebufferStatus(gl.DRAW_FRAMEBUFFER)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, uint32(prev))

	if status != gl.FRAMEBUFFER_COMPLETE {
		s.Destroy()
		return nil, fmt.Errorf("%w: %s: framebuffer status %#x", surface.ErrUnavailable, name, status)
	}

	s.Clear()

	return s, nil
}

// compile and link the shader program
func createProgram(vertProgram string, fragProgram string) (uint32, error) {
	vertHandle, err := compileShader(gl.VERTEX_SHADER, vertProgram)
	if err != nil {
		return 0, fmt.Errorf("glsurface: vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(gl.FRAGMENT_SHADER, fragProgram)
	if err != nil {
		return 0, fmt.Errorf("glsurface: fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragHandle)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertHandle)
	gl.AttachShader(handle, fragHandle)
	gl.LinkProgram(handle)

	var linked int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &linked)
	if linked == 0 {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteProgram(handle)
		return 0, fmt.Errorf("glsurface: link: %s", strings.TrimRight(log, "\x00"))
	}

	return handle, nil
}

func compileShader(typ uint32, source string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var compiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &compiled)
	if compiled == 0 {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteShader(handle)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}

	return handle, nil
}
