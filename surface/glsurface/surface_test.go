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
	"maps"
	"slices"
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gputrace/surface"
	"github.com/jetsetilly/gputrace/test"
)

// fakeGL keeps the OpenGL state that a surface reads and changes
type fakeGL struct {
	ints map[uint32][]int32
	caps map[uint32]bool

	vertices int32
	clears   int
}

func newFakeGL() *fakeGL {
	return &fakeGL{
		ints: map[uint32][]int32{
			gl.DRAW_FRAMEBUFFER_BINDING: {5},
			gl.VIEWPORT:                 {10, 20, 300, 200},
			gl.CURRENT_PROGRAM:          {11},
			gl.VERTEX_ARRAY_BINDING:     {12},
			gl.ARRAY_BUFFER_BINDING:     {13},
			gl.BLEND_SRC_RGB:            {gl.SRC_ALPHA},
			gl.BLEND_DST_RGB:            {gl.ONE_MINUS_SRC_ALPHA},
			gl.BLEND_SRC_ALPHA:          {gl.ONE},
			gl.BLEND_DST_ALPHA:          {gl.ONE_MINUS_SRC_ALPHA},
			gl.BLEND_EQUATION_RGB:       {gl.FUNC_ADD},
			gl.BLEND_EQUATION_ALPHA:     {gl.MAX},
		},
		caps: map[uint32]bool{
			gl.BLEND:        true,
			gl.SCISSOR_TEST: true,
		},
	}
}

func (f *fakeGL) snapshot() (map[uint32][]int32, map[uint32]bool) {
	ints := make(map[uint32][]int32)
	for k, v := range f.ints {
		ints[k] = slices.Clone(v)
	}
	return ints, maps.Clone(f.caps)
}

func (f *fakeGL) equal(t *testing.T, ints map[uint32][]int32, caps map[uint32]bool) {
	t.Helper()
	for k, v := range ints {
		test.ExpectEquality(t, slices.Equal(f.ints[k], v), true, k)
	}
	test.ExpectEquality(t, maps.Equal(f.caps, caps), true)
}

func (f *fakeGL) GetIntegerv(pname uint32, data *int32) {
	v := f.ints[pname]
	copy(unsafe.Slice(data, max(len(v), 1)), v)
}

func (f *fakeGL) IsEnabled(capability uint32) bool { return f.caps[capability] }
func (f *fakeGL) Enable(capability uint32)         { f.caps[capability] = true }
func (f *fakeGL) Disable(capability uint32)        { f.caps[capability] = false }

func (f *fakeGL) BindFramebuffer(_ uint32, fbo uint32) {
	f.ints[gl.DRAW_FRAMEBUFFER_BINDING] = []int32{int32(fbo)}
}

func (f *fakeGL) Viewport(x, y, w, h int32) {
	f.ints[gl.VIEWPORT] = []int32{x, y, w, h}
}

func (f *fakeGL) BlendEquationSeparate(modeRGB, modeAlpha uint32) {
	f.ints[gl.BLEND_EQUATION_RGB] = []int32{int32(modeRGB)}
	f.ints[gl.BLEND_EQUATION_ALPHA] = []int32{int32(modeAlpha)}
}

func (f *fakeGL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	f.ints[gl.BLEND_SRC_RGB] = []int32{int32(srcRGB)}
	f.ints[gl.BLEND_DST_RGB] = []int32{int32(dstRGB)}
	f.ints[gl.BLEND_SRC_ALPHA] = []int32{int32(srcAlpha)}
	f.ints[gl.BLEND_DST_ALPHA] = []int32{int32(dstAlpha)}
}

func (f *fakeGL) UseProgram(program uint32) {
	f.ints[gl.CURRENT_PROGRAM] = []int32{int32(program)}
}

func (f *fakeGL) BindVertexArray(vao uint32) {
	f.ints[gl.VERTEX_ARRAY_BINDING] = []int32{int32(vao)}
}

func (f *fakeGL) BindBuffer(_ uint32, buffer uint32) {
	f.ints[gl.ARRAY_BUFFER_BINDING] = []int32{int32(buffer)}
}

func (f *fakeGL) BufferSubData(_ uint32, _ int, _ int, _ unsafe.Pointer) {}

func (f *fakeGL) DrawArrays(_ uint32, _ int32, count int32) {
	f.vertices += count
}

func (f *fakeGL) ClearBufferfv(_ uint32, _ int32, _ *float32) {
	f.clears++
}

func newTestSurface(f *fakeGL) *Surface {
	return &Surface{
		name: "test",
		factory: &Factory{
			api:     f,
			program: 7,
			vao:     8,
			vbo:     9,
			width:   1024,
			height:  512,
		},
		fbo:   3,
		batch: make([]int32, 0, batchVertices*2),
	}
}

func TestHostStateRestored(t *testing.T) {
	f := newFakeGL()
	ints, caps := f.snapshot()
	s := newTestSurface(f)

	s.Begin()
	test.ExpectEquality(t, f.ints[gl.DRAW_FRAMEBUFFER_BINDING][0], int32(3))
	test.ExpectEquality(t, f.ints[gl.CURRENT_PROGRAM][0], int32(7))
	test.ExpectEquality(t, f.ints[gl.VERTEX_ARRAY_BINDING][0], int32(8))
	test.ExpectEquality(t, f.ints[gl.ARRAY_BUFFER_BINDING][0], int32(9))
	test.ExpectEquality(t, f.ints[gl.BLEND_SRC_RGB][0], int32(gl.ONE))
	test.ExpectEquality(t, f.ints[gl.BLEND_DST_RGB][0], int32(gl.ONE))
	test.ExpectEquality(t, f.ints[gl.BLEND_EQUATION_ALPHA][0], int32(gl.FUNC_ADD))
	test.ExpectEquality(t, f.caps[gl.SCISSOR_TEST], false)
	test.ExpectEquality(t, slices.Equal(f.ints[gl.VIEWPORT], []int32{0, 0, 1024, 512}), true)

	s.Triangle(surface.Point{X: 0, Y: 0}, surface.Point{X: 1, Y: 0}, surface.Point{X: 0, Y: 1})
	s.Triangle(surface.Point{X: 1, Y: 0}, surface.Point{X: 1, Y: 1}, surface.Point{X: 0, Y: 1})
	s.End()

	test.ExpectEquality(t, f.vertices, int32(6))
	f.equal(t, ints, caps)
}

func TestHostStateWithoutBlending(t *testing.T) {
	f := newFakeGL()
	f.caps[gl.BLEND] = false
	f.caps[gl.SCISSOR_TEST] = false
	ints, caps := f.snapshot()
	s := newTestSurface(f)

	// a triangle outside of Begin()/End() is drawn immediately
	s.Triangle(surface.Point{X: 0, Y: 0}, surface.Point{X: 1, Y: 0}, surface.Point{X: 0, Y: 1})
	test.ExpectEquality(t, f.vertices, int32(3))
	test.ExpectEquality(t, s.active, false)
	f.equal(t, ints, caps)
}

func TestClearRestoresFramebuffer(t *testing.T) {
	f := newFakeGL()
	ints, caps := f.snapshot()
	s := newTestSurface(f)

	s.Clear()
	test.ExpectEquality(t, f.clears, 1)
	f.equal(t, ints, caps)

	w, h := s.Size()
	test.ExpectEquality(t, w, 1024)
	test.ExpectEquality(t, h, 512)
}
