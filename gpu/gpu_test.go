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

package gpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/test"
)

func TestFastFill(t *testing.T) {
	d, err := gpu.DecodeData([]uint32{0x02123456, 0x00200013, 0x00100021})
	test.DemandSuccess(t, err)

	ff, ok := d.(gpu.FastFill)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, ff.Color, uint32(0x123456))
	test.ExpectEquality(t, ff.Raw, gpu.RawRect{X: 0x13, Y: 0x20, W: 0x21, H: 0x10})

	// x is aligned down and w is aligned up to multiples of 16
	test.ExpectEquality(t, ff.X, 0x10)
	test.ExpectEquality(t, ff.Y, 0x20)
	test.ExpectEquality(t, ff.W, 0x30)
	test.ExpectEquality(t, ff.H, 0x10)
	test.ExpectEquality(t, ff.Clipped, false)
	test.ExpectEquality(t, ff.Name(), "FastFill")
	test.ExpectEquality(t, ff.Primitive(), "fast_fill")
	test.ExpectEquality(t, ff.Describe()[0], "Color: 0x123456")
	test.ExpectEquality(t, ff.Describe()[2], "X1: 64, Y1: 48")
}

func TestFastFillClipped(t *testing.T) {
	d, err := gpu.DecodeData([]uint32{0x02000000, 0x01f003f0, 0x00400040})
	test.DemandSuccess(t, err)

	ff := d.(gpu.FastFill)
	test.ExpectEquality(t, ff.X, 0x3f0)
	test.ExpectEquality(t, ff.W, 0x10)
	test.ExpectEquality(t, ff.Y, 0x1f0)
	test.ExpectEquality(t, ff.H, 0x10)
	test.ExpectEquality(t, ff.Clipped, true)
}

func TestBlits(t *testing.T) {
	d, err := gpu.DecodeData([]uint32{0x80000000, 0x00100020, 0x00300040, 0x00080004})
	test.DemandSuccess(t, err)
	vv := d.(gpu.BlitVramVram)
	test.ExpectEquality(t, vv.SX, 0x20)
	test.ExpectEquality(t, vv.SY, 0x10)
	test.ExpectEquality(t, vv.DX, 0x40)
	test.ExpectEquality(t, vv.DY, 0x30)
	test.ExpectEquality(t, vv.W, 4)
	test.ExpectEquality(t, vv.H, 8)

	// a size of zero is the maximum size
	d, err = gpu.DecodeData([]uint32{0xc0000000, 0x00000000, 0x00000000})
	test.DemandSuccess(t, err)
	vr := d.(gpu.BlitVramRam)
	test.ExpectEquality(t, vr.W, 1024)
	test.ExpectEquality(t, vr.H, 512)
	test.ExpectEquality(t, vr.Clipped, false)

	d, err = gpu.DecodeData([]uint32{0xa0000000, 0x00050006, 0x00010003, 0x22221111, 0x44443333})
	test.DemandSuccess(t, err)
	rv := d.(gpu.BlitRamVram)
	test.ExpectEquality(t, rv.X, 6)
	test.ExpectEquality(t, rv.Y, 5)
	test.ExpectEquality(t, rv.W, 3)
	test.ExpectEquality(t, rv.H, 1)
	test.DemandEquality(t, len(rv.Data), 3)
	test.ExpectEquality(t, rv.Data[0], uint16(0x1111))
	test.ExpectEquality(t, rv.Data[1], uint16(0x2222))
	test.ExpectEquality(t, rv.Data[2], uint16(0x3333))
}

func TestEnvironmentCommands(t *testing.T) {
	d, err := gpu.DecodeData([]uint32{0xe1000000 | 0x3 | 1<<4 | 2<<5 | 1<<7 | 1<<9})
	test.DemandSuccess(t, err)
	tp := d.(gpu.TexturePage)
	test.ExpectEquality(t, tp.TX, 192)
	test.ExpectEquality(t, tp.TY, 256)
	test.ExpectEquality(t, tp.Blend, gpu.FullBackSubFullFront)
	test.ExpectEquality(t, tp.Depth, gpu.Tex8Bits)
	test.ExpectEquality(t, tp.Dither, true)
	test.ExpectEquality(t, tp.DrawToDisplay, false)

	d, err = gpu.DecodeData([]uint32{0xe5000000 | 0x7ff<<11 | 0x010})
	test.DemandSuccess(t, err)
	do := d.(gpu.DrawingOffset)
	test.ExpectEquality(t, do.X, 16)
	test.ExpectEquality(t, do.Y, -1)

	d, err = gpu.DecodeData([]uint32{0xe3000000 | 20<<10 | 10})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.(gpu.DrawingAreaStart).X, 10)
	test.ExpectEquality(t, d.(gpu.DrawingAreaStart).Y, 20)

	d, err = gpu.DecodeData([]uint32{0xe6000002})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.(gpu.MaskBit).Set, false)
	test.ExpectEquality(t, d.(gpu.MaskBit).Check, true)
	test.ExpectEquality(t, d.Describe()[0], "Set: No, Check: Yes")

	d, err = gpu.DecodeData([]uint32{0x01000000})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.Name(), "ClearCache")
}

func TestDecodeErrors(t *testing.T) {
	_, err := gpu.DecodeData(nil)
	test.ExpectEquality(t, errors.Is(err, gpu.ErrShortPacket), true)

	_, err = gpu.DecodeData([]uint32{0x02000000})
	test.ExpectEquality(t, errors.Is(err, gpu.ErrShortPacket), true)

	// drawing primitives are not part of the logging catalogue
	_, err = gpu.DecodeData([]uint32{0x20000000})
	test.ExpectEquality(t, errors.Is(err, gpu.ErrUnknownCommand), true)

	_, err = gpu.DecodeCtrl(0x09000000)
	test.ExpectEquality(t, errors.Is(err, gpu.ErrUnknownCommand), true)
}

func TestControlCommands(t *testing.T) {
	d, err := gpu.DecodeCtrl(0x03000000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.(gpu.CtrlDisplayEnable).Enable, true)
	test.ExpectEquality(t, d.Describe()[0], "Display Enabled")

	d, err = gpu.DecodeCtrl(0x04000002)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.(gpu.CtrlDmaSetting).Dma, gpu.DmaRead)

	d, err = gpu.DecodeCtrl(0x05000000 | 100<<10 | 0x201)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.(gpu.CtrlDisplayStart).X, 0x200)
	test.ExpectEquality(t, d.(gpu.CtrlDisplayStart).Y, 100)

	d, err = gpu.DecodeCtrl(0x06000000 | 0xc60<<12 | 0x260)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.(gpu.CtrlHorizontalDisplayRange).X0, 0x260)
	test.ExpectEquality(t, d.(gpu.CtrlHorizontalDisplayRange).X1, 0xc60)

	d, err = gpu.DecodeCtrl(0x07000000 | 0x100<<10 | 0x10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.(gpu.CtrlVerticalDisplayRange).Y0, 0x10)
	test.ExpectEquality(t, d.(gpu.CtrlVerticalDisplayRange).Y1, 0x100)

	d, err = gpu.DecodeCtrl(0x10000003)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.(gpu.CtrlQuery).Type(), gpu.QueryDrawAreaStart)

	d, err = gpu.DecodeCtrl(0x10000007)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.(gpu.CtrlQuery).Type(), gpu.QueryUnknown)
}

func TestDisplayMode(t *testing.T) {
	d, err := gpu.DecodeCtrl(0x08000000 | 0x01 | 0x04 | 0x08 | 0x10 | 0x20)
	test.DemandSuccess(t, err)
	dm := d.(gpu.CtrlDisplayMode)
	test.ExpectEquality(t, dm.HRes, gpu.HR320)
	test.ExpectEquality(t, dm.VRes, gpu.VR480)
	test.ExpectEquality(t, dm.Mode, gpu.PAL)
	test.ExpectEquality(t, dm.Depth, gpu.Depth24Bits)
	test.ExpectEquality(t, dm.Interlace, true)
	test.ExpectEquality(t, dm.WidthRaw, 2)

	// extended width bit
	d, err = gpu.DecodeCtrl(0x08000000 | 0x40 | 0x01)
	test.DemandSuccess(t, err)
	dm = d.(gpu.CtrlDisplayMode)
	test.ExpectEquality(t, dm.HRes, gpu.HR384)
	test.ExpectEquality(t, dm.HRes.Pixels(), 384)
	test.ExpectEquality(t, dm.WidthRaw, 3)
	test.ExpectEquality(t, dm.Describe()[1], "Extended width mode: Yes")
}

func TestCommandHeader(t *testing.T) {
	cmd, err := gpu.Decode([]uint32{0x08000000}, gpu.CtrlWrite)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cmd.Name(), "CtrlDisplayMode")
	test.ExpectEquality(t, cmd.Enabled, true)
	test.ExpectEquality(t, cmd.Origin, gpu.CtrlWrite)

	test.ExpectSuccess(t, cmd.SetFrame(10))
	test.ExpectEquality(t, errors.Is(cmd.SetFrame(11), gpu.ErrFrameBound), true)
	test.ExpectEquality(t, cmd.Frame(), uint64(10))
}

func TestTruncate(t *testing.T) {
	cmd := gpu.NewCommand(gpu.ClearCache{}, make([]uint32, gpu.MaxLoggedWords))
	cmd.Truncate()
	test.ExpectEquality(t, len(cmd.Words), gpu.MaxLoggedWords)
	test.ExpectEquality(t, cmd.WordsTruncated, false)

	words := make([]uint32, gpu.MaxLoggedWords+10)
	for i := range words {
		words[i] = uint32(i)
	}
	cmd = gpu.NewCommand(gpu.ClearCache{}, words)
	cmd.Truncate()
	test.ExpectEquality(t, len(cmd.Words), gpu.MaxLoggedWords)
	test.ExpectEquality(t, cmd.WordsTruncated, true)
	test.ExpectEquality(t, cmd.Words[gpu.MaxLoggedWords-1], uint32(gpu.MaxLoggedWords-1))
}

func TestStats(t *testing.T) {
	var s gpu.Stats
	s.Accumulate(gpu.NewCommand(gpu.FastFill{W: 16, H: 2}, nil))
	s.Accumulate(gpu.NewCommand(gpu.BlitVramVram{W: 4, H: 4}, nil))
	s.Accumulate(gpu.NewCommand(gpu.BlitRamVram{W: 2, H: 2}, nil))
	s.Accumulate(gpu.NewCommand(gpu.BlitVramRam{W: 3, H: 1}, nil))
	s.Accumulate(gpu.NewCommand(gpu.CtrlReset{}, nil))
	test.ExpectEquality(t, s.PixelWrites, uint64(32+16+4))
	test.ExpectEquality(t, s.PixelReads, uint64(16+3))
	test.ExpectEquality(t, s.Triangles, uint64(0))
}

func TestVRAM(t *testing.T) {
	v := gpu.NewVRAM()
	v.Update(1022, 0, 4, 1, []uint16{1, 2, 3})
	test.ExpectEquality(t, v.Pixel(1022, 0), uint16(1))
	test.ExpectEquality(t, v.Pixel(1023, 0), uint16(2))

	// wraps around to the left edge and missing data is zero
	test.ExpectEquality(t, v.Pixel(0, 0), uint16(3))
	test.ExpectEquality(t, v.Pixel(1, 0), uint16(0))

	c := v.Clone()
	test.ExpectEquality(t, c.Equal(v), true)
	c.SetPixel(5, 5, 0xffff)
	test.ExpectEquality(t, c.Equal(v), false)
}

func TestOrigin(t *testing.T) {
	for o := gpu.DataWrite; o <= gpu.Replay; o++ {
		p, ok := gpu.ParseOrigin(o.String())
		test.ExpectEquality(t, ok, true)
		test.ExpectEquality(t, p, o)
	}
	test.ExpectEquality(t, gpu.Origin(99).String(), "Unknown")
}
