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

import "fmt"

// RawRect is a rectangle as it was encoded in the command words, before any
// masking or clipping.
type RawRect struct {
	X, Y, W, H uint16
}

// RawBlit is the encoded source, destination and size of a VRAM to VRAM
// blit.
type RawBlit struct {
	SX, SY, DX, DY, W, H uint16
}

// ClearCache is GP0(01h).
type ClearCache struct{}

func (ClearCache) Name() string       { return "ClearCache" }
func (ClearCache) Primitive() string  { return "clear_cache" }
func (ClearCache) Describe() []string { return nil }
func (ClearCache) detail()            {}

// FastFill is GP0(02h). Fills a rectangle in VRAM with a solid colour.
type FastFill struct {
	Color      uint32
	X, Y, W, H int
	Raw        RawRect
	Clipped    bool
}

func (FastFill) Name() string      { return "FastFill" }
func (FastFill) Primitive() string { return "fast_fill" }
func (FastFill) detail()           {}

func (d FastFill) Describe() []string {
	return []string{
		fmt.Sprintf("Color: %s", ColorHex(d.Color)),
		fmt.Sprintf("X0: %d, Y0: %d", d.X, d.Y),
		fmt.Sprintf("X1: %d, Y1: %d", d.X+d.W, d.Y+d.H),
		fmt.Sprintf("W: %d, H: %d", d.W, d.H),
	}
}

// BlitVramVram is GP0(80h). Copies a rectangle from one VRAM location to
// another.
type BlitVramVram struct {
	SX, SY  int
	DX, DY  int
	W, H    int
	Raw     RawBlit
	Clipped bool
}

func (BlitVramVram) Name() string      { return "BlitVramVram" }
func (BlitVramVram) Primitive() string { return "blit_vram_to_vram" }
func (BlitVramVram) detail()           {}

func (d BlitVramVram) Describe() []string {
	return []string{
		fmt.Sprintf("From X: %d, Y: %d", d.SX, d.SY),
		fmt.Sprintf("To X: %d, Y: %d", d.DX, d.DY),
		fmt.Sprintf("W: %d, H: %d", d.W, d.H),
	}
}

// BlitRamVram is GP0(A0h). Uploads pixel data from RAM to a rectangle in
// VRAM.
type BlitRamVram struct {
	X, Y, W, H int
	Raw        RawRect
	Clipped    bool

	// pixel data as found in the command words. may be shorter than W*H if
	// the packet was incomplete
	Data []uint16
}

func (BlitRamVram) Name() string      { return "BlitRamVram" }
func (BlitRamVram) Primitive() string { return "blit_ram_to_vram" }
func (BlitRamVram) detail()           {}

func (d BlitRamVram) Describe() []string {
	return []string{
		fmt.Sprintf("X: %d, Y: %d", d.X, d.Y),
		fmt.Sprintf("W: %d, H: %d", d.W, d.H),
	}
}

// BlitVramRam is GP0(C0h). Downloads a rectangle of VRAM to RAM.
type BlitVramRam struct {
	X, Y, W, H int
	Raw        RawRect
	Clipped    bool
}

func (BlitVramRam) Name() string      { return "BlitVramRam" }
func (BlitVramRam) Primitive() string { return "blit_vram_to_ram" }
func (BlitVramRam) detail()           {}

func (d BlitVramRam) Describe() []string {
	return []string{
		fmt.Sprintf("X: %d, Y: %d", d.X, d.Y),
		fmt.Sprintf("W: %d, H: %d", d.W, d.H),
	}
}

// BlendFunction is the semi-transparency mode of a texture page.
type BlendFunction int

// List of valid BlendFunction values.
const (
	HalfBackAndHalfFront BlendFunction = iota
	FullBackAndFullFront
	FullBackSubFullFront
	FullBackAndQuarterFront
)

func (b BlendFunction) String() string {
	switch b {
	case HalfBackAndHalfFront:
		return "HalfBackAndHalfFront"
	case FullBackAndFullFront:
		return "FullBackAndFullFront"
	case FullBackSubFullFront:
		return "FullBackSubFullFront"
	case FullBackAndQuarterFront:
		return "FullBackAndQuarterFront"
	}
	return "Unknown"
}

// Equation returns the blend function as an equation.
func (b BlendFunction) Equation() string {
	switch b {
	case HalfBackAndHalfFront:
		return "50% Back + 50% Front"
	case FullBackAndFullFront:
		return "100% Back + 100% Front"
	case FullBackSubFullFront:
		return "100% Back - 100% Front"
	case FullBackAndQuarterFront:
		return "100% Back + 25% Front"
	}
	return "Unknown"
}

// TexDepth is the colour depth of a texture page.
type TexDepth int

// List of valid TexDepth values.
const (
	Tex4Bits TexDepth = iota
	Tex8Bits
	Tex16Bits
)

func (t TexDepth) String() string {
	switch t {
	case Tex4Bits:
		return "4 bits"
	case Tex8Bits:
		return "8 bits"
	case Tex16Bits:
		return "16 bits"
	}
	return "Unknown"
}

// TexturePage is GP0(E1h).
type TexturePage struct {
	Raw           uint32
	TX, TY        int
	Blend         BlendFunction
	Depth         TexDepth
	Dither        bool
	DrawToDisplay bool
	TexDisable    bool
	XFlip, YFlip  bool
}

func (TexturePage) Name() string      { return "TexturePage" }
func (TexturePage) Primitive() string { return "texture_page" }
func (TexturePage) detail()           {}

func (d TexturePage) Describe() []string {
	return []string{
		fmt.Sprintf("Texture Page X: %d, Texture Page Y: %d", d.TX, d.TY),
		fmt.Sprintf("Blending: %s", d.Blend.Equation()),
		fmt.Sprintf("Texture depth: %s", d.Depth),
		fmt.Sprintf("Dithering: %s", yesNo(d.Dither)),
	}
}

// TextureWindow is GP0(E2h).
type TextureWindow struct {
	Raw        uint32
	X, Y, W, H int
}

func (TextureWindow) Name() string      { return "TextureWindow" }
func (TextureWindow) Primitive() string { return "texture_window" }
func (TextureWindow) detail()           {}

func (d TextureWindow) Describe() []string {
	return []string{
		fmt.Sprintf("X: %d, Y: %d", d.X, d.Y),
		fmt.Sprintf("W: %d, H: %d", d.W, d.H),
	}
}

// DrawingAreaStart is GP0(E3h).
type DrawingAreaStart struct {
	Raw  uint32
	X, Y int
}

func (DrawingAreaStart) Name() string      { return "DrawingAreaStart" }
func (DrawingAreaStart) Primitive() string { return "drawing_area_start" }
func (DrawingAreaStart) detail()           {}

func (d DrawingAreaStart) Describe() []string {
	return []string{fmt.Sprintf("X: %d, Y: %d", d.X, d.Y)}
}

// DrawingAreaEnd is GP0(E4h).
type DrawingAreaEnd struct {
	Raw  uint32
	X, Y int
}

func (DrawingAreaEnd) Name() string      { return "DrawingAreaEnd" }
func (DrawingAreaEnd) Primitive() string { return "drawing_area_end" }
func (DrawingAreaEnd) detail()           {}

func (d DrawingAreaEnd) Describe() []string {
	return []string{fmt.Sprintf("X: %d, Y: %d", d.X, d.Y)}
}

// DrawingOffset is GP0(E5h). The offsets are signed.
type DrawingOffset struct {
	Raw  uint32
	X, Y int
}

func (DrawingOffset) Name() string      { return "DrawingOffset" }
func (DrawingOffset) Primitive() string { return "drawing_offset" }
func (DrawingOffset) detail()           {}

func (d DrawingOffset) Describe() []string {
	return []string{fmt.Sprintf("X: %d, Y: %d", d.X, d.Y)}
}

// MaskBit is GP0(E6h).
type MaskBit struct {
	Raw   uint32
	Set   bool
	Check bool
}

func (MaskBit) Name() string      { return "MaskBit" }
func (MaskBit) Primitive() string { return "mask_bit" }
func (MaskBit) detail()           {}

func (d MaskBit) Describe() []string {
	return []string{fmt.Sprintf("Set: %s, Check: %s", yesNo(d.Set), yesNo(d.Check))}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// ColorHex formats the 24bit colour as a hex string.
func ColorHex(color uint32) string {
	return fmt.Sprintf("0x%06x", color&0xffffff)
}
