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

// CtrlReset is GP1(00h).
type CtrlReset struct{}

func (CtrlReset) Name() string       { return "CtrlReset" }
func (CtrlReset) Primitive() string  { return "ctrl_reset" }
func (CtrlReset) Describe() []string { return nil }
func (CtrlReset) detail()            {}

// CtrlClearFifo is GP1(01h).
type CtrlClearFifo struct{}

func (CtrlClearFifo) Name() string       { return "CtrlClearFifo" }
func (CtrlClearFifo) Primitive() string  { return "ctrl_clear_fifo" }
func (CtrlClearFifo) Describe() []string { return nil }
func (CtrlClearFifo) detail()            {}

// CtrlIrqAck is GP1(02h).
type CtrlIrqAck struct{}

func (CtrlIrqAck) Name() string       { return "CtrlIrqAck" }
func (CtrlIrqAck) Primitive() string  { return "ctrl_irq_ack" }
func (CtrlIrqAck) Describe() []string { return nil }
func (CtrlIrqAck) detail()            {}

// CtrlDisplayEnable is GP1(03h). Note that a raw value of zero enables the
// display.
type CtrlDisplayEnable struct {
	Raw    uint32
	Enable bool
}

func (CtrlDisplayEnable) Name() string      { return "CtrlDisplayEnable" }
func (CtrlDisplayEnable) Primitive() string { return "ctrl_display_enable" }
func (CtrlDisplayEnable) detail()           {}

func (d CtrlDisplayEnable) Describe() []string {
	if d.Enable {
		return []string{"Display Enabled"}
	}
	return []string{"Display Disabled"}
}

// Dma is the DMA direction selected by GP1(04h).
type Dma int

// List of valid Dma values.
const (
	DmaOff Dma = iota
	DmaFifoQuery
	DmaRead
	DmaWrite
)

func (d Dma) String() string {
	switch d {
	case DmaOff:
		return "DMA Off"
	case DmaFifoQuery:
		return "FIFO Query"
	case DmaRead:
		return "DMA Read"
	case DmaWrite:
		return "DMA Write"
	}
	return "Unknown"
}

// CtrlDmaSetting is GP1(04h).
type CtrlDmaSetting struct {
	Raw uint32
	Dma Dma
}

func (CtrlDmaSetting) Name() string      { return "CtrlDmaSetting" }
func (CtrlDmaSetting) Primitive() string { return "ctrl_dma_setting" }
func (CtrlDmaSetting) detail()           {}

func (d CtrlDmaSetting) Describe() []string {
	return []string{d.Dma.String()}
}

// CtrlDisplayStart is GP1(05h).
type CtrlDisplayStart struct {
	Raw  uint32
	X, Y int
}

func (CtrlDisplayStart) Name() string      { return "CtrlDisplayStart" }
func (CtrlDisplayStart) Primitive() string { return "ctrl_display_start" }
func (CtrlDisplayStart) detail()           {}

func (d CtrlDisplayStart) Describe() []string {
	return []string{fmt.Sprintf("X: %d, Y: %d", d.X, d.Y)}
}

// CtrlHorizontalDisplayRange is GP1(06h).
type CtrlHorizontalDisplayRange struct {
	Raw    uint32
	X0, X1 int
}

func (CtrlHorizontalDisplayRange) Name() string      { return "CtrlHorizontalDisplayRange" }
func (CtrlHorizontalDisplayRange) Primitive() string { return "ctrl_horizontal_display_range" }
func (CtrlHorizontalDisplayRange) detail()           {}

func (d CtrlHorizontalDisplayRange) Describe() []string {
	return []string{fmt.Sprintf("X0: %d, X1: %d", d.X0, d.X1)}
}

// CtrlVerticalDisplayRange is GP1(07h).
type CtrlVerticalDisplayRange struct {
	Raw    uint32
	Y0, Y1 int
}

func (CtrlVerticalDisplayRange) Name() string      { return "CtrlVerticalDisplayRange" }
func (CtrlVerticalDisplayRange) Primitive() string { return "ctrl_vertical_display_range" }
func (CtrlVerticalDisplayRange) detail()           {}

func (d CtrlVerticalDisplayRange) Describe() []string {
	return []string{fmt.Sprintf("Y0: %d, Y1: %d", d.Y0, d.Y1)}
}

// HRes is the horizontal resolution selected by GP1(08h).
type HRes int

// List of valid HRes values.
const (
	HR256 HRes = iota
	HR320
	HR512
	HR640
	HR368
	HR384
)

// Pixels returns the width in pixels.
func (h HRes) Pixels() int {
	switch h {
	case HR256:
		return 256
	case HR320:
		return 320
	case HR512:
		return 512
	case HR640:
		return 640
	case HR368:
		return 368
	case HR384:
		return 384
	}
	return 0
}

// VRes is the vertical resolution selected by GP1(08h).
type VRes int

// List of valid VRes values.
const (
	VR240 VRes = iota
	VR480
)

// Pixels returns the height in pixels.
func (v VRes) Pixels() int {
	if v == VR480 {
		return 480
	}
	return 240
}

// VideoMode is the output standard selected by GP1(08h).
type VideoMode int

// List of valid VideoMode values.
const (
	NTSC VideoMode = iota
	PAL
)

func (m VideoMode) String() string {
	if m == PAL {
		return "PAL"
	}
	return "NTSC"
}

// ColorDepth is the display colour depth selected by GP1(08h).
type ColorDepth int

// List of valid ColorDepth values.
const (
	Depth15Bits ColorDepth = iota
	Depth24Bits
)

func (c ColorDepth) String() string {
	if c == Depth24Bits {
		return "24 bits"
	}
	return "15 bits"
}

// CtrlDisplayMode is GP1(08h).
type CtrlDisplayMode struct {
	Raw       uint32
	HRes      HRes
	VRes      VRes
	Mode      VideoMode
	Depth     ColorDepth
	Interlace bool

	// the three width bits as a single value. bit 0 is the extended width
	// bit and bits 1 and 2 are the regular width bits
	WidthRaw int
}

func (CtrlDisplayMode) Name() string      { return "CtrlDisplayMode" }
func (CtrlDisplayMode) Primitive() string { return "ctrl_display_mode" }
func (CtrlDisplayMode) detail()           {}

func (d CtrlDisplayMode) Describe() []string {
	return []string{
		fmt.Sprintf("Horizontal resolution: %d pixels", d.HRes.Pixels()),
		fmt.Sprintf("Extended width mode: %s", yesNo(d.WidthRaw&1 == 1)),
		fmt.Sprintf("Vertical resolution: %d pixels", d.VRes.Pixels()),
		fmt.Sprintf("Output mode: %s", d.Mode),
		fmt.Sprintf("Display depth: %s", d.Depth),
		fmt.Sprintf("Interlaced: %s", yesNo(d.Interlace)),
	}
}

// QueryType is the register requested by GP1(10h).
type QueryType int

// List of valid QueryType values.
const (
	QueryUnknown QueryType = iota
	QueryTextureWindow
	QueryDrawAreaStart
	QueryDrawAreaEnd
	QueryDrawOffset
)

func (q QueryType) String() string {
	switch q {
	case QueryTextureWindow:
		return "Texture Window"
	case QueryDrawAreaStart:
		return "Draw Area Start"
	case QueryDrawAreaEnd:
		return "Draw Area End"
	case QueryDrawOffset:
		return "Draw Offset"
	}
	return "Unknown"
}

// CtrlQuery is GP1(10h).
type CtrlQuery struct {
	Raw uint32
}

func (CtrlQuery) Name() string      { return "CtrlQuery" }
func (CtrlQuery) Primitive() string { return "ctrl_query" }
func (CtrlQuery) detail()           {}

// Type returns the register being queried.
func (d CtrlQuery) Type() QueryType {
	switch d.Raw & 0x07 {
	case 2:
		return QueryTextureWindow
	case 3:
		return QueryDrawAreaStart
	case 4:
		return QueryDrawAreaEnd
	case 5:
		return QueryDrawOffset
	}
	return QueryUnknown
}

func (d CtrlQuery) Describe() []string {
	return []string{d.Type().String()}
}
