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

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the decoding functions.
var (
	ErrUnknownCommand = errors.New("gpu: unknown command")
	ErrShortPacket    = errors.New("gpu: short packet")
)

// dimensions of VRAM in pixels
const (
	VRAMWidth  = 1024
	VRAMHeight = 512
)

func rawRect(xy, wh uint32) RawRect {
	return RawRect{
		X: uint16(xy),
		Y: uint16(xy >> 16),
		W: uint16(wh),
		H: uint16(wh >> 16),
	}
}

// the common decoding of rectangles used by the three transfer commands. a
// size of zero means the maximum size
func transferRect(r RawRect) (x, y, w, h int) {
	x = int(r.X & 0x3ff)
	y = int(r.Y & 0x1ff)
	w = int((uint32(r.W)-1)&0x3ff) + 1
	h = int((uint32(r.H)-1)&0x1ff) + 1
	return x, y, w, h
}

// clip a rectangle to the VRAM bounds. returns true if the rectangle was
// changed
func clip(x, y int, w, h *int) bool {
	clipped := false
	if x+*w > VRAMWidth {
		*w = VRAMWidth - x
		clipped = true
	}
	if y+*h > VRAMHeight {
		*h = VRAMHeight - y
		clipped = true
	}
	return clipped
}

func signExtend11(v uint32) int {
	v &= 0x7ff
	if v&0x400 != 0 {
		return int(v) - 0x800
	}
	return int(v)
}

// DecodeData decodes a GP0 packet. The first word contains the command in
// the top eight bits. Only the commands in the logging catalogue are
// decoded, everything else returns ErrUnknownCommand.
func DecodeData(words []uint32) (Detail, error) {
	if len(words) == 0 {
		return nil, ErrShortPacket
	}

	need := func(n int) error {
		if len(words) < n {
			return fmt.Errorf("%w: %d words for command %02xh (need %d)", ErrShortPacket, len(words), words[0]>>24, n)
		}
		return nil
	}

	cmd := words[0] >> 24
	raw := words[0] & 0xffffff

	switch {
	case cmd == 0x01:
		return ClearCache{}, nil

	case cmd == 0x02:
		if err := need(3); err != nil {
			return nil, err
		}
		d := FastFill{
			Color: raw,
			Raw:   rawRect(words[1], words[2]),
		}
		d.X = int(d.Raw.X & 0x3f0)
		d.Y = int(d.Raw.Y & 0x1ff)
		d.W = int(((d.Raw.W & 0x3ff) + 0x0f) &^ 0x0f)
		d.H = int(d.Raw.H & 0x1ff)
		d.Clipped = clip(d.X, d.Y, &d.W, &d.H)
		return d, nil

	case cmd >= 0x80 && cmd <= 0x9f:
		if err := need(4); err != nil {
			return nil, err
		}
		d := BlitVramVram{
			Raw: RawBlit{
				SX: uint16(words[1]), SY: uint16(words[1] >> 16),
				DX: uint16(words[2]), DY: uint16(words[2] >> 16),
				W: uint16(words[3]), H: uint16(words[3] >> 16),
			},
		}
		d.SX, d.SY, d.W, d.H = transferRect(RawRect{X: d.Raw.SX, Y: d.Raw.SY, W: d.Raw.W, H: d.Raw.H})
		d.DX = int(d.Raw.DX & 0x3ff)
		d.DY = int(d.Raw.DY & 0x1ff)
		d.Clipped = clip(d.SX, d.SY, &d.W, &d.H)
		if clip(d.DX, d.DY, &d.W, &d.H) {
			d.Clipped = true
		}
		return d, nil

	case cmd >= 0xa0 && cmd <= 0xbf:
		if err := need(3); err != nil {
			return nil, err
		}
		d := BlitRamVram{
			Raw: rawRect(words[1], words[2]),
		}
		d.X, d.Y, d.W, d.H = transferRect(d.Raw)

		// pixel data is taken before clipping because the packet always
		// contains the full unclipped rectangle
		n := d.W * d.H
		d.Data = make([]uint16, 0, n)
		for _, w := range words[3:] {
			if len(d.Data) >= n {
				break
			}
			d.Data = append(d.Data, uint16(w))
			if len(d.Data) < n {
				d.Data = append(d.Data, uint16(w>>16))
			}
		}

		d.Clipped = clip(d.X, d.Y, &d.W, &d.H)
		return d, nil

	case cmd >= 0xc0 && cmd <= 0xdf:
		if err := need(3); err != nil {
			return nil, err
		}
		d := BlitVramRam{
			Raw: rawRect(words[1], words[2]),
		}
		d.X, d.Y, d.W, d.H = transferRect(d.Raw)
		d.Clipped = clip(d.X, d.Y, &d.W, &d.H)
		return d, nil

	case cmd == 0xe1:
		d := TexturePage{
			Raw:           raw,
			TX:            int(raw&0x0f) * 64,
			TY:            int((raw>>4)&0x01) * 256,
			Blend:         BlendFunction((raw >> 5) & 0x03),
			Dither:        (raw>>9)&0x01 == 0x01,
			DrawToDisplay: (raw>>10)&0x01 == 0x01,
			TexDisable:    (raw>>11)&0x01 == 0x01,
			XFlip:         (raw>>12)&0x01 == 0x01,
			YFlip:         (raw>>13)&0x01 == 0x01,
		}

		// the reserved depth value behaves as 16 bits
		switch (raw >> 7) & 0x03 {
		case 0:
			d.Depth = Tex4Bits
		case 1:
			d.Depth = Tex8Bits
		default:
			d.Depth = Tex16Bits
		}
		return d, nil

	case cmd == 0xe2:
		return TextureWindow{
			Raw: raw,
			W:   int(raw&0x1f) * 8,
			H:   int((raw>>5)&0x1f) * 8,
			X:   int((raw>>10)&0x1f) * 8,
			Y:   int((raw>>15)&0x1f) * 8,
		}, nil

	case cmd == 0xe3:
		return DrawingAreaStart{
			Raw: raw,
			X:   int(raw & 0x3ff),
			Y:   int((raw >> 10) & 0x1ff),
		}, nil

	case cmd == 0xe4:
		return DrawingAreaEnd{
			Raw: raw,
			X:   int(raw & 0x3ff),
			Y:   int((raw >> 10) & 0x1ff),
		}, nil

	case cmd == 0xe5:
		return DrawingOffset{
			Raw: raw,
			X:   signExtend11(raw),
			Y:   signExtend11(raw >> 11),
		}, nil

	case cmd == 0xe6:
		return MaskBit{
			Raw:   raw,
			Set:   raw&0x01 == 0x01,
			Check: raw&0x02 == 0x02,
		}, nil
	}

	return nil, fmt.Errorf("%w: GP0(%02xh)", ErrUnknownCommand, cmd)
}

// DecodeCtrl decodes a GP1 word.
func DecodeCtrl(word uint32) (Detail, error) {
	cmd := (word >> 24) & 0x3f
	raw := word & 0xffffff

	switch {
	case cmd == 0x00:
		return CtrlReset{}, nil
	case cmd == 0x01:
		return CtrlClearFifo{}, nil
	case cmd == 0x02:
		return CtrlIrqAck{}, nil
	case cmd == 0x03:
		return CtrlDisplayEnable{Raw: raw, Enable: raw&0x01 == 0}, nil
	case cmd == 0x04:
		return CtrlDmaSetting{Raw: raw, Dma: Dma(raw & 0x03)}, nil
	case cmd == 0x05:
		return CtrlDisplayStart{
			Raw: raw,
			X:   int(raw & 0x3fe),
			Y:   int((raw >> 10) & 0x1ff),
		}, nil
	case cmd == 0x06:
		return CtrlHorizontalDisplayRange{
			Raw: raw,
			X0:  int(raw & 0xfff),
			X1:  int((raw >> 12) & 0xfff),
		}, nil
	case cmd == 0x07:
		return CtrlVerticalDisplayRange{
			Raw: raw,
			Y0:  int(raw & 0x3ff),
			Y1:  int((raw >> 10) & 0x3ff),
		}, nil
	case cmd == 0x08:
		return decodeDisplayMode(raw), nil
	case cmd >= 0x10 && cmd <= 0x1f:
		return CtrlQuery{Raw: raw}, nil
	}

	return nil, fmt.Errorf("%w: GP1(%02xh)", ErrUnknownCommand, cmd)
}

func decodeDisplayMode(raw uint32) CtrlDisplayMode {
	d := CtrlDisplayMode{Raw: raw}

	// bit 6 selects the extended widths, which replace the regular widths
	// selected by bits 0 and 1
	if (raw>>6)&0x01 == 0x01 {
		switch raw & 0x03 {
		case 0:
			d.HRes = HR368
		case 1:
			d.HRes = HR384
		case 2:
			d.HRes = HR512
		case 3:
			d.HRes = HR640
		}
	} else {
		d.HRes = HRes(raw & 0x03)
	}

	d.VRes = VRes((raw >> 2) & 0x01)
	d.Mode = VideoMode((raw >> 3) & 0x01)
	d.Depth = ColorDepth((raw >> 4) & 0x01)
	d.Interlace = (raw>>5)&0x01 == 0x01
	d.WidthRaw = int(((raw >> 6) & 0x01) | ((raw & 0x03) << 1))

	return d
}
