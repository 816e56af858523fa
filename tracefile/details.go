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

package tracefile

import "github.com/jetsetilly/gputrace/gpu"

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonRawRect struct {
	X uint16 `json:"x"`
	Y uint16 `json:"y"`
	W uint16 `json:"w"`
	H uint16 `json:"h"`
}

type jsonRawBlit struct {
	SX uint16 `json:"sX"`
	SY uint16 `json:"sY"`
	DX uint16 `json:"dX"`
	DY uint16 `json:"dY"`
	W  uint16 `json:"w"`
	H  uint16 `json:"h"`
}

type jsonPrimitive struct {
	Primitive string `json:"primitive"`
}

type jsonFastFill struct {
	Primitive string      `json:"primitive"`
	Color     string      `json:"color"`
	Rect      jsonRect    `json:"rect"`
	Raw       jsonRawRect `json:"raw"`
	Clipped   bool        `json:"clipped"`
}

type jsonBlitVramVram struct {
	Primitive   string      `json:"primitive"`
	Source      jsonRect    `json:"source"`
	Destination jsonRect    `json:"destination"`
	Raw         jsonRawBlit `json:"raw"`
	Clipped     bool        `json:"clipped"`
}

type jsonBlitRamVram struct {
	Primitive   string      `json:"primitive"`
	Destination jsonRect    `json:"destination"`
	Raw         jsonRawRect `json:"raw"`
	Clipped     bool        `json:"clipped"`
	DataBytes   int         `json:"dataBytes"`
}

type jsonBlitVramRam struct {
	Primitive string      `json:"primitive"`
	Source    jsonRect    `json:"source"`
	Raw       jsonRawRect `json:"raw"`
	Clipped   bool        `json:"clipped"`
}

type jsonTexturePage struct {
	Primitive      string `json:"primitive"`
	Raw            uint32 `json:"raw"`
	TX             int    `json:"tx"`
	TY             int    `json:"ty"`
	BlendFunction  string `json:"blendFunction"`
	Depth          string `json:"depth"`
	Dither         bool   `json:"dither"`
	DrawToDisplay  bool   `json:"drawToDisplay"`
	TextureDisable bool   `json:"textureDisable"`
	XFlip          bool   `json:"xflip"`
	YFlip          bool   `json:"yflip"`
}

type jsonTextureWindow struct {
	Primitive string `json:"primitive"`
	Raw       uint32 `json:"raw"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	W         int    `json:"w"`
	H         int    `json:"h"`
}

type jsonPoint struct {
	Primitive string `json:"primitive"`
	Raw       uint32 `json:"raw"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

type jsonMaskBit struct {
	Primitive string `json:"primitive"`
	Set       bool   `json:"set"`
	Check     bool   `json:"check"`
}

func rawRect(r gpu.RawRect) jsonRawRect {
	return jsonRawRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// details returns the value to be marshalled as the details field of a
// command. the primitive name is always the first field
func details(d gpu.Detail) any {
	switch d := d.(type) {
	case gpu.FastFill:
		return jsonFastFill{
			Primitive: d.Primitive(),
			Color:     gpu.ColorHex(d.Color),
			Rect:      jsonRect{X: d.X, Y: d.Y, W: d.W, H: d.H},
			Raw:       rawRect(d.Raw),
			Clipped:   d.Clipped,
		}
	case gpu.BlitVramVram:
		return jsonBlitVramVram{
			Primitive:   d.Primitive(),
			Source:      jsonRect{X: d.SX, Y: d.SY, W: d.W, H: d.H},
			Destination: jsonRect{X: d.DX, Y: d.DY, W: d.W, H: d.H},
			Raw:         jsonRawBlit(d.Raw),
			Clipped:     d.Clipped,
		}
	case gpu.BlitRamVram:
		return jsonBlitRamVram{
			Primitive:   d.Primitive(),
			Destination: jsonRect{X: d.X, Y: d.Y, W: d.W, H: d.H},
			Raw:         rawRect(d.Raw),
			Clipped:     d.Clipped,
			DataBytes:   len(d.Data) * 2,
		}
	case gpu.BlitVramRam:
		return jsonBlitVramRam{
			Primitive: d.Primitive(),
			Source:    jsonRect{X: d.X, Y: d.Y, W: d.W, H: d.H},
			Raw:       rawRect(d.Raw),
			Clipped:   d.Clipped,
		}
	case gpu.TexturePage:
		return jsonTexturePage{
			Primitive:      d.Primitive(),
			Raw:            d.Raw,
			TX:             d.TX,
			TY:             d.TY,
			BlendFunction:  d.Blend.String(),
			Depth:          d.Depth.String(),
			Dither:         d.Dither,
			DrawToDisplay:  d.DrawToDisplay,
			TextureDisable: d.TexDisable,
			XFlip:          d.XFlip,
			YFlip:          d.YFlip,
		}
	case gpu.TextureWindow:
		return jsonTextureWindow{
			Primitive: d.Primitive(),
			Raw:       d.Raw,
			X:         d.X,
			Y:         d.Y,
			W:         d.W,
			H:         d.H,
		}
	case gpu.DrawingAreaStart:
		return jsonPoint{Primitive: d.Primitive(), Raw: d.Raw, X: d.X, Y: d.Y}
	case gpu.DrawingAreaEnd:
		return jsonPoint{Primitive: d.Primitive(), Raw: d.Raw, X: d.X, Y: d.Y}
	case gpu.DrawingOffset:
		return jsonPoint{Primitive: d.Primitive(), Raw: d.Raw, X: d.X, Y: d.Y}
	case gpu.MaskBit:
		return jsonMaskBit{Primitive: d.Primitive(), Set: d.Set, Check: d.Check}
	}

	return jsonPrimitive{Primitive: d.Primitive()}
}
