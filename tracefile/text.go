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

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/gte"
)

// hex is a uint32 that is represented in JSON as a hex string
type hex uint32

func (h hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(fmt.Sprintf("0x%08x", uint32(h)))
}

func (h *hex) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return err
	}
	*h = hex(v)
	return nil
}

type jsonSnapshot struct {
	Vertices                [3][3]int16 `json:"vertices"`
	ScreenCoords            [3][2]int16 `json:"screenCoords"`
	Rotation                gte.Matrix  `json:"rotation"`
	Light                   gte.Matrix  `json:"light"`
	Color                   gte.Matrix  `json:"color"`
	Translation             [3]int32    `json:"translation"`
	OffsetX                 int32       `json:"offsetX"`
	OffsetY                 int32       `json:"offsetY"`
	ProjectionPlaneDistance int16       `json:"projectionPlaneDistance"`
	DepthQueueA             int16       `json:"depthQueueA"`
	DepthQueueB             int32       `json:"depthQueueB"`
	DepthScaleFactor3       int16       `json:"depthScaleFactor3"`
	DepthScaleFactor4       int16       `json:"depthScaleFactor4"`
	DataRegisters           [32]uint32  `json:"dataRegisters"`
	ControlRegisters        [32]uint32  `json:"controlRegisters"`
}

type jsonFetch struct {
	PC             hex    `json:"pc"`
	Address        hex    `json:"address"`
	BaseRegister   uint32 `json:"baseRegister"`
	BaseValue      hex    `json:"baseValue"`
	Offset         int16  `json:"offset"`
	TargetRegister uint32 `json:"targetRegister"`
	Value          hex    `json:"value"`
}

type jsonGTE struct {
	Command       string       `json:"command"`
	PC            hex          `json:"pc"`
	Input         jsonSnapshot `json:"input"`
	Output        jsonSnapshot `json:"output"`
	VertexFetches []jsonFetch  `json:"vertexFetches"`
}

type jsonCommand struct {
	Type           string          `json:"type"`
	Origin         string          `json:"origin"`
	Frame          uint64          `json:"frame"`
	PC             hex             `json:"pc"`
	SourceAddr     hex             `json:"sourceAddr"`
	Length         uint32          `json:"length"`
	Words          []uint32        `json:"words"`
	WordsTruncated bool            `json:"wordsTruncated"`
	Enabled        bool            `json:"enabled"`
	Highlight      bool            `json:"highlight"`
	GTE            *jsonGTE        `json:"gte,omitempty"`
	Details        json.RawMessage `json:"details,omitempty"`
}

type jsonStats struct {
	Triangles         uint64 `json:"triangles"`
	TexturedTriangles uint64 `json:"texturedTriangles"`
	Rectangles        uint64 `json:"rectangles"`
	Sprites           uint64 `json:"sprites"`
	PixelWrites       uint64 `json:"pixelWrites"`
	PixelReads        uint64 `json:"pixelReads"`
	TexelReads        uint64 `json:"texelReads"`
}

type jsonDocument struct {
	Frame    uint64        `json:"frame"`
	GTE      []jsonGTE     `json:"gte"`
	Commands []jsonCommand `json:"commands"`
	Stats    jsonStats     `json:"stats"`
}

func toJSONSnapshot(s gte.Snapshot) jsonSnapshot {
	return jsonSnapshot{
		Vertices:                s.Vertices,
		ScreenCoords:            s.ScreenCoords,
		Rotation:                s.Rotation,
		Light:                   s.Light,
		Color:                   s.Color,
		Translation:             s.Translation,
		OffsetX:                 s.OffsetX,
		OffsetY:                 s.OffsetY,
		ProjectionPlaneDistance: s.ProjectionPlaneDistance,
		DepthQueueA:             s.DepthQueueA,
		DepthQueueB:             s.DepthQueueB,
		DepthScaleFactor3:       s.DepthScaleFactor3,
		DepthScaleFactor4:       s.DepthScaleFactor4,
		DataRegisters:           s.DataRegisters,
		ControlRegisters:        s.ControlRegisters,
	}
}

func (s jsonSnapshot) snapshot() gte.Snapshot {
	return gte.Snapshot{
		Vertices:                s.Vertices,
		ScreenCoords:            s.ScreenCoords,
		Rotation:                s.Rotation,
		Light:                   s.Light,
		Color:                   s.Color,
		Translation:             s.Translation,
		OffsetX:                 s.OffsetX,
		OffsetY:                 s.OffsetY,
		ProjectionPlaneDistance: s.ProjectionPlaneDistance,
		DepthQueueA:             s.DepthQueueA,
		DepthQueueB:             s.DepthQueueB,
		DepthScaleFactor3:       s.DepthScaleFactor3,
		DepthScaleFactor4:       s.DepthScaleFactor4,
		DataRegisters:           s.DataRegisters,
		ControlRegisters:        s.ControlRegisters,
	}
}

func toJSONGTE(s *gte.State) jsonGTE {
	j := jsonGTE{
		Command:       s.Command.String(),
		PC:            hex(s.PC),
		Input:         toJSONSnapshot(s.Input),
		Output:        toJSONSnapshot(s.Output),
		VertexFetches: make([]jsonFetch, 0, len(s.Metadata.VertexFetches)),
	}
	for _, f := range s.Metadata.VertexFetches {
		j.VertexFetches = append(j.VertexFetches, jsonFetch{
			PC:             hex(f.PC),
			Address:        hex(f.Address),
			BaseRegister:   f.BaseRegister,
			BaseValue:      hex(f.BaseValue),
			Offset:         f.Offset,
			TargetRegister: f.TargetRegister,
			Value:          hex(f.Value),
		})
	}
	return j
}

func (j jsonGTE) state() gte.State {
	s := gte.State{
		Command: gte.ParseCommand(j.Command),
		PC:      uint32(j.PC),
		Input:   j.Input.snapshot(),
		Output:  j.Output.snapshot(),
	}
	for _, f := range j.VertexFetches {
		s.Metadata.VertexFetches = append(s.Metadata.VertexFetches, gte.FetchContext{
			PC:             uint32(f.PC),
			Address:        uint32(f.Address),
			BaseRegister:   f.BaseRegister,
			BaseValue:      uint32(f.BaseValue),
			Offset:         f.Offset,
			TargetRegister: f.TargetRegister,
			Value:          uint32(f.Value),
		})
	}
	return s
}

func toJSONCommand(cmd *gpu.Command) (jsonCommand, error) {
	j := jsonCommand{
		Type:           cmd.Name(),
		Origin:         cmd.Origin.String(),
		Frame:          cmd.Frame(),
		PC:             hex(cmd.PC),
		SourceAddr:     hex(cmd.SourceAddr),
		Length:         cmd.Length,
		Words:          cmd.Words,
		WordsTruncated: cmd.WordsTruncated,
		Enabled:        cmd.Enabled,
		Highlight:      cmd.Highlight,
	}
	if j.Words == nil {
		j.Words = []uint32{}
	}

	if cmd.GTE != nil {
		g := toJSONGTE(cmd.GTE)
		j.GTE = &g
	}

	if cmd.Detail != nil {
		d, err := json.Marshal(details(cmd.Detail))
		if err != nil {
			return jsonCommand{}, err
		}
		j.Details = d
	}

	return j, nil
}

// WriteText writes the frame as a JSON document.
func WriteText(w io.Writer, frame *Frame) error {
	doc := jsonDocument{
		Frame:    frame.Frame,
		GTE:      make([]jsonGTE, 0, len(frame.GTE)),
		Commands: make([]jsonCommand, 0, len(frame.Commands)),
		Stats:    jsonStats(frame.Stats),
	}

	for i := range frame.GTE {
		doc.GTE = append(doc.GTE, toJSONGTE(&frame.GTE[i]))
	}

	for _, cmd := range frame.Commands {
		j, err := toJSONCommand(cmd)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		doc.Commands = append(doc.Commands, j)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// SaveText writes the frame to the path as a JSON document.
func SaveText(path string, frame *Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteText(w, frame); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// ReadText reads a JSON document written by WriteText. Commands are rebuilt
// by decoding the stored words, so the details of a command with truncated
// words may differ from the details of the command that was written.
func ReadText(r io.Reader) (*Frame, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	frame := &Frame{
		Frame:    doc.Frame,
		Stats:    gpu.Stats(doc.Stats),
		Commands: make([]*gpu.Command, 0, len(doc.Commands)),
	}

	for _, g := range doc.GTE {
		frame.GTE = append(frame.GTE, g.state())
	}

	for i, j := range doc.Commands {
		origin, ok := gpu.ParseOrigin(j.Origin)
		if !ok {
			return nil, fmt.Errorf("%w: command %d: unknown origin %q", ErrFormat, i, j.Origin)
		}

		cmd, err := gpu.Decode(j.Words, origin)
		if err != nil {
			return nil, fmt.Errorf("%w: command %d: %w", ErrFormat, i, err)
		}
		if cmd.Name() != j.Type {
			return nil, fmt.Errorf("%w: command %d: words decode as %s not %s", ErrFormat, i, cmd.Name(), j.Type)
		}

		cmd.PC = uint32(j.PC)
		cmd.SourceAddr = uint32(j.SourceAddr)
		cmd.Length = j.Length
		cmd.WordsTruncated = j.WordsTruncated
		cmd.Enabled = j.Enabled
		cmd.Highlight = j.Highlight
		if j.GTE != nil {
			s := j.GTE.state()
			cmd.GTE = &s
		}
		_ = cmd.SetFrame(j.Frame)

		frame.Commands = append(frame.Commands, cmd)
	}

	return frame, nil
}

// LoadText opens the file and reads it with ReadText().
func LoadText(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()
	return ReadText(f)
}
