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

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/test"
	"github.com/jetsetilly/gputrace/tracefile"
)

// writeFrame creates a JSON frame log with a fill and a disabled fill
func writeFrame(t *testing.T) string {
	t.Helper()

	var frame tracefile.Frame
	for i, words := range [][]uint32{
		{0x02ff0000, 0x00000000, 0x00100010},
		{0x02ff0000, 0x00000040, 0x00100010},
	} {
		cmd, err := gpu.Decode(words, gpu.DataWrite)
		test.DemandSuccess(t, err)
		cmd.Length = uint32(len(words))
		cmd.PC = 0x80010000 + uint32(i)*4
		test.DemandSuccess(t, cmd.SetFrame(7))
		frame.Stats.Accumulate(cmd)
		frame.Commands = append(frame.Commands, cmd)
	}
	frame.Frame = 7
	frame.Commands[1].Enabled = false

	pth := filepath.Join(t.TempDir(), "frame.json")
	test.DemandSuccess(t, tracefile.SaveText(pth, &frame))
	return pth
}

func TestHelp(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, run([]string{"-help"}, &s), 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "modes: INFO, TEXT, CONVERT, HEATMAP"))
}

func TestVersion(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, run([]string{"-version"}, &s), 0)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "gputrace "))
}

func TestBadMode(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, run([]string{"play"}, &s), 10)
	test.ExpectSuccess(t, strings.HasPrefix(s.String(), "* error"))
}

func TestText(t *testing.T) {
	pth := writeFrame(t)
	dot := filepath.Join(t.TempDir(), "frame.dot")

	var s strings.Builder
	test.DemandEquality(t, run([]string{"text", "-dot", dot, pth}, &s), 0)

	out := s.String()
	test.ExpectSuccess(t, strings.Contains(out, "frame 7: 2 commands, 0 GTE states"))
	test.ExpectSuccess(t, strings.Contains(out, "    0 FastFill DataWrite pc=80010000\n"))
	test.ExpectSuccess(t, strings.Contains(out, "    1 FastFill DataWrite pc=80010004 [disabled]\n"))
	test.ExpectSuccess(t, strings.Contains(out, "pixel writes: 512"))

	b, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(b), "digraph"))
}

func TestTextMissingFile(t *testing.T) {
	var s strings.Builder
	test.ExpectEquality(t, run([]string{"text"}, &s), 20)
	s.Reset()
	test.ExpectEquality(t, run([]string{"text", filepath.Join(t.TempDir(), "missing.json")}, &s), 20)
}

func TestConvertAndInfo(t *testing.T) {
	pth := writeFrame(t)
	bin := filepath.Join(t.TempDir(), "frame.bin")

	var s strings.Builder
	test.DemandEquality(t, run([]string{"convert", pth, bin}, &s), 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "2 commands written"))

	_, err := os.Stat(tracefile.DescriptionPath(bin))
	test.ExpectSuccess(t, err)

	s.Reset()
	test.DemandEquality(t, run([]string{"INFO", "-words", bin}, &s), 0)

	out := s.String()
	test.ExpectSuccess(t, strings.HasPrefix(out, "entries: 2 (record 168 bytes, metadata 32 bytes, version 1)\n"))
	test.ExpectSuccess(t, strings.Contains(out, "    1 frame=7 pc=80010004 word=02ff0000 primitive=02 words=3\n"))
	test.ExpectSuccess(t, strings.Contains(out, "      00100010\n"))
}

func TestHeatmap(t *testing.T) {
	pth := writeFrame(t)
	out := filepath.Join(t.TempDir(), "heatmap.png")

	var s strings.Builder
	test.DemandEquality(t, run([]string{"heatmap", "-scale", "2", pth, out}, &s), 0)
	test.ExpectSuccess(t, strings.Contains(s.String(), "write heatmap written"))

	f, err := os.Open(out)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 2048)
	test.ExpectEquality(t, img.Bounds().Dy(), 1024)

	// only the enabled fill is drawn
	r, _, _, _ := img.At(2, 2).RGBA()
	test.ExpectEquality(t, r, uint32(0xffff))
	r, _, _, _ = img.At(130, 2).RGBA()
	test.ExpectEquality(t, r, uint32(0))

	// bad scale
	s.Reset()
	test.ExpectEquality(t, run([]string{"heatmap", "-scale", "0", pth, out}, &s), 20)
}
