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

// Command gputrace inspects frame logs saved by the GPU frame logger.
//
// Usage:
//
//	gputrace [-statsview] [-log] [-version] MODE [flags] files...
//
// The modes are:
//
//	INFO     print the trailer and records of a binary frame log
//	TEXT     print the commands and stats of a JSON frame log
//	CONVERT  convert a JSON frame log to the binary format
//	HEATMAP  draw the coverage of a JSON frame log to a PNG file
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gputrace/logger"
	"github.com/jetsetilly/gputrace/modalflag"
	"github.com/jetsetilly/gputrace/rasterizer"
	"github.com/jetsetilly/gputrace/statsview"
	"github.com/jetsetilly/gputrace/surface"
	"github.com/jetsetilly/gputrace/tracefile"
	"github.com/jetsetilly/gputrace/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run the command line and return the exit value
func run(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	stats := md.AddBool("statsview", false, "launch the statsview server")
	echo := md.AddBool("log", false, "echo log to stdout")
	showVersion := md.AddBool("version", false, "print the version and exit")
	md.AddSubModes("INFO", "TEXT", "CONVERT", "HEATMAP")

	p, err := md.Parse()
	if *showVersion {
		v, r := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
		return 0
	}
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *echo {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		if err := statsview.Launch(output); err != nil {
			fmt.Fprintf(output, "* %v\n", err)
		}
	}

	switch md.Mode() {
	case "INFO":
		err = info(md)
	case "TEXT":
		err = text(md)
	case "CONVERT":
		err = convert(md)
	case "HEATMAP":
		err = heatmap(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return 20
	}

	return 0
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	words := md.AddBool("words", false, "print the packet words of each record")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("binary frame log required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	t, records, err := tracefile.LoadBinary(md.GetArg(0))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(md.Output)
	fmt.Fprintf(w, "entries: %d (record %d bytes, metadata %d bytes, version %d)\n",
		t.EntryCount, t.LogEntrySize, t.MetadataSize, t.MetadataVersion)

	for i, r := range records {
		fmt.Fprintf(w, "%5d frame=%d pc=%08x word=%08x primitive=%02x words=%d\n",
			i, r.Frame, r.PC, r.FirstWord, r.PrimitiveType, r.WordCount)
		if *words {
			n := min(int(r.WordCount), len(r.PacketWords))
			for _, v := range r.PacketWords[:n] {
				fmt.Fprintf(w, "      %08x\n", v)
			}
		}
	}

	return w.Flush()
}

func text(md *modalflag.Modes) error {
	md.NewMode()
	dot := md.AddString("dot", "", "write a graphviz graph of the frame log to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("JSON frame log required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	frame, err := tracefile.LoadText(md.GetArg(0))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(md.Output)
	fmt.Fprintf(w, "frame %d: %d commands, %d GTE states\n", frame.Frame, len(frame.Commands), len(frame.GTE))

	for i, cmd := range frame.Commands {
		var flags strings.Builder
		if !cmd.Enabled {
			flags.WriteString(" [disabled]")
		}
		if cmd.Highlight {
			flags.WriteString(" [highlight]")
		}
		if cmd.WordsTruncated {
			flags.WriteString(" [truncated]")
		}
		fmt.Fprintf(w, "%5d %s %s pc=%08x%s\n", i, cmd.Name(), cmd.Origin, cmd.PC, flags.String())
		if cmd.Detail != nil {
			for _, s := range cmd.Detail.Describe() {
				fmt.Fprintf(w, "      %s\n", s)
			}
		}
	}

	s := frame.Stats
	fmt.Fprintf(w, "triangles: %d (%d textured)\n", s.Triangles, s.TexturedTriangles)
	fmt.Fprintf(w, "rectangles: %d, sprites: %d\n", s.Rectangles, s.Sprites)
	fmt.Fprintf(w, "pixel writes: %d, pixel reads: %d, texel reads: %d\n", s.PixelWrites, s.PixelReads, s.TexelReads)

	if err := w.Flush(); err != nil {
		return err
	}

	if *dot != "" {
		return writeDot(*dot, frame)
	}

	return nil
}

func writeDot(path string, frame *tracefile.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	memviz.Map(w, frame)
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func convert(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("JSON frame log and output file required for %s mode", md)
	}

	frame, err := tracefile.LoadText(md.GetArg(0))
	if err != nil {
		return err
	}

	if err := tracefile.SaveBinary(md.GetArg(1), frame); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d commands written to %s\n", len(frame.Commands), md.GetArg(1))
	return nil
}

func heatmap(md *modalflag.Modes) error {
	md.NewMode()
	read := md.AddBool("read", false, "draw the read heatmap instead of the written heatmap")
	scale := md.AddInt("scale", 1, "scale of the output image")
	all := md.AddBool("all", false, "include disabled commands")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("JSON frame log and PNG file required for %s mode", md)
	}

	frame, err := tracefile.LoadText(md.GetArg(0))
	if err != nil {
		return err
	}

	access := rasterizer.Write
	if *read {
		access = rasterizer.Read
	}

	acc := surface.NewAccumulator(access.String(), 1024, 512)
	for _, cmd := range frame.Commands {
		if cmd.Enabled || *all {
			rasterizer.Draw(acc, cmd, access)
		}
	}

	f, err := os.Create(md.GetArg(1))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := acc.WritePNG(f, *scale); err != nil {
		return errors.Join(err, os.Remove(md.GetArg(1)))
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s heatmap written to %s (maximum %.0f)\n", access, md.GetArg(1), acc.Max())
	return nil
}
