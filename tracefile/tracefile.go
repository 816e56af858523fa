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
	"errors"
	"fmt"

	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/gte"
)

// Sentinel errors. The error returned by any function in the package will
// wrap one of these errors.
var (
	ErrOpen    = errors.New("tracefile: cannot open file")
	ErrWrite   = errors.New("tracefile: write failed")
	ErrRead    = errors.New("tracefile: read failed")
	ErrTrailer = errors.New("tracefile: invalid trailer")
	ErrFormat  = errors.New("tracefile: invalid format")
)

// Frame is a single frame log as seen by the serializer.
type Frame struct {
	Frame    uint64
	GTE      []gte.State
	Commands []*gpu.Command
	Stats    gpu.Stats
}

// Format of a trace file.
type Format int

// List of valid Format values.
const (
	Text Format = iota
	Binary
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case Binary:
		return "binary"
	}
	return "unknown"
}

// Extension returns the file extension normally used for the format. The
// extension does not include the leading dot.
func (f Format) Extension() string {
	if f == Binary {
		return "bin"
	}
	return "json"
}

// Save the frame to the path in the specified format.
func Save(path string, format Format, frame *Frame) error {
	switch format {
	case Text:
		return SaveText(path, frame)
	case Binary:
		return SaveBinary(path, frame)
	}
	return fmt.Errorf("%w: unsupported format (%d)", ErrFormat, format)
}
