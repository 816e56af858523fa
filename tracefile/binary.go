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
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gputrace/gpu"
)

// Sizes of the binary format.
const (
	RecordSize      = 168
	TrailerSize     = 32
	MetadataVersion = 1
)

// the number of packet words stored in a record
const recordWords = 12

// Record is a single command in the binary format. The layout of the struct
// is the layout of the record on disk, in little-endian byte order. The blank
// fields are padding and are always written as zero.
type Record struct {
	Frame         uint32
	PC            uint32
	FirstWord     uint32
	PrimitiveType uint16
	WordCount     uint16
	PacketWords   [recordWords]uint32

	// coprocessor input vertices and output screen coordinates
	VX [4]int16
	VY [4]int16
	VZ [4]int16
	SX [4]int16
	SY [4]int16

	Rotation [3][3]int16
	_        [2]byte

	Translation [3]int32
	OffsetX     int32
	OffsetY     int32
	H           int16
	DQA         int16
	DQB         int16
	ZSF3        int16
	ZSF4        int16

	// reserved for texture information. currently always zero
	Clut  uint16
	TPage uint16
	U     [4]uint8
	V     [4]uint8
	_     [2]byte
}

// NewRecord creates a Record for the command.
func NewRecord(cmd *gpu.Command) Record {
	var r Record

	r.Frame = uint32(cmd.Frame())
	r.PC = cmd.PC
	if len(cmd.Words) > 0 {
		r.FirstWord = cmd.Words[0]
	}
	r.PrimitiveType = uint16(r.FirstWord >> 24)
	r.WordCount = uint16(min(len(cmd.Words), 0xffff))
	copy(r.PacketWords[:], cmd.Words)

	if cmd.GTE != nil {
		in := &cmd.GTE.Input
		out := &cmd.GTE.Output

		for i, v := range in.Vertices {
			r.VX[i] = v[0]
			r.VY[i] = v[1]
			r.VZ[i] = v[2]
		}
		for i, s := range out.ScreenCoords {
			r.SX[i] = s[0]
			r.SY[i] = s[1]
		}

		r.Rotation = in.Rotation
		r.Translation = in.Translation
		r.OffsetX = in.OffsetX
		r.OffsetY = in.OffsetY
		r.H = in.ProjectionPlaneDistance
		r.DQA = in.DepthQueueA
		r.DQB = int16(in.DepthQueueB)
		r.ZSF3 = in.DepthScaleFactor3
		r.ZSF4 = in.DepthScaleFactor4
	}

	return r
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (r Record) MarshalBinary() ([]byte, error) {
	return binary.Append(make([]byte, 0, RecordSize), binary.LittleEndian, r)
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("%w: record is %d bytes (expected %d)", ErrFormat, len(data), RecordSize)
	}
	_, err := binary.Decode(data, binary.LittleEndian, r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return nil
}

// Trailer is written after the last record of a binary file.
type Trailer struct {
	MetadataSize    uint64
	LogEntrySize    uint64
	EntryCount      uint64
	MetadataVersion uint64
}

// NewTrailer returns the trailer for a file with the number of records.
func NewTrailer(count int) Trailer {
	return Trailer{
		MetadataSize:    TrailerSize,
		LogEntrySize:    RecordSize,
		EntryCount:      uint64(count),
		MetadataVersion: MetadataVersion,
	}
}

// Validate the declared sizes and version of the trailer.
func (t Trailer) Validate() error {
	if t.MetadataSize != TrailerSize {
		return fmt.Errorf("%w: metadata size is %d (expected %d)", ErrTrailer, t.MetadataSize, TrailerSize)
	}
	if t.LogEntrySize != RecordSize {
		return fmt.Errorf("%w: entry size is %d (expected %d)", ErrTrailer, t.LogEntrySize, RecordSize)
	}
	if t.MetadataVersion != MetadataVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrTrailer, t.MetadataVersion)
	}
	return nil
}

// WriteBinary writes the commands in the frame as a sequence of records
// followed by the trailer. The GTE trace and stats are not part of the
// binary format.
func WriteBinary(w io.Writer, frame *Frame) (Trailer, error) {
	for _, cmd := range frame.Commands {
		b, err := NewRecord(cmd).MarshalBinary()
		if err != nil {
			return Trailer{}, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		if _, err := w.Write(b); err != nil {
			return Trailer{}, fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	t := NewTrailer(len(frame.Commands))
	if err := binary.Write(w, binary.LittleEndian, t); err != nil {
		return Trailer{}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return t, nil
}

// DescriptionPath returns the path of the description file written
// alongside a binary file.
func DescriptionPath(path string) string {
	desc := strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
	if desc == path {
		desc = path + ".txt"
	}
	return desc
}

// SaveBinary writes the frame to the path in the binary format. A
// description of the format is also written, to the path returned by
// DescriptionPath().
func SaveBinary(path string, frame *Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	t, err := WriteBinary(w, frame)
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	err = os.WriteFile(DescriptionPath(path), []byte(Description(t)), 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// offsets of the record fields for the description file
var recordLayout = []struct {
	offset int
	size   int
	field  string
}{
	{0, 4, "frame u32"},
	{4, 4, "pc u32"},
	{8, 4, "first word u32"},
	{12, 2, "primitive type u16 (first word >> 24)"},
	{14, 2, "word count u16"},
	{16, 48, "packet words [12]u32"},
	{64, 8, "vx [4]i16"},
	{72, 8, "vy [4]i16"},
	{80, 8, "vz [4]i16"},
	{88, 8, "sx [4]i16"},
	{96, 8, "sy [4]i16"},
	{104, 18, "rotation [3][3]i16"},
	{122, 2, "padding"},
	{124, 12, "translation [3]i32"},
	{136, 4, "ofx i32"},
	{140, 4, "ofy i32"},
	{144, 2, "h i16"},
	{146, 2, "dqa i16"},
	{148, 2, "dqb i16 (low 16 bits)"},
	{150, 2, "zsf3 i16"},
	{152, 2, "zsf4 i16"},
	{154, 2, "clut u16"},
	{156, 2, "tpage u16"},
	{158, 4, "u [4]u8"},
	{162, 4, "v [4]u8"},
	{166, 2, "padding"},
}

// Description returns the text written to the description file.
func Description(t Trailer) string {
	s := strings.Builder{}
	s.WriteString("GPU frame log metadata\n")
	s.WriteString(fmt.Sprintf("Entry count: %d\n", t.EntryCount))
	s.WriteString(fmt.Sprintf("LogEntry size (bytes): %d\n", t.LogEntrySize))
	s.WriteString(fmt.Sprintf("Metadata block size (bytes): %d\n", t.MetadataSize))
	s.WriteString(fmt.Sprintf("Metadata version: %d\n", t.MetadataVersion))
	s.WriteString("\n")
	s.WriteString("Record layout (little-endian, offset size field):\n")
	for _, l := range recordLayout {
		s.WriteString(fmt.Sprintf("  %3d %2d %s\n", l.offset, l.size, l.field))
	}
	s.WriteString("\n")
	s.WriteString("The metadata block follows the last record and is four u64 values in the order listed above.\n")
	s.WriteString("Notes: padding bytes are always zero; consumers should validate the declared sizes before interpreting fields.\n")
	return s.String()
}

// ReadBinary reads a file in the binary format. The trailer is validated
// before any records are read.
func ReadBinary(r io.ReadSeeker) (Trailer, []Record, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return Trailer{}, nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if size < TrailerSize {
		return Trailer{}, nil, fmt.Errorf("%w: file is too short (%d bytes)", ErrTrailer, size)
	}

	if _, err := r.Seek(size-TrailerSize, io.SeekStart); err != nil {
		return Trailer{}, nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	var t Trailer
	if err := binary.Read(r, binary.LittleEndian, &t); err != nil {
		return Trailer{}, nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if err := t.Validate(); err != nil {
		return Trailer{}, nil, err
	}

	body := uint64(size - TrailerSize)
	if body%RecordSize != 0 || t.EntryCount != body/RecordSize {
		return Trailer{}, nil, fmt.Errorf("%w: %d entries do not fit %d bytes", ErrTrailer, t.EntryCount, body)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Trailer{}, nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	records := make([]Record, t.EntryCount)
	b := make([]byte, RecordSize)
	for i := range records {
		if _, err := io.ReadFull(r, b); err != nil {
			return Trailer{}, nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		if err := records[i].UnmarshalBinary(b); err != nil {
			return Trailer{}, nil, err
		}
	}

	return t, records, nil
}

// LoadBinary opens the file and reads it with ReadBinary().
func LoadBinary(path string) (Trailer, []Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Trailer{}, nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()
	return ReadBinary(f)
}
