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

	"github.com/jetsetilly/gputrace/gte"
)

// MaxLoggedWords is the maximum number of raw words kept by a Command.
const MaxLoggedWords = 1024

// ErrFrameBound is returned by SetFrame if the frame of the command has
// already been set.
var ErrFrameBound = errors.New("gpu: command already bound to a frame")

// Detail is implemented by every kind of loggable command. The set of
// implementations is closed and the concrete type is the discriminant.
type Detail interface {
	// Name of the command kind, for example "FastFill"
	Name() string

	// Primitive is the snake_case name used in trace files
	Primitive() string

	// Describe returns human readable lines describing the decoded values
	Describe() []string

	detail()
}

// Command is a single logged GPU command.
type Command struct {
	Detail Detail

	Origin     Origin
	Length     uint32
	SourceAddr uint32

	// the raw words of the command. never more than MaxLoggedWords
	Words          []uint32
	WordsTruncated bool

	// program counter at the time the command was logged
	PC uint32

	// the most recent coprocessor state when the command was logged. will be
	// nil if there was no coprocessor activity
	GTE *gte.State

	// whether the command participates in replay
	Enabled bool

	// whether the command participates in the highlight overlay
	Highlight bool

	frame  uint64
	framed bool
}

// NewCommand is the preferred method of initialisation for the Command
// type. The command is enabled for replay by default.
func NewCommand(detail Detail, words []uint32) *Command {
	return &Command{
		Detail:  detail,
		Words:   words,
		Enabled: true,
	}
}

// Decode the words as a command. Words written with the CtrlWrite origin
// are decoded as control commands, all other origins are decoded as data
// packets.
func Decode(words []uint32, origin Origin) (*Command, error) {
	var d Detail
	var err error

	if origin == CtrlWrite {
		if len(words) == 0 {
			return nil, ErrShortPacket
		}
		d, err = DecodeCtrl(words[0])
	} else {
		d, err = DecodeData(words)
	}
	if err != nil {
		return nil, err
	}

	cmd := NewCommand(d, words)
	cmd.Origin = origin
	return cmd, nil
}

// Frame returns the frame the command was logged in.
func (cmd *Command) Frame() uint64 {
	return cmd.frame
}

// SetFrame binds the command to a frame. The frame can only be set once.
func (cmd *Command) SetFrame(frame uint64) error {
	if cmd.framed {
		return ErrFrameBound
	}
	cmd.frame = frame
	cmd.framed = true
	return nil
}

// Name of the command. Returns "Unknown" if the command has no Detail.
func (cmd *Command) Name() string {
	if cmd.Detail == nil {
		return "Unknown"
	}
	return cmd.Detail.Name()
}

// Truncate limits the number of words to MaxLoggedWords. The WordsTruncated
// field is set to reflect whether any words were lost.
func (cmd *Command) Truncate() {
	cmd.WordsTruncated = false
	if len(cmd.Words) > MaxLoggedWords {
		w := make([]uint32, MaxLoggedWords)
		copy(w, cmd.Words)
		cmd.Words = w
		cmd.WordsTruncated = true
	}
}
