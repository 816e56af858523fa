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

package gte

// Command is the operation performed by a coprocessor instruction.
type Command int

// List of valid Command values. Unknown is the zero value and is used for
// any instruction that cannot be classified.
const (
	Unknown Command = iota
	RTPT
	RTPS
	NCLIP
	OP
	DPCS
	INTPL
	MVMVA
	NCDS
	CDP
	NCDT
	NCCS
	CC
	NCS
	NCT
	SQR
	DCPL
	DPCT
	AVSZ3
	AVSZ4
	GPL
	GPF
	NCCT
	numCommands
)

var commandNames = [numCommands]string{
	"Unknown",
	"RTPT", "RTPS", "NCLIP", "OP", "DPCS", "INTPL", "MVMVA", "NCDS", "CDP",
	"NCDT", "NCCS", "CC", "NCS", "NCT", "SQR", "DCPL", "DPCT", "AVSZ3",
	"AVSZ4", "GPL", "GPF", "NCCT",
}

func (c Command) String() string {
	if c < 0 || c >= numCommands {
		return commandNames[Unknown]
	}
	return commandNames[c]
}

// the function field of a coprocessor instruction is the lowest six bits
const functionMask = 0x3f

var functions = map[uint32]Command{
	0x01: RTPS,
	0x06: NCLIP,
	0x0c: OP,
	0x10: DPCS,
	0x11: INTPL,
	0x12: MVMVA,
	0x13: NCDS,
	0x14: CDP,
	0x16: NCDT,
	0x1b: NCCS,
	0x1c: CC,
	0x1e: NCS,
	0x20: NCT,
	0x28: SQR,
	0x29: DCPL,
	0x2a: DPCT,
	0x2d: AVSZ3,
	0x2e: AVSZ4,
	0x30: RTPT,
	0x3d: GPF,
	0x3e: GPL,
	0x3f: NCCT,
}

// Classify returns the Command for the coprocessor instruction. Values that
// do not correspond to a known operation classify as Unknown.
func Classify(opcode uint32) Command {
	if c, ok := functions[opcode&functionMask]; ok {
		return c
	}
	return Unknown
}

// ParseCommand returns the Command with the mnemonic s. Returns Unknown if
// the mnemonic is not recognised.
func ParseCommand(s string) Command {
	for i, n := range commandNames {
		if n == s {
			return Command(i)
		}
	}
	return Unknown
}
