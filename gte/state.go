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

// Matrix is a 3x3 fixed point matrix as stored in the coprocessor.
type Matrix [3][3]int16

// Snapshot is the state of the coprocessor at a point in time. The decoded
// fields are derived from the register files, which are also kept in full.
type Snapshot struct {
	Vertices     [3][3]int16
	ScreenCoords [3][2]int16

	Rotation Matrix
	Light    Matrix
	Color    Matrix

	Translation [3]int32

	// projection parameters
	OffsetX                 int32
	OffsetY                 int32
	ProjectionPlaneDistance int16
	DepthQueueA             int16
	DepthQueueB             int32
	DepthScaleFactor3       int16
	DepthScaleFactor4       int16

	DataRegisters    [32]uint32
	ControlRegisters [32]uint32
}

// FetchContext describes a single vertex load into the coprocessor.
type FetchContext struct {
	PC             uint32
	Address        uint32
	BaseRegister   uint32
	BaseValue      uint32
	Offset         int16
	TargetRegister uint32
	Value          uint32
}

// Metadata is additional information attributed to the instruction that
// produced a State.
type Metadata struct {
	VertexFetches []FetchContext
}

// State is the record of a single coprocessor instruction.
type State struct {
	Command Command
	PC      uint32
	Input   Snapshot
	Output  Snapshot

	Metadata Metadata
}

// Clone returns a copy of the State that shares no memory with the
// original.
func (s State) Clone() State {
	if s.Metadata.VertexFetches != nil {
		f := make([]FetchContext, len(s.Metadata.VertexFetches))
		copy(f, s.Metadata.VertexFetches)
		s.Metadata.VertexFetches = f
	}
	return s
}
