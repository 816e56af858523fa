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

// data register numbers
const (
	regVXY0 = 0
	regSXY0 = 12
)

// control register numbers
const (
	regRT   = 0
	regTRX  = 5
	regLLM  = 8
	regLCM  = 16
	regOFX  = 24
	regOFY  = 25
	regH    = 26
	regDQA  = 27
	regDQB  = 28
	regZSF3 = 29
	regZSF4 = 30
)

func lo(v uint32) int16 {
	return int16(v & 0xffff)
}

func hi(v uint32) int16 {
	return int16(v >> 16)
}

// a matrix occupies five consecutive control registers, two elements per
// register with the last register only using the lower half
func unpackMatrix(ctrl *[32]uint32, base int) Matrix {
	var m Matrix
	for i := range 9 {
		v := ctrl[base+i/2]
		if i%2 == 0 {
			m[i/3][i%3] = lo(v)
		} else {
			m[i/3][i%3] = hi(v)
		}
	}
	return m
}

// NewSnapshot creates a Snapshot from the data and control register files
// of the coprocessor.
func NewSnapshot(data [32]uint32, ctrl [32]uint32) Snapshot {
	s := Snapshot{
		DataRegisters:    data,
		ControlRegisters: ctrl,
	}

	for i := range 3 {
		xy := data[regVXY0+i*2]
		z := data[regVXY0+i*2+1]
		s.Vertices[i] = [3]int16{lo(xy), hi(xy), lo(z)}

		sxy := data[regSXY0+i]
		s.ScreenCoords[i] = [2]int16{lo(sxy), hi(sxy)}
	}

	s.Rotation = unpackMatrix(&ctrl, regRT)
	s.Light = unpackMatrix(&ctrl, regLLM)
	s.Color = unpackMatrix(&ctrl, regLCM)

	for i := range 3 {
		s.Translation[i] = int32(ctrl[regTRX+i])
	}

	s.OffsetX = int32(ctrl[regOFX])
	s.OffsetY = int32(ctrl[regOFY])
	s.ProjectionPlaneDistance = lo(ctrl[regH])
	s.DepthQueueA = lo(ctrl[regDQA])
	s.DepthQueueB = int32(ctrl[regDQB])
	s.DepthScaleFactor3 = lo(ctrl[regZSF3])
	s.DepthScaleFactor4 = lo(ctrl[regZSF4])

	return s
}
