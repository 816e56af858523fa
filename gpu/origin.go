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

// Origin indicates how a command reached the GPU.
type Origin int

// List of valid Origin values.
const (
	DataWrite Origin = iota
	CtrlWrite
	DirectDMA
	ChainDMA
	Replay
	numOrigins
)

var originNames = [numOrigins]string{
	"DataWrite",
	"CtrlWrite",
	"DirectDMA",
	"ChainDMA",
	"Replay",
}

func (o Origin) String() string {
	if o < 0 || o >= numOrigins {
		return "Unknown"
	}
	return originNames[o]
}

// ParseOrigin returns the Origin with the name s.
func ParseOrigin(s string) (Origin, bool) {
	for i, n := range originNames {
		if n == s {
			return Origin(i), true
		}
	}
	return DataWrite, false
}
