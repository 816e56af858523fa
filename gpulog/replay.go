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

package gpulog

import "github.com/jetsetilly/gputrace/gpu"

// Replay the logged frame into the interpreter. VRAM is restored from the
// snapshot if there is one, then every enabled command is executed in the
// order it was logged. The replay ends with a vertical blank.
//
// The log is not changed by Replay() and can be replayed any number of
// times.
func (l *Logger) Replay(target gpu.Interpreter) {
	if l.vram != nil {
		target.PartialUpdateVRAM(0, 0, gpu.VRAMWidth, gpu.VRAMHeight, l.vram.Pixels)
	}
	for _, cmd := range l.commands {
		if cmd.Enabled {
			target.Execute(cmd)
		}
	}
	target.VBlank()
}
