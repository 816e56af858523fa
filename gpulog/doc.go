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

// Package gpulog records the GPU commands of a single emulated frame.
//
// The Logger type is the frame log. Commands are added with AddCommand()
// and coprocessor activity is added with RecordGTEState() and
// RecordVertexFetch(). The emulator must call OnFrameBoundary() once per
// vertical sync.
//
// The log only ever contains one frame. The first command or coprocessor
// event to arrive after a frame boundary discards the previous frame and
// takes a new snapshot of VRAM. There is no archive of earlier frames.
//
// When surfaces are enabled with Enable(), every command is also drawn into
// a written heatmap and a read heatmap, showing which areas of VRAM were
// accessed during the frame. A second pair of surfaces shows the coverage
// of highlighted commands.
//
// The logged frame can be replayed into a gpu.Interpreter with Replay() and
// saved with SaveFrameLog().
//
// The Logger is not safe for concurrent use. All methods should be called
// from the emulation goroutine.
package gpulog
