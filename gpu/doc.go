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

// Package gpu describes the commands written to the GPU in a form suitable
// for logging. A Command is a common header (where the command came from,
// the raw words, the frame it was issued in) plus a Detail value. The
// concrete type of the Detail value identifies the kind of command and
// holds both the decoded values and the raw values they were decoded from.
//
// The package does not implement the GPU. Commands are executed by an
// Interpreter, which is provided by the host emulator.
package gpu
