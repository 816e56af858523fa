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

// Package tracefile writes and reads frame logs.
//
// Two formats are supported. The text format is a JSON document containing
// the GTE trace, the commands and the stats of a single frame. The binary
// format is a sequence of fixed size records followed by a trailer. When a
// binary file is saved, a description of the format is written alongside it
// in a file with the ".txt" extension.
//
// The format used by Save() when no format is specified is DefaultFormat. The
// default is the text format unless the program is built with the binarytrace
// build tag.
package tracefile
