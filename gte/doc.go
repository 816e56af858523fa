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

// Package gte models the trace of the geometry transformation coprocessor.
// Each executed coprocessor instruction can be captured as a State, holding
// snapshots of the register files before and after execution, along with
// any vertex fetches that fed the instruction.
//
// The package only describes the coprocessor, it does not emulate it.
package gte
