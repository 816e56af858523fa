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

// Package test contains helper functions to remove common boilerplate to
// make testing easier.
//
// The ExpectEquality() function is the most useful. It tests for equality
// between any two comparable values of the same type and reports a test
// error if they differ.
//
// The ExpectSuccess() and ExpectFailure() functions test for "success"
// values. For bool values success is true, for error values success is nil.
//
// The Demand*() variants are equivalent but stop the test immediately on
// failure. They should be used when the rest of the test makes no sense if
// the demanded condition does not hold.
//
// The optional tags arguments are used to identify the failing test in
// loops. They are printed before the error message.
package test
