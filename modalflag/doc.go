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

// Package modalflag parses command lines made up of modes, each with its own
// set of flags. For example:
//
//	gputrace -statsview HEATMAP -scale 2 frame.json frame.png
//
// The top level flags are parsed first and the first remaining argument is
// matched against the list of modes. Flags for the selected mode are then
// added and the remaining arguments parsed again.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("INFO", "TEXT")
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		...
//	}
//
// Modes are case insensitive and are always reported in upper case.
package modalflag
