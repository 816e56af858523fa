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

// Package paths prepares paths to gputrace resources, such as the
// preferences file and saved frame logs.
//
// The ResourcePath() function prepends the supplied resource with the
// gputrace config directory. On a modern Linux system the following returns
// /home/user/.config/gputrace/traces/frame.json
//
//	pth, err := paths.ResourcePath("traces", "frame.json")
//
// The config directory is found with os.UserConfigDir() from the standard
// library.
package paths
