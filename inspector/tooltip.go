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

package inspector

import (
	"fmt"

	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/tracefile"
)

// Tooltip returns the lines shown when the mouse hovers over a command.
func Tooltip(cmd *gpu.Command) []string {
	s := []string{
		fmt.Sprintf("%s (%s)", cmd.Name(), cmd.Origin),
		fmt.Sprintf("Frame: %d", cmd.Frame()),
		fmt.Sprintf("Words: %d of %d", len(cmd.Words), cmd.Length),
	}
	if cmd.WordsTruncated {
		s = append(s, "Words truncated")
	}
	if cmd.Detail != nil {
		s = append(s, cmd.Detail.Describe()...)
	}
	if cmd.GTE != nil {
		s = append(s, fmt.Sprintf("GTE: %s at %08x", cmd.GTE.Command, cmd.GTE.PC))
	}
	return s
}

func saveExtension() string {
	return tracefile.DefaultFormat.Extension()
}
