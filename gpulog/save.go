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

import (
	"fmt"
	"io"
	"slices"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gputrace/gte"
	"github.com/jetsetilly/gputrace/logger"
	"github.com/jetsetilly/gputrace/tracefile"
)

// Snapshot returns the current contents of the log for serialisation. The
// command pointers are shared with the log.
func (l *Logger) Snapshot() *tracefile.Frame {
	f := &tracefile.Frame{
		Frame:    l.lastFrame,
		GTE:      make([]gte.State, 0, len(l.gteTrace)),
		Commands: slices.Clone(l.commands),
		Stats:    l.stats,
	}
	for _, s := range l.gteTrace {
		f.GTE = append(f.GTE, s.Clone())
	}
	return f
}

// SaveFrameLog saves the log to the path using tracefile.DefaultFormat.
func (l *Logger) SaveFrameLog(path string) error {
	err := tracefile.Save(path, tracefile.DefaultFormat, l.Snapshot())
	if err != nil {
		logger.Logf(logger.Allow, logTag, "save failed: %v", err)
		return fmt.Errorf("gpulog: %w", err)
	}
	logger.Logf(logger.Allow, logTag, "frame %d saved to %s (%s)", l.lastFrame, path, tracefile.DefaultFormat)
	return nil
}

// errWriter records the first error returned by the underlying writer
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// WriteDot writes the object graph of the logged frame in graphviz format.
// Useful for debugging. The VRAM snapshot is not included.
func (l *Logger) WriteDot(w io.Writer) error {
	ew := &errWriter{w: w}
	memviz.Map(ew, l.Snapshot())
	if ew.err != nil {
		return fmt.Errorf("gpulog: %w", ew.err)
	}
	return nil
}
