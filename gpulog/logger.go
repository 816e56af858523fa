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
	"errors"
	"fmt"
	"iter"

	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/gte"
	"github.com/jetsetilly/gputrace/logger"
)

// ErrIndex is returned when a command index is out of range.
var ErrIndex = errors.New("gpulog: command index out of range")

// the tag used for all log entries made by the package
const logTag = "gpulog"

// ContextProvider is implemented by the emulated CPU.
type ContextProvider interface {
	// PC returns the current value of the program counter
	PC() uint32
}

// Environment contains the collaborators of the Logger. Any of the fields
// can be nil.
type Environment struct {
	// source of VRAM snapshots. if nil then no snapshot is taken and replay
	// will not restore VRAM
	VRAM gpu.VRAMProvider

	// source of the program counter for new commands
	Context ContextProvider

	// called on a frame boundary if the BreakOnVSync preference is set
	Pause func()
}

// Logger is the log of GPU commands for the current frame.
type Logger struct {
	prefs *Preferences
	env   Environment

	// the frame counter is advanced by OnFrameBoundary(). lastFrame is the
	// frame of the log contents
	frameCounter uint64
	lastFrame    uint64
	started      bool

	// commands in the order they were added
	commands []*gpu.Command
	stats    gpu.Stats

	// all coprocessor states recorded during the frame
	gteTrace []gte.State

	// vertex fetches that have not yet been attached to a coprocessor state
	pending []gte.FetchContext

	// the most recent coprocessor state. attached to every new command
	lastGTE *gte.State

	// snapshot of VRAM at the start of the frame
	vram *gpu.VRAM

	// drawing surfaces. will be nil if surfaces are not enabled
	surfaces *surfaces
}

// NewLogger is the preferred method of initialisation for the Logger type.
// If prefs is nil then the default preferences are used.
func NewLogger(prefs *Preferences, env Environment) *Logger {
	if prefs == nil {
		prefs = NewPreferences()
	}
	return &Logger{
		prefs: prefs,
		env:   env,
	}
}

// Preferences returns the preferences used by the Logger.
func (l *Logger) Preferences() *Preferences {
	return l.prefs
}

// OnFrameBoundary should be called by the emulator at the vertical sync.
// The log is not changed until the next command or coprocessor event
// arrives.
func (l *Logger) OnFrameBoundary() {
	l.frameCounter++
	if l.prefs.breakOnVSync() && l.env.Pause != nil {
		l.env.Pause()
	}
}

// FrameCounter returns the number of frame boundaries seen by the Logger.
func (l *Logger) FrameCounter() uint64 {
	return l.frameCounter
}

// checkFrame discards the contents of the log if the frame counter has
// changed since the log was started
func (l *Logger) checkFrame() {
	if l.started && l.lastFrame == l.frameCounter {
		return
	}
	l.started = true
	l.lastFrame = l.frameCounter

	l.reset()

	if l.env.VRAM != nil {
		if l.vram != nil {
			l.env.VRAM.ReleaseVRAM(l.vram)
		}
		l.vram = l.env.VRAM.AcquireVRAM()
		if l.vram == nil {
			logger.Logf(logger.Allow, logTag, "no VRAM snapshot for frame %d", l.lastFrame)
		}
	}

	if l.surfaces != nil {
		l.surfaces.clear()
	}
}

// reset the contents of the log for the current frame
func (l *Logger) reset() {
	clear(l.commands)
	l.commands = l.commands[:0]
	l.stats = gpu.Stats{}
	l.gteTrace = l.gteTrace[:0]
	l.pending = l.pending[:0]
	l.lastGTE = nil
}

// Clear the log. The VRAM snapshot is kept.
func (l *Logger) Clear() {
	l.reset()
	l.lastFrame = l.frameCounter
	l.started = true
	if l.surfaces != nil {
		l.surfaces.clear()
	}
}

// RecordGTEState adds a coprocessor instruction to the log. Any pending
// vertex fetches are attached to the state if LogVertexFetches is set.
//
// The state is attached to every command added after it, until the next
// call to RecordGTEState(). The state is added to the GTE trace if either
// LogGTEStates or LogVertexFetches is set.
func (l *Logger) RecordGTEState(state gte.State) {
	if !l.prefs.enabled() && !l.prefs.logGTEStates() && !l.prefs.logVertexFetches() {
		return
	}

	l.checkFrame()

	state = state.Clone()
	if l.prefs.logVertexFetches() && len(l.pending) > 0 {
		state.Metadata.VertexFetches = make([]gte.FetchContext, len(l.pending))
		copy(state.Metadata.VertexFetches, l.pending)
	}
	l.pending = l.pending[:0]

	l.lastGTE = &state
	if l.prefs.logGTEStates() || l.prefs.logVertexFetches() {
		l.gteTrace = append(l.gteTrace, state)
	}
}

// RecordVertexFetch adds a vertex fetch to the list of pending fetches. The
// fetch is ignored if LogVertexFetches is not set.
func (l *Logger) RecordVertexFetch(fetch gte.FetchContext) {
	if !l.prefs.logVertexFetches() {
		return
	}
	l.checkFrame()
	l.pending = append(l.pending, fetch)
}

// AddCommand adds a command to the log. The Logger takes ownership of the
// command. Nothing happens if the Enabled preference is not set.
//
// The value argument is the word that triggered the command, or the source
// address for DMA transfers. If the command has no words then the value is
// used as the only word. Commands with more than gpu.MaxLoggedWords words
// are truncated.
func (l *Logger) AddCommand(cmd *gpu.Command, origin gpu.Origin, value uint32, length uint32) {
	if cmd == nil || !l.prefs.enabled() {
		return
	}

	l.checkFrame()

	if err := cmd.SetFrame(l.lastFrame); err != nil {
		logger.Logf(logger.Allow, logTag, "%s not logged: %v", cmd.Name(), err)
		return
	}

	cmd.Origin = origin
	cmd.Length = length
	cmd.SourceAddr = value
	if len(cmd.Words) == 0 {
		cmd.Words = []uint32{value}
	}
	cmd.Truncate()
	cmd.GTE = l.lastGTE
	if l.env.Context != nil {
		cmd.PC = l.env.Context.PC()
	}

	l.stats.Accumulate(cmd)
	l.commands = append(l.commands, cmd)

	if l.surfaces != nil {
		l.surfaces.heatmap(cmd)
	}
}

// Len returns the number of commands in the log.
func (l *Logger) Len() int {
	return len(l.commands)
}

// Command returns the command at the index. Returns nil if the index is out
// of range.
func (l *Logger) Command(i int) *gpu.Command {
	if i < 0 || i >= len(l.commands) {
		return nil
	}
	return l.commands[i]
}

// All returns an iterator over the commands in the order they were added.
func (l *Logger) All() iter.Seq2[int, *gpu.Command] {
	return func(yield func(int, *gpu.Command) bool) {
		for i, cmd := range l.commands {
			if !yield(i, cmd) {
				return
			}
		}
	}
}

// SetEnabled sets whether the command at the index is executed by Replay().
func (l *Logger) SetEnabled(i int, enabled bool) error {
	cmd := l.Command(i)
	if cmd == nil {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	cmd.Enabled = enabled
	return nil
}

// SetHighlight sets whether the command at the index is drawn to the
// highlight surfaces. The surfaces are updated by the next call to
// Highlight().
func (l *Logger) SetHighlight(i int, highlight bool) error {
	cmd := l.Command(i)
	if cmd == nil {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	cmd.Highlight = highlight
	return nil
}

// Frame returns the frame number of the commands in the log.
func (l *Logger) Frame() uint64 {
	return l.lastFrame
}

// GTETrace returns the coprocessor states recorded during the frame. The
// returned slice should not be modified.
func (l *Logger) GTETrace() []gte.State {
	return l.gteTrace
}

// PendingFetches returns the vertex fetches that have not yet been attached
// to a coprocessor state.
func (l *Logger) PendingFetches() []gte.FetchContext {
	return l.pending
}

// VRAM returns the snapshot of VRAM taken at the start of the frame. Returns
// nil if there is no snapshot.
func (l *Logger) VRAM() *gpu.VRAM {
	return l.vram
}

// Stats returns the accumulated stats of the commands in the log.
func (l *Logger) Stats() gpu.Stats {
	return l.stats
}
