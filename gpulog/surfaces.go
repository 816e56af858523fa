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

	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/logger"
	"github.com/jetsetilly/gputrace/rasterizer"
	"github.com/jetsetilly/gputrace/surface"
)

// names of the surfaces created by Enable()
const (
	WrittenHeatmap   = "written heatmap"
	ReadHeatmap      = "read heatmap"
	WrittenHighlight = "written highlight"
	ReadHighlight    = "read highlight"
)

type surfaces struct {
	writtenHeatmap   surface.Surface
	readHeatmap      surface.Surface
	writtenHighlight surface.Surface
	readHighlight    surface.Surface
}

func newSurfaces(f surface.Factory) (*surfaces, error) {
	var s surfaces
	var err error

	s.writtenHeatmap, err = f.NewSurface(WrittenHeatmap)
	if err != nil {
		return nil, err
	}
	s.readHeatmap, err = f.NewSurface(ReadHeatmap)
	if err != nil {
		return nil, err
	}
	s.writtenHighlight, err = f.NewSurface(WrittenHighlight)
	if err != nil {
		return nil, err
	}
	s.readHighlight, err = f.NewSurface(ReadHighlight)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *surfaces) clear() {
	s.writtenHeatmap.Clear()
	s.readHeatmap.Clear()
	s.writtenHighlight.Clear()
	s.readHighlight.Clear()
}

func (s *surfaces) heatmap(cmd *gpu.Command) {
	rasterizer.Draw(s.writtenHeatmap, cmd, rasterizer.Write)
	rasterizer.Draw(s.readHeatmap, cmd, rasterizer.Read)
}

// Enable drawing surfaces. The factory is used to create the four surfaces
// used by the Logger. If any surface can not be created then the Logger
// continues without surfaces and the error is returned.
//
// Commands already in the log are drawn to the new heatmaps.
func (l *Logger) Enable(f surface.Factory) error {
	l.surfaces = nil

	s, err := newSurfaces(f)
	if err != nil {
		logger.Logf(logger.Allow, logTag, "surfaces disabled: %v", err)
		return fmt.Errorf("gpulog: %w", err)
	}

	l.surfaces = s
	for _, cmd := range l.commands {
		l.surfaces.heatmap(cmd)
	}

	return nil
}

// Disable drawing surfaces and drop the VRAM snapshot.
func (l *Logger) Disable() {
	l.surfaces = nil
	if l.vram != nil {
		if l.env.VRAM != nil {
			l.env.VRAM.ReleaseVRAM(l.vram)
		}
		l.vram = nil
	}
}

// HasSurfaces returns true if drawing surfaces are enabled.
func (l *Logger) HasSurfaces() bool {
	return l.surfaces != nil
}

// Heatmaps returns the written and read heatmap surfaces. Both values will
// be nil if surfaces are not enabled.
func (l *Logger) Heatmaps() (written surface.Surface, read surface.Surface) {
	if l.surfaces == nil {
		return nil, nil
	}
	return l.surfaces.writtenHeatmap, l.surfaces.readHeatmap
}

// Highlights returns the written and read highlight surfaces. Both values
// will be nil if surfaces are not enabled.
func (l *Logger) Highlights() (written surface.Surface, read surface.Surface) {
	if l.surfaces == nil {
		return nil, nil
	}
	return l.surfaces.writtenHighlight, l.surfaces.readHighlight
}

// Highlight redraws the highlight surfaces. The command at the index is
// drawn, unless the index is negative. If only is false then every command
// with the Highlight flag set is also drawn.
func (l *Logger) Highlight(index int, only bool) {
	if l.surfaces == nil {
		return
	}

	l.surfaces.writtenHighlight.Clear()
	l.surfaces.readHighlight.Clear()

	draw := func(cmd *gpu.Command) {
		rasterizer.Draw(l.surfaces.writtenHighlight, cmd, rasterizer.Write)
		rasterizer.Draw(l.surfaces.readHighlight, cmd, rasterizer.Read)
	}

	if cmd := l.Command(index); cmd != nil {
		draw(cmd)
	}

	if !only {
		for _, cmd := range l.commands {
			if cmd.Highlight {
				draw(cmd)
			}
		}
	}
}
