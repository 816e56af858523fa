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

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/gputrace/gpu"
	"github.com/jetsetilly/gputrace/gpulog"
	"github.com/jetsetilly/gputrace/logger"
	"github.com/jetsetilly/gputrace/paths"
	"github.com/jetsetilly/gputrace/surface"
)

// WindowID is the title of the imgui window.
const WindowID = "GPU Frame Log"

// Host is the emulator the inspector is attached to.
type Host interface {
	// the interpreter that replayed frames are sent to
	Interpreter() gpu.Interpreter
}

// textured is implemented by surfaces that can be shown with imgui.Image()
type textured interface {
	Texture() uint32
}

// Window is the imgui window for a gpulog.Logger.
type Window struct {
	log  *gpulog.Logger
	host Host
	open bool

	// the selected command. -1 if no command is selected
	selected int

	// show only the selected command in the highlight surfaces
	onlySelected bool

	// the most recent save path or save error
	status string
}

// NewWindow is the preferred method of initialisation for the Window type.
func NewWindow(log *gpulog.Logger, host Host) *Window {
	return &Window{
		log:      log,
		host:     host,
		selected: -1,
	}
}

// IsOpen returns true if the window is open.
func (win *Window) IsOpen() bool {
	return win.open
}

// SetOpen opens or closes the window.
func (win *Window) SetOpen(open bool) {
	win.open = open
}

// Selected returns the index of the selected command or -1 if no command is
// selected.
func (win *Window) Selected() int {
	return win.selected
}

// Select the command at the index and redraw the highlight surfaces. An
// index outside of the log deselects the current command.
func (win *Window) Select(index int) {
	if index < 0 || index >= win.log.Len() {
		index = -1
	}
	win.selected = index
	win.log.Highlight(win.selected, win.onlySelected)
}

// SetOnlySelected sets whether the highlight surfaces show the selected
// command alone or also every flagged command.
func (win *Window) SetOnlySelected(only bool) {
	win.onlySelected = only
	win.log.Highlight(win.selected, win.onlySelected)
}

// ToggleHighlight flips the highlight flag of the command at the index and
// redraws the highlight surfaces.
func (win *Window) ToggleHighlight(index int) error {
	cmd := win.log.Command(index)
	if cmd == nil {
		return fmt.Errorf("inspector: %w", gpulog.ErrIndex)
	}
	if err := win.log.SetHighlight(index, !cmd.Highlight); err != nil {
		return err
	}
	win.log.Highlight(win.selected, win.onlySelected)
	return nil
}

// Replay the frame log into the host interpreter.
func (win *Window) Replay() {
	if win.host == nil {
		return
	}
	win.log.Replay(win.host.Interpreter())
}

// Save the frame log to a uniquely named file in the current directory.
// The name of the file is returned.
func (win *Window) Save() (string, error) {
	fn := paths.UniqueFilename("gpulog", int64(win.log.Frame()), saveExtension())
	if err := win.log.SaveFrameLog(fn); err != nil {
		win.status = err.Error()
		return "", err
	}
	win.status = fn
	return fn, nil
}

// Draw the window. Must be called between imgui.NewFrame() and
// imgui.Render().
func (win *Window) Draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowSizeV(imgui.Vec2{X: 640, Y: 480}, imgui.ConditionFirstUseEver)
	if !imgui.BeginV(WindowID, &win.open, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	win.drawToolbar()
	imgui.Separator()

	if imgui.BeginTabBar("##gpulogTabs") {
		if imgui.BeginTabItem("Commands") {
			win.drawCommands()
			imgui.EndTabItem()
		}
		if imgui.BeginTabItem("Stats") {
			win.drawStats()
			imgui.EndTabItem()
		}
		if win.log.HasSurfaces() {
			if imgui.BeginTabItem("Heatmaps") {
				win.drawSurfaces()
				imgui.EndTabItem()
			}
		}
		imgui.EndTabBar()
	}
}

func (win *Window) drawToolbar() {
	p := win.log.Preferences()

	enabled := p.Enabled.Get().(bool)
	if imgui.Checkbox("Enabled", &enabled) {
		_ = p.Enabled.Set(enabled)
	}
	imgui.SameLine()
	gteStates := p.LogGTEStates.Get().(bool)
	if imgui.Checkbox("GTE states", &gteStates) {
		_ = p.LogGTEStates.Set(gteStates)
	}
	imgui.SameLine()
	fetches := p.LogVertexFetches.Get().(bool)
	if imgui.Checkbox("Vertex fetches", &fetches) {
		_ = p.LogVertexFetches.Set(fetches)
	}
	imgui.SameLine()
	brk := p.BreakOnVSync.Get().(bool)
	if imgui.Checkbox("Break on VSync", &brk) {
		_ = p.BreakOnVSync.Set(brk)
	}

	if imgui.Button("Replay") {
		win.Replay()
	}
	imgui.SameLine()
	if imgui.Button("Save") {
		if _, err := win.Save(); err != nil {
			logger.Logf(logger.Allow, "inspector", "%v", err)
		}
	}
	imgui.SameLine()
	if imgui.Button("Clear") {
		win.log.Clear()
		win.selected = -1
	}
	imgui.SameLine()
	only := win.onlySelected
	if imgui.Checkbox("Selected only", &only) {
		win.SetOnlySelected(only)
	}

	imgui.Text(fmt.Sprintf("Frame %d: %d commands", win.log.Frame(), win.log.Len()))
	if win.status != "" {
		imgui.SameLine()
		imgui.Text(win.status)
	}
}

func (win *Window) drawCommands() {
	tableFlags := imgui.TableFlagsNone
	tableFlags |= imgui.TableFlagsSizingFixedFit
	tableFlags |= imgui.TableFlagsBordersV
	tableFlags |= imgui.TableFlagsBordersOuter
	tableFlags |= imgui.TableFlagsScrollY

	if !imgui.BeginTableV("gpulog", 6, tableFlags, imgui.Vec2{}, 0) {
		return
	}
	defer imgui.EndTable()

	imgui.TableSetupScrollFreeze(0, 1)
	imgui.TableSetupColumnV("#", imgui.TableColumnFlagsNone, 40, 0)
	imgui.TableSetupColumnV("On", imgui.TableColumnFlagsNone, 20, 1)
	imgui.TableSetupColumnV("Hi", imgui.TableColumnFlagsNone, 20, 2)
	imgui.TableSetupColumnV("Command", imgui.TableColumnFlagsNone, 180, 3)
	imgui.TableSetupColumnV("Origin", imgui.TableColumnFlagsNone, 70, 4)
	imgui.TableSetupColumnV("PC", imgui.TableColumnFlagsNone, 70, 5)
	imgui.TableHeadersRow()

	var clipper imgui.ListClipper
	clipper.Begin(win.log.Len())
	for clipper.Step() {
		for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
			cmd := win.log.Command(i)
			if cmd == nil {
				continue
			}

			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableV(fmt.Sprintf("%d", i), win.selected == i, imgui.SelectableFlagsNone, imgui.Vec2{}) {
				win.Select(i)
			}

			imgui.TableNextColumn()
			enabled := cmd.Enabled
			if imgui.Checkbox(fmt.Sprintf("##enabled%d", i), &enabled) {
				_ = win.log.SetEnabled(i, enabled)
			}

			imgui.TableNextColumn()
			highlight := cmd.Highlight
			if imgui.Checkbox(fmt.Sprintf("##highlight%d", i), &highlight) {
				_ = win.ToggleHighlight(i)
			}

			imgui.TableNextColumn()
			imgui.Text(cmd.Name())
			if imgui.IsItemHovered() {
				imgui.BeginTooltip()
				for _, s := range Tooltip(cmd) {
					imgui.Text(s)
				}
				imgui.EndTooltip()
			}

			imgui.TableNextColumn()
			imgui.Text(cmd.Origin.String())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%08x", cmd.PC))

		}
	}
}

func (win *Window) drawStats() {
	s := win.log.Stats()
	imgui.Text(fmt.Sprintf("Triangles: %d (%d textured)", s.Triangles, s.TexturedTriangles))
	imgui.Text(fmt.Sprintf("Rectangles: %d", s.Rectangles))
	imgui.Text(fmt.Sprintf("Sprites: %d", s.Sprites))
	imgui.Text(fmt.Sprintf("Pixel writes: %d", s.PixelWrites))
	imgui.Text(fmt.Sprintf("Pixel reads: %d", s.PixelReads))
	imgui.Text(fmt.Sprintf("Texel reads: %d", s.TexelReads))
	imgui.Text(fmt.Sprintf("GTE trace: %d", len(win.log.GTETrace())))
}

func (win *Window) drawSurfaces() {
	w, r := win.log.Heatmaps()
	hw, hr := win.log.Highlights()

	drawSurface("Written", w)
	imgui.SameLine()
	drawSurface("Read", r)
	drawSurface("Written (highlight)", hw)
	imgui.SameLine()
	drawSurface("Read (highlight)", hr)
}

func drawSurface(label string, s surface.Surface) {
	t, ok := s.(textured)
	if !ok {
		return
	}

	imgui.BeginGroup()
	imgui.Text(label)
	w, h := s.Size()
	imgui.Image(imgui.TextureID(t.Texture()), imgui.Vec2{X: float32(w) / 4, Y: float32(h) / 4})
	imgui.EndGroup()
}
