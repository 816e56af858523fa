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
	"github.com/jetsetilly/gputrace/paths"
	"github.com/jetsetilly/gputrace/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// Preferences for the frame logger.
type Preferences struct {
	dsk *prefs.Disk

	// commands are only logged when Enabled is true
	Enabled prefs.Bool

	// add every coprocessor instruction to the GTE trace
	LogGTEStates prefs.Bool

	// collect vertex fetches and attach them to the next coprocessor
	// instruction
	LogVertexFetches prefs.Bool

	// pause emulation at every frame boundary
	BreakOnVSync prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. All values are false by default.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Enabled.Set(false)
	_ = p.LogGTEStates.Set(false)
	_ = p.LogVertexFetches.Set(false)
	_ = p.BreakOnVSync.Set(false)
}

// Load preferences from the file. If path is empty then DefaultPrefsFile in
// the resource directory is used. A missing file is not an error.
func (p *Preferences) Load(path string) error {
	if path == "" {
		var err error
		path, err = paths.ResourcePath("", DefaultPrefsFile)
		if err != nil {
			return err
		}
	}

	dsk, err := prefs.NewDisk(path)
	if err != nil {
		return err
	}

	err = dsk.Add("gpulog.enabled", &p.Enabled)
	if err != nil {
		return err
	}
	err = dsk.Add("gpulog.loggtestates", &p.LogGTEStates)
	if err != nil {
		return err
	}
	err = dsk.Add("gpulog.logvertexfetches", &p.LogVertexFetches)
	if err != nil {
		return err
	}
	err = dsk.Add("gpulog.breakonvsync", &p.BreakOnVSync)
	if err != nil {
		return err
	}

	p.dsk = dsk
	return p.dsk.Load()
}

// Save preferences to the file used in the most recent call to Load().
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return prefs.ErrNoDisk
	}
	return p.dsk.Save()
}

func (p *Preferences) enabled() bool {
	return p.Enabled.Get().(bool)
}

func (p *Preferences) logGTEStates() bool {
	return p.LogGTEStates.Get().(bool)
}

func (p *Preferences) logVertexFetches() bool {
	return p.LogVertexFetches.Get().(bool)
}

func (p *Preferences) breakOnVSync() bool {
	return p.BreakOnVSync.Get().(bool)
}
