//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package editor

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/timburks/skye/pkg/config"
	"github.com/timburks/skye/pkg/engine"
	"github.com/timburks/skye/pkg/panels"
	"github.com/timburks/skye/pkg/sky"
	skye "github.com/timburks/skye/pkg/types"
)

// The Editor manages the edited sky and the panels showing it.
// There is typically only one editor in a skye instance.
type Editor struct {
	config      *config.Config
	sky         *sky.Sky       // document being edited
	engineSky   *engine.Sky    // last successful rebuild of the document
	panels      []panels.Panel // indexed by the Panel* constants
	activePanel int
}

func NewEditor(c *config.Config) *Editor {
	if c == nil {
		c = config.Default()
	}
	e := &Editor{config: c, activePanel: skye.PanelSky}
	e.panels = []panels.Panel{
		panels.NewSkyPanel(),
		panels.NewControllerPanel(),
		panels.NewLinkPanel(),
		panels.NewLayerPanel(),
	}
	e.NewSky()
	return e
}

func (e *Editor) GetConfig() *config.Config {
	return e.config
}

func (e *Editor) GetSky() *sky.Sky {
	return e.sky
}

// NewSky disposes the edited sky and replaces it with an empty one set up
// from the configuration.
func (e *Editor) NewSky() {
	if e.sky != nil {
		for _, p := range e.panels {
			p.SetSky(nil)
		}
		e.sky.Dispose()
	}
	s := sky.NewSky(e.config.Undo.Limit)
	s.SetBgColor(e.config.GetBackground())
	s.SetDrawCompass(e.config.View.Compass)
	s.SetChanged(false)
	e.sky = s
	e.engineSky = nil
	for _, p := range e.panels {
		p.SetSky(s)
	}
	log.Debugf("editor: new sky with undo limit %d", e.config.Undo.Limit)
}

// Perform applies u and records it for undo.
func (e *Editor) Perform(u skye.Undoable) {
	e.sky.GetUndoSystem().Add(u, true)
}

// PerformUndo reverts the last action and reports whether there was one.
func (e *Editor) PerformUndo() bool {
	undo := e.sky.GetUndoSystem()
	if !undo.CanUndo() {
		return false
	}
	undo.Undo()
	return true
}

// PerformRedo applies the last undone action and reports whether there
// was one.
func (e *Editor) PerformRedo() bool {
	undo := e.sky.GetUndoSystem()
	if !undo.CanRedo() {
		return false
	}
	undo.Redo()
	return true
}

// Update rebuilds the engine sky if the document changed since the last
// rebuild. On failure the previous engine sky is kept.
func (e *Editor) Update() error {
	if e.engineSky != nil && !e.sky.GetNeedsRebuild() {
		e.engineSky.DrawCompass = e.sky.GetDrawCompass()
		return nil
	}
	built, err := engine.Build(e.sky)
	if err != nil {
		log.Errorf("editor: rebuild failed: %v", err)
		return err
	}
	e.engineSky = built
	e.sky.SetNeedsRebuild(false)
	return nil
}

// EngineSky returns the last rebuilt engine sky, or nil before the first
// successful Update.
func (e *Editor) EngineSky() *engine.Sky {
	return e.engineSky
}

// Dump writes the evaluated engine sky to path as YAML.
func (e *Editor) Dump(path string) error {
	if path == "" {
		return errors.New("dump: no file name")
	}
	if err := e.Update(); err != nil {
		return err
	}
	evaluated, err := e.engineSky.Evaluate()
	if err != nil {
		return err
	}
	b, err := evaluated.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return errors.Wrapf(err, "dump %s", path)
	}
	log.Infof("editor: dumped engine sky to %s", path)
	return nil
}

// Info describes the edited sky for the info bar.
func (e *Editor) Info() string {
	changed := ""
	if e.sky.GetChanged() {
		changed = " [+]"
	}
	undo := e.sky.GetUndoSystem()
	return fmt.Sprintf("%s%s  undo %d  redo %d",
		e.sky.GetFilePath(), changed, undo.GetCount(), undo.GetRedoableCount())
}

// Panels

func (e *Editor) GetPanels() []panels.Panel {
	return e.panels
}

func (e *Editor) GetPanel(index int) panels.Panel {
	return e.panels[index]
}

func (e *Editor) GetActivePanel() panels.Panel {
	return e.panels[e.activePanel]
}

func (e *Editor) GetActivePanelIndex() int {
	return e.activePanel
}

func (e *Editor) SelectPanel(index int) error {
	if index < 0 || index >= len(e.panels) {
		return errors.Errorf("no panel exists for identifier %d", index)
	}
	e.activePanel = index
	return nil
}

func (e *Editor) SelectPanelNext() {
	e.activePanel = (e.activePanel + 1) % len(e.panels)
}

func (e *Editor) SelectPanelPrevious() {
	e.activePanel = (e.activePanel + len(e.panels) - 1) % len(e.panels)
}
