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

package commander

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/skye/pkg/editor"
	skye "github.com/timburks/skye/pkg/types"
)

func newCommander() *Commander {
	return NewCommander(editor.NewEditor(nil))
}

func key(k skye.Key) *skye.Event {
	return &skye.Event{Type: skye.EventKey, Key: k}
}

func typeText(c *Commander, text string) {
	for _, ch := range text {
		c.ProcessEvent(&skye.Event{Type: skye.EventKey, Ch: ch})
	}
}

func eval(t *testing.T, c *Commander, source string) string {
	out, err := c.ParseEval(source)
	require.NoError(t, err, source)
	return out
}

func TestPanelSwitching(t *testing.T) {
	c := newCommander()
	e := c.GetEditor()
	c.ProcessEvent(key(skye.KeyTab))
	assert.Equal(t, skye.PanelControllers, e.GetActivePanelIndex())
	c.ProcessEvent(key(skye.KeyBacktab))
	c.ProcessEvent(key(skye.KeyBacktab))
	assert.Equal(t, skye.PanelLayers, e.GetActivePanelIndex())
	c.ProcessEvent(key(skye.KeyCtrlN))
	assert.Equal(t, skye.PanelSky, e.GetActivePanelIndex())
	c.ProcessEvent(key(skye.KeyCtrlP))
	assert.Equal(t, skye.PanelLayers, e.GetActivePanelIndex())
	typeText(c, "3")
	assert.Equal(t, skye.PanelLinks, e.GetActivePanelIndex())
	typeText(c, "4")
	assert.Equal(t, skye.PanelLayers, e.GetActivePanelIndex())
	assert.Equal(t, "", c.GetMessage())
	typeText(c, "3")
	assert.Equal(t, "", c.Run("panel 1"))
	assert.Equal(t, skye.PanelSky, e.GetActivePanelIndex())
	assert.NotEqual(t, "", c.Run("panel 9"))
}

func TestCommandLine(t *testing.T) {
	c := newCommander()
	typeText(c, ":")
	assert.Equal(t, skye.ModeCommand, c.GetMode())
	typeText(c, "undx")
	c.ProcessEvent(key(skye.KeyBackspace2))
	typeText(c, "o")
	assert.Equal(t, ":undo", c.GetMessageBarText(80))
	assert.Equal(t, ":un", c.GetMessageBarText(3))
	c.ProcessEvent(key(skye.KeyEnter))
	assert.Equal(t, skye.ModeEdit, c.GetMode())
	assert.Equal(t, "nothing to undo", c.GetMessage())

	typeText(c, ":")
	typeText(c, "frobnicate")
	c.ProcessEvent(key(skye.KeyEnter))
	assert.Equal(t, "unknown command: frobnicate", c.GetMessageBarText(80))

	typeText(c, ":")
	c.ProcessEvent(key(skye.KeyEsc))
	assert.Equal(t, skye.ModeEdit, c.GetMode())

	assert.True(t, c.IsRunning())
	c.Run("q")
	assert.False(t, c.IsRunning())
	assert.Equal(t, "quit", c.GetModeName())
}

func TestLispLineAndUndoKeys(t *testing.T) {
	c := newCommander()
	s := c.GetEditor().GetSky()

	typeText(c, "(")
	assert.Equal(t, skye.ModeLisp, c.GetMode())
	typeText(c, `controller-add "time")`)
	c.ProcessEvent(key(skye.KeyEnter))
	assert.Equal(t, skye.ModeEdit, c.GetMode())
	assert.Equal(t, 1, s.GetControllerCount())
	assert.Contains(t, c.GetMessage(), "Add Controller")

	typeText(c, "u")
	assert.Equal(t, 0, s.GetControllerCount())
	c.ProcessEvent(key(skye.KeyCtrlR))
	assert.Equal(t, 1, s.GetControllerCount())

	typeText(c, "(")
	typeText(c, "no-such-function)")
	c.ProcessEvent(key(skye.KeyEnter))
	assert.NotEmpty(t, c.GetMessage())
	assert.Equal(t, 1, s.GetControllerCount())
}

func TestFieldMode(t *testing.T) {
	c := newCommander()
	s := c.GetEditor().GetSky()
	typeText(c, "2")

	// focus the Add button below the list and press it
	c.ProcessEvent(key(skye.KeyArrowDown))
	c.ProcessEvent(key(skye.KeyEnter))
	require.Equal(t, 1, s.GetControllerCount())
	assert.Equal(t, skye.ModeEdit, c.GetMode())

	// remove, up, down, then the name field
	for i := 0; i < 4; i++ {
		c.ProcessEvent(key(skye.KeyArrowDown))
	}
	c.ProcessEvent(key(skye.KeyEnter))
	assert.Equal(t, skye.ModeField, c.GetMode())
	for i := 0; i < len("Controller"); i++ {
		c.ProcessEvent(key(skye.KeyBackspace2))
	}
	// keys that are commands in edit mode are text here
	typeText(c, "u:(")
	c.ProcessEvent(key(skye.KeyEnter))
	assert.Equal(t, skye.ModeEdit, c.GetMode())
	assert.Equal(t, "u:(", s.GetActiveController().GetName())
	assert.Equal(t, 2, s.GetUndoSystem().GetCount())
}

func TestLispPrimitives(t *testing.T) {
	c := newCommander()
	s := c.GetEditor().GetSky()

	eval(t, c, `(controller-add "time")`)
	eval(t, c, `(controller-set-range 0 24)`)
	eval(t, c, `(controller-set-value 12)`)
	eval(t, c, `(controller-value)`)
	assert.Equal(t, float32(12), s.GetActiveController().GetCurrentValue())
	eval(t, c, `(controller-toggle-clamp)`)
	assert.False(t, s.GetActiveController().GetClamp())

	eval(t, c, `(link-add "day" 0)`)
	eval(t, c, `(link-set-repeat 2)`)
	eval(t, c, `(link-set-curve "0:0 0.5:1 1:0" 2)`)
	link := s.GetActiveLink()
	require.NotNil(t, link)
	assert.Same(t, s.GetControllerAt(0), link.GetController())
	assert.Equal(t, 2, link.GetRepeat())
	assert.Equal(t, 3, link.GetCurve().GetPointCount())
	assert.Equal(t, 2, link.GetCurve().Interpolation)

	eval(t, c, `(layer-add "sun")`)
	eval(t, c, `(layer-set-color "#ffcc00")`)
	eval(t, c, `(layer-set-offset 1 2 3.5)`)
	eval(t, c, `(layer-set-transparency 0.5)`)
	eval(t, c, `(target-add-link "Orientation X" 0)`)
	layer := s.GetActiveLayer()
	require.NotNil(t, layer)
	assert.Equal(t, "#ffcc00", layer.GetColor().Hex())
	assert.Equal(t, float32(3.5), layer.GetOffset().Z)
	assert.Equal(t, float32(0.5), layer.GetTransparency())
	assert.Equal(t, "1", eval(t, c, `(target-link-count "orientation-x")`))
	assert.Equal(t, 1, s.CountLinkUsage(link))

	eval(t, c, `(body-add)`)
	eval(t, c, `(body-set-size 2 3)`)
	eval(t, c, `(body-duplicate)`)
	assert.Equal(t, "2", eval(t, c, `(body-count)`))
	assert.Equal(t, float32(3), layer.GetActiveBody().GetSize().Y)
	eval(t, c, `(body-select 0)`)
	assert.Same(t, layer.GetBodyAt(0), layer.GetActiveBody())

	eval(t, c, `(controller-remove)`)
	assert.Nil(t, link.GetController())

	for s.GetUndoSystem().CanUndo() {
		eval(t, c, `(undo)`)
	}
	assert.Equal(t, 0, s.GetControllerCount())
	assert.Equal(t, 0, s.GetLinkCount())
	assert.Equal(t, 0, s.GetLayerCount())
}

func TestLispErrors(t *testing.T) {
	c := newCommander()
	for _, source := range []string{
		`(controller-remove)`,
		`(layer-set-name "sun")`,
		`(link-set-controller 0)`,
		`(controller-select 0)`,
	} {
		_, err := c.ParseEval(source)
		assert.Error(t, err, source)
	}

	eval(t, c, `(controller-add)`)
	eval(t, c, `(layer-add)`)
	eval(t, c, `(link-add)`)
	for _, source := range []string{
		`(controller-move-up)`,
		`(controller-move-down)`,
		`(controller-set-value "high")`,
		`(link-set-repeat 0)`,
		`(link-set-controller 3)`,
		`(link-set-curve "0:0 x" 1)`,
		`(layer-set-color "orange")`,
		`(target-add-link "Nowhere" 0)`,
		`(target-remove-link "Intensity" 0)`,
		`(body-remove)`,
	} {
		_, err := c.ParseEval(source)
		assert.Error(t, err, source)
	}
	assert.Equal(t, 3, c.GetEditor().GetSky().GetUndoSystem().GetCount())

	eval(t, c, `(controller-toggle-frozen)`)
	_, err := c.ParseEval(`(controller-set-value 0.5)`)
	assert.Error(t, err)
	assert.Equal(t, 4, c.GetEditor().GetSky().GetUndoSystem().GetCount())
}

func TestParseEvalFile(t *testing.T) {
	c := newCommander()
	path := filepath.Join(t.TempDir(), "init.scm")
	require.NoError(t, os.WriteFile(path, []byte(`
(controller-add "time")
(layer-add "sun")
(layer-add "moon")
`), 0644))
	require.NoError(t, c.ParseEvalFile(path))
	s := c.GetEditor().GetSky()
	assert.Equal(t, 1, s.GetControllerCount())
	assert.Equal(t, 2, s.GetLayerCount())

	assert.Error(t, c.ParseEvalFile(filepath.Join(t.TempDir(), "missing.scm")))
	assert.Equal(t, "", c.Run("source "+path))
	assert.Equal(t, 4, s.GetLayerCount())
}

func TestRunCommands(t *testing.T) {
	c := newCommander()
	e := c.GetEditor()
	eval(t, c, `(layer-add "sun")`)

	path := filepath.Join(t.TempDir(), "sky.yaml")
	assert.Equal(t, "dumped "+path, c.Run("dump "+path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, "usage: dump <file>", c.Run("dump"))

	assert.Contains(t, c.Run("eval (layer-count)"), "1")
	assert.Contains(t, c.Run("info"), "undo 1")
	assert.Equal(t, "", c.Run("undo"))
	assert.Equal(t, "", c.Run("redo"))
	assert.Equal(t, "nothing to redo", c.Run("redo"))

	old := e.GetSky()
	c.Run("new")
	assert.NotSame(t, old, e.GetSky())
	assert.Equal(t, "0", eval(t, c, `(layer-count)`))
}
