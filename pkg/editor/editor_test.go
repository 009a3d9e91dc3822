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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/skye/pkg/config"
	"github.com/timburks/skye/pkg/operations"
	"github.com/timburks/skye/pkg/sky"
	skye "github.com/timburks/skye/pkg/types"
)

func TestNewEditor(t *testing.T) {
	c := config.Default()
	c.Undo.Limit = 3
	c.View.Compass = false
	c.View.Background = "#102030"
	e := NewEditor(c)

	s := e.GetSky()
	require.NotNil(t, s)
	assert.Equal(t, "#102030", s.GetBgColor().Hex())
	assert.False(t, s.GetDrawCompass())
	assert.False(t, s.GetChanged())
	assert.Equal(t, 3, s.GetUndoSystem().GetLimit())
	assert.Equal(t, skye.PanelCount, len(e.GetPanels()))
	assert.Equal(t, skye.PanelCount, s.GetListenerCount())
	for _, p := range e.GetPanels() {
		assert.Same(t, s, p.GetSky())
	}
}

func TestPerformUndoRedo(t *testing.T) {
	e := NewEditor(nil)
	s := e.GetSky()
	assert.False(t, e.PerformUndo())
	assert.False(t, e.PerformRedo())

	e.Perform(operations.NewControllerAdd(s, sky.NewController("time")))
	e.Perform(operations.NewLayerAdd(s, sky.NewLayer("sun")))
	assert.Equal(t, 1, s.GetControllerCount())
	assert.Equal(t, 1, s.GetLayerCount())
	assert.True(t, s.GetChanged())
	assert.Contains(t, e.Info(), "[+]")
	assert.Contains(t, e.Info(), "undo 2")

	assert.True(t, e.PerformUndo())
	assert.Equal(t, 0, s.GetLayerCount())
	assert.Contains(t, e.Info(), "redo 1")
	assert.True(t, e.PerformRedo())
	assert.Equal(t, 1, s.GetLayerCount())
	assert.False(t, e.PerformRedo())
}

func TestNewSkyDisposesOld(t *testing.T) {
	e := NewEditor(nil)
	old := e.GetSky()
	e.Perform(operations.NewControllerAdd(old, sky.NewController("time")))

	e.NewSky()
	s := e.GetSky()
	assert.NotSame(t, old, s)
	assert.Equal(t, 0, old.GetListenerCount())
	assert.Equal(t, 0, old.GetControllerCount())
	assert.False(t, old.GetUndoSystem().CanUndo())
	assert.Equal(t, skye.PanelCount, s.GetListenerCount())
	assert.Nil(t, e.EngineSky())
}

func TestUpdate(t *testing.T) {
	e := NewEditor(nil)
	s := e.GetSky()
	require.NoError(t, e.Update())
	first := e.EngineSky()
	require.NotNil(t, first)
	assert.False(t, s.GetNeedsRebuild())

	// nothing changed
	require.NoError(t, e.Update())
	assert.Same(t, first, e.EngineSky())

	e.Perform(operations.NewControllerAdd(s, sky.NewController("time")))
	require.NoError(t, e.Update())
	assert.NotSame(t, first, e.EngineSky())
	assert.Len(t, e.EngineSky().Controllers, 1)

	s.SetDrawCompass(false)
	require.NoError(t, e.Update())
	assert.False(t, e.EngineSky().DrawCompass)
}

func TestUpdateFollowsValuesAndNames(t *testing.T) {
	e := NewEditor(nil)
	s := e.GetSky()
	c := sky.NewController("time")
	e.Perform(operations.NewControllerAdd(s, c))
	require.NoError(t, e.Update())
	assert.Equal(t, float32(0), e.EngineSky().Controllers[0].Value)

	s.SetChanged(false)
	e.Perform(operations.NewControllerSetValue(c, 0.75))
	assert.True(t, s.GetChanged())
	require.NoError(t, e.Update())
	assert.Equal(t, float32(0.75), e.EngineSky().Controllers[0].Value)

	e.Perform(operations.NewControllerSetName(c, "hour"))
	require.NoError(t, e.Update())
	assert.Equal(t, "hour", e.EngineSky().Controllers[0].Name)

	assert.True(t, e.PerformUndo())
	assert.True(t, e.PerformUndo())
	require.NoError(t, e.Update())
	assert.Equal(t, float32(0), e.EngineSky().Controllers[0].Value)
	assert.Equal(t, "time", e.EngineSky().Controllers[0].Name)
}

func TestUpdateFailureKeepsEngineSky(t *testing.T) {
	e := NewEditor(nil)
	s := e.GetSky()
	require.NoError(t, e.Update())
	built := e.EngineSky()

	link := sky.NewLink("day")
	e.Perform(operations.NewLinkAdd(s, link))
	other := sky.NewSky(0)
	foreign := sky.NewController("foreign")
	other.AddController(foreign)
	link.SetController(foreign)

	assert.Error(t, e.Update())
	assert.Same(t, built, e.EngineSky())
	assert.True(t, s.GetNeedsRebuild())
}

func TestDump(t *testing.T) {
	e := NewEditor(nil)
	s := e.GetSky()
	e.Perform(operations.NewLayerAdd(s, sky.NewLayer("sun")))

	path := filepath.Join(t.TempDir(), "sky.yaml")
	require.NoError(t, e.Dump(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "name: sun"))

	assert.Error(t, e.Dump(""))
	assert.Error(t, e.Dump(filepath.Join(t.TempDir(), "missing", "sky.yaml")))
}

func TestSelectPanel(t *testing.T) {
	e := NewEditor(nil)
	assert.Equal(t, skye.PanelSky, e.GetActivePanelIndex())
	e.SelectPanelPrevious()
	assert.Equal(t, skye.PanelLayers, e.GetActivePanelIndex())
	e.SelectPanelNext()
	e.SelectPanelNext()
	assert.Equal(t, skye.PanelControllers, e.GetActivePanelIndex())
	assert.Equal(t, "Controllers", e.GetActivePanel().GetTitle())

	require.NoError(t, e.SelectPanel(skye.PanelLinks))
	assert.Same(t, e.GetPanel(skye.PanelLinks), e.GetActivePanel())
	assert.Error(t, e.SelectPanel(skye.PanelCount))
	assert.Equal(t, skye.PanelLinks, e.GetActivePanelIndex())
}
