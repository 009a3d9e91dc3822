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

package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/skye/pkg/sky"
	skye "github.com/timburks/skye/pkg/types"
	"github.com/timburks/skye/pkg/widgets"
)

func key(k skye.Key) *skye.Event {
	return &skye.Event{Type: skye.EventKey, Key: k}
}

func char(ch rune) *skye.Event {
	return &skye.Event{Type: skye.EventKey, Ch: ch}
}

// press focuses a widget of the panel and sends Enter to it.
func press(t *testing.T, p *panel, w widgets.Widget) {
	require.True(t, p.container.SetFocus(w))
	require.True(t, p.HandleEvent(key(skye.KeyEnter)))
}

func button(t *testing.T, p *panel, text string) *widgets.Button {
	for _, w := range p.container.GetChildren() {
		if b, ok := w.(*widgets.Button); ok && b.GetText() == text {
			return b
		}
	}
	t.Fatalf("no button %q", text)
	return nil
}

// edit replaces the text of a focused line editor.
func edit(t *testing.T, p *panel, w widgets.Widget, text string) {
	press(t, p, w)
	for i := 0; i < 32; i++ {
		p.HandleEvent(key(skye.KeyBackspace2))
	}
	for _, ch := range text {
		p.HandleEvent(char(ch))
	}
	p.HandleEvent(key(skye.KeyEnter))
}

func TestPanelsFollowSky(t *testing.T) {
	s := sky.NewSky(0)
	panels := []Panel{NewSkyPanel(), NewControllerPanel(), NewLinkPanel(), NewLayerPanel()}
	for _, p := range panels {
		p.SetSky(s)
		assert.Same(t, s, p.GetSky())
	}
	assert.Equal(t, 4, s.GetListenerCount())
	for _, p := range panels {
		p.SetSky(nil)
	}
	assert.Equal(t, 0, s.GetListenerCount())
}

func TestControllerPanel(t *testing.T) {
	s := sky.NewSky(0)
	p := NewControllerPanel()
	p.SetSky(s)
	undo := s.GetUndoSystem()

	press(t, &p.panel, button(t, &p.panel, "Add"))
	press(t, &p.panel, button(t, &p.panel, "Add"))
	require.Equal(t, 2, s.GetControllerCount())
	assert.Equal(t, 2, p.list.GetItemCount())
	second := s.GetControllerAt(1)
	assert.Same(t, second, s.GetActiveController())
	assert.Equal(t, 1, p.list.GetSelection())

	edit(t, &p.panel, p.name, "time")
	assert.Equal(t, "time", second.GetName())
	assert.Equal(t, "1: time", p.list.GetItemAt(1).Text)

	edit(t, &p.panel, p.maximum, "24")
	assert.Equal(t, float32(24), second.GetMaximumValue())
	edit(t, &p.panel, p.maximum, "lots")
	assert.Equal(t, "24", p.maximum.GetText())

	// selecting in the list activates the controller
	require.True(t, p.container.SetFocus(p.list))
	p.HandleEvent(key(skye.KeyArrowLeft))
	assert.Same(t, s.GetControllerAt(0), s.GetActiveController())
	assert.Equal(t, "Controller", p.name.GetText())

	// activating from outside selects in the list without new undo entries
	count := undo.GetCount()
	s.SetActiveController(second)
	assert.Equal(t, 1, p.list.GetSelection())
	assert.Equal(t, count, undo.GetCount())

	press(t, &p.panel, button(t, &p.panel, "Move Up"))
	assert.Same(t, second, s.GetControllerAt(0))
	press(t, &p.panel, button(t, &p.panel, "Move Up"))
	assert.Same(t, second, s.GetControllerAt(0))

	press(t, &p.panel, p.clamp)
	assert.False(t, second.GetClamp())
	press(t, &p.panel, p.frozen)
	assert.True(t, second.GetFrozen())
	undo.Undo()
	undo.Undo()
	assert.True(t, second.GetClamp())
	assert.False(t, p.frozen.GetChecked())

	press(t, &p.panel, button(t, &p.panel, "Remove"))
	assert.Equal(t, 1, s.GetControllerCount())
	assert.Equal(t, 1, p.list.GetItemCount())
	undo.Undo()
	assert.Same(t, second, s.GetActiveController())
	assert.Equal(t, "time", p.name.GetText())
}

func TestControllerValueDrag(t *testing.T) {
	s := sky.NewSky(0)
	c := sky.NewController("time")
	s.AddController(c)
	c.SetValueRange(0, 20)
	p := NewControllerPanel()
	p.SetSky(s)
	undo := s.GetUndoSystem()

	require.True(t, p.container.SetFocus(p.value))
	p.HandleEvent(key(skye.KeyArrowRight))
	assert.Equal(t, float32(1), c.GetCurrentValue())
	p.HandleEvent(key(skye.KeyArrowRight))
	p.HandleEvent(key(skye.KeyArrowRight))
	assert.Equal(t, float32(3), c.GetCurrentValue())
	p.HandleEvent(key(skye.KeyEnter))
	assert.Equal(t, 1, undo.GetCount())
	assert.Nil(t, p.valueUndo)

	undo.Undo()
	assert.Equal(t, float32(0), c.GetCurrentValue())
	assert.Equal(t, float32(0), p.value.GetValue())
	undo.Redo()
	assert.Equal(t, float32(3), c.GetCurrentValue())
}

func TestFrozenControllerIgnoresDrag(t *testing.T) {
	s := sky.NewSky(0)
	c := sky.NewController("time")
	s.AddController(c)
	c.SetValueRange(0, 20)
	c.SetCurrentValue(5)
	c.SetFrozen(true)
	p := NewControllerPanel()
	p.SetSky(s)
	undo := s.GetUndoSystem()

	require.True(t, p.container.SetFocus(p.value))
	p.HandleEvent(key(skye.KeyArrowRight))
	p.HandleEvent(key(skye.KeyArrowRight))
	assert.Equal(t, float32(5), p.value.GetValue())
	p.HandleEvent(key(skye.KeyEnter))
	assert.Equal(t, 0, undo.GetCount())
	assert.Equal(t, float32(5), c.GetCurrentValue())
	assert.Equal(t, float32(5), p.value.GetValue())
	assert.Nil(t, p.valueUndo)
}

func TestLinkPanel(t *testing.T) {
	s := sky.NewSky(0)
	c := sky.NewController("time")
	s.AddController(c)
	p := NewLinkPanel()
	p.SetSky(s)
	undo := s.GetUndoSystem()

	press(t, &p.panel, button(t, &p.panel, "Add"))
	link := s.GetActiveLink()
	require.NotNil(t, link)
	assert.Equal(t, 2, p.controller.GetItemCount())
	assert.Equal(t, 0, p.controller.GetSelection())

	require.True(t, p.container.SetFocus(p.controller))
	p.HandleEvent(key(skye.KeyArrowRight))
	assert.Same(t, c, link.GetController())

	require.True(t, p.container.SetFocus(p.repeat))
	p.HandleEvent(key(skye.KeyArrowRight))
	assert.Equal(t, 2, link.GetRepeat())

	edit(t, &p.panel, p.points, "0:1 0.5:0 1:1")
	assert.Equal(t, 3, link.GetCurve().GetPointCount())
	edit(t, &p.panel, p.points, "nonsense")
	assert.Equal(t, 3, link.GetCurve().GetPointCount())
	assert.Equal(t, "0:1 0.5:0 1:1", p.points.GetText())

	require.True(t, p.container.SetFocus(p.interpolation))
	p.HandleEvent(key(skye.KeyArrowRight))
	assert.Equal(t, 2, link.GetCurve().Interpolation)

	// renaming the controller refreshes the choices
	c.SetName("hour")
	assert.Equal(t, "0: hour", p.controller.GetSelectedItem().Text)

	for undo.CanUndo() {
		undo.Undo()
	}
	assert.Equal(t, 0, s.GetLinkCount())
	assert.Equal(t, 0, p.list.GetItemCount())
	assert.Equal(t, "", p.name.GetText())
}

func TestLayerPanel(t *testing.T) {
	s := sky.NewSky(0)
	link := sky.NewLink("day")
	s.AddLink(link)
	p := NewLayerPanel()
	p.SetSky(s)
	undo := s.GetUndoSystem()

	press(t, &p.panel, button(t, &p.panel, "Add"))
	layer := s.GetActiveLayer()
	require.NotNil(t, layer)
	assert.Equal(t, "0: Layer", p.list.GetItemAt(0).Text)

	edit(t, &p.panel, p.intensity, "2.5")
	assert.Equal(t, float32(2.5), layer.GetIntensity())

	press(t, &p.panel, p.color)
	for i := 0; i < 10; i++ {
		p.HandleEvent(key(skye.KeyBackspace2))
	}
	for _, ch := range "#ff0000" {
		p.HandleEvent(char(ch))
	}
	p.HandleEvent(key(skye.KeyEnter))
	assert.Equal(t, "#ff0000", layer.GetColor().Hex())

	press(t, &p.panel, p.mulBySkyLight)
	assert.False(t, layer.GetMulBySkyLight())
	assert.False(t, p.mulBySkyLight.GetChecked())

	// bodies
	press(t, &p.panel, button(t, &p.panel, "Add Body"))
	press(t, &p.panel, button(t, &p.panel, "Duplicate Body"))
	assert.Equal(t, 2, layer.GetBodyCount())
	assert.Equal(t, 1, p.body.GetValue())
	assert.Equal(t, 1, p.body.GetMaximum())
	require.True(t, p.container.SetFocus(p.body))
	p.HandleEvent(key(skye.KeyArrowLeft))
	assert.Same(t, layer.GetBodyAt(0), layer.GetActiveBody())
	edit(t, &p.panel, p.bodySkin, "sun.png")
	assert.Equal(t, "sun.png", layer.GetBodyAt(0).GetSkinPath())

	// target links
	require.True(t, p.container.SetFocus(p.target))
	for layer.GetActiveTarget() != skye.TargetTransparency {
		require.True(t, p.HandleEvent(key(skye.KeyArrowRight)))
	}
	press(t, &p.panel, button(t, &p.panel, "Add Link"))
	assert.True(t, layer.GetTarget(skye.TargetTransparency).HasLink(link))
	assert.Equal(t, 1, p.targetLinks.GetItemCount())
	count := undo.GetCount()
	press(t, &p.panel, button(t, &p.panel, "Add Link"))
	assert.Equal(t, count, undo.GetCount())
	press(t, &p.panel, button(t, &p.panel, "Remove Link"))
	assert.False(t, layer.GetTarget(skye.TargetTransparency).HasLink(link))
	assert.Equal(t, 0, p.targetLinks.GetItemCount())

	link.SetName("night")
	assert.Equal(t, "night", p.links.GetSelectedItem().Text)
}

func TestLayerTransparencyDrag(t *testing.T) {
	s := sky.NewSky(0)
	layer := sky.NewLayer("sun")
	s.AddLayer(layer)
	p := NewLayerPanel()
	p.SetSky(s)
	undo := s.GetUndoSystem()

	require.True(t, p.container.SetFocus(p.transparency))
	p.HandleEvent(key(skye.KeyArrowLeft))
	p.HandleEvent(key(skye.KeyArrowLeft))
	assert.InDelta(t, 0.9, layer.GetTransparency(), 1e-5)
	assert.Equal(t, 1, undo.GetCount())
	p.HandleEvent(key(skye.KeyArrowLeft))
	p.HandleEvent(key(skye.KeyEnter))
	assert.InDelta(t, 0.85, layer.GetTransparency(), 1e-5)
	assert.Equal(t, 1, undo.GetCount())

	undo.Undo()
	assert.Equal(t, float32(1), layer.GetTransparency())
	assert.Equal(t, float32(1), p.transparency.GetValue())
	undo.Redo()
	assert.InDelta(t, 0.85, layer.GetTransparency(), 1e-5)
}

func TestSkyPanel(t *testing.T) {
	s := sky.NewSky(0)
	p := NewSkyPanel()
	p.SetSky(s)

	press(t, &p.panel, p.compass)
	assert.False(t, s.GetDrawCompass())
	assert.Equal(t, 0, s.GetUndoSystem().GetCount())

	press(t, &p.panel, p.background)
	for i := 0; i < 10; i++ {
		p.HandleEvent(key(skye.KeyBackspace2))
	}
	for _, ch := range "336699" {
		p.HandleEvent(char(ch))
	}
	p.HandleEvent(key(skye.KeyEnter))
	assert.Equal(t, "#336699", s.GetBgColor().Hex())
	s.GetUndoSystem().Undo()
	assert.Equal(t, "#000000", p.background.GetColor().Hex())

	s.AddController(sky.NewController("time"))
	assert.Equal(t, "1 controllers, 0 links, 0 layers", p.summary.GetText())
}
