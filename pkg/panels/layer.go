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
	"fmt"

	"github.com/timburks/skye/pkg/operations"
	"github.com/timburks/skye/pkg/sky"
	skye "github.com/timburks/skye/pkg/types"
	"github.com/timburks/skye/pkg/widgets"
)

// LayerPanel lists the layers and edits the active layer, its active body
// and the links of its active target.
type LayerPanel struct {
	panel
	list             *widgets.ListBox
	name             *widgets.TextField
	skin             *widgets.TextField
	offset           *widgets.EditVector
	orientation      *widgets.EditVector
	color            *widgets.ColorBox
	intensity        *widgets.TextField
	transparency     *widgets.EditSliderText
	mulBySkyLight    *widgets.CheckBox
	mulBySkyColor    *widgets.CheckBox
	lightColor       *widgets.ColorBox
	lightIntensity   *widgets.TextField
	ambientIntensity *widgets.TextField
	lightOrientation *widgets.EditVector

	body            *widgets.SpinTextField
	bodySkin        *widgets.TextField
	bodyOrientation *widgets.EditVector
	bodySize        *widgets.EditVector2
	bodyColor       *widgets.ColorBox

	target      *widgets.ComboBox
	targetLinks *widgets.ListBox
	links       *widgets.ComboBox

	transparencyUndo *operations.LayerSetTransparency // slider drag in progress
}

func NewLayerPanel() *LayerPanel {
	p := &LayerPanel{panel: panel{title: skye.PanelName(skye.PanelLayers)}}

	p.list = widgets.NewListBox("Layers", 5, func(_ int, item *widgets.ListItem) {
		if p.ignore() {
			return
		}
		var layer *sky.Layer
		if item != nil {
			layer = item.Data.(*sky.Layer)
		}
		p.sky.SetActiveLayer(layer)
	})
	add := widgets.NewButton("Add", func() {
		if p.ignore() {
			return
		}
		p.perform(operations.NewLayerAdd(p.sky, sky.NewLayer("Layer")))
	})
	remove := widgets.NewButton("Remove", p.layerAction(func(l *sky.Layer) skye.Undoable {
		return operations.NewLayerRemove(l)
	}))
	up := widgets.NewButton("Move Up", p.layerAction(func(l *sky.Layer) skye.Undoable {
		if l.GetIndex() == 0 {
			return nil
		}
		return operations.NewLayerMoveUp(l)
	}))
	down := widgets.NewButton("Move Down", p.layerAction(func(l *sky.Layer) skye.Undoable {
		if l.GetIndex() == p.sky.GetLayerCount()-1 {
			return nil
		}
		return operations.NewLayerMoveDown(l)
	}))

	p.name = widgets.NewTextField("Name", func(text string) {
		p.layerAction(func(l *sky.Layer) skye.Undoable {
			return operations.NewLayerSetName(l, text)
		})()
	})
	p.skin = widgets.NewTextField("Skin", func(text string) {
		p.layerAction(func(l *sky.Layer) skye.Undoable {
			return operations.NewLayerSetSkin(l, text)
		})()
	})
	p.offset = widgets.NewEditVector("Offset", func(v skye.Vector) {
		p.layerAction(func(l *sky.Layer) skye.Undoable {
			return operations.NewLayerSetOffset(l, v)
		})()
	})
	p.orientation = widgets.NewEditVector("Orientation", func(v skye.Vector) {
		p.layerAction(func(l *sky.Layer) skye.Undoable {
			return operations.NewLayerSetOrientation(l, v)
		})()
	})
	p.color = widgets.NewColorBox("Color", func(c skye.Color) {
		p.layerAction(func(l *sky.Layer) skye.Undoable {
			return operations.NewLayerSetColor(l, c)
		})()
	})
	p.intensity = widgets.NewTextField("Intensity", func(text string) {
		p.layerFloat(text, func(l *sky.Layer, value float32) skye.Undoable {
			return operations.NewLayerSetIntensity(l, value)
		})
	})

	p.transparency = widgets.NewEditSliderText("Transparency", 0, 1)
	p.transparency.OnChanging = func(value float32) {
		layer := p.GetLayer()
		if layer == nil || p.ignore() {
			return
		}
		if p.transparencyUndo == nil {
			p.transparencyUndo = operations.NewLayerSetTransparency(layer, value)
			p.perform(p.transparencyUndo)
		} else {
			p.transparencyUndo.SetNewTransparency(value)
		}
	}
	p.transparency.OnChanged = func(value float32) {
		if p.transparencyUndo != nil {
			op := p.transparencyUndo
			p.transparencyUndo = nil
			op.SetNewTransparency(value)
			return
		}
		p.layerAction(func(l *sky.Layer) skye.Undoable {
			if value == l.GetTransparency() {
				return nil
			}
			return operations.NewLayerSetTransparency(l, value)
		})()
	}

	p.mulBySkyLight = widgets.NewCheckBox("Mul Sky Light", func(bool) {
		p.layerAction(func(l *sky.Layer) skye.Undoable {
			return operations.NewLayerToggleMulBySkyLight(l)
		})()
	})
	p.mulBySkyColor = widgets.NewCheckBox("Mul Sky Color", func(bool) {
		p.layerAction(func(l *sky.Layer) skye.Undoable {
			return operations.NewLayerToggleMulBySkyColor(l)
		})()
	})
	p.lightColor = widgets.NewColorBox("Light Color", func(c skye.Color) {
		p.layerAction(func(l *sky.Layer) skye.Undoable {
			return operations.NewLayerSetLightColor(l, c)
		})()
	})
	p.lightIntensity = widgets.NewTextField("Light Intensity", func(text string) {
		p.layerFloat(text, func(l *sky.Layer, value float32) skye.Undoable {
			return operations.NewLayerSetLightIntensity(l, value)
		})
	})
	p.ambientIntensity = widgets.NewTextField("Ambient", func(text string) {
		p.layerFloat(text, func(l *sky.Layer, value float32) skye.Undoable {
			return operations.NewLayerSetAmbientIntensity(l, value)
		})
	})
	p.lightOrientation = widgets.NewEditVector("Light Orient.", func(v skye.Vector) {
		p.layerAction(func(l *sky.Layer) skye.Undoable {
			return operations.NewLayerSetLightOrientation(l, v)
		})()
	})

	p.body = widgets.NewSpinTextField("Body", 0, 0, func(index int) {
		layer := p.GetLayer()
		if layer == nil || p.ignore() || index >= layer.GetBodyCount() {
			return
		}
		layer.SetActiveBody(layer.GetBodyAt(index))
	})
	bodyAdd := widgets.NewButton("Add Body", p.layerAction(func(l *sky.Layer) skye.Undoable {
		return operations.NewBodyAdd(l, sky.NewBody())
	}))
	bodyRemove := widgets.NewButton("Remove Body", p.bodyAction(func(b *sky.Body) skye.Undoable {
		return operations.NewBodyRemove(b)
	}))
	bodyUp := widgets.NewButton("Move Body Up", p.bodyAction(func(b *sky.Body) skye.Undoable {
		if b.GetIndex() == 0 {
			return nil
		}
		return operations.NewBodyMoveUp(b)
	}))
	bodyDown := widgets.NewButton("Move Body Down", p.bodyAction(func(b *sky.Body) skye.Undoable {
		if b.GetIndex() == b.GetLayer().GetBodyCount()-1 {
			return nil
		}
		return operations.NewBodyMoveDown(b)
	}))
	bodyDuplicate := widgets.NewButton("Duplicate Body", p.bodyAction(func(b *sky.Body) skye.Undoable {
		return operations.NewBodyDuplicate(b)
	}))
	p.bodySkin = widgets.NewTextField("Body Skin", func(text string) {
		p.bodyAction(func(b *sky.Body) skye.Undoable {
			return operations.NewBodySetSkin(b, text)
		})()
	})
	p.bodyOrientation = widgets.NewEditVector("Body Orient.", func(v skye.Vector) {
		p.bodyAction(func(b *sky.Body) skye.Undoable {
			return operations.NewBodySetOrientation(b, v)
		})()
	})
	p.bodySize = widgets.NewEditVector2("Body Size", func(v skye.Vector2) {
		p.bodyAction(func(b *sky.Body) skye.Undoable {
			return operations.NewBodySetSize(b, v)
		})()
	})
	p.bodyColor = widgets.NewColorBox("Body Color", func(c skye.Color) {
		p.bodyAction(func(b *sky.Body) skye.Undoable {
			return operations.NewBodySetColor(b, c)
		})()
	})

	p.target = widgets.NewComboBox("Target", func(_ int, item *widgets.ListItem) {
		layer := p.GetLayer()
		if layer == nil || p.ignore() || item == nil {
			return
		}
		layer.SetActiveTarget(item.Data.(skye.Target))
	})
	for t := skye.Target(0); t < skye.TargetCount; t++ {
		p.target.AddItem(t.String(), t)
	}
	p.targetLinks = widgets.NewListBox("Target Links", 3, nil)
	p.links = widgets.NewComboBox("Link", nil)
	linkAdd := widgets.NewButton("Add Link", p.layerAction(func(l *sky.Layer) skye.Undoable {
		item := p.links.GetSelectedItem()
		if item == nil {
			return nil
		}
		link := item.Data.(*sky.Link)
		if l.GetTarget(l.GetActiveTarget()).HasLink(link) {
			return nil
		}
		return operations.NewTargetAddLink(l, l.GetActiveTarget(), link)
	}))
	linkRemove := widgets.NewButton("Remove Link", p.layerAction(func(l *sky.Layer) skye.Undoable {
		item := p.targetLinks.GetSelectedItem()
		if item == nil {
			return nil
		}
		link := item.Data.(*sky.Link)
		if !l.GetTarget(l.GetActiveTarget()).HasLink(link) {
			return nil
		}
		return operations.NewTargetRemoveLink(l, l.GetActiveTarget(), link)
	}))

	p.container = widgets.NewContainer(
		p.list, add, remove, up, down,
		widgets.NewTitle("Layer"),
		p.name, p.skin, p.offset, p.orientation, p.color, p.intensity, p.transparency,
		p.mulBySkyLight, p.mulBySkyColor,
		widgets.NewTitle("Light"),
		p.lightColor, p.lightIntensity, p.ambientIntensity, p.lightOrientation,
		widgets.NewTitle("Bodies"),
		p.body, bodyAdd, bodyRemove, bodyUp, bodyDown, bodyDuplicate,
		p.bodySkin, p.bodyOrientation, p.bodySize, p.bodyColor,
		widgets.NewTitle("Targets"),
		p.target, p.targetLinks, p.links, linkAdd, linkRemove,
	)
	return p
}

// layerAction returns a function performing the operation that f creates
// for the active layer. f may return nil to do nothing.
func (p *LayerPanel) layerAction(f func(*sky.Layer) skye.Undoable) func() {
	return func() {
		layer := p.GetLayer()
		if layer == nil || p.ignore() {
			return
		}
		if op := f(layer); op != nil {
			p.perform(op)
		}
	}
}

func (p *LayerPanel) bodyAction(f func(*sky.Body) skye.Undoable) func() {
	return p.layerAction(func(l *sky.Layer) skye.Undoable {
		body := l.GetActiveBody()
		if body == nil {
			return nil
		}
		return f(body)
	})
}

// layerFloat parses text and performs the operation f creates. Text that is
// not a number restores the field.
func (p *LayerPanel) layerFloat(text string, f func(*sky.Layer, float32) skye.Undoable) {
	value, ok := parseFloat(text)
	if !ok {
		p.UpdateLayer()
		return
	}
	p.layerAction(func(l *sky.Layer) skye.Undoable {
		return f(l, value)
	})()
}

// GetLayer returns the active layer or nil.
func (p *LayerPanel) GetLayer() *sky.Layer {
	if p.sky == nil {
		return nil
	}
	return p.sky.GetActiveLayer()
}

// GetBody returns the active body of the active layer or nil.
func (p *LayerPanel) GetBody() *sky.Body {
	layer := p.GetLayer()
	if layer == nil {
		return nil
	}
	return layer.GetActiveBody()
}

func (p *LayerPanel) SetSky(s *sky.Sky) {
	if s == p.sky {
		return
	}
	p.transparencyUndo = nil
	p.attach(p, s)
	p.UpdateLinkList()
	p.UpdateLayerList()
}

func (p *LayerPanel) UpdateLayerList() {
	p.update(func() {
		p.list.RemoveAllItems()
		if p.sky != nil {
			for i, layer := range p.sky.GetLayers() {
				p.list.AddItem(fmt.Sprintf("%d: %s", i, layer.GetName()), layer)
			}
		}
	})
	p.SelectActiveLayer()
}

func (p *LayerPanel) SelectActiveLayer() {
	p.update(func() {
		if layer := p.GetLayer(); layer != nil {
			p.list.SetSelectionWithData(layer)
		} else {
			p.list.SetSelection(-1)
		}
	})
	p.UpdateLayer()
}

func (p *LayerPanel) UpdateLayer() {
	p.update(func() {
		layer := p.GetLayer()
		if layer == nil {
			p.name.SetText("")
			p.skin.SetText("")
			p.offset.SetVector(skye.Vector{})
			p.orientation.SetVector(skye.Vector{})
			p.color.SetColor(skye.Black)
			p.intensity.SetText("")
			p.transparency.SetValue(0)
			p.mulBySkyLight.SetChecked(false)
			p.mulBySkyColor.SetChecked(false)
			p.lightColor.SetColor(skye.Black)
			p.lightIntensity.SetText("")
			p.ambientIntensity.SetText("")
			p.lightOrientation.SetVector(skye.Vector{})
			return
		}
		p.name.SetText(layer.GetName())
		p.skin.SetText(layer.GetSkinPath())
		p.offset.SetVector(layer.GetOffset())
		p.orientation.SetVector(layer.GetOrientation())
		p.color.SetColor(layer.GetColor())
		p.intensity.SetText(formatFloat(layer.GetIntensity()))
		p.transparency.SetValue(layer.GetTransparency())
		p.mulBySkyLight.SetChecked(layer.GetMulBySkyLight())
		p.mulBySkyColor.SetChecked(layer.GetMulBySkyColor())
		p.lightColor.SetColor(layer.GetLightColor())
		p.lightIntensity.SetText(formatFloat(layer.GetLightIntensity()))
		p.ambientIntensity.SetText(formatFloat(layer.GetAmbientIntensity()))
		p.lightOrientation.SetVector(layer.GetLightOrientation())
	})
	p.UpdateBodyList()
	p.SelectActiveTarget()
}

func (p *LayerPanel) UpdateBodyList() {
	p.update(func() {
		if layer := p.GetLayer(); layer != nil && layer.GetBodyCount() > 0 {
			p.body.SetRange(0, layer.GetBodyCount()-1)
		} else {
			p.body.SetRange(0, 0)
		}
	})
	p.SelectActiveBody()
}

func (p *LayerPanel) SelectActiveBody() {
	p.update(func() {
		if body := p.GetBody(); body != nil {
			p.body.SetValue(body.GetIndex())
		} else {
			p.body.SetValue(0)
		}
	})
	p.UpdateBody()
}

func (p *LayerPanel) UpdateBody() {
	p.update(func() {
		body := p.GetBody()
		if body == nil {
			p.bodySkin.SetText("")
			p.bodyOrientation.SetVector(skye.Vector{})
			p.bodySize.SetVector2(skye.Vector2{X: 1, Y: 1})
			p.bodyColor.SetColor(skye.Black)
			return
		}
		p.bodySkin.SetText(body.GetSkinPath())
		p.bodyOrientation.SetVector(body.GetOrientation())
		p.bodySize.SetVector2(body.GetSize())
		p.bodyColor.SetColor(body.GetColor())
	})
}

// UpdateLinkList fills the links that can be added to a target.
func (p *LayerPanel) UpdateLinkList() {
	p.update(func() {
		selected := p.links.GetSelectedItem()
		var keep any
		if selected != nil {
			keep = selected.Data
		}
		p.links.RemoveAllItems()
		if p.sky == nil {
			return
		}
		for _, link := range p.sky.GetLinks() {
			p.links.AddItem(link.GetName(), link)
		}
		if index := p.links.IndexOfData(keep); index != -1 {
			p.links.SetSelection(index)
		} else if p.links.GetItemCount() > 0 {
			p.links.SetSelection(0)
		}
	})
}

func (p *LayerPanel) SelectActiveTarget() {
	p.update(func() {
		target := skye.TargetOffsetX
		if layer := p.GetLayer(); layer != nil {
			target = layer.GetActiveTarget()
		}
		p.target.SetSelectionWithData(target)
	})
	p.UpdateTarget()
}

func (p *LayerPanel) UpdateTarget() {
	p.update(func() {
		p.targetLinks.RemoveAllItems()
		layer := p.GetLayer()
		if layer == nil {
			return
		}
		for _, link := range layer.GetTarget(layer.GetActiveTarget()).GetLinks() {
			p.targetLinks.AddItem(link.GetName(), link)
		}
		if p.targetLinks.GetItemCount() > 0 {
			p.targetLinks.SetSelection(0)
		}
	})
}

func (p *LayerPanel) LayerStructureChanged(*sky.Sky)            { p.UpdateLayerList() }
func (p *LayerPanel) LayerNameChanged(*sky.Sky, *sky.Layer)     { p.UpdateLayerList() }
func (p *LayerPanel) BodyStructureChanged(*sky.Sky, *sky.Layer) { p.UpdateBodyList() }
func (p *LayerPanel) ActiveBodyChanged(*sky.Sky, *sky.Layer)    { p.SelectActiveBody() }
func (p *LayerPanel) ActiveTargetChanged(*sky.Sky, *sky.Layer)  { p.SelectActiveTarget() }

func (p *LayerPanel) ActiveLayerChanged(*sky.Sky) {
	p.transparencyUndo = nil
	p.SelectActiveLayer()
}

func (p *LayerPanel) LayerChanged(_ *sky.Sky, layer *sky.Layer) {
	if layer.GetActive() {
		p.UpdateLayer()
	}
}

func (p *LayerPanel) BodyChanged(_ *sky.Sky, _ *sky.Layer, body *sky.Body) {
	if body.GetActive() {
		p.UpdateBody()
	}
}

func (p *LayerPanel) TargetChanged(_ *sky.Sky, layer *sky.Layer, _ skye.Target) {
	if layer.GetActive() {
		p.UpdateTarget()
	}
}

func (p *LayerPanel) LinkStructureChanged(*sky.Sky) {
	p.UpdateLinkList()
	p.UpdateTarget()
}

func (p *LayerPanel) LinkNameChanged(*sky.Sky, *sky.Link) {
	p.UpdateLinkList()
	p.UpdateTarget()
}
