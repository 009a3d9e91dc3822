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

// ControllerPanel lists the controllers and edits the active one.
type ControllerPanel struct {
	panel
	list    *widgets.ListBox
	name    *widgets.TextField
	minimum *widgets.TextField
	maximum *widgets.TextField
	value   *widgets.EditSliderText
	clamp   *widgets.CheckBox
	frozen  *widgets.CheckBox
	usage   *widgets.Label

	valueUndo *operations.ControllerSetValue // value drag in progress
}

func NewControllerPanel() *ControllerPanel {
	p := &ControllerPanel{panel: panel{title: skye.PanelName(skye.PanelControllers)}}

	p.list = widgets.NewListBox("Controllers", 6, func(_ int, item *widgets.ListItem) {
		if p.ignore() {
			return
		}
		var c *sky.Controller
		if item != nil {
			c = item.Data.(*sky.Controller)
		}
		p.sky.SetActiveController(c)
	})
	add := widgets.NewButton("Add", func() {
		if p.ignore() {
			return
		}
		p.perform(operations.NewControllerAdd(p.sky, sky.NewController("Controller")))
	})
	remove := widgets.NewButton("Remove", func() {
		if c := p.GetController(); c != nil && !p.ignore() {
			p.perform(operations.NewControllerRemove(c))
		}
	})
	up := widgets.NewButton("Move Up", func() {
		if c := p.GetController(); c != nil && !p.ignore() && c.GetIndex() > 0 {
			p.perform(operations.NewControllerMoveUp(c))
		}
	})
	down := widgets.NewButton("Move Down", func() {
		if c := p.GetController(); c != nil && !p.ignore() && c.GetIndex() < p.sky.GetControllerCount()-1 {
			p.perform(operations.NewControllerMoveDown(c))
		}
	})

	p.name = widgets.NewTextField("Name", func(text string) {
		if c := p.GetController(); c != nil && !p.ignore() && text != c.GetName() {
			p.perform(operations.NewControllerSetName(c, text))
		}
	})
	p.minimum = widgets.NewTextField("Minimum", func(text string) {
		c := p.GetController()
		if c == nil || p.ignore() {
			return
		}
		if value, ok := parseFloat(text); ok && value != c.GetMinimumValue() {
			p.perform(operations.NewControllerSetMinimum(c, value))
		}
		p.UpdateController()
	})
	p.maximum = widgets.NewTextField("Maximum", func(text string) {
		c := p.GetController()
		if c == nil || p.ignore() {
			return
		}
		if value, ok := parseFloat(text); ok && value != c.GetMaximumValue() {
			p.perform(operations.NewControllerSetMaximum(c, value))
		}
		p.UpdateController()
	})

	p.value = widgets.NewEditSliderText("Value", 0, 1)
	p.value.OnChanging = func(value float32) {
		c := p.GetController()
		if c == nil || p.ignore() {
			return
		}
		if c.GetFrozen() {
			p.UpdateController()
			return
		}
		if p.valueUndo == nil {
			p.valueUndo = operations.NewControllerSetValue(c, value)
			p.perform(p.valueUndo)
		} else {
			p.valueUndo.SetNewValue(value)
		}
	}
	p.value.OnChanged = func(value float32) {
		if p.valueUndo != nil {
			op := p.valueUndo
			p.valueUndo = nil
			op.SetNewValue(value)
			p.UpdateController()
			return
		}
		c := p.GetController()
		if c == nil || p.ignore() {
			return
		}
		if !c.GetFrozen() && value != c.GetCurrentValue() {
			p.perform(operations.NewControllerSetValue(c, value))
		}
		p.UpdateController()
	}

	p.clamp = widgets.NewCheckBox("Clamp", func(bool) {
		if c := p.GetController(); c != nil && !p.ignore() {
			p.perform(operations.NewControllerToggleClamp(c))
		}
	})
	p.frozen = widgets.NewCheckBox("Frozen", func(bool) {
		if c := p.GetController(); c != nil && !p.ignore() {
			p.perform(operations.NewControllerToggleFrozen(c))
		}
	})
	p.usage = widgets.NewLabel("")

	p.container = widgets.NewContainer(
		p.list, add, remove, up, down,
		widgets.NewTitle("Controller"),
		p.name, p.minimum, p.maximum, p.value, p.clamp, p.frozen, p.usage,
	)
	return p
}

// GetController returns the active controller or nil.
func (p *ControllerPanel) GetController() *sky.Controller {
	if p.sky == nil {
		return nil
	}
	return p.sky.GetActiveController()
}

func (p *ControllerPanel) SetSky(s *sky.Sky) {
	if s == p.sky {
		return
	}
	p.valueUndo = nil
	p.attach(p, s)
	p.UpdateControllerList()
}

func (p *ControllerPanel) UpdateControllerList() {
	p.update(func() {
		p.list.RemoveAllItems()
		if p.sky != nil {
			for i, c := range p.sky.GetControllers() {
				p.list.AddItem(fmt.Sprintf("%d: %s", i, c.GetName()), c)
			}
		}
	})
	p.SelectActiveController()
}

func (p *ControllerPanel) SelectActiveController() {
	p.update(func() {
		if c := p.GetController(); c != nil {
			p.list.SetSelectionWithData(c)
		} else {
			p.list.SetSelection(-1)
		}
	})
	p.UpdateController()
}

func (p *ControllerPanel) UpdateController() {
	p.update(func() {
		c := p.GetController()
		if c == nil {
			p.name.SetText("")
			p.minimum.SetText("")
			p.maximum.SetText("")
			p.value.SetRange(0, 1)
			p.value.SetValue(0)
			p.clamp.SetChecked(false)
			p.frozen.SetChecked(false)
			p.usage.SetText("")
			return
		}
		p.name.SetText(c.GetName())
		p.minimum.SetText(formatFloat(c.GetMinimumValue()))
		p.maximum.SetText(formatFloat(c.GetMaximumValue()))
		p.value.SetRange(c.GetMinimumValue(), c.GetMaximumValue())
		p.value.SetValue(c.GetCurrentValue())
		p.clamp.SetChecked(c.GetClamp())
		p.frozen.SetChecked(c.GetFrozen())
		p.usage.SetText(fmt.Sprintf("Used by %d target links", p.sky.CountControllerUsage(c)))
	})
}

func (p *ControllerPanel) ControllerStructureChanged(*sky.Sky) {
	p.UpdateControllerList()
}

func (p *ControllerPanel) ControllerNameChanged(*sky.Sky, *sky.Controller) {
	p.UpdateControllerList()
}

func (p *ControllerPanel) ControllerChanged(_ *sky.Sky, c *sky.Controller) {
	if c.GetActive() {
		p.UpdateController()
	}
}

func (p *ControllerPanel) ControllerValueChanged(_ *sky.Sky, c *sky.Controller) {
	if c.GetActive() {
		p.update(func() { p.value.SetValue(c.GetCurrentValue()) })
	}
}

func (p *ControllerPanel) ActiveControllerChanged(*sky.Sky) {
	p.valueUndo = nil
	p.SelectActiveController()
}

func (p *ControllerPanel) LinkChanged(*sky.Sky, *sky.Link) {
	p.UpdateController()
}

func (p *ControllerPanel) TargetChanged(*sky.Sky, *sky.Layer, skye.Target) {
	p.UpdateController()
}
