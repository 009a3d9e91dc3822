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
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/timburks/skye/pkg/curve"
	"github.com/timburks/skye/pkg/operations"
	"github.com/timburks/skye/pkg/sky"
	skye "github.com/timburks/skye/pkg/types"
	"github.com/timburks/skye/pkg/widgets"
)

var interpolationNames = []string{"Constant", "Linear", "Bezier"}

// LinkPanel lists the links and edits the active one.
type LinkPanel struct {
	panel
	list          *widgets.ListBox
	name          *widgets.TextField
	controller    *widgets.ComboBox
	repeat        *widgets.SpinTextField
	interpolation *widgets.ComboBox
	points        *widgets.TextField
	usage         *widgets.Label
}

func NewLinkPanel() *LinkPanel {
	p := &LinkPanel{panel: panel{title: skye.PanelName(skye.PanelLinks)}}

	p.list = widgets.NewListBox("Links", 6, func(_ int, item *widgets.ListItem) {
		if p.ignore() {
			return
		}
		var link *sky.Link
		if item != nil {
			link = item.Data.(*sky.Link)
		}
		p.sky.SetActiveLink(link)
	})
	add := widgets.NewButton("Add", func() {
		if p.ignore() {
			return
		}
		p.perform(operations.NewLinkAdd(p.sky, sky.NewLink("Link")))
	})
	remove := widgets.NewButton("Remove", func() {
		if link := p.GetLink(); link != nil && !p.ignore() {
			p.perform(operations.NewLinkRemove(link))
		}
	})
	up := widgets.NewButton("Move Up", func() {
		if link := p.GetLink(); link != nil && !p.ignore() && link.GetIndex() > 0 {
			p.perform(operations.NewLinkMoveUp(link))
		}
	})
	down := widgets.NewButton("Move Down", func() {
		if link := p.GetLink(); link != nil && !p.ignore() && link.GetIndex() < p.sky.GetLinkCount()-1 {
			p.perform(operations.NewLinkMoveDown(link))
		}
	})

	p.name = widgets.NewTextField("Name", func(text string) {
		if link := p.GetLink(); link != nil && !p.ignore() && text != link.GetName() {
			p.perform(operations.NewLinkSetName(link, text))
		}
	})
	p.controller = widgets.NewComboBox("Controller", func(_ int, item *widgets.ListItem) {
		link := p.GetLink()
		if link == nil || p.ignore() || item == nil {
			return
		}
		c, _ := item.Data.(*sky.Controller)
		if c != link.GetController() {
			p.perform(operations.NewLinkSetController(link, c))
		}
	})
	p.repeat = widgets.NewSpinTextField("Repeat", 1, 100, func(value int) {
		if link := p.GetLink(); link != nil && !p.ignore() && value != link.GetRepeat() {
			p.perform(operations.NewLinkSetRepeat(link, value))
		}
	})
	p.interpolation = widgets.NewComboBox("Interpolation", func(index int, _ *widgets.ListItem) {
		link := p.GetLink()
		if link == nil || p.ignore() || index < 0 {
			return
		}
		c := link.GetCurve()
		if c.Interpolation != index {
			c.Interpolation = index
			p.perform(operations.NewLinkSetCurve(link, c))
		}
	})
	for i, name := range interpolationNames {
		p.interpolation.AddItem(name, i)
	}
	p.points = widgets.NewTextField("Curve", func(text string) {
		link := p.GetLink()
		if link == nil || p.ignore() {
			return
		}
		c, err := curve.Parse(text, link.GetCurve().Interpolation)
		if err != nil {
			log.Warnf("panels: %v", err)
			p.UpdateLink()
			return
		}
		if !c.IsEqualTo(link.GetCurve()) {
			p.perform(operations.NewLinkSetCurve(link, c))
		}
	})
	p.usage = widgets.NewLabel("")

	p.container = widgets.NewContainer(
		p.list, add, remove, up, down,
		widgets.NewTitle("Link"),
		p.name, p.controller, p.repeat, p.interpolation, p.points, p.usage,
	)
	return p
}

// GetLink returns the active link or nil.
func (p *LinkPanel) GetLink() *sky.Link {
	if p.sky == nil {
		return nil
	}
	return p.sky.GetActiveLink()
}

func (p *LinkPanel) SetSky(s *sky.Sky) {
	if s == p.sky {
		return
	}
	p.attach(p, s)
	p.UpdateControllerList()
	p.UpdateLinkList()
}

func (p *LinkPanel) UpdateLinkList() {
	p.update(func() {
		p.list.RemoveAllItems()
		if p.sky != nil {
			for i, link := range p.sky.GetLinks() {
				p.list.AddItem(fmt.Sprintf("%d: %s", i, link.GetName()), link)
			}
		}
	})
	p.SelectActiveLink()
}

// UpdateControllerList fills the controller choices. The first choice is
// no controller.
func (p *LinkPanel) UpdateControllerList() {
	p.update(func() {
		p.controller.RemoveAllItems()
		p.controller.AddItem("<none>", nil)
		if p.sky != nil {
			for i, c := range p.sky.GetControllers() {
				p.controller.AddItem(strconv.Itoa(i)+": "+c.GetName(), c)
			}
		}
	})
	p.UpdateLink()
}

func (p *LinkPanel) SelectActiveLink() {
	p.update(func() {
		if link := p.GetLink(); link != nil {
			p.list.SetSelectionWithData(link)
		} else {
			p.list.SetSelection(-1)
		}
	})
	p.UpdateLink()
}

func (p *LinkPanel) UpdateLink() {
	p.update(func() {
		link := p.GetLink()
		if link == nil {
			p.name.SetText("")
			p.controller.SetSelection(0)
			p.repeat.SetValue(1)
			p.interpolation.SetSelection(curve.InterpolateLinear)
			p.points.SetText("")
			p.usage.SetText("")
			return
		}
		p.name.SetText(link.GetName())
		if c := link.GetController(); c != nil {
			p.controller.SetSelectionWithData(c)
		} else {
			p.controller.SetSelection(0)
		}
		p.repeat.SetValue(link.GetRepeat())
		c := link.GetCurve()
		if c.Interpolation >= 0 && c.Interpolation < len(interpolationNames) {
			p.interpolation.SetSelection(c.Interpolation)
		}
		p.points.SetText(c.String())
		p.usage.SetText(fmt.Sprintf("Used by %d targets", p.sky.CountLinkUsage(link)))
	})
}

func (p *LinkPanel) LinkStructureChanged(*sky.Sky)       { p.UpdateLinkList() }
func (p *LinkPanel) LinkNameChanged(*sky.Sky, *sky.Link) { p.UpdateLinkList() }
func (p *LinkPanel) ActiveLinkChanged(*sky.Sky)          { p.SelectActiveLink() }

func (p *LinkPanel) ControllerStructureChanged(*sky.Sky) {
	p.UpdateControllerList()
}

func (p *LinkPanel) ControllerNameChanged(*sky.Sky, *sky.Controller) {
	p.UpdateControllerList()
}

func (p *LinkPanel) LinkChanged(_ *sky.Sky, link *sky.Link) {
	if link.GetActive() {
		p.UpdateLink()
	}
}

func (p *LinkPanel) TargetChanged(*sky.Sky, *sky.Layer, skye.Target) {
	p.UpdateLink()
}
