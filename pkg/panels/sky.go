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

// SkyPanel edits the sky wide settings.
type SkyPanel struct {
	panel
	background *widgets.ColorBox
	compass    *widgets.CheckBox
	summary    *widgets.Label
}

func NewSkyPanel() *SkyPanel {
	p := &SkyPanel{panel: panel{title: skye.PanelName(skye.PanelSky)}}
	p.background = widgets.NewColorBox("Background", func(color skye.Color) {
		if p.ignore() {
			return
		}
		p.perform(operations.NewSkySetBgColor(p.sky, color))
	})
	p.compass = widgets.NewCheckBox("Draw Compass", func(checked bool) {
		if p.ignore() {
			return
		}
		p.sky.SetDrawCompass(checked)
	})
	p.summary = widgets.NewLabel("")
	p.container = widgets.NewContainer(
		widgets.NewTitle("Sky"),
		p.background,
		p.compass,
		p.summary,
	)
	return p
}

func (p *SkyPanel) SetSky(s *sky.Sky) {
	if s == p.sky {
		return
	}
	p.attach(p, s)
	p.UpdateSky()
}

func (p *SkyPanel) UpdateSky() {
	p.update(func() {
		if p.sky == nil {
			p.background.SetColor(skye.Black)
			p.compass.SetChecked(false)
			p.summary.SetText("")
			return
		}
		p.background.SetColor(p.sky.GetBgColor())
		p.compass.SetChecked(p.sky.GetDrawCompass())
		p.summary.SetText(fmt.Sprintf("%d controllers, %d links, %d layers",
			p.sky.GetControllerCount(), p.sky.GetLinkCount(), p.sky.GetLayerCount()))
	})
}

func (p *SkyPanel) SkyChanged(*sky.Sky)                 { p.UpdateSky() }
func (p *SkyPanel) ViewChanged(*sky.Sky)                { p.UpdateSky() }
func (p *SkyPanel) ControllerStructureChanged(*sky.Sky) { p.UpdateSky() }
func (p *SkyPanel) LinkStructureChanged(*sky.Sky)       { p.UpdateSky() }
func (p *SkyPanel) LayerStructureChanged(*sky.Sky)      { p.UpdateSky() }
