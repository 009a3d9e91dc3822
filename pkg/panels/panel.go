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

// Package panels implements the properties panels of the editor. A panel
// listens to a sky, shows the active entities in widgets and turns widget
// changes into operations on the sky's undo system.
package panels

import (
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/timburks/skye/pkg/sky"
	skye "github.com/timburks/skye/pkg/types"
	"github.com/timburks/skye/pkg/widgets"
)

type Panel interface {
	sky.Listener
	GetTitle() string
	GetSky() *sky.Sky
	// SetSky switches the panel to another sky or to none.
	SetSky(s *sky.Sky)
	HandleEvent(e *skye.Event) bool
	IsEditing() bool
	Render(c widgets.Canvas, rect skye.Rect)
}

// panel holds what all panels share. Widget listeners return early while
// preventUpdate is set, so refreshing widgets never feeds back into the sky.
type panel struct {
	sky.DefaultListener
	title         string
	sky           *sky.Sky
	container     *widgets.Container
	preventUpdate bool
}

func (p *panel) GetTitle() string {
	return p.title
}

func (p *panel) GetSky() *sky.Sky {
	return p.sky
}

func (p *panel) attach(l sky.Listener, s *sky.Sky) {
	if p.sky != nil {
		p.sky.RemoveListener(l)
	}
	p.sky = s
	if s != nil {
		s.AddListener(l)
	}
}

func (p *panel) HandleEvent(e *skye.Event) bool {
	return p.container.HandleEvent(e)
}

func (p *panel) IsEditing() bool {
	return p.container.IsEditing()
}

func (p *panel) Render(c widgets.Canvas, rect skye.Rect) {
	p.container.Render(c, rect)
}

// update runs f with widget listeners disabled.
func (p *panel) update(f func()) {
	prevent := p.preventUpdate
	p.preventUpdate = true
	defer func() { p.preventUpdate = prevent }()
	f()
}

// ignore reports whether a widget change must not reach the sky.
func (p *panel) ignore() bool {
	return p.preventUpdate || p.sky == nil
}

func (p *panel) perform(u skye.Undoable) {
	log.Debugf("panels: %s", u.GetInfo())
	p.sky.GetUndoSystem().Add(u, true)
}

func parseFloat(text string) (float32, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil {
		return 0, false
	}
	return float32(value), true
}

func formatFloat(value float32) string {
	return strconv.FormatFloat(float64(value), 'g', 6, 32)
}
