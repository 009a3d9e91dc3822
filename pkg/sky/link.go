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

package sky

import (
	"github.com/google/uuid"

	"github.com/timburks/skye/pkg/curve"
)

// A Link maps the value of a controller through a curve.
type Link struct {
	id         uuid.UUID
	sky        *Sky
	index      int
	name       string
	controller *Controller // nil if unassigned
	curve      curve.Bezier
	repeat     int
	active     bool
}

func NewLink(name string) *Link {
	if name == "" {
		name = "Link"
	}
	return &Link{
		id:     uuid.New(),
		index:  -1,
		name:   name,
		curve:  curve.NewDefaultLinear(),
		repeat: 1,
	}
}

func (l *Link) GetID() uuid.UUID {
	return l.id
}

func (l *Link) GetSky() *Sky {
	return l.sky
}

// GetIndex returns the position in the owning sky or -1.
func (l *Link) GetIndex() int {
	return l.index
}

func (l *Link) GetActive() bool {
	return l.active
}

func (l *Link) GetName() string {
	return l.name
}

func (l *Link) SetName(name string) {
	if name == l.name {
		return
	}
	l.name = name
	if l.sky != nil {
		l.sky.NotifyLinkNameChanged(l)
	}
}

func (l *Link) GetController() *Controller {
	return l.controller
}

func (l *Link) SetController(c *Controller) {
	if c == l.controller {
		return
	}
	l.controller = c
	if l.sky != nil {
		l.sky.NotifyLinkChanged(l)
	}
}

// GetCurve returns a copy of the curve.
func (l *Link) GetCurve() curve.Bezier {
	return l.curve.Copy()
}

func (l *Link) SetCurve(c curve.Bezier) {
	if c.IsEqualTo(l.curve) {
		return
	}
	l.curve = c.Copy()
	if l.sky != nil {
		l.sky.NotifyLinkChanged(l)
	}
}

func (l *Link) GetRepeat() int {
	return l.repeat
}

// SetRepeat sets the number of curve repetitions. Values below 1 become 1.
func (l *Link) SetRepeat(repeat int) {
	if repeat < 1 {
		repeat = 1
	}
	if repeat == l.repeat {
		return
	}
	l.repeat = repeat
	if l.sky != nil {
		l.sky.NotifyLinkChanged(l)
	}
}
