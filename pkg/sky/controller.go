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
	"github.com/chewxy/math32"
	"github.com/google/uuid"
)

// A Controller is a named scalar that drives links.
type Controller struct {
	id      uuid.UUID
	sky     *Sky
	index   int
	name    string
	minimum float32
	maximum float32
	value   float32
	clamp   bool // clamp values to the range, otherwise wrap
	frozen  bool // value changes are ignored
	active  bool
}

func NewController(name string) *Controller {
	return &Controller{
		id:      uuid.New(),
		index:   -1,
		name:    name,
		maximum: 1,
		clamp:   true,
	}
}

func (c *Controller) GetID() uuid.UUID {
	return c.id
}

// GetSky returns the owning sky or nil.
func (c *Controller) GetSky() *Sky {
	return c.sky
}

// GetIndex returns the position in the owning sky or -1.
func (c *Controller) GetIndex() int {
	return c.index
}

func (c *Controller) GetActive() bool {
	return c.active
}

func (c *Controller) GetName() string {
	return c.name
}

func (c *Controller) SetName(name string) {
	if name == c.name {
		return
	}
	c.name = name
	if c.sky != nil {
		c.sky.NotifyControllerNameChanged(c)
	}
}

func (c *Controller) GetMinimumValue() float32 {
	return c.minimum
}

func (c *Controller) GetMaximumValue() float32 {
	return c.maximum
}

// SetValueRange sets the range, raising maximum to minimum if needed, and
// fits the current value into the new range.
func (c *Controller) SetValueRange(minimum, maximum float32) {
	if maximum < minimum {
		maximum = minimum
	}
	if minimum == c.minimum && maximum == c.maximum {
		return
	}
	c.minimum = minimum
	c.maximum = maximum
	value := c.fit(c.value)

	if c.sky != nil {
		c.sky.NotifyControllerChanged(c)
	}
	if value != c.value {
		c.value = value
		if c.sky != nil {
			c.sky.NotifyControllerValueChanged(c)
		}
	}
}

// RestoreRange sets range and value exactly as given, ignoring the frozen
// flag. It brings back a state captured earlier.
func (c *Controller) RestoreRange(minimum, maximum, value float32) {
	rangeChanged := minimum != c.minimum || maximum != c.maximum
	valueChanged := value != c.value
	c.minimum = minimum
	c.maximum = maximum
	c.value = value
	if c.sky == nil {
		return
	}
	if rangeChanged {
		c.sky.NotifyControllerChanged(c)
	}
	if valueChanged {
		c.sky.NotifyControllerValueChanged(c)
	}
}

func (c *Controller) GetCurrentValue() float32 {
	return c.value
}

// SetCurrentValue does nothing while the controller is frozen.
func (c *Controller) SetCurrentValue(value float32) {
	if c.frozen {
		return
	}
	value = c.fit(value)
	if value == c.value {
		return
	}
	c.value = value
	if c.sky != nil {
		c.sky.NotifyControllerValueChanged(c)
	}
}

// fit clamps or wraps a value into the range.
func (c *Controller) fit(value float32) float32 {
	if c.clamp {
		return math32.Max(c.minimum, math32.Min(value, c.maximum))
	}
	width := c.maximum - c.minimum
	if width <= 0 {
		return c.minimum
	}
	offset := math32.Mod(value-c.minimum, width)
	if offset < 0 {
		offset += width
	}
	return c.minimum + offset
}

func (c *Controller) GetClamp() bool {
	return c.clamp
}

func (c *Controller) SetClamp(clamp bool) {
	if clamp == c.clamp {
		return
	}
	c.clamp = clamp
	if c.sky != nil {
		c.sky.NotifyControllerChanged(c)
	}
}

func (c *Controller) GetFrozen() bool {
	return c.frozen
}

func (c *Controller) SetFrozen(frozen bool) {
	if frozen == c.frozen {
		return
	}
	c.frozen = frozen
	if c.sky != nil {
		c.sky.NotifyControllerChanged(c)
	}
}
