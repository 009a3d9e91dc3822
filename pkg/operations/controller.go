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

package operations

import (
	"github.com/timburks/skye/pkg/sky"
)

// ControllerAdd

type ControllerAdd struct {
	operation
	sky        *sky.Sky
	controller *sky.Controller
}

func NewControllerAdd(s *sky.Sky, c *sky.Controller) *ControllerAdd {
	if s == nil || c == nil {
		panic("operations: nil sky or controller")
	}
	if c.GetSky() != nil {
		panic("operations: controller already part of a sky")
	}
	return &ControllerAdd{operation{"Add Controller"}, s, c}
}

func (op *ControllerAdd) Redo() {
	op.sky.AddController(op.controller)
	op.sky.SetActiveController(op.controller)
}

func (op *ControllerAdd) Undo() {
	op.sky.RemoveController(op.controller)
}

// ControllerRemove removes a controller and detaches it from every link
// using it. Undo puts the controller back at its position and reattaches it.

type ControllerRemove struct {
	operation
	sky        *sky.Sky
	controller *sky.Controller
	index      int
	links      []*sky.Link // links that used the controller
}

func NewControllerRemove(c *sky.Controller) *ControllerRemove {
	if c == nil {
		panic("operations: nil controller")
	}
	s := mustSky(c.GetSky(), "controller")
	return &ControllerRemove{
		operation:  operation{"Remove Controller"},
		sky:        s,
		controller: c,
		index:      c.GetIndex(),
		links:      s.LinksUsingController(c),
	}
}

// GetLinkCount returns the number of links the remove detaches.
func (op *ControllerRemove) GetLinkCount() int {
	return len(op.links)
}

func (op *ControllerRemove) Redo() {
	for _, link := range op.links {
		link.SetController(nil)
	}
	op.sky.RemoveController(op.controller)
}

func (op *ControllerRemove) Undo() {
	op.sky.InsertControllerAt(op.controller, op.index)
	for _, link := range op.links {
		link.SetController(op.controller)
	}
	op.sky.SetActiveController(op.controller)
}

// ControllerMove moves a controller one position up or down.

type ControllerMove struct {
	operation
	sky        *sky.Sky
	controller *sky.Controller
	oldIndex   int
	newIndex   int
}

func NewControllerMoveUp(c *sky.Controller) *ControllerMove {
	return newControllerMove(c, -1, "Move Controller Up")
}

func NewControllerMoveDown(c *sky.Controller) *ControllerMove {
	return newControllerMove(c, 1, "Move Controller Down")
}

func newControllerMove(c *sky.Controller, delta int, info string) *ControllerMove {
	if c == nil {
		panic("operations: nil controller")
	}
	s := mustSky(c.GetSky(), "controller")
	index := c.GetIndex()
	if index+delta < 0 || index+delta >= s.GetControllerCount() {
		panic("operations: controller can not move further")
	}
	return &ControllerMove{operation{info}, s, c, index, index + delta}
}

func (op *ControllerMove) Redo() {
	op.sky.MoveControllerTo(op.controller, op.newIndex)
}

func (op *ControllerMove) Undo() {
	op.sky.MoveControllerTo(op.controller, op.oldIndex)
}

// ControllerSetName

type ControllerSetName struct {
	operation
	controller *sky.Controller
	oldName    string
	newName    string
}

func NewControllerSetName(c *sky.Controller, name string) *ControllerSetName {
	if c == nil {
		panic("operations: nil controller")
	}
	return &ControllerSetName{operation{"Controller Set Name"}, c, c.GetName(), name}
}

func (op *ControllerSetName) Redo() {
	op.controller.SetName(op.newName)
}

func (op *ControllerSetName) Undo() {
	op.controller.SetName(op.oldName)
}

// ControllerSetRange changes the minimum or maximum value. The current value
// may be fitted into the new range; undo restores it exactly.

type ControllerSetRange struct {
	operation
	controller *sky.Controller
	oldMinimum float32
	oldMaximum float32
	oldValue   float32
	newMinimum float32
	newMaximum float32
}

func NewControllerSetMinimum(c *sky.Controller, minimum float32) *ControllerSetRange {
	if c == nil {
		panic("operations: nil controller")
	}
	return newControllerSetRange(c, minimum, c.GetMaximumValue(), "Controller Set Minimum")
}

func NewControllerSetMaximum(c *sky.Controller, maximum float32) *ControllerSetRange {
	if c == nil {
		panic("operations: nil controller")
	}
	return newControllerSetRange(c, c.GetMinimumValue(), maximum, "Controller Set Maximum")
}

func NewControllerSetRange(c *sky.Controller, minimum, maximum float32) *ControllerSetRange {
	if c == nil {
		panic("operations: nil controller")
	}
	return newControllerSetRange(c, minimum, maximum, "Controller Set Range")
}

func newControllerSetRange(c *sky.Controller, minimum, maximum float32, info string) *ControllerSetRange {
	return &ControllerSetRange{
		operation:  operation{info},
		controller: c,
		oldMinimum: c.GetMinimumValue(),
		oldMaximum: c.GetMaximumValue(),
		oldValue:   c.GetCurrentValue(),
		newMinimum: minimum,
		newMaximum: maximum,
	}
}

func (op *ControllerSetRange) Redo() {
	op.controller.SetValueRange(op.newMinimum, op.newMaximum)
}

func (op *ControllerSetRange) Undo() {
	op.controller.RestoreRange(op.oldMinimum, op.oldMaximum, op.oldValue)
}

// ControllerSetValue

type ControllerSetValue struct {
	operation
	controller *sky.Controller
	oldValue   float32
	newValue   float32
}

func NewControllerSetValue(c *sky.Controller, value float32) *ControllerSetValue {
	if c == nil {
		panic("operations: nil controller")
	}
	return &ControllerSetValue{operation{"Controller Set Value"}, c, c.GetCurrentValue(), value}
}

// SetNewValue changes the value applied by Redo and shows it on the
// controller right away, for sliders that report values while dragged.
func (op *ControllerSetValue) SetNewValue(value float32) {
	op.newValue = value
	op.controller.SetCurrentValue(value)
}

func (op *ControllerSetValue) Redo() {
	op.controller.SetCurrentValue(op.newValue)
}

func (op *ControllerSetValue) Undo() {
	op.controller.SetCurrentValue(op.oldValue)
}

// ControllerToggleClamp

type ControllerToggleClamp struct {
	operation
	controller *sky.Controller
}

func NewControllerToggleClamp(c *sky.Controller) *ControllerToggleClamp {
	if c == nil {
		panic("operations: nil controller")
	}
	return &ControllerToggleClamp{operation{"Controller Toggle Clamp"}, c}
}

func (op *ControllerToggleClamp) Redo() {
	op.controller.SetClamp(!op.controller.GetClamp())
}

func (op *ControllerToggleClamp) Undo() {
	op.Redo()
}

// ControllerToggleFrozen

type ControllerToggleFrozen struct {
	operation
	controller *sky.Controller
}

func NewControllerToggleFrozen(c *sky.Controller) *ControllerToggleFrozen {
	if c == nil {
		panic("operations: nil controller")
	}
	return &ControllerToggleFrozen{operation{"Controller Toggle Frozen"}, c}
}

func (op *ControllerToggleFrozen) Redo() {
	op.controller.SetFrozen(!op.controller.GetFrozen())
}

func (op *ControllerToggleFrozen) Undo() {
	op.Redo()
}
