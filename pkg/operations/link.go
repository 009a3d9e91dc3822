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
	"github.com/timburks/skye/pkg/curve"
	"github.com/timburks/skye/pkg/sky"
)

// LinkAdd

type LinkAdd struct {
	operation
	sky  *sky.Sky
	link *sky.Link
}

func NewLinkAdd(s *sky.Sky, link *sky.Link) *LinkAdd {
	if s == nil || link == nil {
		panic("operations: nil sky or link")
	}
	if link.GetSky() != nil {
		panic("operations: link already part of a sky")
	}
	if c := link.GetController(); c != nil && c.GetSky() != s {
		panic("operations: link controller is not part of the sky")
	}
	return &LinkAdd{operation{"Add Link"}, s, link}
}

func (op *LinkAdd) Redo() {
	op.sky.AddLink(op.link)
	op.sky.SetActiveLink(op.link)
}

func (op *LinkAdd) Undo() {
	op.sky.RemoveLink(op.link)
}

// LinkRemove removes a link from every layer target holding it and then
// from the sky. Undo restores the link and its target positions.

type LinkRemove struct {
	operation
	sky     *sky.Sky
	link    *sky.Link
	index   int
	targets []sky.TargetReference
}

func NewLinkRemove(link *sky.Link) *LinkRemove {
	if link == nil {
		panic("operations: nil link")
	}
	s := mustSky(link.GetSky(), "link")
	return &LinkRemove{
		operation: operation{"Remove Link"},
		sky:       s,
		link:      link,
		index:     link.GetIndex(),
		targets:   s.TargetsUsingLink(link),
	}
}

// GetTargetCount returns the number of targets the remove detaches.
func (op *LinkRemove) GetTargetCount() int {
	return len(op.targets)
}

func (op *LinkRemove) Redo() {
	for _, ref := range op.targets {
		ref.Layer.GetTarget(ref.Target).RemoveLink(op.link)
	}
	op.sky.RemoveLink(op.link)
}

func (op *LinkRemove) Undo() {
	op.sky.InsertLinkAt(op.link, op.index)
	for _, ref := range op.targets {
		ref.Layer.GetTarget(ref.Target).InsertLinkAt(op.link, ref.Position)
	}
	op.sky.SetActiveLink(op.link)
}

// LinkMove

type LinkMove struct {
	operation
	sky      *sky.Sky
	link     *sky.Link
	oldIndex int
	newIndex int
}

func NewLinkMoveUp(link *sky.Link) *LinkMove {
	return newLinkMove(link, -1, "Move Link Up")
}

func NewLinkMoveDown(link *sky.Link) *LinkMove {
	return newLinkMove(link, 1, "Move Link Down")
}

func newLinkMove(link *sky.Link, delta int, info string) *LinkMove {
	if link == nil {
		panic("operations: nil link")
	}
	s := mustSky(link.GetSky(), "link")
	index := link.GetIndex()
	if index+delta < 0 || index+delta >= s.GetLinkCount() {
		panic("operations: link can not move further")
	}
	return &LinkMove{operation{info}, s, link, index, index + delta}
}

func (op *LinkMove) Redo() {
	op.sky.MoveLinkTo(op.link, op.newIndex)
}

func (op *LinkMove) Undo() {
	op.sky.MoveLinkTo(op.link, op.oldIndex)
}

// LinkSetName

type LinkSetName struct {
	operation
	link    *sky.Link
	oldName string
	newName string
}

func NewLinkSetName(link *sky.Link, name string) *LinkSetName {
	if link == nil {
		panic("operations: nil link")
	}
	return &LinkSetName{operation{"Link Set Name"}, link, link.GetName(), name}
}

func (op *LinkSetName) Redo() {
	op.link.SetName(op.newName)
}

func (op *LinkSetName) Undo() {
	op.link.SetName(op.oldName)
}

// LinkSetController assigns the driving controller, or none when nil.

type LinkSetController struct {
	operation
	link          *sky.Link
	oldController *sky.Controller
	newController *sky.Controller
}

func NewLinkSetController(link *sky.Link, c *sky.Controller) *LinkSetController {
	if link == nil {
		panic("operations: nil link")
	}
	if c != nil && c.GetSky() != link.GetSky() {
		panic("operations: controller and link are not part of the same sky")
	}
	return &LinkSetController{operation{"Link Set Controller"}, link, link.GetController(), c}
}

func (op *LinkSetController) Redo() {
	op.link.SetController(op.newController)
}

func (op *LinkSetController) Undo() {
	op.link.SetController(op.oldController)
}

// LinkSetRepeat

type LinkSetRepeat struct {
	operation
	link      *sky.Link
	oldRepeat int
	newRepeat int
}

func NewLinkSetRepeat(link *sky.Link, repeat int) *LinkSetRepeat {
	if link == nil {
		panic("operations: nil link")
	}
	return &LinkSetRepeat{operation{"Link Set Repeat"}, link, link.GetRepeat(), repeat}
}

func (op *LinkSetRepeat) Redo() {
	op.link.SetRepeat(op.newRepeat)
}

func (op *LinkSetRepeat) Undo() {
	op.link.SetRepeat(op.oldRepeat)
}

// LinkSetCurve

type LinkSetCurve struct {
	operation
	link     *sky.Link
	oldCurve curve.Bezier
	newCurve curve.Bezier
}

func NewLinkSetCurve(link *sky.Link, c curve.Bezier) *LinkSetCurve {
	if link == nil {
		panic("operations: nil link")
	}
	return &LinkSetCurve{operation{"Link Set Curve"}, link, link.GetCurve(), c.Copy()}
}

func (op *LinkSetCurve) Redo() {
	op.link.SetCurve(op.newCurve)
}

func (op *LinkSetCurve) Undo() {
	op.link.SetCurve(op.oldCurve)
}
