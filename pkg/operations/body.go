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
	skye "github.com/timburks/skye/pkg/types"
)

// BodyAdd

type BodyAdd struct {
	operation
	layer *sky.Layer
	body  *sky.Body
	index int
}

func NewBodyAdd(layer *sky.Layer, body *sky.Body) *BodyAdd {
	if layer == nil || body == nil {
		panic("operations: nil layer or body")
	}
	if body.GetLayer() != nil {
		panic("operations: body already part of a layer")
	}
	return &BodyAdd{operation{"Add Body"}, layer, body, layer.GetBodyCount()}
}

func (op *BodyAdd) Redo() {
	op.layer.InsertBodyAt(op.body, op.index)
	op.layer.SetActiveBody(op.body)
}

func (op *BodyAdd) Undo() {
	op.layer.RemoveBody(op.body)
}

// BodyDuplicate inserts a copy of a body right after it.

type BodyDuplicate struct {
	BodyAdd
}

func NewBodyDuplicate(body *sky.Body) *BodyDuplicate {
	if body == nil {
		panic("operations: nil body")
	}
	layer := mustLayer(body.GetLayer(), "body")
	return &BodyDuplicate{BodyAdd{
		operation: operation{"Duplicate Body"},
		layer:     layer,
		body:      body.Duplicate(),
		index:     body.GetIndex() + 1,
	}}
}

// GetDuplicate returns the body the operation inserts.
func (op *BodyDuplicate) GetDuplicate() *sky.Body {
	return op.body
}

// BodyRemove

type BodyRemove struct {
	operation
	layer *sky.Layer
	body  *sky.Body
	index int
}

func NewBodyRemove(body *sky.Body) *BodyRemove {
	if body == nil {
		panic("operations: nil body")
	}
	layer := mustLayer(body.GetLayer(), "body")
	return &BodyRemove{operation{"Remove Body"}, layer, body, body.GetIndex()}
}

func (op *BodyRemove) Redo() {
	op.layer.RemoveBody(op.body)
}

func (op *BodyRemove) Undo() {
	op.layer.InsertBodyAt(op.body, op.index)
	op.layer.SetActiveBody(op.body)
}

// BodyMove

type BodyMove struct {
	operation
	layer    *sky.Layer
	body     *sky.Body
	oldIndex int
	newIndex int
}

func NewBodyMoveUp(body *sky.Body) *BodyMove {
	return newBodyMove(body, -1, "Move Body Up")
}

func NewBodyMoveDown(body *sky.Body) *BodyMove {
	return newBodyMove(body, 1, "Move Body Down")
}

func newBodyMove(body *sky.Body, delta int, info string) *BodyMove {
	if body == nil {
		panic("operations: nil body")
	}
	layer := mustLayer(body.GetLayer(), "body")
	index := body.GetIndex()
	if index+delta < 0 || index+delta >= layer.GetBodyCount() {
		panic("operations: body can not move further")
	}
	return &BodyMove{operation{info}, layer, body, index, index + delta}
}

func (op *BodyMove) Redo() {
	op.layer.MoveBodyTo(op.body, op.newIndex)
}

func (op *BodyMove) Undo() {
	op.layer.MoveBodyTo(op.body, op.oldIndex)
}

func mustBodyNotNil(body *sky.Body) *sky.Body {
	if body == nil {
		panic("operations: nil body")
	}
	return body
}

type BodySetSkin struct{ setter[string] }

func NewBodySetSkin(body *sky.Body, path string) *BodySetSkin {
	b := mustBodyNotNil(body)
	return &BodySetSkin{newSetter("Body Set Skin", b.GetSkinPath(), path, b.SetSkinPath)}
}

type BodySetOrientation struct{ setter[skye.Vector] }

func NewBodySetOrientation(body *sky.Body, orientation skye.Vector) *BodySetOrientation {
	b := mustBodyNotNil(body)
	return &BodySetOrientation{newSetter("Body Set Orientation", b.GetOrientation(), orientation, b.SetOrientation)}
}

type BodySetSize struct{ setter[skye.Vector2] }

func NewBodySetSize(body *sky.Body, size skye.Vector2) *BodySetSize {
	b := mustBodyNotNil(body)
	return &BodySetSize{newSetter("Body Set Size", b.GetSize(), size, b.SetSize)}
}

type BodySetColor struct{ setter[skye.Color] }

func NewBodySetColor(body *sky.Body, color skye.Color) *BodySetColor {
	b := mustBodyNotNil(body)
	return &BodySetColor{newSetter("Body Set Color", b.GetColor(), color, b.SetColor)}
}
