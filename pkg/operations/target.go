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

// TargetAddLink appends a link to a layer target.

type TargetAddLink struct {
	operation
	target *sky.ControllerTarget
	link   *sky.Link
}

func NewTargetAddLink(layer *sky.Layer, target skye.Target, link *sky.Link) *TargetAddLink {
	if layer == nil || link == nil {
		panic("operations: nil layer or link")
	}
	if link.GetSky() == nil || link.GetSky() != layer.GetSky() {
		panic("operations: link and layer are not part of the same sky")
	}
	t := layer.GetTarget(target)
	if t.HasLink(link) {
		panic("operations: link already part of the target")
	}
	return &TargetAddLink{operation{"Target Add Link"}, t, link}
}

func (op *TargetAddLink) Redo() {
	op.target.AddLink(op.link)
}

func (op *TargetAddLink) Undo() {
	op.target.RemoveLink(op.link)
}

// TargetRemoveLink

type TargetRemoveLink struct {
	operation
	target   *sky.ControllerTarget
	link     *sky.Link
	position int
}

func NewTargetRemoveLink(layer *sky.Layer, target skye.Target, link *sky.Link) *TargetRemoveLink {
	if layer == nil || link == nil {
		panic("operations: nil layer or link")
	}
	t := layer.GetTarget(target)
	position := t.IndexOfLink(link)
	if position == -1 {
		panic("operations: link is not part of the target")
	}
	return &TargetRemoveLink{operation{"Target Remove Link"}, t, link, position}
}

func (op *TargetRemoveLink) Redo() {
	op.target.RemoveLink(op.link)
}

func (op *TargetRemoveLink) Undo() {
	op.target.InsertLinkAt(op.link, op.position)
}
