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

	skye "github.com/timburks/skye/pkg/types"
)

// DefaultBodySize is the size of a new body in degrees.
var DefaultBodySize = skye.Vector2{X: 5, Y: 5}

// A Body is a celestial object (sun, moon) rendered within a layer.
type Body struct {
	id          uuid.UUID
	layer       *Layer
	orientation skye.Vector  // degrees
	size        skye.Vector2 // degrees
	color       skye.Color
	skinPath    string
	active      bool
}

func NewBody() *Body {
	return &Body{
		id:    uuid.New(),
		size:  DefaultBodySize,
		color: skye.White,
	}
}

// Duplicate returns an unowned body with the same properties.
func (b *Body) Duplicate() *Body {
	return &Body{
		id:          uuid.New(),
		orientation: b.orientation,
		size:        b.size,
		color:       b.color,
		skinPath:    b.skinPath,
	}
}

func (b *Body) GetID() uuid.UUID {
	return b.id
}

// GetLayer returns the owning layer or nil.
func (b *Body) GetLayer() *Layer {
	return b.layer
}

// GetIndex returns the position in the owning layer or -1.
func (b *Body) GetIndex() int {
	if b.layer == nil {
		return -1
	}
	return b.layer.IndexOfBody(b)
}

func (b *Body) GetActive() bool {
	return b.active
}

func (b *Body) notifyChanged() {
	if b.layer != nil && b.layer.sky != nil {
		b.layer.sky.NotifyBodyChanged(b.layer, b)
	}
}

func (b *Body) GetOrientation() skye.Vector {
	return b.orientation
}

func (b *Body) SetOrientation(orientation skye.Vector) {
	if orientation.IsEqualTo(b.orientation) {
		return
	}
	b.orientation = orientation
	b.notifyChanged()
}

func (b *Body) GetSize() skye.Vector2 {
	return b.size
}

func (b *Body) SetSize(size skye.Vector2) {
	if size.IsEqualTo(b.size) {
		return
	}
	b.size = size
	b.notifyChanged()
}

func (b *Body) GetColor() skye.Color {
	return b.color
}

func (b *Body) SetColor(color skye.Color) {
	if color.IsEqualTo(b.color) {
		return
	}
	b.color = color
	b.notifyChanged()
}

func (b *Body) GetSkinPath() string {
	return b.skinPath
}

func (b *Body) SetSkinPath(path string) {
	if path == b.skinPath {
		return
	}
	b.skinPath = path
	b.notifyChanged()
}
