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

type operation struct {
	Info string
}

func (op *operation) GetInfo() string {
	return op.Info
}

func mustSky(s *sky.Sky, what string) *sky.Sky {
	if s == nil {
		panic("operations: " + what + " is not part of a sky")
	}
	return s
}

func mustLayer(l *sky.Layer, what string) *sky.Layer {
	if l == nil {
		panic("operations: " + what + " is not part of a layer")
	}
	return l
}

// setter reverts a single property change of an entity.
type setter[T any] struct {
	operation
	oldValue T
	newValue T
	set      func(T)
}

func newSetter[T any](info string, oldValue, newValue T, set func(T)) setter[T] {
	return setter[T]{operation{info}, oldValue, newValue, set}
}

func (op *setter[T]) Redo() {
	op.set(op.newValue)
}

func (op *setter[T]) Undo() {
	op.set(op.oldValue)
}
