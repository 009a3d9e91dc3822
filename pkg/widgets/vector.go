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

package widgets

import (
	"strconv"
	"strings"

	skye "github.com/timburks/skye/pkg/types"
)

// components edits a fixed number of floats. Left and right pick the
// component, Enter edits it. A commit that happens while the change
// listener is still running is dropped.
type components struct {
	label         string
	names         []string
	values        []float32
	cursor        int
	edit          lineEdit
	preventUpdate bool
	changed       func()
}

func (v *components) IsEditing() bool {
	return v.edit.editing
}

func (v *components) HandleEvent(e *skye.Event) bool {
	if v.edit.editing {
		if v.edit.handle(e) == lineCommit {
			v.commit(v.edit.text)
		}
		return true
	}
	switch {
	case isPrevious(e):
		v.cursor = max(0, v.cursor-1)
	case isNext(e):
		v.cursor = min(len(v.values)-1, v.cursor+1)
	case isEnter(e):
		v.edit.begin(formatFloat(v.values[v.cursor]))
	default:
		return false
	}
	return true
}

func (v *components) commit(text string) {
	if v.preventUpdate {
		return
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil || float32(value) == v.values[v.cursor] {
		return
	}
	v.values[v.cursor] = float32(value)

	v.preventUpdate = true
	defer func() { v.preventUpdate = false }()
	v.changed()
}

func (v *components) Render(c Canvas, origin skye.Point, width int, focused bool) {
	col := drawLabel(c, origin, width, v.label, focused)
	limit := origin.Col + width
	for i, value := range v.values {
		col = drawText(c, col, origin.Row, limit, v.names[i]+":", StyleLabel)
		if v.edit.editing && i == v.cursor {
			col = drawText(c, col, origin.Row, limit, v.edit.text+"_", StyleEditing)
		} else {
			style := StyleNormal
			if focused && i == v.cursor {
				style = StyleSelected
			}
			col = drawText(c, col, origin.Row, limit, formatFloat(value), style)
		}
		col = drawText(c, col, origin.Row, limit, " ", StyleNormal)
	}
	fill(c, col, origin.Row, limit, StyleNormal)
}

func formatFloat(value float32) string {
	return strconv.FormatFloat(float64(value), 'g', 6, 32)
}

// EditVector edits the three components of a vector.
type EditVector struct {
	components
	OnChanged func(skye.Vector)
}

func NewEditVector(label string, onChanged func(skye.Vector)) *EditVector {
	v := &EditVector{OnChanged: onChanged}
	v.components = components{
		label:  label,
		names:  []string{"x", "y", "z"},
		values: make([]float32, 3),
	}
	v.changed = func() {
		if v.OnChanged != nil {
			v.OnChanged(v.GetVector())
		}
	}
	return v
}

func (v *EditVector) GetVector() skye.Vector {
	return skye.Vector{X: v.values[0], Y: v.values[1], Z: v.values[2]}
}

func (v *EditVector) SetVector(vector skye.Vector) {
	v.values[0], v.values[1], v.values[2] = vector.X, vector.Y, vector.Z
}

func (v *EditVector) GetHeight() int { return 1 }
func (v *EditVector) CanFocus() bool { return true }

// EditVector2 edits the two components of a 2D vector.
type EditVector2 struct {
	components
	OnChanged func(skye.Vector2)
}

func NewEditVector2(label string, onChanged func(skye.Vector2)) *EditVector2 {
	v := &EditVector2{OnChanged: onChanged}
	v.components = components{
		label:  label,
		names:  []string{"x", "y"},
		values: make([]float32, 2),
	}
	v.changed = func() {
		if v.OnChanged != nil {
			v.OnChanged(v.GetVector2())
		}
	}
	return v
}

func (v *EditVector2) GetVector2() skye.Vector2 {
	return skye.Vector2{X: v.values[0], Y: v.values[1]}
}

func (v *EditVector2) SetVector2(vector skye.Vector2) {
	v.values[0], v.values[1] = vector.X, vector.Y
}

func (v *EditVector2) GetHeight() int { return 1 }
func (v *EditVector2) CanFocus() bool { return true }
