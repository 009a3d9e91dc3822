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
	skye "github.com/timburks/skye/pkg/types"
)

// A CheckBox toggles with Enter or Space.
type CheckBox struct {
	label     string
	checked   bool
	OnChanged func(checked bool)
}

func NewCheckBox(label string, onChanged func(bool)) *CheckBox {
	return &CheckBox{label: label, OnChanged: onChanged}
}

func (b *CheckBox) GetChecked() bool {
	return b.checked
}

func (b *CheckBox) SetChecked(checked bool) {
	b.checked = checked
}

func (b *CheckBox) GetHeight() int { return 1 }
func (b *CheckBox) CanFocus() bool { return true }
func (b *CheckBox) IsEditing() bool { return false }

func (b *CheckBox) HandleEvent(e *skye.Event) bool {
	if !isEnter(e) && e.Key != skye.KeySpace {
		return false
	}
	b.checked = !b.checked
	if b.OnChanged != nil {
		b.OnChanged(b.checked)
	}
	return true
}

func (b *CheckBox) Render(c Canvas, origin skye.Point, width int, focused bool) {
	col := drawLabel(c, origin, width, b.label, focused)
	mark := "[ ]"
	if b.checked {
		mark = "[x]"
	}
	limit := origin.Col + width
	col = drawText(c, col, origin.Row, limit, mark, StyleNormal)
	fill(c, col, origin.Row, limit, StyleNormal)
}
