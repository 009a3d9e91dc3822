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

// A TextField edits a line of text. OnChanged runs when an edit is
// committed with Enter and the text differs.
type TextField struct {
	label     string
	text      string
	edit      lineEdit
	OnChanged func(text string)
}

func NewTextField(label string, onChanged func(string)) *TextField {
	return &TextField{label: label, OnChanged: onChanged}
}

func (t *TextField) GetText() string {
	return t.text
}

func (t *TextField) SetText(text string) {
	t.text = text
}

func (t *TextField) GetHeight() int { return 1 }
func (t *TextField) CanFocus() bool { return true }

func (t *TextField) IsEditing() bool {
	return t.edit.editing
}

func (t *TextField) HandleEvent(e *skye.Event) bool {
	if !t.edit.editing {
		if !isEnter(e) {
			return false
		}
		t.edit.begin(t.text)
		return true
	}
	if t.edit.handle(e) == lineCommit && t.edit.text != t.text {
		t.text = t.edit.text
		if t.OnChanged != nil {
			t.OnChanged(t.text)
		}
	}
	return true
}

func (t *TextField) Render(c Canvas, origin skye.Point, width int, focused bool) {
	col := drawLabel(c, origin, width, t.label, focused)
	limit := origin.Col + width
	if t.edit.editing {
		t.edit.render(c, col, origin.Row, limit)
		return
	}
	col = drawText(c, col, origin.Row, limit, t.text, StyleNormal)
	fill(c, col, origin.Row, limit, StyleNormal)
}
