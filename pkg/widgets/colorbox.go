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
	"strings"

	skye "github.com/timburks/skye/pkg/types"
)

// A ColorBox shows a color swatch and its hex value. Enter edits the hex
// value. Text that is not a color is dropped.
type ColorBox struct {
	label     string
	color     skye.Color
	edit      lineEdit
	OnChanged func(skye.Color)
}

func NewColorBox(label string, onChanged func(skye.Color)) *ColorBox {
	return &ColorBox{label: label, color: skye.White, OnChanged: onChanged}
}

func (b *ColorBox) GetColor() skye.Color {
	return b.color
}

func (b *ColorBox) SetColor(color skye.Color) {
	b.color = color
}

func (b *ColorBox) GetHeight() int { return 1 }
func (b *ColorBox) CanFocus() bool { return true }

func (b *ColorBox) IsEditing() bool {
	return b.edit.editing
}

func (b *ColorBox) HandleEvent(e *skye.Event) bool {
	if !b.edit.editing {
		if !isEnter(e) {
			return false
		}
		b.edit.begin(b.color.Hex())
		return true
	}
	if b.edit.handle(e) != lineCommit {
		return true
	}
	text := strings.TrimSpace(b.edit.text)
	if !strings.HasPrefix(text, "#") {
		text = "#" + text
	}
	color, err := skye.ParseColor(text)
	if err != nil || color.IsEqualTo(b.color) {
		return true
	}
	b.color = color
	if b.OnChanged != nil {
		b.OnChanged(color)
	}
	return true
}

func (b *ColorBox) Render(c Canvas, origin skye.Point, width int, focused bool) {
	col := drawLabel(c, origin, width, b.label, focused)
	limit := origin.Col + width
	for i := 0; i < 3 && col < limit; i++ {
		c.SetSwatch(col, origin.Row, b.color)
		col++
	}
	col = drawText(c, col, origin.Row, limit, " ", StyleNormal)
	if b.edit.editing {
		b.edit.render(c, col, origin.Row, limit)
		return
	}
	col = drawText(c, col, origin.Row, limit, b.color.Hex(), StyleNormal)
	fill(c, col, origin.Row, limit, StyleNormal)
}
