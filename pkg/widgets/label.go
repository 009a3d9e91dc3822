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

// A Label shows text that can not be focused.
type Label struct {
	text  string
	style Style
}

func NewLabel(text string) *Label {
	return &Label{text: text}
}

// NewTitle returns a label drawn in the title style.
func NewTitle(text string) *Label {
	return &Label{text: text, style: StyleTitle}
}

func (l *Label) GetText() string {
	return l.text
}

func (l *Label) SetText(text string) {
	l.text = text
}

func (l *Label) GetHeight() int { return 1 }
func (l *Label) CanFocus() bool { return false }
func (l *Label) IsEditing() bool { return false }

func (l *Label) HandleEvent(e *skye.Event) bool {
	return false
}

func (l *Label) Render(c Canvas, origin skye.Point, width int, focused bool) {
	limit := origin.Col + width
	col := drawText(c, origin.Col, origin.Row, limit, l.text, l.style)
	fill(c, col, origin.Row, limit, l.style)
}

// A Button calls OnPressed when Enter is pressed on it.
type Button struct {
	text      string
	OnPressed func()
}

func NewButton(text string, onPressed func()) *Button {
	return &Button{text: text, OnPressed: onPressed}
}

func (b *Button) GetText() string {
	return b.text
}

func (b *Button) GetHeight() int { return 1 }
func (b *Button) CanFocus() bool { return true }
func (b *Button) IsEditing() bool { return false }

func (b *Button) HandleEvent(e *skye.Event) bool {
	if !isEnter(e) && e.Key != skye.KeySpace {
		return false
	}
	if b.OnPressed != nil {
		b.OnPressed()
	}
	return true
}

func (b *Button) Render(c Canvas, origin skye.Point, width int, focused bool) {
	style := StyleNormal
	if focused {
		style = StyleFocused
	}
	limit := origin.Col + width
	col := drawText(c, origin.Col, origin.Row, limit, "["+b.text+"]", style)
	fill(c, col, origin.Row, limit, StyleNormal)
}
