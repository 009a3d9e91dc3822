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
	"unicode/utf8"

	skye "github.com/timburks/skye/pkg/types"
)

// lineEdit is the text input shared by the editable widgets.
type lineEdit struct {
	text    string
	editing bool
}

const (
	lineNone = iota
	lineCommit
	lineCancel
)

func (l *lineEdit) begin(text string) {
	l.text = text
	l.editing = true
}

// handle edits the text and reports whether the input ended.
func (l *lineEdit) handle(e *skye.Event) int {
	switch {
	case e.Key == skye.KeyEnter:
		l.editing = false
		return lineCommit
	case e.Key == skye.KeyEsc:
		l.editing = false
		return lineCancel
	case e.Key == skye.KeyBackspace2 || e.Key == skye.KeyCtrlH || e.Key == skye.KeyDelete:
		if len(l.text) > 0 {
			_, size := utf8.DecodeLastRuneInString(l.text)
			l.text = l.text[:len(l.text)-size]
		}
	case e.Key == skye.KeySpace:
		l.text += " "
	case e.Key == skye.KeyUnsupported && e.Ch != 0:
		l.text += string(e.Ch)
	}
	return lineNone
}

// render draws the edited text followed by a cursor block.
func (l *lineEdit) render(c Canvas, col, row, limit int) {
	col = drawText(c, col, row, limit, l.text, StyleEditing)
	if col < limit {
		c.SetCell(col, row, ' ', StyleFocused)
		col++
	}
	fill(c, col, row, limit, StyleNormal)
}
