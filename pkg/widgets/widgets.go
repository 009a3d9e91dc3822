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

// Package widgets implements the terminal controls that properties panels
// are built from. Widgets draw on a Canvas and react to key events. They
// call their listeners for changes made by the user only; setters called by
// code are silent unless noted.
package widgets

import (
	"github.com/mattn/go-runewidth"

	skye "github.com/timburks/skye/pkg/types"
)

// Style selects the colors of a cell. The screen maps styles to terminal
// attributes.
type Style int

const (
	StyleNormal Style = iota
	StyleLabel
	StyleFocused
	StyleEditing
	StyleSelected
	StyleTitle
)

// LabelWidth is the column where values start.
const LabelWidth = 16

// A Canvas is a grid of cells.
type Canvas interface {
	SetCell(col, row int, ch rune, style Style)
	// SetSwatch fills a cell with a color.
	SetSwatch(col, row int, color skye.Color)
}

type Widget interface {
	// GetHeight returns the number of rows the widget draws.
	GetHeight() int
	Render(c Canvas, origin skye.Point, width int, focused bool)
	CanFocus() bool
	// HandleEvent returns false if the event was not used.
	HandleEvent(e *skye.Event) bool
	// IsEditing is true while the widget wants all key events.
	IsEditing() bool
}

// drawText draws text from col up to but not including limit and returns
// the column after the last drawn cell.
func drawText(c Canvas, col, row, limit int, text string, style Style) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > limit {
			break
		}
		c.SetCell(col, row, ch, style)
		col += w
	}
	return col
}

// fill draws spaces from col up to limit.
func fill(c Canvas, col, row, limit int, style Style) {
	for ; col < limit; col++ {
		c.SetCell(col, row, ' ', style)
	}
}

// drawLabel draws a label padded to LabelWidth and returns the value column.
func drawLabel(c Canvas, origin skye.Point, width int, label string, focused bool) int {
	style := StyleLabel
	if focused {
		style = StyleFocused
	}
	limit := origin.Col + min(LabelWidth, width)
	text := runewidth.Truncate(label, LabelWidth-1, "")
	col := drawText(c, origin.Col, origin.Row, limit, text, style)
	fill(c, col, origin.Row, limit, style)
	return limit
}

func isKey(e *skye.Event, key skye.Key, ch rune) bool {
	if e.Key == key && key != skye.KeyUnsupported {
		return true
	}
	return ch != 0 && e.Key == skye.KeyUnsupported && e.Ch == ch
}

func isPrevious(e *skye.Event) bool {
	return isKey(e, skye.KeyArrowLeft, 'h')
}

func isNext(e *skye.Event) bool {
	return isKey(e, skye.KeyArrowRight, 'l')
}

func isEnter(e *skye.Event) bool {
	return e.Key == skye.KeyEnter
}
