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
	"fmt"

	skye "github.com/timburks/skye/pkg/types"
)

type ListItem struct {
	Text string
	Data any
}

// selection is the item list shared by ListBox and ComboBox. Unlike other
// setters, SetSelection notifies OnSelectionChanged when the selection
// changes, so owners guard their own updates.
type selection struct {
	items              []ListItem
	selected           int
	OnSelectionChanged func(index int, item *ListItem)
}

func (s *selection) GetItemCount() int {
	return len(s.items)
}

func (s *selection) GetItemAt(index int) *ListItem {
	return &s.items[index]
}

func (s *selection) AddItem(text string, data any) {
	s.items = append(s.items, ListItem{Text: text, Data: data})
}

func (s *selection) SetItemText(index int, text string) {
	s.items[index].Text = text
}

// RemoveAllItems clears the list and the selection without notifying.
func (s *selection) RemoveAllItems() {
	s.items = nil
	s.selected = -1
}

// IndexOfData returns the index of the first item holding data or -1.
func (s *selection) IndexOfData(data any) int {
	for i, item := range s.items {
		if item.Data == data {
			return i
		}
	}
	return -1
}

// GetSelection returns the selected index or -1.
func (s *selection) GetSelection() int {
	return s.selected
}

// GetSelectedItem returns nil when nothing is selected.
func (s *selection) GetSelectedItem() *ListItem {
	if s.selected < 0 || s.selected >= len(s.items) {
		return nil
	}
	return &s.items[s.selected]
}

func (s *selection) SetSelection(index int) {
	if index < -1 || index >= len(s.items) {
		panic(fmt.Sprintf("widgets: selection %d out of range", index))
	}
	if index == s.selected {
		return
	}
	s.selected = index
	if s.OnSelectionChanged != nil {
		s.OnSelectionChanged(index, s.GetSelectedItem())
	}
}

// SetSelectionWithData selects the item holding data or nothing.
func (s *selection) SetSelectionWithData(data any) {
	s.SetSelection(s.IndexOfData(data))
}

func (s *selection) step(e *skye.Event) bool {
	switch {
	case isPrevious(e):
		if s.selected > 0 {
			s.SetSelection(s.selected - 1)
		}
	case isNext(e):
		if s.selected < len(s.items)-1 {
			s.SetSelection(s.selected + 1)
		}
	default:
		return false
	}
	return true
}

// A ListBox shows a title row and a fixed number of item rows, scrolled to
// keep the selection visible. Left and right change the selection.
type ListBox struct {
	selection
	label  string
	rows   int
	offset int
}

func NewListBox(label string, rows int, onSelectionChanged func(int, *ListItem)) *ListBox {
	return &ListBox{
		selection: selection{selected: -1, OnSelectionChanged: onSelectionChanged},
		label:     label,
		rows:      max(rows, 1),
	}
}

func (b *ListBox) GetHeight() int { return 1 + b.rows }
func (b *ListBox) CanFocus() bool { return true }
func (b *ListBox) IsEditing() bool { return false }

func (b *ListBox) HandleEvent(e *skye.Event) bool {
	return b.step(e)
}

func (b *ListBox) Render(c Canvas, origin skye.Point, width int, focused bool) {
	limit := origin.Col + width
	title := fmt.Sprintf("%s (%d)", b.label, len(b.items))
	style := StyleTitle
	if focused {
		style = StyleFocused
	}
	col := drawText(c, origin.Col, origin.Row, limit, title, style)
	fill(c, col, origin.Row, limit, StyleNormal)

	if b.selected >= 0 {
		if b.selected < b.offset {
			b.offset = b.selected
		} else if b.selected >= b.offset+b.rows {
			b.offset = b.selected - b.rows + 1
		}
	}
	b.offset = max(0, min(b.offset, len(b.items)-b.rows))

	for i := 0; i < b.rows; i++ {
		row := origin.Row + 1 + i
		index := b.offset + i
		if index >= len(b.items) {
			fill(c, origin.Col, row, limit, StyleNormal)
			continue
		}
		style, marker := StyleNormal, "  "
		if index == b.selected {
			style, marker = StyleSelected, "> "
		}
		col := drawText(c, origin.Col, row, limit, marker+b.items[index].Text, style)
		fill(c, col, row, limit, style)
	}
}

// A ComboBox shows the selected item on one row.
type ComboBox struct {
	selection
	label string
}

func NewComboBox(label string, onSelectionChanged func(int, *ListItem)) *ComboBox {
	return &ComboBox{
		selection: selection{selected: -1, OnSelectionChanged: onSelectionChanged},
		label:     label,
	}
}

func (b *ComboBox) GetHeight() int { return 1 }
func (b *ComboBox) CanFocus() bool { return true }
func (b *ComboBox) IsEditing() bool { return false }

func (b *ComboBox) HandleEvent(e *skye.Event) bool {
	return b.step(e)
}

func (b *ComboBox) Render(c Canvas, origin skye.Point, width int, focused bool) {
	col := drawLabel(c, origin, width, b.label, focused)
	limit := origin.Col + width
	text := "-"
	if item := b.GetSelectedItem(); item != nil {
		text = item.Text
	}
	col = drawText(c, col, origin.Row, limit, "< "+text+" >", StyleNormal)
	fill(c, col, origin.Row, limit, StyleNormal)
}
