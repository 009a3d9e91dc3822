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

// A Container stacks widgets vertically. Up and down (or k and j) move the
// focus between focusable widgets; other keys go to the focused widget.
// While a widget is editing it receives every key.
type Container struct {
	children []Widget
	focus    int // index of the focused child or -1
	offset   int // first visible row
}

func NewContainer(children ...Widget) *Container {
	c := &Container{focus: -1}
	for _, w := range children {
		c.Add(w)
	}
	return c
}

func (c *Container) Add(w Widget) {
	c.children = append(c.children, w)
	if c.focus == -1 && w.CanFocus() {
		c.focus = len(c.children) - 1
	}
}

func (c *Container) GetChildren() []Widget {
	return c.children
}

// GetFocused returns the focused widget or nil.
func (c *Container) GetFocused() Widget {
	if c.focus < 0 {
		return nil
	}
	return c.children[c.focus]
}

// SetFocus focuses w if it is a focusable child.
func (c *Container) SetFocus(w Widget) bool {
	for i, child := range c.children {
		if child == w && child.CanFocus() {
			c.focus = i
			return true
		}
	}
	return false
}

func (c *Container) FocusNext() {
	for i := c.focus + 1; i < len(c.children); i++ {
		if c.children[i].CanFocus() {
			c.focus = i
			return
		}
	}
}

func (c *Container) FocusPrevious() {
	for i := c.focus - 1; i >= 0; i-- {
		if c.children[i].CanFocus() {
			c.focus = i
			return
		}
	}
}

func (c *Container) IsEditing() bool {
	w := c.GetFocused()
	return w != nil && w.IsEditing()
}

func (c *Container) HandleEvent(e *skye.Event) bool {
	w := c.GetFocused()
	if w != nil && w.IsEditing() {
		return w.HandleEvent(e)
	}
	switch {
	case isKey(e, skye.KeyArrowDown, 'j'):
		c.FocusNext()
		return true
	case isKey(e, skye.KeyArrowUp, 'k'):
		c.FocusPrevious()
		return true
	}
	if w == nil {
		return false
	}
	return w.HandleEvent(e)
}

func (c *Container) GetHeight() int {
	height := 0
	for _, w := range c.children {
		height += w.GetHeight()
	}
	return height
}

// Render draws the children into rect, scrolled so that the focused widget
// is visible.
func (c *Container) Render(canvas Canvas, rect skye.Rect) {
	if rect.Size.Rows <= 0 || rect.Size.Cols <= 0 {
		return
	}
	top := 0
	for i, w := range c.children {
		if i == c.focus {
			if top < c.offset {
				c.offset = top
			} else if bottom := top + w.GetHeight(); bottom > c.offset+rect.Size.Rows {
				c.offset = bottom - rect.Size.Rows
			}
			break
		}
		top += w.GetHeight()
	}

	row := 0
	for i, w := range c.children {
		height := w.GetHeight()
		first := row - c.offset
		row += height
		if first < 0 || first+height > rect.Size.Rows {
			continue
		}
		origin := skye.Point{Row: rect.Origin.Row + first, Col: rect.Origin.Col}
		w.Render(canvas, origin, rect.Size.Cols, i == c.focus)
	}
}
