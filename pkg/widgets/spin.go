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
	"strconv"
	"strings"

	skye "github.com/timburks/skye/pkg/types"
)

// A SpinTextField edits an integer in a range. Left and right step the
// value, Enter edits it as text.
type SpinTextField struct {
	label     string
	value     int
	minimum   int
	maximum   int
	edit      lineEdit
	OnChanged func(value int)
}

func NewSpinTextField(label string, minimum, maximum int, onChanged func(int)) *SpinTextField {
	s := &SpinTextField{label: label, OnChanged: onChanged}
	s.SetRange(minimum, maximum)
	return s
}

func (s *SpinTextField) GetValue() int {
	return s.value
}

func (s *SpinTextField) SetValue(value int) {
	s.value = max(s.minimum, min(value, s.maximum))
}

func (s *SpinTextField) GetMinimum() int {
	return s.minimum
}

func (s *SpinTextField) GetMaximum() int {
	return s.maximum
}

// SetRange sets the range, raising maximum to minimum if needed.
func (s *SpinTextField) SetRange(minimum, maximum int) {
	s.minimum = minimum
	s.maximum = max(minimum, maximum)
	s.SetValue(s.value)
}

func (s *SpinTextField) GetHeight() int { return 1 }
func (s *SpinTextField) CanFocus() bool { return true }

func (s *SpinTextField) IsEditing() bool {
	return s.edit.editing
}

func (s *SpinTextField) HandleEvent(e *skye.Event) bool {
	if s.edit.editing {
		if s.edit.handle(e) == lineCommit {
			if value, err := strconv.Atoi(strings.TrimSpace(s.edit.text)); err == nil {
				s.change(value)
			}
		}
		return true
	}
	switch {
	case isPrevious(e):
		s.change(s.value - 1)
	case isNext(e):
		s.change(s.value + 1)
	case isEnter(e):
		s.edit.begin(strconv.Itoa(s.value))
	default:
		return false
	}
	return true
}

func (s *SpinTextField) change(value int) {
	old := s.value
	s.SetValue(value)
	if s.value != old && s.OnChanged != nil {
		s.OnChanged(s.value)
	}
}

func (s *SpinTextField) Render(c Canvas, origin skye.Point, width int, focused bool) {
	col := drawLabel(c, origin, width, s.label, focused)
	limit := origin.Col + width
	if s.edit.editing {
		s.edit.render(c, col, origin.Row, limit)
		return
	}
	text := fmt.Sprintf("< %d > (%d..%d)", s.value, s.minimum, s.maximum)
	col = drawText(c, col, origin.Row, limit, text, StyleNormal)
	fill(c, col, origin.Row, limit, StyleNormal)
}
