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

	"github.com/chewxy/math32"

	skye "github.com/timburks/skye/pkg/types"
)

// sliderSteps is the number of arrow presses from one end to the other.
const sliderSteps = 20

const sliderWidth = 12

// EditSliderText combines a slider with a text field. Left and right drag
// the slider: every step calls OnChanging and Enter or Esc ends the drag
// with OnChanged. Enter outside a drag edits the value as text.
type EditSliderText struct {
	label      string
	value      float32
	minimum    float32
	maximum    float32
	dragging   bool
	edit       lineEdit
	OnChanging func(value float32)
	OnChanged  func(value float32)
}

func NewEditSliderText(label string, minimum, maximum float32) *EditSliderText {
	s := &EditSliderText{label: label}
	s.SetRange(minimum, maximum)
	return s
}

func (s *EditSliderText) GetValue() float32 {
	return s.value
}

func (s *EditSliderText) SetValue(value float32) {
	s.value = s.clamp(value)
}

func (s *EditSliderText) GetMinimum() float32 {
	return s.minimum
}

func (s *EditSliderText) GetMaximum() float32 {
	return s.maximum
}

func (s *EditSliderText) SetRange(minimum, maximum float32) {
	s.minimum = minimum
	s.maximum = math32.Max(minimum, maximum)
	s.value = s.clamp(s.value)
}

func (s *EditSliderText) GetDragging() bool {
	return s.dragging
}

func (s *EditSliderText) clamp(value float32) float32 {
	return math32.Max(s.minimum, math32.Min(value, s.maximum))
}

func (s *EditSliderText) GetHeight() int { return 1 }
func (s *EditSliderText) CanFocus() bool { return true }

func (s *EditSliderText) IsEditing() bool {
	return s.dragging || s.edit.editing
}

func (s *EditSliderText) HandleEvent(e *skye.Event) bool {
	if s.edit.editing {
		if s.edit.handle(e) == lineCommit {
			value, err := strconv.ParseFloat(strings.TrimSpace(s.edit.text), 32)
			if err == nil {
				s.value = s.clamp(float32(value))
				s.notifyChanged()
			}
		}
		return true
	}
	step := (s.maximum - s.minimum) / sliderSteps
	switch {
	case isPrevious(e):
		s.drag(-step)
	case isNext(e):
		s.drag(step)
	case isEnter(e) || e.Key == skye.KeyEsc:
		if s.dragging {
			s.dragging = false
			s.notifyChanged()
		} else if isEnter(e) {
			s.edit.begin(formatFloat(s.value))
		} else {
			return false
		}
	default:
		return s.dragging
	}
	return true
}

func (s *EditSliderText) drag(delta float32) {
	s.dragging = true
	s.value = s.clamp(s.value + delta)
	if s.OnChanging != nil {
		s.OnChanging(s.value)
	}
}

func (s *EditSliderText) notifyChanged() {
	if s.OnChanged != nil {
		s.OnChanged(s.value)
	}
}

func (s *EditSliderText) Render(c Canvas, origin skye.Point, width int, focused bool) {
	col := drawLabel(c, origin, width, s.label, focused)
	limit := origin.Col + width

	filled := 0
	if s.maximum > s.minimum {
		filled = int((s.value-s.minimum)/(s.maximum-s.minimum)*sliderWidth + 0.5)
	}
	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < sliderWidth; i++ {
		if i < filled {
			bar.WriteRune('#')
		} else {
			bar.WriteRune('.')
		}
	}
	bar.WriteString("] ")
	style := StyleNormal
	if s.dragging {
		style = StyleEditing
	}
	col = drawText(c, col, origin.Row, limit, bar.String(), style)
	if s.edit.editing {
		s.edit.render(c, col, origin.Row, limit)
		return
	}
	col = drawText(c, col, origin.Row, limit, formatFloat(s.value), StyleNormal)
	fill(c, col, origin.Row, limit, StyleNormal)
}
