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

package screen

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nsf/termbox-go"

	skye "github.com/timburks/skye/pkg/types"
)

// levels of the xterm 6x6x6 color cube
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// palette holds xterm colors 16 to 255, the ones that do not depend on the
// terminal theme.
var palette []colorful.Color

func init() {
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette = append(palette, rgb(cubeLevels[r], cubeLevels[g], cubeLevels[b]))
			}
		}
	}
	for i := 0; i < 24; i++ {
		level := uint8(8 + 10*i)
		palette = append(palette, rgb(level, level, level))
	}
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// paletteIndex returns the xterm color closest to c in Lab space.
func paletteIndex(c skye.Color) int {
	r, g, b := c.RGB255()
	target := rgb(r, g, b)
	best := 0
	bestDistance := target.DistanceLab(palette[0])
	for i := 1; i < len(palette); i++ {
		if d := target.DistanceLab(palette[i]); d < bestDistance {
			best = i
			bestDistance = d
		}
	}
	return 16 + best
}

// attribute converts an xterm color to a termbox attribute in 256 color
// output mode, where attribute n shows color n-1.
func attribute(index int) termbox.Attribute {
	return termbox.Attribute(index + 1)
}
