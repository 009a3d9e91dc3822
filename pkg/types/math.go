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

package types

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Epsilon is the tolerance used when comparing float values.
const Epsilon = float32(1e-5)

// EqualFloat reports whether two values differ by less than Epsilon.
func EqualFloat(a, b float32) bool {
	return math32.Abs(a-b) < Epsilon
}

type Vector struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

func (v Vector) IsEqualTo(o Vector) bool {
	return EqualFloat(v.X, o.X) && EqualFloat(v.Y, o.Y) && EqualFloat(v.Z, o.Z)
}

// Scale returns the vector multiplied by s.
func (v Vector) Scale(s float32) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

type Vector2 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

func (v Vector2) IsEqualTo(o Vector2) bool {
	return EqualFloat(v.X, o.X) && EqualFloat(v.Y, o.Y)
}

func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Color components are in the range 0..1. A is the alpha.
type Color struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
	A float32 `yaml:"a"`
}

var (
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Black = Color{A: 1}
)

func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

func (c Color) IsEqualTo(o Color) bool {
	return EqualFloat(c.R, o.R) && EqualFloat(c.G, o.G) &&
		EqualFloat(c.B, o.B) && EqualFloat(c.A, o.A)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped()
}

// Hex formats the color as #rrggbb. Alpha is dropped.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// RGB255 returns the clamped 8 bit components.
func (c Color) RGB255() (uint8, uint8, uint8) {
	return c.colorful().RGB255()
}

func (c Color) String() string {
	return c.Hex()
}

// ParseColor reads #rgb or #rrggbb into an opaque color.
func ParseColor(s string) (Color, error) {
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, "invalid color %q", s)
	}
	return Color{R: float32(cc.R), G: float32(cc.G), B: float32(cc.B), A: 1}, nil
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}
