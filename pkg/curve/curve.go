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

// Package curve implements the 2D bezier curves that links use to map
// controller values to target values.
package curve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	skye "github.com/timburks/skye/pkg/types"
)

// Interpolation modes
const (
	InterpolateConstant = 0
	InterpolateLinear   = 1
	InterpolateBezier   = 2
)

// number of bisection steps when solving a bezier segment for x
const solveSteps = 24

// A Point is a curve point with its two bezier handles.
type Point struct {
	Point   skye.Vector2 `yaml:"point"`
	Handle1 skye.Vector2 `yaml:"handle1"`
	Handle2 skye.Vector2 `yaml:"handle2"`
}

// NewPoint returns a point whose handles sit on the point itself.
func NewPoint(x, y float32) Point {
	p := skye.Vector2{X: x, Y: y}
	return Point{Point: p, Handle1: p, Handle2: p}
}

func (p Point) IsEqualTo(o Point) bool {
	return p.Point.IsEqualTo(o.Point) && p.Handle1.IsEqualTo(o.Handle1) &&
		p.Handle2.IsEqualTo(o.Handle2)
}

// Bezier is a curve made of points sorted by x.
type Bezier struct {
	Points        []Point `yaml:"points"`
	Interpolation int     `yaml:"interpolation"`
}

// NewDefaultLinear returns a linear curve from (0,0) to (1,1).
func NewDefaultLinear() Bezier {
	c := Bezier{}
	c.SetDefaultLinear()
	return c
}

func (c *Bezier) SetDefaultLinear() {
	c.Points = []Point{NewPoint(0, 0), NewPoint(1, 1)}
	c.Interpolation = InterpolateLinear
}

func (c Bezier) GetPointCount() int {
	return len(c.Points)
}

// AddPoint inserts a point keeping the points sorted by x. A point with the
// same x replaces the existing one. Returns the index of the point.
func (c *Bezier) AddPoint(p Point) int {
	i := sort.Search(len(c.Points), func(i int) bool {
		return c.Points[i].Point.X >= p.Point.X
	})
	if i < len(c.Points) && skye.EqualFloat(c.Points[i].Point.X, p.Point.X) {
		c.Points[i] = p
		return i
	}
	c.Points = append(c.Points, Point{})
	copy(c.Points[i+1:], c.Points[i:])
	c.Points[i] = p
	return i
}

func (c *Bezier) RemovePoint(index int) {
	if index < 0 || index >= len(c.Points) {
		panic(fmt.Sprintf("curve point index %d out of range", index))
	}
	c.Points = append(c.Points[:index], c.Points[index+1:]...)
}

func (c *Bezier) RemoveAllPoints() {
	c.Points = nil
}

// Copy returns a curve that shares no storage with c.
func (c Bezier) Copy() Bezier {
	out := Bezier{Interpolation: c.Interpolation}
	if c.Points != nil {
		out.Points = make([]Point, len(c.Points))
		copy(out.Points, c.Points)
	}
	return out
}

func (c Bezier) IsEqualTo(o Bezier) bool {
	if c.Interpolation != o.Interpolation || len(c.Points) != len(o.Points) {
		return false
	}
	for i := range c.Points {
		if !c.Points[i].IsEqualTo(o.Points[i]) {
			return false
		}
	}
	return true
}

// Evaluate returns the y value of the curve at x. Outside the curve the end
// values are held.
func (c Bezier) Evaluate(x float32) float32 {
	count := len(c.Points)
	if count == 0 {
		return 0
	}
	if x <= c.Points[0].Point.X {
		return c.Points[0].Point.Y
	}
	if x >= c.Points[count-1].Point.X {
		return c.Points[count-1].Point.Y
	}
	// first point with a larger x; never 0 or count here
	i := sort.Search(count, func(i int) bool {
		return c.Points[i].Point.X > x
	})
	p0 := c.Points[i-1]
	p1 := c.Points[i]

	switch c.Interpolation {
	case InterpolateConstant:
		return p0.Point.Y
	case InterpolateLinear:
		width := p1.Point.X - p0.Point.X
		if width <= 0 {
			return p0.Point.Y
		}
		f := (x - p0.Point.X) / width
		return p0.Point.Y + (p1.Point.Y-p0.Point.Y)*f
	default:
		return evaluateSegment(p0.Point, p0.Handle2, p1.Handle1, p1.Point, x)
	}
}

func bezier(a, b, c, d, t float32) float32 {
	it := 1 - t
	return it*it*it*a + 3*it*it*t*b + 3*it*t*t*c + t*t*t*d
}

// evaluateSegment finds t with x(t) = x by bisection and returns y(t).
// Handles are clamped into the segment so that x(t) is monotonic.
func evaluateSegment(p0, h1, h2, p1 skye.Vector2, x float32) float32 {
	h1x := math32.Max(p0.X, math32.Min(h1.X, p1.X))
	h2x := math32.Max(p0.X, math32.Min(h2.X, p1.X))
	low, high := float32(0), float32(1)
	t := float32(0.5)
	for i := 0; i < solveSteps; i++ {
		t = (low + high) / 2
		if bezier(p0.X, h1x, h2x, p1.X, t) < x {
			low = t
		} else {
			high = t
		}
	}
	return bezier(p0.Y, h1.Y, h2.Y, p1.Y, t)
}

// String formats the curve as "x:y x:y ...", the form accepted by Parse.
func (c Bezier) String() string {
	parts := make([]string, len(c.Points))
	for i, p := range c.Points {
		parts[i] = fmt.Sprintf("%g:%g", p.Point.X, p.Point.Y)
	}
	return strings.Join(parts, " ")
}

// Parse reads "x:y x:y ..." into a curve with the given interpolation.
// Handles are placed on the points.
func Parse(s string, interpolation int) (Bezier, error) {
	c := Bezier{Interpolation: interpolation}
	for _, field := range strings.Fields(s) {
		var x, y float32
		if _, err := fmt.Sscanf(field, "%g:%g", &x, &y); err != nil {
			return Bezier{}, errors.Wrapf(err, "invalid curve point %q", field)
		}
		c.AddPoint(NewPoint(x, y))
	}
	return c, nil
}
