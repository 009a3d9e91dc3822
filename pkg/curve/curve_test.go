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

package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLinear(t *testing.T) {
	c := NewDefaultLinear()
	assert.Equal(t, 2, c.GetPointCount())
	assert.InDelta(t, 0.0, c.Evaluate(-1), 1e-6)
	assert.InDelta(t, 0.25, c.Evaluate(0.25), 1e-6)
	assert.InDelta(t, 1.0, c.Evaluate(3), 1e-6)
}

func TestReadOnlyMethodsOnReturnedValues(t *testing.T) {
	// curves are handed out by value
	assert.Equal(t, 2, NewDefaultLinear().GetPointCount())
	assert.InDelta(t, 0.5, NewDefaultLinear().Evaluate(0.5), 1e-6)
}

func TestEmptyCurve(t *testing.T) {
	c := Bezier{}
	assert.Equal(t, float32(0), c.Evaluate(0.5))
}

func TestAddPointKeepsOrder(t *testing.T) {
	c := Bezier{Interpolation: InterpolateLinear}
	c.AddPoint(NewPoint(1, 1))
	c.AddPoint(NewPoint(0, 0))
	assert.Equal(t, 1, c.AddPoint(NewPoint(0.5, 2)))
	assert.Equal(t, 1, c.AddPoint(NewPoint(0.5, 3)))
	require.Equal(t, 3, c.GetPointCount())
	assert.Equal(t, float32(0), c.Points[0].Point.X)
	assert.Equal(t, float32(3), c.Points[1].Point.Y)
	assert.Equal(t, float32(1), c.Points[2].Point.X)
}

func TestConstant(t *testing.T) {
	c, err := Parse("0:2 1:4", InterpolateConstant)
	require.NoError(t, err)
	assert.Equal(t, float32(2), c.Evaluate(0.9))
	assert.Equal(t, float32(4), c.Evaluate(1))
}

func TestBezierWithPointHandlesIsMonotonic(t *testing.T) {
	c, err := Parse("0:0 1:1", InterpolateBezier)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c.Evaluate(0.5), 1e-3)
	previous := float32(-1)
	for x := float32(0); x <= 1; x += 0.05 {
		y := c.Evaluate(x)
		assert.GreaterOrEqual(t, y, previous)
		previous = y
	}
}

func TestParseAndString(t *testing.T) {
	c, err := Parse("0:0 0.5:1 1:0", InterpolateLinear)
	require.NoError(t, err)
	assert.Equal(t, "0:0 0.5:1 1:0", c.String())
	assert.InDelta(t, 0.5, c.Evaluate(0.75), 1e-6)

	_, err = Parse("0:0 bogus", InterpolateLinear)
	assert.Error(t, err)
}

func TestCopyIsIndependent(t *testing.T) {
	c := NewDefaultLinear()
	d := c.Copy()
	d.Points[0].Point.Y = 5
	assert.Equal(t, float32(0), c.Points[0].Point.Y)
	assert.False(t, c.IsEqualTo(d))
	assert.True(t, c.IsEqualTo(c.Copy()))
}
