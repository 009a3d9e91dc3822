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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	assert.True(t, c.IsEqualTo(Color{R: 1, G: 128.0 / 255.0, B: 0, A: 1}))
	assert.Equal(t, "#ff8000", c.Hex())

	_, err = ParseColor("orange")
	assert.Error(t, err)
}

func TestColorHexClamps(t *testing.T) {
	c := Color{R: 2, G: -1, B: 0.5, A: 1}
	assert.Equal(t, "#ff0080", c.Hex())
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget("Orientation X")
	require.NoError(t, err)
	assert.Equal(t, TargetOrientationX, target)

	target, err = ParseTarget("light-ambient-intensity")
	require.NoError(t, err)
	assert.Equal(t, TargetAmbientIntensity, target)

	_, err = ParseTarget("gravity")
	assert.Error(t, err)
}

func TestTargetNames(t *testing.T) {
	assert.Equal(t, 19, int(TargetCount))
	for i := Target(0); i < TargetCount; i++ {
		parsed, err := ParseTarget(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, parsed)
	}
	assert.Equal(t, "Invalid Target", Target(-1).String())
}
