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
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"

	skye "github.com/timburks/skye/pkg/types"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, skye.KeyEnter, key(termbox.KeyEnter))
	assert.Equal(t, skye.KeyTab, key(termbox.KeyTab))
	assert.Equal(t, skye.KeyCtrlR, key(termbox.KeyCtrlR))
	assert.Equal(t, skye.KeyDelete, key(termbox.KeyDelete))
	assert.Equal(t, skye.KeyBackspace2, key(termbox.KeyBackspace2))
	assert.Equal(t, skye.KeyUnsupported, key(termbox.KeyF1))
	// characters arrive with key 0
	assert.Equal(t, skye.KeyUnsupported, key(0))
}

func TestPaletteIndex(t *testing.T) {
	assert.Len(t, palette, 240)
	assert.Equal(t, 16, paletteIndex(skye.Black))
	assert.Equal(t, 231, paletteIndex(skye.White))
	assert.Equal(t, 196, paletteIndex(skye.NewColor(1, 0, 0)))
	assert.Equal(t, 21, paletteIndex(skye.NewColor(0, 0, 1)))
	// mid gray is on the gray ramp
	assert.Equal(t, 244, paletteIndex(skye.NewColor(0.5, 0.5, 0.5)))
	assert.Equal(t, termbox.Attribute(17), attribute(16))
}
