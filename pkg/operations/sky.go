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

package operations

import (
	"github.com/timburks/skye/pkg/sky"
	skye "github.com/timburks/skye/pkg/types"
)

type SkySetBgColor struct{ setter[skye.Color] }

func NewSkySetBgColor(s *sky.Sky, color skye.Color) *SkySetBgColor {
	if s == nil {
		panic("operations: nil sky")
	}
	return &SkySetBgColor{newSetter("Sky Set Background Color", s.GetBgColor(), color, s.SetBgColor)}
}
