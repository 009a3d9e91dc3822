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
	"strings"

	"github.com/pkg/errors"
)

// Target identifies an animatable property of a sky layer.
type Target int

// Layer targets
const (
	TargetOffsetX Target = iota
	TargetOffsetY
	TargetOffsetZ
	TargetOrientationX
	TargetOrientationY
	TargetOrientationZ
	TargetRotationX
	TargetRotationY
	TargetRotationZ
	TargetColorR
	TargetColorG
	TargetColorB
	TargetIntensity
	TargetTransparency
	TargetLightColorR
	TargetLightColorG
	TargetLightColorB
	TargetLightIntensity
	TargetAmbientIntensity
	TargetCount
)

var targetNames = [TargetCount]string{
	"Offset X",
	"Offset Y",
	"Offset Z",
	"Orientation X",
	"Orientation Y",
	"Orientation Z",
	"Rotation X",
	"Rotation Y",
	"Rotation Z",
	"Color Red",
	"Color Green",
	"Color Blue",
	"Intensity",
	"Transparency",
	"Light Color Red",
	"Light Color Green",
	"Light Color Blue",
	"Light Intensity",
	"Light Ambient Intensity",
}

func (t Target) IsValid() bool {
	return t >= 0 && t < TargetCount
}

func (t Target) String() string {
	if !t.IsValid() {
		return "Invalid Target"
	}
	return targetNames[t]
}

// ParseTarget accepts a display name ("Offset X") or a dashed name
// ("offset-x"), ignoring case.
func ParseTarget(name string) (Target, error) {
	n := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", " "))
	for i, tn := range targetNames {
		if strings.ToLower(tn) == n {
			return Target(i), nil
		}
	}
	return 0, errors.Errorf("unknown target %q", name)
}
