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

package engine

import (
	"github.com/chewxy/math32"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	skye "github.com/timburks/skye/pkg/types"
)

// Output returns the value a link passes on for the given controllers.
// The controller value is normalized over its range, repeated, and mapped
// through the curve. A link without controller outputs curve(0).
func (l *Link) Output(controllers []Controller) float32 {
	if l.Controller < 0 || l.Controller >= len(controllers) {
		return l.Curve.Evaluate(0)
	}
	c := controllers[l.Controller]
	x := float32(0)
	if width := c.Maximum - c.Minimum; width > 0 {
		x = (c.Value - c.Minimum) / width
	}
	if l.Repeat > 1 {
		x *= float32(l.Repeat)
		x -= math32.Floor(x)
	}
	return l.Curve.Evaluate(x)
}

// Evaluate returns a copy of the snapshot with every driven layer property
// replaced by the product of its link outputs. Angles produced by links
// are in degrees like the document and are converted to radians.
func (s *Sky) Evaluate() (*Sky, error) {
	out := &Sky{}
	if err := copier.CopyWithOption(out, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Wrap(err, "engine: copy sky")
	}

	for i := range out.Layers {
		layer := &out.Layers[i]
		for _, target := range layer.Targets {
			value := float32(1)
			for _, index := range target.Links {
				if index < 0 || index >= len(out.Links) {
					return nil, errors.Errorf("layer %q target %q refers to missing link %d",
						layer.Name, target.Name, index)
				}
				value *= out.Links[index].Output(out.Controllers)
			}
			layer.apply(target.Target, value)
		}
	}
	return out, nil
}

func (l *Layer) apply(target skye.Target, value float32) {
	switch target {
	case skye.TargetOffsetX:
		l.Offset.X = value
	case skye.TargetOffsetY:
		l.Offset.Y = value
	case skye.TargetOffsetZ:
		l.Offset.Z = value
	case skye.TargetOrientationX:
		l.Orientation.X = skye.DegToRad(value)
	case skye.TargetOrientationY:
		l.Orientation.Y = skye.DegToRad(value)
	case skye.TargetOrientationZ:
		l.Orientation.Z = skye.DegToRad(value)
	case skye.TargetRotationX:
		l.Rotation.X = skye.DegToRad(value)
	case skye.TargetRotationY:
		l.Rotation.Y = skye.DegToRad(value)
	case skye.TargetRotationZ:
		l.Rotation.Z = skye.DegToRad(value)
	case skye.TargetColorR:
		l.Color.R = value
	case skye.TargetColorG:
		l.Color.G = value
	case skye.TargetColorB:
		l.Color.B = value
	case skye.TargetIntensity:
		l.Intensity = value
	case skye.TargetTransparency:
		l.Transparency = value
	case skye.TargetLightColorR:
		l.LightColor.R = value
	case skye.TargetLightColorG:
		l.LightColor.G = value
	case skye.TargetLightColorB:
		l.LightColor.B = value
	case skye.TargetLightIntensity:
		l.LightIntensity = value
	case skye.TargetAmbientIntensity:
		l.AmbientIntensity = value
	}
}
