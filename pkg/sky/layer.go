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

package sky

import (
	"github.com/google/uuid"

	skye "github.com/timburks/skye/pkg/types"
)

// A Layer is one visual layer of the sky with its bodies and animatable
// targets.
type Layer struct {
	id               uuid.UUID
	sky              *Sky
	name             string
	offset           skye.Vector
	orientation      skye.Vector // degrees
	color            skye.Color
	intensity        float32
	transparency     float32
	skinPath         string
	lightOrientation skye.Vector // degrees
	lightColor       skye.Color
	lightIntensity   float32
	ambientIntensity float32
	mulBySkyLight    bool
	mulBySkyColor    bool
	bodies           []*Body
	activeBody       *Body
	targets          [skye.TargetCount]*ControllerTarget
	activeTarget     skye.Target
	active           bool
}

func NewLayer(name string) *Layer {
	if name == "" {
		name = "Layer"
	}
	layer := &Layer{
		id:            uuid.New(),
		name:          name,
		color:         skye.White,
		intensity:     1,
		transparency:  1,
		lightColor:    skye.White,
		mulBySkyLight: true,
		mulBySkyColor: true,
		activeTarget:  skye.TargetOffsetX,
	}
	for i := range layer.targets {
		layer.targets[i] = &ControllerTarget{layer: layer, target: skye.Target(i)}
	}
	return layer
}

func (l *Layer) GetID() uuid.UUID {
	return l.id
}

func (l *Layer) GetSky() *Sky {
	return l.sky
}

// GetIndex returns the position in the owning sky or -1.
func (l *Layer) GetIndex() int {
	if l.sky == nil {
		return -1
	}
	return l.sky.IndexOfLayer(l)
}

func (l *Layer) GetActive() bool {
	return l.active
}

func (l *Layer) notifyChanged() {
	if l.sky != nil {
		l.sky.NotifyLayerChanged(l)
	}
}

func (l *Layer) GetName() string {
	return l.name
}

func (l *Layer) SetName(name string) {
	if name == l.name {
		return
	}
	l.name = name
	if l.sky != nil {
		l.sky.NotifyLayerNameChanged(l)
	}
}

func (l *Layer) GetOffset() skye.Vector {
	return l.offset
}

func (l *Layer) SetOffset(offset skye.Vector) {
	if offset.IsEqualTo(l.offset) {
		return
	}
	l.offset = offset
	l.notifyChanged()
}

func (l *Layer) GetOrientation() skye.Vector {
	return l.orientation
}

func (l *Layer) SetOrientation(orientation skye.Vector) {
	if orientation.IsEqualTo(l.orientation) {
		return
	}
	l.orientation = orientation
	l.notifyChanged()
}

func (l *Layer) GetColor() skye.Color {
	return l.color
}

func (l *Layer) SetColor(color skye.Color) {
	if color.IsEqualTo(l.color) {
		return
	}
	l.color = color
	l.notifyChanged()
}

func (l *Layer) GetIntensity() float32 {
	return l.intensity
}

// SetIntensity clamps negative intensities to 0.
func (l *Layer) SetIntensity(intensity float32) {
	if intensity < 0 {
		intensity = 0
	}
	if skye.EqualFloat(intensity, l.intensity) {
		return
	}
	l.intensity = intensity
	l.notifyChanged()
}

func (l *Layer) GetTransparency() float32 {
	return l.transparency
}

// SetTransparency clamps the value to 0..1.
func (l *Layer) SetTransparency(transparency float32) {
	if transparency < 0 {
		transparency = 0
	} else if transparency > 1 {
		transparency = 1
	}
	if skye.EqualFloat(transparency, l.transparency) {
		return
	}
	l.transparency = transparency
	l.notifyChanged()
}

func (l *Layer) GetSkinPath() string {
	return l.skinPath
}

func (l *Layer) SetSkinPath(path string) {
	if path == l.skinPath {
		return
	}
	l.skinPath = path
	l.notifyChanged()
}

func (l *Layer) GetLightOrientation() skye.Vector {
	return l.lightOrientation
}

func (l *Layer) SetLightOrientation(orientation skye.Vector) {
	if orientation.IsEqualTo(l.lightOrientation) {
		return
	}
	l.lightOrientation = orientation
	l.notifyChanged()
}

func (l *Layer) GetLightColor() skye.Color {
	return l.lightColor
}

func (l *Layer) SetLightColor(color skye.Color) {
	if color.IsEqualTo(l.lightColor) {
		return
	}
	l.lightColor = color
	l.notifyChanged()
}

func (l *Layer) GetLightIntensity() float32 {
	return l.lightIntensity
}

func (l *Layer) SetLightIntensity(intensity float32) {
	if intensity < 0 {
		intensity = 0
	}
	if skye.EqualFloat(intensity, l.lightIntensity) {
		return
	}
	l.lightIntensity = intensity
	l.notifyChanged()
}

func (l *Layer) GetAmbientIntensity() float32 {
	return l.ambientIntensity
}

func (l *Layer) SetAmbientIntensity(intensity float32) {
	if intensity < 0 {
		intensity = 0
	}
	if skye.EqualFloat(intensity, l.ambientIntensity) {
		return
	}
	l.ambientIntensity = intensity
	l.notifyChanged()
}

func (l *Layer) GetMulBySkyLight() bool {
	return l.mulBySkyLight
}

func (l *Layer) SetMulBySkyLight(mul bool) {
	if mul == l.mulBySkyLight {
		return
	}
	l.mulBySkyLight = mul
	l.notifyChanged()
}

func (l *Layer) GetMulBySkyColor() bool {
	return l.mulBySkyColor
}

func (l *Layer) SetMulBySkyColor(mul bool) {
	if mul == l.mulBySkyColor {
		return
	}
	l.mulBySkyColor = mul
	l.notifyChanged()
}

// Bodies

func (l *Layer) GetBodies() []*Body {
	return l.bodies
}

func (l *Layer) GetBodyCount() int {
	return len(l.bodies)
}

func (l *Layer) GetBodyAt(index int) *Body {
	return l.bodies[index]
}

// IndexOfBody returns -1 if the body is not part of the layer.
func (l *Layer) IndexOfBody(body *Body) int {
	for i, other := range l.bodies {
		if other == body {
			return i
		}
	}
	return -1
}

func (l *Layer) AddBody(body *Body) {
	l.InsertBodyAt(body, len(l.bodies))
}

func (l *Layer) InsertBodyAt(body *Body, index int) {
	if body == nil {
		panic("sky: nil body")
	}
	if body.layer != nil {
		panic("sky: body already belongs to a layer")
	}
	l.bodies = insertAt(l.bodies, body, index)
	body.layer = l

	if l.sky != nil {
		l.sky.NotifyBodyStructureChanged(l)
	}

	if l.activeBody == nil {
		l.SetActiveBody(body)
	}
}

func (l *Layer) MoveBodyTo(body *Body, index int) {
	l.bodies = moveTo(l.bodies, body, index)
	if l.sky != nil {
		l.sky.NotifyBodyStructureChanged(l)
	}
}

func (l *Layer) RemoveBody(body *Body) {
	if body == nil {
		panic("sky: nil body")
	}
	index := mustIndex(l.bodies, body)

	if body == l.activeBody {
		count := len(l.bodies)
		if index < count-1 {
			l.SetActiveBody(l.bodies[index+1])
		} else if index > 0 {
			l.SetActiveBody(l.bodies[index-1])
		} else {
			l.SetActiveBody(nil)
		}
	}

	body.layer = nil
	l.bodies = removeItem(l.bodies, body)

	if l.sky != nil {
		l.sky.NotifyBodyStructureChanged(l)
	}
}

func (l *Layer) RemoveAllBodies() {
	l.SetActiveBody(nil)
	for _, body := range l.bodies {
		body.layer = nil
	}
	l.bodies = nil
	if l.sky != nil {
		l.sky.NotifyBodyStructureChanged(l)
	}
}

func (l *Layer) GetActiveBody() *Body {
	return l.activeBody
}

func (l *Layer) SetActiveBody(body *Body) {
	if body == l.activeBody {
		return
	}
	if body != nil && body.layer != l {
		panic("sky: active body is not part of the layer")
	}
	if l.activeBody != nil {
		l.activeBody.active = false
	}
	l.activeBody = body
	if body != nil {
		body.active = true
	}
	if l.sky != nil {
		l.sky.NotifyActiveBodyChanged(l)
	}
}

// Targets

// GetTarget returns the controller target of an animatable property.
func (l *Layer) GetTarget(target skye.Target) *ControllerTarget {
	if !target.IsValid() {
		panic("sky: invalid target")
	}
	return l.targets[target]
}

func (l *Layer) GetActiveTarget() skye.Target {
	return l.activeTarget
}

func (l *Layer) SetActiveTarget(target skye.Target) {
	if !target.IsValid() {
		panic("sky: invalid target")
	}
	if target == l.activeTarget {
		return
	}
	l.activeTarget = target
	if l.sky != nil {
		l.sky.NotifyActiveTargetChanged(l)
	}
}
