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

// LayerAdd

type LayerAdd struct {
	operation
	sky   *sky.Sky
	layer *sky.Layer
}

func NewLayerAdd(s *sky.Sky, layer *sky.Layer) *LayerAdd {
	if s == nil || layer == nil {
		panic("operations: nil sky or layer")
	}
	if layer.GetSky() != nil {
		panic("operations: layer already part of a sky")
	}
	return &LayerAdd{operation{"Add Layer"}, s, layer}
}

func (op *LayerAdd) Redo() {
	op.sky.AddLayer(op.layer)
	op.sky.SetActiveLayer(op.layer)
}

func (op *LayerAdd) Undo() {
	op.sky.RemoveLayer(op.layer)
}

// LayerRemove puts the layer back at its old position on undo. The layer
// keeps its bodies and target links while it is out of the sky.

type LayerRemove struct {
	operation
	sky   *sky.Sky
	layer *sky.Layer
	index int
}

func NewLayerRemove(layer *sky.Layer) *LayerRemove {
	if layer == nil {
		panic("operations: nil layer")
	}
	s := mustSky(layer.GetSky(), "layer")
	return &LayerRemove{operation{"Remove Layer"}, s, layer, layer.GetIndex()}
}

func (op *LayerRemove) Redo() {
	op.sky.RemoveLayer(op.layer)
}

func (op *LayerRemove) Undo() {
	op.sky.InsertLayerAt(op.layer, op.index)
	op.sky.SetActiveLayer(op.layer)
}

// LayerMove

type LayerMove struct {
	operation
	sky      *sky.Sky
	layer    *sky.Layer
	oldIndex int
	newIndex int
}

func NewLayerMoveUp(layer *sky.Layer) *LayerMove {
	return newLayerMove(layer, -1, "Move Layer Up")
}

func NewLayerMoveDown(layer *sky.Layer) *LayerMove {
	return newLayerMove(layer, 1, "Move Layer Down")
}

func newLayerMove(layer *sky.Layer, delta int, info string) *LayerMove {
	if layer == nil {
		panic("operations: nil layer")
	}
	s := mustSky(layer.GetSky(), "layer")
	index := layer.GetIndex()
	if index+delta < 0 || index+delta >= s.GetLayerCount() {
		panic("operations: layer can not move further")
	}
	return &LayerMove{operation{info}, s, layer, index, index + delta}
}

func (op *LayerMove) Redo() {
	op.sky.MoveLayerTo(op.layer, op.newIndex)
}

func (op *LayerMove) Undo() {
	op.sky.MoveLayerTo(op.layer, op.oldIndex)
}

func mustLayerNotNil(layer *sky.Layer) *sky.Layer {
	if layer == nil {
		panic("operations: nil layer")
	}
	return layer
}

type LayerSetName struct{ setter[string] }

func NewLayerSetName(layer *sky.Layer, name string) *LayerSetName {
	l := mustLayerNotNil(layer)
	return &LayerSetName{newSetter("Layer Set Name", l.GetName(), name, l.SetName)}
}

type LayerSetSkin struct{ setter[string] }

func NewLayerSetSkin(layer *sky.Layer, path string) *LayerSetSkin {
	l := mustLayerNotNil(layer)
	return &LayerSetSkin{newSetter("Layer Set Skin", l.GetSkinPath(), path, l.SetSkinPath)}
}

type LayerSetOffset struct{ setter[skye.Vector] }

func NewLayerSetOffset(layer *sky.Layer, offset skye.Vector) *LayerSetOffset {
	l := mustLayerNotNil(layer)
	return &LayerSetOffset{newSetter("Layer Set Offset", l.GetOffset(), offset, l.SetOffset)}
}

type LayerSetOrientation struct{ setter[skye.Vector] }

func NewLayerSetOrientation(layer *sky.Layer, orientation skye.Vector) *LayerSetOrientation {
	l := mustLayerNotNil(layer)
	return &LayerSetOrientation{newSetter("Layer Set Orientation", l.GetOrientation(), orientation, l.SetOrientation)}
}

type LayerSetColor struct{ setter[skye.Color] }

func NewLayerSetColor(layer *sky.Layer, color skye.Color) *LayerSetColor {
	l := mustLayerNotNil(layer)
	return &LayerSetColor{newSetter("Layer Set Color", l.GetColor(), color, l.SetColor)}
}

type LayerSetIntensity struct{ setter[float32] }

func NewLayerSetIntensity(layer *sky.Layer, intensity float32) *LayerSetIntensity {
	l := mustLayerNotNil(layer)
	return &LayerSetIntensity{newSetter("Layer Set Intensity", l.GetIntensity(), intensity, l.SetIntensity)}
}

// LayerSetTransparency is created when a slider drag starts. The panel
// updates the layer live through SetNewTransparency while dragging and the
// final Redo applies the last value.
type LayerSetTransparency struct {
	operation
	layer           *sky.Layer
	oldTransparency float32
	newTransparency float32
}

func NewLayerSetTransparency(layer *sky.Layer, transparency float32) *LayerSetTransparency {
	l := mustLayerNotNil(layer)
	return &LayerSetTransparency{operation{"Layer Set Transparency"}, l, l.GetTransparency(), transparency}
}

// SetNewTransparency changes the value applied by Redo and shows it on the
// layer right away.
func (op *LayerSetTransparency) SetNewTransparency(transparency float32) {
	op.newTransparency = transparency
	op.layer.SetTransparency(transparency)
}

func (op *LayerSetTransparency) Redo() {
	op.layer.SetTransparency(op.newTransparency)
}

func (op *LayerSetTransparency) Undo() {
	op.layer.SetTransparency(op.oldTransparency)
}

type LayerSetLightColor struct{ setter[skye.Color] }

func NewLayerSetLightColor(layer *sky.Layer, color skye.Color) *LayerSetLightColor {
	l := mustLayerNotNil(layer)
	return &LayerSetLightColor{newSetter("Layer Set Light Color", l.GetLightColor(), color, l.SetLightColor)}
}

type LayerSetLightIntensity struct{ setter[float32] }

func NewLayerSetLightIntensity(layer *sky.Layer, intensity float32) *LayerSetLightIntensity {
	l := mustLayerNotNil(layer)
	return &LayerSetLightIntensity{newSetter("Layer Set Light Intensity", l.GetLightIntensity(), intensity, l.SetLightIntensity)}
}

type LayerSetAmbientIntensity struct{ setter[float32] }

func NewLayerSetAmbientIntensity(layer *sky.Layer, intensity float32) *LayerSetAmbientIntensity {
	l := mustLayerNotNil(layer)
	return &LayerSetAmbientIntensity{newSetter("Layer Set Ambient Intensity", l.GetAmbientIntensity(), intensity, l.SetAmbientIntensity)}
}

type LayerSetLightOrientation struct{ setter[skye.Vector] }

func NewLayerSetLightOrientation(layer *sky.Layer, orientation skye.Vector) *LayerSetLightOrientation {
	l := mustLayerNotNil(layer)
	return &LayerSetLightOrientation{newSetter("Layer Set Light Orientation", l.GetLightOrientation(), orientation, l.SetLightOrientation)}
}

type LayerToggleMulBySkyLight struct{ setter[bool] }

func NewLayerToggleMulBySkyLight(layer *sky.Layer) *LayerToggleMulBySkyLight {
	l := mustLayerNotNil(layer)
	mul := l.GetMulBySkyLight()
	return &LayerToggleMulBySkyLight{newSetter("Layer Toggle Multiply By Sky Light", mul, !mul, l.SetMulBySkyLight)}
}

type LayerToggleMulBySkyColor struct{ setter[bool] }

func NewLayerToggleMulBySkyColor(layer *sky.Layer) *LayerToggleMulBySkyColor {
	l := mustLayerNotNil(layer)
	mul := l.GetMulBySkyColor()
	return &LayerToggleMulBySkyColor{newSetter("Layer Toggle Multiply By Sky Color", mul, !mul, l.SetMulBySkyColor)}
}
