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
	skye "github.com/timburks/skye/pkg/types"
)

// A Listener is told about every change of a sky.
// Embed DefaultListener to implement only the methods of interest.
type Listener interface {
	StateChanged(s *Sky)
	UndoChanged(s *Sky)
	SkyChanged(s *Sky)
	EnvObjectChanged(s *Sky)
	ViewChanged(s *Sky)
	CameraChanged(s *Sky)

	ControllerStructureChanged(s *Sky)
	ControllerChanged(s *Sky, c *Controller)
	ControllerNameChanged(s *Sky, c *Controller)
	ControllerValueChanged(s *Sky, c *Controller)
	ControllerSelectionChanged(s *Sky)
	ActiveControllerChanged(s *Sky)

	LinkStructureChanged(s *Sky)
	LinkChanged(s *Sky, l *Link)
	LinkNameChanged(s *Sky, l *Link)
	LinkSelectionChanged(s *Sky)
	ActiveLinkChanged(s *Sky)

	LayerStructureChanged(s *Sky)
	LayerChanged(s *Sky, layer *Layer)
	LayerNameChanged(s *Sky, layer *Layer)
	LayerSelectionChanged(s *Sky)
	ActiveLayerChanged(s *Sky)

	BodyStructureChanged(s *Sky, layer *Layer)
	BodyChanged(s *Sky, layer *Layer, body *Body)
	BodySelectionChanged(s *Sky, layer *Layer)
	ActiveBodyChanged(s *Sky, layer *Layer)

	TargetChanged(s *Sky, layer *Layer, target skye.Target)
	ActiveTargetChanged(s *Sky, layer *Layer)
}

// DefaultListener ignores every notification.
type DefaultListener struct{}

func (DefaultListener) StateChanged(*Sky)     {}
func (DefaultListener) UndoChanged(*Sky)      {}
func (DefaultListener) SkyChanged(*Sky)       {}
func (DefaultListener) EnvObjectChanged(*Sky) {}
func (DefaultListener) ViewChanged(*Sky)      {}
func (DefaultListener) CameraChanged(*Sky)    {}

func (DefaultListener) ControllerStructureChanged(*Sky)          {}
func (DefaultListener) ControllerChanged(*Sky, *Controller)      {}
func (DefaultListener) ControllerNameChanged(*Sky, *Controller)  {}
func (DefaultListener) ControllerValueChanged(*Sky, *Controller) {}
func (DefaultListener) ControllerSelectionChanged(*Sky)          {}
func (DefaultListener) ActiveControllerChanged(*Sky)             {}

func (DefaultListener) LinkStructureChanged(*Sky)    {}
func (DefaultListener) LinkChanged(*Sky, *Link)      {}
func (DefaultListener) LinkNameChanged(*Sky, *Link)  {}
func (DefaultListener) LinkSelectionChanged(*Sky)    {}
func (DefaultListener) ActiveLinkChanged(*Sky)       {}

func (DefaultListener) LayerStructureChanged(*Sky)     {}
func (DefaultListener) LayerChanged(*Sky, *Layer)      {}
func (DefaultListener) LayerNameChanged(*Sky, *Layer)  {}
func (DefaultListener) LayerSelectionChanged(*Sky)     {}
func (DefaultListener) ActiveLayerChanged(*Sky)        {}

func (DefaultListener) BodyStructureChanged(*Sky, *Layer)     {}
func (DefaultListener) BodyChanged(*Sky, *Layer, *Body)       {}
func (DefaultListener) BodySelectionChanged(*Sky, *Layer)     {}
func (DefaultListener) ActiveBodyChanged(*Sky, *Layer)        {}

func (DefaultListener) TargetChanged(*Sky, *Layer, skye.Target) {}
func (DefaultListener) ActiveTargetChanged(*Sky, *Layer)        {}
