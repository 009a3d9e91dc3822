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

// AddListener registers a listener. Listeners are notified in the order
// they were added.
func (s *Sky) AddListener(l Listener) {
	if l == nil {
		panic("sky: nil listener")
	}
	listeners := make([]Listener, len(s.listeners), len(s.listeners)+1)
	copy(listeners, s.listeners)
	s.listeners = append(listeners, l)
}

// RemoveListener unregisters a listener. A notification in progress still
// reaches the listeners it started with.
func (s *Sky) RemoveListener(l Listener) {
	for i, other := range s.listeners {
		if other == l {
			listeners := make([]Listener, 0, len(s.listeners)-1)
			listeners = append(listeners, s.listeners[:i]...)
			s.listeners = append(listeners, s.listeners[i+1:]...)
			return
		}
	}
}

func (s *Sky) GetListenerCount() int {
	return len(s.listeners)
}

func (s *Sky) visit(f func(l Listener)) {
	for _, l := range s.listeners {
		f(l)
	}
}

// modified marks the sky as changed and the engine sky as outdated.
func (s *Sky) modified() {
	s.SetChanged(true)
	s.needsRebuild = true
}

func (s *Sky) NotifyStateChanged() {
	s.visit(func(l Listener) { l.StateChanged(s) })
}

// NotifyUndoChanged runs after every change of the undo system. Any
// history left marks the sky as changed.
func (s *Sky) NotifyUndoChanged() {
	s.visit(func(l Listener) { l.UndoChanged(s) })
	if u := s.undoSystem; u != nil && u.GetCount()+u.GetRedoableCount() > 0 {
		s.SetChanged(true)
	}
}

func (s *Sky) NotifySkyChanged() {
	s.visit(func(l Listener) { l.SkyChanged(s) })
	s.modified()
}

func (s *Sky) NotifyEnvObjectChanged() {
	s.visit(func(l Listener) { l.EnvObjectChanged(s) })
}

func (s *Sky) NotifyViewChanged() {
	s.visit(func(l Listener) { l.ViewChanged(s) })
}

func (s *Sky) NotifyCameraChanged() {
	s.visit(func(l Listener) { l.CameraChanged(s) })
}

func (s *Sky) NotifyControllerStructureChanged() {
	s.visit(func(l Listener) { l.ControllerStructureChanged(s) })
	s.modified()
}

func (s *Sky) NotifyControllerChanged(c *Controller) {
	s.visit(func(l Listener) { l.ControllerChanged(s, c) })
	s.modified()
}

func (s *Sky) NotifyControllerNameChanged(c *Controller) {
	s.visit(func(l Listener) { l.ControllerNameChanged(s, c) })
	s.needsRebuild = true
}

func (s *Sky) NotifyControllerValueChanged(c *Controller) {
	s.visit(func(l Listener) { l.ControllerValueChanged(s, c) })
	s.needsRebuild = true
}

func (s *Sky) NotifyControllerSelectionChanged() {
	s.visit(func(l Listener) { l.ControllerSelectionChanged(s) })
}

func (s *Sky) NotifyActiveControllerChanged() {
	s.visit(func(l Listener) { l.ActiveControllerChanged(s) })
}

func (s *Sky) NotifyLinkStructureChanged() {
	s.visit(func(l Listener) { l.LinkStructureChanged(s) })
	s.modified()
}

func (s *Sky) NotifyLinkChanged(link *Link) {
	s.visit(func(l Listener) { l.LinkChanged(s, link) })
	s.modified()
}

func (s *Sky) NotifyLinkNameChanged(link *Link) {
	s.visit(func(l Listener) { l.LinkNameChanged(s, link) })
	s.SetChanged(true)
	s.needsRebuild = true
}

func (s *Sky) NotifyLinkSelectionChanged() {
	s.visit(func(l Listener) { l.LinkSelectionChanged(s) })
}

func (s *Sky) NotifyActiveLinkChanged() {
	s.visit(func(l Listener) { l.ActiveLinkChanged(s) })
}

func (s *Sky) NotifyLayerStructureChanged() {
	s.visit(func(l Listener) { l.LayerStructureChanged(s) })
	s.modified()
}

func (s *Sky) NotifyLayerChanged(layer *Layer) {
	s.visit(func(l Listener) { l.LayerChanged(s, layer) })
	s.modified()
}

func (s *Sky) NotifyLayerNameChanged(layer *Layer) {
	s.visit(func(l Listener) { l.LayerNameChanged(s, layer) })
	s.SetChanged(true)
	s.needsRebuild = true
}

func (s *Sky) NotifyLayerSelectionChanged() {
	s.visit(func(l Listener) { l.LayerSelectionChanged(s) })
}

func (s *Sky) NotifyActiveLayerChanged() {
	s.visit(func(l Listener) { l.ActiveLayerChanged(s) })
}

func (s *Sky) NotifyBodyStructureChanged(layer *Layer) {
	s.visit(func(l Listener) { l.BodyStructureChanged(s, layer) })
	s.modified()
}

func (s *Sky) NotifyBodyChanged(layer *Layer, body *Body) {
	s.visit(func(l Listener) { l.BodyChanged(s, layer, body) })
	s.modified()
}

func (s *Sky) NotifyBodySelectionChanged(layer *Layer) {
	s.visit(func(l Listener) { l.BodySelectionChanged(s, layer) })
}

func (s *Sky) NotifyActiveBodyChanged(layer *Layer) {
	s.visit(func(l Listener) { l.ActiveBodyChanged(s, layer) })
}

func (s *Sky) NotifyTargetChanged(layer *Layer, target skye.Target) {
	s.visit(func(l Listener) { l.TargetChanged(s, layer, target) })
	s.modified()
}

func (s *Sky) NotifyActiveTargetChanged(layer *Layer) {
	s.visit(func(l Listener) { l.ActiveTargetChanged(s, layer) })
}
