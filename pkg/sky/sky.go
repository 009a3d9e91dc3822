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
	"github.com/timburks/skye/pkg/undo"
)

// DefaultFilePath is the path of a sky that has never been saved.
const DefaultFilePath = "new.desky"

// DefaultEnvObjectClass is the class of the object shown below the sky.
const DefaultEnvObjectClass = "IGDETestTerrain"

// A Sky is the document being edited. It owns its controllers, links and
// layers and the undo history of the changes made to them.
type Sky struct {
	filePath         string
	changed          bool // unsaved changes exist
	saved            bool // the sky has a file on disk
	needsRebuild     bool // the engine sky is out of date
	drawCompass      bool
	envObjectClass   string
	cameraDirection  skye.Vector // view orientation in degrees
	bgColor          skye.Color
	controllers      []*Controller
	links            []*Link
	layers           []*Layer
	activeController *Controller
	activeLink       *Link
	activeLayer      *Layer
	undoSystem       *undo.System
	listeners        []Listener
}

// NewSky creates an empty sky keeping at most undoLimit undo steps
// (0 for no limit).
func NewSky(undoLimit int) *Sky {
	s := &Sky{
		filePath:       DefaultFilePath,
		needsRebuild:   true,
		drawCompass:    true,
		envObjectClass: DefaultEnvObjectClass,
		bgColor:        skye.Black,
	}
	s.undoSystem = undo.NewSystem(undoLimit, s.NotifyUndoChanged)
	return s
}

func (s *Sky) GetUndoSystem() *undo.System {
	return s.undoSystem
}

func (s *Sky) GetFilePath() string {
	return s.filePath
}

func (s *Sky) SetFilePath(path string) {
	if path == s.filePath {
		return
	}
	s.filePath = path
	s.NotifyStateChanged()
}

func (s *Sky) GetChanged() bool {
	return s.changed
}

// SetChanged sets the unsaved changes flag, notifying StateChanged if it flips.
func (s *Sky) SetChanged(changed bool) {
	if changed == s.changed {
		return
	}
	s.changed = changed
	s.NotifyStateChanged()
}

func (s *Sky) GetSaved() bool {
	return s.saved
}

func (s *Sky) SetSaved(saved bool) {
	if saved == s.saved {
		return
	}
	s.saved = saved
	s.NotifyStateChanged()
}

func (s *Sky) GetNeedsRebuild() bool {
	return s.needsRebuild
}

// SetNeedsRebuild is used by whoever rebuilds the engine sky.
func (s *Sky) SetNeedsRebuild(needsRebuild bool) {
	s.needsRebuild = needsRebuild
}

func (s *Sky) GetDrawCompass() bool {
	return s.drawCompass
}

func (s *Sky) SetDrawCompass(drawCompass bool) {
	if drawCompass == s.drawCompass {
		return
	}
	s.drawCompass = drawCompass
	s.NotifyViewChanged()
}

func (s *Sky) GetEnvObjectClass() string {
	return s.envObjectClass
}

func (s *Sky) SetEnvObjectClass(class string) {
	if class == s.envObjectClass {
		return
	}
	s.envObjectClass = class
	s.NotifyEnvObjectChanged()
}

func (s *Sky) GetCameraDirection() skye.Vector {
	return s.cameraDirection
}

func (s *Sky) SetCameraDirection(direction skye.Vector) {
	if direction.IsEqualTo(s.cameraDirection) {
		return
	}
	s.cameraDirection = direction
	s.NotifyCameraChanged()
}

func (s *Sky) GetBgColor() skye.Color {
	return s.bgColor
}

func (s *Sky) SetBgColor(color skye.Color) {
	if color.IsEqualTo(s.bgColor) {
		return
	}
	s.bgColor = color
	s.NotifySkyChanged()
}

// Dispose clears the selections, removes all content and the undo history.
func (s *Sky) Dispose() {
	s.SetActiveLayer(nil)
	s.SetActiveLink(nil)
	s.SetActiveController(nil)

	s.RemoveAllLayers()
	s.RemoveAllLinks()
	s.RemoveAllControllers()

	s.undoSystem.RemoveAll()
}

// Reset clears the selections and the undo history.
func (s *Sky) Reset() {
	s.SetActiveLayer(nil)
	s.SetActiveLink(nil)
	s.SetActiveController(nil)

	s.undoSystem.RemoveAll()
}

// Controllers

func (s *Sky) GetControllers() []*Controller {
	return s.controllers
}

func (s *Sky) GetControllerCount() int {
	return len(s.controllers)
}

func (s *Sky) GetControllerAt(index int) *Controller {
	return s.controllers[index]
}

// IndexOfController returns -1 if the controller is not part of the sky.
func (s *Sky) IndexOfController(c *Controller) int {
	for i, other := range s.controllers {
		if other == c {
			return i
		}
	}
	return -1
}

func (s *Sky) AddController(c *Controller) {
	s.InsertControllerAt(c, len(s.controllers))
}

func (s *Sky) InsertControllerAt(c *Controller, index int) {
	if c == nil {
		panic("sky: nil controller")
	}
	if c.sky != nil {
		panic("sky: controller already belongs to a sky")
	}
	s.controllers = insertAt(s.controllers, c, index)
	c.sky = s
	s.renumberControllers()

	s.NotifyControllerStructureChanged()

	if s.activeController == nil {
		s.SetActiveController(c)
	}
}

func (s *Sky) MoveControllerTo(c *Controller, index int) {
	s.controllers = moveTo(s.controllers, c, index)
	s.renumberControllers()
	s.NotifyControllerStructureChanged()
}

func (s *Sky) RemoveController(c *Controller) {
	if c == nil {
		panic("sky: nil controller")
	}
	index := mustIndex(s.controllers, c)

	if c == s.activeController {
		count := len(s.controllers)
		if index < count-1 {
			s.SetActiveController(s.controllers[index+1])
		} else if index > 0 {
			s.SetActiveController(s.controllers[index-1])
		} else {
			s.SetActiveController(nil)
		}
	}

	c.sky = nil
	c.index = -1
	s.controllers = removeItem(s.controllers, c)
	s.renumberControllers()

	s.NotifyControllerStructureChanged()
}

func (s *Sky) RemoveAllControllers() {
	s.SetActiveController(nil)
	for _, c := range s.controllers {
		c.sky = nil
		c.index = -1
	}
	s.controllers = nil
	s.NotifyControllerStructureChanged()
}

func (s *Sky) GetActiveController() *Controller {
	return s.activeController
}

func (s *Sky) SetActiveController(c *Controller) {
	if c == s.activeController {
		return
	}
	if c != nil && c.sky != s {
		panic("sky: active controller is not part of the sky")
	}
	if s.activeController != nil {
		s.activeController.active = false
	}
	s.activeController = c
	if c != nil {
		c.active = true
	}
	s.NotifyActiveControllerChanged()
}

// CountControllerUsage counts the target link entries whose link is driven
// by the controller.
func (s *Sky) CountControllerUsage(c *Controller) int {
	count := 0
	for _, layer := range s.layers {
		for _, target := range layer.targets {
			for _, link := range target.links {
				if link.controller == c {
					count++
				}
			}
		}
	}
	return count
}

// LinksUsingController returns the links driven by the controller in list order.
func (s *Sky) LinksUsingController(c *Controller) []*Link {
	var links []*Link
	for _, link := range s.links {
		if link.controller == c {
			links = append(links, link)
		}
	}
	return links
}

func (s *Sky) renumberControllers() {
	for i, c := range s.controllers {
		c.index = i
	}
}

// Links

func (s *Sky) GetLinks() []*Link {
	return s.links
}

func (s *Sky) GetLinkCount() int {
	return len(s.links)
}

func (s *Sky) GetLinkAt(index int) *Link {
	return s.links[index]
}

// IndexOfLink returns -1 if the link is not part of the sky.
func (s *Sky) IndexOfLink(link *Link) int {
	for i, other := range s.links {
		if other == link {
			return i
		}
	}
	return -1
}

func (s *Sky) AddLink(link *Link) {
	s.InsertLinkAt(link, len(s.links))
}

func (s *Sky) InsertLinkAt(link *Link, index int) {
	if link == nil {
		panic("sky: nil link")
	}
	if link.sky != nil {
		panic("sky: link already belongs to a sky")
	}
	s.links = insertAt(s.links, link, index)
	link.sky = s
	s.renumberLinks()

	s.NotifyLinkStructureChanged()

	if s.activeLink == nil {
		s.SetActiveLink(link)
	}
}

func (s *Sky) MoveLinkTo(link *Link, index int) {
	s.links = moveTo(s.links, link, index)
	s.renumberLinks()
	s.NotifyLinkStructureChanged()
}

func (s *Sky) RemoveLink(link *Link) {
	if link == nil {
		panic("sky: nil link")
	}
	index := mustIndex(s.links, link)

	if link == s.activeLink {
		count := len(s.links)
		if index < count-1 {
			s.SetActiveLink(s.links[index+1])
		} else if index > 0 {
			s.SetActiveLink(s.links[index-1])
		} else {
			s.SetActiveLink(nil)
		}
	}

	link.sky = nil
	link.index = -1
	s.links = removeItem(s.links, link)
	s.renumberLinks()

	s.NotifyLinkStructureChanged()
}

func (s *Sky) RemoveAllLinks() {
	s.SetActiveLink(nil)
	for _, link := range s.links {
		link.sky = nil
		link.index = -1
	}
	s.links = nil
	s.NotifyLinkStructureChanged()
}

func (s *Sky) GetActiveLink() *Link {
	return s.activeLink
}

func (s *Sky) SetActiveLink(link *Link) {
	if link == s.activeLink {
		return
	}
	if link != nil && link.sky != s {
		panic("sky: active link is not part of the sky")
	}
	if s.activeLink != nil {
		s.activeLink.active = false
	}
	s.activeLink = link
	if link != nil {
		link.active = true
	}
	s.NotifyActiveLinkChanged()
}

// CountLinkUsage counts the layer targets containing the link.
func (s *Sky) CountLinkUsage(link *Link) int {
	count := 0
	for _, layer := range s.layers {
		for _, target := range layer.targets {
			if target.HasLink(link) {
				count++
			}
		}
	}
	return count
}

// A TargetReference locates one occurrence of a link in a layer target.
type TargetReference struct {
	Layer    *Layer
	Target   skye.Target
	Position int // position of the link in the target
}

// TargetsUsingLink returns every target holding the link, in layer and
// target order.
func (s *Sky) TargetsUsingLink(link *Link) []TargetReference {
	var refs []TargetReference
	for _, layer := range s.layers {
		for t, target := range layer.targets {
			if position := target.IndexOfLink(link); position != -1 {
				refs = append(refs, TargetReference{
					Layer:    layer,
					Target:   skye.Target(t),
					Position: position,
				})
			}
		}
	}
	return refs
}

func (s *Sky) renumberLinks() {
	for i, link := range s.links {
		link.index = i
	}
}

// Layers

func (s *Sky) GetLayers() []*Layer {
	return s.layers
}

func (s *Sky) GetLayerCount() int {
	return len(s.layers)
}

func (s *Sky) GetLayerAt(index int) *Layer {
	return s.layers[index]
}

// IndexOfLayer returns -1 if the layer is not part of the sky.
func (s *Sky) IndexOfLayer(layer *Layer) int {
	for i, other := range s.layers {
		if other == layer {
			return i
		}
	}
	return -1
}

func (s *Sky) AddLayer(layer *Layer) {
	s.InsertLayerAt(layer, len(s.layers))
}

func (s *Sky) InsertLayerAt(layer *Layer, index int) {
	if layer == nil {
		panic("sky: nil layer")
	}
	if layer.sky != nil {
		panic("sky: layer already belongs to a sky")
	}
	s.layers = insertAt(s.layers, layer, index)
	layer.sky = s

	s.NotifyLayerStructureChanged()

	if s.activeLayer == nil {
		s.SetActiveLayer(layer)
	}
}

func (s *Sky) MoveLayerTo(layer *Layer, index int) {
	s.layers = moveTo(s.layers, layer, index)
	s.NotifyLayerStructureChanged()
}

func (s *Sky) RemoveLayer(layer *Layer) {
	if layer == nil {
		panic("sky: nil layer")
	}
	index := mustIndex(s.layers, layer)

	if layer == s.activeLayer {
		count := len(s.layers)
		if index < count-1 {
			s.SetActiveLayer(s.layers[index+1])
		} else if index > 0 {
			s.SetActiveLayer(s.layers[index-1])
		} else {
			s.SetActiveLayer(nil)
		}
	}

	layer.sky = nil
	s.layers = removeItem(s.layers, layer)

	s.NotifyLayerStructureChanged()
}

func (s *Sky) RemoveAllLayers() {
	s.SetActiveLayer(nil)
	for _, layer := range s.layers {
		layer.sky = nil
	}
	s.layers = nil
	s.NotifyLayerStructureChanged()
}

func (s *Sky) GetActiveLayer() *Layer {
	return s.activeLayer
}

func (s *Sky) SetActiveLayer(layer *Layer) {
	if layer == s.activeLayer {
		return
	}
	if layer != nil && layer.sky != s {
		panic("sky: active layer is not part of the sky")
	}
	if s.activeLayer != nil {
		s.activeLayer.active = false
	}
	s.activeLayer = layer
	if layer != nil {
		layer.active = true
	}
	s.NotifyActiveLayerChanged()
}
