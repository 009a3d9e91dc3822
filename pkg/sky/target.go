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

// A ControllerTarget holds the links driving one animatable property of a layer.
type ControllerTarget struct {
	layer  *Layer
	target skye.Target
	links  []*Link
}

func (t *ControllerTarget) GetLayer() *Layer {
	return t.layer
}

func (t *ControllerTarget) GetTarget() skye.Target {
	return t.target
}

// GetLinks returns the links in order. The slice must not be modified.
func (t *ControllerTarget) GetLinks() []*Link {
	return t.links
}

func (t *ControllerTarget) GetLinkCount() int {
	return len(t.links)
}

func (t *ControllerTarget) HasLink(link *Link) bool {
	return t.IndexOfLink(link) != -1
}

// IndexOfLink returns -1 if the target does not hold the link.
func (t *ControllerTarget) IndexOfLink(link *Link) int {
	for i, other := range t.links {
		if other == link {
			return i
		}
	}
	return -1
}

func (t *ControllerTarget) AddLink(link *Link) {
	t.InsertLinkAt(link, len(t.links))
}

// InsertLinkAt panics if the link is nil or already part of the target.
func (t *ControllerTarget) InsertLinkAt(link *Link, index int) {
	if link == nil {
		panic("sky: nil link")
	}
	if t.HasLink(link) {
		panic("sky: link already part of the target")
	}
	t.links = insertAt(t.links, link, index)
	t.notifyChanged()
}

func (t *ControllerTarget) RemoveLink(link *Link) {
	t.links = removeItem(t.links, link)
	t.notifyChanged()
}

func (t *ControllerTarget) RemoveAllLinks() {
	if len(t.links) == 0 {
		return
	}
	t.links = nil
	t.notifyChanged()
}

func (t *ControllerTarget) notifyChanged() {
	if t.layer.sky != nil {
		t.layer.sky.NotifyTargetChanged(t.layer, t.target)
	}
}
