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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skye "github.com/timburks/skye/pkg/types"
)

// recorder appends the name of each notification it receives.
type recorder struct {
	DefaultListener
	name   string
	events *[]string
}

func (r *recorder) record(event string) {
	*r.events = append(*r.events, r.name+":"+event)
}

func (r *recorder) StateChanged(*Sky)               { r.record("state") }
func (r *recorder) SkyChanged(*Sky)                 { r.record("sky") }
func (r *recorder) ControllerStructureChanged(*Sky) { r.record("controllers") }
func (r *recorder) ActiveControllerChanged(*Sky)    { r.record("active-controller") }
func (r *recorder) LinkNameChanged(*Sky, *Link)     { r.record("link-name") }
func (r *recorder) TargetChanged(_ *Sky, _ *Layer, t skye.Target) {
	r.record("target " + t.String())
}

func assertControllerIndices(t *testing.T, s *Sky) {
	for i, c := range s.GetControllers() {
		assert.Equal(t, i, c.GetIndex(), "controller %s", c.GetName())
		assert.Same(t, s, c.GetSky())
	}
}

func assertLinkIndices(t *testing.T, s *Sky) {
	for i, l := range s.GetLinks() {
		assert.Equal(t, i, l.GetIndex(), "link %s", l.GetName())
		assert.Same(t, s, l.GetSky())
	}
}

func names(controllers []*Controller) []string {
	out := make([]string, len(controllers))
	for i, c := range controllers {
		out[i] = c.GetName()
	}
	return out
}

func TestNewSky(t *testing.T) {
	s := NewSky(0)
	assert.Equal(t, DefaultFilePath, s.GetFilePath())
	assert.True(t, s.GetNeedsRebuild())
	assert.False(t, s.GetChanged())
	assert.True(t, s.GetDrawCompass())
	assert.NotNil(t, s.GetUndoSystem())
}

func TestControllerIndicesFollowPositions(t *testing.T) {
	s := NewSky(0)
	a, b, c, d := NewController("a"), NewController("b"), NewController("c"), NewController("d")
	s.AddController(a)
	s.AddController(b)
	s.InsertControllerAt(c, 0)
	s.InsertControllerAt(d, 2)
	assert.Equal(t, []string{"c", "a", "d", "b"}, names(s.GetControllers()))
	assertControllerIndices(t, s)

	s.MoveControllerTo(c, 3)
	assert.Equal(t, []string{"a", "d", "b", "c"}, names(s.GetControllers()))
	assertControllerIndices(t, s)

	s.MoveControllerTo(b, 0)
	assert.Equal(t, []string{"b", "a", "d", "c"}, names(s.GetControllers()))
	assertControllerIndices(t, s)

	s.RemoveController(a)
	assert.Equal(t, []string{"b", "d", "c"}, names(s.GetControllers()))
	assertControllerIndices(t, s)
	assert.Nil(t, a.GetSky())
	assert.Equal(t, -1, a.GetIndex())
}

func TestLinkIndicesFollowPositions(t *testing.T) {
	s := NewSky(0)
	links := make([]*Link, 5)
	for i := range links {
		links[i] = NewLink(fmt.Sprintf("l%d", i))
		s.AddLink(links[i])
	}
	s.MoveLinkTo(links[4], 1)
	s.RemoveLink(links[2])
	s.InsertLinkAt(links[2], 0)
	assertLinkIndices(t, s)
	assert.Equal(t, 0, links[2].GetIndex())
	assert.Equal(t, 2, links[4].GetIndex())
}

func TestFirstAddedBecomesActive(t *testing.T) {
	s := NewSky(0)
	a, b := NewController("a"), NewController("b")
	s.AddController(a)
	s.AddController(b)
	assert.Same(t, a, s.GetActiveController())
	assert.True(t, a.GetActive())
	assert.False(t, b.GetActive())

	layer := NewLayer("sun")
	s.AddLayer(layer)
	assert.Same(t, layer, s.GetActiveLayer())
}

func TestRemoveActiveHandsSelectionOver(t *testing.T) {
	s := NewSky(0)
	a, b, c := NewController("a"), NewController("b"), NewController("c")
	s.AddController(a)
	s.AddController(b)
	s.AddController(c)

	s.SetActiveController(b)
	s.RemoveController(b)
	assert.Same(t, c, s.GetActiveController(), "next one is preferred")

	s.RemoveController(c)
	assert.Same(t, a, s.GetActiveController(), "previous one if last")
	assert.False(t, c.GetActive())

	s.RemoveController(a)
	assert.Nil(t, s.GetActiveController())
}

func TestActiveMustBeMember(t *testing.T) {
	s := NewSky(0)
	assert.Panics(t, func() { s.SetActiveController(NewController("stray")) })
	assert.Panics(t, func() { s.SetActiveLink(NewLink("stray")) })
	assert.Panics(t, func() { s.SetActiveLayer(NewLayer("stray")) })
}

func TestPreconditionsPanic(t *testing.T) {
	s := NewSky(0)
	c := NewController("a")
	s.AddController(c)
	assert.Panics(t, func() { s.AddController(nil) })
	assert.Panics(t, func() { s.AddController(c) })
	assert.Panics(t, func() { NewSky(0).RemoveController(c) })
	assert.Panics(t, func() { s.InsertControllerAt(NewController("b"), 5) })
	assert.Panics(t, func() { s.MoveControllerTo(c, 1) })
	assert.Panics(t, func() { s.RemoveLink(NewLink("x")) })
}

func TestListenersInRegistrationOrder(t *testing.T) {
	s := NewSky(0)
	var events []string
	s.AddListener(&recorder{name: "first", events: &events})
	s.AddListener(&recorder{name: "second", events: &events})

	s.NotifyControllerStructureChanged()
	assert.Equal(t, []string{
		"first:controllers", "second:controllers",
		"first:state", "second:state",
	}, events)

	events = nil
	s.NotifyControllerStructureChanged()
	assert.Equal(t, []string{"first:controllers", "second:controllers"}, events,
		"state only changes once")
}

func TestRemoveListener(t *testing.T) {
	s := NewSky(0)
	var events []string
	first := &recorder{name: "first", events: &events}
	second := &recorder{name: "second", events: &events}
	s.AddListener(first)
	s.AddListener(second)
	s.RemoveListener(first)
	s.RemoveListener(first)
	assert.Equal(t, 1, s.GetListenerCount())

	s.NotifySkyChanged()
	assert.Equal(t, []string{"second:sky", "second:state"}, events)
	assert.Panics(t, func() { s.AddListener(nil) })
}

// selfRemover unregisters itself on the first notification.
type selfRemover struct {
	DefaultListener
	calls int
}

func (r *selfRemover) SkyChanged(s *Sky) {
	r.calls++
	s.RemoveListener(r)
}

func TestListenerRemovingItselfDuringNotification(t *testing.T) {
	s := NewSky(0)
	var events []string
	remover := &selfRemover{}
	s.AddListener(remover)
	s.AddListener(&recorder{name: "after", events: &events})

	s.NotifySkyChanged()
	assert.Equal(t, 1, remover.calls)
	assert.Contains(t, events, "after:sky")

	s.NotifySkyChanged()
	assert.Equal(t, 1, remover.calls)
}

func TestMutationsMarkChangedAndRebuild(t *testing.T) {
	s := NewSky(0)
	s.SetNeedsRebuild(false)

	link := NewLink("l")
	s.AddLink(link)
	assert.True(t, s.GetChanged())
	assert.True(t, s.GetNeedsRebuild())

	s.SetChanged(false)
	s.SetNeedsRebuild(false)
	link.SetName("renamed")
	assert.True(t, s.GetChanged())
	assert.True(t, s.GetNeedsRebuild(), "the engine sky keeps names")

	c := NewController("time")
	s.AddController(c)
	s.SetChanged(false)
	s.SetNeedsRebuild(false)
	c.SetCurrentValue(0.5)
	assert.True(t, s.GetNeedsRebuild(), "the engine sky keeps values")
	s.SetNeedsRebuild(false)
	c.SetName("hour")
	assert.True(t, s.GetNeedsRebuild())

	s.SetChanged(false)
	s.NotifyActiveLinkChanged()
	s.NotifyViewChanged()
	assert.False(t, s.GetChanged())
}

type valueChange struct {
	controller *Controller
	oldValue   float32
	newValue   float32
}

func (u *valueChange) GetInfo() string { return "value" }
func (u *valueChange) Redo() { u.controller.SetCurrentValue(u.newValue) }
func (u *valueChange) Undo() { u.controller.SetCurrentValue(u.oldValue) }

func TestUndoChangesMarkChanged(t *testing.T) {
	s := NewSky(0)
	c := NewController("time")
	s.AddController(c)
	s.SetChanged(false)

	s.GetUndoSystem().Add(&valueChange{c, 0, 0.25}, true)
	assert.Equal(t, float32(0.25), c.GetCurrentValue())
	assert.True(t, s.GetChanged())

	s.SetChanged(false)
	s.GetUndoSystem().Undo()
	assert.True(t, s.GetChanged())

	// clearing the history is not an edit
	s.SetChanged(false)
	s.Reset()
	assert.False(t, s.GetChanged())
}

func TestSetBgColor(t *testing.T) {
	s := NewSky(0)
	var events []string
	s.AddListener(&recorder{name: "r", events: &events})
	s.SetBgColor(skye.NewColor(0.2, 0.3, 0.4))
	s.SetBgColor(skye.NewColor(0.2, 0.3, 0.4))
	assert.Equal(t, []string{"r:sky", "r:state"}, events)
}

func TestUsageCounts(t *testing.T) {
	s := NewSky(0)
	c := NewController("time")
	s.AddController(c)
	l1, l2 := NewLink("l1"), NewLink("l2")
	s.AddLink(l1)
	s.AddLink(l2)
	l1.SetController(c)
	l2.SetController(c)

	sun, moon := NewLayer("sun"), NewLayer("moon")
	s.AddLayer(sun)
	s.AddLayer(moon)
	sun.GetTarget(skye.TargetOrientationX).AddLink(l1)
	sun.GetTarget(skye.TargetIntensity).AddLink(l1)
	moon.GetTarget(skye.TargetOrientationX).AddLink(l2)
	moon.GetTarget(skye.TargetOrientationX).AddLink(l1)

	assert.Equal(t, 4, s.CountControllerUsage(c))
	assert.Equal(t, 3, s.CountLinkUsage(l1))
	assert.Equal(t, 1, s.CountLinkUsage(l2))
	assert.Equal(t, []*Link{l1, l2}, s.LinksUsingController(c))

	refs := s.TargetsUsingLink(l1)
	require.Len(t, refs, 3)
	assert.Equal(t, TargetReference{Layer: sun, Target: skye.TargetOrientationX, Position: 0}, refs[0])
	assert.Equal(t, TargetReference{Layer: sun, Target: skye.TargetIntensity, Position: 0}, refs[1])
	assert.Equal(t, TargetReference{Layer: moon, Target: skye.TargetOrientationX, Position: 1}, refs[2])
}

func TestControllerValue(t *testing.T) {
	s := NewSky(0)
	c := NewController("time")
	s.AddController(c)
	c.SetValueRange(0, 24)
	c.SetCurrentValue(30)
	assert.Equal(t, float32(24), c.GetCurrentValue())

	c.SetClamp(false)
	c.SetCurrentValue(30)
	assert.InDelta(t, 6, c.GetCurrentValue(), 1e-5)
	c.SetCurrentValue(-1)
	assert.InDelta(t, 23, c.GetCurrentValue(), 1e-5)

	c.SetFrozen(true)
	c.SetCurrentValue(12)
	assert.InDelta(t, 23, c.GetCurrentValue(), 1e-5)

	c.SetValueRange(5, 1)
	assert.Equal(t, float32(5), c.GetMinimumValue())
	assert.Equal(t, float32(5), c.GetMaximumValue())
	assert.Equal(t, float32(5), c.GetCurrentValue())
}

func TestLinkDefaults(t *testing.T) {
	l := NewLink("")
	assert.Equal(t, "Link", l.GetName())
	assert.Equal(t, 1, l.GetRepeat())
	l.SetRepeat(-3)
	assert.Equal(t, 1, l.GetRepeat())
	c := l.GetCurve()
	c.RemoveAllPoints()
	assert.Equal(t, 2, l.GetCurve().GetPointCount(), "curve is returned by value")
}

func TestBodies(t *testing.T) {
	s := NewSky(0)
	layer := NewLayer("sun")
	s.AddLayer(layer)
	a, b, c := NewBody(), NewBody(), NewBody()
	layer.AddBody(a)
	layer.AddBody(b)
	layer.InsertBodyAt(c, 1)
	assert.Equal(t, []*Body{a, c, b}, layer.GetBodies())
	assert.Same(t, a, layer.GetActiveBody())
	assert.Equal(t, 1, c.GetIndex())

	layer.MoveBodyTo(a, 2)
	assert.Equal(t, []*Body{c, b, a}, layer.GetBodies())

	layer.RemoveBody(a)
	assert.Same(t, b, layer.GetActiveBody())
	assert.Nil(t, a.GetLayer())
	assert.Panics(t, func() { layer.SetActiveBody(a) })

	dup := b.Duplicate()
	assert.Nil(t, dup.GetLayer())
	assert.NotEqual(t, b.GetID(), dup.GetID())
	assert.Equal(t, b.GetSize(), dup.GetSize())
}

func TestTargets(t *testing.T) {
	s := NewSky(0)
	var events []string
	s.AddListener(&recorder{name: "r", events: &events})
	layer := NewLayer("sun")
	s.AddLayer(layer)
	link := NewLink("l")
	s.AddLink(link)
	events = nil

	target := layer.GetTarget(skye.TargetColorR)
	target.AddLink(link)
	assert.True(t, target.HasLink(link))
	assert.Equal(t, []string{"r:target Color Red"}, events)
	assert.Panics(t, func() { target.AddLink(link) })

	target.RemoveLink(link)
	assert.Equal(t, 0, target.GetLinkCount())
	assert.Panics(t, func() { target.RemoveLink(link) })
	assert.Panics(t, func() { layer.GetTarget(skye.TargetCount) })
}

func TestDispose(t *testing.T) {
	s := NewSky(0)
	c := NewController("c")
	s.AddController(c)
	s.AddLink(NewLink("l"))
	s.AddLayer(NewLayer("layer"))
	s.Dispose()
	assert.Equal(t, 0, s.GetControllerCount())
	assert.Equal(t, 0, s.GetLinkCount())
	assert.Equal(t, 0, s.GetLayerCount())
	assert.Nil(t, s.GetActiveController())
	assert.Nil(t, c.GetSky())
}
