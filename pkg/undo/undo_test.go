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

package undo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// counter is a tiny document; add increments it by delta.
type counter struct {
	value int
}

type add struct {
	c     *counter
	delta int
}

func (a *add) GetInfo() string { return fmt.Sprintf("add %d", a.delta) }
func (a *add) Redo()           { a.c.value += a.delta }
func (a *add) Undo()           { a.c.value -= a.delta }

func TestAddUndoRedo(t *testing.T) {
	c := &counter{}
	changes := 0
	s := NewSystem(0, func() { changes++ })

	s.Add(&add{c, 1}, true)
	s.Add(&add{c, 10}, true)
	assert.Equal(t, 11, c.value)
	assert.Equal(t, 2, s.GetCount())
	assert.False(t, s.CanRedo())

	s.Undo()
	assert.Equal(t, 1, c.value)
	assert.True(t, s.CanRedo())
	assert.Equal(t, "add 10", s.GetRedoTop().GetInfo())

	s.Redo()
	assert.Equal(t, 11, c.value)
	assert.Equal(t, 4, changes)
}

func TestAddWithoutRedo(t *testing.T) {
	c := &counter{}
	s := NewSystem(0, nil)
	s.Add(&add{c, 3}, false)
	assert.Equal(t, 0, c.value)
	s.Undo()
	assert.Equal(t, -3, c.value)
}

func TestNewActionTruncatesRedoTail(t *testing.T) {
	c := &counter{}
	s := NewSystem(0, nil)
	s.Add(&add{c, 1}, true)
	s.Add(&add{c, 2}, true)
	s.Add(&add{c, 4}, true)
	s.Undo()
	s.Undo()
	assert.Equal(t, 2, s.GetRedoableCount())

	s.Add(&add{c, 100}, true)
	assert.Equal(t, 0, s.GetRedoableCount())
	assert.Equal(t, 2, s.GetCount())
	assert.Equal(t, 101, c.value)

	s.Redo()
	assert.Equal(t, 101, c.value)
}

func TestUndoAtEndsIsNoop(t *testing.T) {
	c := &counter{}
	changes := 0
	s := NewSystem(0, func() { changes++ })
	s.Undo()
	s.Redo()
	assert.Equal(t, 0, changes)
	assert.Nil(t, s.GetTop())
	assert.Nil(t, s.GetRedoTop())
	s.Add(&add{c, 1}, true)
	s.Redo()
	assert.Equal(t, 1, changes)
}

func TestLimitDropsOldest(t *testing.T) {
	c := &counter{}
	s := NewSystem(3, nil)
	for i := 1; i <= 5; i++ {
		s.Add(&add{c, i}, true)
	}
	assert.Equal(t, 3, s.GetCount())
	assert.Equal(t, "add 5", s.GetTop().GetInfo())
	s.Undo()
	s.Undo()
	s.Undo()
	s.Undo()
	assert.Equal(t, 3, c.value)
	assert.False(t, s.CanUndo())
}

func TestRemoveAll(t *testing.T) {
	c := &counter{}
	s := NewSystem(0, nil)
	s.Add(&add{c, 1}, true)
	s.RemoveAll()
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
	assert.Equal(t, 1, c.value)
}

func TestAddNilPanics(t *testing.T) {
	s := NewSystem(0, nil)
	assert.Panics(t, func() { s.Add(nil, true) })
}
