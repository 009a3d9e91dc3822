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

// Package undo keeps the linear history of undoable actions of a document.
package undo

import (
	log "github.com/sirupsen/logrus"

	skye "github.com/timburks/skye/pkg/types"
)

// DefaultLimit is the number of actions kept when no limit is configured.
const DefaultLimit = 100

// The System manages the undo / redo process.
// Entries before the cursor have been applied; entries at and after the
// cursor have been undone and can be redone.
type System struct {
	entries  []skye.Undoable
	cursor   int    // number of applied entries
	limit    int    // maximum number of entries, 0 for no limit
	onChange func() // called after every change of the history
}

func NewSystem(limit int, onChange func()) *System {
	if limit < 0 {
		limit = 0
	}
	return &System{limit: limit, onChange: onChange}
}

// Add appends an action, dropping everything that could have been redone.
// If redo is set the action is applied first.
func (s *System) Add(u skye.Undoable, redo bool) {
	if u == nil {
		panic("undo: nil action")
	}
	if redo {
		u.Redo()
	}
	for i := s.cursor; i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = append(s.entries[:s.cursor], u)
	s.cursor++
	if s.limit > 0 && len(s.entries) > s.limit {
		drop := len(s.entries) - s.limit
		s.entries = append(s.entries[:0:0], s.entries[drop:]...)
		s.cursor -= drop
	}
	log.Debugf("undo: added %q (%d/%d)", u.GetInfo(), s.cursor, len(s.entries))
	s.changed()
}

func (s *System) CanUndo() bool {
	return s.cursor > 0
}

func (s *System) CanRedo() bool {
	return s.cursor < len(s.entries)
}

// Undo reverts the most recently applied action.
func (s *System) Undo() {
	if !s.CanUndo() {
		return
	}
	s.cursor--
	u := s.entries[s.cursor]
	u.Undo()
	log.Debugf("undo: undid %q", u.GetInfo())
	s.changed()
}

// Redo applies the next undone action.
func (s *System) Redo() {
	if !s.CanRedo() {
		return
	}
	u := s.entries[s.cursor]
	u.Redo()
	s.cursor++
	log.Debugf("undo: redid %q", u.GetInfo())
	s.changed()
}

// GetCount returns the number of actions that can be undone.
func (s *System) GetCount() int {
	return s.cursor
}

// GetRedoableCount returns the number of actions that can be redone.
func (s *System) GetRedoableCount() int {
	return len(s.entries) - s.cursor
}

// GetTop returns the action Undo would revert, or nil.
func (s *System) GetTop() skye.Undoable {
	if s.cursor == 0 {
		return nil
	}
	return s.entries[s.cursor-1]
}

// GetRedoTop returns the action Redo would apply, or nil.
func (s *System) GetRedoTop() skye.Undoable {
	if !s.CanRedo() {
		return nil
	}
	return s.entries[s.cursor]
}

func (s *System) GetLimit() int {
	return s.limit
}

func (s *System) RemoveAll() {
	if len(s.entries) == 0 {
		return
	}
	s.entries = nil
	s.cursor = 0
	s.changed()
}

func (s *System) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
