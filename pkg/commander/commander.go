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

package commander

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	log "github.com/sirupsen/logrus"

	"github.com/timburks/skye/pkg/editor"
	skye "github.com/timburks/skye/pkg/types"
)

// The Commander converts user input into commands to the editor.
type Commander struct {
	editor      *editor.Editor
	mode        int      // editor mode
	debug       bool     // debug mode displays information about events (key codes, etc)
	commandText string   // command as it is being typed on the command line
	lispText    string   // lisp command as it is being typed
	message     string   // status message
	lastKey     skye.Key // last key pressed
	lastCh      rune     // last character pressed (if key == 0)
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{editor: e, mode: skye.ModeEdit}
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) GetModeName() string {
	switch c.mode {
	case skye.ModeEdit:
		return "edit"
	case skye.ModeField:
		return "field"
	case skye.ModeCommand:
		return "command"
	case skye.ModeLisp:
		return "lisp"
	case skye.ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func (c *Commander) IsRunning() bool {
	return c.mode != skye.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}

func (c *Commander) GetCommandText() string {
	return c.commandText
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) ProcessEvent(event *skye.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case skye.EventKey:
		return c.processKey(event)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *skye.Event) error {
	c.lastKey = event.Key
	c.lastCh = event.Ch

	switch c.mode {
	case skye.ModeEdit:
		c.processKeyEditMode(event)
	case skye.ModeField:
		c.processKeyFieldMode(event)
	case skye.ModeCommand:
		c.processKeyCommandMode(event)
	case skye.ModeLisp:
		c.processKeyLispMode(event)
	}
	return nil
}

func (c *Commander) processKeyEditMode(event *skye.Event) {
	e := c.editor

	switch event.Key {
	case skye.KeyTab, skye.KeyCtrlN:
		e.SelectPanelNext()
		return
	case skye.KeyBacktab, skye.KeyCtrlP:
		e.SelectPanelPrevious()
		return
	case skye.KeyCtrlR:
		c.parseEval("(redo)")
		return
	case skye.KeyEsc:
		c.message = ""
		return
	}
	if event.Key == skye.KeyUnsupported {
		switch event.Ch {
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = skye.ModeCommand
			c.commandText = ""
			return
		//
		// lisp commands go to the message bar
		//
		case '(':
			c.mode = skye.ModeLisp
			c.lispText = "("
			return
		case 'u':
			c.parseEval("(undo)")
			return
		case '1', '2', '3', '4':
			if err := e.SelectPanel(int(event.Ch - '1')); err != nil {
				c.message = err.Error()
			}
			return
		}
	}
	// everything else goes to the panel
	panel := e.GetActivePanel()
	panel.HandleEvent(event)
	if panel.IsEditing() {
		c.mode = skye.ModeField
	}
}

// processKeyFieldMode sends every key to the panel until the widget being
// edited lets go.
func (c *Commander) processKeyFieldMode(event *skye.Event) {
	panel := c.editor.GetActivePanel()
	panel.HandleEvent(event)
	if !panel.IsEditing() {
		c.mode = skye.ModeEdit
	}
}

func (c *Commander) processKeyCommandMode(event *skye.Event) {
	switch event.Key {
	case skye.KeyEsc:
		c.mode = skye.ModeEdit
	case skye.KeyEnter:
		c.performCommand()
	case skye.KeyBackspace2, skye.KeyCtrlH:
		if len(c.commandText) > 0 {
			c.commandText = c.commandText[0 : len(c.commandText)-1]
		}
	case skye.KeySpace:
		c.commandText += " "
	case skye.KeyUnsupported:
		if event.Ch != 0 {
			c.commandText += string(event.Ch)
		}
	}
}

func (c *Commander) processKeyLispMode(event *skye.Event) {
	switch event.Key {
	case skye.KeyEsc:
		c.mode = skye.ModeEdit
	case skye.KeyEnter:
		c.message = c.parseEval(c.lispText)
		// if evaluation didn't change the mode, set it back to edit
		if c.mode == skye.ModeLisp {
			c.mode = skye.ModeEdit
		}
	case skye.KeyBackspace2, skye.KeyCtrlH:
		if len(c.lispText) > 0 {
			c.lispText = c.lispText[0 : len(c.lispText)-1]
		}
	case skye.KeySpace:
		c.lispText += " "
	case skye.KeyUnsupported:
		if event.Ch != 0 {
			c.lispText += string(event.Ch)
		}
	}
}

func (c *Commander) performCommand() {
	c.mode = skye.ModeEdit
	c.message = c.Run(c.commandText)
	c.commandText = ""
}

// Run performs one command line command and returns the message to show.
func (c *Commander) Run(command string) string {
	e := c.editor

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return ""
	}
	switch parts[0] {
	case "q", "quit":
		c.mode = skye.ModeQuit
	case "undo":
		if !e.PerformUndo() {
			return "nothing to undo"
		}
	case "redo":
		if !e.PerformRedo() {
			return "nothing to redo"
		}
	case "new":
		e.NewSky()
	case "dump":
		if len(parts) != 2 {
			return "usage: dump <file>"
		}
		if err := e.Dump(parts[1]); err != nil {
			return err.Error()
		}
		return "dumped " + parts[1]
	case "eval":
		return c.parseEval(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(command), "eval")))
	case "source":
		if len(parts) != 2 {
			return "usage: source <file>"
		}
		if err := c.ParseEvalFile(parts[1]); err != nil {
			return err.Error()
		}
	case "panel":
		if len(parts) != 2 {
			return "usage: panel <number>"
		}
		number, err := strconv.Atoi(parts[1])
		if err != nil {
			return err.Error()
		}
		if err := e.SelectPanel(number - 1); err != nil {
			return err.Error()
		}
	case "info":
		return e.Info()
	case "debug":
		if len(parts) == 2 {
			if parts[1] == "on" {
				c.debug = true
				log.SetLevel(log.DebugLevel)
			} else if parts[1] == "off" {
				c.debug = false
				log.SetLevel(e.GetConfig().GetLogLevel())
			}
		}
	default:
		log.Warnf("commander: unknown command %q", parts[0])
		return "unknown command: " + parts[0]
	}
	return ""
}

// GetMessageBarText returns the text of the message bar cut to length
// columns.
func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case skye.ModeCommand:
		line = ":" + c.commandText
	case skye.ModeLisp:
		line = c.lispText
	default:
		line = c.message
	}
	return runewidth.Truncate(line, length, "")
}
