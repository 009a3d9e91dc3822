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

// Package screen draws skye in a terminal with termbox. The top row holds
// one tab per properties panel, the active panel fills the middle and the
// two bottom rows show the info bar and the message bar.
package screen

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"

	"github.com/timburks/skye/pkg/commander"
	"github.com/timburks/skye/pkg/editor"
	skye "github.com/timburks/skye/pkg/types"
	"github.com/timburks/skye/pkg/widgets"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size     skye.Size                       // screen size
	swatches map[skye.Color]termbox.Attribute // cache of palette lookups
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "screen")
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{swatches: make(map[skye.Color]termbox.Attribute)}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e *editor.Editor, c *commander.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()

	s.RenderTabs(e)
	e.GetActivePanel().Render(s, skye.Rect{
		Origin: skye.Point{Row: 1, Col: 0},
		Size:   skye.Size{Rows: s.size.Rows - 3, Cols: s.size.Cols},
	})
	s.RenderInfoBar(e, c)
	s.RenderMessageBar(c)

	switch c.GetMode() {
	case skye.ModeCommand, skye.ModeLisp:
		text := c.GetMessageBarText(s.size.Cols)
		termbox.SetCursor(runewidth.StringWidth(text), s.size.Rows-1)
	default:
		termbox.HideCursor()
	}
	termbox.Flush()
}

// SetCell draws a character with the colors of a widget style.
func (s *Screen) SetCell(col, row int, ch rune, style widgets.Style) {
	fg, bg := colors(style)
	termbox.SetCell(col, row, ch, fg, bg)
}

// SetSwatch fills a cell with the palette color closest to color.
func (s *Screen) SetSwatch(col, row int, color skye.Color) {
	bg, ok := s.swatches[color]
	if !ok {
		bg = attribute(paletteIndex(color))
		s.swatches[color] = bg
	}
	termbox.SetCell(col, row, ' ', termbox.ColorDefault, bg)
}

func colors(style widgets.Style) (fg, bg termbox.Attribute) {
	switch style {
	case widgets.StyleLabel:
		return termbox.ColorCyan, termbox.ColorDefault
	case widgets.StyleFocused:
		return termbox.ColorBlack, termbox.ColorWhite
	case widgets.StyleEditing:
		return termbox.ColorBlack, termbox.ColorYellow
	case widgets.StyleSelected:
		return termbox.ColorBlack, termbox.ColorCyan
	case widgets.StyleTitle:
		return termbox.ColorWhite | termbox.AttrBold | termbox.AttrUnderline, termbox.ColorDefault
	default:
		return termbox.ColorWhite, termbox.ColorDefault
	}
}

func (s *Screen) drawText(col, row int, text string, fg, bg termbox.Attribute) int {
	for _, ch := range text {
		if col >= s.size.Cols {
			break
		}
		termbox.SetCell(col, row, ch, fg, bg)
		col += runewidth.RuneWidth(ch)
	}
	return col
}

func (s *Screen) RenderTabs(e *editor.Editor) {
	col := 0
	for i, panel := range e.GetPanels() {
		fg, bg := termbox.ColorWhite, termbox.ColorDefault
		if i == e.GetActivePanelIndex() {
			fg, bg = termbox.ColorBlack, termbox.ColorWhite
		}
		col = s.drawText(col, 0, fmt.Sprintf(" %d %s ", i+1, panel.GetTitle()), fg, bg)
		col = s.drawText(col, 0, " ", termbox.ColorDefault, termbox.ColorDefault)
	}
}

func (s *Screen) RenderInfoBar(e *editor.Editor, c *commander.Commander) {
	finalText := fmt.Sprintf(" %s ", c.GetModeName())
	text := " skye - " + e.Info() + " "
	if pad := s.size.Cols - runewidth.StringWidth(text) - runewidth.StringWidth(finalText); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	text += finalText
	s.drawText(0, s.size.Rows-2, text, termbox.ColorBlack, termbox.ColorWhite)
}

func (s *Screen) RenderMessageBar(c *commander.Commander) {
	line := c.GetMessageBarText(s.size.Cols)
	s.drawText(0, s.size.Rows-1, line, termbox.ColorWhite, termbox.ColorDefault)
}

func (s *Screen) GetNextEvent() *skye.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return &skye.Event{
		Type: int(event.Type),
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) skye.Key {
	switch k {
	case termbox.KeyArrowDown:
		return skye.KeyArrowDown
	case termbox.KeyArrowLeft:
		return skye.KeyArrowLeft
	case termbox.KeyArrowRight:
		return skye.KeyArrowRight
	case termbox.KeyArrowUp:
		return skye.KeyArrowUp
	case termbox.KeyBackspace2:
		return skye.KeyBackspace2
	case termbox.KeyCtrlA:
		return skye.KeyCtrlA
	case termbox.KeyCtrlB:
		return skye.KeyCtrlB
	case termbox.KeyCtrlC:
		return skye.KeyCtrlC
	case termbox.KeyCtrlD:
		return skye.KeyCtrlD
	case termbox.KeyCtrlE:
		return skye.KeyCtrlE
	case termbox.KeyCtrlF:
		return skye.KeyCtrlF
	case termbox.KeyCtrlG:
		return skye.KeyCtrlG
	case termbox.KeyCtrlH:
		return skye.KeyCtrlH
	case termbox.KeyCtrlJ:
		return skye.KeyCtrlJ
	case termbox.KeyCtrlK:
		return skye.KeyCtrlK
	case termbox.KeyCtrlL:
		return skye.KeyCtrlL
	case termbox.KeyCtrlN:
		return skye.KeyCtrlN
	case termbox.KeyCtrlO:
		return skye.KeyCtrlO
	case termbox.KeyCtrlP:
		return skye.KeyCtrlP
	case termbox.KeyCtrlQ:
		return skye.KeyCtrlQ
	case termbox.KeyCtrlR:
		return skye.KeyCtrlR
	case termbox.KeyCtrlS:
		return skye.KeyCtrlS
	case termbox.KeyCtrlT:
		return skye.KeyCtrlT
	case termbox.KeyCtrlU:
		return skye.KeyCtrlU
	case termbox.KeyCtrlV:
		return skye.KeyCtrlV
	case termbox.KeyCtrlW:
		return skye.KeyCtrlW
	case termbox.KeyCtrlX:
		return skye.KeyCtrlX
	case termbox.KeyCtrlY:
		return skye.KeyCtrlY
	case termbox.KeyCtrlZ:
		return skye.KeyCtrlZ
	case termbox.KeyDelete:
		return skye.KeyDelete
	case termbox.KeyEnd:
		return skye.KeyEnd
	case termbox.KeyEnter:
		return skye.KeyEnter
	case termbox.KeyEsc:
		return skye.KeyEsc
	case termbox.KeyHome:
		return skye.KeyHome
	case termbox.KeyPgdn:
		return skye.KeyPgdn
	case termbox.KeyPgup:
		return skye.KeyPgup
	case termbox.KeySpace:
		return skye.KeySpace
	case termbox.KeyTab:
		return skye.KeyTab
	default:
		return skye.KeyUnsupported
	}
}
