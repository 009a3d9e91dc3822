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

package types

// Editor modes
const (
	ModeEdit    = 0
	ModeField   = 1 // a widget has keyboard focus
	ModeCommand = 2
	ModeLisp    = 3
	ModeQuit    = 9999
)

// Properties panels
const (
	PanelSky         = 0
	PanelControllers = 1
	PanelLinks       = 2
	PanelLayers      = 3
	PanelCount       = 4
)

// PanelName returns the tab title of a panel.
func PanelName(panel int) string {
	switch panel {
	case PanelSky:
		return "Sky"
	case PanelControllers:
		return "Controllers"
	case PanelLinks:
		return "Links"
	case PanelLayers:
		return "Layers"
	default:
		return "?"
	}
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Undoable is one reversible document mutation.
// Redo applies the mutation, Undo restores the state captured before it.
type Undoable interface {
	GetInfo() string
	Undo()
	Redo()
}
