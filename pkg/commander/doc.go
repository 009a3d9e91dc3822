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

// Package commander converts user input and scripts into commands for skye.
// Keys either go to the properties panel that has focus or select
// commander modes. The command line (":") runs editor commands and the
// lisp line ("(") evaluates lisp with primitives for every undoable
// operation. Commands that change the sky create operations and perform
// them through the editor, so that they can be undone.
package commander
