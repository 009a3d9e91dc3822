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

// Package editor implements the core of skye. The editor owns the sky being
// edited and the properties panels that show it. Every change to the sky
// goes through the sky's undo system, either from a panel or through
// Perform, so that it can be undone and redone.
// The editor also keeps the engine sky, a flattened snapshot of the
// document that is rebuilt whenever the document changes.
package editor
