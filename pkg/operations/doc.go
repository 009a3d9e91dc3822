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

// Package operations wraps sky mutations into undoable units.
// Operations are created by panels and the commander and capture everything
// needed to revert themselves when they are constructed. Nothing changes
// until the undo system calls Redo for the first time. Constructors panic
// when the entity they act on is not where it should be.
package operations
