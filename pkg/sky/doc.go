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

// Package sky implements the sky document: controllers, links, layers with
// their bodies and targets. Every mutation is reported synchronously to the
// registered listeners. Children keep a back-reference to their owner that
// is cleared when they are removed; ownership itself is plain garbage
// collection. Misuse (nil entities, entities owned elsewhere, indices out of
// range) panics.
package sky
