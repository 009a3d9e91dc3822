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
	"slices"
)

// Ordered list primitives shared by controllers, links, layers, bodies and
// target links. All of them panic on misuse.

func insertAt[T comparable](list []T, item T, index int) []T {
	if index < 0 || index > len(list) {
		panic(fmt.Sprintf("sky: insert index %d out of range [0,%d]", index, len(list)))
	}
	return slices.Insert(list, index, item)
}

func mustIndex[T comparable](list []T, item T) int {
	index := slices.Index(list, item)
	if index == -1 {
		panic("sky: item is not in the list")
	}
	return index
}

func removeItem[T comparable](list []T, item T) []T {
	index := mustIndex(list, item)
	return slices.Delete(list, index, index+1)
}

func moveTo[T comparable](list []T, item T, index int) []T {
	from := mustIndex(list, item)
	if index < 0 || index >= len(list) {
		panic(fmt.Sprintf("sky: move index %d out of range [0,%d)", index, len(list)))
	}
	if from == index {
		return list
	}
	list = slices.Delete(list, from, from+1)
	return slices.Insert(list, index, item)
}
