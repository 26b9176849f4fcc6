/*
   Copyright 2026 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package btengine

import (
	"errors"
	"strconv"
	"strings"
)

type (
	// Position identifies a model task within its tree, as the path of child indices from the root, with equality by
	// value, making it usable directly as a map key. The zero value is the root position.
	Position struct {
		path string
	}
)

// RootPosition returns the position of the root of a model tree
func RootPosition() Position { return Position{} }

// Child returns the position of the child at index under the receiver, note that a panic will occur if index is
// negative
func (p Position) Child(index int) Position {
	if index < 0 {
		panic(errors.New(`btengine.Position.Child negative index`))
	}
	return Position{path: p.path + `/` + strconv.Itoa(index)}
}

// Depth returns the number of child indices in the path, 0 for the root
func (p Position) Depth() int {
	if p.path == `` {
		return 0
	}
	return strings.Count(p.path, `/`)
}

// Indices returns the path as a slice of child indices, nil for the root
func (p Position) Indices() []int {
	if p.path == `` {
		return nil
	}
	parts := strings.Split(p.path[1:], `/`)
	indices := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			panic(err)
		}
		indices[i] = v
	}
	return indices
}

// String returns a string representation of the position
func (p Position) String() string {
	if p.path == `` {
		return `/`
	}
	return p.path
}
