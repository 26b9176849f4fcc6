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

import "errors"

type (
	// TreeLibrary is a lookup table from tree names to model trees, the abstract tree source consumed by the
	// SubtreeLookup leaf via Context.Tree. Not safe for concurrent use with mutation.
	TreeLibrary struct {
		trees map[string]ModelTask
	}
)

// NewTreeLibrary constructs an empty TreeLibrary
func NewTreeLibrary() *TreeLibrary { return &TreeLibrary{} }

// Add registers tree under name, returning true if an existing tree was replaced, note that a panic will occur if
// tree is nil
func (l *TreeLibrary) Add(name string, tree ModelTask) bool {
	if tree == nil {
		panic(errors.New(`btengine.TreeLibrary.Add nil tree`))
	}
	if l.trees == nil {
		l.trees = make(map[string]ModelTask)
	}
	_, replaced := l.trees[name]
	l.trees[name] = tree
	return replaced
}

// Tree returns the named model tree, or nil if there is none
func (l *TreeLibrary) Tree(name string) ModelTask {
	if l.trees == nil {
		return nil
	}
	return l.trees[name]
}

// Range calls fn for each registered tree until fn returns false, in unspecified order
func (l *TreeLibrary) Range(fn func(name string, tree ModelTask) bool) {
	for name, tree := range l.trees {
		if !fn(name, tree) {
			return
		}
	}
}
