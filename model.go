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
	"fmt"
)

type (
	// ModelTask is an immutable node describing the shape and parameters of a behavior tree, instantiated into
	// ExecutionTask values on demand via CreateExecutor. Model tasks are constructed with the New* functions in this
	// package and must not be mutated after construction, positions are assigned by ComputePositions.
	ModelTask interface {
		// Kind returns the task kind, e.g. `sequence`
		Kind() string

		// Guard returns the guard sub-tree, or nil, evaluation of a nil guard succeeds
		Guard() ModelTask

		// Children returns a copy of the child model tasks, empty for leaves
		Children() []ModelTask

		// Position returns the position assigned by ComputePositions, the zero value before assignment
		Position() Position

		// CreateExecutor instantiates the execution task for this model, owned by executor, with the given parent
		// (nil for the root)
		CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask

		setPosition(position Position)
	}

	// model is the base for all ModelTask implementations in this package
	model struct {
		kind     string
		guard    ModelTask
		children []ModelTask
		position Position
	}
)

func (m *model) Kind() string { return m.kind }

func (m *model) Guard() ModelTask { return m.guard }

func (m *model) Children() []ModelTask { return copyModelTasks(m.children) }

func (m *model) Position() Position { return m.position }

func (m *model) setPosition(position Position) { m.position = position }

// newModel validates and constructs the base for a concrete model task, note that a panic will occur on nil children,
// or on a child count outside [minChildren, maxChildren] (maxChildren < 0 meaning unbounded)
func newModel(kind string, guard ModelTask, minChildren, maxChildren int, children []ModelTask) model {
	if len(children) < minChildren || (maxChildren >= 0 && len(children) > maxChildren) {
		panic(fmt.Errorf(`btengine.%s invalid number of children (%d)`, kind, len(children)))
	}
	for i, child := range children {
		if child == nil {
			panic(fmt.Errorf(`btengine.%s nil child at index %d`, kind, i))
		}
	}
	return model{kind: kind, guard: guard, children: copyModelTasks(children)}
}

func copyModelTasks(tasks []ModelTask) []ModelTask {
	if tasks == nil {
		return nil
	}
	result := make([]ModelTask, len(tasks))
	copy(result, tasks)
	return result
}

// ComputePositions assigns each task in the model tree rooted at root its position, the path of child indices from
// root, the key under which per-tree persistent state is stored. Guard sub-trees are positioned independently when
// they are evaluated. Note that a panic will occur if root is nil.
func ComputePositions(root ModelTask) {
	if root == nil {
		panic(errors.New(`btengine.ComputePositions nil root`))
	}
	computePositions(root, RootPosition())
}

func computePositions(task ModelTask, position Position) {
	task.setPosition(position)
	for i, child := range task.Children() {
		computePositions(child, position.Child(i))
	}
}

// WalkModel traverses the model tree rooted at task depth-first, calling fn for each task, children in order, a nil
// task is a no-op
func WalkModel(task ModelTask, fn func(task ModelTask)) {
	if task == nil {
		return
	}
	fn(task)
	for _, child := range task.Children() {
		WalkModel(child, fn)
	}
}
