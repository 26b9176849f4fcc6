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

type (
	// ModelSubtreeLookup is the leaf that runs a named model tree resolved through the context at spawn time
	ModelSubtreeLookup struct {
		model
		name string
	}

	subtreeLookupTask struct {
		task
		name    string
		child   ExecutionTask
		missing bool
	}
)

// NewSubtreeLookup constructs a leaf model task that, on spawn, looks up the named model tree via Context.Tree,
// instantiates and spawns it as its child, and reports the child's status as its own, a lookup miss is logged and
// reported deterministically as failure
func NewSubtreeLookup(guard ModelTask, name string) *ModelSubtreeLookup {
	return &ModelSubtreeLookup{model: newModel(`subtree-lookup`, guard, 0, 0, nil), name: name}
}

// Name returns the tree name resolved at spawn time
func (m *ModelSubtreeLookup) Name() string { return m.name }

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelSubtreeLookup) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &subtreeLookupTask{name: m.name}
	t.init(t, m, executor, parent)
	return t
}

func (t *subtreeLookupTask) spawn() error {
	tree := t.ctx.Tree(t.name)
	if tree == nil {
		t.executor.log().Warn(`btengine: subtree lookup miss`, `tree`, t.name, `position`, t.model.Position().String())
		t.missing = true
		t.executor.RequestInsertion(Tickable, t.self)
		return nil
	}
	ComputePositions(tree)
	t.child = tree.CreateExecutor(t.executor, t.self)
	t.child.AddTaskListener(t)
	return t.child.Spawn(t.ctx)
}

func (t *subtreeLookupTask) tick() (Status, error) {
	if t.missing {
		return Failure, nil
	}
	return t.status, nil
}

func (t *subtreeLookupTask) terminate() error {
	if t.child == nil {
		return nil
	}
	t.child.RemoveTaskListener(t)
	return t.child.Terminate()
}

// StatusChanged implements TaskListener, the looked up tree's terminal status passes through
func (t *subtreeLookupTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	if status := child.Status(); status.Terminal() {
		t.finish(status)
	}
}
