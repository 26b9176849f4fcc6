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
	// ModelSequence is the sequence composite, children run one at a time in order, failure short-circuits
	ModelSequence struct {
		model
	}

	sequenceTask struct {
		task
		children []ModelTask
		index    int
		child    ExecutionTask
	}
)

// NewSequence constructs a sequence model task, which spawns its children one at a time in order, succeeding after
// the last child succeeds, and reporting the child's status as its own on failure or termination. Note that a panic
// will occur unless there is at least one non-nil child.
func NewSequence(guard ModelTask, children ...ModelTask) *ModelSequence {
	return &ModelSequence{model: newModel(`sequence`, guard, 1, -1, children)}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelSequence) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &sequenceTask{}
	t.init(t, m, executor, parent)
	return t
}

func (t *sequenceTask) spawn() error {
	t.children = t.model.Children()
	return t.spawnChild(0)
}

func (t *sequenceTask) spawnChild(index int) error {
	t.index = index
	t.child = t.children[index].CreateExecutor(t.executor, t.self)
	t.child.AddTaskListener(t)
	return t.child.Spawn(t.ctx)
}

func (t *sequenceTask) terminate() error {
	if t.child == nil {
		return nil
	}
	t.child.RemoveTaskListener(t)
	return t.child.Terminate()
}

// StatusChanged implements TaskListener, advancing to the next child on success and short-circuiting otherwise
func (t *sequenceTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	switch child.Status() {
	case Success:
		child.RemoveTaskListener(t)
		if t.index+1 < len(t.children) {
			if err := t.spawnChild(t.index + 1); err != nil {
				t.executor.reportError(err)
			}
			return
		}
		t.finish(Success)
	case Failure:
		t.finish(Failure)
	case Terminated:
		t.finish(Terminated)
	}
}
