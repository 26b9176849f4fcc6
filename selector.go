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
	// ModelSelector is the selector composite, the mirror of sequence, success short-circuits, failure advances
	ModelSelector struct {
		model
	}

	selectorTask struct {
		task
		children []ModelTask
		index    int
		child    ExecutionTask
	}
)

// NewSelector constructs a selector model task, which spawns its children one at a time in order, succeeding as soon
// as one succeeds, and failing after the last child fails. Note that a panic will occur unless there is at least one
// non-nil child.
func NewSelector(guard ModelTask, children ...ModelTask) *ModelSelector {
	return &ModelSelector{model: newModel(`selector`, guard, 1, -1, children)}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelSelector) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &selectorTask{}
	t.init(t, m, executor, parent)
	return t
}

func (t *selectorTask) spawn() error {
	t.children = t.model.Children()
	return t.spawnChild(0)
}

func (t *selectorTask) spawnChild(index int) error {
	t.index = index
	t.child = t.children[index].CreateExecutor(t.executor, t.self)
	t.child.AddTaskListener(t)
	return t.child.Spawn(t.ctx)
}

func (t *selectorTask) terminate() error {
	if t.child == nil {
		return nil
	}
	t.child.RemoveTaskListener(t)
	return t.child.Terminate()
}

// StatusChanged implements TaskListener, advancing to the next child on failure and short-circuiting on success
func (t *selectorTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	switch child.Status() {
	case Failure:
		child.RemoveTaskListener(t)
		if t.index+1 < len(t.children) {
			if err := t.spawnChild(t.index + 1); err != nil {
				t.executor.reportError(err)
			}
			return
		}
		t.finish(Failure)
	case Success:
		t.finish(Success)
	case Terminated:
		t.finish(Terminated)
	}
}
