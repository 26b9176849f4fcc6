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
	// ModelRandomSequence is the sequence composite with a randomised child visit order
	ModelRandomSequence struct {
		model
	}

	// ModelRandomSelector is the selector composite with a randomised child visit order
	ModelRandomSelector struct {
		model
	}

	// randomCompositeTask implements both random variants, parameterised by the status that advances to the next
	// child, the visit order is a uniform permutation chosen once at spawn, stable for the duration of that spawn
	randomCompositeTask struct {
		task
		advanceOn Status
		children  []ModelTask
		order     []int
		index     int
		child     ExecutionTask
	}
)

// NewRandomSequence constructs a sequence model task whose child visit order is a uniform random permutation chosen
// at spawn time, using the owning executor's random source. Note that a panic will occur unless there is at least
// one non-nil child.
func NewRandomSequence(guard ModelTask, children ...ModelTask) *ModelRandomSequence {
	return &ModelRandomSequence{model: newModel(`random-sequence`, guard, 1, -1, children)}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelRandomSequence) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &randomCompositeTask{advanceOn: Success}
	t.init(t, m, executor, parent)
	return t
}

// NewRandomSelector constructs a selector model task whose child visit order is a uniform random permutation chosen
// at spawn time, using the owning executor's random source. Note that a panic will occur unless there is at least
// one non-nil child.
func NewRandomSelector(guard ModelTask, children ...ModelTask) *ModelRandomSelector {
	return &ModelRandomSelector{model: newModel(`random-selector`, guard, 1, -1, children)}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelRandomSelector) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &randomCompositeTask{advanceOn: Failure}
	t.init(t, m, executor, parent)
	return t
}

func (t *randomCompositeTask) spawn() error {
	t.children = t.model.Children()
	t.order = t.executor.rand.Perm(len(t.children))
	return t.spawnChild(0)
}

func (t *randomCompositeTask) spawnChild(index int) error {
	t.index = index
	t.child = t.children[t.order[index]].CreateExecutor(t.executor, t.self)
	t.child.AddTaskListener(t)
	return t.child.Spawn(t.ctx)
}

func (t *randomCompositeTask) terminate() error {
	if t.child == nil {
		return nil
	}
	t.child.RemoveTaskListener(t)
	return t.child.Terminate()
}

// StatusChanged implements TaskListener
func (t *randomCompositeTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	status := child.Status()
	if !status.Terminal() {
		return
	}
	if status == t.advanceOn {
		child.RemoveTaskListener(t)
		if t.index+1 < len(t.children) {
			if err := t.spawnChild(t.index + 1); err != nil {
				t.executor.reportError(err)
			}
			return
		}
	}
	t.finish(status)
}
