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
	// ModelRepeat is the decorator that re-spawns its child forever
	ModelRepeat struct {
		model
	}

	repeatTask struct {
		decorator
	}
)

// NewRepeat constructs a repeat model task, which re-spawns the child after any terminal status and always reports
// running, the current child is terminated with the repeat itself. Note that a panic will occur unless there is
// exactly one non-nil child.
func NewRepeat(guard ModelTask, child ModelTask) *ModelRepeat {
	return &ModelRepeat{model: newModel(`repeat`, guard, 1, 1, []ModelTask{child})}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelRepeat) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &repeatTask{}
	t.init(t, m, executor, parent)
	return t
}

func (t *repeatTask) spawn() error { return t.spawnChild(t.ctx) }

// StatusChanged implements TaskListener
func (t *repeatTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	if child.Status().Terminal() {
		t.respawnChild()
	}
}
