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
	// ModelSucceeder is the decorator that reports success whenever its child terminates
	ModelSucceeder struct {
		model
	}

	succeederTask struct {
		decorator
	}
)

// NewSucceeder constructs a succeeder model task, which reports success whenever the child reaches any terminal
// status, and running otherwise. Note that a panic will occur unless there is exactly one non-nil child.
func NewSucceeder(guard ModelTask, child ModelTask) *ModelSucceeder {
	return &ModelSucceeder{model: newModel(`succeeder`, guard, 1, 1, []ModelTask{child})}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelSucceeder) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &succeederTask{}
	t.init(t, m, executor, parent)
	return t
}

func (t *succeederTask) spawn() error { return t.spawnChild(t.ctx) }

// StatusChanged implements TaskListener
func (t *succeederTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	if child.Status().Terminal() {
		t.finish(Success)
	}
}
