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
	// ModelUntilFail is the decorator that re-spawns its child until it fails
	ModelUntilFail struct {
		model
	}

	untilFailTask struct {
		decorator
	}
)

// NewUntilFail constructs an until-fail model task, which re-spawns the child after each success, and succeeds once
// the child fails or is terminated. Note that a panic will occur unless there is exactly one non-nil child.
func NewUntilFail(guard ModelTask, child ModelTask) *ModelUntilFail {
	return &ModelUntilFail{model: newModel(`until-fail`, guard, 1, 1, []ModelTask{child})}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelUntilFail) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &untilFailTask{}
	t.init(t, m, executor, parent)
	return t
}

func (t *untilFailTask) spawn() error { return t.spawnChild(t.ctx) }

// StatusChanged implements TaskListener
func (t *untilFailTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	switch child.Status() {
	case Success:
		t.respawnChild()
	case Failure, Terminated:
		t.finish(Success)
	}
}
