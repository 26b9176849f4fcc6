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
	// ModelInverter is the decorator that swaps its child's success and failure
	ModelInverter struct {
		model
	}

	inverterTask struct {
		decorator
	}
)

// NewInverter constructs an inverter model task, success becomes failure, failure and termination become success,
// running passes through unchanged. Note that a panic will occur unless there is exactly one non-nil child.
func NewInverter(guard ModelTask, child ModelTask) *ModelInverter {
	return &ModelInverter{model: newModel(`inverter`, guard, 1, 1, []ModelTask{child})}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelInverter) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &inverterTask{}
	t.init(t, m, executor, parent)
	return t
}

func (t *inverterTask) spawn() error { return t.spawnChild(t.ctx) }

// StatusChanged implements TaskListener
func (t *inverterTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	switch child.Status() {
	case Success:
		t.finish(Failure)
	case Failure, Terminated:
		t.finish(Success)
	}
}
