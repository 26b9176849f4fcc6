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

import "fmt"

// LimitRunsSoFar is the TaskState variable the limit decorator persists its run counter under
const LimitRunsSoFar = `RunsSoFar`

type (
	// ModelLimit is the decorator that bounds how many times its child may run, across spawns
	ModelLimit struct {
		model
		maxRuns int
	}

	limitTask struct {
		decorator
		maxRuns   int
		runsSoFar int
		exhausted bool
	}
)

// NewLimit constructs a limit model task, which spawns the child at most maxRuns times across its entire lifetime
// within one tree, the run counter is persisted by position and survives re-spawns, once exhausted the limit fails
// without spawning the child. Note that a panic will occur if maxRuns < 1, or unless there is exactly one non-nil
// child.
func NewLimit(guard ModelTask, maxRuns int, child ModelTask) *ModelLimit {
	if maxRuns < 1 {
		panic(fmt.Errorf(`btengine.NewLimit invalid max runs (%d)`, maxRuns))
	}
	return &ModelLimit{model: newModel(`limit`, guard, 1, 1, []ModelTask{child}), maxRuns: maxRuns}
}

// MaxRuns returns the bound on child runs
func (m *ModelLimit) MaxRuns() int { return m.maxRuns }

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelLimit) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &limitTask{maxRuns: m.maxRuns}
	t.init(t, m, executor, parent)
	return t
}

func (t *limitTask) spawn() error {
	t.runsSoFar++
	t.executor.storeTaskState(t.model.Position(), t.storeState())
	if t.runsSoFar > t.maxRuns {
		t.exhausted = true
		t.executor.RequestInsertion(Tickable, t.self)
		return nil
	}
	return t.spawnChild(t.ctx)
}

func (t *limitTask) tick() (Status, error) {
	if t.exhausted {
		return Failure, nil
	}
	return t.status, nil
}

func (t *limitTask) storeState() TaskState {
	return TaskState{LimitRunsSoFar: t.runsSoFar}
}

func (t *limitTask) storeTerminationState() TaskState {
	return TaskState{LimitRunsSoFar: t.runsSoFar}
}

func (t *limitTask) restoreState(state TaskState) {
	if v, ok := state[LimitRunsSoFar].(int); ok {
		t.runsSoFar = v
	}
}

// StatusChanged implements TaskListener, the child's terminal status passes through
func (t *limitTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	if status := child.Status(); status.Terminal() {
		t.finish(status)
	}
}
