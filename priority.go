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
	// ModelStaticPriorityList is the priority list composite with guards evaluated once, at spawn
	ModelStaticPriorityList struct {
		model
	}

	// ModelDynamicPriorityList is the priority list composite that re-evaluates higher priority guards every tick,
	// switching the active child when one becomes true
	ModelDynamicPriorityList struct {
		model
	}

	staticPriorityTask struct {
		task
		child     ExecutionTask
		exhausted bool
	}

	dynamicPriorityTask struct {
		task
		children  []ModelTask
		index     int
		child     ExecutionTask
		exhausted bool
	}
)

// NewStaticPriorityList constructs a priority list model task, on spawn the guards of the children are evaluated
// left to right and the first child whose guard succeeds becomes the active child, with its status reported as the
// list's own, if no guard succeeds the list fails. Note that a panic will occur unless there is at least one non-nil
// child.
func NewStaticPriorityList(guard ModelTask, children ...ModelTask) *ModelStaticPriorityList {
	return &ModelStaticPriorityList{model: newModel(`static-priority-list`, guard, 1, -1, children)}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelStaticPriorityList) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &staticPriorityTask{}
	t.init(t, m, executor, parent)
	return t
}

func (t *staticPriorityTask) spawn() error {
	for _, child := range t.model.Children() {
		ok, err := t.executor.evaluateGuard(child.Guard(), t.ctx)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		t.child = child.CreateExecutor(t.executor, t.self)
		t.child.AddTaskListener(t)
		return t.child.Spawn(t.ctx)
	}
	t.exhausted = true
	t.executor.RequestInsertion(Tickable, t.self)
	return nil
}

func (t *staticPriorityTask) tick() (Status, error) {
	if t.exhausted {
		return Failure, nil
	}
	return t.status, nil
}

func (t *staticPriorityTask) terminate() error {
	if t.child == nil {
		return nil
	}
	t.child.RemoveTaskListener(t)
	return t.child.Terminate()
}

// StatusChanged implements TaskListener, the active child's terminal status becomes the list's own
func (t *staticPriorityTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	if status := child.Status(); status.Terminal() {
		t.finish(status)
	}
}

// NewDynamicPriorityList constructs a priority list model task with the same initial selection rule as
// NewStaticPriorityList, but which re-evaluates the guards of children to the left of the active child on every
// tick, terminating the active child and switching to the leftmost newly-true child. Note that a panic will occur
// unless there is at least one non-nil child.
func NewDynamicPriorityList(guard ModelTask, children ...ModelTask) *ModelDynamicPriorityList {
	return &ModelDynamicPriorityList{model: newModel(`dynamic-priority-list`, guard, 1, -1, children)}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelDynamicPriorityList) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &dynamicPriorityTask{}
	t.init(t, m, executor, parent)
	return t
}

func (t *dynamicPriorityTask) spawn() error {
	t.children = t.model.Children()
	for i, child := range t.children {
		ok, err := t.executor.evaluateGuard(child.Guard(), t.ctx)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		t.executor.RequestInsertion(GuardEvaluation, t.self)
		return t.spawnChild(i)
	}
	t.exhausted = true
	t.executor.RequestInsertion(Tickable, t.self)
	return nil
}

func (t *dynamicPriorityTask) spawnChild(index int) error {
	t.index = index
	t.child = t.children[index].CreateExecutor(t.executor, t.self)
	t.child.AddTaskListener(t)
	return t.child.Spawn(t.ctx)
}

func (t *dynamicPriorityTask) tick() (Status, error) {
	if t.exhausted {
		return Failure, nil
	}
	return t.status, nil
}

func (t *dynamicPriorityTask) terminate() error {
	t.executor.CancelInsertionRequest(GuardEvaluation, t.self)
	if t.child == nil {
		return nil
	}
	t.child.RemoveTaskListener(t)
	return t.child.Terminate()
}

// evaluateGuards implements the per-tick re-evaluation of the guards of higher priority siblings, switching the
// active child to the leftmost whose guard succeeds
func (t *dynamicPriorityTask) evaluateGuards() error {
	if t.terminated || t.status.Terminal() || t.child == nil {
		return nil
	}
	for i := 0; i < t.index; i++ {
		ok, err := t.executor.evaluateGuard(t.children[i].Guard(), t.ctx)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		t.child.RemoveTaskListener(t)
		if err := t.child.Terminate(); err != nil {
			return err
		}
		return t.spawnChild(i)
	}
	return nil
}

// StatusChanged implements TaskListener, the active child's terminal status becomes the list's own
func (t *dynamicPriorityTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	if status := child.Status(); status.Terminal() {
		t.finish(status)
	}
}
