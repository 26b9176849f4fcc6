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
	// ModelHierarchicalContextManager is the decorator that runs its child in a fresh hierarchical context
	ModelHierarchicalContextManager struct {
		model
	}

	// ModelSafeContextManager is the decorator that runs its child in a copy-on-write overlay context
	ModelSafeContextManager struct {
		model
	}

	// ModelSafeOutputContextManager is the decorator that runs its child in a copy-on-write overlay context with a
	// set of output variables written through
	ModelSafeOutputContextManager struct {
		model
		outputs []string
	}

	contextManagerTask struct {
		decorator
		derive func(input Context) Context
	}
)

// NewHierarchicalContextManager constructs a model task that spawns its child within a fresh hierarchical context
// chained over the manager's own, variables set by the child live in the new context, lookups fall through. Note
// that a panic will occur unless there is exactly one non-nil child.
func NewHierarchicalContextManager(guard ModelTask, child ModelTask) *ModelHierarchicalContextManager {
	return &ModelHierarchicalContextManager{model: newModel(`hierarchical-context-manager`, guard, 1, 1, []ModelTask{child})}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelHierarchicalContextManager) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &contextManagerTask{derive: func(input Context) Context { return NewHierarchicalContext(input) }}
	t.init(t, m, executor, parent)
	return t
}

// NewSafeContextManager constructs a model task that spawns its child within a copy-on-write overlay of the
// manager's own context, reads fall through until modified, writes stay local. Note that a panic will occur unless
// there is exactly one non-nil child.
func NewSafeContextManager(guard ModelTask, child ModelTask) *ModelSafeContextManager {
	return &ModelSafeContextManager{model: newModel(`safe-context-manager`, guard, 1, 1, []ModelTask{child})}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelSafeContextManager) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &contextManagerTask{derive: func(input Context) Context { return NewSafeContext(input) }}
	t.init(t, m, executor, parent)
	return t
}

// NewSafeOutputContextManager is NewSafeContextManager with the named output variables passing through to the
// manager's own context, in both directions. Note that a panic will occur unless there is exactly one non-nil child.
func NewSafeOutputContextManager(guard ModelTask, outputVariables []string, child ModelTask) *ModelSafeOutputContextManager {
	m := &ModelSafeOutputContextManager{model: newModel(`safe-output-context-manager`, guard, 1, 1, []ModelTask{child})}
	m.outputs = append(m.outputs, outputVariables...)
	return m
}

// OutputVariables returns a copy of the write-through variable names
func (m *ModelSafeOutputContextManager) OutputVariables() []string {
	return append([]string(nil), m.outputs...)
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelSafeOutputContextManager) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	outputs := m.OutputVariables()
	t := &contextManagerTask{derive: func(input Context) Context { return NewSafeOutputContext(input, outputs) }}
	t.init(t, m, executor, parent)
	return t
}

func (t *contextManagerTask) spawn() error { return t.spawnChild(t.derive(t.ctx)) }

// StatusChanged implements TaskListener, the child's terminal status passes through
func (t *contextManagerTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() {
		return
	}
	if status := child.Status(); status.Terminal() {
		t.finish(status)
	}
}
