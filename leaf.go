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

import (
	"errors"
	"fmt"
)

type (
	// ModelSuccess is the leaf that succeeds on its first tick
	ModelSuccess struct {
		model
	}

	// ModelFailure is the leaf that fails on its first tick
	ModelFailure struct {
		model
	}

	// ModelCondition is the leaf wrapping a synchronous predicate over the context
	ModelCondition struct {
		model
		fn func(ctx Context) bool
	}

	// ModelAction is the leaf extension point wrapping an arbitrary step function, re-ticked while it returns
	// Running
	ModelAction struct {
		model
		fn func(ctx Context) (Status, error)
	}

	statusLeafTask struct {
		task
		result Status
	}

	conditionTask struct {
		task
		fn func(ctx Context) bool
	}

	actionTask struct {
		task
		fn func(ctx Context) (Status, error)
	}
)

// NewSuccess constructs a leaf model task that reports success on the tick after it spawns
func NewSuccess(guard ModelTask) *ModelSuccess {
	return &ModelSuccess{model: newModel(`success`, guard, 0, 0, nil)}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelSuccess) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &statusLeafTask{result: Success}
	t.init(t, m, executor, parent)
	return t
}

// NewFailure constructs a leaf model task that reports failure on the tick after it spawns
func NewFailure(guard ModelTask) *ModelFailure {
	return &ModelFailure{model: newModel(`failure`, guard, 0, 0, nil)}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelFailure) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &statusLeafTask{result: Failure}
	t.init(t, m, executor, parent)
	return t
}

func (t *statusLeafTask) spawn() error {
	t.executor.RequestInsertion(Tickable, t.self)
	return nil
}

func (t *statusLeafTask) tick() (Status, error) { return t.result, nil }

// NewCondition constructs a leaf model task wrapping fn, resolved synchronously on the tick after it spawns,
// success iff fn returns true, note that a panic will occur if fn is nil
func NewCondition(guard ModelTask, fn func(ctx Context) bool) *ModelCondition {
	if fn == nil {
		panic(errors.New(`btengine.NewCondition nil function`))
	}
	return &ModelCondition{model: newModel(`condition`, guard, 0, 0, nil), fn: fn}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelCondition) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &conditionTask{fn: m.fn}
	t.init(t, m, executor, parent)
	return t
}

func (t *conditionTask) spawn() error {
	t.executor.RequestInsertion(Tickable, t.self)
	return nil
}

func (t *conditionTask) tick() (Status, error) {
	if t.fn(t.ctx) {
		return Success, nil
	}
	return Failure, nil
}

// NewAction constructs a leaf model task wrapping fn, which is invoked on every tick until it returns a status other
// than Running, domain failures are reported via Failure, errors are fatal to the tree. Note that a panic will occur
// if fn is nil.
func NewAction(guard ModelTask, fn func(ctx Context) (Status, error)) *ModelAction {
	if fn == nil {
		panic(errors.New(`btengine.NewAction nil function`))
	}
	return &ModelAction{model: newModel(`action`, guard, 0, 0, nil), fn: fn}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelAction) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &actionTask{fn: m.fn}
	t.init(t, m, executor, parent)
	return t
}

func (t *actionTask) spawn() error {
	t.executor.RequestInsertion(Tickable, t.self)
	return nil
}

func (t *actionTask) tick() (Status, error) {
	status, err := t.fn(t.ctx)
	if err != nil {
		return Failure, err
	}
	switch status {
	case Running, Success, Failure:
		return status, nil
	default:
		return Failure, fmt.Errorf(`btengine.ModelAction invalid status %s`, status)
	}
}
