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
	// ModelInterrupter is the passthrough decorator that can be commanded, by any peer leaf, to terminate its child
	// subtree and substitute a status of the commander's choosing
	ModelInterrupter struct {
		model
	}

	// InterrupterTask is the live execution side of a ModelInterrupter, registered with the owning BTExecutor for the
	// duration of its run so that PerformInterruption leaves can locate and fire it, see Interrupt
	InterrupterTask struct {
		decorator
		pending Status
	}

	// ModelPerformInterruption is the leaf that fires a named interrupter
	ModelPerformInterruption struct {
		model
		target  *ModelInterrupter
		desired Status
	}

	performInterruptionTask struct {
		task
		target  *ModelInterrupter
		desired Status
	}
)

// NewInterrupter constructs an interrupter model task, a passthrough decorator whose execution side registers in the
// owning executor's interrupter registry, keyed by this model task, for the duration of its run. Note that a panic
// will occur unless there is exactly one non-nil child.
func NewInterrupter(guard ModelTask, child ModelTask) *ModelInterrupter {
	return &ModelInterrupter{model: newModel(`interrupter`, guard, 1, 1, []ModelTask{child})}
}

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelInterrupter) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &InterrupterTask{}
	t.init(t, m, executor, parent)
	return t
}

func (t *InterrupterTask) spawn() error {
	t.executor.RegisterInterrupter(t)
	return t.spawnChild(t.ctx)
}

func (t *InterrupterTask) tick() (Status, error) {
	if t.pending != 0 {
		t.executor.UnregisterInterrupter(t)
		return t.pending, nil
	}
	return t.status, nil
}

func (t *InterrupterTask) terminate() error {
	t.executor.UnregisterInterrupter(t)
	return t.decorator.terminate()
}

// Interrupt terminates the interrupter's child subtree and arranges for status to be reported as the interrupter's
// own on the next tick, status must be Success or Failure. A no-op once the interrupter has finished or been
// terminated, note that a panic will occur if it was never spawned, or on any other status.
func (t *InterrupterTask) Interrupt(status Status) error {
	if status != Success && status != Failure {
		panic(fmt.Errorf(`btengine.InterrupterTask.Interrupt invalid status %s`, status))
	}
	if !t.spawned {
		panic(errors.New(`btengine.InterrupterTask.Interrupt task not spawned`))
	}
	if t.terminated || t.status.Terminal() || t.pending != 0 {
		return nil
	}
	t.pending = status
	t.child.RemoveTaskListener(t)
	err := t.child.Terminate()
	// the terminated child will no longer emit the status change that would have driven the parent
	t.executor.RequestInsertion(Tickable, t.self)
	return err
}

// StatusChanged implements TaskListener, the child's terminal status passes through when not interrupted
func (t *InterrupterTask) StatusChanged(child ExecutionTask, previous Status) {
	if child != t.child || t.terminated || t.status.Terminal() || t.pending != 0 {
		return
	}
	if status := child.Status(); status.Terminal() {
		t.executor.UnregisterInterrupter(t)
		t.finish(status)
	}
}

// NewPerformInterruption constructs a leaf model task that, on spawn, locates the live interrupter for target via
// the owning executor's registry and, if present, fires it with the desired status, always succeeding. Note that a
// panic will occur if target is nil, or desired is not Success or Failure.
func NewPerformInterruption(guard ModelTask, target *ModelInterrupter, desired Status) *ModelPerformInterruption {
	if target == nil {
		panic(errors.New(`btengine.NewPerformInterruption nil target`))
	}
	if desired != Success && desired != Failure {
		panic(fmt.Errorf(`btengine.NewPerformInterruption invalid status %s`, desired))
	}
	return &ModelPerformInterruption{
		model:   newModel(`perform-interruption`, guard, 0, 0, nil),
		target:  target,
		desired: desired,
	}
}

// Target returns the interrupter model this leaf fires
func (m *ModelPerformInterruption) Target() *ModelInterrupter { return m.target }

// Desired returns the status substituted by the interruption
func (m *ModelPerformInterruption) Desired() Status { return m.desired }

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelPerformInterruption) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &performInterruptionTask{target: m.target, desired: m.desired}
	t.init(t, m, executor, parent)
	return t
}

func (t *performInterruptionTask) spawn() error {
	t.executor.RequestInsertion(Tickable, t.self)
	if interrupter := t.executor.ExecutionInterrupter(t.target); interrupter != nil {
		return interrupter.Interrupt(t.desired)
	}
	return nil
}

func (t *performInterruptionTask) tick() (Status, error) { return Success, nil }
