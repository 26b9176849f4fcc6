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
	"log/slog"
	"math/rand"
)

const (
	_ = iota
	// Tickable identifies the worklist of tasks to be visited on the next tick
	Tickable WorklistKind = iota
	// GuardEvaluation identifies the worklist of tasks whose guards are re-evaluated each tick
	GuardEvaluation
)

// maxGuardTicks bounds the synchronous evaluation of a single guard sub-tree, guards are conditions and resolve
// within a handful of ticks
const maxGuardTicks = 128

type (
	// WorklistKind identifies one of the two per-executor worklists, Tickable or GuardEvaluation
	WorklistKind int

	// BTExecutor is the per-tree scheduler, it owns the context, the root executor, the tickable and guard
	// evaluation worklists, the open interrupter registry, and the per-tree persistent state maps. Drive it by
	// calling Tick repeatedly, concurrent ticks of the same executor are forbidden.
	BTExecutor struct {
		model             ModelTask
		ctx               Context
		rand              *rand.Rand
		logger            *slog.Logger
		root              ExecutionTask
		status            Status
		terminated        bool
		tickable          []ExecutionTask
		guardEvaluation   []ExecutionTask
		insertions        map[WorklistKind][]ExecutionTask
		interrupters      map[ModelTask]*InterrupterTask
		states            map[Position]TaskState
		terminationStates map[Position]TaskState
		walkErr           error
	}

	// guardEvaluator is implemented by tasks registered on the GuardEvaluation worklist
	guardEvaluator interface {
		evaluateGuards() error
	}
)

// String returns a string representation of the worklist kind
func (k WorklistKind) String() string {
	switch k {
	case Tickable:
		return `tickable`
	case GuardEvaluation:
		return `guard-evaluation`
	default:
		return fmt.Sprintf("unknown worklist (%d)", int(k))
	}
}

// NewBTExecutor constructs an uninitialized executor for the model tree rooted at model, computing positions, no
// execution tasks are built until the first Tick. Note that a panic will occur if model or ctx are nil.
func NewBTExecutor(model ModelTask, ctx Context) *BTExecutor {
	return NewBTExecutorWithSource(model, ctx, nil)
}

// NewBTExecutorWithSource is NewBTExecutor with an explicit random source, used by the random composites, so tests
// can seed it, a nil source will use global math/rand
func NewBTExecutorWithSource(model ModelTask, ctx Context, source rand.Source) *BTExecutor {
	if model == nil {
		panic(errors.New(`btengine.NewBTExecutor nil model`))
	}
	if ctx == nil {
		panic(errors.New(`btengine.NewBTExecutor nil context`))
	}
	if source == nil {
		source = defaultSource{}
	}
	ComputePositions(model)
	return &BTExecutor{
		model:      model,
		ctx:        ctx,
		rand:       rand.New(source),
		status:     Ready,
		insertions: make(map[WorklistKind][]ExecutionTask),
	}
}

// WithLogger configures the logger used for diagnostics (e.g. subtree lookup misses), returning the receiver, the
// default is slog.Default
func (e *BTExecutor) WithLogger(logger *slog.Logger) *BTExecutor {
	e.logger = logger
	return e
}

// Context returns the context the executor was constructed with
func (e *BTExecutor) Context() Context { return e.ctx }

// Model returns the model tree root
func (e *BTExecutor) Model() ModelTask { return e.model }

// Root returns the root execution task, nil before the first Tick
func (e *BTExecutor) Root() ExecutionTask { return e.root }

// Status returns the last reported root status, Ready before the first tick
func (e *BTExecutor) Status() Status {
	if e.root == nil {
		return Ready
	}
	return e.status
}

// Tick performs one evaluation cycle and returns the resulting root status. On the first call the root executor is
// built from the model and spawned with the executor's context. Errors returned are fatal, the executor must not be
// ticked further after one.
func (e *BTExecutor) Tick() (Status, error) {
	if e.terminated {
		return e.status, nil
	}
	if e.root == nil {
		e.root = e.model.CreateExecutor(e, nil)
		e.root.AddTaskListener(e)
		e.RequestInsertion(Tickable, e.root)
		if err := e.root.Spawn(e.ctx); err != nil {
			return Failure, fmt.Errorf(`btengine.BTExecutor.Tick spawn: %w`, err)
		}
	}
	e.guardEvaluation = e.applyInsertions(GuardEvaluation, e.guardEvaluation)
	for _, t := range snapshotTasks(e.guardEvaluation) {
		if t.Terminated() || t.Status().Terminal() {
			continue
		}
		if ge, ok := t.(guardEvaluator); ok {
			if err := ge.evaluateGuards(); err != nil {
				return Failure, fmt.Errorf(`btengine.BTExecutor.Tick guard evaluation: %w`, err)
			}
		}
	}
	e.tickable = e.applyInsertions(Tickable, e.tickable)
	for _, t := range snapshotTasks(e.tickable) {
		if t.Terminated() || t.Status().Terminal() {
			continue
		}
		if _, err := t.Tick(); err != nil {
			return Failure, fmt.Errorf(`btengine.BTExecutor.Tick: %w`, err)
		}
	}
	if err := e.walkErr; err != nil {
		e.walkErr = nil
		return Failure, fmt.Errorf(`btengine.BTExecutor.Tick: %w`, err)
	}
	e.tickable = compactTasks(e.tickable)
	e.guardEvaluation = compactTasks(e.guardEvaluation)
	e.status = e.root.Status()
	return e.status, nil
}

// Terminate terminates the root executor and all descendants, and releases the worklists and the interrupter
// registry, persisted task states remain queryable. Idempotent.
func (e *BTExecutor) Terminate() error {
	if e.terminated {
		return nil
	}
	e.terminated = true
	var err error
	if e.root != nil {
		err = e.root.Terminate()
		e.status = e.root.Status()
	}
	e.tickable = nil
	e.guardEvaluation = nil
	e.insertions = make(map[WorklistKind][]ExecutionTask)
	e.interrupters = nil
	return err
}

// RequestInsertion queues task for insertion into the given worklist, applied at the next tick boundary, never mid
// walk, duplicate requests are a no-op
func (e *BTExecutor) RequestInsertion(kind WorklistKind, task ExecutionTask) {
	if task == nil {
		panic(errors.New(`btengine.BTExecutor.RequestInsertion nil task`))
	}
	if containsTask(e.insertions[kind], task) {
		return
	}
	e.insertions[kind] = append(e.insertions[kind], task)
}

// CancelInsertionRequest drops a pending insertion request for task from the given worklist, a no-op if there is
// none, tasks already on a worklist leave it when they reach a terminal status
func (e *BTExecutor) CancelInsertionRequest(kind WorklistKind, task ExecutionTask) {
	pending := e.insertions[kind]
	for i, v := range pending {
		if v == task {
			e.insertions[kind] = append(pending[:i], pending[i+1:]...)
			return
		}
	}
}

// RegisterInterrupter records a live execution interrupter, keyed by its model task, see also
// ExecutionInterrupter
func (e *BTExecutor) RegisterInterrupter(task *InterrupterTask) {
	if task == nil {
		panic(errors.New(`btengine.BTExecutor.RegisterInterrupter nil task`))
	}
	if e.interrupters == nil {
		e.interrupters = make(map[ModelTask]*InterrupterTask)
	}
	e.interrupters[task.Model()] = task
}

// UnregisterInterrupter removes a previously registered interrupter, a no-op if it is not the registered one
func (e *BTExecutor) UnregisterInterrupter(task *InterrupterTask) {
	if task == nil {
		return
	}
	if e.interrupters[task.Model()] == task {
		delete(e.interrupters, task.Model())
	}
}

// ExecutionInterrupter returns the live execution interrupter for the given model task, or nil
func (e *BTExecutor) ExecutionInterrupter(model ModelTask) *InterrupterTask {
	if e.interrupters == nil {
		return nil
	}
	return e.interrupters[model]
}

// TaskState returns the persisted state for the task at position, or nil, see also TaskTerminationState
func (e *BTExecutor) TaskState(position Position) TaskState {
	return e.states[position]
}

// TaskTerminationState returns the state captured when the task at position last reached a terminal outcome, or nil
func (e *BTExecutor) TaskTerminationState(position Position) TaskState {
	return e.terminationStates[position]
}

// StatusChanged implements TaskListener, the executor listens on the root so the tree's top level status is
// observable
func (e *BTExecutor) StatusChanged(task ExecutionTask, previous Status) {
	if task == e.root {
		e.status = task.Status()
	}
}

// evaluateGuard evaluates a guard sub-tree to completion against a read only overlay of ctx, a nil guard evaluates
// to success
func (e *BTExecutor) evaluateGuard(guard ModelTask, ctx Context) (bool, error) {
	if guard == nil {
		return true, nil
	}
	nested := NewBTExecutorWithSource(guard, NewSafeContext(ctx), e.rand)
	nested.logger = e.logger
	for i := 0; i < maxGuardTicks; i++ {
		status, err := nested.Tick()
		if err != nil {
			return false, err
		}
		switch status {
		case Success:
			return true, nil
		case Failure, Terminated:
			return false, nil
		}
	}
	return false, fmt.Errorf(`btengine.BTExecutor guard %s did not finish within %d ticks`, guard.Kind(), maxGuardTicks)
}

// reportError records an error raised in listener context (e.g. a child spawn failing while handling a status
// change), surfaced by the current or next Tick, only the first error is kept
func (e *BTExecutor) reportError(err error) {
	if err != nil && e.walkErr == nil {
		e.walkErr = err
	}
}

func (e *BTExecutor) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return slog.Default()
}

func (e *BTExecutor) storeTaskState(position Position, state TaskState) {
	if e.states == nil {
		e.states = make(map[Position]TaskState)
	}
	e.states[position] = state
}

func (e *BTExecutor) storeTaskTerminationState(position Position, state TaskState) {
	if e.terminationStates == nil {
		e.terminationStates = make(map[Position]TaskState)
	}
	e.terminationStates[position] = state
}

func (e *BTExecutor) taskStateFor(position Position) TaskState {
	return e.states[position]
}

// applyInsertions merges the pending insertions for kind into list, preserving request order and skipping tasks
// already present
func (e *BTExecutor) applyInsertions(kind WorklistKind, list []ExecutionTask) []ExecutionTask {
	pending := e.insertions[kind]
	if len(pending) == 0 {
		return list
	}
	e.insertions[kind] = nil
	for _, t := range pending {
		if !containsTask(list, t) {
			list = append(list, t)
		}
	}
	return list
}

func containsTask(tasks []ExecutionTask, task ExecutionTask) bool {
	for _, t := range tasks {
		if t == task {
			return true
		}
	}
	return false
}

func snapshotTasks(tasks []ExecutionTask) []ExecutionTask {
	result := make([]ExecutionTask, len(tasks))
	copy(result, tasks)
	return result
}

// compactTasks drops terminated and terminal tasks, retaining order
func compactTasks(tasks []ExecutionTask) []ExecutionTask {
	result := tasks[:0]
	for _, t := range tasks {
		if !t.Terminated() && !t.Status().Terminal() {
			result = append(result, t)
		}
	}
	for i := len(result); i < len(tasks); i++ {
		tasks[i] = nil
	}
	return result
}

type defaultSource struct{ rand.Source }

func (d defaultSource) Int63() int64 { return rand.Int63() }
