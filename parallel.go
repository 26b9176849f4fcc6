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

const (
	_ = iota
	// ParallelSequencePolicy succeeds iff all children succeed, and fails as soon as any child fails
	ParallelSequencePolicy ParallelPolicy = iota
	// ParallelSelectorPolicy succeeds as soon as any child succeeds, and fails iff all children fail
	ParallelSelectorPolicy
)

type (
	// ParallelPolicy selects how a parallel composite combines the statuses of its children
	ParallelPolicy int

	// ModelParallel is the parallel composite, all children are spawned at once and polled every tick
	ModelParallel struct {
		model
		policy ParallelPolicy
	}

	parallelTask struct {
		task
		policy   ParallelPolicy
		children []ExecutionTask
	}
)

// String returns a string representation of the policy
func (p ParallelPolicy) String() string {
	switch p {
	case ParallelSequencePolicy:
		return `sequence-policy`
	case ParallelSelectorPolicy:
		return `selector-policy`
	default:
		return fmt.Sprintf("unknown parallel policy (%d)", int(p))
	}
}

// NewParallel constructs a parallel model task, which spawns all children at once and polls their statuses each
// tick, combining them per policy, children are visited in model order within one tick, and any children still
// running when the outcome is reached are terminated. Note that a panic will occur on an invalid policy, or unless
// there is at least one non-nil child.
func NewParallel(guard ModelTask, policy ParallelPolicy, children ...ModelTask) *ModelParallel {
	if policy != ParallelSequencePolicy && policy != ParallelSelectorPolicy {
		panic(fmt.Errorf(`btengine.NewParallel invalid policy (%d)`, int(policy)))
	}
	return &ModelParallel{model: newModel(`parallel`, guard, 1, -1, children), policy: policy}
}

// Policy returns the policy the parallel combines child statuses with
func (m *ModelParallel) Policy() ParallelPolicy { return m.policy }

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelParallel) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &parallelTask{policy: m.policy}
	t.init(t, m, executor, parent)
	return t
}

func (t *parallelTask) spawn() error {
	t.executor.RequestInsertion(Tickable, t.self)
	for _, child := range t.model.Children() {
		c := child.CreateExecutor(t.executor, t.self)
		t.children = append(t.children, c)
		if err := c.Spawn(t.ctx); err != nil {
			return err
		}
	}
	return nil
}

func (t *parallelTask) tick() (Status, error) {
	var successes, failures int
	for _, child := range t.children {
		switch child.Status() {
		case Success:
			successes++
		case Failure, Terminated:
			failures++
		}
	}
	var status Status
	switch t.policy {
	case ParallelSequencePolicy:
		switch {
		case failures > 0:
			status = Failure
		case successes == len(t.children):
			status = Success
		default:
			return Running, nil
		}
	default:
		switch {
		case successes > 0:
			status = Success
		case failures == len(t.children):
			status = Failure
		default:
			return Running, nil
		}
	}
	if err := t.terminate(); err != nil {
		return Failure, err
	}
	return status, nil
}

func (t *parallelTask) terminate() error {
	for _, child := range t.children {
		if err := child.Terminate(); err != nil {
			return err
		}
	}
	return nil
}
