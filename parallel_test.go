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

import "testing"

func TestParallel_sequencePolicySucceedsWhenAllSucceed(t *testing.T) {
	tree := NewParallel(nil, ParallelSequencePolicy, NewSuccess(nil), NewSuccess(nil), NewSuccess(nil))
	e := NewBTExecutor(tree, NewBasicContext())
	if status := tickUntilTerminal(t, e, 10); status != Success {
		t.Error("expected status to be success but it was", status)
	}
}

func TestParallel_sequencePolicyFailsOnAnyFailure(t *testing.T) {
	tree := NewParallel(nil, ParallelSequencePolicy,
		NewAction(nil, func(Context) (Status, error) { return Running, nil }),
		NewFailure(nil),
	)
	e := NewBTExecutor(tree, NewBasicContext())
	if status := tickUntilTerminal(t, e, 10); status != Failure {
		t.Error("expected status to be failure but it was", status)
	}
}

func TestParallel_selectorPolicySucceedsOnAnySuccess(t *testing.T) {
	tree := NewParallel(nil, ParallelSelectorPolicy,
		NewFailure(nil),
		NewSuccess(nil),
	)
	e := NewBTExecutor(tree, NewBasicContext())
	if status := tickUntilTerminal(t, e, 10); status != Success {
		t.Error("expected status to be success but it was", status)
	}
}

func TestParallel_selectorPolicyFailsWhenAllFail(t *testing.T) {
	tree := NewParallel(nil, ParallelSelectorPolicy, NewFailure(nil), NewFailure(nil))
	e := NewBTExecutor(tree, NewBasicContext())
	if status := tickUntilTerminal(t, e, 10); status != Failure {
		t.Error("expected status to be failure but it was", status)
	}
}

func TestParallel_terminatesRunningChildrenOnOutcome(t *testing.T) {
	var runs int
	tree := NewParallel(nil, ParallelSelectorPolicy,
		NewSuccess(nil),
		NewAction(nil, func(Context) (Status, error) {
			runs++
			return Running, nil
		}),
	)
	e := NewBTExecutor(tree, NewBasicContext())
	if status := tickUntilTerminal(t, e, 10); status != Success {
		t.Error("expected status to be success but it was", status)
	}
	before := runs
	for i := 0; i < 3; i++ {
		if _, err := e.Tick(); err != nil {
			t.Fatal("unexpected tick error:", err)
		}
	}
	if runs != before {
		t.Error("expected the running child to be terminated but it ran again")
	}
}

func TestNewParallel_invalidPolicy(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	NewParallel(nil, 0, NewSuccess(nil))
}
