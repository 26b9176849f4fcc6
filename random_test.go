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
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func TestRandomSequence_visitsEveryChildOnce(t *testing.T) {
	var order []int
	children := make([]ModelTask, 0, 5)
	for i := 0; i < 5; i++ {
		i := i
		children = append(children, NewAction(nil, func(Context) (Status, error) {
			order = append(order, i)
			return Success, nil
		}))
	}
	e := NewBTExecutorWithSource(NewRandomSequence(nil, children...), NewBasicContext(), rand.NewSource(7))

	if status := tickUntilTerminal(t, e, 20); status != Success {
		t.Error("expected status to be success but it was", status)
	}

	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	if diff := deep.Equal([]int{0, 1, 2, 3, 4}, sorted); diff != nil {
		t.Errorf("expected each child to run exactly once: %s", strings.Join(diff, "\n  >"))
	}
}

func TestRandomSequence_failurePropagates(t *testing.T) {
	var calls int
	children := []ModelTask{
		NewFailure(nil),
		NewAction(nil, func(Context) (Status, error) {
			calls++
			return Success, nil
		}),
	}
	// seed chosen so the failing child is visited first
	for seed := int64(0); seed < 16; seed++ {
		if rand.New(rand.NewSource(seed)).Perm(2)[0] == 0 {
			calls = 0
			e := NewBTExecutorWithSource(NewRandomSequence(nil, children...), NewBasicContext(), rand.NewSource(seed))
			if status := tickUntilTerminal(t, e, 10); status != Failure {
				t.Error("expected status to be failure but it was", status)
			}
			if calls != 0 {
				t.Error("expected the second child to never run but it ran", calls, "times")
			}
			return
		}
	}
	t.Fatal("no suitable seed found")
}

func TestRandomSelector_successPropagates(t *testing.T) {
	children := []ModelTask{
		NewFailure(nil),
		NewSuccess(nil),
		NewFailure(nil),
	}
	e := NewBTExecutorWithSource(NewRandomSelector(nil, children...), NewBasicContext(), rand.NewSource(1))

	if status := tickUntilTerminal(t, e, 20); status != Success {
		t.Error("expected status to be success but it was", status)
	}
}

func TestRandomSelector_allChildrenFail(t *testing.T) {
	children := []ModelTask{
		NewFailure(nil),
		NewFailure(nil),
		NewFailure(nil),
	}
	e := NewBTExecutorWithSource(NewRandomSelector(nil, children...), NewBasicContext(), rand.NewSource(1))

	if status := tickUntilTerminal(t, e, 20); status != Failure {
		t.Error("expected status to be failure but it was", status)
	}
}
