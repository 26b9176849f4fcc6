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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimit_passesThroughWhileBudgetRemains(t *testing.T) {
	tree := NewLimit(nil, 2, NewSuccess(nil))
	e := NewBTExecutor(tree, NewBasicContext())
	require.Equal(t, Success, tickUntilTerminal(t, e, 10))
}

func TestLimit_countsRunsAcrossRespawns(t *testing.T) {
	// the second limit exhausts its budget one iteration before the first, after which the sequence fails without
	// invoking the inner action
	var inner int
	tree := NewRepeat(nil, NewSequence(nil,
		NewLimit(nil, 3, NewSuccess(nil)),
		NewLimit(nil, 2, NewAction(nil, func(Context) (Status, error) {
			inner++
			return Failure, nil
		})),
	))
	e := NewBTExecutor(tree, NewBasicContext())

	for i := 0; i < 40; i++ {
		status, err := e.Tick()
		require.NoError(t, err)
		require.Equal(t, Running, status)
	}

	assert.Equal(t, 2, inner, "expected the inner action to run only while budget remained")

	position := RootPosition().Child(0).Child(1)
	state := e.TaskState(position)
	require.NotNil(t, state)
	assert.Equal(t, 3, state[LimitRunsSoFar])

	termination := e.TaskTerminationState(position)
	require.NotNil(t, termination)
}

func TestLimit_restoresCounterOnRespawn(t *testing.T) {
	var runs int
	tree := NewRepeat(nil, NewLimit(nil, 2, NewAction(nil, func(Context) (Status, error) {
		runs++
		return Success, nil
	})))
	e := NewBTExecutor(tree, NewBasicContext())

	for i := 0; i < 30; i++ {
		_, err := e.Tick()
		require.NoError(t, err)
	}

	assert.Equal(t, 2, runs, "expected the child to spawn at most twice across respawns")

	state := e.TaskState(RootPosition().Child(0))
	require.NotNil(t, state)
	counter, ok := state[LimitRunsSoFar].(int)
	require.True(t, ok)
	assert.GreaterOrEqual(t, counter, 3)
}

func TestNewLimit_invalidMaxRuns(t *testing.T) {
	require.Panics(t, func() { NewLimit(nil, 0, NewSuccess(nil)) })
}
