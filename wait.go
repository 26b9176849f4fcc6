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
	"fmt"
	"time"
)

var timeNow = time.Now

type (
	// ModelWait is the leaf that runs until a duration has elapsed
	ModelWait struct {
		model
		duration time.Duration
	}

	waitTask struct {
		task
		duration time.Duration
		start    time.Time
	}
)

// NewWait constructs a leaf model task that reports running until duration has elapsed since its spawn, measured
// against the monotonic clock, then succeeds, note that a panic will occur if duration is negative
func NewWait(guard ModelTask, duration time.Duration) *ModelWait {
	if duration < 0 {
		panic(fmt.Errorf(`btengine.NewWait negative duration (%s)`, duration))
	}
	return &ModelWait{model: newModel(`wait`, guard, 0, 0, nil), duration: duration}
}

// Duration returns the configured wait duration
func (m *ModelWait) Duration() time.Duration { return m.duration }

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelWait) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &waitTask{duration: m.duration}
	t.init(t, m, executor, parent)
	return t
}

func (t *waitTask) spawn() error {
	t.start = timeNow()
	t.executor.RequestInsertion(Tickable, t.self)
	return nil
}

func (t *waitTask) tick() (Status, error) {
	if timeNow().Sub(t.start) >= t.duration {
		return Success, nil
	}
	return Running, nil
}
