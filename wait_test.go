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
	"time"
)

func TestWait_runsUntilElapsed(t *testing.T) {
	now := time.Unix(0, 0)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	e := NewBTExecutor(NewWait(nil, 50*time.Millisecond), NewBasicContext())

	for i := 0; i < 3; i++ {
		status, err := e.Tick()
		if err != nil {
			t.Fatal("unexpected tick error:", err)
		}
		if status != Running {
			t.Fatal("expected status to be running but it was", status)
		}
	}

	now = now.Add(49 * time.Millisecond)
	if status, err := e.Tick(); err != nil || status != Running {
		t.Fatal("expected status to be running but got", status, err)
	}

	now = now.Add(time.Millisecond)
	if status, err := e.Tick(); err != nil || status != Success {
		t.Fatal("expected status to be success but got", status, err)
	}
}

func TestWait_zeroDurationSucceedsImmediately(t *testing.T) {
	e := NewBTExecutor(NewWait(nil, 0), NewBasicContext())
	if status := tickUntilTerminal(t, e, 5); status != Success {
		t.Error("expected status to be success but it was", status)
	}
}

func TestNewWait_negativeDuration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	NewWait(nil, -time.Second)
}
