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
	"context"
	"testing"
	"time"
)

func TestNewTickerStopOnTerminal_runsToCompletion(t *testing.T) {
	e := NewBTExecutor(NewSequence(nil, NewSuccess(nil), NewSuccess(nil)), NewBasicContext())
	ticker := NewTickerStopOnTerminal(context.Background(), time.Millisecond, e)

	select {
	case <-ticker.Done():
	case <-time.After(time.Second * 5):
		t.Fatal("timed out waiting for the ticker")
	}

	if err := ticker.Err(); err != nil {
		t.Error("unexpected ticker error:", err)
	}
	if status := e.Status(); status != Success {
		t.Error("expected status to be success but it was", status)
	}
}

func TestNewTicker_stop(t *testing.T) {
	e := NewBTExecutor(NewRepeat(nil, NewSuccess(nil)), NewBasicContext())
	ticker := NewTicker(context.Background(), time.Millisecond, e)

	time.Sleep(time.Millisecond * 20)
	ticker.Stop()

	select {
	case <-ticker.Done():
	case <-time.After(time.Second * 5):
		t.Fatal("timed out waiting for the ticker")
	}

	if err := ticker.Err(); err != nil {
		t.Error("unexpected ticker error:", err)
	}
}

func TestNewTicker_contextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	e := NewBTExecutor(NewRepeat(nil, NewSuccess(nil)), NewBasicContext())
	ticker := NewTicker(ctx, time.Millisecond, e)

	cancel()

	select {
	case <-ticker.Done():
	case <-time.After(time.Second * 5):
		t.Fatal("timed out waiting for the ticker")
	}

	if err := ticker.Err(); err != context.Canceled {
		t.Error("expected context.Canceled but it was", err)
	}
}

func TestNewTicker_panicCases(t *testing.T) {
	e := NewBTExecutor(NewSuccess(nil), NewBasicContext())
	for _, fn := range []func(){
		func() { NewTicker(nil, time.Millisecond, e) },
		func() { NewTicker(context.Background(), 0, e) },
		func() { NewTicker(context.Background(), time.Millisecond, nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("expected a panic")
				}
			}()
			fn()
		}()
	}
}
