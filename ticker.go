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
	"errors"
	"sync"
	"time"
)

type (
	// Ticker models an executor runner
	Ticker interface {
		// Done will close when the ticker is fully stopped.
		Done() <-chan struct{}

		// Err will return any error that occurs.
		Err() error

		// Stop shutdown the ticker asynchronously.
		Stop()
	}

	// tickerCore is the base ticker implementation
	tickerCore struct {
		ctx            context.Context
		cancel         context.CancelFunc
		executor       *BTExecutor
		ticker         *time.Ticker
		done           chan struct{}
		stop           chan struct{}
		once           sync.Once
		mutex          sync.Mutex
		err            error
		stopOnTerminal bool
	}
)

// NewTicker constructs a new Ticker, which simply uses time.Ticker to tick the provided executor periodically, note
// that a panic will occur if ctx is nil, duration is <= 0, or executor is nil.
//
// The executor will tick until the first error or Ticker.Stop is called, or context is canceled, after which any
// error will be made available via Ticker.Err, before closure of the done channel, indicating that all resources
// have been freed, and any error is available.
func NewTicker(ctx context.Context, duration time.Duration, executor *BTExecutor) Ticker {
	return newTicker(ctx, duration, executor, false)
}

// NewTickerStopOnTerminal returns a new Ticker that will also exit, without error, once the root status is terminal,
// it's built on the same core implementation as NewTicker, and the panic cases for NewTicker apply.
func NewTickerStopOnTerminal(ctx context.Context, duration time.Duration, executor *BTExecutor) Ticker {
	return newTicker(ctx, duration, executor, true)
}

func newTicker(ctx context.Context, duration time.Duration, executor *BTExecutor, stopOnTerminal bool) Ticker {
	if ctx == nil {
		panic(errors.New(`btengine.NewTicker nil context`))
	}

	if duration <= 0 {
		panic(errors.New(`btengine.NewTicker duration <= 0`))
	}

	if executor == nil {
		panic(errors.New(`btengine.NewTicker nil executor`))
	}

	result := &tickerCore{
		executor:       executor,
		ticker:         time.NewTicker(duration),
		done:           make(chan struct{}),
		stop:           make(chan struct{}),
		stopOnTerminal: stopOnTerminal,
	}

	result.ctx, result.cancel = context.WithCancel(ctx)

	go result.run()

	return result
}

func (t *tickerCore) run() {
	var err error
TickLoop:
	for err == nil {
		select {
		case <-t.ctx.Done():
			err = t.ctx.Err()
			break TickLoop
		case <-t.stop:
			break TickLoop
		case <-t.ticker.C:
			var status Status
			status, err = t.executor.Tick()
			if err == nil && t.stopOnTerminal && status.Terminal() {
				break TickLoop
			}
		}
	}
	t.mutex.Lock()
	t.err = err
	t.mutex.Unlock()
	t.cancel()
	t.ticker.Stop()
	close(t.done)
}

func (t *tickerCore) Done() <-chan struct{} {
	return t.done
}

func (t *tickerCore) Err() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.err
}

func (t *tickerCore) Stop() {
	t.once.Do(func() {
		close(t.stop)
	})
}
