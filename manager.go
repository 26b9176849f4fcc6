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
	"fmt"
	"sync"
	"time"

	"github.com/joeycumines/go-bigbuff"
)

type (
	// Manager models an aggregate Ticker, driving a set of behavior trees as a group, which should stop gracefully
	// on the first ticker error (a tree whose root status is Failure does not stop the group)
	Manager interface {
		Ticker

		// Run will construct a ticker for executor (per NewTickerStopOnTerminal) and register it under this manager
		Run(ctx context.Context, duration time.Duration, executor *BTExecutor) error

		// Statuses returns the last reported root status of each executor registered with Run, in registration order
		Statuses() []Status
	}

	// manager is this package's implementation of the Manager interface
	manager struct {
		mu        sync.RWMutex
		once      sync.Once
		worker    bigbuff.Worker
		done      chan struct{}
		stop      chan struct{}
		executors []*BTExecutor
		errs      []error
	}

	managerErrors []error

	errManagerStopped struct{ error }
)

var (
	// ErrManagerStopped is returned by the manager implementation in this package (see also NewManager) in the case
	// that Manager.Run is attempted after the manager has already started to stop. Use errors.Is to check this case.
	ErrManagerStopped error = errManagerStopped{error: errors.New(`btengine.Manager.Run already stopped`)}
)

// NewManager will construct an implementation of the Manager interface, which drives a stateful set of behavior
// trees, each registered with Manager.Run, and each ticked by its own ticker until its root status is terminal. The
// Done channel will close when ALL registered trees are done AND Stop has been triggered, Err will return a combined
// error if there are any, and Stop will stop all registered tickers.
//
// Any ticker error will also trigger stopping, tagged with the tree that raised it, and stopping will prevent
// further Run calls from succeeding. The combined error supports chaining via errors.Is, see also Manager.Err.
func NewManager() Manager {
	return &manager{
		done: make(chan struct{}),
		stop: make(chan struct{}),
	}
}

func (m *manager) Done() <-chan struct{} {
	return m.done
}

func (m *manager) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.errs) != 0 {
		return managerErrors(m.errs)
	}
	return nil
}

// Statuses implements Manager.Statuses, note that statuses of still-running trees may keep changing
func (m *manager) Statuses() []Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	statuses := make([]Status, len(m.executors))
	for i, executor := range m.executors {
		statuses[i] = executor.Status()
	}
	return statuses
}

func (m *manager) Stop() {
	m.once.Do(func() {
		close(m.stop)
		m.release()()
	})
}

// Run implements Manager.Run
func (m *manager) Run(ctx context.Context, duration time.Duration, executor *BTExecutor) error {
	if executor == nil {
		return errors.New(`btengine.Manager.Run nil executor`)
	}
	select {
	case <-m.stop:
		if err := m.Err(); err != nil {
			return errManagerStopped{error: err}
		}
		return ErrManagerStopped
	default:
	}
	release := m.release()
	m.mu.Lock()
	m.executors = append(m.executors, executor)
	m.mu.Unlock()
	go m.watch(NewTickerStopOnTerminal(ctx, duration, executor), executor, release)
	return nil
}

// release registers work with the manager's worker, which owns closure of the done channel, the returned function
// must be called exactly once
func (m *manager) release() (done func()) { return m.worker.Do(m.run) }

func (m *manager) run(stop <-chan struct{}) {
	<-stop
	select {
	case <-m.stop:
		select {
		case <-m.done:
		default:
			close(m.done)
		}
	default:
	}
}

// watch drives one registered tree to completion, stopping the whole group on a ticker error, tagged with the tree
// that raised it
func (m *manager) watch(ticker Ticker, executor *BTExecutor, release func()) {
	select {
	case <-ticker.Done():
	case <-m.stop:
		ticker.Stop()
		<-ticker.Done()
	}
	if err := ticker.Err(); err != nil {
		m.mu.Lock()
		m.errs = append(m.errs, fmt.Errorf(`btengine.Manager %s tree (%s): %w`, executor.Model().Kind(), executor.Status(), err))
		m.mu.Unlock()
		m.Stop()
	}
	release()
}

func (e managerErrors) Error() string {
	var b []byte
	for i, err := range e {
		if i != 0 {
			b = append(b, ' ', '|', ' ')
		}
		b = append(b, err.Error()...)
	}
	return string(b)
}

func (e managerErrors) Is(target error) bool {
	for _, err := range e {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (e errManagerStopped) Unwrap() error { return e.error }

func (e errManagerStopped) Is(target error) bool {
	switch target.(type) {
	case errManagerStopped:
		return true
	default:
		return false
	}
}
