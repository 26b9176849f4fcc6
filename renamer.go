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

type (
	// ModelVariableRenamer is the leaf that moves a context variable to a new name
	ModelVariableRenamer struct {
		model
		from string
		to   string
	}

	variableRenamerTask struct {
		task
		from string
		to   string
	}
)

// NewVariableRenamer constructs a leaf model task that, on spawn, reads the variable named from, clears it, and
// writes its value under to, succeeding on the next tick, a no-op if from is undefined
func NewVariableRenamer(guard ModelTask, from, to string) *ModelVariableRenamer {
	return &ModelVariableRenamer{model: newModel(`variable-renamer`, guard, 0, 0, nil), from: from, to: to}
}

// From returns the source variable name
func (m *ModelVariableRenamer) From() string { return m.from }

// To returns the destination variable name
func (m *ModelVariableRenamer) To() string { return m.to }

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelVariableRenamer) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &variableRenamerTask{from: m.from, to: m.to}
	t.init(t, m, executor, parent)
	return t
}

func (t *variableRenamerTask) spawn() error {
	if value := t.ctx.Get(t.from); value != nil {
		t.ctx.Set(t.from, nil)
		t.ctx.Set(t.to, value)
	}
	t.executor.RequestInsertion(Tickable, t.self)
	return nil
}

func (t *variableRenamerTask) tick() (Status, error) { return Success, nil }
