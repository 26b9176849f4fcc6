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
	// decorator is the base for executors wrapping a single child
	decorator struct {
		task
		child ExecutionTask
	}
)

// spawnChild instantiates and spawns the decorated child with ctx, registering the concrete executor as listener
func (d *decorator) spawnChild(ctx Context) error {
	d.child = d.model.Children()[0].CreateExecutor(d.executor, d.self)
	d.child.AddTaskListener(d.self.(TaskListener))
	return d.child.Spawn(ctx)
}

// respawnChild discards the current child executor and spawns a fresh one from the same model, with the same context
func (d *decorator) respawnChild() {
	ctx := d.child.Context()
	d.child.RemoveTaskListener(d.self.(TaskListener))
	if err := d.spawnChild(ctx); err != nil {
		d.executor.reportError(err)
	}
}

func (d *decorator) terminate() error {
	if d.child == nil {
		return nil
	}
	d.child.RemoveTaskListener(d.self.(TaskListener))
	return d.child.Terminate()
}
