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

import "errors"

type (
	// SafeContext is a copy-on-write overlay over an input context, reads fall through to the input until the
	// variable has been modified through the overlay, writes (and clears) stay local, the input context is never
	// mutated.
	//
	// A variable counts as modified only once a write or clear has been recorded through the overlay, a value merely
	// present locally is not authoritative.
	SafeContext struct {
		input     Context
		variables map[string]interface{}
		modified  map[string]struct{}
	}

	// SafeOutputContext is a SafeContext variant initialised with a set of output variable names, reads and writes of
	// output variables pass through to the input context, everything else stays local.
	SafeOutputContext struct {
		input     Context
		outputs   map[string]struct{}
		variables map[string]interface{}
		modified  map[string]struct{}
	}
)

// NewSafeContext constructs a copy-on-write overlay over input, note that a panic will occur if input is nil
func NewSafeContext(input Context) *SafeContext {
	if input == nil {
		panic(errors.New(`btengine.NewSafeContext nil input`))
	}
	return &SafeContext{input: input}
}

// Input returns the context the receiver overlays
func (c *SafeContext) Input() Context { return c.input }

// Get implements Context.Get
func (c *SafeContext) Get(name string) interface{} {
	if _, ok := c.modified[name]; ok {
		return c.variables[name]
	}
	return c.input.Get(name)
}

// Set implements Context.Set, the write is recorded locally and the input context is unchanged
func (c *SafeContext) Set(name string, value interface{}) bool {
	if c.modified == nil {
		c.modified = make(map[string]struct{})
		c.variables = make(map[string]interface{})
	}
	c.modified[name] = struct{}{}
	if value == nil {
		delete(c.variables, name)
		return true
	}
	c.variables[name] = value
	return true
}

// Clear implements Context.Clear, every variable visible through the overlay reads as undefined afterwards, the
// input context is unchanged
func (c *SafeContext) Clear() bool {
	modified := false
	for name := range c.input.Variables() {
		if c.Get(name) != nil {
			modified = true
		}
		c.Set(name, nil)
	}
	for name := range c.variables {
		c.Set(name, nil)
		modified = true
	}
	return modified
}

// ClearVariable implements Context.ClearVariable
func (c *SafeContext) ClearVariable(name string) bool {
	defined := c.Get(name) != nil
	c.Set(name, nil)
	return defined
}

// Variables implements Context.Variables
func (c *SafeContext) Variables() map[string]interface{} {
	variables := c.input.Variables()
	for name := range c.modified {
		if value, ok := c.variables[name]; ok {
			variables[name] = value
		} else {
			delete(variables, name)
		}
	}
	return variables
}

// Tree implements Context.Tree via the input context
func (c *SafeContext) Tree(name string) ModelTask { return c.input.Tree(name) }

// NewSafeOutputContext constructs a copy-on-write overlay over input with the named output variables passed through,
// note that a panic will occur if input is nil
func NewSafeOutputContext(input Context, outputVariables []string) *SafeOutputContext {
	if input == nil {
		panic(errors.New(`btengine.NewSafeOutputContext nil input`))
	}
	outputs := make(map[string]struct{}, len(outputVariables))
	for _, name := range outputVariables {
		outputs[name] = struct{}{}
	}
	return &SafeOutputContext{input: input, outputs: outputs}
}

// Input returns the context the receiver overlays
func (c *SafeOutputContext) Input() Context { return c.input }

// IsOutput returns true if the named variable passes through to the input context
func (c *SafeOutputContext) IsOutput(name string) bool {
	_, ok := c.outputs[name]
	return ok
}

// Get implements Context.Get
func (c *SafeOutputContext) Get(name string) interface{} {
	if c.IsOutput(name) {
		return c.input.Get(name)
	}
	if _, ok := c.modified[name]; ok {
		return c.variables[name]
	}
	return c.input.Get(name)
}

// Set implements Context.Set, output variables write through to the input context, everything else stays local
func (c *SafeOutputContext) Set(name string, value interface{}) bool {
	if c.IsOutput(name) {
		return c.input.Set(name, value)
	}
	if c.modified == nil {
		c.modified = make(map[string]struct{})
		c.variables = make(map[string]interface{})
	}
	c.modified[name] = struct{}{}
	if value == nil {
		delete(c.variables, name)
		return true
	}
	c.variables[name] = value
	return true
}

// Clear implements Context.Clear, clearing both the local overlay and the output variables in the input context
func (c *SafeOutputContext) Clear() bool {
	modified := false
	for name := range c.input.Variables() {
		if c.Get(name) != nil {
			modified = true
		}
		c.Set(name, nil)
	}
	for name := range c.variables {
		c.Set(name, nil)
		modified = true
	}
	return modified
}

// ClearVariable implements Context.ClearVariable
func (c *SafeOutputContext) ClearVariable(name string) bool {
	defined := c.Get(name) != nil
	c.Set(name, nil)
	return defined
}

// Variables implements Context.Variables
func (c *SafeOutputContext) Variables() map[string]interface{} {
	variables := c.input.Variables()
	for name := range c.modified {
		if value, ok := c.variables[name]; ok {
			variables[name] = value
		} else {
			delete(variables, name)
		}
	}
	return variables
}

// Tree implements Context.Tree via the input context
func (c *SafeOutputContext) Tree(name string) ModelTask { return c.input.Tree(name) }
