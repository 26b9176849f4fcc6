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
	// Context is the blackboard for an execution tree, a keyed variable store plus a lookup table from tree names to
	// model trees. A nil value is indistinguishable from an undefined variable, Set with a nil value clears.
	//
	// Implementations in this package are not synchronised, a context is owned by exactly one BTExecutor, see also
	// NewHierarchicalContext, NewSafeContext, and NewSafeOutputContext for the layered variants.
	Context interface {
		// Get returns the value of the named variable, or nil if it is undefined at the scope visible through this
		// context
		Get(name string) interface{}

		// Set assigns value to the named variable, clearing it if value is nil, and returns true if the context was
		// modified
		Set(name string, value interface{}) bool

		// Clear removes all variables visible through this context, returning true if any were removed
		Clear() bool

		// ClearVariable removes the named variable, returning true if it was defined
		ClearVariable(name string) bool

		// Variables returns a snapshot of all variables visible through this context, flattened across any layering
		Variables() map[string]interface{}

		// Tree returns the named model tree, or nil if there is none
		Tree(name string) ModelTask
	}

	// BasicContext is the flat Context implementation, a lazily initialised variable map plus an optional TreeLibrary.
	BasicContext struct {
		variables map[string]interface{}
		library   *TreeLibrary
	}

	// HierarchicalContext chains a local variable scope over a parent context, lookups fall through to the parent,
	// writes stay local.
	HierarchicalContext struct {
		parent    Context
		variables map[string]interface{}
	}
)

// NewBasicContext constructs an empty BasicContext with no tree library
func NewBasicContext() *BasicContext { return &BasicContext{} }

// NewBasicContextWithLibrary constructs an empty BasicContext backed by the provided tree library, which may be nil
func NewBasicContextWithLibrary(library *TreeLibrary) *BasicContext {
	return &BasicContext{library: library}
}

// Library returns the tree library backing the receiver, or nil
func (c *BasicContext) Library() *TreeLibrary { return c.library }

// Get implements Context.Get
func (c *BasicContext) Get(name string) interface{} {
	if c.variables == nil {
		return nil
	}
	return c.variables[name]
}

// Set implements Context.Set
func (c *BasicContext) Set(name string, value interface{}) bool {
	if value == nil {
		return c.ClearVariable(name)
	}
	if c.variables == nil {
		c.variables = make(map[string]interface{})
	}
	c.variables[name] = value
	return true
}

// Clear implements Context.Clear
func (c *BasicContext) Clear() bool {
	modified := len(c.variables) != 0
	c.variables = nil
	return modified
}

// ClearVariable implements Context.ClearVariable
func (c *BasicContext) ClearVariable(name string) bool {
	if _, ok := c.variables[name]; !ok {
		return false
	}
	delete(c.variables, name)
	return true
}

// Variables implements Context.Variables
func (c *BasicContext) Variables() map[string]interface{} {
	variables := make(map[string]interface{}, len(c.variables))
	for name, value := range c.variables {
		variables[name] = value
	}
	return variables
}

// Tree implements Context.Tree
func (c *BasicContext) Tree(name string) ModelTask {
	if c.library == nil {
		return nil
	}
	return c.library.Tree(name)
}

// NewHierarchicalContext constructs a new context with an empty local scope chained over parent, note that a panic
// will occur if parent is nil
func NewHierarchicalContext(parent Context) *HierarchicalContext {
	if parent == nil {
		panic(errors.New(`btengine.NewHierarchicalContext nil parent`))
	}
	return &HierarchicalContext{parent: parent}
}

// Parent returns the context the receiver falls through to
func (c *HierarchicalContext) Parent() Context { return c.parent }

// Get implements Context.Get, preferring the local scope and falling through to the parent
func (c *HierarchicalContext) Get(name string) interface{} {
	if value, ok := c.variables[name]; ok {
		return value
	}
	return c.parent.Get(name)
}

// Set implements Context.Set, writes stay in the local scope
func (c *HierarchicalContext) Set(name string, value interface{}) bool {
	if value == nil {
		return c.ClearVariable(name)
	}
	if c.variables == nil {
		c.variables = make(map[string]interface{})
	}
	c.variables[name] = value
	return true
}

// Clear implements Context.Clear, removing only the local scope
func (c *HierarchicalContext) Clear() bool {
	modified := len(c.variables) != 0
	c.variables = nil
	return modified
}

// ClearVariable implements Context.ClearVariable, removing only the local binding (any parent binding becomes
// visible again)
func (c *HierarchicalContext) ClearVariable(name string) bool {
	if _, ok := c.variables[name]; !ok {
		return false
	}
	delete(c.variables, name)
	return true
}

// Variables implements Context.Variables, the parent scope merged under the local scope
func (c *HierarchicalContext) Variables() map[string]interface{} {
	variables := c.parent.Variables()
	for name, value := range c.variables {
		variables[name] = value
	}
	return variables
}

// Tree implements Context.Tree via the parent
func (c *HierarchicalContext) Tree(name string) ModelTask { return c.parent.Tree(name) }
