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

func TestSafeContext_readsFallThroughUntilModified(t *testing.T) {
	input := NewBasicContext()
	input.Set(`a`, 1)
	c := NewSafeContext(input)

	// not yet modified, reads track the input
	assert.Equal(t, 1, c.Get(`a`))
	input.Set(`a`, 2)
	assert.Equal(t, 2, c.Get(`a`))

	// once modified, the overlay is authoritative
	c.Set(`a`, 10)
	assert.Equal(t, 10, c.Get(`a`))
	assert.Equal(t, 2, input.Get(`a`), "the input context must not be mutated")
	input.Set(`a`, 3)
	assert.Equal(t, 10, c.Get(`a`), "a modified variable must not track the input")
}

func TestSafeContext_clearedVariableReadsUndefined(t *testing.T) {
	input := NewBasicContext()
	input.Set(`a`, 1)
	c := NewSafeContext(input)

	assert.True(t, c.ClearVariable(`a`))
	assert.Nil(t, c.Get(`a`))
	assert.Equal(t, 1, input.Get(`a`))
}

func TestSafeContext_clear(t *testing.T) {
	input := NewBasicContext()
	input.Set(`a`, 1)
	c := NewSafeContext(input)
	c.Set(`b`, 2)

	assert.True(t, c.Clear())
	assert.Nil(t, c.Get(`a`))
	assert.Nil(t, c.Get(`b`))
	assert.Equal(t, 1, input.Get(`a`), "the input context must not be mutated")
	assert.Empty(t, c.Variables())
}

func TestSafeContext_variables(t *testing.T) {
	input := NewBasicContext()
	input.Set(`a`, 1)
	input.Set(`b`, 2)
	c := NewSafeContext(input)
	c.Set(`b`, 20)
	c.ClearVariable(`a`)
	c.Set(`c`, 3)

	assert.Equal(t, map[string]interface{}{`b`: 20, `c`: 3}, c.Variables())
}

func TestSafeOutputContext_outputVariablesPassThrough(t *testing.T) {
	input := NewBasicContext()
	input.Set(`out`, 1)
	input.Set(`other`, 1)
	c := NewSafeOutputContext(input, []string{`out`})

	require.True(t, c.IsOutput(`out`))
	require.False(t, c.IsOutput(`other`))

	c.Set(`out`, 2)
	assert.Equal(t, 2, input.Get(`out`), "output writes pass through")
	input.Set(`out`, 3)
	assert.Equal(t, 3, c.Get(`out`), "output reads pass through")

	c.Set(`other`, 2)
	assert.Equal(t, 1, input.Get(`other`), "non-output writes stay local")
	assert.Equal(t, 2, c.Get(`other`))
}

func TestSafeOutputContext_clearClearsOutputsInInput(t *testing.T) {
	input := NewBasicContext()
	input.Set(`out`, 1)
	input.Set(`other`, 1)
	c := NewSafeOutputContext(input, []string{`out`})
	c.Set(`tmp`, 2)

	assert.True(t, c.Clear())
	assert.Nil(t, input.Get(`out`), "output variables are cleared in the input context")
	assert.Equal(t, 1, input.Get(`other`), "non-output variables are untouched in the input context")
	assert.Nil(t, c.Get(`other`))
	assert.Nil(t, c.Get(`tmp`))
}

func TestNewSafeContext_nilInput(t *testing.T) {
	require.Panics(t, func() { NewSafeContext(nil) })
	require.Panics(t, func() { NewSafeOutputContext(nil, nil) })
}
