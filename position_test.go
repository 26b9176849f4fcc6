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
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func TestPosition_rootAndChildren(t *testing.T) {
	root := RootPosition()
	if root.Depth() != 0 {
		t.Error("expected the root depth to be 0 but it was", root.Depth())
	}
	if root.Indices() != nil {
		t.Error("expected the root indices to be nil but they were", root.Indices())
	}
	if root.String() != `/` {
		t.Error("expected the root to print as / but it was", root.String())
	}

	p := root.Child(0).Child(2).Child(1)
	if p.Depth() != 3 {
		t.Error("expected depth 3 but it was", p.Depth())
	}
	if diff := deep.Equal([]int{0, 2, 1}, p.Indices()); diff != nil {
		t.Errorf("unexpected indices: %s", strings.Join(diff, "\n  >"))
	}
	if p.String() != `/0/2/1` {
		t.Error("unexpected string:", p.String())
	}
}

func TestPosition_equalityByValue(t *testing.T) {
	a := RootPosition().Child(1).Child(2)
	b := RootPosition().Child(1).Child(2)
	c := RootPosition().Child(2).Child(1)

	if a != b {
		t.Error("expected equal positions to compare equal")
	}
	if a == c {
		t.Error("expected distinct positions to compare unequal")
	}

	m := map[Position]int{a: 1}
	if m[b] != 1 {
		t.Error("expected positions to be usable as map keys")
	}
}

func TestPosition_negativeChildIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	RootPosition().Child(-1)
}
