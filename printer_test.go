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
	"bytes"
	"strings"
	"testing"
)

func TestSprint_rendersKindsAndPositions(t *testing.T) {
	tree := NewSequence(nil,
		NewSelector(nil, NewSuccess(nil), NewFailure(nil)),
		NewWait(NewSuccess(nil), 0),
	)
	ComputePositions(tree)

	out := Sprint(tree)

	for _, expected := range []string{
		`sequence`,
		`selector`,
		`success`,
		`failure`,
		`wait [guarded]`,
		`/0/1`,
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %q:\n%s", expected, out)
		}
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("expected no trailing newline")
	}
}

func TestTreePrinter_fprint(t *testing.T) {
	var b bytes.Buffer
	if err := DefaultPrinter.Fprint(&b, NewSuccess(nil)); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !strings.Contains(b.String(), `success`) {
		t.Error("unexpected output:", b.String())
	}
}
