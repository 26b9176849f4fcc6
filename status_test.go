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

import "testing"

func TestStatus_Status(t *testing.T) {
	for _, s := range []Status{Ready, Running, Success, Failure, Terminated} {
		if v := s.Status(); v != s {
			t.Errorf("expected %s to clamp to itself but it was %s", s, v)
		}
	}
	if v := Status(0).Status(); v != Failure {
		t.Error("expected out of bounds to clamp to failure but it was", v)
	}
	if v := Status(-51).Status(); v != Failure {
		t.Error("expected out of bounds to clamp to failure but it was", v)
	}
}

func TestStatus_Terminal(t *testing.T) {
	for s, expected := range map[Status]bool{
		Ready:      false,
		Running:    false,
		Success:    true,
		Failure:    true,
		Terminated: true,
		Status(0):  false,
	} {
		if v := s.Terminal(); v != expected {
			t.Errorf("expected %s terminal to be %v", s, expected)
		}
	}
}

func TestStatus_String(t *testing.T) {
	for s, expected := range map[Status]string{
		Ready:      `ready`,
		Running:    `running`,
		Success:    `success`,
		Failure:    `failure`,
		Terminated: `terminated`,
		Status(99): `unknown status (99)`,
	} {
		if v := s.String(); v != expected {
			t.Errorf("expected %q but it was %q", expected, v)
		}
	}
}
