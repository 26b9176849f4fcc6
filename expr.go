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
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type (
	// ModelExprCondition is the condition leaf backed by a compiled expr-lang expression, evaluated against the
	// context's variables
	ModelExprCondition struct {
		model
		expression string
		program    *vm.Program
	}

	exprConditionTask struct {
		task
		program *vm.Program
	}
)

// NewExprCondition constructs a condition leaf from an expr-lang expression, compiled once here, evaluated on the
// tick after it spawns with the context's variables as the environment, the expression must yield a bool, success
// iff true. Undefined variables evaluate as nil.
//
// Expression syntax follows expr-lang (github.com/expr-lang/expr).
func NewExprCondition(guard ModelTask, expression string) (*ModelExprCondition, error) {
	program, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf(`btengine.NewExprCondition compile %q: %w`, expression, err)
	}
	return &ModelExprCondition{
		model:      newModel(`expr-condition`, guard, 0, 0, nil),
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the source expression
func (m *ModelExprCondition) Expression() string { return m.expression }

// CreateExecutor implements ModelTask.CreateExecutor
func (m *ModelExprCondition) CreateExecutor(executor *BTExecutor, parent ExecutionTask) ExecutionTask {
	t := &exprConditionTask{program: m.program}
	t.init(t, m, executor, parent)
	return t
}

func (t *exprConditionTask) spawn() error {
	t.executor.RequestInsertion(Tickable, t.self)
	return nil
}

func (t *exprConditionTask) tick() (Status, error) {
	output, err := expr.Run(t.program, t.ctx.Variables())
	if err != nil {
		return Failure, err
	}
	result, ok := output.(bool)
	if !ok {
		return Failure, fmt.Errorf(`btengine.ModelExprCondition non-bool result %T`, output)
	}
	if result {
		return Success, nil
	}
	return Failure, nil
}
