// Package filter compiles expression-language filters and evaluates
// them against post records, e.g.
//
//	num("likes", "count") > 100 && contains(text("description"), "cat")
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/Shuttlerock/redvine/vine"
)

// Filter is a compiled expression, reusable across records.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles a filter expression. Record fields are available as
// top-level variables; missing fields evaluate to nil.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions(nil)),
		expr.AllowUndefinedVariables(), // record fields vary per endpoint
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Match evaluates the filter against one record.
func (f *Filter) Match(record vine.Record) (bool, error) {
	env := helperFunctions(record)
	for key, value := range record {
		env[key] = value
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	// AsBool() guarantees a boolean result at compile time.
	return result.(bool), nil
}

// Apply returns the records the filter matches. The first evaluation
// error aborts the pass.
func (f *Filter) Apply(records []vine.Record) ([]vine.Record, error) {
	matched := make([]vine.Record, 0, len(records))
	for _, record := range records {
		ok, err := f.Match(record)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// helperFunctions builds the evaluation environment: lookup helpers
// bound to the record under test plus generic string helpers.
func helperFunctions(record vine.Record) map[string]any {
	return map[string]any{
		"has": func(path ...string) bool {
			return record.Get(path...) != nil
		},
		"text": func(path ...string) string {
			return record.String(path...)
		},
		"num": func(path ...string) int64 {
			return record.Int(path...)
		},
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
