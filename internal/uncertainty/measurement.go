// Package uncertainty propagates absolute measurement uncertainty through
// direct readings, sums, differences, products and quotients.
//
// All propagation is first-order and linear: the uncertainty of f(a, b) is
// |∂f/∂a|·Δa + |∂f/∂b|·Δb. Evaluators are pure functions; they never print
// and never retain state between calls.
package uncertainty

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the evaluators. Both are recoverable: the
// caller reports them and carries on.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidOperation = errors.New("invalid operation")
)

// Measurement is a measured value together with its absolute uncertainty.
type Measurement struct {
	Value       float64
	Uncertainty float64
}

// Result is the outcome of one evaluation.
type Result struct {
	Value       float64
	Uncertainty float64
	Unit        string
}

// String renders the result with Format.
func (r Result) String() string {
	return Format(r.Value, r.Uncertainty, r.Unit)
}

// Relative returns the fractional uncertainty, or 0 when the value is 0.
func (r Result) Relative() float64 {
	if r.Value == 0 {
		return 0
	}
	return r.Uncertainty / math.Abs(r.Value)
}

// Operator is one of the four arithmetic operators an evaluator accepts.
type Operator int

// Supported operators.
const (
	OpInvalid Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

// ParseOperator maps the exact tokens "+", "-", "*" and "/" to an Operator.
// No whitespace is trimmed.
func ParseOperator(token string) (Operator, error) {
	switch token {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	}
	return OpInvalid, fmt.Errorf("%w: %q", ErrInvalidOperation, token)
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "invalid"
	}
}
