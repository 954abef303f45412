package uncertainty

import (
	"fmt"
	"math"
)

// DirectInput holds the answers gathered for a direct measurement.
type DirectInput struct {
	Value float64
	// Direct selects a user-supplied Uncertainty over LeastCount / K.
	Direct      bool
	Uncertainty float64
	LeastCount  float64
	K           float64
}

// Direct returns the uncertainty of a single reading. When the uncertainty is
// not given directly it is estimated as LeastCount / K; K == 0 yields
// ErrDivisionByZero.
func Direct(in DirectInput) (Result, error) {
	if in.Direct {
		return Result{Value: in.Value, Uncertainty: math.Abs(in.Uncertainty)}, nil
	}
	if in.K == 0 {
		return Result{}, fmt.Errorf("%w: divisor k is zero", ErrDivisionByZero)
	}
	return Result{Value: in.Value, Uncertainty: math.Abs(in.LeastCount / in.K)}, nil
}

// SumDiff adds or subtracts two measurements. Absolute uncertainties add
// for both operators.
func SumDiff(a, b Measurement, op Operator) (Result, error) {
	var value float64
	switch op {
	case OpAdd:
		value = a.Value + b.Value
	case OpSub:
		value = a.Value - b.Value
	default:
		return Result{}, fmt.Errorf("%w: %s is not + or -", ErrInvalidOperation, op)
	}
	return Result{
		Value:       value,
		Uncertainty: math.Abs(a.Uncertainty) + math.Abs(b.Uncertainty),
	}, nil
}

// ProductQuotient multiplies or divides two measurements, which is
// equivalent to adding their relative uncertainties.
func ProductQuotient(a, b Measurement, op Operator) (Result, error) {
	da, db := math.Abs(a.Uncertainty), math.Abs(b.Uncertainty)
	absA, absB := math.Abs(a.Value), math.Abs(b.Value)

	switch op {
	case OpMul:
		return Result{
			Value:       a.Value * b.Value,
			Uncertainty: absB*da + absA*db,
		}, nil
	case OpDiv:
		if b.Value == 0 {
			return Result{}, fmt.Errorf("%w: B is zero", ErrDivisionByZero)
		}
		return Result{
			Value:       a.Value / b.Value,
			Uncertainty: da/absB + absA*db/(absB*absB),
		}, nil
	default:
		return Result{}, fmt.Errorf("%w: %s is not * or /", ErrInvalidOperation, op)
	}
}
