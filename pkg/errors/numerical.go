package errors

import (
	"fmt"
	"math"
)

// CheckFinite returns a ValueError when value is NaN or ±Inf.
func CheckFinite(op string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewValueError(op, fmt.Sprintf("non-finite value %v", value))
	}
	return nil
}

// FlooredLog computes log(max(value, floor)).
// floor must be positive; it keeps log(0) from collapsing a score to -Inf.
func FlooredLog(value, floor float64) float64 {
	if value < floor {
		return math.Log(floor)
	}
	return math.Log(value)
}
