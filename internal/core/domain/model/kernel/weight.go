package kernel

import (
	"fmt"

	"amenade/internal/pkg/errs"
)

// Weight is a value object for package weight and trip carrying capacity,
// expressed in kilograms. A zero Weight means the weight was not declared;
// undeclared weight never blocks an assignment, so the zero value is valid
// and usable without construction.
//
// Weight is immutable and safe for concurrent use.
type Weight struct {
	kilograms float64
}

// NewWeight creates a Weight from a kilogram value.
// Negative values are rejected; zero means undeclared.
func NewWeight(kilograms float64) (Weight, error) {
	if kilograms < 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v kilograms is negative", kilograms))
	}
	return Weight{kilograms: kilograms}, nil
}

// Kilograms returns the weight in kilograms. Zero means undeclared.
func (w Weight) Kilograms() float64 {
	return w.kilograms
}

// IsUndeclared reports whether no weight was declared.
func (w Weight) IsUndeclared() bool {
	return w.kilograms == 0
}

// CanFit reports whether this weight fits into the given remaining capacity.
// An undeclared weight always fits.
func (w Weight) CanFit(capacity Weight) bool {
	if w.IsUndeclared() {
		return true
	}
	return w.kilograms <= capacity.kilograms
}

// Subtract returns the capacity left after removing w.
// Returns an error when the result would be negative.
func (w Weight) Subtract(other Weight) (Weight, error) {
	if other.kilograms > w.kilograms {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", other.kilograms, 0, w.kilograms)
	}
	return Weight{kilograms: w.kilograms - other.kilograms}, nil
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{kilograms: w.kilograms + other.kilograms}
}

// IsEqual reports whether two weights represent the same value.
func (w Weight) IsEqual(other Weight) bool {
	return w.kilograms == other.kilograms
}

// Validate rejects negative weights. Zero (undeclared) is valid.
func (w Weight) Validate() error {
	if w.kilograms < 0 {
		return errs.NewValueIsInvalidError("weight")
	}
	return nil
}

// String implements fmt.Stringer.
func (w Weight) String() string {
	return fmt.Sprintf("%g kg", w.kilograms)
}
