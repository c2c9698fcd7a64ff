package constants

import (
	"errors"
	"fmt"
)

// Domain errors for conversions and lookups.
var (
	// ErrInvalidInput indicates a non-positive or non-finite energy, wavelength or work function.
	ErrInvalidInput = errors.New("photonlab: invalid input (value must be positive and finite)")

	// ErrUnknownMaterial indicates a material name missing from the lookup tables.
	ErrUnknownMaterial = errors.New("photonlab: unknown material")
)

// InputError wraps an error with the offending parameter.
type InputError struct {
	Param   string
	Value   float64
	Wrapped error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Param, e.Value, e.Wrapped)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}

func invalid(param string, v float64) error {
	return &InputError{Param: param, Value: v, Wrapped: ErrInvalidInput}
}
