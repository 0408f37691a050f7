package simulator

import "fmt"

// SimError is a custom error type for simulation errors
type SimError struct {
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("simulation error: %s", e.Message)
}

// ErrInvalidParameter creates an error for invalid simulation parameters
// (non-positive rates, negative hour counts, unknown priorities).
func ErrInvalidParameter(msg string) error {
	return SimError{Message: fmt.Sprintf("invalid parameter: %s", msg)}
}

// ErrInsufficientData is returned when statistics are requested before any
// service record has completed. Callers should check for at least one
// completed record first.
var ErrInsufficientData = SimError{Message: "insufficient data: no completed service records"}
