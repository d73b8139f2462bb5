package generate

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned before any remote call when a required field is empty.
var ErrInvalidInput = errors.New("invalid input")

// RemoteCallError wraps any failure of the completion call. The underlying
// provider error is kept as-is; no classification is attempted.
type RemoteCallError struct {
	Kind Kind
	Err  error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Kind, e.Err)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

func invalidField(field string) error {
	return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
}
