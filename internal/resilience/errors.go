package resilience

import (
	"errors"
	"fmt"
)

// ExhaustedError reports that every retry attempt failed. It carries the
// last underlying error and the number of attempts made.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("falha após %d tentativas: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// IsExhausted reports whether err (or any error in its chain) is an
// ExhaustedError.
func IsExhausted(err error) bool {
	var ee *ExhaustedError
	return errors.As(err, &ee)
}
