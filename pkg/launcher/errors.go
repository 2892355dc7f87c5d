package launcher

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrShutdown indicates the user asked the launcher to exit. This is
	// normal flow control, not a failure.
	ErrShutdown = errors.New("launcher shut down by user")
)

// InfrastructureError represents a platform-level failure: SDL could
// not start, the window could not be created, the font is missing.
// These are fatal; the launcher has nothing sensible to fall back to.
type InfrastructureError struct {
	Op  string // operation that failed (e.g. "init_sdl", "create_window")
	Err error  // underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("launcher: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("launcher: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsShutdown checks if an error indicates a user-requested exit.
func IsShutdown(err error) bool {
	return errors.Is(err, ErrShutdown)
}
