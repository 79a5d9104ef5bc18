package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}

// Error is returned when a command exits unsuccessfully; Stderr keeps the
// trimmed diagnostic output so callers can classify the failure
type Error struct {
	Name   string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return "command '" + e.Name + "' failed: " + e.Err.Error() + "\nstderr: " + e.Stderr
	}
	return "command '" + e.Name + "' failed: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
