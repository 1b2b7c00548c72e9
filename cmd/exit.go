package cmd

import "fmt"

// ExitError ends the process with Code. The message for the failure has
// already been written by the time it is returned.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) ExitCode() int {
	return e.Code
}

const (
	exitFailure = 1
	exitUsage   = 2
)
