package runner

import "fmt"

// SpawnError is returned when the benchmarking executable cannot be started.
type SpawnError struct {
	Executable string
	Err        error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Executable, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ChildFailureError is returned when the benchmarking executable ran but
// exited unsuccessfully. Status is -1 if it was terminated by a signal.
type ChildFailureError struct {
	Executable string
	Status     int
}

func (e *ChildFailureError) Error() string {
	if e.Status < 0 {
		return fmt.Sprintf("%s command failed: terminated by signal", e.Executable)
	}
	return fmt.Sprintf("%s command failed with status: exit status %d", e.Executable, e.Status)
}
