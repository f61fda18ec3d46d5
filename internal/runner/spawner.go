package runner

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Spawner starts a program, waits for it to finish and reports its exit code.
// An error means the program could not be run at all; a program that ran and
// failed is reported through a non-zero exit code.
type Spawner interface {
	Spawn(ctx context.Context, name string, args []string) (int, error)
}

// ExecSpawner runs programs with os/exec. The child shares the given streams,
// which default to the parent's own.
type ExecSpawner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecSpawner returns an ExecSpawner wired to the process's standard streams.
func NewExecSpawner() *ExecSpawner {
	return &ExecSpawner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Spawn runs name with args and blocks until it exits.
func (s *ExecSpawner) Spawn(ctx context.Context, name string, args []string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the child was killed by a signal
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
