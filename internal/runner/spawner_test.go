package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test. It is re-executed by the spawner
// tests to stand in for hyperfine.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	fmt.Fprintf(os.Stdout, "args=%q\n", args)
	fmt.Fprintln(os.Stderr, "to stderr")

	code, _ := strconv.Atoi(os.Getenv("HELPER_EXIT_CODE"))
	os.Exit(code)
}

func helperSpawn(t *testing.T, exitCode int, args ...string) (int, string, string, error) {
	t.Helper()
	t.Setenv("GO_WANT_HELPER_PROCESS", "1")
	t.Setenv("HELPER_EXIT_CODE", strconv.Itoa(exitCode))

	exe, err := os.Executable()
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	s := &ExecSpawner{Stdout: &stdout, Stderr: &stderr}

	helperArgs := append([]string{"-test.run=TestHelperProcess", "--"}, args...)
	code, err := s.Spawn(context.Background(), exe, helperArgs)
	return code, stdout.String(), stderr.String(), err
}

func TestExecSpawner_Success(t *testing.T) {
	code, stdout, stderr, err := helperSpawn(t, 0, "--runs", "3", "echo hi")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, `args=["--runs" "3" "echo hi"]`)
	assert.Contains(t, stderr, "to stderr")
}

func TestExecSpawner_ExitCode(t *testing.T) {
	code, _, _, err := helperSpawn(t, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestExecSpawner_NotFound(t *testing.T) {
	s := &ExecSpawner{}
	missing := filepath.Join(t.TempDir(), "definitely-not-hyperfine")

	code, err := s.Spawn(context.Background(), missing, nil)
	assert.Error(t, err)
	assert.Equal(t, -1, code)
}

func TestNewExecSpawner(t *testing.T) {
	s := NewExecSpawner()
	assert.Equal(t, os.Stdin, s.Stdin)
	assert.Equal(t, os.Stdout, s.Stdout)
	assert.Equal(t, os.Stderr, s.Stderr)
}
