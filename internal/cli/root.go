package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wesleyorama2/benchdiff/internal/hyperfine"
	"github.com/wesleyorama2/benchdiff/internal/logging"
	"github.com/wesleyorama2/benchdiff/internal/output"
	"github.com/wesleyorama2/benchdiff/internal/runner"
)

var version = "0.1.0"

const usageLine = "Usage: benchdiff <config.json> <base_commit> <head_commit> <results_dir>"

// envPrefix is prepended to flag names to form their environment variables,
// for example BENCHDIFF_DRY_RUN.
const envPrefix = "BENCHDIFF"

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	Want int
	Got  int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected %d arguments, got %d", e.Want, e.Got)
}

// Options configures the root command. Zero values fall back to the real
// process streams and to running hyperfine through os/exec.
type Options struct {
	Spawner runner.Spawner
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewRootCmd builds the benchdiff command.
func NewRootCmd(opts Options) *cobra.Command {
	cmd, _ := newRootCmd(opts)
	return cmd
}

func newRootCmd(opts Options) (*cobra.Command, *viper.Viper) {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "benchdiff <config-file> <base-commit> <head-commit> <results-dir>",
		Short:   "Compare two commits with a hyperfine benchmark",
		Version: version,
		Long: `benchdiff reads a hyperfine benchmark configuration (JSON, or YAML by
extension), adds the base and head commits as a "commit" parameter list,
points --export-json at the results path and runs hyperfine.

The configured command can reference the commit with {commit}, for example:
  {"command": "./bench.sh {commit}", "runs": 10}`,
		Args:          exactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd, v, opts, args)
		},
	}

	if opts.Stdout != nil {
		cmd.SetOut(opts.Stdout)
	}
	if opts.Stderr != nil {
		cmd.SetErr(opts.Stderr)
	}

	cmd.Flags().String("hyperfine", hyperfine.DefaultExecutable, "Benchmarking executable to run")
	cmd.Flags().Bool("dry-run", false, "Print the hyperfine command without running it")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	// Flags win over BENCHDIFF_* environment variables, which win over defaults
	_ = v.BindPFlags(cmd.Flags())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd, v
}

// exactArgs is cobra.ExactArgs returning a *UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return &UsageError{Want: n, Got: len(args)}
		}
		return nil
	}
}

func runBenchmark(cmd *cobra.Command, v *viper.Viper, opts Options, args []string) error {
	logger := logging.New(cmd.ErrOrStderr(), v.GetBool("verbose"))
	defer func() { _ = logger.Sync() }()

	stdout := cmd.OutOrStdout()

	r := runner.New(logger)
	if opts.Spawner != nil {
		r.Spawner = opts.Spawner
	}
	r.Executable = v.GetString("hyperfine")
	r.Stdout = stdout
	r.Colors = output.SchemeFor(stdout, v.GetBool("no-color"))
	r.DryRun = v.GetBool("dry-run")

	return r.Run(cmd.Context(), runner.Invocation{
		ConfigPath: args[0],
		BaseCommit: args[1],
		HeadCommit: args[2],
		ResultsDir: args[3],
	})
}

// Execute runs benchdiff with the process arguments and returns its exit code.
func Execute() int {
	return ExecuteArgs(os.Args[1:], Options{})
}

// ExecuteArgs runs benchdiff with args and returns the exit code: 0 on
// success and 1 for any failure.
func ExecuteArgs(args []string, opts Options) int {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}

	cmd, v := newRootCmd(opts)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(stderr, usageLine)
		return 1
	}

	output.SchemeFor(stderr, v.GetBool("no-color")).PrintError(stderr, err)
	return 1
}
