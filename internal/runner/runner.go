// Package runner ties the benchmark pipeline together: it loads a config,
// adds the commits under comparison, and runs hyperfine on the result.
package runner

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/wesleyorama2/benchdiff/internal/config"
	"github.com/wesleyorama2/benchdiff/internal/hyperfine"
	"github.com/wesleyorama2/benchdiff/internal/output"
)

// CommitParameterName is the name of the parameter list holding the commits.
const CommitParameterName = "commit"

// Invocation holds the positional arguments of one benchdiff run.
type Invocation struct {
	ConfigPath string
	BaseCommit string
	HeadCommit string
	ResultsDir string
}

// CommitParameter pairs the base and head commits as a parameter list.
func CommitParameter(base, head string) config.ParameterList {
	return config.ParameterList{
		Name:   CommitParameterName,
		Values: base + "," + head,
	}
}

// Runner runs hyperfine for an Invocation.
type Runner struct {
	Spawner    Spawner
	Executable string
	Stdout     io.Writer
	Colors     *output.ColorScheme
	Logger     *zap.Logger
	// DryRun stops after printing the command.
	DryRun bool
}

// New returns a Runner that runs hyperfine from PATH through os/exec.
func New(logger *zap.Logger) *Runner {
	return &Runner{
		Spawner:    NewExecSpawner(),
		Executable: hyperfine.DefaultExecutable,
		Stdout:     os.Stdout,
		Colors:     output.NoColorScheme(),
		Logger:     logger,
	}
}

// Prepare loads the config named by inv and applies the commit parameter
// and the results path to it.
func (r *Runner) Prepare(inv Invocation) (*config.BenchmarkConfig, error) {
	cfg, err := config.LoadConfig(inv.ConfigPath)
	if err != nil {
		return nil, err
	}

	r.logger().Debug("loaded benchmark config",
		zap.String("path", inv.ConfigPath),
		zap.String("format", string(config.DetectFormat(inv.ConfigPath))),
		zap.Int("parameterLists", len(cfg.ParameterLists)))
	for _, key := range cfg.Ignored {
		r.logger().Debug("ignoring unknown config key", zap.String("key", key))
	}

	if cfg.ExportJSON != nil {
		r.logger().Debug("overriding export-json from config",
			zap.String("configured", *cfg.ExportJSON),
			zap.String("resultsDir", inv.ResultsDir))
	}

	if err := Apply(cfg, inv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply appends the commit parameter list and points the JSON export at the
// results path, discarding any export path from the file.
func Apply(cfg *config.BenchmarkConfig, inv Invocation) error {
	if err := cfg.AppendParameterList(CommitParameter(inv.BaseCommit, inv.HeadCommit)); err != nil {
		return err
	}
	cfg.OverrideExportJSON(inv.ResultsDir)
	return nil
}

// Run executes the whole pipeline and blocks until hyperfine exits.
func (r *Runner) Run(ctx context.Context, inv Invocation) error {
	cfg, err := r.Prepare(inv)
	if err != nil {
		return err
	}

	executable := r.Executable
	if executable == "" {
		executable = hyperfine.DefaultExecutable
	}
	args := hyperfine.BuildArgs(cfg)

	r.colors().PrintCommand(r.stdout(), hyperfine.Render(executable, args))
	if r.DryRun {
		return nil
	}

	r.logger().Debug("starting benchmark", zap.String("executable", executable), zap.Strings("args", args))
	status, err := r.Spawner.Spawn(ctx, executable, args)
	if err != nil {
		return &SpawnError{Executable: executable, Err: err}
	}
	r.logger().Debug("benchmark finished", zap.Int("status", status))

	if status != 0 {
		return &ChildFailureError{Executable: executable, Status: status}
	}
	return nil
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Runner) colors() *output.ColorScheme {
	if r.Colors == nil {
		return output.NoColorScheme()
	}
	return r.Colors
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}
