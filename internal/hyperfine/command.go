// Package hyperfine turns a benchmark configuration into a hyperfine
// command line.
package hyperfine

import (
	"strconv"

	"github.com/kballard/go-shellquote"

	"github.com/wesleyorama2/benchdiff/internal/config"
)

// DefaultExecutable is the program run when no other is configured.
const DefaultExecutable = "hyperfine"

// BuildArgs returns the hyperfine arguments for cfg.
//
// Flags are emitted in a fixed order: parameter lists, prepare, cleanup,
// runs, show-output, export-json, warmup, min-runs, max-runs, and finally the
// benchmarked command as the only positional argument. Each value is its own
// element; nothing is quoted because no shell parses the result.
func BuildArgs(cfg *config.BenchmarkConfig) []string {
	args := make([]string, 0, 3*len(cfg.ParameterLists)+16)

	flag := config.FlagFor(config.KeyParameterList)
	for _, p := range cfg.ParameterLists {
		args = append(args, flag, p.Name, p.Values)
	}

	args = appendString(args, config.KeyPrepare, cfg.Prepare)
	args = appendString(args, config.KeyCleanup, cfg.Cleanup)
	args = appendInt(args, config.KeyRuns, cfg.Runs)

	// show-output is a bare switch and is never written out as false
	if cfg.ShowOutput != nil && *cfg.ShowOutput {
		args = append(args, config.FlagFor(config.KeyShowOutput))
	}

	args = appendString(args, config.KeyExportJSON, cfg.ExportJSON)
	args = appendInt(args, config.KeyWarmup, cfg.Warmup)
	args = appendInt(args, config.KeyMinRuns, cfg.MinRuns)
	args = appendInt(args, config.KeyMaxRuns, cfg.MaxRuns)

	return append(args, cfg.Command)
}

func appendString(args []string, key string, v *string) []string {
	if v == nil {
		return args
	}
	return append(args, config.FlagFor(key), *v)
}

func appendInt(args []string, key string, v *int) []string {
	if v == nil {
		return args
	}
	return append(args, config.FlagFor(key), strconv.Itoa(*v))
}

// Render formats an invocation for display, quoting tokens the way a POSIX
// shell would need them.
func Render(executable string, args []string) string {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, executable)
	return shellquote.Join(append(argv, args...)...)
}
