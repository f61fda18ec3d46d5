package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		config BenchmarkConfig
		paths  []string
	}{
		{
			name:   "empty config",
			config: BenchmarkConfig{},
		},
		{
			name: "valid bounds",
			config: BenchmarkConfig{
				ParameterLists: []ParameterList{{Name: "n", Values: "1"}},
				Runs:           intPtr(1),
				Warmup:         intPtr(0),
				MinRuns:        intPtr(2),
				MaxRuns:        intPtr(10),
			},
		},
		{
			name: "empty parameter name",
			config: BenchmarkConfig{
				ParameterLists: []ParameterList{{Name: "n", Values: "1"}, {Name: "", Values: "2"}},
			},
			paths: []string{"parameter-list[1].name"},
		},
		{
			name: "out of range counts",
			config: BenchmarkConfig{
				Runs:    intPtr(0),
				Warmup:  intPtr(-2),
				MinRuns: intPtr(0),
				MaxRuns: intPtr(-1),
			},
			paths: []string{"runs", "warmup", "min-runs", "max-runs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if len(tt.paths) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs *ValidationErrors
			require.True(t, errors.As(err, &errs))
			var got []string
			for _, e := range errs.Errors {
				got = append(got, e.Path)
			}
			assert.Equal(t, tt.paths, got)
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := &ValidationErrors{}
	errs.Add("runs", "must be at least 1, got 0")
	assert.Equal(t, "runs: must be at least 1, got 0", errs.Error())

	errs.Add("warmup", "must be at least 0, got -1")
	assert.Contains(t, errs.Error(), "2 validation errors:")
	assert.Contains(t, errs.Error(), "warmup: must be at least 0, got -1")
}

func TestAppendParameterList(t *testing.T) {
	cfg := &BenchmarkConfig{ParameterLists: []ParameterList{{Name: "size", Values: "1,2"}}}

	require.NoError(t, cfg.AppendParameterList(ParameterList{Name: "commit", Values: "a,b"}))
	assert.Equal(t, []ParameterList{
		{Name: "size", Values: "1,2"},
		{Name: "commit", Values: "a,b"},
	}, cfg.ParameterLists)

	assert.Error(t, cfg.AppendParameterList(ParameterList{Values: "x"}))
	assert.Len(t, cfg.ParameterLists, 2)
}

func TestOverrideExportJSON(t *testing.T) {
	cfg := &BenchmarkConfig{}
	assert.Nil(t, cfg.OverrideExportJSON("first.json"))
	require.NotNil(t, cfg.ExportJSON)
	assert.Equal(t, "first.json", *cfg.ExportJSON)

	previous := cfg.OverrideExportJSON("second.json")
	require.NotNil(t, previous)
	assert.Equal(t, "first.json", *previous)
	assert.Equal(t, "second.json", *cfg.ExportJSON)
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{
		Path:     "bench.json",
		Err:      errors.New("config does not match the expected shape"),
		Problems: []string{"/runs: expected integer, but got string"},
	}
	assert.Equal(t,
		"error parsing config file bench.json: config does not match the expected shape\n  - /runs: expected integer, but got string",
		err.Error())
}
