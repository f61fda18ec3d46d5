package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString("\n  ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(path, message string) {
	e.Errors = append(e.Errors, ValidationError{Path: path, Message: message})
}

// Validate checks the invariants a configuration must hold before it is
// turned into hyperfine arguments. Files that passed the schema always
// satisfy them; configurations built in code may not.
func (c *BenchmarkConfig) Validate() error {
	errs := &ValidationErrors{}

	for i, p := range c.ParameterLists {
		if p.Name == "" {
			errs.Add(fmt.Sprintf("%s[%d].name", KeyParameterList, i), "name cannot be empty")
		}
	}

	checkMin := func(key string, v *int, lowest int) {
		if v != nil && *v < lowest {
			errs.Add(key, fmt.Sprintf("must be at least %d, got %d", lowest, *v))
		}
	}
	checkMin(KeyRuns, c.Runs, 1)
	checkMin(KeyWarmup, c.Warmup, 0)
	checkMin(KeyMinRuns, c.MinRuns, 1)
	checkMin(KeyMaxRuns, c.MaxRuns, 1)

	if len(errs.Errors) > 0 {
		return errs
	}
	return nil
}

// AppendParameterList adds p as the last sweep dimension.
func (c *BenchmarkConfig) AppendParameterList(p ParameterList) error {
	if p.Name == "" {
		return fmt.Errorf("parameter list name cannot be empty")
	}
	c.ParameterLists = append(c.ParameterLists, p)
	return nil
}

// OverrideExportJSON replaces the export path and returns the one it
// replaced, or nil if none was set.
func (c *BenchmarkConfig) OverrideExportJSON(path string) *string {
	previous := c.ExportJSON
	c.ExportJSON = &path
	return previous
}
