package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format identifies the serialization of a configuration file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParameterList is a named sweep dimension. Values is a comma separated list
// that hyperfine expands into one run per value.
type ParameterList struct {
	Name   string `json:"name"`
	Values string `json:"values"`
}

// BenchmarkConfig is a hyperfine benchmark description.
//
// Optional settings are pointers so that an absent key can be told apart from
// one set to its zero value.
type BenchmarkConfig struct {
	Command        string          `json:"command"`
	ParameterLists []ParameterList `json:"parameter-list"`
	Prepare        *string         `json:"prepare,omitempty"`
	Cleanup        *string         `json:"cleanup,omitempty"`
	Runs           *int            `json:"runs,omitempty"`
	ShowOutput     *bool           `json:"show-output,omitempty"`
	ExportJSON     *string         `json:"export-json,omitempty"`
	Warmup         *int            `json:"warmup,omitempty"`
	MinRuns        *int            `json:"min-runs,omitempty"`
	MaxRuns        *int            `json:"max-runs,omitempty"`

	// Ignored lists top-level keys found in the file that are not recognised.
	Ignored []string `json:"-"`
}

// DetectFormat picks the file format from the path extension. Anything that
// is not YAML is read as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadConfig loads a benchmark configuration file.
func LoadConfig(path string) (*BenchmarkConfig, error) {
	// Check if file exists
	if _, err := os.Stat(path); err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	cfg, err := ParseConfig(data, DetectFormat(path))
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// ParseConfig parses configuration data in the given format.
func ParseConfig(data []byte, format Format) (*BenchmarkConfig, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		data = converted
	}

	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Err: fmt.Errorf("malformed %s document", format)}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &ParseError{Err: fmt.Errorf("config must be an object, got %s", describe(root))}
	}

	if problems := schema.ValidateJSON(data); len(problems) > 0 {
		return nil, &ParseError{
			Err:      errors.New("config does not match the expected shape"),
			Problems: problems.Strings(),
		}
	}

	var config BenchmarkConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &ParseError{Err: err}
	}
	config.Ignored = unknownKeys(root)

	if err := config.Validate(); err != nil {
		return nil, &ParseError{Err: err}
	}

	return &config, nil
}

// yamlToJSON re-encodes a YAML document as JSON so both formats share one
// validation and decoding path.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed yaml document: %w", err)
	}
	if doc == nil {
		// An empty YAML file is an empty mapping.
		doc = map[string]interface{}{}
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("yaml document cannot be represented as json: %w", err)
	}
	return out, nil
}

// unknownKeys returns the top-level keys of root that are not in Fields, in
// document order.
func unknownKeys(root gjson.Result) []string {
	var keys []string
	root.ForEach(func(key, _ gjson.Result) bool {
		if _, ok := LookupField(key.String()); !ok {
			keys = append(keys, key.String())
		}
		return true
	})
	return keys
}

func describe(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "array"
	case r.Type == gjson.String:
		return "string"
	case r.Type == gjson.Number:
		return "number"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "boolean"
	case r.Type == gjson.Null:
		return "null"
	default:
		return r.Type.String()
	}
}
