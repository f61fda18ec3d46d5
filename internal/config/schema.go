package config

import "github.com/wesleyorama2/benchdiff/pkg/jsonschema"

// configSchema describes the shape of a benchmark configuration document.
// Unknown properties are allowed so that newer files still load. Optional
// keys accept null, which means the same as leaving them out.
const configSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"command": {"type": "string"},
		"parameter-list": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"values": {"type": "string"}
				},
				"required": ["name", "values"]
			}
		},
		"prepare": {"type": ["string", "null"]},
		"cleanup": {"type": ["string", "null"]},
		"runs": {"type": ["integer", "null"], "minimum": 1},
		"show-output": {"type": ["boolean", "null"]},
		"export-json": {"type": ["string", "null"]},
		"warmup": {"type": ["integer", "null"], "minimum": 0},
		"min-runs": {"type": ["integer", "null"], "minimum": 1},
		"max-runs": {"type": ["integer", "null"], "minimum": 1}
	}
}`

var schema = jsonschema.MustCompile("benchdiff-config.json", configSchema)
