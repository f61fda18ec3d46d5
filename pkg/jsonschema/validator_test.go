package jsonschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"age": {"type": "integer", "minimum": 0},
		"tags": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["name"]
}`

func TestCompile(t *testing.T) {
	s, err := Compile("person.json", personSchema)
	require.NoError(t, err)
	assert.Equal(t, "person.json", s.Name())

	_, err = Compile("broken.json", `{"type": `)
	assert.Error(t, err)
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("broken.json", `{`) })
}

func TestValidateJSON(t *testing.T) {
	s := MustCompile("person.json", personSchema)

	tests := []struct {
		name      string
		document  string
		locations []string
	}{
		{
			name:     "valid document",
			document: `{"name": "Ada", "age": 36, "tags": ["math"]}`,
		},
		{
			name:     "extra properties allowed",
			document: `{"name": "Ada", "nickname": "Countess"}`,
		},
		{
			name:      "missing required",
			document:  `{"age": 3}`,
			locations: []string{"(root)"},
		},
		{
			name:      "wrong types",
			document:  `{"name": "Ada", "age": "old", "tags": [1]}`,
			locations: []string{"/age", "/tags/0"},
		},
		{
			name:      "not an object",
			document:  `[]`,
			locations: []string{"(root)"},
		},
		{
			name:      "malformed JSON",
			document:  `{"name":`,
			locations: []string{"invalid JSON"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := s.ValidateJSON([]byte(tt.document))
			if len(tt.locations) == 0 {
				assert.Nil(t, errs)
				return
			}

			require.NotEmpty(t, errs)
			joined := errs.Error()
			for _, loc := range tt.locations {
				assert.Contains(t, joined, loc)
			}
		})
	}
}

func TestValidationErrors(t *testing.T) {
	var empty ValidationErrors
	assert.Equal(t, "", empty.Error())
	assert.Empty(t, empty.Strings())

	errs := ValidationErrors{errors.New("first"), errors.New("second")}
	assert.Equal(t, "first; second", errs.Error())
	assert.Equal(t, []string{"first", "second"}, errs.Strings())
}
