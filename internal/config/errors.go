package config

import (
	"fmt"
	"strings"
)

// ReadError is returned when the configuration file cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading config file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the configuration file is not a well-formed
// configuration document. Problems holds every schema violation found, if
// the document got that far.
type ParseError struct {
	Path     string
	Err      error
	Problems []string
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("error parsing config file %s", e.Path))
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	for _, p := range e.Problems {
		sb.WriteString("\n  - ")
		sb.WriteString(p)
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
