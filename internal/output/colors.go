package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Label   *color.Color
	Command *color.Color
	Detail  *color.Color
	Success *color.Color
	Error   *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Label:   color.New(color.FgBlue, color.Bold),
		Command: color.New(color.FgCyan),
		Detail:  color.New(color.FgYellow),
		Success: color.New(color.FgGreen, color.Bold),
		Error:   color.New(color.FgRed, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Label.DisableColor()
	scheme.Command.DisableColor()
	scheme.Detail.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()

	return scheme
}

// SchemeFor picks the color scheme for w. Colors are used only when they
// were not switched off and w is a terminal.
func SchemeFor(w io.Writer, noColor bool) *ColorScheme {
	if noColor || !IsTerminal(w) {
		return NoColorScheme()
	}
	scheme := DefaultColorScheme()

	// color.NoColor is decided from os.Stdout alone; w may be another terminal
	scheme.Label.EnableColor()
	scheme.Command.EnableColor()
	scheme.Detail.EnableColor()
	scheme.Success.EnableColor()
	scheme.Error.EnableColor()

	return scheme
}

// PrintCommand writes the line announcing the command about to run.
func (s *ColorScheme) PrintCommand(w io.Writer, rendered string) {
	fmt.Fprintf(w, "%s %s\n", s.Label.Sprint("Executing command:"), s.Command.Sprint(rendered))
}

// PrintError writes an error diagnostic.
func (s *ColorScheme) PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", s.Error.Sprint("Error:"), err)
}
