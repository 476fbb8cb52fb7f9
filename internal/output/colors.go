package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	BenchName *color.Color
	Number    *color.Color
	Unit      *color.Color
	Heading   *color.Color
	Improved  *color.Color
	Regressed *color.Color
	Success   *color.Color
	Error     *color.Color
	Highlight *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		BenchName: color.New(color.FgCyan, color.Bold),
		Number:    color.New(color.FgWhite),
		Unit:      color.New(color.FgYellow),
		Heading:   color.New(color.FgBlue, color.Bold),
		Improved:  color.New(color.FgGreen),
		Regressed: color.New(color.FgRed, color.Bold),
		Success:   color.New(color.FgGreen),
		Error:     color.New(color.FgRed),
		Highlight: color.New(color.FgMagenta, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.BenchName.DisableColor()
	scheme.Number.DisableColor()
	scheme.Unit.DisableColor()
	scheme.Heading.DisableColor()
	scheme.Improved.DisableColor()
	scheme.Regressed.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Highlight.DisableColor()

	return scheme
}

// IsTerminal reports whether the file is attached to a terminal; color
// output is suppressed automatically when it is not.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}
