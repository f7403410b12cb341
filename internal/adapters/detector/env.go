// Package detector chooses between the interactive explorer and linear output.
package detector

import (
	"io"
	"os"

	"go.trai.ch/atlas/internal/ui/output"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive explorer.
	ModeTUI
	// ModeLinear forces line-oriented output.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment inspects stdout and the CI variables.
func DetectEnvironment() OutputMode {
	return Detect(os.Stdout)
}

// Detect returns ModeTUI only when w is a terminal outside CI and TERM is not dumb.
func Detect(w io.Writer) OutputMode {
	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if isCI || os.Getenv("TERM") == "dumb" || !output.IsTerminal(w) {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's --output flag to auto-detection.
// userFlag should be one of: "auto", "tui", "linear", "ci", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
