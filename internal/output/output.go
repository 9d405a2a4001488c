// Package output provides styled terminal output for the wren CLI.
//
// Every user-facing message goes through this package so the tool has one
// consistent voice. Functions use lipgloss for styling but abstract away
// the details from callers.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a success message in green.
// Use this for completed operations.
//
// Example:
//
//	output.Success("All used packages are declared")
func Success(msg string) {
	fmt.Println(successStyle.Render("✔ " + msg))
}

// Error prints an error message in red.
// Use this for failures that need user attention.
//
// Example:
//
//	output.Error("DESCRIPTION is not readable: permission denied")
func Error(msg string) {
	fmt.Println(errorStyle.Render("✖ " + msg))
}

// Warning prints a warning message in yellow.
// Use this for degraded-but-recoverable conditions that must not stop
// the run.
//
// Example:
//
//	output.Warning("renv.lock is not valid JSON; locked set unavailable")
func Warning(msg string) {
	fmt.Println(warnStyle.Render("⚠ " + msg))
}

// Info prints an informational message in cyan.
// Use this for status updates or explanations.
//
// Example:
//
//	output.Info("To fix:")
func Info(msg string) {
	fmt.Println(infoStyle.Render("ℹ " + msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("run: wren fix")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message only if verbose mode is enabled.
//
// Example:
//
//	output.Verbose("scanning R/model.R")
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("· " + msg))
	}
}
