// Package input provides interactive terminal prompts for the wren CLI.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Confirm asks the user a yes/no question.
// Returns true if the user answers yes (y/Y/yes/YES), false otherwise.
// If defaultYes is true, pressing Enter returns true.
//
// Example:
//
//	if input.Confirm("Add 2 packages to Imports?", true) {
//	    // user said yes (or pressed Enter)
//	}
//	// Displays: Add 2 packages to Imports? [Y/n]: _
func Confirm(message string, defaultYes bool) bool {
	reader := bufio.NewReader(os.Stdin)

	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Print(promptStyle.Render(message) + " " + hintStyle.Render(hint) + ": ")

	answer, err := reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return defaultYes
	}

	return answer == "y" || answer == "yes"
}
