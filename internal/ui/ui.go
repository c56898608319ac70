// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/catboy1357/golove"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// ConnectionBadge returns a colored connection indicator.
func ConnectionBadge(connected bool) string {
	if connected {
		return Green("● Connected")
	}
	return Red("○ Disconnected")
}

// BatteryBadge colors a battery percentage by charge level.
func BatteryBadge(percent int) string {
	label := fmt.Sprintf("%d%%", percent)
	switch {
	case percent >= 50:
		return Green(label)
	case percent >= 20:
		return Yellow(label)
	default:
		return Red(label)
	}
}

// PrintToys prints a formatted toy list.
func PrintToys(toys []golove.Toy) {
	if len(toys) == 0 {
		fmt.Fprintln(Output, "No toys found.")
		return
	}
	for _, toy := range toys {
		fmt.Fprintf(Output, "%s %s\n", Bold(toy.DisplayName()), Dim(toy.ID))
		fmt.Fprintf(Output, "  %s  battery %s", ConnectionBadge(toy.Connected()), BatteryBadge(toy.Battery))
		if toy.Version != "" {
			fmt.Fprintf(Output, "  %s", Dim("fw "+toy.Version))
		}
		fmt.Fprintln(Output)
	}
}

// PrintNames prints one toy name per line.
func PrintNames(names []string) {
	if len(names) == 0 {
		fmt.Fprintln(Output, "No toys found.")
		return
	}
	for _, name := range names {
		fmt.Fprintln(Output, name)
	}
}

// PrintResult prints the app's reply code for a control command.
func PrintResult(code int, replyType string) {
	label := replyType
	if label == "" {
		label = "OK"
	}
	fmt.Fprintf(Output, "%s %s\n", Green(label), Dim(fmt.Sprintf("(%d)", code)))
}
