package cli

import "github.com/fatih/color"

var (
	success = color.New(color.FgGreen).SprintFunc()
	failure = color.New(color.FgRed).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
)

const (
	symbolOK   = "✓"
	symbolFail = "✗"
)

// disableColors turns off ANSI output for every color function.
func disableColors() {
	color.NoColor = true
}
