package report

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

var (
	successColorFG = pterm.FgLightGreen
	warnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG    = pterm.FgYellow
	errorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG   = pterm.FgRed
)

// PrintAll renders every accumulated error and warning to standard error.
// Errors print before warnings; within each group, report order is preserved.
func (h *Handler) PrintAll() {
	if h.HasErrors() {
		fmt.Fprintln(os.Stderr, errorStyleBG.Sprint("=== ERRORS ==="))
		for _, err := range h.errors {
			fmt.Fprintln(os.Stderr, err.Render("error", h.sourceLines))
		}
	}

	if h.HasWarnings() {
		fmt.Fprintln(os.Stderr, warnStyleBG.Sprint("=== WARNINGS ==="))
		for _, warning := range h.warnings {
			fmt.Fprintln(os.Stderr, warning.Render("warning", h.sourceLines))
		}
	}
}

// PrintSummary prints the closing compilation summary line.
func (h *Handler) PrintSummary() {
	if !h.HasErrors() && !h.HasWarnings() {
		fmt.Fprintln(os.Stderr, successColorFG.Sprint("Compilation successful - no errors or warnings"))
		return
	}

	summary := "Compilation finished with "

	if h.HasErrors() {
		summary += errorColorFG.Sprintf("%d error%s", h.ErrorCount(), plural(h.ErrorCount()))
	}

	if h.HasErrors() && h.HasWarnings() {
		summary += " and "
	}

	if h.HasWarnings() {
		summary += warnColorFG.Sprintf("%d warning%s", h.WarningCount(), plural(h.WarningCount()))
	}

	fmt.Fprintln(os.Stderr, summary)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}

	return "s"
}

// -----------------------------------------------------------------------------

// Fatal reports a fatal compiler error and exits the program.  These are
// conditions that make continuing impossible: unwritable output files, missing
// backend tools, or constructs the generator cannot express.
func Fatal(msg string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, errorStyleBG.Sprint("Fatal Error")+errorColorFG.Sprint(" "+fmt.Sprintf(msg, args...)))

	os.Exit(1)
}
