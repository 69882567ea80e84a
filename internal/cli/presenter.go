// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.

package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/format"
	"github.com/agbru/drills/internal/ui"
)

// FormatFibonacci renders a position/value pair the way every surface shows it.
func FormatFibonacci(pos, value uint32) string {
	return fmt.Sprintf("fibonacci(%d) = %d", pos, value)
}

// DisplayFibonacci writes FormatFibonacci followed by a newline.
func DisplayFibonacci(out io.Writer, pos, value uint32) {
	fmt.Fprintln(out, FormatFibonacci(pos, value))
}

// DisplayError writes the fixed, user-facing diagnostic for err. Color is
// only used when out is a terminal.
func DisplayError(out io.Writer, err error) {
	if !ui.IsTerminal(out) {
		fmt.Fprintf(out, "Error: %s\n", apperrors.Diagnostic(err))
		return
	}
	fmt.Fprintf(out, "%sError: %s%s\n", ui.ColorRed(), apperrors.Diagnostic(err), ui.ColorReset())
}

// DisplayTiming writes how long an exercise took.
func DisplayTiming(out io.Writer, exercise string, d time.Duration) {
	fmt.Fprintf(out, "%s%s%s completed in %s%s%s\n",
		ui.ColorBlue(), exercise, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(d), ui.ColorReset())
}
