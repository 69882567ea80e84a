// Package cli provides the console presentation layer: result display,
// pacing with a terminal spinner, and the interactive REPL session.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/drills/internal/basics"
	"github.com/agbru/drills/internal/carol"
	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/fibonacci"
	"github.com/agbru/drills/internal/temperature"
	"github.com/agbru/drills/internal/ui"
)

// RunObserver is notified after every exercise the REPL runs.
type RunObserver func(exercise string, d time.Duration, err error)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Quiet hides the banner and command list on startup.
	Quiet bool
	// OnRun, when set, receives every completed exercise.
	OnRun RunObserver
}

// REPL represents an interactive drills session.
type REPL struct {
	config REPLConfig
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance reading stdin and writing stdout.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached. Read errors other than EOF are returned.
func (r *REPL) Start() error {
	if !r.config.Quiet {
		r.printBanner()
		r.printHelp()
		fmt.Fprintln(r.out)
	}

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"drills> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && input != "") {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return nil
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sdrills - Interactive Mode%s            %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stemp <F>%s       - Convert Fahrenheit to Celsius\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfib <n>%s        - Fibonacci value at position n (0-%d)\n", ui.ColorYellow(), ui.ColorReset(), fibonacci.MaxPosition)
	fmt.Fprintf(r.out, "  %sseq <count>%s    - First count fibonacci values (1-%d)\n", ui.ColorYellow(), ui.ColorReset(), fibonacci.MaxPosition+1)
	fmt.Fprintf(r.out, "  %scarol [day]%s    - Print the carol, or a single day (1-%d)\n", ui.ColorYellow(), ui.ColorReset(), carol.NumDays)
	fmt.Fprintf(r.out, "  %splusone <x>%s    - Print x + 1\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sdemo%s           - Run the function demonstrations\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s    - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "temp", "t":
		r.run("temp", func() error { return r.cmdTemp(args) })
	case "fib", "f":
		r.run("fib", func() error { return r.cmdFib(args) })
	case "seq", "s":
		r.run("fib", func() error { return r.cmdSeq(args) })
	case "carol", "c":
		r.run("carol", func() error { return r.cmdCarol(args) })
	case "plusone", "p":
		r.run("plusone", func() error { return r.cmdPlusOne(args) })
	case "demo", "d":
		r.run("demo", func() error {
			basics.RunAll(r.out)
			return nil
		})
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// A bare number is a quick Fibonacci lookup.
		if _, err := strconv.ParseUint(cmd, 10, 32); err == nil {
			r.run("fib", func() error { return r.cmdFib([]string{cmd}) })
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// run executes one exercise, reports its error inline and notifies OnRun.
func (r *REPL) run(exercise string, fn func() error) {
	start := time.Now()
	err := fn()
	if err != nil {
		DisplayError(r.out, err)
	}
	if r.config.OnRun != nil {
		r.config.OnRun(exercise, time.Since(start), err)
	}
}

func (r *REPL) cmdTemp(args []string) error {
	if len(args) != 1 {
		return usageError("temp <fahrenheit>")
	}
	_, err := temperature.Converter{}.Report(args[0], r.out)
	return err
}

func (r *REPL) cmdFib(args []string) error {
	if len(args) != 1 {
		return usageError("fib <position>")
	}
	pos, err := ParsePosition(args[0])
	if err != nil {
		return err
	}
	value, err := fibonacci.Checked(pos)
	if err != nil {
		return err
	}
	DisplayFibonacci(r.out, pos, value)
	return nil
}

func (r *REPL) cmdSeq(args []string) error {
	if len(args) != 1 {
		return usageError("seq <count>")
	}
	count, err := ParsePosition(args[0])
	if err != nil {
		return err
	}
	if count > fibonacci.MaxPosition+1 {
		return apperrors.CalculationError{Cause: fibonacci.OverflowError{Position: count - 1}}
	}
	for pos, value := range fibonacci.Sequence(count) {
		DisplayFibonacci(r.out, uint32(pos), value)
	}
	return nil
}

func (r *REPL) cmdCarol(args []string) error {
	switch len(args) {
	case 0:
		return carol.Print(r.out)
	case 1:
		day, err := ParseDay(args[0])
		if err != nil {
			return err
		}
		return carol.PrintVerse(r.out, day-1)
	default:
		return usageError("carol [day]")
	}
}

func (r *REPL) cmdPlusOne(args []string) error {
	if len(args) != 1 {
		return usageError("plusone <x>")
	}
	x, err := ParseInt32(args[0])
	if err != nil {
		return err
	}
	basics.PrintPlusOne(r.out, x)
	return nil
}
