// Package temperature implements the Fahrenheit-to-Celsius console exercise.
package temperature

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/drills/internal/errors"
)

const (
	// Prompt is printed before the single line of input is read.
	Prompt = "please enter the fahrenheit value you'd like converted:"

	// DiagnosticNotANumber is the fixed message reported for unparsable input.
	DiagnosticNotANumber = "enter a number"
	// DiagnosticReadFailed is the fixed message reported when no line could be read.
	DiagnosticReadFailed = "failed to read input"
)

// Conversion is the outcome of one successful conversion.
type Conversion struct {
	Fahrenheit float64
	Celsius    float64
}

// ToCelsius applies C = (F - 32) * 5 / 9.
func ToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

// ParseFahrenheit parses one line of console input as a decimal number.
// Surrounding whitespace, including the trailing newline, is ignored.
func ParseFahrenheit(line string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, apperrors.ValidationError{Field: "fahrenheit", Message: DiagnosticNotANumber, Cause: err}
	}
	return value, nil
}

// FormatValue renders a value with the shortest representation that
// round-trips, so 212 prints as "212" and 37.5 as "37.5".
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Convert parses line and returns the conversion without performing I/O.
func Convert(line string) (Conversion, error) {
	f, err := ParseFahrenheit(line)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{Fahrenheit: f, Celsius: ToCelsius(f)}, nil
}

// Converter runs the interactive exercise: prompt, read one line, print the
// parsed value and its Celsius equivalent.
type Converter struct {
	// ShowPrompt controls whether Prompt is printed before reading.
	ShowPrompt bool
}

// Run reads exactly one line from in and writes the result to out. Any
// failure is returned to the caller, which is expected to terminate; Run
// never retries.
func (c Converter) Run(ctx context.Context, in io.Reader, out io.Writer) (Conversion, error) {
	if c.ShowPrompt {
		fmt.Fprintln(out, Prompt)
	}

	line, err := readLine(ctx, in)
	if err != nil {
		return Conversion{}, err
	}
	return c.Report(line, out)
}

// Report converts an already-read line and prints the two result lines.
func (Converter) Report(line string, out io.Writer) (Conversion, error) {
	conv, err := Convert(line)
	if err != nil {
		return Conversion{}, err
	}
	fmt.Fprintf(out, "you entered %s\n", FormatValue(conv.Fahrenheit))
	fmt.Fprintf(out, "the celsius equivalent is: %s\n", FormatValue(conv.Celsius))
	return conv, nil
}

// readLine reads a single line. A final line without a trailing newline is
// accepted; an empty stream is not.
func readLine(ctx context.Context, in io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return "", apperrors.ValidationError{Field: "stdin", Message: DiagnosticReadFailed, Cause: err}
	}
	return line, nil
}
