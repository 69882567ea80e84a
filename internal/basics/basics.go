// Package basics holds the small language demonstrations: parameter passing,
// expression blocks, return values and the plus-one function.
package basics

import (
	"fmt"
	"io"
)

// PlusOne returns x + 1. Like the other demonstrations it works on 32-bit
// signed integers and wraps on overflow.
func PlusOne(x int32) int32 {
	return x + 1
}

// Five returns 5; it demonstrates a function whose body is a single value.
func Five() int32 {
	return 5
}

// BlockValue returns the value of a scoped block that binds x = 3 and
// yields x + 1.
func BlockValue() int32 {
	y := func() int32 {
		x := int32(3)
		return x + 1
	}()
	return y
}

// Hello prints the customary greeting.
func Hello(w io.Writer) {
	fmt.Fprintln(w, "Hello, world!")
}

// AnotherFunction prints the parameter it was called with.
func AnotherFunction(w io.Writer, x int32) {
	fmt.Fprintf(w, "The value of x is: %d\n", x)
}

// PrintLabeledMeasurement prints a value immediately followed by its unit label.
func PrintLabeledMeasurement(w io.Writer, value int32, unitLabel rune) {
	fmt.Fprintf(w, "the measurement is: %d%c\n", value, unitLabel)
}

// PrintPlusOne prints the plus-one demonstration for x.
func PrintPlusOne(w io.Writer, x int32) {
	fmt.Fprintf(w, "The value of x is: %d\n", PlusOne(x))
}

// Demo is one named demonstration.
type Demo struct {
	Name string
	Run  func(w io.Writer)
}

// Demos lists every demonstration in presentation order.
var Demos = []Demo{
	{Name: "hello", Run: Hello},
	{Name: "parameters", Run: func(w io.Writer) {
		AnotherFunction(w, 5)
		PrintLabeledMeasurement(w, 5, 'h')
	}},
	{Name: "expression-block", Run: func(w io.Writer) {
		fmt.Fprintf(w, "The value of y is: %d\n", BlockValue())
	}},
	{Name: "return-value", Run: func(w io.Writer) {
		AnotherFunction(w, Five())
	}},
	{Name: "plus-one", Run: func(w io.Writer) {
		PrintPlusOne(w, 5)
	}},
}

// RunAll runs every demonstration, each preceded by a "# name" heading.
func RunAll(w io.Writer) {
	for i, d := range Demos {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s\n", d.Name)
		d.Run(w)
	}
}
