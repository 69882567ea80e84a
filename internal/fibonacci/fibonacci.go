// Package fibonacci implements the shifted, fixed-width Fibonacci exercise.
//
// The positions follow the exercise rather than the textbook sequence:
//
//	position:  0  1  2  3  4  5  6 ...
//	value:     1  0  1  2  3  5  8 ...
//
// Positions 0 and 1 are special-cased; from position 2 onward the value is
// the textbook F(pos).
package fibonacci

import "fmt"

// MaxPosition is the largest position whose value fits in a uint32.
// F(47) = 2971215073; F(48) = 4807526976 exceeds 2^32-1.
const MaxPosition uint32 = 47

// OverflowError reports a position whose value does not fit in 32 bits.
type OverflowError struct {
	Position uint32
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("fibonacci(%d) overflows uint32 (largest supported position is %d)", e.Position, MaxPosition)
}

// Fibonacci returns the value at pos. Values past MaxPosition wrap modulo
// 2^32, matching the fixed-width accumulators; use Checked to reject them.
func Fibonacci(pos uint32) uint32 {
	switch pos {
	case 0:
		return 1
	case 1:
		return 0
	}

	// pos-1 steps; counting up to pos itself would never end at MaxUint32.
	var a, b uint32 = 0, 1
	for i := uint32(1); i < pos; i++ {
		c := a + b
		a = b
		b = c
	}
	return b
}

// Checked is Fibonacci with overflow detection.
func Checked(pos uint32) (uint32, error) {
	if pos > MaxPosition {
		return 0, OverflowError{Position: pos}
	}
	return Fibonacci(pos), nil
}

// Sequence returns the values for positions 0 through count-1. count is
// capped at MaxPosition+1 so that every returned value is exact.
func Sequence(count uint32) []uint32 {
	if count > MaxPosition+1 {
		count = MaxPosition + 1
	}
	out := make([]uint32, 0, count)
	for pos := uint32(0); pos < count; pos++ {
		out = append(out, Fibonacci(pos))
	}
	return out
}
