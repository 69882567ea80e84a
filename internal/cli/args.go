package cli

import (
	"fmt"
	"strconv"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/carol"
)

// ParsePosition parses a non-negative Fibonacci position.
func ParsePosition(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, apperrors.ValidationError{Field: "position", Message: "enter a non-negative integer", Cause: err}
	}
	return uint32(v), nil
}

// ParseDay parses a 1-based carol day.
func ParseDay(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperrors.ValidationError{Field: "day", Message: "enter a day number", Cause: err}
	}
	if v < 1 || v > carol.NumDays {
		return 0, apperrors.ValidationError{Field: "day", Message: fmt.Sprintf("must be between 1 and %d", carol.NumDays)}
	}
	return v, nil
}

// ParseInt32 parses a signed 32-bit integer argument.
func ParseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, apperrors.ValidationError{Field: "x", Message: "enter a 32-bit integer", Cause: err}
	}
	return int32(v), nil
}

func usageError(usage string) error {
	return apperrors.ValidationError{Field: "arguments", Message: "usage: " + usage}
}
