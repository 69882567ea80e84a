// Package carol prints the cumulative verses of "The Twelve Days of Christmas".
package carol

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/drills/internal/errors"
)

// NumDays is the number of verses; both tables have exactly this many entries.
const NumDays = 12

// Separator is printed after every verse block.
const Separator = "---"

// Lyrics holds one gift line per day, indexed from the first day.
var Lyrics = [NumDays]string{
	"A partridge in a pear tree",
	"Two turtle doves, and",
	"Three french hens",
	"Four calling birds",
	"Five golden rings",
	"Six geese a-laying",
	"Seven swans a-swimming",
	"Eight maids a-milking",
	"Nine ladies dancing",
	"Ten lords a-leaping",
	"Eleven pipers piping",
	"Twelve drummers drumming",
}

// Days holds the ordinal label for each day, aligned with Lyrics.
var Days = [NumDays]string{
	"first", "second", "third", "fourth", "fifth", "sixth",
	"seventh", "eighth", "ninth", "tenth", "eleventh", "twelfth",
}

// Header returns the line announcing a day. day is 0-indexed.
func Header(day int) (string, error) {
	if err := checkDay(day); err != nil {
		return "", err
	}
	return fmt.Sprintf("on the %s day of christmas like a true hater >:) I gave em:", Days[day]), nil
}

// Verse returns the gift lines for a day, from Lyrics[day] down to Lyrics[0].
func Verse(day int) ([]string, error) {
	if err := checkDay(day); err != nil {
		return nil, err
	}
	lines := make([]string, 0, day+1)
	for j := day; j >= 0; j-- {
		lines = append(lines, Lyrics[j])
	}
	return lines, nil
}

// Block returns every line printed for a day: header, verse, separator.
func Block(day int) ([]string, error) {
	header, err := Header(day)
	if err != nil {
		return nil, err
	}
	verse, err := Verse(day)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(verse)+2)
	lines = append(lines, header)
	lines = append(lines, verse...)
	return append(lines, Separator), nil
}

// PrintVerse writes the block for one day.
func PrintVerse(w io.Writer, day int) error {
	lines, err := Block(day)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return apperrors.WrapError(err, "failed to print day %d", day+1)
		}
	}
	return nil
}

// Print writes all twelve blocks in order.
func Print(w io.Writer) error {
	for day := 0; day < NumDays; day++ {
		if err := PrintVerse(w, day); err != nil {
			return err
		}
	}
	return nil
}

func checkDay(day int) error {
	if day < 0 || day >= NumDays {
		return apperrors.ValidationError{
			Field:   "day",
			Message: fmt.Sprintf("must be between 1 and %d, got %d", NumDays, day+1),
		}
	}
	return nil
}
