package timestamps

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Parser turns free-form timestamp text into a time.Time.
type Parser interface {
	Parse(text string, loc *time.Location) (time.Time, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(text string, loc *time.Location) (time.Time, error)

func (f ParserFunc) Parse(text string, loc *time.Location) (time.Time, error) {
	return f(text, loc)
}

// DateParser is the general-purpose parser used when no other is configured.
//
// Date-only ISO values ("2023-06-15") are read as UTC midnight; anything else
// without an explicit offset is read in loc. Ambiguous slash dates are month
// first.
type DateParser struct{}

const isoDateOnly = "2006-01-02"

func (DateParser) Parse(text string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, ErrEmptyText
	}
	if loc == nil {
		loc = time.Local
	}

	if len(trimmed) == len(isoDateOnly) {
		if t, err := time.Parse(isoDateOnly, trimmed); err == nil {
			return t, nil
		}
	}

	t, err := dateparse.ParseIn(trimmed, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnparseable, trimmed, err)
	}
	return t, nil
}

// Parse reads text with the default DateParser in the host zone.
func Parse(text string) (time.Time, error) {
	return DateParser{}.Parse(text, time.Local)
}
