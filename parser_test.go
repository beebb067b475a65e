package timestamps

import (
	"errors"
	"testing"
	"time"
)

func TestDateParser(t *testing.T) {
	plusTwo := time.FixedZone("plus-two", 2*3600)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "rfc3339", input: "2023-06-15T14:30:00Z", expected: time.Date(2023, 6, 15, 14, 30, 0, 0, time.UTC)},
		{name: "offset", input: "2023-06-15T14:30:00-03:00", expected: time.Date(2023, 6, 15, 17, 30, 0, 0, time.UTC)},
		{name: "zone-less", input: "2023-06-15 14:30:00", expected: time.Date(2023, 6, 15, 12, 30, 0, 0, time.UTC)},
		{name: "date only", input: "2023-06-15", expected: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateParser{}.Parse(tt.input, plusTwo)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if !got.Equal(tt.expected) {
				t.Fatalf("Parse(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateParserErrors(t *testing.T) {
	if _, err := (DateParser{}).Parse("  ", time.UTC); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("blank err = %v", err)
	}
	if _, err := (DateParser{}).Parse("not-a-date", time.UTC); !errors.Is(err, ErrUnparseable) {
		t.Fatalf("garbage err = %v", err)
	}
}

func TestParseZonelessKeepsWallClock(t *testing.T) {
	got, err := Parse("2023-06-15 14:30:00")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Year() != 2023 || got.Month() != time.June || got.Hour() != 14 {
		t.Fatalf("Parse = %v", got)
	}
}
