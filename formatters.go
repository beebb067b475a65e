package timestamps

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var defaultRulesProvider = NewFormattingRulesProvider(nil)

// FormatDateTime renders t using the built-in rules for locale.
// The zero time renders as InvalidDate.
func FormatDateTime(locale string, t time.Time) string {
	return defaultRulesProvider.Get(locale).FormatDateTime(t)
}

// FormatDateTime renders date and time joined by the rules separator.
func (r *FormattingRules) FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	return r.render(t)
}

func (r *FormattingRules) render(t time.Time) string {
	return r.expand(r.DatePattern, t) + r.Separator + r.expand(r.TimePattern, t)
}

func (r *FormattingRules) FormatDate(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	return r.expand(r.DatePattern, t)
}

func (r *FormattingRules) FormatTime(t time.Time) string {
	if t.IsZero() {
		return InvalidDate
	}
	return r.expand(r.TimePattern, t)
}

func (r *FormattingRules) expand(pattern string, t time.Time) string {
	var builder strings.Builder
	builder.Grow(len(pattern) + 8)

	for len(pattern) > 0 {
		open := strings.IndexByte(pattern, '{')
		if open < 0 {
			builder.WriteString(pattern)
			break
		}
		closing := strings.IndexByte(pattern[open:], '}')
		if closing < 0 {
			builder.WriteString(pattern)
			break
		}
		closing += open

		builder.WriteString(pattern[:open])
		token := pattern[open+1 : closing]
		if value, ok := r.token(token, t); ok {
			builder.WriteString(value)
		} else {
			builder.WriteString(pattern[open : closing+1])
		}
		pattern = pattern[closing+1:]
	}

	return builder.String()
}

func (r *FormattingRules) token(name string, t time.Time) (string, bool) {
	switch name {
	case "dd":
		return pad2(t.Day()), true
	case "d":
		return strconv.Itoa(t.Day()), true
	case "MM":
		return pad2(int(t.Month())), true
	case "M":
		return strconv.Itoa(int(t.Month())), true
	case "yyyy":
		return fmt.Sprintf("%04d", t.Year()), true
	case "HH":
		return pad2(t.Hour()), true
	case "H":
		return strconv.Itoa(t.Hour()), true
	case "hh":
		return pad2(hour12(t.Hour())), true
	case "h":
		return strconv.Itoa(hour12(t.Hour())), true
	case "mm":
		return pad2(t.Minute()), true
	case "ss":
		return pad2(t.Second()), true
	case "a":
		if t.Hour() < 12 {
			return r.AM, true
		}
		return r.PM, true
	default:
		return "", false
	}
}

func pad2(value int) string {
	if value < 10 && value >= 0 {
		return "0" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}

func hour12(hour int) int {
	hour %= 12
	if hour == 0 {
		return 12
	}
	return hour
}
