package timestamps

import (
	"errors"
	"time"
)

// Cell is a handle on one timestamp element of a rendered document.
type Cell interface {
	Text() string
	SetText(text string)
}

// Localizer rewrites timestamp text into the TargetLocale display format.
// It holds no per-document state and is safe for concurrent use.
type Localizer struct {
	rules  *FormattingRules
	loc    *time.Location
	parser Parser
	hooks  []LocalizeHook
}

// New builds a Localizer from options.
func New(opts ...Option) (*Localizer, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildLocalizer()
}

// Location reports the zone timestamps are rendered in.
func (l *Localizer) Location() *time.Location {
	return l.loc
}

// Localize replaces the text of every cell, in order. A cell whose text does
// not parse gets InvalidDate; remaining cells are still processed.
func (l *Localizer) Localize(cells []Cell) {
	for i, cell := range cells {
		if cell == nil {
			continue
		}
		cell.SetText(l.localize(i, cell.Text()))
	}
}

// LocalizeTexts is the pure form of Localize: one output per input, same order.
func (l *Localizer) LocalizeTexts(texts []string) []string {
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = l.localize(i, text)
	}
	return out
}

// LocalizeText converts a single timestamp string.
func (l *Localizer) LocalizeText(text string) string {
	return l.localize(0, text)
}

func (l *Localizer) localize(index int, text string) string {
	if len(l.hooks) == 0 {
		t, err := l.parser.Parse(text, l.loc)
		return l.format(t, err)
	}

	ctx := &HookContext{Index: index, Original: text}
	for _, hook := range l.hooks {
		hook.BeforeLocalize(ctx)
	}

	t, err := l.parser.Parse(ctx.Original, l.loc)
	ctx.Time = t
	ctx.Error = err
	ctx.Valid = err == nil
	ctx.Result = l.format(t, err)

	for _, hook := range l.hooks {
		hook.AfterLocalize(ctx)
	}

	return ctx.Result
}

func (l *Localizer) format(t time.Time, err error) string {
	if err != nil {
		return InvalidDate
	}
	return l.rules.render(t.In(l.loc))
}

// IsUnparseable reports whether err came from text that is not a date.
func IsUnparseable(err error) bool {
	return errors.Is(err, ErrUnparseable) || errors.Is(err, ErrEmptyText)
}
