package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// DefaultSelector matches table cells marked as timestamps.
const DefaultSelector = "td.timestamp"

// ErrInvalidSelector is returned for selectors outside the supported subset.
var ErrInvalidSelector = errors.New("dom: invalid selector")

// Selector is a single compound selector: tag, #id and .class parts.
// All set parts must match.
type Selector struct {
	Tag     string
	ID      string
	Classes []string
}

// ParseSelector parses "tag", ".class", "#id" and combinations such as
// "td.timestamp" or "td#created.timestamp.utc".
func ParseSelector(sel string) (Selector, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return Selector{}, fmt.Errorf("%w: empty", ErrInvalidSelector)
	}
	if strings.ContainsAny(sel, " \t\n>+~[],:*") {
		return Selector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, sel)
	}

	var s Selector
	rest := sel
	if idx := strings.IndexAny(rest, ".#"); idx != 0 {
		if idx < 0 {
			s.Tag = strings.ToLower(rest)
			return s, nil
		}
		s.Tag = strings.ToLower(rest[:idx])
		rest = rest[idx:]
	}

	for rest != "" {
		marker := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, ".#")
		if end < 0 {
			end = len(rest)
		}
		name := rest[:end]
		rest = rest[end:]
		if name == "" {
			return Selector{}, fmt.Errorf("%w: %q", ErrInvalidSelector, sel)
		}

		switch marker {
		case '#':
			if s.ID != "" {
				return Selector{}, fmt.Errorf("%w: %q has two ids", ErrInvalidSelector, sel)
			}
			s.ID = name
		case '.':
			s.Classes = append(s.Classes, name)
		}
	}

	return s, nil
}

// MustParseSelector is like ParseSelector but panics on error.
func MustParseSelector(sel string) Selector {
	s, err := ParseSelector(sel)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Selector) String() string {
	var b strings.Builder
	b.WriteString(s.Tag)
	if s.ID != "" {
		b.WriteString("#" + s.ID)
	}
	for _, class := range s.Classes {
		b.WriteString("." + class)
	}
	return b.String()
}

// Matches reports whether n is an element satisfying every part of s.
func (s Selector) Matches(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}

	if s.Tag != "" && n.Data != s.Tag {
		return false
	}

	if s.ID != "" && getAttr(n, "id") != s.ID {
		return false
	}

	if len(s.Classes) > 0 {
		classes := strings.Fields(getAttr(n, "class"))
		for _, want := range s.Classes {
			found := false
			for _, c := range classes {
				if c == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	return true
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
