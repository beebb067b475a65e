package dom

import (
	"io"

	"github.com/goliatone/go-timestamps"
)

// ReadyFunc runs once a document is fully parsed and safe to mutate.
type ReadyFunc func(doc *Document)

// Host parses documents and fires ready handlers in registration order,
// exactly once per document, before rendering.
type Host struct {
	handlers []ReadyFunc
}

func NewHost(handlers ...ReadyFunc) *Host {
	h := &Host{}
	for _, fn := range handlers {
		h.OnReady(fn)
	}
	return h
}

// OnReady registers fn for every document processed afterwards.
func (h *Host) OnReady(fn ReadyFunc) {
	if fn == nil {
		return
	}
	h.handlers = append(h.handlers, fn)
}

// Load parses r and runs the ready handlers against the result.
func (h *Host) Load(r io.Reader) (*Document, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	for _, fn := range h.handlers {
		fn(doc)
	}
	return doc, nil
}

// Process loads r and renders the mutated document to w.
func (h *Host) Process(r io.Reader, w io.Writer) error {
	doc, err := h.Load(r)
	if err != nil {
		return err
	}
	return doc.Render(w)
}

// LocalizeDocument rewrites every element matching sel and reports how many
// cells were touched.
func LocalizeDocument(doc *Document, l *timestamps.Localizer, sel Selector) int {
	elements := doc.QueryAll(sel)
	if len(elements) == 0 {
		return 0
	}

	cells := make([]timestamps.Cell, len(elements))
	for i, el := range elements {
		cells[i] = el
	}
	l.Localize(cells)
	return len(cells)
}

// LocalizeTimestamps returns the ready handler binding l to the document.
func LocalizeTimestamps(l *timestamps.Localizer, sel Selector) ReadyFunc {
	return func(doc *Document) {
		LocalizeDocument(doc, l, sel)
	}
}
