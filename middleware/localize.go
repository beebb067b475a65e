package middleware

import (
	"bytes"
	"mime"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-timestamps"
	"github.com/goliatone/go-timestamps/dom"
)

type options struct {
	selector dom.Selector
	logger   zerolog.Logger
}

type Option func(*options)

// WithSelector changes which elements are treated as timestamp cells.
func WithSelector(sel dom.Selector) Option {
	return func(o *options) {
		o.selector = sel
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Localize rewrites timestamp cells in uncompressed text/html responses.
// Other responses, and pages without timestamp cells, are passed through
// byte for byte.
func Localize(l *timestamps.Localizer, opts ...Option) func(http.Handler) http.Handler {
	o := options{
		selector: dom.MustParseSelector(dom.DefaultSelector),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			capture := newResponseBuffer()
			next.ServeHTTP(capture, r)

			body := capture.body.Bytes()
			switch {
			case r.Method == http.MethodHead:
				// the GET body may be rewritten, so its length is unknown here
				if isHTMLResponse(capture.statusCode, capture.header, nil) {
					capture.header.Del("Content-Length")
				}
			case len(body) > 0 && isHTMLResponse(capture.statusCode, capture.header, body):
				if rewritten, n, ok := rewrite(body, l, o); ok && n > 0 {
					body = rewritten
					dropBodyHeaders(capture.header)
					o.logger.Debug().
						Str("path", r.URL.Path).
						Int("cells", n).
						Msg("localized timestamps")
				}
			}

			copyHeaders(w.Header(), capture.header)
			w.WriteHeader(capture.statusCode)
			if r.Method == http.MethodHead {
				return
			}
			if _, err := w.Write(body); err != nil {
				o.logger.Warn().Err(err).Str("path", r.URL.Path).Msg("write response")
			}
		})
	}
}

func rewrite(body []byte, l *timestamps.Localizer, o options) ([]byte, int, bool) {
	doc, err := dom.Parse(bytes.NewReader(body))
	if err != nil {
		o.logger.Warn().Err(err).Msg("parse html response, serving original")
		return nil, 0, false
	}

	n := dom.LocalizeDocument(doc, l, o.selector)
	if n == 0 {
		return nil, 0, true
	}

	var out bytes.Buffer
	out.Grow(len(body) + 64)
	if err := doc.Render(&out); err != nil {
		o.logger.Warn().Err(err).Msg("render html response, serving original")
		return nil, 0, false
	}
	return out.Bytes(), n, true
}

// dropBodyHeaders removes headers describing the original body bytes.
func dropBodyHeaders(header http.Header) {
	header.Del("Content-Length")
	header.Del("ETag")
	header.Del("Content-MD5")
}

// isHTMLResponse reports whether a response is a complete, uncompressed HTML
// document. Partial content and non-200 statuses are never rewritten.
func isHTMLResponse(status int, header http.Header, body []byte) bool {
	if status != http.StatusOK || header.Get("Content-Range") != "" {
		return false
	}
	if enc := header.Get("Content-Encoding"); enc != "" && enc != "identity" {
		return false
	}

	contentType := header.Get("Content-Type")
	if contentType == "" {
		if len(body) == 0 {
			return false
		}
		contentType = http.DetectContentType(body)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html"
}
