package dom

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-timestamps"
)

const entriesPage = `<!DOCTYPE html>
<html><head><title>Index</title></head><body>
<table id="entries">
<tr><th>URL</th><th>Registered</th><th>Modified</th></tr>
<tr><td>https://example.org/fdp</td><td class="timestamp">2023-06-15T14:30:00Z</td><td class="timestamp other">not-a-date</td></tr>
<tr><td>2023-06-15T14:30:00Z</td><td class="timestamp"><b>2024-01-02</b>T03:04:05Z</td><td class="timestamp">  </td></tr>
</table>
<span class="timestamp">2023-06-15T14:30:00Z</span>
</body></html>`

func newLocalizer(t *testing.T) *timestamps.Localizer {
	t.Helper()
	l, err := timestamps.New(timestamps.WithLocation(time.UTC))
	require.NoError(t, err)
	return l
}

func TestDocumentElementText(t *testing.T) {
	doc, err := Parse(strings.NewReader(entriesPage))
	require.NoError(t, err)

	cells := doc.QueryAll(MustParseSelector(DefaultSelector))
	require.Len(t, cells, 4)

	assert.Equal(t, "2023-06-15T14:30:00Z", cells[0].Text())
	assert.Equal(t, "not-a-date", cells[1].Text())
	assert.Equal(t, "2024-01-02T03:04:05Z", cells[2].Text())
	assert.Equal(t, "  ", cells[3].Text())
	assert.Equal(t, "td", cells[0].Node().Data)
}

func TestElementSetTextReplacesChildren(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<table><tr><td class="timestamp"><b>x</b>y<i>z</i></td></tr></table>`))
	require.NoError(t, err)

	cells := doc.QueryAll(MustParseSelector(DefaultSelector))
	require.Len(t, cells, 1)

	cells[0].SetText("a < b")
	assert.Equal(t, "a < b", cells[0].Text())

	var out bytes.Buffer
	require.NoError(t, doc.Render(&out))
	assert.Contains(t, out.String(), `<td class="timestamp">a &lt; b</td>`)
}

func TestHostProcessLocalizesOnlyTimestampCells(t *testing.T) {
	host := NewHost(LocalizeTimestamps(newLocalizer(t), MustParseSelector(DefaultSelector)))

	var out bytes.Buffer
	require.NoError(t, host.Process(strings.NewReader(entriesPage), &out))
	rendered := out.String()

	assert.Contains(t, rendered, `<td class="timestamp">15/06/2023, 14:30:00</td>`)
	assert.Contains(t, rendered, `<td class="timestamp other">Invalid Date</td>`)
	assert.Contains(t, rendered, `<td class="timestamp">02/01/2024, 03:04:05</td>`)
	assert.Contains(t, rendered, `<td class="timestamp">Invalid Date</td>`)

	// untouched elements
	assert.Contains(t, rendered, `<td>https://example.org/fdp</td>`)
	assert.Contains(t, rendered, `<td>2023-06-15T14:30:00Z</td>`)
	assert.Contains(t, rendered, `<span class="timestamp">2023-06-15T14:30:00Z</span>`)
	assert.Contains(t, rendered, `<th>Registered</th>`)
}

func TestHostWithoutTimestampCells(t *testing.T) {
	const page = `<html><head></head><body><p>nothing here</p></body></html>`

	original, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, original.Render(&want))

	host := NewHost(LocalizeTimestamps(newLocalizer(t), MustParseSelector(DefaultSelector)))
	var got bytes.Buffer
	require.NoError(t, host.Process(strings.NewReader(page), &got))

	assert.Equal(t, want.String(), got.String())
}

func TestHostRunsHandlersOnceInOrder(t *testing.T) {
	var calls []string
	host := NewHost(
		func(*Document) { calls = append(calls, "first") },
		nil,
	)
	host.OnReady(func(*Document) { calls = append(calls, "second") })
	host.OnReady(nil)

	_, err := host.Load(strings.NewReader(entriesPage))
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestLocalizeDocumentCount(t *testing.T) {
	doc, err := Parse(strings.NewReader(entriesPage))
	require.NoError(t, err)

	l := newLocalizer(t)
	assert.Equal(t, 4, LocalizeDocument(doc, l, MustParseSelector(DefaultSelector)))
	assert.Equal(t, 0, LocalizeDocument(doc, l, MustParseSelector("td.missing")))
}

func TestNilDocumentRender(t *testing.T) {
	var doc *Document
	assert.ErrorIs(t, doc.Render(&bytes.Buffer{}), ErrNilDocument)
	assert.Nil(t, doc.QueryAll(MustParseSelector("td")))
}
