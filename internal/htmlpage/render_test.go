package htmlpage

import (
	"strings"
	"testing"

	"github.com/gobokeh/gobokeh/internal/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle() *resources.Bundle {
	return &resources.Bundle{
		Scripts: []resources.Ref{
			{Kind: resources.RefURL, Content: "https://cdn.example.org/bokeh.min.js"},
			{Kind: resources.RefInline, Content: `Bokeh.set_log_level("info");`},
		},
		Styles: []resources.Ref{
			{Kind: resources.RefURL, Content: "https://cdn.example.org/bokeh.min.css"},
		},
	}
}

func TestScriptTags(t *testing.T) {
	tags := string(ScriptTags(testBundle()))

	assert.Contains(t, tags, `src="https://cdn.example.org/bokeh.min.js"`)
	assert.Contains(t, tags, `Bokeh.set_log_level("info");`)

	// Order must follow the bundle: URL reference before the inline snippet.
	srcIdx := strings.Index(tags, "src=")
	inlineIdx := strings.Index(tags, "set_log_level")
	assert.Less(t, srcIdx, inlineIdx)
}

func TestStyleTags(t *testing.T) {
	tags := string(StyleTags(testBundle()))
	assert.Contains(t, tags, `<link rel="stylesheet" type="text/css" href="https://cdn.example.org/bokeh.min.css">`)

	inline := &resources.Bundle{
		Styles: []resources.Ref{{Kind: resources.RefInline, Content: ".bk-root{}"}},
	}
	assert.Contains(t, string(StyleTags(inline)), "<style>\n.bk-root{}\n</style>")
}

func TestHeadTags_StylesBeforeScripts(t *testing.T) {
	head := string(HeadTags(testBundle()))
	assert.Less(t, strings.Index(head, "<link"), strings.Index(head, "<script"))
}

func TestRender(t *testing.T) {
	page, err := Render(PageData{
		Title: "test document",
		Head:  HeadTags(testBundle()),
	})
	require.NoError(t, err)

	assert.Contains(t, page, "<title>test document</title>")
	assert.Contains(t, page, "bokeh.min.js")
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
}

func TestRender_EscapesTitle(t *testing.T) {
	page, err := Render(PageData{Title: "<script>alert(1)</script>"})
	require.NoError(t, err)
	assert.NotContains(t, page, "<script>alert(1)</script>")
}

func TestPayload(t *testing.T) {
	payload := map[string]int{"a": 1}

	prod, err := Payload(resources.Default(), payload)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(prod))

	devMode, err := resources.FromString("cdn-dev")
	require.NoError(t, err)

	dev, err := Payload(devMode, payload)
	require.NoError(t, err)
	assert.Contains(t, string(dev), "\n")
	assert.Contains(t, string(dev), `  "a": 1`)
}
