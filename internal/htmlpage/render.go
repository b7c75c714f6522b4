// Package htmlpage serializes resolved asset bundles into HTML for a
// standalone document page. The resolver only guarantees an ordered list of
// references; this package turns those into script/link/style tags and
// embeds them in a base template.
package htmlpage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/gobokeh/gobokeh/internal/resources"
)

//go:embed base.html
var baseHTML string

var baseTemplate = template.Must(template.New("base").Parse(baseHTML))

// PageData holds data for rendering the base HTML template.
type PageData struct {
	Title   string
	Head    template.HTML
	Content template.HTML
}

// ScriptTags renders a bundle's script references as HTML tags, preserving
// bundle order.
func ScriptTags(bundle *resources.Bundle) template.HTML {
	var buf bytes.Buffer
	for _, ref := range bundle.Scripts {
		switch ref.Kind {
		case resources.RefInline:
			fmt.Fprintf(&buf, "<script type=\"text/javascript\">\n%s\n</script>\n", ref.Content)
		default:
			fmt.Fprintf(&buf, "<script type=\"text/javascript\" src=%q></script>\n",
				template.HTMLEscapeString(ref.Content))
		}
	}
	return template.HTML(buf.String())
}

// StyleTags renders a bundle's style references as HTML tags, preserving
// bundle order.
func StyleTags(bundle *resources.Bundle) template.HTML {
	var buf bytes.Buffer
	for _, ref := range bundle.Styles {
		switch ref.Kind {
		case resources.RefInline:
			fmt.Fprintf(&buf, "<style>\n%s\n</style>\n", ref.Content)
		default:
			fmt.Fprintf(&buf, "<link rel=\"stylesheet\" type=\"text/css\" href=%q>\n",
				template.HTMLEscapeString(ref.Content))
		}
	}
	return template.HTML(buf.String())
}

// HeadTags renders the full head section for a bundle: stylesheets first so
// the page styles before the runtime scripts execute.
func HeadTags(bundle *resources.Bundle) template.HTML {
	return StyleTags(bundle) + ScriptTags(bundle)
}

// Render produces a complete HTML document from the base template.
func Render(data PageData) (string, error) {
	var buf bytes.Buffer
	if err := baseTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Payload marshals v as JSON for embedding in a page, pretty-printed when
// the mode carries the development indent.
func Payload(mode resources.Mode, v any) (template.JS, error) {
	var data []byte
	var err error

	if mode.Indent > 0 {
		data, err = json.MarshalIndent(v, "", strings.Repeat(" ", mode.Indent))
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	return template.JS(data), nil
}
