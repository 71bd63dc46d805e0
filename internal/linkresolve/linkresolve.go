// Package linkresolve builds document link resolvers from URL templates.
package linkresolve

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"github.com/dastrobu/structured-text-mcp/internal/richtext"
)

// DefaultTemplate links a document under its type, preferring the UID.
const DefaultTemplate = `/{{ .Type }}/{{ .UID | default .ID }}`

// DefaultBrokenURL is where links to missing documents point.
const DefaultBrokenURL = "#broken"

// Template resolves document links by expanding a text/template against the
// linked document. The sprig function set is available to the template.
type Template struct {
	tmpl      *template.Template
	brokenURL string
}

// Parse compiles a link template. An empty text selects DefaultTemplate and
// an empty brokenURL selects DefaultBrokenURL.
func Parse(text, brokenURL string) (*Template, error) {
	if strings.TrimSpace(text) == "" {
		text = DefaultTemplate
	}
	if brokenURL == "" {
		brokenURL = DefaultBrokenURL
	}

	tmpl, err := template.New("link").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse link template: %w", err)
	}
	return &Template{tmpl: tmpl, brokenURL: brokenURL}, nil
}

// Expand returns the URL of doc, or the broken URL for a broken link.
func (t *Template) Expand(doc richtext.DocumentRef, broken bool) (string, error) {
	if broken {
		return t.brokenURL, nil
	}

	buf := new(bytes.Buffer)
	if err := t.tmpl.Execute(buf, doc); err != nil {
		return "", fmt.Errorf("unable to expand link template for document %q: %w", doc.ID, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// LinkResolver implements richtext.LinkContext. A template that fails to
// expand yields an empty URL, which the renderer treats as unresolvable.
func (t *Template) LinkResolver(doc richtext.DocumentRef, broken bool) string {
	url, err := t.Expand(doc, broken)
	if err != nil {
		return ""
	}
	return url
}

// Resolver returns the template as a richtext.LinkResolver.
func (t *Template) Resolver() richtext.LinkResolver {
	return richtext.ContextResolver(t)
}
