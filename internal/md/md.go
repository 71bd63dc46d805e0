package md

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)
}

// Parse parses markdown source into a goldmark AST with the GFM extensions
// enabled. Segments of the returned nodes point into source.
func Parse(source []byte) ast.Node {
	return newMarkdown().Parser().Parse(text.NewReader(source))
}
