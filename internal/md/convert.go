package md

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dastrobu/structured-text-mcp/internal/richtext"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

// Labels attached by the importer.
const (
	LabelBlockquote    = "blockquote"
	LabelCode          = "code"
	LabelStrikethrough = "strikethrough"
)

// ToBlocks converts markdown to structured text blocks.
//
// Headings, paragraphs, code blocks and list items map to their block kinds.
// Nested lists are flattened in document order, a paragraph holding nothing
// but an image (optionally linked) becomes an image block and blocks inside
// a blockquote carry the "blockquote" label. Thematic breaks, tables and raw
// HTML have no structured text form and are dropped.
func ToBlocks(source []byte) ([]richtext.Block, error) {
	root := Parse(source)
	c := &converter{source: source}
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		if err := c.convertBlock(node, ""); err != nil {
			return nil, fmt.Errorf("failed to convert markdown: %w", err)
		}
	}
	return c.blocks, nil
}

type converter struct {
	source []byte
	blocks []richtext.Block
}

func (c *converter) convertBlock(node ast.Node, label string) error {
	switch n := node.(type) {
	case *ast.Heading:
		return c.appendText(richtext.Kind(fmt.Sprintf("heading%d", min(max(n.Level, 1), 6))), n, label)

	case *ast.Paragraph, *ast.TextBlock:
		if img, link := soleImage(n); img != nil {
			return c.appendImage(img, link, label)
		}
		return c.appendText(richtext.KindParagraph, n, label)

	case *ast.CodeBlock, *ast.FencedCodeBlock:
		var buf bytes.Buffer
		for i := 0; i < n.Lines().Len(); i++ {
			line := n.Lines().At(i)
			buf.Write(line.Value(c.source))
		}
		c.blocks = append(c.blocks, richtext.Block{
			Kind:  richtext.KindPreformatted,
			Text:  strings.TrimSuffix(buf.String(), "\n"),
			Label: label,
		})
		return nil

	case *ast.Blockquote:
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if err := c.convertBlock(child, LabelBlockquote); err != nil {
				return err
			}
		}
		return nil

	case *ast.List:
		return c.convertList(n, label)
	}

	// thematic breaks, tables, raw HTML
	return nil
}

// convertList flattens a list and its nested lists into list item blocks
func (c *converter) convertList(node *ast.List, label string) error {
	kind := richtext.KindListItem
	if node.IsOrdered() {
		kind = richtext.KindOrderedListItem
	}

	for item := node.FirstChild(); item != nil; item = item.NextSibling() {
		if _, ok := item.(*ast.ListItem); !ok {
			continue
		}

		emitted := false
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			switch child.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				if !emitted {
					if err := c.appendText(kind, child, label); err != nil {
						return err
					}
					emitted = true
					continue
				}
			}
			if err := c.convertBlock(child, label); err != nil {
				return err
			}
		}
		if !emitted {
			// an empty bullet still counts as an item
			c.blocks = append(c.blocks, richtext.Block{Kind: kind, Label: label})
		}
	}
	return nil
}

func (c *converter) appendText(kind richtext.Kind, node ast.Node, label string) error {
	text, spans, err := c.inline(node)
	if err != nil {
		return err
	}
	c.blocks = append(c.blocks, richtext.Block{Kind: kind, Text: text, Spans: spans, Label: label})
	return nil
}

func (c *converter) appendImage(img *ast.Image, link *ast.Link, label string) error {
	alt, _, err := c.inline(img)
	if err != nil {
		return err
	}
	b := richtext.Block{
		Kind:  richtext.KindImage,
		URL:   string(img.Destination),
		Alt:   alt,
		Label: label,
	}
	if link != nil {
		b.LinkTo = &richtext.LinkTarget{Type: richtext.LinkTypeWeb, WebURL: string(link.Destination)}
	}
	c.blocks = append(c.blocks, b)
	return nil
}

// soleImage returns the image of a paragraph that consists of one image,
// either bare or as the only content of a link
func soleImage(node ast.Node) (*ast.Image, *ast.Link) {
	if node.ChildCount() != 1 {
		return nil, nil
	}
	switch n := node.FirstChild().(type) {
	case *ast.Image:
		return n, nil
	case *ast.Link:
		if n.ChildCount() == 1 {
			if img, ok := n.FirstChild().(*ast.Image); ok {
				return img, n
			}
		}
	}
	return nil, nil
}

// inline flattens the inline children of node into text and spans. Spans are
// listed in the order they open, enclosing spans before the spans they
// contain.
func (c *converter) inline(node ast.Node) (string, []richtext.Span, error) {
	var (
		sb    strings.Builder
		pos   int
		spans []richtext.Span
		open  []int
	)

	write := func(s string) {
		sb.WriteString(s)
		pos += richtext.UTF16Len(s)
	}
	openSpan := func(s richtext.Span) {
		s.Start = pos
		open = append(open, len(spans))
		spans = append(spans, s)
	}
	closeSpan := func() {
		spans[open[len(open)-1]].End = pos
		open = open[:len(open)-1]
	}
	// span markers open on entering and close on leaving
	mark := func(entering bool, s richtext.Span) {
		if entering {
			openSpan(s)
		} else {
			closeSpan()
		}
	}

	err := ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if n == node {
			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.Text:
			if entering {
				write(string(n.Segment.Value(c.source)))
				if n.HardLineBreak() {
					write("\n")
				} else if n.SoftLineBreak() {
					write(" ")
				}
			}

		case *ast.String:
			if entering {
				write(string(n.Value))
			}

		case *ast.Emphasis:
			kind := richtext.KindEmphasis
			if n.Level == 2 {
				kind = richtext.KindStrong
			}
			mark(entering, richtext.Span{Kind: kind})

		case *extast.Strikethrough:
			mark(entering, richtext.Span{Kind: richtext.KindLabel, Label: LabelStrikethrough})

		case *ast.CodeSpan:
			mark(entering, richtext.Span{Kind: richtext.KindLabel, Label: LabelCode})

		case *ast.Link:
			mark(entering, richtext.Span{Kind: richtext.KindHyperlink, Link: webLink(string(n.Destination))})

		case *ast.AutoLink:
			if entering {
				url := string(n.URL(c.source))
				openSpan(richtext.Span{Kind: richtext.KindHyperlink, Link: webLink(url)})
				write(string(n.Label(c.source)))
				closeSpan()
			}
			return ast.WalkSkipChildren, nil

		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to walk AST: %w", err)
	}

	return sb.String(), spans, nil
}

func webLink(url string) *richtext.LinkTarget {
	return &richtext.LinkTarget{Type: richtext.LinkTypeWeb, WebURL: url}
}
