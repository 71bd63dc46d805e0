package md

import (
	"testing"

	"github.com/dastrobu/structured-text-mcp/internal/richtext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark/ast"
)

func TestParse(t *testing.T) {
	root := Parse([]byte("# Heading\n\nText with ~~strike~~"))

	require.Equal(t, ast.KindDocument, root.Kind())
	require.Equal(t, 2, root.ChildCount())
	heading, ok := root.FirstChild().(*ast.Heading)
	require.True(t, ok)
	assert.Equal(t, 1, heading.Level)
	assert.Equal(t, ast.KindParagraph, root.LastChild().Kind())
}

func web(url string) *richtext.LinkTarget {
	return &richtext.LinkTarget{Type: richtext.LinkTypeWeb, WebURL: url}
}

func TestToBlocks(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []richtext.Block
	}{
		{
			name:     "headings",
			markdown: "# One\n\n### Three",
			want: []richtext.Block{
				{Kind: richtext.KindHeading1, Text: "One"},
				{Kind: richtext.KindHeading3, Text: "Three"},
			},
		},
		{
			name:     "bold and italic",
			markdown: "Some **bold** and *em*",
			want: []richtext.Block{{
				Kind: richtext.KindParagraph,
				Text: "Some bold and em",
				Spans: []richtext.Span{
					{Start: 5, End: 9, Kind: richtext.KindStrong},
					{Start: 14, End: 16, Kind: richtext.KindEmphasis},
				},
			}},
		},
		{
			name:     "link",
			markdown: "a [link](https://go.dev) b",
			want: []richtext.Block{{
				Kind:  richtext.KindParagraph,
				Text:  "a link b",
				Spans: []richtext.Span{{Start: 2, End: 6, Kind: richtext.KindHyperlink, Link: web("https://go.dev")}},
			}},
		},
		{
			name:     "link with emphasis inside",
			markdown: "[**go**](https://go.dev)",
			want: []richtext.Block{{
				Kind: richtext.KindParagraph,
				Text: "go",
				Spans: []richtext.Span{
					{Start: 0, End: 2, Kind: richtext.KindHyperlink, Link: web("https://go.dev")},
					{Start: 0, End: 2, Kind: richtext.KindStrong},
				},
			}},
		},
		{
			name:     "autolink",
			markdown: "<https://go.dev>",
			want: []richtext.Block{{
				Kind:  richtext.KindParagraph,
				Text:  "https://go.dev",
				Spans: []richtext.Span{{Start: 0, End: 14, Kind: richtext.KindHyperlink, Link: web("https://go.dev")}},
			}},
		},
		{
			name:     "code span",
			markdown: "Use `go test` now",
			want: []richtext.Block{{
				Kind:  richtext.KindParagraph,
				Text:  "Use go test now",
				Spans: []richtext.Span{{Start: 4, End: 11, Kind: richtext.KindLabel, Label: LabelCode}},
			}},
		},
		{
			name:     "strikethrough",
			markdown: "~~gone~~",
			want: []richtext.Block{{
				Kind:  richtext.KindParagraph,
				Text:  "gone",
				Spans: []richtext.Span{{Start: 0, End: 4, Kind: richtext.KindLabel, Label: LabelStrikethrough}},
			}},
		},
		{
			name:     "soft line break",
			markdown: "line one\nline two",
			want:     []richtext.Block{{Kind: richtext.KindParagraph, Text: "line one line two"}},
		},
		{
			name:     "offsets count UTF-16 units",
			markdown: "😀 **x**",
			want: []richtext.Block{{
				Kind:  richtext.KindParagraph,
				Text:  "😀 x",
				Spans: []richtext.Span{{Start: 3, End: 4, Kind: richtext.KindStrong}},
			}},
		},
		{
			name:     "fenced code",
			markdown: "```go\nfunc main() {}\n```",
			want:     []richtext.Block{{Kind: richtext.KindPreformatted, Text: "func main() {}"}},
		},
		{
			name:     "nested lists are flattened",
			markdown: "- one\n- two\n  - nested\n\n1. first",
			want: []richtext.Block{
				{Kind: richtext.KindListItem, Text: "one"},
				{Kind: richtext.KindListItem, Text: "two"},
				{Kind: richtext.KindListItem, Text: "nested"},
				{Kind: richtext.KindOrderedListItem, Text: "first"},
			},
		},
		{
			name:     "blockquote",
			markdown: "> quoted *text*",
			want: []richtext.Block{{
				Kind:  richtext.KindParagraph,
				Text:  "quoted text",
				Label: LabelBlockquote,
				Spans: []richtext.Span{{Start: 7, End: 11, Kind: richtext.KindEmphasis}},
			}},
		},
		{
			name:     "image",
			markdown: "![alt text](https://img/a.png)",
			want:     []richtext.Block{{Kind: richtext.KindImage, URL: "https://img/a.png", Alt: "alt text"}},
		},
		{
			name:     "linked image",
			markdown: "[![A](https://img/a.png)](https://example.com)",
			want: []richtext.Block{{
				Kind:   richtext.KindImage,
				URL:    "https://img/a.png",
				Alt:    "A",
				LinkTo: web("https://example.com"),
			}},
		},
		{
			name:     "image inside text keeps its alt text",
			markdown: "see ![pic](https://img/a.png) here",
			want:     []richtext.Block{{Kind: richtext.KindParagraph, Text: "see pic here"}},
		},
		{
			name:     "thematic break is dropped",
			markdown: "a\n\n---\n\nb",
			want: []richtext.Block{
				{Kind: richtext.KindParagraph, Text: "a"},
				{Kind: richtext.KindParagraph, Text: "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBlocks([]byte(tt.markdown))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBlocks_StrongEmphasis(t *testing.T) {
	got, err := ToBlocks([]byte("***both***"))
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "both", got[0].Text)
	assert.ElementsMatch(t, []richtext.Span{
		{Start: 0, End: 4, Kind: richtext.KindStrong},
		{Start: 0, End: 4, Kind: richtext.KindEmphasis},
	}, got[0].Spans)
}

func TestToBlocks_Empty(t *testing.T) {
	got, err := ToBlocks(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestToBlocks_RendersAsHTML(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "document",
			markdown: "# Title\n\nHello **world**\n\n- a\n- b\n",
			want:     "<h1>Title</h1><p>Hello <strong>world</strong></p><ul><li>a</li><li>b</li></ul>",
		},
		{
			name:     "code and link",
			markdown: "Run `make` or see [docs](https://go.dev/doc)",
			want:     `<p>Run <span class="code">make</span> or see <a href="https://go.dev/doc">docs</a></p>`,
		},
		{
			name:     "escaping",
			markdown: "```\na < b && c\n```",
			want:     "<pre>a &lt; b &amp;&amp; c</pre>",
		},
		{
			name:     "quote",
			markdown: "> wise words",
			want:     `<p class="blockquote">wise words</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := ToBlocks([]byte(tt.markdown))
			require.NoError(t, err)
			assert.Equal(t, tt.want, richtext.AsHTML(blocks, nil, nil))
		})
	}
}
