package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type GetParagraphInput struct {
	Content       string  `json:"content" jsonschema:"The rich text. Either structured text JSON (an array of blocks or a StructuredText field) or Markdown, see content_format." long:"content" description:"The rich text to search"`
	ContentFormat *string `json:"content_format,omitempty" jsonschema:"Content format: 'json' or 'markdown'. Default is 'json'." long:"content-format" description:"Content format: 'json' or 'markdown'. Default is 'json'."`
	Index         *int    `json:"index,omitempty" jsonschema:"Zero-based index of the paragraph among all paragraph blocks. Default is 0, the first paragraph." long:"index" description:"Zero-based index of the paragraph (default 0)"`
}

type GetParagraphOutput struct {
	Found     bool       `json:"found"`
	Index     int        `json:"index"`
	Paragraph *BlockView `json:"paragraph,omitempty"`
}

func RegisterGetParagraph(srv *mcp.Server, env *Env) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "get_paragraph",
			Description: "Returns the n-th paragraph block of rich text (zero-based, the first one by default) with its text and rendered HTML. Headings, list items and other blocks are not counted.",
			InputSchema: GenerateSchema[GetParagraphInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Get Paragraph",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		func(ctx context.Context, request *mcp.CallToolRequest, input GetParagraphInput) (*mcp.CallToolResult, any, error) {
			return HandleGetParagraph(ctx, request, input, env)
		},
	)
}

func HandleGetParagraph(ctx context.Context, request *mcp.CallToolRequest, input GetParagraphInput, env *Env) (*mcp.CallToolResult, any, error) {
	index := 0
	if input.Index != nil {
		index = *input.Index
	}
	if index < 0 {
		return nil, nil, fmt.Errorf("index must not be negative, got %d", index)
	}

	doc, err := LoadDocument(input.Content, input.ContentFormat, env.Log)
	if err != nil {
		return nil, nil, err
	}

	paragraph, ok := doc.Paragraph(index)
	if !ok {
		return nil, GetParagraphOutput{Index: index}, nil
	}
	view := env.blockView(paragraph)
	return nil, GetParagraphOutput{Found: true, Index: index, Paragraph: &view}, nil
}
