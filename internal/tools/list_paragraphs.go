package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ListParagraphsInput struct {
	Content       string  `json:"content" jsonschema:"The rich text. Either structured text JSON (an array of blocks or a StructuredText field) or Markdown, see content_format." long:"content" description:"The rich text to search"`
	ContentFormat *string `json:"content_format,omitempty" jsonschema:"Content format: 'json' or 'markdown'. Default is 'json'." long:"content-format" description:"Content format: 'json' or 'markdown'. Default is 'json'."`
}

type ListParagraphsOutput struct {
	Count      int         `json:"count"`
	Paragraphs []BlockView `json:"paragraphs"`
}

func RegisterListParagraphs(srv *mcp.Server, env *Env) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "list_paragraphs",
			Description: "Lists all paragraph blocks of rich text in order, each with its text and rendered HTML.",
			InputSchema: GenerateSchema[ListParagraphsInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "List Paragraphs",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		func(ctx context.Context, request *mcp.CallToolRequest, input ListParagraphsInput) (*mcp.CallToolResult, any, error) {
			return HandleListParagraphs(ctx, request, input, env)
		},
	)
}

func HandleListParagraphs(ctx context.Context, request *mcp.CallToolRequest, input ListParagraphsInput, env *Env) (*mcp.CallToolResult, any, error) {
	doc, err := LoadDocument(input.Content, input.ContentFormat, env.Log)
	if err != nil {
		return nil, nil, err
	}

	paragraphs := doc.Paragraphs()
	views := make([]BlockView, 0, len(paragraphs))
	for _, p := range paragraphs {
		views = append(views, env.blockView(p))
	}
	return nil, ListParagraphsOutput{Count: len(views), Paragraphs: views}, nil
}
