package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type GetFirstHeadingInput struct {
	Content       string  `json:"content" jsonschema:"The rich text. Either structured text JSON (an array of blocks or a StructuredText field) or Markdown, see content_format." long:"content" description:"The rich text to search"`
	ContentFormat *string `json:"content_format,omitempty" jsonschema:"Content format: 'json' or 'markdown'. Default is 'json'." long:"content-format" description:"Content format: 'json' or 'markdown'. Default is 'json'."`
}

type GetFirstHeadingOutput struct {
	Found   bool       `json:"found"`
	Heading *BlockView `json:"heading,omitempty"`
}

func RegisterGetFirstHeading(srv *mcp.Server, env *Env) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "get_first_heading",
			Description: "Returns the first heading (of any level) of rich text, which is usually its title, with its text and rendered HTML.",
			InputSchema: GenerateSchema[GetFirstHeadingInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Get First Heading",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		func(ctx context.Context, request *mcp.CallToolRequest, input GetFirstHeadingInput) (*mcp.CallToolResult, any, error) {
			return HandleGetFirstHeading(ctx, request, input, env)
		},
	)
}

func HandleGetFirstHeading(ctx context.Context, request *mcp.CallToolRequest, input GetFirstHeadingInput, env *Env) (*mcp.CallToolResult, any, error) {
	doc, err := LoadDocument(input.Content, input.ContentFormat, env.Log)
	if err != nil {
		return nil, nil, err
	}

	heading, ok := doc.FirstHeading()
	if !ok {
		return nil, GetFirstHeadingOutput{}, nil
	}
	view := env.blockView(heading)
	return nil, GetFirstHeadingOutput{Found: true, Heading: &view}, nil
}
