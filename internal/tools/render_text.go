package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dastrobu/structured-text-mcp/internal/richtext"
)

type RenderTextInput struct {
	Content       string  `json:"content" jsonschema:"The rich text. Either structured text JSON (an array of blocks or a StructuredText field) or Markdown, see content_format." long:"content" description:"The rich text to convert"`
	ContentFormat *string `json:"content_format,omitempty" jsonschema:"Content format: 'json' or 'markdown'. Default is 'json'." long:"content-format" description:"Content format: 'json' or 'markdown'. Default is 'json'."`
}

type RenderTextOutput struct {
	Text string `json:"text"`
}

func RegisterRenderText(srv *mcp.Server, env *Env) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "render_text",
			Description: "Returns the plain text of rich text: the text of every block that has text, joined by single spaces. Formatting and images are dropped.",
			InputSchema: GenerateSchema[RenderTextInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Render Text",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		func(ctx context.Context, request *mcp.CallToolRequest, input RenderTextInput) (*mcp.CallToolResult, any, error) {
			return HandleRenderText(ctx, request, input, env)
		},
	)
}

func HandleRenderText(ctx context.Context, request *mcp.CallToolRequest, input RenderTextInput, env *Env) (*mcp.CallToolResult, any, error) {
	doc, err := LoadDocument(input.Content, input.ContentFormat, env.Log)
	if err != nil {
		return nil, nil, err
	}
	return nil, RenderTextOutput{Text: richtext.AsText(doc)}, nil
}
