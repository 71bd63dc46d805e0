package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type RenderHTMLInput struct {
	Content       string  `json:"content" jsonschema:"The rich text. Either structured text JSON (an array of blocks or a StructuredText field) or Markdown, see content_format." long:"content" description:"The rich text to render"`
	ContentFormat *string `json:"content_format,omitempty" jsonschema:"Content format: 'json' or 'markdown'. Default is 'json'." long:"content-format" description:"Content format: 'json' or 'markdown'. Default is 'json'."`
}

type RenderHTMLOutput struct {
	HTML string `json:"html"`
}

func RegisterRenderHTML(srv *mcp.Server, env *Env) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "render_html",
			Description: "Renders rich text as HTML. Consecutive list items are wrapped in <ul>/<ol>, inline spans (strong, em, hyperlinks, labels) are nested properly and document links are resolved with the configured link template. Unknown element kinds render their content behind an HTML comment.",
			InputSchema: GenerateSchema[RenderHTMLInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Render HTML",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		func(ctx context.Context, request *mcp.CallToolRequest, input RenderHTMLInput) (*mcp.CallToolResult, any, error) {
			return HandleRenderHTML(ctx, request, input, env)
		},
	)
}

func HandleRenderHTML(ctx context.Context, request *mcp.CallToolRequest, input RenderHTMLInput, env *Env) (*mcp.CallToolResult, any, error) {
	doc, err := LoadDocument(input.Content, input.ContentFormat, env.Log)
	if err != nil {
		return nil, nil, err
	}
	return nil, RenderHTMLOutput{HTML: env.Renderer.AsHTML(doc, env.Resolve, nil)}, nil
}
