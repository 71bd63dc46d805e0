package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dastrobu/structured-text-mcp/internal/richtext"
)

type GetFirstImageInput struct {
	Content       string  `json:"content" jsonschema:"The rich text. Either structured text JSON (an array of blocks or a StructuredText field) or Markdown, see content_format." long:"content" description:"The rich text to search"`
	ContentFormat *string `json:"content_format,omitempty" jsonschema:"Content format: 'json' or 'markdown'. Default is 'json'." long:"content-format" description:"Content format: 'json' or 'markdown'. Default is 'json'."`
}

type GetFirstImageOutput struct {
	Found bool                `json:"found"`
	Image *richtext.ImageView `json:"image,omitempty"`
	Ratio float64             `json:"ratio,omitempty"`
	HTML  string              `json:"html,omitempty"`
}

func RegisterGetFirstImage(srv *mcp.Server, env *Env) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "get_first_image",
			Description: "Returns the first image block of rich text: its URL, dimensions, alt text, aspect ratio and an <img> tag.",
			InputSchema: GenerateSchema[GetFirstImageInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Get First Image",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		func(ctx context.Context, request *mcp.CallToolRequest, input GetFirstImageInput) (*mcp.CallToolResult, any, error) {
			return HandleGetFirstImage(ctx, request, input, env)
		},
	)
}

func HandleGetFirstImage(ctx context.Context, request *mcp.CallToolRequest, input GetFirstImageInput, env *Env) (*mcp.CallToolResult, any, error) {
	doc, err := LoadDocument(input.Content, input.ContentFormat, env.Log)
	if err != nil {
		return nil, nil, err
	}

	img, ok := doc.FirstImage()
	if !ok {
		return nil, GetFirstImageOutput{}, nil
	}
	return nil, GetFirstImageOutput{Found: true, Image: &img, Ratio: img.Ratio(), HTML: img.AsHTML()}, nil
}
