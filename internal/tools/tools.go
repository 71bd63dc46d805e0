// Package tools implements the MCP tools that form the core functionality of
// the server: rendering structured text and querying its blocks.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/dastrobu/structured-text-mcp/internal/richtext"
)

// Env is what every tool needs to render.
type Env struct {
	Renderer *richtext.Renderer
	Resolve  richtext.LinkResolver
	Log      *zap.Logger
}

// NewEnv returns an Env, replacing a nil renderer with the default one and
// a nil logger with a no-op logger.
func NewEnv(renderer *richtext.Renderer, resolve richtext.LinkResolver, log *zap.Logger) *Env {
	if log == nil {
		log = zap.NewNop()
	}
	if renderer == nil {
		renderer = richtext.NewRenderer(nil, log)
	}
	return &Env{Renderer: renderer, Resolve: resolve, Log: log}
}

// RegisterAll registers all available tools with the MCP server
func RegisterAll(srv *mcp.Server, env *Env) {
	RegisterRenderHTML(srv, env)
	RegisterRenderText(srv, env)
	RegisterGetFirstHeading(srv, env)
	RegisterGetParagraph(srv, env)
	RegisterListParagraphs(srv, env)
	RegisterGetFirstImage(srv, env)
}

// BlockView is a block as returned by the query tools.
type BlockView struct {
	Type  richtext.Kind `json:"type"`
	Text  string        `json:"text"`
	HTML  string        `json:"html"`
	Label string        `json:"label,omitempty"`
}

func (e *Env) blockView(b richtext.Block) BlockView {
	return BlockView{
		Type:  b.Kind,
		Text:  b.Text,
		HTML:  e.Renderer.AsHTML([]richtext.Block{b}, e.Resolve, nil),
		Label: b.Label,
	}
}
