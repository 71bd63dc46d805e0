package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dastrobu/structured-text-mcp/internal/logging"
	"github.com/dastrobu/structured-text-mcp/internal/opts"
	"github.com/dastrobu/structured-text-mcp/internal/tools"
)

// toolHandler is the shape shared by the tools.Handle* functions
type toolHandler[In any] func(context.Context, *mcp.CallToolRequest, In, *tools.Env) (*mcp.CallToolResult, any, error)

// registerToolCommands wires every 'tool <name>' command to its MCP tool
// handler
func registerToolCommands(cmd *opts.ToolCmd) {
	cmd.RenderHTML.Handler = func(args opts.DocumentArgs) error {
		return runTool(cmd.RenderOptions, args, tools.HandleRenderHTML, func(content string, format *string) tools.RenderHTMLInput {
			return tools.RenderHTMLInput{Content: content, ContentFormat: format}
		})
	}
	cmd.RenderText.Handler = func(args opts.DocumentArgs) error {
		return runTool(cmd.RenderOptions, args, tools.HandleRenderText, func(content string, format *string) tools.RenderTextInput {
			return tools.RenderTextInput{Content: content, ContentFormat: format}
		})
	}
	cmd.GetFirstHeading.Handler = func(args opts.DocumentArgs) error {
		return runTool(cmd.RenderOptions, args, tools.HandleGetFirstHeading, func(content string, format *string) tools.GetFirstHeadingInput {
			return tools.GetFirstHeadingInput{Content: content, ContentFormat: format}
		})
	}
	cmd.GetParagraph.Handler = func(args opts.DocumentArgs, index int) error {
		return runTool(cmd.RenderOptions, args, tools.HandleGetParagraph, func(content string, format *string) tools.GetParagraphInput {
			return tools.GetParagraphInput{Content: content, ContentFormat: format, Index: &index}
		})
	}
	cmd.ListParagraphs.Handler = func(args opts.DocumentArgs) error {
		return runTool(cmd.RenderOptions, args, tools.HandleListParagraphs, func(content string, format *string) tools.ListParagraphsInput {
			return tools.ListParagraphsInput{Content: content, ContentFormat: format}
		})
	}
	cmd.GetFirstImage.Handler = func(args opts.DocumentArgs) error {
		return runTool(cmd.RenderOptions, args, tools.HandleGetFirstImage, func(content string, format *string) tools.GetFirstImageInput {
			return tools.GetFirstImageInput{Content: content, ContentFormat: format}
		})
	}
}

// runTool executes one tool outside of an MCP session and prints its result
// as JSON to stdout
func runTool[In any](ro opts.RenderOptions, args opts.DocumentArgs, handle toolHandler[In], input func(content string, format *string) In) error {
	log, done := logging.NewStderr(ro.Debug)
	defer done()

	content, err := args.ReadContent()
	if err != nil {
		return err
	}
	env, err := newEnv(ro, log)
	if err != nil {
		return err
	}

	_, out, err := handle(context.Background(), &mcp.CallToolRequest{}, input(content, args.Format.Ptr()), env)
	if err != nil {
		return fmt.Errorf("tool failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
