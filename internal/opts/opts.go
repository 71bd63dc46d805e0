package opts

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/dastrobu/structured-text-mcp/internal/opts/typed_flags"
)

// Options defines the command-line options for the MCP server
type Options struct {
	Version bool `long:"version" short:"v" description:"Show version information and exit"`

	Run        RunCmd        `command:"run" description:"Run the server"`
	Completion CompletionCmd `command:"completion" description:"Generate completion scripts"`
	Tool       ToolCmd       `command:"tool" description:"Execute a tool directly"`
}

// RenderOptions configure rendering for the server and the tool commands.
type RenderOptions struct {
	Debug           bool   `long:"debug" env:"STRUCTURED_TEXT_MCP_DEBUG" description:"Enable debug logging of tool calls, results and rendering diagnostics to stderr"`
	RenderingConfig string `long:"rendering-config" env:"STRUCTURED_TEXT_MCP_RENDERING_CONFIG" description:"Path to a rendering table YAML file merged over the embedded default"`
	LinkTemplate    string `long:"link-template" env:"STRUCTURED_TEXT_MCP_LINK_TEMPLATE" description:"Template for document link URLs, e.g. '/{{ .Type }}/{{ .UID | default .ID }}'"`
	BrokenLinkURL   string `long:"broken-link-url" env:"STRUCTURED_TEXT_MCP_BROKEN_LINK_URL" description:"URL for links to missing documents" default:"#broken"`
}

// RunCmd defines the 'run' command
type RunCmd struct {
	Transport typed_flags.Transport `long:"transport" env:"STRUCTURED_TEXT_MCP_TRANSPORT" description:"Transport type: stdio or http" default:"stdio"`
	Port      int                   `long:"port" env:"STRUCTURED_TEXT_MCP_PORT" description:"HTTP port (only used with --transport=http)" default:"8787"`
	Host      string                `long:"host" env:"STRUCTURED_TEXT_MCP_HOST" description:"HTTP host (only used with --transport=http)" default:"localhost"`
	RenderOptions

	Handler func() error
}

// Validate checks values go-flags cannot check by itself
func (c *RunCmd) Validate() error {
	if c.Transport == typed_flags.TransportHTTP && (c.Port < 1 || c.Port > 65535) {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	return nil
}

// Execute runs the run command
func (c *RunCmd) Execute(args []string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// CompletionCmd holds completion subcommands
type CompletionCmd struct {
	Bash CompletionBashCmd `command:"bash" description:"Generate bash completion script"`
}

// CompletionBashCmd represents the 'completion bash' command
type CompletionBashCmd struct {
	Handler func() error
}

// Execute runs the completion bash command
func (c *CompletionBashCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// ToolCmd holds tool subcommands. Tool options are shared by all of them.
type ToolCmd struct {
	RenderOptions `group:"Rendering Options"`

	RenderHTML      DocumentToolCmd `command:"render_html" description:"Renders rich text as HTML"`
	RenderText      DocumentToolCmd `command:"render_text" description:"Returns the plain text of rich text"`
	GetFirstHeading DocumentToolCmd `command:"get_first_heading" description:"Returns the first heading of rich text"`
	GetParagraph    GetParagraphCmd `command:"get_paragraph" description:"Returns the n-th paragraph of rich text"`
	ListParagraphs  DocumentToolCmd `command:"list_paragraphs" description:"Lists all paragraphs of rich text"`
	GetFirstImage   DocumentToolCmd `command:"get_first_image" description:"Returns the first image of rich text"`
}

// DocumentArgs are the content flags of every tool command
type DocumentArgs struct {
	Content string                    `long:"content" description:"The rich text (use --file to read it from a file instead)"`
	File    string                    `long:"file" short:"f" description:"Read the rich text from a file, '-' for stdin"`
	Format  typed_flags.ContentFormat `long:"content-format" description:"Content format: json or markdown" default:"json"`
}

// ReadContent returns the content given inline or read from the file.
func (a DocumentArgs) ReadContent() (string, error) {
	switch {
	case a.Content != "" && a.File != "":
		return "", fmt.Errorf("--content and --file are mutually exclusive")
	case a.File == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read content from stdin: %w", err)
		}
		return string(data), nil
	case a.File != "":
		data, err := os.ReadFile(a.File)
		if err != nil {
			return "", fmt.Errorf("failed to read content file: %w", err)
		}
		return string(data), nil
	}
	return a.Content, nil
}

// DocumentToolCmd represents a 'tool <name>' command that only takes content
type DocumentToolCmd struct {
	DocumentArgs
	Handler func(DocumentArgs) error
}

// Execute runs the tool command
func (c *DocumentToolCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.DocumentArgs)
	}
	return nil
}

// GetParagraphCmd represents the 'tool get_paragraph' command
type GetParagraphCmd struct {
	DocumentArgs
	Index int `long:"index" description:"Zero-based index of the paragraph" default:"0"`

	Handler func(DocumentArgs, int) error
}

// Execute runs the get_paragraph tool command
func (c *GetParagraphCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.DocumentArgs, c.Index)
	}
	return nil
}

var GlobalOpts = Options{}

// Parse parses command-line arguments and environment variables
// It also loads .env file if present (but doesn't fail if missing)
func Parse() (*flags.Parser, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs is Parse with explicit arguments.
func ParseArgs(args []string) (*flags.Parser, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	// This allows local development with .env files while working in production with env vars
	_ = godotenv.Load()

	parser := flags.NewParser(&GlobalOpts, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			switch flagsErr.Type {
			case flags.ErrHelp:
				// Print help message
				parser.WriteHelp(os.Stdout)
				os.Exit(0)
			case flags.ErrCommandRequired:
				// No command specified - that's OK, we'll run the server
				return parser, nil
			default:
				return nil, fmt.Errorf("failed to parse options: %w", err)
			}
		}
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}

	return parser, nil
}
