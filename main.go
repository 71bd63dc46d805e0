package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/dastrobu/structured-text-mcp/internal/completion"
	"github.com/dastrobu/structured-text-mcp/internal/linkresolve"
	"github.com/dastrobu/structured-text-mcp/internal/logging"
	"github.com/dastrobu/structured-text-mcp/internal/opts"
	"github.com/dastrobu/structured-text-mcp/internal/richtext"
	"github.com/dastrobu/structured-text-mcp/internal/tools"
)

const (
	serverName    = "structured-text"
	serverVersion = "0.1.0"
)

func main() {
	opts.GlobalOpts.Run.Handler = runServer
	opts.GlobalOpts.Completion.Bash.Handler = func() error {
		return completion.GenerateBash(os.Stdout, os.Args[0])
	}
	registerToolCommands(&opts.GlobalOpts.Tool)

	// Parse command-line options; the active command runs during parsing
	parser, err := opts.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.GlobalOpts.Version {
		fmt.Printf("%s %s\n", serverName, serverVersion)
		return
	}

	// No command given: run the server with its defaults
	if parser.Active == nil {
		if err := runServer(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// newEnv builds the rendering environment shared by the server and the tool
// commands
func newEnv(ro opts.RenderOptions, log *zap.Logger) (*tools.Env, error) {
	cfg, err := richtext.LoadConfig(ro.RenderingConfig)
	if err != nil {
		return nil, err
	}
	links, err := linkresolve.Parse(ro.LinkTemplate, ro.BrokenLinkURL)
	if err != nil {
		return nil, err
	}
	return tools.NewEnv(richtext.NewRenderer(cfg, log), links.Resolver(), log), nil
}

// debugMiddleware logs all MCP requests and responses
func debugMiddleware(log *zap.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if req != nil {
				log.Debug("MCP request", zap.String("method", method), zap.Any("params", req.GetParams()))
			} else {
				log.Debug("MCP request", zap.String("method", method))
			}

			start := time.Now()
			result, err := next(ctx, method, req)

			if err != nil {
				log.Debug("MCP response", zap.String("method", method), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
			} else {
				log.Debug("MCP response", zap.String("method", method), zap.Duration("elapsed", time.Since(start)), zap.Any("result", result))
			}
			return result, err
		}
	}
}

// createServer creates and configures a new MCP server instance
func createServer(env *tools.Env, debug bool) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	if debug {
		srv.AddReceivingMiddleware(debugMiddleware(env.Log))
	}

	tools.RegisterAll(srv, env)
	return srv
}

func runServer() error {
	options := opts.GlobalOpts.Run

	// stdout is used for MCP communication in stdio mode
	log, done := logging.NewStderr(options.Debug)
	defer done()

	env, err := newEnv(options.RenderOptions, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("Structured text MCP server initialized", zap.String("version", serverVersion))
	srv := createServer(env, options.Debug)

	switch options.Transport {
	case "stdio":
		log.Info("Using STDIO transport")
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	case "http":
		addr := fmt.Sprintf("%s:%d", options.Host, options.Port)

		handler := mcp.NewStreamableHTTPHandler(
			func(r *http.Request) *mcp.Server {
				// since we are stateless, we can return the same server instance
				return srv
			},
			&mcp.StreamableHTTPOptions{
				Stateless: true,
			},
		)

		httpServer := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("HTTP server listening", zap.String("url", "http://"+addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported transport: %s", options.Transport)
	}

	return nil
}
