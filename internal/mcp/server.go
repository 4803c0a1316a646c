package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/glwaffle/internal/config"
	"github.com/1broseidon/glwaffle/internal/probe"
)

const (
	ServerName    = "glwaffle"
	ServerVersion = "0.1.0"
)

// Server exposes platform probing over MCP.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	logger    *slog.Logger

	// Only one platform may be initialized per process, so probes run one
	// at a time.
	mu sync.Mutex

	runFn       func(probe.Request) (*probe.Report, error)
	platformsFn func() []probe.PlatformInfo
}

// NewServer creates an MCP server whose probes start from cfg.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		config:      cfg,
		logger:      logger,
		runFn:       probe.Run,
		platformsFn: probe.Platforms,
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "probe_platform",
		Description: "Initialize a GL platform, create a context of the requested API and version on a small window, and report the vendor, renderer, version and optionally the extensions of the implementation behind it. Fields left empty fall back to the server's configuration.",
	}, s.handleProbePlatform)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_platforms",
		Description: "List the known platform names and whether this build can initialize each one.",
	}, s.handleListPlatforms)
}

// requestConfig overlays the non-empty fields of args on the server config.
func (s *Server) requestConfig(args ProbePlatformInput) *config.Config {
	cfg := *s.config
	cfg.Libraries = make(map[string]string, len(s.config.Libraries))
	for k, v := range s.config.Libraries {
		cfg.Libraries[k] = v
	}
	if args.Platform != "" {
		cfg.Platform = args.Platform
	}
	if args.API != "" {
		cfg.API = args.API
		// A version or profile configured for another API rarely applies.
		cfg.Version = ""
		cfg.Profile = ""
	}
	if args.Version != "" {
		cfg.Version = args.Version
	}
	if args.Profile != "" {
		cfg.Profile = args.Profile
	}
	if args.Display != "" {
		cfg.Display = args.Display
	}
	return &cfg
}

func (s *Server) handleProbePlatform(_ context.Context, _ *mcpsdk.CallToolRequest, args ProbePlatformInput) (*mcpsdk.CallToolResult, ProbePlatformOutput, error) {
	cfg := s.requestConfig(args)
	if err := cfg.Validate(); err != nil {
		return nil, ProbePlatformOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("probe", "platform", cfg.Platform, "api", cfg.API, "version", cfg.Version)
	rep, err := s.runFn(probe.Request{Config: cfg, Verbose: args.Verbose})
	if err != nil {
		s.logger.Warn("probe failed", "platform", cfg.Platform, "error", err)
		return nil, ProbePlatformOutput{}, fmt.Errorf("probe %s/%s: %w", cfg.Platform, cfg.API, err)
	}
	return nil, ProbePlatformOutput{Report: *rep}, nil
}

func (s *Server) handleListPlatforms(_ context.Context, _ *mcpsdk.CallToolRequest, args ListPlatformsInput) (*mcpsdk.CallToolResult, ListPlatformsOutput, error) {
	all := s.platformsFn()
	out := make([]probe.PlatformInfo, 0, len(all))
	for _, p := range all {
		if args.AvailableOnly && !p.Available {
			continue
		}
		out = append(out, p)
	}
	return nil, ListPlatformsOutput{Platforms: out}, nil
}
