package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/bizdesk/internal/auth"
	"github.com/rpggio/bizdesk/internal/dashboard"
	"github.com/rpggio/bizdesk/internal/i18n"
)

// TransportStdio disables bearer auth; the caller is the local operator.
const TransportStdio = "stdio"

// Authenticator resolves a bearer token to the admin it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// Config contains server configuration.
type Config struct {
	Dashboard     *dashboard.Dashboard
	Translator    *i18n.Translator
	Auth          *auth.Service
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Version       string
	Location      *time.Location
	Now           func() time.Time
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Translator == nil {
		cfg.Translator = i18n.NewTranslator(i18n.DefaultLocale)
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "bizdesk",
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Stdio is local only and never authenticates.
	if cfg.TransportMode != TransportStdio && cfg.AuthEnabled && cfg.Auth != nil {
		server.AddReceivingMiddleware(authMiddleware(cfg.Auth))
	} else {
		server.AddReceivingMiddleware(localAdminMiddleware("local"))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg)

	return server
}
