// Package testserver starts a complete bizdesk HTTP server, SQLite-backed
// and seeded, for end-to-end tests.
package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpggio/bizdesk/internal/auth"
	"github.com/rpggio/bizdesk/internal/dashboard"
	"github.com/rpggio/bizdesk/internal/domain/catalog"
	"github.com/rpggio/bizdesk/internal/domain/client"
	"github.com/rpggio/bizdesk/internal/domain/finance"
	"github.com/rpggio/bizdesk/internal/domain/schedule"
	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/i18n"
	"github.com/rpggio/bizdesk/internal/mcp"
	"github.com/rpggio/bizdesk/internal/metrics"
	"github.com/rpggio/bizdesk/internal/sqlite"
	"github.com/rpggio/bizdesk/internal/transport"
)

// Admin credentials accepted by every TestServer.
const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"
)

// Now is the clock of every TestServer.
var Now = time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)

type TestServer struct {
	Server     *httptest.Server
	DB         *sqlite.DB
	Dashboard  *dashboard.Dashboard
	Translator *i18n.Translator
	Metrics    *metrics.Metrics
}

// New starts a server on a private in-memory database.
func New(t *testing.T) *TestServer {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	m := metrics.New()
	clock := func() time.Time { return Now }
	opts := []entity.Option{
		entity.WithObserver(m),
		entity.WithIDGenerator(entity.NewSequenceGenerator("n", 100)),
	}

	d := dashboard.New(dashboard.Stores{
		Clients:      seeded(t, ctx, db, client.Kind, client.Seed(), opts),
		Transactions: seeded(t, ctx, db, finance.Kind, finance.Seed(), opts),
		Tasks:        seeded(t, ctx, db, schedule.Kind, schedule.Seed(Now), opts),
		Items:        seeded(t, ctx, db, catalog.Kind, catalog.Seed(), opts),
	}, dashboard.Options{Observer: m, Location: time.UTC, Now: clock})

	hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	translator := i18n.NewTranslator(i18n.English)
	authSvc := auth.NewService(
		auth.NewBcryptVerifier([]auth.Admin{{Email: AdminEmail, PasswordHash: string(hash)}}),
		sqlite.NewTokenRepository(db), translator, nil,
		auth.WithDelay(0), auth.WithObserver(m),
	)

	mcpServer := mcp.NewServer(mcp.Config{
		Dashboard:     d,
		Translator:    translator,
		Auth:          authSvc,
		AuthEnabled:   true,
		TransportMode: "http",
		Location:      time.UTC,
		Now:           clock,
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: time.Minute},
	)

	server := httptest.NewServer(transport.NewServer(transport.Config{
		Dashboard:   d,
		Translator:  translator,
		Auth:        authSvc,
		Metrics:     m,
		MCP:         mcpHandler,
		CORSOrigins: []string{"*"},
		Location:    time.UTC,
		Now:         clock,
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{Server: server, DB: db, Dashboard: d, Translator: translator, Metrics: m}
}

func seeded[T entity.Record[T]](t *testing.T, ctx context.Context, db *sqlite.DB, kind string, recs []T, opts []entity.Option) *entity.Service[T] {
	t.Helper()
	repo := sqlite.NewRecordRepository[T](db, kind)
	_, err := entity.Seed(ctx, repo, recs)
	require.NoError(t, err)
	return entity.NewService[T](kind, repo, nil, opts...)
}

// MCPSession connects an MCP client over streamable HTTP. A non-empty token
// is sent as a bearer token on every request.
func (ts *TestServer) MCPSession(t *testing.T, token string) *sdkmcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	httpClient := ts.Server.Client()
	if token != "" {
		httpClient = &http.Client{Transport: &bearerTransport{token: token, base: http.DefaultTransport}}
	}
	c := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := c.Connect(ctx, &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.Server.URL + "/mcp",
		HTTPClient: httpClient,
		MaxRetries: -1,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (b *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+b.token)
	return b.base.RoundTrip(req)
}
