package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const adminKey contextKey = iota

// getAdmin extracts the authenticated admin email from context.
func getAdmin(ctx context.Context) string {
	v, _ := ctx.Value(adminKey).(string)
	return v
}

// publicTools may be called without a bearer token.
var publicTools = map[string]bool{
	"login":     true,
	"translate": true,
}

// authMiddleware implements bearer token authentication as MCP middleware.
// Protocol methods, listings and public tools pass through.
func authMiddleware(authn Authenticator) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			if !requiresAuth(method, req) {
				return next(ctx, method, req)
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, fmt.Errorf("unauthorized: missing headers")
			}

			token := bearer(extra.Header.Get("Authorization"))
			if token == "" {
				return nil, fmt.Errorf("unauthorized: missing bearer token")
			}

			email, err := authn.Authenticate(ctx, token)
			if err != nil {
				return nil, fmt.Errorf("unauthorized: %w", err)
			}
			if email == "" {
				return nil, fmt.Errorf("unauthorized: invalid bearer token")
			}

			ctx = context.WithValue(ctx, adminKey, email)
			return next(ctx, method, req)
		}
	}
}

func requiresAuth(method string, req sdkmcp.Request) bool {
	switch method {
	case "tools/call":
		call, ok := req.(*sdkmcp.CallToolRequest)
		return !ok || call.Params == nil || !publicTools[call.Params.Name]
	case "resources/read":
		return true
	default:
		return false
	}
}

// localAdminMiddleware marks every call as made by the local operator when
// auth is off.
func localAdminMiddleware(name string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			ctx = context.WithValue(ctx, adminKey, name)
			return next(ctx, method, req)
		}
	}
}
