// Package authentik defines the MCP server entries this tool registers with
// Claude Desktop, and the example prompts shown after installation.
package authentik

import "github.com/richinex/authentik-mcp-setup/claude"

// Server identifiers written under mcpServers.
const (
	// ServerFull is the full-access Authentik MCP server.
	ServerFull = "authentik-full"
	// ServerDiag is the read-only diagnostics server.
	ServerDiag = "authentik-diag"
)

// Environment variables the MCP servers read at launch. This tool only
// writes them into the entries; it is the servers that consume them.
const (
	EnvBaseURL = "AUTHENTIK_BASE_URL"
	EnvToken   = "AUTHENTIK_TOKEN"
)

// Both servers are published on PyPI and launched through uvx.
const launchCommand = "uvx"

// Placeholder values written when no real URL or token is supplied.
const (
	placeholderBaseURL   = "https://your-authentik-instance.com"
	placeholderToken     = "your-api-token-here"
	placeholderDiagToken = "your-readonly-token-here"
)

// DefaultServers returns the two Authentik server entries. When baseURL or
// token is empty, the corresponding placeholder value is written instead so
// the user can fill it in by hand. Deterministic for given inputs.
func DefaultServers(baseURL, token string) map[string]claude.ServerConfig {
	if baseURL == "" {
		baseURL = placeholderBaseURL
	}
	fullToken, diagToken := token, token
	if token == "" {
		fullToken = placeholderToken
		diagToken = placeholderDiagToken
	}

	return map[string]claude.ServerConfig{
		ServerFull: {
			Command: launchCommand,
			Args:    []string{"authentik-mcp"},
			Env: map[string]string{
				EnvBaseURL: baseURL,
				EnvToken:   fullToken,
			},
		},
		ServerDiag: {
			Command: launchCommand,
			Args:    []string{"authentik-diag-mcp"},
			Env: map[string]string{
				EnvBaseURL: baseURL,
				EnvToken:   diagToken,
			},
		},
	}
}
