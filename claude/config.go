// Claude Desktop configuration file support.
//
// Claude Desktop keeps its MCP server registrations under the "mcpServers"
// key of a single JSON file:
//
//	{
//	  "mcpServers": {
//	    "authentik-full": {
//	      "command": "uvx",
//	      "args": ["authentik-mcp"],
//	      "env": {
//	        "AUTHENTIK_BASE_URL": "https://authentik.example.com",
//	        "AUTHENTIK_TOKEN": "..."
//	      }
//	    }
//	  }
//	}
//
// The file belongs to Claude Desktop, not to this tool, so any other
// top-level keys it contains are carried through a load/save cycle verbatim.
package claude

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/richinex/authentik-mcp-setup/internal/jsonutil"
)

// FileName is the configuration file name used by Claude Desktop on every
// platform.
const FileName = "claude_desktop_config.json"

// serversKey is the one top-level key this tool reads and writes.
const serversKey = "mcpServers"

// Config represents the Claude Desktop configuration file.
type Config struct {
	// MCPServers maps a server identifier to its launch configuration.
	MCPServers map[string]ServerConfig

	// extra holds every top-level key other than mcpServers, raw, so that
	// settings owned by Claude Desktop survive a rewrite untouched.
	extra map[string]json.RawMessage
}

// ServerConfig represents a single MCP server registration.
type ServerConfig struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// Load reads and parses the configuration file at path.
//
// A missing file is reported with an error satisfying
// errors.Is(err, fs.ErrNotExist). A present but unparseable file is reported
// with a *ParseError; the caller decides whether that is fatal.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		perr := &ParseError{Path: path, Err: err}
		perr.Line, perr.Column, _ = jsonutil.SyntaxPosition(data, err)
		return nil, perr
	}

	return &cfg, nil
}

// Save serializes cfg as 2-space-indented JSON and writes it to path,
// replacing any prior content. The parent directory is created if missing.
//
// The write is a plain truncate-and-write, not an atomic rename: this tool
// runs once, interactively, and a crash mid-write is acceptable here.
func Save(path string, cfg *Config) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SetServers overlays entries onto the mcpServers mapping, creating the
// mapping if absent. A colliding identifier is overwritten; every other
// existing entry is preserved.
func (c *Config) SetServers(entries map[string]ServerConfig) {
	if c.MCPServers == nil {
		c.MCPServers = make(map[string]ServerConfig, len(entries))
	}
	for name, server := range entries {
		c.MCPServers[name] = server
	}
}

// RemoveServer deletes the named entry and reports whether it was present.
func (c *Config) RemoveServer(name string) bool {
	if _, ok := c.MCPServers[name]; !ok {
		return false
	}
	delete(c.MCPServers, name)
	return true
}

// ServerNames returns the configured server identifiers in sorted order.
func (c *Config) ServerNames() []string {
	names := make([]string, 0, len(c.MCPServers))
	for name := range c.MCPServers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnmarshalJSON splits the document into the typed mcpServers mapping and
// the raw remainder.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if rawServers, ok := raw[serversKey]; ok {
		if err := json.Unmarshal(rawServers, &c.MCPServers); err != nil {
			return fmt.Errorf("parsing %q: %w", serversKey, err)
		}
		delete(raw, serversKey)
	}
	c.extra = raw
	return nil
}

// MarshalJSON reassembles the document: preserved keys plus the current
// mcpServers mapping. mcpServers is always emitted, as an object, even when
// empty.
func (c Config) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(c.extra)+1)
	for key, value := range c.extra {
		out[key] = value
	}

	servers := c.MCPServers
	if servers == nil {
		servers = map[string]ServerConfig{}
	}
	rawServers, err := json.Marshal(servers)
	if err != nil {
		return nil, err
	}
	out[serversKey] = rawServers

	return json.Marshal(out)
}
