package claude

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServers() map[string]ServerConfig {
	return map[string]ServerConfig{
		"authentik-full": {
			Command: "uvx",
			Args:    []string{"authentik-mcp"},
			Env: map[string]string{
				"AUTHENTIK_BASE_URL": "https://authentik.example.com",
				"AUTHENTIK_TOKEN":    "token",
			},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := &Config{}
	cfg.SetServers(testServers())
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.MCPServers, got.MCPServers)
}

func TestSaveCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", FileName)

	cfg := &Config{}
	cfg.SetServers(testServers())
	require.NoError(t, Save(path, cfg))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSaveIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := &Config{}
	cfg.SetServers(testServers())
	require.NoError(t, Save(path, cfg))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	again, err := Load(path)
	require.NoError(t, err)
	again.SetServers(testServers())
	require.NoError(t, Save(path, again))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("not valid json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, path, perr.Path)
	assert.Equal(t, 1, perr.Line)
	assert.Contains(t, perr.Error(), "line 1")
}

func TestSetServersPreservesExisting(t *testing.T) {
	cfg := &Config{MCPServers: map[string]ServerConfig{
		"foo": {Command: "foo-server"},
	}}

	cfg.SetServers(map[string]ServerConfig{"bar": {Command: "bar-server"}})

	assert.Equal(t, []string{"bar", "foo"}, cfg.ServerNames())
	assert.Equal(t, "foo-server", cfg.MCPServers["foo"].Command)
}

func TestSetServersOverwritesColliding(t *testing.T) {
	cfg := &Config{MCPServers: map[string]ServerConfig{
		"authentik-full": {Command: "old", Args: []string{"old-arg"}},
	}}

	cfg.SetServers(testServers())

	assert.Equal(t, "uvx", cfg.MCPServers["authentik-full"].Command)
	assert.Equal(t, []string{"authentik-mcp"}, cfg.MCPServers["authentik-full"].Args)
}

func TestRemoveServer(t *testing.T) {
	cfg := &Config{}
	cfg.SetServers(testServers())

	assert.True(t, cfg.RemoveServer("authentik-full"))
	assert.False(t, cfg.RemoveServer("authentik-full"))
	assert.Empty(t, cfg.ServerNames())
}

func TestUnknownTopLevelKeysPreserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	existing := `{
  "globalShortcut": "Ctrl+Space",
  "mcpServers": {
    "foo": {"command": "foo-server", "args": []}
  },
  "theme": {"mode": "dark", "accent": "#4ECDC4"}
}`
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.SetServers(testServers())
	require.NoError(t, Save(path, cfg))

	var raw map[string]json.RawMessage
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.JSONEq(t, `"Ctrl+Space"`, string(raw["globalShortcut"]))
	assert.JSONEq(t, `{"mode": "dark", "accent": "#4ECDC4"}`, string(raw["theme"]))

	var servers map[string]ServerConfig
	require.NoError(t, json.Unmarshal(raw["mcpServers"], &servers))
	assert.Len(t, servers, 2)
	assert.Contains(t, servers, "foo")
	assert.Contains(t, servers, "authentik-full")
}

func TestMarshalEmptyConfig(t *testing.T) {
	data, err := json.Marshal(&Config{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mcpServers": {}}`, string(data))
}

func TestLoadNonObjectDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0o644))

	_, err := Load(path)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}
