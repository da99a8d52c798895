// Package config assembles tool settings from environment variables and
// command-line flags.
//
// Settings are resolved by overlaying sources with mergo; a later source
// wins for every non-zero field:
//  1. Environment variables
//  2. Command-line flags
//
// A .env file in the working directory, when present, is loaded into the
// environment by the CLI entry point before Resolve runs.
package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"

	"github.com/richinex/authentik-mcp-setup/authentik"
)

// EnvConfigPath overrides the platform-default Claude Desktop configuration
// file location.
const EnvConfigPath = "CLAUDE_CONFIG_PATH"

// Settings holds everything the CLI commands need to run.
type Settings struct {
	// ConfigPath is the Claude Desktop configuration file to operate on.
	// Empty means the platform default.
	ConfigPath string

	// BaseURL and Token are written into the AUTHENTIK_BASE_URL and
	// AUTHENTIK_TOKEN entries of the registered servers. Placeholder
	// values are written when empty.
	BaseURL string
	Token   string

	// NoBackup skips the corrupt-file backup before a malformed existing
	// configuration is discarded.
	NoBackup bool

	// Verbose enables debug-level logging.
	Verbose bool
}

// Resolve merges flag values over environment values and returns the final
// settings. Zero-valued flag fields leave the environment value in place.
func Resolve(flags Settings) (Settings, error) {
	merged := fromEnv()
	if err := mergo.Merge(&merged, flags, mergo.WithOverride); err != nil {
		return Settings{}, fmt.Errorf("merging settings: %w", err)
	}
	return merged, nil
}

func fromEnv() Settings {
	return Settings{
		ConfigPath: os.Getenv(EnvConfigPath),
		BaseURL:    os.Getenv(authentik.EnvBaseURL),
		Token:      os.Getenv(authentik.EnvToken),
	}
}
