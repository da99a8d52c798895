// Package main provides the authentik-mcp-setup CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/richinex/authentik-mcp-setup/cli"
	"github.com/richinex/authentik-mcp-setup/config"
	"github.com/richinex/authentik-mcp-setup/internal/logger"
)

var (
	// Global flags
	configPath string
	noBackup   bool
	verbose    bool
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "authentik-mcp-setup",
		Short: "Register the Authentik MCP servers with Claude Desktop",
		Long: `Registers the authentik-full and authentik-diag MCP servers in the
Claude Desktop configuration file, preserving everything else the file
already contains.

Values for AUTHENTIK_BASE_URL / AUTHENTIK_TOKEN can come from flags, the
environment, or a .env file; placeholders are written otherwise.`,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Claude Desktop config file (default: platform location)")
	rootCmd.PersistentFlags().BoolVar(&noBackup, "no-backup", false, "Do not back up a corrupt config file before replacing it")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")

	rootCmd.AddCommand(installCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(removeCmd())
	rootCmd.AddCommand(pathCmd())
	rootCmd.AddCommand(examplesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRunner folds the global flags into flags, resolves settings against the
// environment, and builds the runner.
func newRunner(flags config.Settings) (*cli.Runner, error) {
	flags.ConfigPath = configPath
	flags.NoBackup = noBackup
	flags.Verbose = verbose

	settings, err := config.Resolve(flags)
	if err != nil {
		return nil, err
	}
	return cli.NewRunner(settings, logger.New(settings.Verbose)), nil
}

func installCmd() *cobra.Command {
	var baseURL string
	var token string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Write the Authentik MCP server entries and show usage examples",
		Long: `Write the authentik-full and authentik-diag server entries into the
Claude Desktop configuration, creating the file and its directory when
missing and merging into an existing file otherwise. Existing entries under
other names are preserved; entries under the same names are replaced.

A malformed existing file is backed up next to itself and replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(config.Settings{BaseURL: baseURL, Token: token})
			if err != nil {
				return err
			}
			return r.Install()
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Authentik instance URL written into the entries")
	cmd.Flags().StringVar(&token, "token", "", "Authentik API token written into the entries")

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the MCP servers currently configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(config.Settings{})
			if err != nil {
				return err
			}
			return r.List()
		},
	}
}

func removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [name]...",
		Short: "Remove MCP server entries by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(config.Settings{})
			if err != nil {
				return err
			}
			return r.Remove(args)
		},
	}
}

func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(config.Settings{})
			if err != nil {
				return err
			}
			return r.Path()
		},
	}
}

func examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Print example Claude prompts for the Authentik MCP servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner(config.Settings{})
			if err != nil {
				return err
			}
			return r.Examples()
		},
	}
}
