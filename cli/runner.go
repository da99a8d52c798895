// Command execution for CLI commands.
//
// Information Hiding:
// - Config-file recovery and backup policy hidden
// - Output formatting hidden
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/richinex/authentik-mcp-setup/authentik"
	"github.com/richinex/authentik-mcp-setup/claude"
	"github.com/richinex/authentik-mcp-setup/config"
)

// Runner executes CLI commands against one Claude Desktop configuration
// file. Out defaults to stdout; tests substitute a buffer.
type Runner struct {
	Settings config.Settings
	Log      zerolog.Logger
	Out      io.Writer
}

// NewRunner returns a Runner writing to stdout.
func NewRunner(settings config.Settings, log zerolog.Logger) *Runner {
	return &Runner{Settings: settings, Log: log, Out: os.Stdout}
}

// Install registers the Authentik MCP servers in the Claude Desktop
// configuration, preserving everything else the file contains, then prints
// the written path, example prompts, and next steps.
func (r *Runner) Install() error {
	path, err := r.resolvePath()
	if err != nil {
		return err
	}

	entries := authentik.DefaultServers(r.Settings.BaseURL, r.Settings.Token)

	cfg, err := r.loadOrRecover(path)
	if err != nil {
		return err
	}
	cfg.SetServers(entries)

	if err := claude.Save(path, cfg); err != nil {
		return err
	}
	r.Log.Debug().Str("path", path).Int("servers", len(cfg.MCPServers)).Msg("configuration written")

	fmt.Fprintf(r.Out, "%s %s\n\n", successStyle.Render("Configuration written to:"), pathStyle.Render(path))
	fmt.Fprintln(r.Out, titleStyle.Render("Usage examples"))
	fmt.Fprintln(r.Out, authentik.UsageExamples())
	r.printNextSteps(path)
	return nil
}

// List prints the configured MCP servers. Token values are never printed,
// only the names of the environment variables each server receives.
func (r *Runner) List() error {
	path, err := r.resolvePath()
	if err != nil {
		return err
	}

	cfg, err := claude.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(r.Out, "No configuration file at %s\n", pathStyle.Render(path))
			return nil
		}
		return err
	}

	names := cfg.ServerNames()
	if len(names) == 0 {
		fmt.Fprintln(r.Out, "No MCP servers configured.")
		return nil
	}

	fmt.Fprintln(r.Out, titleStyle.Render(fmt.Sprintf("MCP servers in %s", path)))
	for _, name := range names {
		server := cfg.MCPServers[name]
		fmt.Fprintf(r.Out, "  %s\n", subtitleStyle.Render(name))
		fmt.Fprintf(r.Out, "    command: %s", server.Command)
		for _, arg := range server.Args {
			fmt.Fprintf(r.Out, " %s", arg)
		}
		fmt.Fprintln(r.Out)
		for _, envName := range sortedKeys(server.Env) {
			fmt.Fprintf(r.Out, "    env:     %s\n", dimStyle.Render(envName))
		}
	}
	return nil
}

// Remove deletes the named server entries and rewrites the file. Names not
// present are reported individually; the file is only rewritten when at
// least one entry was actually removed.
func (r *Runner) Remove(names []string) error {
	path, err := r.resolvePath()
	if err != nil {
		return err
	}

	cfg, err := claude.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("no configuration file at %s", path)
		}
		return err
	}

	removed := 0
	for _, name := range names {
		if cfg.RemoveServer(name) {
			fmt.Fprintf(r.Out, "Removed %s\n", subtitleStyle.Render(name))
			removed++
		} else {
			r.Log.Warn().Str("server", name).Msg("no such server entry")
		}
	}
	if removed == 0 {
		fmt.Fprintln(r.Out, "Nothing to remove.")
		return nil
	}

	if err := claude.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "%s %s\n", successStyle.Render("Configuration written to:"), pathStyle.Render(path))
	return nil
}

// Path prints the resolved configuration file path.
func (r *Runner) Path() error {
	path, err := r.resolvePath()
	if err != nil {
		return err
	}
	fmt.Fprintln(r.Out, path)
	return nil
}

// Examples prints the example prompts on their own.
func (r *Runner) Examples() error {
	fmt.Fprintln(r.Out, authentik.UsageExamples())
	return nil
}

// resolvePath returns the configured path, falling back to the platform
// default.
func (r *Runner) resolvePath() (string, error) {
	if r.Settings.ConfigPath != "" {
		return r.Settings.ConfigPath, nil
	}
	return claude.DefaultPath()
}

// loadOrRecover loads the configuration at path, treating a missing file as
// empty. A malformed file is backed up (unless disabled), surfaced as a
// warning, and then treated as empty; its content is discarded. Any other
// failure, permissions included, is fatal.
func (r *Runner) loadOrRecover(path string) (*claude.Config, error) {
	cfg, err := claude.Load(path)
	if err == nil {
		return cfg, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		r.Log.Debug().Str("path", path).Msg("no existing configuration, starting fresh")
		return &claude.Config{}, nil
	}

	var perr *claude.ParseError
	if errors.As(err, &perr) {
		r.Log.Warn().Str("path", path).Err(perr).Msg("existing config file is not valid JSON, creating new one")
		if !r.Settings.NoBackup {
			backup, berr := claude.BackupCorrupt(path)
			if berr != nil {
				r.Log.Warn().Err(berr).Msg("could not back up the corrupt file")
			} else {
				r.Log.Warn().Str("backup", backup).Msg("corrupt file saved aside")
			}
		}
		return &claude.Config{}, nil
	}

	return nil, err
}

func (r *Runner) printNextSteps(path string) {
	placeholders := r.Settings.BaseURL == "" || r.Settings.Token == ""

	fmt.Fprintln(r.Out, titleStyle.Render("Next steps"))
	step := 1
	if placeholders {
		fmt.Fprintf(r.Out, "%d. Edit the configuration file to add your actual Authentik URL and tokens\n", step)
		step++
	}
	fmt.Fprintf(r.Out, "%d. Restart Claude Desktop\n", step)
	fmt.Fprintf(r.Out, "%d. The Authentik tools should be available in Claude\n\n", step+1)

	fmt.Fprintln(r.Out, "Configuration file created!")
	if placeholders {
		fmt.Fprintf(r.Out, "Edit %s with your Authentik details.\n", pathStyle.Render(path))
	}
}
