package authentik

import _ "embed"

//go:embed examples.md
var usageExamples string

// UsageExamples returns the fixed block of example prompts for the two
// Authentik MCP servers.
func UsageExamples() string {
	return usageExamples
}
