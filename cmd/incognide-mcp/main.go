// incognide-mcp is an MCP stdio server exposing Incognide studio actions
// (pane management, browser control, spreadsheet/document/presentation
// editing) as tools for agents. Every tool call is relayed to the Incognide
// backend over HTTP.
package main

import (
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/NPC-Worldwide/incognide/internal/backend"
	"github.com/NPC-Worldwide/incognide/internal/config"
	"github.com/NPC-Worldwide/incognide/internal/studio"
)

func main() {
	// Configure logging to stderr (stdout is reserved for MCP framing)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load config, using defaults: %v", err)
		cfg = config.Default()
	}

	// Resolve the backend base URL once; failures are deferred to first use
	baseURL := backend.Discover(cfg)
	log.Printf("Incognide backend: %s", baseURL)

	client := backend.NewClient(baseURL, cfg)

	// Register the studio tool surface
	s := server.NewMCPServer("incognide_mcp", "1.0.0",
		server.WithToolCapabilities(false),
	)
	studio.New(client).Register(s)

	// Run the stdio loop (reads from stdin, writes to stdout)
	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
