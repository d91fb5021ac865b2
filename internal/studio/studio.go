// Package studio exposes the Incognide UI as a set of MCP tools.
//
// Almost every tool is a thin wrapper that assembles an argument map and
// relays it to the backend as one studio action; those wrappers are declared
// as a table of relayTool entries and registered through a single generic
// handler. Only the window management tools carry their own logic.
package studio

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/NPC-Worldwide/incognide/internal/backend"
)

// Tools holds the backend client and the per-session target window registry.
type Tools struct {
	backend *backend.Client

	// mu guards targetWindow; the MCP host may dispatch calls concurrently.
	mu           sync.Mutex
	targetWindow string
}

// New creates the studio tool set for the given backend client.
func New(client *backend.Client) *Tools {
	return &Tools{backend: client}
}

// TargetWindow returns the current target window id; empty means broadcast.
func (t *Tools) TargetWindow() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.targetWindow
}

// SetTargetWindow updates the target window id. Empty clears targeting.
func (t *Tools) SetTargetWindow(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.targetWindow = id
}

// relayTool binds one MCP tool definition to a backend studio action. The
// args builder translates the tool's typed parameters into the fixed
// argument keys the backend expects.
type relayTool struct {
	tool   mcp.Tool
	action string
	args   func(req mcp.CallToolRequest) map[string]any
}

// relayTools returns the full relay table.
func relayTools() []relayTool {
	var all []relayTool
	all = append(all, paneTools()...)
	all = append(all, browserTools()...)
	all = append(all, spreadsheetTools()...)
	all = append(all, documentTools()...)
	all = append(all, presentationTools()...)
	return all
}

// Register adds every studio tool to the MCP server.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(listWindowsTool(), t.handleListWindows)
	s.AddTool(setTargetWindowTool(), t.handleSetTargetWindow)
	s.AddTool(getTargetWindowTool(), t.handleGetTargetWindow)

	for _, rt := range relayTools() {
		s.AddTool(rt.tool, t.relayHandler(rt))
	}
}

func (t *Tools) relayHandler(rt relayTool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := t.backend.CallAction(ctx, rt.action, rt.args(req), t.TargetWindow())
		return jsonResult(result), nil
	}
}

// Argument builders shared across the relay table.

// paneIDArgs serves tools whose only parameter is the pane id.
func paneIDArgs(req mcp.CallToolRequest) map[string]any {
	return map[string]any{
		"paneId": req.GetString("pane_id", "active"),
	}
}

// codeArgs serves the eval-style tools that ship a script to a pane.
func codeArgs(req mcp.CallToolRequest) map[string]any {
	return map[string]any{
		"paneId": req.GetString("pane_id", "active"),
		"code":   req.GetString("code", ""),
	}
}

func noArgs(req mcp.CallToolRequest) map[string]any {
	return map[string]any{}
}

// jsonResult serializes any JSON value as pretty-printed tool result text.
// Backend failures are already folded into the value, so this never returns
// a protocol-level error.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		data, _ = json.Marshal(backend.Failure("Error: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}
