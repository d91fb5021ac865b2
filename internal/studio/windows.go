package studio

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func listWindowsTool() mcp.Tool {
	return mcp.NewTool("list_windows",
		mcp.WithDescription("List all connected Incognide windows with their ids, folder paths, and titles. Use this to discover which windows are open before targeting actions."),
	)
}

func (t *Tools) handleListWindows(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.backend.ListWindows(ctx)), nil
}

func setTargetWindowTool() mcp.Tool {
	return mcp.NewTool("set_target_window",
		mcp.WithDescription("Set the default target window for all subsequent actions. Use list_windows first to find the right window id; pass an empty string to clear targeting and return to broadcast mode."),
		mcp.WithString("window_id", mcp.Required(),
			mcp.Description("The window id to target, or empty string to clear")),
	)
}

func (t *Tools) handleSetTargetWindow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("window_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	t.SetTargetWindow(id)

	message := "Target window cleared (broadcast mode)"
	if id != "" {
		message = "Target window set to: " + id
	}
	return jsonResult(map[string]any{
		"success":          true,
		"target_window_id": id,
		"message":          message,
	}), nil
}

func getTargetWindowTool() mcp.Tool {
	return mcp.NewTool("get_target_window",
		mcp.WithDescription("Get the currently set target window id."),
	)
}

func (t *Tools) handleGetTargetWindow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := t.TargetWindow()
	return jsonResult(map[string]any{
		"success":          true,
		"target_window_id": id,
		"is_set":           id != "",
	}), nil
}
