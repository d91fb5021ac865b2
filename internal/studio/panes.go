package studio

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// paneTools covers pane management plus the general UI actions (diff view,
// approval dialog, notifications, terminal).
func paneTools() []relayTool {
	return []relayTool{
		{
			tool: mcp.NewTool("open_pane",
				mcp.WithDescription("Open a new pane. Tool panes (chat, terminal, graph-viewer, datadash, dbtool, memory-manager, photoviewer, scherzo, npcteam, jinx, teammanagement, search, library, diskusage, help, settings, cron-daemon, projectenv, browsergraph, data-labeler, git) need no content id. File panes (editor, pdf, csv, docx, pptx, latex, notebook, exp, mindmap, zip, image, folder) need a path. Browser panes need a URL."),
				mcp.WithString("pane_type", mcp.Required(),
					mcp.Description("Type of pane to open")),
				mcp.WithString("content_id",
					mcp.Description("URL for browser panes, file path for file panes; not needed for tool panes")),
				mcp.WithString("position", mcp.DefaultString("right"),
					mcp.Description("Where to open the pane (right, left, top, bottom)")),
				mcp.WithString("shell_type",
					mcp.Description("For terminal panes: system, npcsh, or guac")),
			),
			action: "open_pane",
			args: func(req mcp.CallToolRequest) map[string]any {
				paneType := req.GetString("pane_type", "")
				args := map[string]any{
					"type":     paneType,
					"position": req.GetString("position", "right"),
				}
				if contentID := req.GetString("content_id", ""); contentID != "" {
					if paneType == "browser" {
						args["url"] = contentID
					} else {
						args["path"] = contentID
					}
				}
				if shell := req.GetString("shell_type", ""); shell != "" {
					args["shellType"] = shell
				}
				return args
			},
		},
		{
			tool: mcp.NewTool("close_pane",
				mcp.WithDescription("Close a pane."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the pane to close, or \"active\" for the current pane")),
			),
			action: "close_pane",
			args:   paneIDArgs,
		},
		{
			tool: mcp.NewTool("focus_pane",
				mcp.WithDescription("Focus/activate a specific pane."),
				mcp.WithString("pane_id", mcp.Required(),
					mcp.Description("Id of the pane to focus")),
			),
			action: "focus_pane",
			args:   paneIDArgs,
		},
		{
			tool: mcp.NewTool("list_panes",
				mcp.WithDescription("List all open panes with their ids, types, titles, and status."),
			),
			action: "list_panes",
			args:   noArgs,
		},
		{
			tool: mcp.NewTool("list_pane_types",
				mcp.WithDescription("List all available pane types with their names, descriptions, and whether they require a path or URL."),
			),
			action: "list_pane_types",
			args:   noArgs,
		},
		{
			tool: mcp.NewTool("list_actions",
				mcp.WithDescription("List all available studio actions, organized by category (pane management, content, browser, tabs, data, UI, window)."),
			),
			action: "list_actions",
			args:   noArgs,
		},
		{
			tool: mcp.NewTool("navigate_browser",
				mcp.WithDescription("Navigate a browser pane to a specific URL."),
				mcp.WithString("url", mcp.Required(),
					mcp.Description("The URL to navigate to")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the browser pane, or \"active\" for the current browser pane")),
			),
			action: "navigate",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId": req.GetString("pane_id", "active"),
					"url":    req.GetString("url", ""),
				}
			},
		},
		{
			tool: mcp.NewTool("show_diff",
				mcp.WithDescription("Show a diff view comparing two versions of content."),
				mcp.WithString("original", mcp.Required(),
					mcp.Description("The original content or file path")),
				mcp.WithString("modified", mcp.Required(),
					mcp.Description("The modified content or file path")),
				mcp.WithString("title", mcp.DefaultString("Diff View"),
					mcp.Description("Title for the diff view")),
			),
			action: "open_pane",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"type":     "diff",
					"original": req.GetString("original", ""),
					"modified": req.GetString("modified", ""),
					"title":    req.GetString("title", "Diff View"),
				}
			},
		},
		{
			tool: mcp.NewTool("request_approval",
				mcp.WithDescription("Request user approval before performing an action. The result carries a 'confirmed' boolean."),
				mcp.WithString("message", mcp.Required(),
					mcp.Description("Description of what needs approval")),
				mcp.WithString("title", mcp.DefaultString("Approval Required"),
					mcp.Description("Title for the approval dialog")),
			),
			action: "confirm",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"message": req.GetString("message", ""),
					"title":   req.GetString("title", "Approval Required"),
				}
			},
		},
		{
			tool: mcp.NewTool("notify",
				mcp.WithDescription("Show a notification toast to the user."),
				mcp.WithString("message", mcp.Required(),
					mcp.Description("The notification message")),
				mcp.WithString("notification_type", mcp.DefaultString("info"),
					mcp.Description("Type of notification (info, success, warning, error)")),
				mcp.WithNumber("duration", mcp.DefaultNumber(3000),
					mcp.Description("How long to show the notification in milliseconds")),
			),
			action: "notify",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"message":  req.GetString("message", ""),
					"type":     req.GetString("notification_type", "info"),
					"duration": req.GetInt("duration", 3000),
				}
			},
		},
		{
			tool: mcp.NewTool("get_browser_info",
				mcp.WithDescription("Get information about a browser pane (URL, title, etc.)."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the browser pane, or \"active\" for the current browser pane")),
			),
			action: "get_browser_info",
			args:   paneIDArgs,
		},
		{
			tool: mcp.NewTool("split_pane",
				mcp.WithDescription("Split an existing pane to create a new pane next to it."),
				mcp.WithString("direction", mcp.Required(),
					mcp.Description("Split direction (right, left, up, down)")),
				mcp.WithString("pane_type", mcp.Required(),
					mcp.Description("Type of pane to create (browser, editor, terminal, chat)")),
				mcp.WithString("content_id",
					mcp.Description("Content id for the new pane")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the pane to split, or \"active\" for the current pane")),
			),
			action: "split_pane",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId":    req.GetString("pane_id", "active"),
					"direction": req.GetString("direction", ""),
					"type":      req.GetString("pane_type", ""),
					"path":      req.GetString("content_id", ""),
				}
			},
		},
		{
			tool: mcp.NewTool("zen_mode",
				mcp.WithDescription("Toggle zen mode (fullscreen) for a pane."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the pane, or \"active\" for the current pane")),
			),
			action: "zen_mode",
			args:   paneIDArgs,
		},
		{
			tool: mcp.NewTool("run_terminal",
				mcp.WithDescription("Run a command in a terminal pane."),
				mcp.WithString("command", mcp.Required(),
					mcp.Description("The command to execute in the terminal")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the terminal pane, or \"active\" for the current terminal pane")),
			),
			action: "run_terminal",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"command": req.GetString("command", ""),
					"paneId":  req.GetString("pane_id", "active"),
				}
			},
		},
	}
}
