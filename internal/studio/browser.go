package studio

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// browserTools covers in-page browser interaction primitives.
func browserTools() []relayTool {
	return []relayTool{
		{
			tool: mcp.NewTool("browser_click",
				mcp.WithDescription("Click on an element in a browser pane, located by CSS selector or by visible text."),
				mcp.WithString("selector",
					mcp.Description("CSS selector for the element (e.g., \"button.submit\", \"#login-btn\")")),
				mcp.WithString("text",
					mcp.Description("Text content to match (e.g., \"Sign In\"); searches clickable elements")),
				mcp.WithNumber("index", mcp.DefaultNumber(0),
					mcp.Description("Which matching element to click if multiple found (0-indexed)")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the browser pane, or \"active\" for the current browser pane")),
			),
			action: "browser_click",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId":   req.GetString("pane_id", "active"),
					"selector": req.GetString("selector", ""),
					"text":     req.GetString("text", ""),
					"index":    req.GetInt("index", 0),
				}
			},
		},
		{
			tool: mcp.NewTool("browser_type",
				mcp.WithDescription("Type text into an input field in a browser pane."),
				mcp.WithString("selector", mcp.Required(),
					mcp.Description("CSS selector, placeholder text, input name, or aria-label to find the input")),
				mcp.WithString("text", mcp.Required(),
					mcp.Description("The text to type into the input")),
				mcp.WithBoolean("clear", mcp.DefaultBool(true),
					mcp.Description("Clear existing content before typing")),
				mcp.WithBoolean("submit", mcp.DefaultBool(false),
					mcp.Description("Submit the form after typing")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the browser pane, or \"active\" for the current browser pane")),
			),
			action: "browser_type",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId":   req.GetString("pane_id", "active"),
					"selector": req.GetString("selector", ""),
					"text":     req.GetString("text", ""),
					"clear":    req.GetBool("clear", true),
					"submit":   req.GetBool("submit", false),
				}
			},
		},
		{
			tool: mcp.NewTool("get_browser_content",
				mcp.WithDescription("Get the text content of a webpage in a browser pane, along with its URL and title."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the browser pane, or \"active\" for the current browser pane")),
			),
			action: "get_browser_content",
			args:   paneIDArgs,
		},
		{
			tool: mcp.NewTool("browser_screenshot",
				mcp.WithDescription("Take a screenshot of a browser pane. Returns the image as a base64 data URL plus the current URL and title."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the browser pane, or \"active\" for the current browser pane")),
			),
			action: "browser_screenshot",
			args:   paneIDArgs,
		},
		{
			tool: mcp.NewTool("browser_eval",
				mcp.WithDescription("Execute JavaScript code in a browser pane's page context and return the result."),
				mcp.WithString("code", mcp.Required(),
					mcp.Description("JavaScript code to execute in the page context")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the browser pane, or \"active\" for the current browser pane")),
			),
			action: "browser_eval",
			args:   codeArgs,
		},
	}
}
