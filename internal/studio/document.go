package studio

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// documentTools covers DOCX pane read/write/format operations.
func documentTools() []relayTool {
	return []relayTool{
		{
			tool: mcp.NewTool("document_read",
				mcp.WithDescription("Read content from a DOCX document pane, with stats (word count, etc.) and the file path."),
				mcp.WithString("format", mcp.DefaultString("text"),
					mcp.Description("Output format"), mcp.Enum("text", "html")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the document pane, or \"active\"")),
			),
			action: "document_read",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId": req.GetString("pane_id", "active"),
					"format": req.GetString("format", "text"),
				}
			},
		},
		{
			tool: mcp.NewTool("document_eval",
				mcp.WithDescription("Execute JavaScript to transform document content. The code receives a `ctx` object with {html: string, text: string, editorEl: HTMLElement} and should return {html: string} to update the document. Example (uppercase): \"return { html: ctx.html.replace(/([^<>]+)(?=<|$)/g, m => m.toUpperCase()) };\""),
				mcp.WithString("code", mcp.Required(),
					mcp.Description("JavaScript code. Receives `ctx` with {html, text, editorEl}; return {html} to update")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the document pane, or \"active\"")),
			),
			action: "document_eval",
			args:   codeArgs,
		},
		{
			tool: mcp.NewTool("document_write",
				mcp.WithDescription("Write HTML content to a DOCX document pane."),
				mcp.WithString("content", mcp.Required(),
					mcp.Description("HTML content to write")),
				mcp.WithString("position", mcp.DefaultString("replace"),
					mcp.Description("Where to place content"),
					mcp.Enum("replace", "end", "start", "cursor")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the document pane, or \"active\"")),
			),
			action: "document_write",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId":   req.GetString("pane_id", "active"),
					"content":  req.GetString("content", ""),
					"position": req.GetString("position", "replace"),
				}
			},
		},
		{
			tool: mcp.NewTool("document_find_replace",
				mcp.WithDescription("Find and optionally replace text in a DOCX document. With an empty replacement the match count is returned."),
				mcp.WithString("search", mcp.Required(),
					mcp.Description("Text to search for")),
				mcp.WithString("replace",
					mcp.Description("Replacement text (empty just counts matches)")),
				mcp.WithBoolean("replace_all", mcp.DefaultBool(true),
					mcp.Description("Replace all occurrences rather than just the first")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the document pane, or \"active\"")),
			),
			action: "document_find_replace",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId":     req.GetString("pane_id", "active"),
					"search":     req.GetString("search", ""),
					"replace":    req.GetString("replace", ""),
					"replaceAll": req.GetBool("replace_all", true),
				}
			},
		},
		{
			tool: mcp.NewTool("document_format",
				mcp.WithDescription("Apply formatting to the document via document.execCommand. Common commands: bold, italic, underline, strikeThrough, justifyLeft, justifyCenter, justifyRight, justifyFull, insertUnorderedList, insertOrderedList, indent, outdent, fontName (value=font), fontSize (value=1-7), foreColor (value=#hex), hiliteColor (value=#hex)."),
				mcp.WithString("command", mcp.Required(),
					mcp.Description("The formatting command to execute")),
				mcp.WithString("value",
					mcp.Description("Optional value for the command (e.g., font name, color)")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the document pane, or \"active\"")),
			),
			action: "document_format",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId":  req.GetString("pane_id", "active"),
					"command": req.GetString("command", ""),
					"value":   req.GetString("value", ""),
				}
			},
		},
		{
			tool: mcp.NewTool("document_insert_table",
				mcp.WithDescription("Insert a table into the document at the cursor position."),
				mcp.WithNumber("rows", mcp.Required(),
					mcp.Description("Number of rows")),
				mcp.WithNumber("cols", mcp.Required(),
					mcp.Description("Number of columns")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the document pane, or \"active\"")),
			),
			action: "document_insert_table",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId": req.GetString("pane_id", "active"),
					"rows":   req.GetInt("rows", 0),
					"cols":   req.GetInt("cols", 0),
				}
			},
		},
		{
			tool: mcp.NewTool("document_save",
				mcp.WithDescription("Save document changes to disk."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the document pane, or \"active\"")),
			),
			action: "document_save",
			args:   paneIDArgs,
		},
		{
			tool: mcp.NewTool("document_stats",
				mcp.WithDescription("Get document statistics: word count, character count, estimated page count."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the document pane, or \"active\"")),
			),
			action: "document_stats",
			args:   paneIDArgs,
		},
	}
}
