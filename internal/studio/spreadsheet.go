package studio

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// spreadsheetTools covers CSV/XLSX pane CRUD and scripted transforms.
func spreadsheetTools() []relayTool {
	return []relayTool{
		{
			tool: mcp.NewTool("spreadsheet_read",
				mcp.WithDescription("Read data from a CSV/XLSX spreadsheet pane: headers, data rows, row/column counts, sheet info, and optionally column statistics."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\" for the current pane")),
				mcp.WithNumber("max_rows", mcp.DefaultNumber(200),
					mcp.Description("Maximum number of data rows to return")),
				mcp.WithBoolean("include_stats", mcp.DefaultBool(false),
					mcp.Description("Include column statistics (count, sum, avg, min, max, unique)")),
			),
			action: "spreadsheet_read",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId":       req.GetString("pane_id", "active"),
					"maxRows":      req.GetInt("max_rows", 200),
					"includeStats": req.GetBool("include_stats", false),
				}
			},
		},
		{
			tool: mcp.NewTool("spreadsheet_eval",
				mcp.WithDescription("Execute JavaScript to transform spreadsheet data. The code receives a `ctx` object with {headers: string[], data: any[][], XLSX: library} and should return {headers?, data?} to update the spreadsheet. Example (filter rows): \"ctx.data = ctx.data.filter(r => parseFloat(r[2]) > 100); return ctx;\""),
				mcp.WithString("code", mcp.Required(),
					mcp.Description("JavaScript code. Receives `ctx` with {headers, data, XLSX}; must return {headers?, data?}")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_eval",
			args:   codeArgs,
		},
		{
			tool: mcp.NewTool("spreadsheet_update_cell",
				mcp.WithDescription("Update a single cell in a spreadsheet."),
				mcp.WithNumber("row", mcp.Required(),
					mcp.Description("Row index (0-based)")),
				mcp.WithNumber("col", mcp.Required(),
					mcp.Description("Column index (0-based)")),
				mcp.WithString("value", mcp.Required(),
					mcp.Description("New cell value")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_update_cell",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId": req.GetString("pane_id", "active"),
					"row":    req.GetInt("row", 0),
					"col":    req.GetInt("col", 0),
					"value":  req.GetString("value", ""),
				}
			},
		},
		{
			tool: mcp.NewTool("spreadsheet_update_cells",
				mcp.WithDescription("Batch update multiple cells in a spreadsheet efficiently."),
				mcp.WithArray("updates", mcp.Required(),
					mcp.Description("List of updates, each with {\"row\": int, \"col\": int, \"value\": string}"),
					mcp.Items(map[string]any{"type": "object"})),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_update_cells",
			args: func(req mcp.CallToolRequest) map[string]any {
				args := map[string]any{
					"paneId": req.GetString("pane_id", "active"),
				}
				if updates, ok := req.GetArguments()["updates"]; ok {
					args["updates"] = updates
				}
				return args
			},
		},
		{
			tool: mcp.NewTool("spreadsheet_add_row",
				mcp.WithDescription("Add a row to the spreadsheet."),
				mcp.WithNumber("index", mcp.DefaultNumber(-1),
					mcp.Description("Position to insert the row (-1 appends at end)")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_add_row",
			args: func(req mcp.CallToolRequest) map[string]any {
				args := map[string]any{
					"paneId": req.GetString("pane_id", "active"),
				}
				if index := req.GetInt("index", -1); index >= 0 {
					args["index"] = index
				}
				return args
			},
		},
		{
			tool: mcp.NewTool("spreadsheet_delete_row",
				mcp.WithDescription("Delete a row from the spreadsheet."),
				mcp.WithNumber("index", mcp.Required(),
					mcp.Description("Row index to delete (0-based)")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_delete_row",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId": req.GetString("pane_id", "active"),
					"index":  req.GetInt("index", 0),
				}
			},
		},
		{
			tool: mcp.NewTool("spreadsheet_add_column",
				mcp.WithDescription("Add a column to the spreadsheet."),
				mcp.WithString("name",
					mcp.Description("Name for the new column header")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_add_column",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId": req.GetString("pane_id", "active"),
					"name":   req.GetString("name", ""),
				}
			},
		},
		{
			tool: mcp.NewTool("spreadsheet_delete_column",
				mcp.WithDescription("Delete a column from the spreadsheet."),
				mcp.WithNumber("col", mcp.Required(),
					mcp.Description("Column index to delete (0-based)")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_delete_column",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId": req.GetString("pane_id", "active"),
					"col":    req.GetInt("col", 0),
				}
			},
		},
		{
			tool: mcp.NewTool("spreadsheet_sort",
				mcp.WithDescription("Sort spreadsheet rows by a column."),
				mcp.WithNumber("col", mcp.Required(),
					mcp.Description("Column index to sort by (0-based)")),
				mcp.WithString("direction", mcp.DefaultString("asc"),
					mcp.Description("Sort direction"), mcp.Enum("asc", "desc")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_sort",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId":    req.GetString("pane_id", "active"),
					"col":       req.GetInt("col", 0),
					"direction": req.GetString("direction", "asc"),
				}
			},
		},
		{
			tool: mcp.NewTool("spreadsheet_stats",
				mcp.WithDescription("Get statistics for a spreadsheet column: count, unique, sum, avg, min, max."),
				mcp.WithNumber("col", mcp.Required(),
					mcp.Description("Column index (0-based)")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_stats",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId": req.GetString("pane_id", "active"),
					"col":    req.GetInt("col", 0),
				}
			},
		},
		{
			tool: mcp.NewTool("spreadsheet_save",
				mcp.WithDescription("Save spreadsheet changes to disk."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_save",
			args:   paneIDArgs,
		},
		{
			tool: mcp.NewTool("spreadsheet_export",
				mcp.WithDescription("Export spreadsheet to a different format."),
				mcp.WithString("format", mcp.DefaultString("csv"),
					mcp.Description("Export format"), mcp.Enum("csv", "json", "xlsx")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_export",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId": req.GetString("pane_id", "active"),
					"format": req.GetString("format", "csv"),
				}
			},
		},
		{
			tool: mcp.NewTool("spreadsheet_switch_sheet",
				mcp.WithDescription("Switch to a different sheet in an XLSX workbook."),
				mcp.WithString("sheet_name", mcp.Required(),
					mcp.Description("Name of the sheet to switch to")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the spreadsheet pane, or \"active\"")),
			),
			action: "spreadsheet_switch_sheet",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId":    req.GetString("pane_id", "active"),
					"sheetName": req.GetString("sheet_name", ""),
				}
			},
		},
	}
}
