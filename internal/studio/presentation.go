package studio

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// presentationTools covers PPTX pane read/write and shape editing.
func presentationTools() []relayTool {
	return []relayTool{
		{
			tool: mcp.NewTool("presentation_read",
				mcp.WithDescription("Read an overview of a PPTX presentation: slide count, current index, and per-slide summaries (text content, shape count, background)."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the presentation pane, or \"active\"")),
			),
			action: "presentation_read",
			args:   paneIDArgs,
		},
		{
			tool: mcp.NewTool("presentation_read_slide",
				mcp.WithDescription("Read detailed info about a specific slide including all shapes, text, positions, and colors."),
				mcp.WithNumber("slide_index", mcp.DefaultNumber(-1),
					mcp.Description("Slide index (0-based), -1 for the current slide")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the presentation pane, or \"active\"")),
			),
			action: "presentation_read_slide",
			args:   slideIndexArgs,
		},
		{
			tool: mcp.NewTool("presentation_eval",
				mcp.WithDescription("Execute JavaScript to transform presentation data. The code receives a `ctx` object with {slides: Slide[], currentIndex: number} and should return {slides?, currentIndex?}. Each slide has {name, shapes: [{type, xfrm: {x,y,cx,cy}, paras: [{html, align}], fillColor, shapeType}], background}."),
				mcp.WithString("code", mcp.Required(),
					mcp.Description("JavaScript code. Receives `ctx` with {slides, currentIndex}; return {slides?, currentIndex?}")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the presentation pane, or \"active\"")),
			),
			action: "presentation_eval",
			args:   codeArgs,
		},
		{
			tool: mcp.NewTool("presentation_update_text",
				mcp.WithDescription("Update the text content of a shape on a slide. Use presentation_read_slide to find shape indices."),
				mcp.WithNumber("shape_index", mcp.Required(),
					mcp.Description("Index of the shape to update (0-based)")),
				mcp.WithString("text", mcp.Required(),
					mcp.Description("New text content for the shape")),
				mcp.WithNumber("slide_index", mcp.DefaultNumber(-1),
					mcp.Description("Slide index (0-based), -1 for the current slide")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the presentation pane, or \"active\"")),
			),
			action: "presentation_update_text",
			args: func(req mcp.CallToolRequest) map[string]any {
				args := map[string]any{
					"paneId":     req.GetString("pane_id", "active"),
					"shapeIndex": req.GetInt("shape_index", 0),
					"text":       req.GetString("text", ""),
				}
				if index := req.GetInt("slide_index", -1); index >= 0 {
					args["slideIndex"] = index
				}
				return args
			},
		},
		{
			tool: mcp.NewTool("presentation_add_slide",
				mcp.WithDescription("Add a new slide after the current one."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the presentation pane, or \"active\"")),
			),
			action: "presentation_add_slide",
			args:   paneIDArgs,
		},
		{
			tool: mcp.NewTool("presentation_delete_slide",
				mcp.WithDescription("Delete a slide from the presentation."),
				mcp.WithNumber("slide_index", mcp.DefaultNumber(-1),
					mcp.Description("Slide index to delete (0-based), -1 for the current slide")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the presentation pane, or \"active\"")),
			),
			action: "presentation_delete_slide",
			args:   slideIndexArgs,
		},
		{
			tool: mcp.NewTool("presentation_duplicate_slide",
				mcp.WithDescription("Duplicate a slide in the presentation."),
				mcp.WithNumber("slide_index", mcp.DefaultNumber(-1),
					mcp.Description("Slide index to duplicate (0-based), -1 for the current slide")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the presentation pane, or \"active\"")),
			),
			action: "presentation_duplicate_slide",
			args:   slideIndexArgs,
		},
		{
			tool: mcp.NewTool("presentation_set_background",
				mcp.WithDescription("Set the background color for the current slide."),
				mcp.WithString("color", mcp.Required(),
					mcp.Description("Hex color code (e.g., \"#ffffff\", \"#1a1a2e\")")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the presentation pane, or \"active\"")),
			),
			action: "presentation_set_background",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId": req.GetString("pane_id", "active"),
					"color":  req.GetString("color", ""),
				}
			},
		},
		{
			tool: mcp.NewTool("presentation_add_shape",
				mcp.WithDescription("Add a shape to the current slide."),
				mcp.WithString("shape_type", mcp.Required(),
					mcp.Description("Shape type"),
					mcp.Enum("rect", "roundRect", "ellipse", "triangle", "diamond", "hexagon", "star", "arrow", "line")),
				mcp.WithString("color", mcp.DefaultString("#4285f4"),
					mcp.Description("Fill color as hex code")),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the presentation pane, or \"active\"")),
			),
			action: "presentation_add_shape",
			args: func(req mcp.CallToolRequest) map[string]any {
				return map[string]any{
					"paneId":    req.GetString("pane_id", "active"),
					"shapeType": req.GetString("shape_type", ""),
					"color":     req.GetString("color", "#4285f4"),
				}
			},
		},
		{
			tool: mcp.NewTool("presentation_save",
				mcp.WithDescription("Save presentation changes to disk."),
				mcp.WithString("pane_id", mcp.DefaultString("active"),
					mcp.Description("Id of the presentation pane, or \"active\"")),
			),
			action: "presentation_save",
			args:   paneIDArgs,
		},
	}
}

// slideIndexArgs serves tools taking a pane id and an optional slide index,
// where -1 means the current slide and is omitted from the payload.
func slideIndexArgs(req mcp.CallToolRequest) map[string]any {
	args := map[string]any{
		"paneId": req.GetString("pane_id", "active"),
	}
	if index := req.GetInt("slide_index", -1); index >= 0 {
		args["slideIndex"] = index
	}
	return args
}
