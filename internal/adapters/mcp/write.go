package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"linkhoard/internal/application/commands"
	"linkhoard/internal/ports"
)

// RegisterWriteTools adds all mutating link tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.LinkStore) {
	s.AddTool(addTool(), addHandler(store))
	s.AddTool(editTool(), editHandler(store))
	s.AddTool(removeTool(), removeHandler(store))
	s.AddTool(moveTool(), moveHandler(store))
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Add a link at the end of the list. The name defaults to the path's base name."),
		mcp.WithString("path",
			mcp.Description("Filesystem path of the file or directory"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("Display name. Omit to derive from the path."),
		),
		mcp.WithString("tags",
			mcp.Description("Comma-separated tags"),
		),
	)
}

func addHandler(store ports.LinkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddLinkCommand(store,
			req.GetString("name", ""),
			req.GetString("path", ""),
			req.GetString("tags", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- edit ---

func editTool() mcp.Tool {
	return mcp.NewTool("edit",
		mcp.WithDescription("Edit a link's name, path or tags. Only the supplied fields change."),
		mcp.WithString("id",
			mcp.Description("Id of the link to edit"),
			mcp.Required(),
		),
		mcp.WithString("name",
			mcp.Description("New display name"),
		),
		mcp.WithString("path",
			mcp.Description("New filesystem path"),
		),
		mcp.WithString("tags",
			mcp.Description("New comma-separated tags"),
		),
	)
}

func editHandler(store ports.LinkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := parseID(req.GetString("id", ""))
		if err != nil {
			return toolError(err)
		}

		var fields ports.UpdateFields
		if name := req.GetString("name", ""); name != "" {
			fields.Name = &name
		}
		if path := req.GetString("path", ""); path != "" {
			fields.Path = &path
		}
		if tags := req.GetString("tags", ""); tags != "" {
			fields.Tags = &tags
		}

		result, err := commands.NewEditLinkCommand(store, id, fields).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove ---

func removeTool() mcp.Tool {
	return mcp.NewTool("remove",
		mcp.WithDescription("Remove a link. Positions of the remaining links are compacted."),
		mcp.WithString("id",
			mcp.Description("Id of the link to remove"),
			mcp.Required(),
		),
	)
}

func removeHandler(store ports.LinkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := parseID(req.GetString("id", ""))
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewRemoveLinkCommand(store, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Move a link to a new zero-based position; links in between shift by one."),
		mcp.WithString("id",
			mcp.Description("Id of the link to move"),
			mcp.Required(),
		),
		mcp.WithString("position",
			mcp.Description("Target zero-based position"),
			mcp.Required(),
		),
	)
}

func moveHandler(store ports.LinkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := parseID(req.GetString("id", ""))
		if err != nil {
			return toolError(err)
		}
		pos, err := strconv.Atoi(req.GetString("position", ""))
		if err != nil {
			return toolError(fmt.Errorf("position must be an integer: %w", err))
		}

		result, err := commands.NewMoveLinkCommand(store, id, pos).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id must be an integer: %w", err)
	}
	return id, nil
}
