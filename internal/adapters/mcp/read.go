package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"linkhoard/internal/application/commands"
	"linkhoard/internal/domain"
	"linkhoard/internal/ports"
)

// RegisterReadTools adds all read-only link tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.LinkStore) {
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(searchTool(), searchHandler(store))
	s.AddTool(exportTool(), exportHandler(store))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List all stored links in display order, with their ids, positions, tags and paths."),
	)
}

func listHandler(store ports.LinkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		links, err := commands.NewListLinksCommand(store, "").Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatLinks(links)
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search links by keyword. Matches name, path and tags case-insensitively; results keep display order."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(store ports.LinkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		links, err := commands.NewListLinksCommand(store, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatLinks(links)
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Export all links as a JSON envelope suitable for re-import."),
	)
}

func exportHandler(store ports.LinkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var buf bytes.Buffer
		if _, err := commands.NewExportLinksCommand(store, &buf).Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(buf.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatLinks(links []domain.Link) (*mcp.CallToolResult, error) {
	if len(links) == 0 {
		return mcp.NewToolResultText("No links."), nil
	}
	var sb strings.Builder
	for _, l := range links {
		sb.WriteString(formatLink(l))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatLink(l domain.Link) string {
	tags := l.Tags
	if tags == "" {
		tags = "-"
	}
	return fmt.Sprintf("#%d  pos=%d  %s  [%s]  %s", l.ID, l.Position, l.DisplayName(), tags, l.Path)
}
