package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "linkhoard/internal/adapters/mcp"
	"linkhoard/internal/adapters/sqlite"
	"linkhoard/internal/config"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("linkhoard-mcp: %v", err)
	}

	dataFlag := flag.String("data", settings.DataDir, "path to the data directory")
	flag.Parse()

	store, err := sqlite.Open(*dataFlag)
	if err != nil {
		log.Fatalf("linkhoard-mcp: %v", err)
	}
	defer store.Close()

	mcpServer := server.NewMCPServer(
		"linkhoard-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check that returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("linkhoard-mcp: %v", err)
	}
}
