// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes oxidegen generation as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oxidegen/oxidegen"
)

const serverInstructions = `oxidegen MCP server — generates Rust API-client source from resolved model documents.

Tools:
- generate: render a resolved model document (YAML) into Rust sources on disk
- inspect: summarize the objects, builders, and typestate markers a model would generate

Models are the output of schema resolution, not raw OpenAPI documents.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oxidegen", Version: oxidegen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate Rust API-client source from a resolved model document. Requires model_path and output_dir. Returns a manifest of generated files and any generation issues.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Inspect a resolved model document without writing files. Returns, per object, the builders that would be generated with their constructor names, required typestate markers, and container layout decisions.",
	}, handleInspect)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
