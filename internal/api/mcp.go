package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kailash19961996/Artisty/internal/catalog"
	"github.com/kailash19961996/Artisty/internal/search"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Catalog *catalog.Catalog
	Search  *search.Orchestrator
}

// NewMCPServer creates an MCP server exposing the gallery to agent clients.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"artisty",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("Artisty demo art gallery. Search artworks, inspect details, and browse the catalog."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("search_gallery",
			mcp.WithDescription("Search the gallery with the storefront ranking. Returns the first page of matching artworks."),
			mcp.WithString("query", mcp.Description("Search query"), mcp.Required()),
		),
		mcpSearchGallery(deps),
	)

	s.AddTool(
		mcp.NewTool("artwork_details",
			mcp.WithDescription("Look up one artwork by its exact name."),
			mcp.WithString("name", mcp.Description("Artwork name, e.g. \"Neon Pride\""), mcp.Required()),
		),
		mcpArtworkDetails(deps),
	)

	s.AddTool(
		mcp.NewTool("list_origins",
			mcp.WithDescription("List the countries of origin represented in the catalog."),
		),
		mcpListOrigins(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"gallery://catalog",
			"Gallery Catalog",
			mcp.WithResourceDescription("Every artwork in the gallery as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceCatalog(deps),
	)

	return s
}

func mcpSearchGallery(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcpError("query is required"), nil
		}

		page := deps.Search.Page(query, 0)
		b, err := json.Marshal(page.Items)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpArtworkDetails(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcpError("name is required"), nil
		}

		a, ok := deps.Catalog.ByName(name)
		if !ok {
			return mcpError(fmt.Sprintf("no artwork named %q", name)), nil
		}
		b, err := json.Marshal(a)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal artwork: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpListOrigins(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		b, err := json.Marshal(deps.Catalog.Origins())
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal origins: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpResourceCatalog(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(deps.Catalog.All())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
