// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// itemsJSONDescription documents the items argument shared by the evaluation tools.
const itemsJSONDescription = `JSON array of rated items, e.g. [{"category": "demandas_jornada", "item_number": 1, "rating": "alto"}]. ` +
	`Ratings are alto, medio, bajo or empty for not rated.`

// NewMCPServer initializes and configures the Mentis MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Mentis Psychosocial Risk Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	categories := make([]string, len(schema.AllCategories))
	for i, c := range schema.AllCategories {
		categories[i] = string(c)
	}

	// --- 1. Tool: compute_profile ---
	s.AddTool(mcp.NewTool("compute_profile",
		mcp.WithDescription("Aggregate rated items by category and classify the psychosocial risk profile."),
		mcp.WithString("items_json", mcp.Description(itemsJSONDescription), mcp.Required()),
		mcp.WithString("evaluation_id", mcp.Description("Evaluation identifier. A random UUID is used when empty.")),
		mcp.WithString("subject_name", mcp.Description("Name of the evaluated worker.")),
	), h.handleComputeProfile)

	// --- 2. Tool: generate_concept ---
	s.AddTool(mcp.NewTool("generate_concept",
		mcp.WithDescription("Write the Spanish occupational psychology concept (analysis and recommendations) for rated items."),
		mcp.WithString("items_json", mcp.Description(itemsJSONDescription), mcp.Required()),
		mcp.WithString("subject_name", mcp.Description("Name of the evaluated worker; drives grammatical agreement.")),
		mcp.WithBoolean("has_diagnosis", mcp.Description("Whether the worker has a mental health diagnosis.")),
		mcp.WithString("variant", mcp.Description("Document flavor. Defaults to 'valoracion'."), mcp.Enum(string(schema.ValoracionVariant), string(schema.PruebaTrabajoVariant))),
		mcp.WithString("evaluation_id", mcp.Description("Evaluation identifier. A random UUID is used when empty.")),
	), h.handleGenerateConcept)

	// --- 3. Tool: list_catalog ---
	s.AddTool(mcp.NewTool("list_catalog",
		mcp.WithDescription("List the canonical questionnaire items, optionally for a single category."),
		mcp.WithString("category", mcp.Description("Category to list. All categories when empty."), mcp.Enum(categories...)),
	), h.handleListCatalog)

	return s
}

// StartMCPServer starts the Mentis MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
