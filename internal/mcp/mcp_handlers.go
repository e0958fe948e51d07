package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Daniromero1410/Mentis/core"
	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// assessmentFromRequest builds an assessment from the tool arguments.
func assessmentFromRequest(request mcp.CallToolRequest) (*schema.Assessment, error) {
	raw, err := request.RequireString("items_json")
	if err != nil {
		return nil, err
	}
	var items []schema.RawRatedItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("items_json must be a JSON array of items: %w", err)
	}

	a := &schema.Assessment{
		EvaluationID: request.GetString("evaluation_id", ""),
		Subject:      schema.Subject{Name: request.GetString("subject_name", "")},
		Items:        items,
	}
	if args := request.GetArguments(); args != nil {
		if _, ok := args["has_diagnosis"]; ok {
			v := request.GetBool("has_diagnosis", false)
			a.Subject.HasDiagnosis = &v
		}
	}
	return a, nil
}

func (h *toolHandler) handleComputeProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := assessmentFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	report, err := core.GetProfileResults(ctx, h.baseCfg.Clone(), h.mgr, a)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("profile failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGenerateConcept(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := assessmentFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
	}

	cfg := h.baseCfg.Clone()
	if v := strings.ToLower(strings.TrimSpace(request.GetString("variant", ""))); v != "" {
		variant := schema.ConceptVariant(v)
		if _, ok := schema.ValidVariants[variant]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid variant '%s'. must be valoracion, prueba_trabajo", v)), nil
		}
		cfg.Variant = variant
	}

	report, err := core.GetConceptResults(ctx, cfg, h.mgr, a)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("concept failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListCatalog(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var categories []schema.Category
	if c := request.GetString("category", ""); c != "" {
		cat, err := schema.ParseCategory(c)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid category: %v", err)), nil
		}
		categories = append(categories, cat)
	}

	jsonData, _ := json.MarshalIndent(schema.Catalog(categories...), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
