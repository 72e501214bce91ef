package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mzaglia/passmint/internal/breach"
	"github.com/mzaglia/passmint/internal/config"
	"github.com/mzaglia/passmint/internal/errors"
	"github.com/mzaglia/passmint/internal/history"
	"github.com/mzaglia/passmint/internal/ops"
	"github.com/mzaglia/passmint/internal/password"
)

// Handlers holds dependencies for MCP tool handlers. The store lives for the
// server process lifetime, so history accumulates across tool calls.
type Handlers struct {
	store   *history.Store
	cfg     *config.Config
	checker breach.Checker
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *history.Store, cfg *config.Config, checker breach.Checker) *Handlers {
	return &Handlers{store: store, cfg: cfg, checker: checker}
}

// Request types for each tool

// GenerateRequest represents the arguments for password_generate.
// Flag pointers distinguish "absent" (default true) from explicit false.
type GenerateRequest struct {
	Length    int   `json:"length,omitempty"`
	Uppercase *bool `json:"use_uppercase,omitempty"`
	Numbers   *bool `json:"use_numbers,omitempty"`
	Special   *bool `json:"use_special,omitempty"`
}

// GenerateManyRequest represents the arguments for password_generate_many.
type GenerateManyRequest struct {
	Count int `json:"count"`
	GenerateRequest
}

// EvaluateRequest represents the arguments for password_evaluate.
type EvaluateRequest struct {
	Password   string `json:"password"`
	SkipBreach bool   `json:"skip_breach,omitempty"`
}

// ExportRequest represents the arguments for history_export.
type ExportRequest struct {
	Format string `json:"format"`
	Path   string `json:"path,omitempty"`
}

// ImportRequest represents the arguments for history_import.
type ImportRequest struct {
	Path string `json:"path"`
}

// criteria maps request fields to generation criteria, applying defaults.
func (h *Handlers) criteria(req GenerateRequest) password.Criteria {
	c := password.Criteria{
		Length:    req.Length,
		Uppercase: req.Uppercase == nil || *req.Uppercase,
		Numbers:   req.Numbers == nil || *req.Numbers,
		Special:   req.Special == nil || *req.Special,
	}
	if c.Length == 0 {
		c.Length = h.cfg.DefaultLength
	}
	return c
}

// HandleGenerate handles the password_generate tool.
func (h *Handlers) HandleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GenerateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Generate(h.store, ops.GenerateInput{Criteria: h.criteria(input)})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleGenerateMany handles the password_generate_many tool.
func (h *Handlers) HandleGenerateMany(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[GenerateManyRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.GenerateMany(h.store, ops.GenerateManyInput{
		Count:    input.Count,
		Criteria: h.criteria(input.GenerateRequest),
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleEvaluate handles the password_evaluate tool.
func (h *Handlers) HandleEvaluate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EvaluateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	checker := h.checker
	if input.SkipBreach {
		checker = nil
	}

	result, err := ops.Evaluate(ops.EvaluateInput{Password: input.Password}, checker)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleList handles the history_list tool.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.List(h.store)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleExport handles the history_export tool.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(h.store, ops.ExportInput{Format: input.Format, Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleImport handles the history_import tool.
func (h *Handlers) HandleImport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ImportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Import(h.store, ops.ImportInput{Path: input.Path})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if perr, ok := err.(*errors.Error); ok {
		errorObj := map[string]any{
			"code":    perr.Code,
			"message": perr.Message,
			"status":  perr.Status,
		}
		if perr.Code != errors.ErrInternal && perr.Details != nil {
			errorObj["details"] = perr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
