package mcp

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mzaglia/passmint/internal/config"
	"github.com/mzaglia/passmint/internal/history"
)

// KnownTypes lists all valid tool type names.
var KnownTypes = []string{"password", "history"}

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"password_generate": {
		def:     generateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGenerate },
	},
	"password_generate_many": {
		def:     generateManyToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGenerateMany },
	},
	"password_evaluate": {
		def:     evaluateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEvaluate },
	},
	"history_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"history_export": {
		def:     exportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleExport },
	},
	"history_import": {
		def:     importToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleImport },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// GetTypeForTool extracts the type name from a tool name.
// Tool names follow the pattern "type_action" (e.g., "password_generate" → "password").
func GetTypeForTool(toolName string) string {
	if idx := strings.Index(toolName, "_"); idx > 0 {
		return toolName[:idx]
	}
	return ""
}

// NewServer creates a new MCP server with passmint tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
// The store is shared by all handlers and lives as long as the server.
func NewServer(store *history.Store, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"passmint",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(store, cfg, cfg.Checker())

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(store *history.Store, cfg *config.Config, version string) error {
	s := NewServer(store, cfg, version)
	return server.ServeStdio(s)
}
