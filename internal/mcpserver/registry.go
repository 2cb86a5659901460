// internal/mcpserver/registry.go
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"insurance-mcp/internal/common/config"
	"insurance-mcp/internal/common/logger"
	"insurance-mcp/internal/tools/estimateclaims"
	"insurance-mcp/internal/tools/searchplans"
)

// Entry pairs a tool descriptor with its handler.
type Entry struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// Registry holds the full tool set. It is built once at startup and not
// mutated afterwards.
type Registry struct {
	entries []Entry
}

// NewRegistry constructs every tool handler and collects their descriptors.
func NewRegistry(cfg *config.Config, store searchplans.PlanFinder, log logger.Logger) *Registry {
	search := searchplans.NewHandler(searchConfig(cfg), store, log)
	estimate := estimateclaims.NewHandler(estimateclaims.LoadConfig(), log)

	return &Registry{
		entries: []Entry{
			{Tool: search.Definition(), Handler: search.Handle},
			{Tool: estimate.Definition(), Handler: estimate.Handle},
		},
	}
}

func searchConfig(cfg *config.Config) *searchplans.Config {
	sc := searchplans.LoadConfig()
	if tc, ok := cfg.Tools[searchplans.ToolName]; ok {
		sc.Timeout = tc.TimeoutDuration()
	}
	return sc
}

// Entries returns the registered tool set in registration order.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Apply registers every enabled tool onto the server. Tools absent from the
// config's tool map are enabled.
func (r *Registry) Apply(s *server.MCPServer, cfg *config.Config, log logger.Logger) {
	for _, e := range r.entries {
		if !cfg.ToolEnabled(e.Tool.Name) {
			log.Warn("tool disabled by configuration", map[string]interface{}{
				"tool": e.Tool.Name,
			})
			continue
		}
		s.AddTool(e.Tool, e.Handler)
		log.Info("tool registered", map[string]interface{}{
			"tool": e.Tool.Name,
		})
	}
}
