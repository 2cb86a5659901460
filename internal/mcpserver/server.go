// internal/mcpserver/server.go
package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"insurance-mcp/internal/common/config"
	"insurance-mcp/internal/common/logger"
	"insurance-mcp/internal/common/metrics"
	"insurance-mcp/internal/common/observability"
)

// New builds the MCP server with the tool set registered and per-call
// observability middleware installed.
func New(cfg *config.Config, registry *Registry, log logger.Logger, obs *observability.Observability) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.App.Name,
		cfg.App.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(observeToolCalls(log, obs)),
	)
	registry.Apply(s, cfg, log)
	return s
}

// observeToolCalls wraps every tool handler with a correlation id, timing,
// and outcome metrics. A handler error and an IsError result both count as
// failures.
func observeToolCalls(log logger.Logger, obs *observability.Observability) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			tool := request.Params.Name
			callID := uuid.New().String()
			start := time.Now()

			callLog := log.WithFields(map[string]interface{}{
				"tool":   tool,
				"callId": callID,
			})
			callLog.Debug("tool call started", nil)

			result, err := next(ctx, request)

			duration := time.Since(start)
			status := "success"
			switch {
			case err != nil:
				status = "error"
				metrics.ToolCallsFailed.WithLabelValues(tool, "INTERNAL_ERROR").Inc()
			case result != nil && result.IsError:
				status = "error"
				metrics.ToolCallsFailed.WithLabelValues(tool, "TOOL_ERROR").Inc()
			default:
				metrics.ToolCallsCompleted.WithLabelValues(tool).Inc()
			}
			metrics.ToolCallDuration.WithLabelValues(tool).Observe(duration.Seconds())
			if obs != nil {
				obs.RecordToolCall(ctx, tool, status)
				obs.RecordToolCallDuration(ctx, tool, duration)
			}

			callLog.Info("tool call finished", map[string]interface{}{
				"status":     status,
				"durationMs": duration.Milliseconds(),
			})
			return result, err
		}
	}
}

// ServeStdio blocks serving the MCP protocol over stdin/stdout.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// ServeHTTP blocks serving the streamable HTTP transport on the configured
// host and port.
func ServeHTTP(s *server.MCPServer, cfg config.ServerConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	httpServer := server.NewStreamableHTTPServer(s)
	return httpServer.Start(addr)
}
