// internal/tools/estimateclaims/handler.go
package estimateclaims

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"insurance-mcp/internal/common/errors"
	"insurance-mcp/internal/common/logger"
	"insurance-mcp/internal/common/validation"
)

// ToolName identifies the claims estimation tool.
const ToolName = "estimate_claims"

const toolDescription = "Estimate expected annual medical claims cost for an individual " +
	"from their biographical and health profile. All fields are required."

// Handler serves estimate_claims. The prediction backend is not built yet:
// valid input gets a structured not-implemented reply so callers can
// distinguish a stub from a failure.
type Handler struct {
	config *Config
	logger logger.Logger
	errors *errors.ErrorHandler
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log,
		errors: errors.NewErrorHandler(log),
	}
}

// Definition returns the tool descriptor advertised to clients.
func (h *Handler) Definition() mcp.Tool {
	raw, err := json.Marshal(InputSchema())
	if err != nil {
		panic(err)
	}
	return mcp.NewToolWithRawSchema(ToolName, toolDescription, raw)
}

// Handle validates the payload and returns the stub reply. Validation runs
// for real so the contract is enforced before the estimator exists.
func (h *Handler) Handle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		args = map[string]interface{}{}
	}

	result, err := validation.ValidateInput(args, InputSchema())
	if err != nil {
		stdErr := h.errors.HandleToolError(ToolName, err)
		return mcp.NewToolResultError(stdErr.Message), nil
	}
	if !result.Valid {
		stdErr := h.errors.HandleToolError(ToolName,
			errors.NewValidationFailedError(result.GetErrorMessages()))
		return mcp.NewToolResultError(stdErr.Message + ": " + stdErr.Details), nil
	}

	stub := errors.NewNotImplementedError("Claims estimate functionality")

	h.logger.Info("claims estimate requested", map[string]interface{}{
		"tool":   ToolName,
		"status": string(stub.Code),
	})

	out := Output{
		Status:  "not_implemented",
		Message: stub.Message,
	}
	payload, err := json.Marshal(out)
	if err != nil {
		stdErr := h.errors.HandleToolError(ToolName, err)
		return mcp.NewToolResultError(stdErr.Message), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
