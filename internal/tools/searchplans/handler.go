// internal/tools/searchplans/handler.go
package searchplans

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"insurance-mcp/internal/common/errors"
	"insurance-mcp/internal/common/logger"
	"insurance-mcp/internal/common/metrics"
	"insurance-mcp/internal/common/validation"
	"insurance-mcp/internal/eligibility"
	"insurance-mcp/internal/models"
)

// ToolName identifies the plan search tool.
const ToolName = "search_insurance_plans"

const toolDescription = "Search group health insurance plans a business is eligible for " +
	"based on its employee count, location, and coverage preference. " +
	"Returns a mapping of plan type to plan summary. All criteria are optional; " +
	"omitted criteria do not restrict the search."

// PlanFinder queries the plan document store.
type PlanFinder interface {
	FindPlans(ctx context.Context, filter map[string]interface{}) ([]map[string]interface{}, error)
}

// Handler serves search_insurance_plans.
type Handler struct {
	config *Config
	store  PlanFinder
	logger logger.Logger
	errors *errors.ErrorHandler
}

func NewHandler(config *Config, store PlanFinder, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  store,
		logger: log,
		errors: errors.NewErrorHandler(log),
	}
}

// Definition returns the tool descriptor advertised to clients. The input
// schema is the same value ValidateInput checks against.
func (h *Handler) Definition() mcp.Tool {
	raw, err := json.Marshal(InputSchema())
	if err != nil {
		// InputSchema is a static value; this cannot fail at runtime.
		panic(err)
	}
	return mcp.NewToolWithRawSchema(ToolName, toolDescription, raw)
}

// Handle adapts the transport request to the core search: validate the
// payload, decode the profile, run the search, and marshal the result map
// as the text content of the reply.
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

	profile, err := decodeProfile(args)
	if err != nil {
		stdErr := h.errors.HandleToolError(ToolName,
			errors.NewValidationFailedError([]string{err.Error()}))
		return mcp.NewToolResultError(stdErr.Message + ": " + stdErr.Details), nil
	}

	plans := h.Execute(ctx, profile)

	payload, err := json.Marshal(plans)
	if err != nil {
		stdErr := h.errors.HandleToolError(ToolName, err)
		return mcp.NewToolResultError(stdErr.Message), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// Execute runs the plan search and never fails: store errors are logged,
// counted, and masked as an empty result so a flaky store degrades the
// answer instead of the conversation.
func (h *Handler) Execute(ctx context.Context, profile models.BusinessProfile) map[string]string {
	plans, err := h.execute(ctx, profile)
	if err != nil {
		h.errors.HandleToolError(ToolName, err)
		metrics.StoreQueriesFailed.WithLabelValues(ToolName).Inc()
		return map[string]string{}
	}
	return plans
}

// execute builds the eligibility filter, queries the store, and projects
// matching documents down to a plan-type to summary map.
func (h *Handler) execute(ctx context.Context, profile models.BusinessProfile) (map[string]string, error) {
	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	filter := eligibility.BuildQuery(profile).Map()

	h.logger.Debug("executing plan search", map[string]interface{}{
		"tool":   ToolName,
		"filter": filter,
	})

	docs, err := h.store.FindPlans(ctx, filter)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewPlanSearchTimeoutError()
		}
		return nil, errors.NewPlanSearchFailedError(err)
	}

	plans := make(map[string]string)
	for _, doc := range docs {
		planType, _ := doc[FieldPlanType].(string)
		if planType == "" || planType == UnknownPlan {
			continue
		}
		summary, _ := doc[FieldSummary].(string)
		if summary == "" {
			continue
		}
		// Later documents win when plan types collide.
		plans[planType] = summary
	}

	h.logger.Info("plan search completed", map[string]interface{}{
		"tool":    ToolName,
		"matched": len(docs),
		"plans":   len(plans),
	})

	return plans, nil
}

// decodeProfile maps the validated argument set onto a BusinessProfile via
// a JSON round trip, so numeric arguments decode regardless of whether the
// transport delivered them as float64 or json.Number.
func decodeProfile(args map[string]interface{}) (models.BusinessProfile, error) {
	var profile models.BusinessProfile
	raw, err := json.Marshal(args)
	if err != nil {
		return profile, err
	}
	if err := json.Unmarshal(raw, &profile); err != nil {
		return profile, err
	}
	return profile, nil
}
