// internal/tools/searchplans/models.go
package searchplans

import (
	"insurance-mcp/internal/common/validation"
	"insurance-mcp/internal/models"
)

// Plan document fields read during result projection.
const (
	FieldPlanType = "Plan Type"
	FieldSummary  = "summary"
)

// UnknownPlan is the sentinel plan type of an incomplete document. Documents
// carrying it (or no plan type at all) are silently excluded from results.
const UnknownPlan = "Unknown Plan"

// InputSchema describes the BusinessProfile payload. Every field is
// optional; an absent field leaves its dimension unconstrained.
func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"business_size": {
				Type:        "integer",
				Description: "Number of employees in the business",
				Minimum:     validation.Float(1),
			},
			"location": {
				Type:        "string",
				Description: "State or region code the business operates in, e.g. CA",
			},
			"coverage_preference": {
				Type:        "string",
				Description: "Preferred plan network type",
				Enum:        []string{models.CoverageNational, models.CoverageLocal},
			},
		},
	}
}
