// internal/tools/estimateclaims/models.go
package estimateclaims

import (
	"insurance-mcp/internal/common/validation"
	"insurance-mcp/internal/models"
)

// Output is the stub reply until the estimator backend is wired in.
type Output struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// InputSchema describes the BioData payload. Unlike the plan search, every
// field is required: a partial profile cannot be priced.
func InputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"age": {
				Type:        "integer",
				Description: "Age of the individual in years",
				Minimum:     validation.Float(0),
			},
			"sex": {
				Type:        "string",
				Description: "Sex of the individual",
				Enum:        []string{models.SexFemale, models.SexMale},
			},
			"bmi": {
				Type:        "number",
				Description: "Body mass index",
				Minimum:     validation.Float(0),
			},
			"children": {
				Type:        "integer",
				Description: "Number of dependent children",
				Minimum:     validation.Float(0),
			},
			"smoker": {
				Type:        "string",
				Description: "Whether the individual smokes",
				Enum:        []string{models.SmokerYes, models.SmokerNo},
			},
			"region": {
				Type:        "string",
				Description: "Residential region of the individual",
				Enum:        []string{models.RegionSoutheast, models.RegionNorthwest, models.RegionOther},
			},
		},
		Required: []string{"age", "sex", "bmi", "children", "smoker", "region"},
	}
}
