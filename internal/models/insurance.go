// internal/models/insurance.go
package models

// BusinessProfile carries the eligibility attributes of a business looking
// for group health coverage. Every field is optional; the zero value of a
// field means the dimension is unconstrained.
type BusinessProfile struct {
	BusinessSize       int    `json:"business_size,omitempty"`
	Location           string `json:"location,omitempty"`
	CoveragePreference string `json:"coverage_preference,omitempty"`
}

// Coverage preference values accepted by BusinessProfile.
const (
	CoverageNational = "National"
	CoverageLocal    = "Local"
)

// BioData describes one individual for claims estimation. All fields are
// required.
type BioData struct {
	Age      int     `json:"age"`
	Sex      string  `json:"sex"`
	BMI      float64 `json:"bmi"`
	Children int     `json:"children"`
	Smoker   string  `json:"smoker"`
	Region   string  `json:"region"`
}

// Enum values for BioData fields.
const (
	SexFemale = "female"
	SexMale   = "male"

	SmokerYes = "yes"
	SmokerNo  = "no"

	RegionSoutheast = "southeast"
	RegionNorthwest = "northwest"
	RegionOther     = "other"
)
