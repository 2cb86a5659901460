// internal/eligibility/query.go
package eligibility

import "insurance-mcp/internal/models"

// Filterable plan document fields.
const (
	FieldNetworkType          = "Network Type"
	FieldBusinessSize         = "Business Size Eligibility"
	FieldLocationAvailability = "location_availability"
)

// AllStates is the wildcard entry in a plan's location_availability set.
const AllStates = "All states"

// BuildQuery translates a business profile into the filter predicate used to
// select eligible plans. Absent profile fields add no constraint.
//
// The coverage preference becomes a top-level equality that sits outside the
// OR-group list. Each present optional dimension contributes one OR-group:
// the size group matches any qualifying bucket or the "All sizes" wildcard,
// and the location group matches the profile's region or the "All states"
// wildcard. An empty profile yields an empty filter that matches the whole
// collection.
func BuildQuery(profile models.BusinessProfile) Predicate {
	query := andPredicate{}

	if profile.CoveragePreference != "" {
		query.equalities = append(query.equalities, Eq(FieldNetworkType, profile.CoveragePreference))
	}

	if profile.BusinessSize > 0 {
		categories := CategoriesForSize(profile.BusinessSize)
		query.groups = append(query.groups, Or(
			In(FieldBusinessSize, categories...),
			Eq(FieldBusinessSize, SizeAll),
		))
	}

	if profile.Location != "" {
		query.groups = append(query.groups, Or(
			In(FieldLocationAvailability, profile.Location),
			In(FieldLocationAvailability, AllStates),
		))
	}

	return query
}
