// internal/eligibility/categories.go
package eligibility

// Business size eligibility buckets as they appear on stored plan documents.
// Buckets deliberately overlap: a single employee count can fall into more
// than one bucket, and a plan only needs to list one matching bucket to be
// eligible.
const (
	Size2to50     = "2-50"
	Size2to99     = "2-99"
	Size51to99    = "51-99"
	Size100to499  = "100-499"
	Size500to2999 = "500-2,999"
	Size3000Plus  = "3,000+"
	SizeAll       = "All sizes"
)

// CategoriesForSize maps an employee count to every size bucket it qualifies
// for, always ending with the universal "All sizes" bucket. The function
// widens rather than partitions, so callers must not assume the buckets are
// mutually exclusive. Total for any input; counts below 2 only yield
// "All sizes".
func CategoriesForSize(employeeCount int) []string {
	categories := []string{}

	if employeeCount >= 2 && employeeCount <= 50 {
		categories = append(categories, Size2to50)
	}
	if employeeCount >= 2 && employeeCount <= 99 {
		categories = append(categories, Size2to99)
	}
	if employeeCount >= 51 && employeeCount <= 99 {
		categories = append(categories, Size51to99)
	}
	if employeeCount >= 100 && employeeCount <= 499 {
		categories = append(categories, Size100to499)
	}
	if employeeCount >= 500 && employeeCount <= 2999 {
		categories = append(categories, Size500to2999)
	}
	if employeeCount >= 3000 {
		categories = append(categories, Size3000Plus)
	}

	// Every business qualifies for plans open to all sizes.
	categories = append(categories, SizeAll)

	return categories
}
