// internal/eligibility/categories_test.go
package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Size Category Tests
// ==========================

func TestCategoriesForSize(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected []string
	}{
		{
			name:     "small business lower bound",
			count:    2,
			expected: []string{Size2to50, Size2to99, SizeAll},
		},
		{
			name:     "small business upper bound",
			count:    50,
			expected: []string{Size2to50, Size2to99, SizeAll},
		},
		{
			name:     "mid-size overlaps two buckets",
			count:    75,
			expected: []string{Size2to99, Size51to99, SizeAll},
		},
		{
			name:     "bucket boundary at 51",
			count:    51,
			expected: []string{Size2to99, Size51to99, SizeAll},
		},
		{
			name:     "bucket boundary at 99",
			count:    99,
			expected: []string{Size2to99, Size51to99, SizeAll},
		},
		{
			name:     "medium business",
			count:    100,
			expected: []string{Size100to499, SizeAll},
		},
		{
			name:     "large business",
			count:    2999,
			expected: []string{Size500to2999, SizeAll},
		},
		{
			name:     "enterprise",
			count:    3500,
			expected: []string{Size3000Plus, SizeAll},
		},
		{
			name:     "single employee only matches the wildcard",
			count:    1,
			expected: []string{SizeAll},
		},
		{
			name:     "zero employees only matches the wildcard",
			count:    0,
			expected: []string{SizeAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategoriesForSize(tt.count))
		})
	}
}

// The buckets widen rather than partition: a count inside 51-99 must also
// appear in 2-99. This overlap is intentional and must not be "fixed" into a
// partition: a plan document lists a single bucket, and the widened set is
// what lets any one matching bucket qualify the plan.
func TestCategoriesForSize_OverlapIsIntentional(t *testing.T) {
	for count := 51; count <= 99; count++ {
		categories := CategoriesForSize(count)
		assert.Contains(t, categories, Size2to99, "count %d", count)
		assert.Contains(t, categories, Size51to99, "count %d", count)
	}
}

func TestCategoriesForSize_SmallRangeExcludesOthers(t *testing.T) {
	for count := 2; count <= 50; count++ {
		categories := CategoriesForSize(count)
		assert.Contains(t, categories, Size2to50, "count %d", count)
		assert.Contains(t, categories, Size2to99, "count %d", count)
		assert.Contains(t, categories, SizeAll, "count %d", count)
		assert.NotContains(t, categories, Size51to99, "count %d", count)
		assert.NotContains(t, categories, Size100to499, "count %d", count)
		assert.NotContains(t, categories, Size500to2999, "count %d", count)
		assert.NotContains(t, categories, Size3000Plus, "count %d", count)
	}
}

func TestCategoriesForSize_AlwaysIncludesWildcardLast(t *testing.T) {
	for _, count := range []int{0, 1, 2, 60, 250, 1000, 5000} {
		categories := CategoriesForSize(count)
		assert.Equal(t, SizeAll, categories[len(categories)-1])
	}
}
