// internal/eligibility/query_test.go
package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurance-mcp/internal/models"
)

// ==========================
// Query Construction Tests
// ==========================

func TestBuildQuery_EmptyProfile(t *testing.T) {
	filter := BuildQuery(models.BusinessProfile{}).Map()
	assert.Empty(t, filter, "an unconstrained profile must match every document")
}

func TestBuildQuery_CoverageOnly(t *testing.T) {
	filter := BuildQuery(models.BusinessProfile{CoveragePreference: models.CoverageLocal}).Map()

	assert.Equal(t, map[string]interface{}{
		FieldNetworkType: models.CoverageLocal,
	}, filter)
}

func TestBuildQuery_SizeOnly_SingleGroupMergesIntoFilter(t *testing.T) {
	filter := BuildQuery(models.BusinessProfile{BusinessSize: 10}).Map()

	require.Len(t, filter, 1)
	orClauses, ok := filter["$or"].([]interface{})
	require.True(t, ok, "single OR-group becomes the whole filter")
	require.Len(t, orClauses, 2)

	assert.Equal(t, map[string]interface{}{
		FieldBusinessSize: map[string]interface{}{
			"$in": []string{Size2to50, Size2to99, SizeAll},
		},
	}, orClauses[0])
	assert.Equal(t, map[string]interface{}{
		FieldBusinessSize: SizeAll,
	}, orClauses[1], "the redundant All-sizes equality branch is kept")
}

func TestBuildQuery_LocationOnly(t *testing.T) {
	filter := BuildQuery(models.BusinessProfile{Location: "TX"}).Map()

	require.Len(t, filter, 1)
	orClauses, ok := filter["$or"].([]interface{})
	require.True(t, ok)
	require.Len(t, orClauses, 2)

	assert.Equal(t, map[string]interface{}{
		FieldLocationAvailability: map[string]interface{}{"$in": []string{"TX"}},
	}, orClauses[0])
	assert.Equal(t, map[string]interface{}{
		FieldLocationAvailability: map[string]interface{}{"$in": []string{AllStates}},
	}, orClauses[1])
}

// Fully specified profile: coverage equality sits beside an $and of the two
// OR-groups, i.e. NetworkType = "National" AND (size in buckets OR size =
// "All sizes") AND (location contains "CA" OR location contains "All states").
func TestBuildQuery_FullProfile(t *testing.T) {
	profile := models.BusinessProfile{
		BusinessSize:       60,
		Location:           "CA",
		CoveragePreference: models.CoverageNational,
	}

	filter := BuildQuery(profile).Map()
	require.Len(t, filter, 2)

	assert.Equal(t, models.CoverageNational, filter[FieldNetworkType])

	groups, ok := filter["$and"].([]interface{})
	require.True(t, ok, "two OR-groups must be conjoined under $and")
	require.Len(t, groups, 2)

	sizeGroup, ok := groups[0].(map[string]interface{})
	require.True(t, ok)
	sizeClauses := sizeGroup["$or"].([]interface{})
	assert.Equal(t, map[string]interface{}{
		FieldBusinessSize: map[string]interface{}{
			"$in": []string{Size2to99, Size51to99, SizeAll},
		},
	}, sizeClauses[0])
	assert.Equal(t, map[string]interface{}{FieldBusinessSize: SizeAll}, sizeClauses[1])

	locationGroup, ok := groups[1].(map[string]interface{})
	require.True(t, ok)
	locationClauses := locationGroup["$or"].([]interface{})
	assert.Equal(t, map[string]interface{}{
		FieldLocationAvailability: map[string]interface{}{"$in": []string{"CA"}},
	}, locationClauses[0])
	assert.Equal(t, map[string]interface{}{
		FieldLocationAvailability: map[string]interface{}{"$in": []string{AllStates}},
	}, locationClauses[1])
}

func TestBuildQuery_ZeroSizeAddsNoConstraint(t *testing.T) {
	filter := BuildQuery(models.BusinessProfile{BusinessSize: 0, Location: "NY"}).Map()
	_, hasOr := filter["$or"]
	assert.True(t, hasOr)
	assert.NotContains(t, filter, "$and")
	assert.NotContains(t, filter, FieldBusinessSize)
}

func TestEmptyPredicate(t *testing.T) {
	assert.Empty(t, Empty().Map())
}
