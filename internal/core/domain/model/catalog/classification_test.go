package catalog_test

import (
	"testing"

	"workorders/internal/core/domain/model/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendedTypes(t *testing.T) {
	t.Run("should suggest trade-appropriate types per category", func(t *testing.T) {
		preventive := catalog.RecommendedTypes(catalog.CategoryPreventive)
		assert.Contains(t, preventive, catalog.TypeHVAC)
		assert.Contains(t, preventive, catalog.TypeElevator)

		emergency := catalog.RecommendedTypes(catalog.CategoryEmergency)
		assert.Contains(t, emergency, catalog.TypeFireSafety)
		assert.NotContains(t, emergency, catalog.TypeCleaning)
	})

	t.Run("should return nothing for an unknown category", func(t *testing.T) {
		assert.Nil(t, catalog.RecommendedTypes(catalog.WorkCategoryUnknown))
	})
}

func TestWorkPriority_Attributes(t *testing.T) {
	t.Run("response time shrinks as priority rises", func(t *testing.T) {
		assert.Equal(t, 72, catalog.PriorityLow.ResponseTimeHours())
		assert.Equal(t, 48, catalog.PriorityMedium.ResponseTimeHours())
		assert.Equal(t, 24, catalog.PriorityHigh.ResponseTimeHours())
		assert.Equal(t, 4, catalog.PriorityUrgent.ResponseTimeHours())
		assert.Equal(t, 1, catalog.PriorityEmergency.ResponseTimeHours())
	})

	t.Run("sort order rises with priority", func(t *testing.T) {
		assert.Less(t, catalog.PriorityLow.SortOrder(), catalog.PriorityMedium.SortOrder())
		assert.Less(t, catalog.PriorityUrgent.SortOrder(), catalog.PriorityEmergency.SortOrder())
	})
}

func TestPrioritiesByRank(t *testing.T) {
	ranked := catalog.PrioritiesByRank()

	require.Len(t, ranked, 5)
	assert.Equal(t, catalog.PriorityEmergency, ranked[0])
	assert.Equal(t, catalog.PriorityLow, ranked[4])
}

func TestFromFaultPriority(t *testing.T) {
	testCases := []struct {
		label    string
		expected catalog.WorkPriority
	}{
		{"LOW", catalog.PriorityLow},
		{"medium", catalog.PriorityMedium},
		{"NORMAL", catalog.PriorityMedium},
		{"High", catalog.PriorityHigh},
		{"URGENT", catalog.PriorityUrgent},
		{"EMERGENCY", catalog.PriorityEmergency},
		{"CRITICAL", catalog.PriorityEmergency},
		{"", catalog.PriorityMedium},
		{"whatever", catalog.PriorityMedium},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, catalog.FromFaultPriority(tc.label), tc.label)
	}
}

func TestWorkUrgency_MaxResponseHours(t *testing.T) {
	assert.Equal(t, 168, catalog.UrgencyLow.MaxResponseHours())
	assert.Equal(t, 72, catalog.UrgencyNormal.MaxResponseHours())
	assert.Equal(t, 24, catalog.UrgencyHigh.MaxResponseHours())
	assert.Equal(t, 4, catalog.UrgencyCritical.MaxResponseHours())
}

func TestProcessingOrder(t *testing.T) {
	t.Run("priority dominates urgency", func(t *testing.T) {
		low := catalog.ProcessingOrder(catalog.PriorityLow, catalog.UrgencyCritical)
		high := catalog.ProcessingOrder(catalog.PriorityEmergency, catalog.UrgencyLow)

		assert.Greater(t, high, low)
	})

	t.Run("urgency breaks ties within a priority", func(t *testing.T) {
		normal := catalog.ProcessingOrder(catalog.PriorityHigh, catalog.UrgencyNormal)
		critical := catalog.ProcessingOrder(catalog.PriorityHigh, catalog.UrgencyCritical)

		assert.Greater(t, critical, normal)
	})
}

func TestClassification_FromString(t *testing.T) {
	t.Run("categories round-trip", func(t *testing.T) {
		for _, c := range []catalog.WorkCategory{
			catalog.CategoryPreventive, catalog.CategoryCorrective, catalog.CategoryEmergency,
			catalog.CategoryImprovement, catalog.CategoryInspection,
		} {
			parsed, err := catalog.WorkCategoryFromString(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	})

	t.Run("types round-trip", func(t *testing.T) {
		for _, wt := range []catalog.WorkType{
			catalog.TypeElectrical, catalog.TypePlumbing, catalog.TypeHVAC, catalog.TypeElevator,
			catalog.TypeFireSafety, catalog.TypeSecurity, catalog.TypeStructural,
			catalog.TypeAppliance, catalog.TypeLighting, catalog.TypeCleaning, catalog.TypeOther,
		} {
			parsed, err := catalog.WorkTypeFromString(wt.String())
			require.NoError(t, err)
			assert.Equal(t, wt, parsed)
		}
	})

	t.Run("unknown labels are rejected", func(t *testing.T) {
		_, err := catalog.WorkCategoryFromString("RENOVATION")
		require.Error(t, err)

		_, err = catalog.WorkTypeFromString("PAINTING")
		require.Error(t, err)

		_, err = catalog.WorkPriorityFromString("TOP")
		require.Error(t, err)

		_, err = catalog.WorkUrgencyFromString("EXTREME")
		require.Error(t, err)
	})
}
