package incident

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func sampleIncidents() []Incident {
	return []Incident{
		{ID: 1, Title: "Forklift collision", Type: TypeInjury, Description: "Operator bruised", Timestamp: day(0)},
		{ID: 2, Title: "Panel sparks", Type: TypeElectrical, Description: "Breaker panel arcing", Timestamp: day(1)},
		{ID: 3, Title: "Oil spill", Type: TypeSpill, Description: "Hydraulic oil on floor", Timestamp: day(2)},
		{ID: 4, Title: "Smoke in storage", Type: TypeFire, Description: "Cardboard smoldering", Timestamp: day(3)},
		{ID: 5, Title: "Spilled solvent", Type: TypeSpill, Description: "Solvent drum tipped", Timestamp: day(4)},
	}
}

func TestApply_SearchCaseInsensitive(t *testing.T) {
	result := Apply(sampleIncidents(), Query{Search: "SPILL"})

	assert.Len(t, result, 2)
	for _, inc := range result {
		assert.Equal(t, TypeSpill, inc.Type)
	}
}

func TestApply_SearchMatchesDescription(t *testing.T) {
	result := Apply(sampleIncidents(), Query{Search: "breaker"})

	assert.Len(t, result, 1)
	assert.Equal(t, int64(2), result[0].ID)
}

func TestApply_SearchMatchesType(t *testing.T) {
	result := Apply(sampleIncidents(), Query{Search: "electrical"})

	assert.Len(t, result, 1)
	assert.Equal(t, TypeElectrical, result[0].Type)
}

func TestApply_EmptySearchKeepsAll(t *testing.T) {
	result := Apply(sampleIncidents(), Query{Search: "   "})
	assert.Len(t, result, 5)
}

func TestApply_FilterAll(t *testing.T) {
	assert.Len(t, Apply(sampleIncidents(), Query{TypeFilter: FilterAll}), 5)
	assert.Len(t, Apply(sampleIncidents(), Query{TypeFilter: ""}), 5)
}

func TestApply_FilterByType(t *testing.T) {
	result := Apply(sampleIncidents(), Query{TypeFilter: "Spill"})

	assert.Len(t, result, 2)
	for _, inc := range result {
		assert.Equal(t, TypeSpill, inc.Type)
	}
}

func TestApply_DefaultSortNewestFirst(t *testing.T) {
	result := Apply(sampleIncidents(), Query{})

	ids := make([]int64, len(result))
	for i, inc := range result {
		ids[i] = inc.ID
	}
	assert.Equal(t, []int64{5, 4, 3, 2, 1}, ids)
}

func TestApply_SortOldest(t *testing.T) {
	result := Apply(sampleIncidents(), Query{Sort: SortOldest})

	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(5), result[len(result)-1].ID)
}

func TestApply_SortTypeAscStableTies(t *testing.T) {
	result := Apply(sampleIncidents(), Query{Sort: SortTypeAsc})

	types := make([]Type, len(result))
	for i, inc := range result {
		types[i] = inc.Type
	}
	assert.Equal(t, []Type{TypeElectrical, TypeFire, TypeInjury, TypeSpill, TypeSpill}, types)

	// The two spills keep their input order.
	assert.Equal(t, int64(3), result[3].ID)
	assert.Equal(t, int64(5), result[4].ID)
}

func TestApply_SortTypeDesc(t *testing.T) {
	result := Apply(sampleIncidents(), Query{Sort: SortTypeDesc})

	assert.Equal(t, TypeSpill, result[0].Type)
	assert.Equal(t, TypeElectrical, result[len(result)-1].Type)
}

func TestApply_PipelineOrder(t *testing.T) {
	// Search narrows to the spills, the filter keeps them, the sort
	// orders them oldest first.
	result := Apply(sampleIncidents(), Query{
		Search:     "spill",
		TypeFilter: "Spill",
		Sort:       SortOldest,
	})

	assert.Len(t, result, 2)
	assert.Equal(t, int64(3), result[0].ID)
	assert.Equal(t, int64(5), result[1].ID)
}

func TestApply_SearchThenFilterCanEmpty(t *testing.T) {
	// The search keeps only a Fire record, so a Spill filter leaves nothing.
	result := Apply(sampleIncidents(), Query{
		Search:     "smoke",
		TypeFilter: "Spill",
	})
	assert.Empty(t, result)
}

func TestApply_InputUnmodified(t *testing.T) {
	incidents := sampleIncidents()
	Apply(incidents, Query{Sort: SortTypeAsc, TypeFilter: "Spill"})

	for i, inc := range incidents {
		assert.Equal(t, int64(i+1), inc.ID)
	}
}

func TestSortKey_Validate(t *testing.T) {
	assert.NoError(t, SortKey("newest").Validate())
	assert.NoError(t, SortKey("").Validate())
	assert.Error(t, SortKey("loudest").Validate())
}
