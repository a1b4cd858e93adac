package engine

import (
	"testing"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWeek_FixedShape(t *testing.T) {
	entries, err := GenerateWeek(WeekRequest{TargetCalories: 2000, Category: "Balanced", WeekNumber: 1}, nil)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	wantSlots := []string{"7:00 AM", "10:00 AM", "1:00 PM", "4:00 PM", "7:00 PM"}
	wantLabels := []string{"Breakfast", "Snack", "Lunch", "Snack", "Dinner"}

	total := 0
	seenIDs := map[string]bool{}
	for i, e := range entries {
		assert.Equal(t, 1, e.WeekNumber)
		assert.Equal(t, wantSlots[i], e.TimeSlot)
		assert.Equal(t, wantLabels[i], e.Label)
		assert.Equal(t, 400, e.Calories) // round(2000/5)
		assert.NotEmpty(t, e.ID)
		assert.False(t, seenIDs[e.ID], "entry ids must be unique")
		seenIDs[e.ID] = true
		total += e.Calories
	}
	assert.Equal(t, 2000, total)
}

func TestGenerateWeek_CategoryDerivedMacros(t *testing.T) {
	entries, err := GenerateWeek(WeekRequest{TargetCalories: 2000, Category: "Balanced", WeekNumber: 1}, nil)
	require.NoError(t, err)

	for _, e := range entries {
		assert.Equal(t, 30, e.Protein) // round(400 * 30% / 4)
		assert.Equal(t, 40, e.Carbs)   // round(400 * 40% / 4)
		assert.Equal(t, 13, e.Fats)    // round(400 * 30% / 9)
	}
}

func TestGenerateWeek_KetogenicSecondWeek(t *testing.T) {
	existing := []domain.PlanEntry{{ID: "w1-a", WeekNumber: 1, Calories: 360}}

	entries, err := GenerateWeek(WeekRequest{TargetCalories: 1800, Category: "Ketogenic", WeekNumber: 2}, existing)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	for _, e := range entries {
		assert.Equal(t, 2, e.WeekNumber)
		assert.Equal(t, 360, e.Calories)
		assert.Equal(t, 28, e.Fats) // round(1800 * 70% / 5 / 9)
	}
}

func TestGenerateWeek_ExplicitTotalsOverrideCategory(t *testing.T) {
	protein, fats := 500, 100
	entries, err := GenerateWeek(WeekRequest{
		TargetCalories: 2000,
		Category:       "Ketogenic",
		WeekNumber:     1,
		Protein:        &protein,
		Fats:           &fats,
	}, nil)
	require.NoError(t, err)

	for _, e := range entries {
		assert.Equal(t, 100, e.Protein) // 500 / 5, not category-derived
		assert.Equal(t, 20, e.Fats)     // 100 / 5
		assert.Equal(t, 5, e.Carbs)     // round(400 * 5% / 4), still category-derived
	}
}

func TestGenerateWeek_DuplicateWeekRejected(t *testing.T) {
	existing := []domain.PlanEntry{
		{ID: "a", WeekNumber: 1, TimeSlot: "7:00 AM", Label: "Breakfast", Calories: 400},
	}
	snapshot := CloneEntries(existing)

	entries, err := GenerateWeek(WeekRequest{TargetCalories: 2000, Category: "Balanced", WeekNumber: 1}, existing)
	assert.ErrorIs(t, err, ErrWeekExists)
	assert.Nil(t, entries)
	assert.Equal(t, snapshot, existing, "existing entries must be left untouched")
}

func TestCloneEntries_IndependentCopy(t *testing.T) {
	original := []domain.PlanEntry{{ID: "a", WeekNumber: 1, Calories: 400}}
	clone := CloneEntries(original)
	clone[0].Calories = 999

	assert.Equal(t, 400, original[0].Calories)
	assert.Nil(t, CloneEntries(nil))
}
