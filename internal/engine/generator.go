package engine

import (
	"errors"

	"github.com/Abhi-coder-crypto/hocportal-sub002/internal/domain"
	"github.com/google/uuid"
)

// ErrWeekExists is returned when entries for the requested week number are
// already present on the template.
var ErrWeekExists = errors.New("week already exists")

// EntriesPerWeek is fixed: a generated week is 5 slots, not 7 days.
const EntriesPerWeek = 5

var (
	weekTimeSlots = [EntriesPerWeek]string{"7:00 AM", "10:00 AM", "1:00 PM", "4:00 PM", "7:00 PM"}
	weekLabels    = [EntriesPerWeek]string{"Breakfast", "Snack", "Lunch", "Snack", "Dinner"}
)

// WeekRequest describes one week-generation call. TargetCalories is the
// weekly total. Explicit weekly Protein/Carbs/Fats totals, when non-nil,
// take precedence over the category-derived values.
type WeekRequest struct {
	TargetCalories int
	Category       string
	WeekNumber     int
	Protein        *int
	Carbs          *int
	Fats           *int
}

// GenerateWeek expands a calorie/macro target into the fixed 5-entry week.
// The duplicate-week guard runs against a deep copy of the existing entries,
// so the caller's slice is never touched and a template cached in memory
// cannot be corrupted by a repeated call.
func GenerateWeek(req WeekRequest, existing []domain.PlanEntry) ([]domain.PlanEntry, error) {
	for _, e := range CloneEntries(existing) {
		if e.WeekNumber == req.WeekNumber {
			return nil, ErrWeekExists
		}
	}

	perEntryCalories := roundToInt(float64(req.TargetCalories) / EntriesPerWeek)
	profile := ProfileFor(req.Category)

	entries := make([]domain.PlanEntry, 0, EntriesPerWeek)
	for i := 0; i < EntriesPerWeek; i++ {
		entries = append(entries, domain.PlanEntry{
			ID:         uuid.NewString(),
			WeekNumber: req.WeekNumber,
			TimeSlot:   weekTimeSlots[i],
			Label:      weekLabels[i],
			Calories:   perEntryCalories,
			Protein:    perEntryGrams(req.Protein, perEntryCalories, profile.ProteinPct, kcalPerGramProtein),
			Carbs:      perEntryGrams(req.Carbs, perEntryCalories, profile.CarbsPct, kcalPerGramCarbs),
			Fats:       perEntryGrams(req.Fats, perEntryCalories, profile.FatsPct, kcalPerGramFat),
		})
	}
	return entries, nil
}

// perEntryGrams splits an explicit weekly total evenly across the week, or
// derives grams from the entry's calories and the category percentage.
func perEntryGrams(weeklyTotal *int, entryCalories, pct, kcalPerGram int) int {
	if weeklyTotal != nil {
		return roundToInt(float64(*weeklyTotal) / EntriesPerWeek)
	}
	return gramsFor(entryCalories, pct, kcalPerGram)
}

// CloneEntries returns a deep copy of a plan entry slice.
func CloneEntries(entries []domain.PlanEntry) []domain.PlanEntry {
	if entries == nil {
		return nil
	}
	out := make([]domain.PlanEntry, len(entries))
	copy(out, entries)
	return out
}
